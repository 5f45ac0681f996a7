package dirsvc

import (
	"context"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
)

// ApproveShop duyệt shop. Duyệt lại shop đã duyệt vẫn thành công và không đổi dữ liệu.
func (s *ShopService) ApproveShop(ctx context.Context, shopID string) error {
	return s.transition(ctx, shopID, basemodels.StatusApproved)
}

// RejectShop từ chối shop.
func (s *ShopService) RejectShop(ctx context.Context, shopID string) error {
	return s.transition(ctx, shopID, basemodels.StatusRejected)
}

// transition ghi status bằng một update có điều kiện. Khi không khớp thì phân biệt
// shop không tồn tại (NotFound) với shop đang ở trạng thái kết thúc khác (InvalidState).
func (s *ShopService) transition(ctx context.Context, shopID, target string) error {
	oid, err := lookupsvc.ParseID(shopID)
	if err != nil {
		return err
	}
	ok, err := s.shops.TransitionStatus(ctx, oid, target)
	if err != nil {
		return err
	}
	if !ok {
		shop, err := s.shops.FindByID(ctx, oid)
		if common.IsNotFound(err) {
			return common.NotFoundf("Không tìm thấy shop %s", shopID)
		}
		if err != nil {
			return err
		}
		return common.NewError(common.ErrCodeBusinessState,
			"Shop đang ở trạng thái "+shop.Status+", không thể chuyển sang "+target,
			common.StatusConflict, map[string]string{"current": shop.Status, "target": target})
	}
	s.metrics.RecordModeration("shop", actionFor(target))
	return nil
}

// DeleteShop xóa shop rồi xóa dây chuyền offer, job, review và thư mục media của shop.
// Shop không tồn tại thì trả NotFound và không xóa gì thêm.
func (s *ShopService) DeleteShop(ctx context.Context, shopID string) (*dirmodels.CascadeReport, error) {
	oid, err := lookupsvc.ParseID(shopID)
	if err != nil {
		return nil, err
	}
	deleted, err := s.shops.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, common.NotFoundf("Không tìm thấy shop %s", shopID)
	}

	report := &dirmodels.CascadeReport{Deleted: map[string]int64{}, MediaPurged: true}
	log := logger.WithModule("directory").WithField("shop_id", oid.Hex())
	for _, c := range s.cascades {
		n, err := c.Target.DeleteByShopID(ctx, oid)
		if err != nil {
			log.WithError(err).WithField("collection", c.Collection).Error("Cascade delete failed")
			report.Failed = append(report.Failed, dirmodels.ItemFailure{Name: c.Collection, Error: err.Error()})
			continue
		}
		report.Deleted[c.Collection] = n
		s.metrics.RecordCascade(c.Collection, n)
	}

	if err := s.media.RemoveAll(ctx, media.ShopDir(oid.Hex())); err != nil {
		log.WithError(err).Warn("Failed to purge shop media")
		report.MediaPurged = false
	}
	s.metrics.RecordModeration("shop", "delete")
	return report, nil
}

// DeleteShopPhoto xóa ảnh gallery ở vị trí index (tính theo danh sách hiện tại).
// Ảnh được rút khỏi mảng theo path nên thao tác ghi không ghi đè các thay đổi đồng thời khác.
func (s *ShopService) DeleteShopPhoto(ctx context.Context, shopID string, index int) error {
	shop, err := s.lookup.FindShop(ctx, shopID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(shop.Media) {
		return common.NewError(common.ErrCodePhotoIndex, "Vị trí ảnh không hợp lệ", common.StatusBadRequest,
			map[string]int{"index": index, "count": len(shop.Media)})
	}

	target := shop.Media[index].Path
	removed, err := s.shops.PullMedia(ctx, shop.ID, target)
	if err != nil {
		return err
	}
	if !removed {
		// Ảnh đã bị xóa bởi request khác giữa lúc đọc và lúc ghi
		return common.ErrInvalidPhotoIndex
	}
	if media.IsUnderRoot(target) {
		if err := s.media.Remove(ctx, target); err != nil {
			logger.WithModule("directory").WithError(err).WithField("path", target).Warn("Failed to remove media file")
		}
	}
	return nil
}

func actionFor(status string) string {
	switch status {
	case basemodels.StatusApproved:
		return "approve"
	case basemodels.StatusRejected:
		return "reject"
	}
	return status
}

// Package offersvc quản lý offer lồng trong container theo shop: thêm, duyệt, từ chối, xóa và hàng đợi duyệt.
package offersvc

import (
	"context"
	"path"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/dto"
	offermodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
)

// OfferRepository là các thao tác lưu trữ container offer.
type OfferRepository interface {
	// AppendItem thêm item vào container của shop, tạo container nếu chưa có (upsert).
	AppendItem(ctx context.Context, shopID, userID basemodels.ObjectRef, item offermodels.OfferItem, now time.Time) error
	// SetItemStatus đổi trạng thái một item; duyệt thì đồng thời nâng status container lên approved.
	SetItemStatus(ctx context.Context, offerID, status string, now time.Time) (bool, error)
	// PullItem rút item khỏi container và trả về item đã rút; common.ErrNotFound nếu không có.
	PullItem(ctx context.Context, offerID string) (*offermodels.OfferItem, error)
	FindWithPendingItems(ctx context.Context) ([]offermodels.OfferContainer, error)
	// FindByShopID trả về mọi container của shop theo thứ tự tạo.
	FindByShopID(ctx context.Context, shopID primitive.ObjectID) ([]offermodels.OfferContainer, error)
	DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error)
}

// OfferService là service quản lý offer
type OfferService struct {
	offers  OfferRepository
	lookup  *lookupsvc.LookupService
	media   media.Store
	metrics *metrics.Metrics
}

// NewOfferService tạo mới OfferService
func NewOfferService(offers OfferRepository, lookup *lookupsvc.LookupService, store media.Store, m *metrics.Metrics) *OfferService {
	return &OfferService{
		offers:  offers,
		lookup:  lookup,
		media:   store,
		metrics: m,
	}
}

// AddOffer lưu tệp offer rồi thêm item pending vào container của shop.
// Ghi DB lỗi thì tệp vừa lưu được xóa lại.
func (s *OfferService) AddOffer(ctx context.Context, input dto.OfferCreateInput) (*offermodels.OfferItem, error) {
	owner, err := s.lookup.ResolveOwner(ctx, input.OwnerIdentifier)
	if err != nil {
		return nil, err
	}
	shop, err := s.lookup.FindShop(ctx, input.TargetShop)
	if err != nil {
		return nil, err
	}
	if input.File == nil {
		return nil, common.InvalidInputf("Thiếu tệp ảnh hoặc video của offer")
	}
	kind := input.File.Kind()
	if kind == "" {
		return nil, common.NewError(common.ErrCodeUnsupportedMedia, common.ErrUnsupportedMedia.Error(),
			common.StatusUnsupportedMedia, map[string]string{"content_type": input.File.ContentType})
	}

	shopID := shop.ID.Hex()
	offerID := primitive.NewObjectID().Hex()
	relPath := media.OfferMediaPath(shopID, offerID, kind, input.File.Filename)
	if err := s.media.Save(ctx, relPath, input.File.Reader, input.File.ContentType); err != nil {
		return nil, common.NewError(common.ErrCodeMediaStore, "Không lưu được tệp "+input.File.Filename, common.StatusInternalServerError, err)
	}

	now := time.Now().UTC()
	item := offermodels.OfferItem{
		OfferID:     offerID,
		MediaType:   kind,
		MediaPath:   relPath,
		Filename:    path.Base(relPath),
		Title:       input.Title,
		Fee:         input.Fee,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Percentage:  input.Percentage,
		Description: input.Description,
		Status:      basemodels.StatusPending,
		UploadedAt:  now,
	}
	if err := s.offers.AppendItem(ctx, basemodels.RefFromID(shop.ID), basemodels.RefFromID(owner.ID), item, now); err != nil {
		s.removeFile(ctx, relPath)
		return nil, err
	}
	return &item, nil
}

// ApproveOffer duyệt một offer; container của shop chuyển sang approved (không bao giờ quay lại).
func (s *OfferService) ApproveOffer(ctx context.Context, offerID string) error {
	return s.setStatus(ctx, offerID, basemodels.StatusApproved)
}

// RejectOffer từ chối một offer; status của container giữ nguyên.
func (s *OfferService) RejectOffer(ctx context.Context, offerID string) error {
	return s.setStatus(ctx, offerID, basemodels.StatusRejected)
}

func (s *OfferService) setStatus(ctx context.Context, offerID, status string) error {
	if _, err := lookupsvc.ParseID(offerID); err != nil {
		return err
	}
	ok, err := s.offers.SetItemStatus(ctx, offerID, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		return common.NotFoundf("Không tìm thấy offer %s", offerID)
	}
	action := "approve"
	if status == basemodels.StatusRejected {
		action = "reject"
	}
	s.metrics.RecordModeration("offer", action)
	return nil
}

// DeleteOffer rút offer khỏi container (container giữ lại kể cả khi rỗng) và xóa tệp media.
func (s *OfferService) DeleteOffer(ctx context.Context, offerID string) error {
	if _, err := lookupsvc.ParseID(offerID); err != nil {
		return err
	}
	item, err := s.offers.PullItem(ctx, offerID)
	if common.IsNotFound(err) {
		return common.NotFoundf("Không tìm thấy offer %s", offerID)
	}
	if err != nil {
		return err
	}
	s.removeFile(ctx, item.MediaPath)
	s.metrics.RecordModeration("offer", "delete")
	return nil
}

// ListPendingOffers trải phẳng các offer pending. Tên shop và liên hệ chủ shop tra một lần cho mỗi container.
func (s *OfferService) ListPendingOffers(ctx context.Context) ([]offermodels.PendingOffer, error) {
	containers, err := s.offers.FindWithPendingItems(ctx)
	if err != nil {
		return nil, err
	}

	result := []offermodels.PendingOffer{}
	for i := range containers {
		c := &containers[i]
		items := c.ItemsWithStatus(basemodels.StatusPending)
		if len(items) == 0 {
			continue
		}

		shopName := offermodels.UnknownShop
		if shop, err := s.lookup.FindShop(ctx, c.ShopID.String()); err == nil && shop.ShopName != "" {
			shopName = shop.ShopName
		}
		phone, email := offermodels.UnknownContact, offermodels.UnknownContact
		if owner, err := s.lookup.UserByRef(ctx, c.UserID); err == nil {
			phone = orDefault(owner.PhoneNumber, offermodels.UnknownContact)
			email = orDefault(owner.Email, offermodels.UnknownContact)
		}

		for _, item := range items {
			result = append(result, offermodels.PendingOffer{
				OfferItem:  item,
				ShopID:     c.ShopID.String(),
				ShopName:   shopName,
				OwnerPhone: phone,
				OwnerEmail: email,
			})
		}
	}
	return result, nil
}

// ApprovedOffersForShop trả về các offer đã duyệt của shop, gộp mọi container theo thứ tự tạo.
func (s *OfferService) ApprovedOffersForShop(ctx context.Context, shopID primitive.ObjectID) ([]offermodels.OfferItem, error) {
	containers, err := s.offers.FindByShopID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	items := []offermodels.OfferItem{}
	for _, c := range containers {
		items = append(items, c.ItemsWithStatus(basemodels.StatusApproved)...)
	}
	return items, nil
}

// DeleteByShopID xóa container offer của shop (dùng khi xóa shop).
func (s *OfferService) DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error) {
	return s.offers.DeleteByShopID(ctx, shopID)
}

func (s *OfferService) removeFile(ctx context.Context, relPath string) {
	if !media.IsUnderRoot(relPath) {
		return
	}
	if err := s.media.Remove(ctx, relPath); err != nil {
		logger.WithModule("offer").WithError(err).WithField("path", relPath).Warn("Failed to remove media file")
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

package dirsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/dto"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
)

// CreateShop đăng ký shop mới với trạng thái pending.
// Thành phố không tồn tại thì dừng trước khi ghi; danh mục không khớp được báo lại trong kết quả.
func (s *ShopService) CreateShop(ctx context.Context, input dto.ShopCreateInput) (*dto.ShopCreateResult, error) {
	owner, err := s.lookup.ResolveOwner(ctx, input.OwnerIdentifier)
	if err != nil {
		return nil, err
	}
	city, err := s.lookup.ResolveCityByName(ctx, input.CityName)
	if err != nil {
		return nil, err
	}
	categories := s.lookup.ResolveCategories(ctx, input.CategoryList)

	shop := &dirmodels.Shop{
		ShopName:    input.ShopName,
		Description: input.Description,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Landmark:    input.Landmark,
		Category:    categories.IDs(),
		Keywords:    splitCSV(input.Keywords),
		CityID:      basemodels.RefFromID(city.ID),
		UserID:      basemodels.RefFromID(owner.ID),
		Media:       []dirmodels.ShopMedia{},
		Status:      basemodels.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.shops.Insert(ctx, shop)
	if err != nil {
		return nil, err
	}
	shopID := id.Hex()

	result := &dto.ShopCreateResult{
		ShopID:     shopID,
		Categories: categories,
		Media:      []dirmodels.ShopMedia{},
		Skipped:    []dto.SkippedFile{},
	}

	var written []string
	update := dirmodels.ShopUpdate{}
	if input.MainImage != nil {
		p, skipped, err := s.saveImage(ctx, *input.MainImage, media.MainImagePath(shopID, input.MainImage.Filename))
		if err != nil {
			s.abandonShop(ctx, id, written)
			return nil, err
		}
		if skipped != nil {
			result.Skipped = append(result.Skipped, *skipped)
		} else {
			update.MainImage = &p
			written = append(written, p)
		}
	}
	for _, photo := range input.Photos {
		p, skipped, err := s.saveImage(ctx, photo, media.GalleryImagePath(shopID, photo.Filename))
		if err != nil {
			s.abandonShop(ctx, id, written)
			return nil, err
		}
		if skipped != nil {
			result.Skipped = append(result.Skipped, *skipped)
			continue
		}
		update.AppendMedia = append(update.AppendMedia, dirmodels.ShopMedia{Type: media.KindImage, Path: p})
		written = append(written, p)
	}

	if update.MainImage != nil || len(update.AppendMedia) > 0 {
		if err := s.shops.ApplyUpdate(ctx, id, update); err != nil {
			s.abandonShop(ctx, id, written)
			return nil, err
		}
		result.MainImage = update.MainImage
		result.Media = update.AppendMedia
	}

	logger.WithModule("directory").WithFields(logrus.Fields{
		"shop_id":             shopID,
		"categories_resolved": len(categories.Resolved),
		"categories_skipped":  len(categories.Skipped),
		"categories_failed":   len(categories.Failed),
	}).Info("Shop created")
	return result, nil
}

// UpdateShop cập nhật từng phần. Không bao giờ đổi status.
func (s *ShopService) UpdateShop(ctx context.Context, input dto.ShopUpdateInput) (*dto.ShopUpdateResult, error) {
	shop, err := s.lookup.FindShop(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	oid := shop.ID
	shopID := oid.Hex()

	update := dirmodels.ShopUpdate{
		ShopName:    nonEmpty(input.ShopName),
		Description: nonEmpty(input.Description),
		Address:     nonEmpty(input.Address),
		PhoneNumber: nonEmpty(input.PhoneNumber),
		Email:       nonEmpty(input.Email),
		Landmark:    nonEmpty(input.Landmark),
		UpdatedAt:   time.Now().UTC(),
	}
	if strings.TrimSpace(input.Keywords) != "" {
		update.Keywords = splitCSV(input.Keywords)
	}
	if strings.TrimSpace(input.CityName) != "" {
		city, err := s.lookup.ResolveCityByName(ctx, input.CityName)
		if err != nil {
			return nil, err
		}
		ref := basemodels.RefFromID(city.ID)
		update.CityID = &ref
	}

	result := &dto.ShopUpdateResult{ShopID: shopID, Added: []dirmodels.ShopMedia{}, Skipped: []dto.SkippedFile{}}
	var written []string
	if input.MainImage != nil {
		p, skipped, err := s.saveImage(ctx, *input.MainImage, media.MainImagePath(shopID, input.MainImage.Filename))
		if err != nil {
			return nil, err
		}
		if skipped != nil {
			result.Skipped = append(result.Skipped, *skipped)
		} else {
			update.MainImage = &p
			written = append(written, p)
		}
	}
	for _, photo := range input.Photos {
		p, skipped, err := s.saveImage(ctx, photo, media.GalleryImagePath(shopID, photo.Filename))
		if err != nil {
			s.removeFiles(ctx, written)
			return nil, err
		}
		if skipped != nil {
			result.Skipped = append(result.Skipped, *skipped)
			continue
		}
		update.AppendMedia = append(update.AppendMedia, dirmodels.ShopMedia{Type: media.KindImage, Path: p})
		written = append(written, p)
	}

	if err := s.shops.ApplyUpdate(ctx, oid, update); err != nil {
		s.removeFiles(ctx, written)
		return nil, err
	}

	// Ảnh chính cũ chỉ xóa sau khi DB đã trỏ sang ảnh mới
	if update.MainImage != nil && shop.MainImage != nil && *shop.MainImage != "" {
		s.removeFiles(ctx, []string{*shop.MainImage})
	}
	result.MainImage = update.MainImage
	if update.AppendMedia != nil {
		result.Added = update.AppendMedia
	}
	return result, nil
}

// saveImage ghi ảnh vào media store. Tệp không phải ảnh trả về SkippedFile thay vì lỗi.
func (s *ShopService) saveImage(ctx context.Context, upload media.Upload, relPath string) (string, *dto.SkippedFile, error) {
	if upload.Kind() != media.KindImage {
		return "", &dto.SkippedFile{Filename: upload.Filename, Reason: fmt.Sprintf("unsupported content type %q", upload.ContentType)}, nil
	}
	if err := s.media.Save(ctx, relPath, upload.Reader, upload.ContentType); err != nil {
		return "", nil, common.NewError(common.ErrCodeMediaStore, "Không lưu được tệp "+upload.Filename, common.StatusInternalServerError, err)
	}
	return relPath, nil, nil
}

// abandonShop gỡ shop vừa chèn khi bước ghi media thất bại, để lần gửi lại không tạo bản trùng.
func (s *ShopService) abandonShop(ctx context.Context, id primitive.ObjectID, written []string) {
	s.removeFiles(ctx, written)
	if _, err := s.shops.Delete(ctx, id); err != nil {
		logger.WithModule("directory").WithError(err).WithField("shop_id", id.Hex()).Warn("Failed to remove abandoned shop")
	}
}

// removeFiles xóa tệp theo kiểu best-effort, lỗi chỉ được ghi log.
func (s *ShopService) removeFiles(ctx context.Context, paths []string) {
	for _, p := range paths {
		if !media.IsUnderRoot(p) {
			continue
		}
		if err := s.media.Remove(ctx, p); err != nil {
			logger.WithModule("directory").WithError(err).WithField("path", p).Warn("Failed to remove media file")
		}
	}
}

// splitCSV tách chuỗi phân cách bởi dấu phẩy, bỏ phần tử rỗng.
func splitCSV(s string) []string {
	items := []string{}
	for _, raw := range strings.Split(s, ",") {
		if v := strings.TrimSpace(raw); v != "" {
			items = append(items, v)
		}
	}
	return items
}

func nonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

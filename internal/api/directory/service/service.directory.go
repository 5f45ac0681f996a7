// Package dirsvc xử lý nghiệp vụ shop: đăng ký, cập nhật, duyệt, xóa dây chuyền, ảnh gallery và danh sách hiển thị.
package dirsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
	offermodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
)

// ShopRepository là các thao tác lưu trữ shop mà service cần.
type ShopRepository interface {
	Insert(ctx context.Context, shop *dirmodels.Shop) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*dirmodels.Shop, error)
	FindByStatus(ctx context.Context, status string) ([]dirmodels.Shop, error)
	// ApplyUpdate ghi các trường khác nil trong một lần update; common.ErrNotFound nếu không có shop.
	ApplyUpdate(ctx context.Context, id primitive.ObjectID, update dirmodels.ShopUpdate) error
	// TransitionStatus chỉ ghi khi shop đang pending (hoặc chưa có status) hoặc đã ở target; trả về false nếu không khớp.
	TransitionStatus(ctx context.Context, id primitive.ObjectID, target string) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	// PullMedia rút ảnh gallery theo path; trả về false nếu không có gì bị rút.
	PullMedia(ctx context.Context, id primitive.ObjectID, path string) (bool, error)
}

// OfferLookup cung cấp offer đã duyệt của shop cho danh sách công khai.
type OfferLookup interface {
	ApprovedOffersForShop(ctx context.Context, shopID primitive.ObjectID) ([]offermodels.OfferItem, error)
}

// ShopCascade xóa dữ liệu phụ thuộc vào một shop.
type ShopCascade interface {
	DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error)
}

// CascadeTarget gắn tên collection với thao tác xóa dây chuyền.
type CascadeTarget struct {
	Collection string
	Target     ShopCascade
}

// ShopService là service quản lý shop
type ShopService struct {
	shops    ShopRepository
	lookup   *lookupsvc.LookupService
	offers   OfferLookup
	cascades []CascadeTarget
	media    media.Store
	metrics  *metrics.Metrics
}

// NewShopService tạo mới ShopService. offers và metrics có thể nil.
func NewShopService(shops ShopRepository, lookup *lookupsvc.LookupService, offers OfferLookup, store media.Store, m *metrics.Metrics, cascades ...CascadeTarget) *ShopService {
	return &ShopService{
		shops:    shops,
		lookup:   lookup,
		offers:   offers,
		cascades: cascades,
		media:    store,
		metrics:  m,
	}
}

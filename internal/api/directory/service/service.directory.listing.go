package dirsvc

import (
	"context"

	"github.com/sirupsen/logrus"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/dto"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// ListApprovedShops trả về shop đã duyệt kèm thành phố, chủ shop, danh mục, ảnh và offer đã duyệt.
func (s *ShopService) ListApprovedShops(ctx context.Context) (*dto.ShopListResult, error) {
	return s.list(ctx, basemodels.StatusApproved, true)
}

// ListPendingShops trả về hàng đợi shop chờ duyệt kèm thành phố và danh mục.
func (s *ShopService) ListPendingShops(ctx context.Context) (*dto.ShopListResult, error) {
	return s.list(ctx, basemodels.StatusPending, false)
}

// list làm giàu từng shop. Trường tra cứu lỗi để null và được đếm vào EnrichmentReport,
// riêng "không có dữ liệu" (tham chiếu rỗng / không tìm thấy) không bị tính là lỗi.
func (s *ShopService) list(ctx context.Context, status string, detailed bool) (*dto.ShopListResult, error) {
	shops, err := s.shops.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	result := &dto.ShopListResult{Shops: make([]dirmodels.ShopView, 0, len(shops))}
	log := logger.WithModule("directory")
	fail := func(shop *dirmodels.Shop, field string, err error) {
		result.Enrichment.Failed++
		log.WithFields(logrus.Fields{"shop_id": shop.ID.Hex(), "field": field}).WithError(err).Warn("Shop enrichment failed")
	}

	for i := range shops {
		shop := &shops[i]
		view := dirmodels.NewShopView(shop)

		if !shop.CityID.IsZero() {
			city, err := s.lookup.CityByRef(ctx, shop.CityID)
			switch {
			case err == nil:
				view.City = dirmodels.NewCityView(city)
			case !common.IsNotFound(err):
				fail(shop, "city", err)
			}
		}

		categories, err := s.lookup.CategoriesByIDs(ctx, shop.Category)
		if err != nil {
			fail(shop, "categories", err)
		}
		for _, c := range categories {
			view.Categories = append(view.Categories, dirmodels.CategoryView{ID: c.ID.Hex(), Name: c.Name})
		}

		if detailed {
			if !shop.UserID.IsZero() {
				owner, err := s.lookup.UserByRef(ctx, shop.UserID)
				switch {
				case err == nil:
					view.Owner = dirmodels.NewOwnerView(owner)
				case !common.IsNotFound(err):
					fail(shop, "user", err)
				}
			}
			view.Offers = []dirmodels.OfferView{}
			if s.offers != nil {
				items, err := s.offers.ApprovedOffersForShop(ctx, shop.ID)
				if err != nil {
					fail(shop, "offers", err)
				}
				for _, item := range items {
					view.Offers = append(view.Offers, dirmodels.NewOfferView(item))
				}
			}
		}
		result.Shops = append(result.Shops, view)
	}
	return result, nil
}

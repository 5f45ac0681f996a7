// Package dirhdl - Handler cho shop: đăng ký, cập nhật, duyệt, xóa và danh sách.
package dirhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/handler"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/dto"
	dirsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// Tên trường tệp trong form multipart
const (
	FieldMainImage = "main_image"
	FieldPhotos    = "photos"
)

// ShopHandler xử lý các route /shops
type ShopHandler struct {
	ShopService *dirsvc.ShopService
}

// NewShopHandler tạo ShopHandler mới.
func NewShopHandler(shopService *dirsvc.ShopService) *ShopHandler {
	return &ShopHandler{ShopService: shopService}
}

// HandleCreateShop xử lý POST /shops/add (multipart: main_image, photos[]).
func (h *ShopHandler) HandleCreateShop(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.ShopCreateInput
		if err := basehdl.BindForm(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		mainImage, releaseMain, err := basehdl.FormFile(c, FieldMainImage)
		defer releaseMain()
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		photos, releasePhotos, err := basehdl.FormFiles(c, FieldPhotos)
		defer releasePhotos()
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input.MainImage = mainImage
		input.Photos = photos

		result, err := h.ShopService.CreateShop(c.Context(), input)
		if err == nil {
			logger.LogCRUD("create", "shop", result.ShopID, c, map[string]interface{}{
				"shop_name": input.ShopName,
				"media":     len(result.Media),
				"skipped":   len(result.Skipped),
			})
		}
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleUpdateShop xử lý POST /shops/update. Trường rỗng giữ nguyên giá trị cũ.
func (h *ShopHandler) HandleUpdateShop(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.ShopUpdateInput
		if err := basehdl.BindForm(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		mainImage, releaseMain, err := basehdl.FormFile(c, FieldMainImage)
		defer releaseMain()
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		photos, releasePhotos, err := basehdl.FormFiles(c, FieldPhotos)
		defer releasePhotos()
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input.MainImage = mainImage
		input.Photos = photos

		result, err := h.ShopService.UpdateShop(c.Context(), input)
		if err == nil {
			logger.LogCRUD("update", "shop", result.ShopID, c, map[string]interface{}{
				"added_media": len(result.Added),
			})
		}
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleListApproved xử lý GET /shops/all: shop đã duyệt kèm chủ shop và offer đã duyệt.
func (h *ShopHandler) HandleListApproved(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result, err := h.ShopService.ListApprovedShops(c.Context())
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleListPending xử lý GET /shops/pending.
func (h *ShopHandler) HandleListPending(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result, err := h.ShopService.ListPendingShops(c.Context())
		return basehdl.HandleResponse(c, result, err)
	})
}

package dirhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/handler"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/dto"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// HandleApprove xử lý POST /shops/:shopId/approve.
func (h *ShopHandler) HandleApprove(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		shopID := c.Params("shopId")
		err := h.ShopService.ApproveShop(c.Context(), shopID)
		if err == nil {
			logger.LogModeration("approve", "shop", shopID, c)
		}
		return basehdl.HandleResponse(c, fiber.Map{"shop_id": shopID}, err)
	})
}

// HandleReject xử lý POST /shops/:shopId/reject.
func (h *ShopHandler) HandleReject(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		shopID := c.Params("shopId")
		err := h.ShopService.RejectShop(c.Context(), shopID)
		if err == nil {
			logger.LogModeration("reject", "shop", shopID, c)
		}
		return basehdl.HandleResponse(c, fiber.Map{"shop_id": shopID}, err)
	})
}

// HandleDelete xử lý DELETE /shops/:shopId, xóa dây chuyền offer, job, review và thư mục media.
func (h *ShopHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		shopID := c.Params("shopId")
		report, err := h.ShopService.DeleteShop(c.Context(), shopID)
		if err == nil {
			logger.LogCRUD("delete", "shop", shopID, c, map[string]interface{}{
				"cascade":      report.Deleted,
				"media_purged": report.MediaPurged,
			})
		}
		return basehdl.HandleResponse(c, report, err)
	})
}

// HandleDeletePhoto xử lý POST /shops/:shopId/photos/delete (form photo_index).
func (h *ShopHandler) HandleDeletePhoto(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		shopID := c.Params("shopId")
		var input dto.ShopPhotoDeleteInput
		if err := basehdl.BindForm(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		index := *input.PhotoIndex
		err := h.ShopService.DeleteShopPhoto(c.Context(), shopID, index)
		if err == nil {
			logger.LogCRUD("delete_photo", "shop", shopID, c, map[string]interface{}{"photo_index": index})
		}
		return basehdl.HandleResponse(c, fiber.Map{"shop_id": shopID, "photo_index": index}, err)
	})
}

// Package offerhdl - Handler cho offer của shop: thêm, duyệt, từ chối, xóa, danh sách chờ duyệt.
package offerhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/handler"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/dto"
	offersvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// FieldFile là trường tệp ảnh/video trong form thêm offer
const FieldFile = "file"

// OfferHandler xử lý các route /offers
type OfferHandler struct {
	OfferService *offersvc.OfferService
}

// NewOfferHandler tạo OfferHandler mới.
func NewOfferHandler(offerService *offersvc.OfferService) *OfferHandler {
	return &OfferHandler{OfferService: offerService}
}

// HandleAddOffer xử lý POST /offers/add (multipart, tệp ở trường "file").
func (h *OfferHandler) HandleAddOffer(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.OfferCreateInput
		if err := basehdl.BindForm(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		file, release, err := basehdl.FormFile(c, FieldFile)
		defer release()
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input.File = file

		item, err := h.OfferService.AddOffer(c.Context(), input)
		if err == nil {
			logger.LogCRUD("create", "offer", item.OfferID, c, map[string]interface{}{
				"shop_id":    input.TargetShop,
				"media_type": item.MediaType,
			})
		}
		return basehdl.HandleResponse(c, item, err)
	})
}

// HandleListPending xử lý GET /offers/pending.
func (h *OfferHandler) HandleListPending(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		offers, err := h.OfferService.ListPendingOffers(c.Context())
		return basehdl.HandleResponse(c, offers, err)
	})
}

// HandleApprove xử lý POST /offers/:offerId/approve.
func (h *OfferHandler) HandleApprove(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		offerID := c.Params("offerId")
		err := h.OfferService.ApproveOffer(c.Context(), offerID)
		if err == nil {
			logger.LogModeration("approve", "offer", offerID, c)
		}
		return basehdl.HandleResponse(c, fiber.Map{"offer_id": offerID}, err)
	})
}

// HandleReject xử lý POST /offers/:offerId/reject.
func (h *OfferHandler) HandleReject(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		offerID := c.Params("offerId")
		err := h.OfferService.RejectOffer(c.Context(), offerID)
		if err == nil {
			logger.LogModeration("reject", "offer", offerID, c)
		}
		return basehdl.HandleResponse(c, fiber.Map{"offer_id": offerID}, err)
	})
}

// HandleDelete xử lý DELETE /offers/:offerId.
func (h *OfferHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		offerID := c.Params("offerId")
		err := h.OfferService.DeleteOffer(c.Context(), offerID)
		if err == nil {
			logger.LogCRUD("delete", "offer", offerID, c, nil)
		}
		return basehdl.HandleResponse(c, fiber.Map{"offer_id": offerID}, err)
	})
}

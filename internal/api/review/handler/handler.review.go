// Package reviewhdl - Handler đánh giá của shop.
package reviewhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/handler"
	reviewsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// ReviewHandler xử lý các route /reviews
type ReviewHandler struct {
	ReviewService *reviewsvc.ReviewService
}

// NewReviewHandler tạo ReviewHandler mới.
func NewReviewHandler(reviewService *reviewsvc.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewService: reviewService}
}

// HandleListReviews xử lý GET /reviews/all?shop_id=.
func (h *ReviewHandler) HandleListReviews(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		reviews, err := h.ReviewService.ListReviews(c.Context(), c.Query("shop_id"))
		return basehdl.HandleResponse(c, reviews, err)
	})
}

// HandleDeleteReview xử lý DELETE /reviews/:reviewId.
func (h *ReviewHandler) HandleDeleteReview(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		reviewID := c.Params("reviewId")
		err := h.ReviewService.DeleteReview(c.Context(), reviewID)
		if err == nil {
			logger.LogCRUD("delete", "review", reviewID, c, nil)
		}
		return basehdl.HandleResponse(c, fiber.Map{"review_id": reviewID}, err)
	})
}

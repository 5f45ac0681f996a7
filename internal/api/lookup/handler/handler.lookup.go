// Package lookuphdl - Handler tìm kiếm thành phố và danh mục (gợi ý khi nhập form).
package lookuphdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/handler"
	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
)

// LookupHandler xử lý các route /city/search và /category/search
type LookupHandler struct {
	LookupService *lookupsvc.LookupService
}

// NewLookupHandler tạo LookupHandler mới.
func NewLookupHandler(lookupService *lookupsvc.LookupService) *LookupHandler {
	return &LookupHandler{LookupService: lookupService}
}

// HandleSearchCities xử lý GET /city/search?city_name=, so khớp chứa chuỗi không phân biệt hoa thường.
func (h *LookupHandler) HandleSearchCities(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		cities, err := h.LookupService.SearchCities(c.Context(), c.Query("city_name"))
		return basehdl.HandleResponse(c, cities, err)
	})
}

// HandleSearchCategories xử lý GET /category/search?category=.
func (h *LookupHandler) HandleSearchCategories(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		categories, err := h.LookupService.SearchCategories(c.Context(), c.Query("category"))
		return basehdl.HandleResponse(c, categories, err)
	})
}

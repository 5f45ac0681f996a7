// Package router đăng ký các route tìm kiếm thành phố và danh mục.
package router

import (
	"github.com/gofiber/fiber/v3"

	lookuphdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/handler"
	apirouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/router"
)

// Register trả về RegisterFunc đăng ký route lookup lên v1.
func Register(h *lookuphdl.LookupHandler, middlewares ...fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		// GET /city/search?city_name=pun
		apirouter.RegisterRouteWithMiddleware(v1, "/city", fiber.MethodGet, "/search", middlewares, h.HandleSearchCities)
		// GET /category/search?category=rest
		apirouter.RegisterRouteWithMiddleware(v1, "/category", fiber.MethodGet, "/search", middlewares, h.HandleSearchCategories)
		return nil
	}
}

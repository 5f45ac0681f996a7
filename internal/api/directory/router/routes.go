// Package router đăng ký các route thuộc domain shop.
package router

import (
	"github.com/gofiber/fiber/v3"

	dirhdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/handler"
	apirouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/router"
)

// Register trả về RegisterFunc đăng ký route /shops lên v1.
func Register(h *dirhdl.ShopHandler, middlewares ...fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterRouteWithMiddleware(v1, "/shops", fiber.MethodGet, "/all", middlewares, h.HandleListApproved)
		apirouter.RegisterRouteWithMiddleware(v1, "/shops", fiber.MethodGet, "/pending", middlewares, h.HandleListPending)

		// Multipart: main_image, photos[]
		apirouter.RegisterRouteWithMiddleware(v1, "/shops", fiber.MethodPost, "/add", middlewares, h.HandleCreateShop)
		apirouter.RegisterRouteWithMiddleware(v1, "/shops", fiber.MethodPost, "/update", middlewares, h.HandleUpdateShop)

		apirouter.RegisterRouteWithMiddleware(v1, "/shops", fiber.MethodPost, "/:shopId/approve", middlewares, h.HandleApprove)
		apirouter.RegisterRouteWithMiddleware(v1, "/shops", fiber.MethodPost, "/:shopId/reject", middlewares, h.HandleReject)
		apirouter.RegisterRouteWithMiddleware(v1, "/shops", fiber.MethodPost, "/:shopId/photos/delete", middlewares, h.HandleDeletePhoto)
		apirouter.RegisterRouteWithMiddleware(v1, "/shops", fiber.MethodDelete, "/:shopId", middlewares, h.HandleDelete)
		return nil
	}
}

// Package router đăng ký các route thuộc domain review.
package router

import (
	"github.com/gofiber/fiber/v3"

	reviewhdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/handler"
	apirouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/router"
)

// Register trả về RegisterFunc đăng ký route /reviews lên v1.
func Register(h *reviewhdl.ReviewHandler, middlewares ...fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterRouteWithMiddleware(v1, "/reviews", fiber.MethodGet, "/all", middlewares, h.HandleListReviews)
		apirouter.RegisterRouteWithMiddleware(v1, "/reviews", fiber.MethodDelete, "/:reviewId", middlewares, h.HandleDeleteReview)
		return nil
	}
}

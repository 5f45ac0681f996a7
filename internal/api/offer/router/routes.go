// Package router đăng ký các route thuộc domain offer.
package router

import (
	"github.com/gofiber/fiber/v3"

	offerhdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/handler"
	apirouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/router"
)

// Register trả về RegisterFunc đăng ký route /offers lên v1.
func Register(h *offerhdl.OfferHandler, middlewares ...fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterRouteWithMiddleware(v1, "/offers", fiber.MethodPost, "/add", middlewares, h.HandleAddOffer)
		apirouter.RegisterRouteWithMiddleware(v1, "/offers", fiber.MethodGet, "/pending", middlewares, h.HandleListPending)
		apirouter.RegisterRouteWithMiddleware(v1, "/offers", fiber.MethodPost, "/:offerId/approve", middlewares, h.HandleApprove)
		apirouter.RegisterRouteWithMiddleware(v1, "/offers", fiber.MethodPost, "/:offerId/reject", middlewares, h.HandleReject)
		apirouter.RegisterRouteWithMiddleware(v1, "/offers", fiber.MethodDelete, "/:offerId", middlewares, h.HandleDelete)
		return nil
	}
}

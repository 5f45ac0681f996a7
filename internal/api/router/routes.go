// Package router gom các route của API dưới prefix /api/v1.
package router

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/handler"
)

// Lưu ý Fiber v3: middleware truyền trực tiếp vào router.Get(path, mw, handler) không được gọi.
// Luôn đăng ký qua RegisterRouteWithMiddleware để middleware được gắn bằng .Use().

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// RoutePrefix chứa các prefix cho API routes
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// App trả về fiber app (dùng cho route nằm ngoài /api/v1 như /metrics).
func (r *Router) App() *fiber.App {
	return r.app
}

// RegisterRouteWithMiddleware đăng ký một route dưới prefix, gắn middleware bằng .Use() trên group.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case fiber.MethodGet:
		routeGroup.Get(path, handler)
	case fiber.MethodPost:
		routeGroup.Post(path, handler)
	case fiber.MethodPut:
		routeGroup.Put(path, handler)
	case fiber.MethodDelete:
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc đăng ký route của một domain lên group v1.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes tạo group /api/v1 rồi gọi lần lượt các RegisterFunc của từng domain.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterSystem đăng ký GET /system/health.
func RegisterSystem(h *basehdl.SystemHandler) RegisterFunc {
	return func(v1 fiber.Router, r *Router) error {
		RegisterRouteWithMiddleware(v1, "/system", fiber.MethodGet, "/health", nil, h.HandleHealth)
		return nil
	}
}

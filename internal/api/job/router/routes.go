// Package router đăng ký các route thuộc domain job.
package router

import (
	"github.com/gofiber/fiber/v3"

	jobhdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/handler"
	apirouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/router"
)

// Register trả về RegisterFunc đăng ký route /jobs lên v1.
func Register(h *jobhdl.JobHandler, middlewares ...fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterRouteWithMiddleware(v1, "/jobs", fiber.MethodPost, "/add", middlewares, h.HandleAddJob)
		apirouter.RegisterRouteWithMiddleware(v1, "/jobs", fiber.MethodPost, "/:jobId/update", middlewares, h.HandleUpdateJob)
		apirouter.RegisterRouteWithMiddleware(v1, "/jobs", fiber.MethodGet, "/all", middlewares, h.HandleListJobs)
		apirouter.RegisterRouteWithMiddleware(v1, "/jobs", fiber.MethodDelete, "/:jobId", middlewares, h.HandleDeleteJob)
		return nil
	}
}

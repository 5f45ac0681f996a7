package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
)

// MetricsMiddleware đo số request và thời gian xử lý theo route pattern (/shops/:shopId/approve),
// không theo path thực tế để tránh bùng nổ label.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}
		m.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}

package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"github.com/sakthiswaran2705/rk-dail-admin/config"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/middleware"
	apirouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/router"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết rồi đăng ký routes
func InitFiberApp(cfg *config.Configuration, m *metrics.Metrics, regs ...apirouter.RegisterFunc) (*fiber.App, error) {
	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 50
	}

	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:       "RK Dail Admin API",
		ServerHeader:  "RK Dail Admin API",
		StrictRouting: false, // /shops/all và /shops/all/ là như nhau (client cũ gửi dấu / cuối)
		CaseSensitive: true,
		UnescapePath:  true,

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE
		// =========================================
		BodyLimit:       bodyLimit * 1024 * 1024, // Ảnh/video upload
		ReadBufferSize:  8192,
		WriteBufferSize: 4096,

		// =========================================
		// 3. CẤU HÌNH TIMEOUT
		// =========================================
		ReadTimeout:  60 * time.Second, // Upload video có thể lâu
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,

		// =========================================
		// 4. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: middleware.ErrorHandler,
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - Tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// 2. Metrics - đặt sớm để đo cả request bị rate limit
	app.Use(middleware.MetricsMiddleware(m))

	// 3. CORS Middleware - đặt trước các middleware khác để xử lý preflight
	app.Use(cors.New(cors.Config{
		AllowOrigins:     parseOrigins(cfg.CORS_Origins),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-Requested-With"},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 4. Security Headers Middleware
	app.Use(middleware.SecurityHeaders())

	// 5. Rate Limiting Middleware - chỉ bật khi được enable và Max > 0
	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return middleware.JSONResponse(c, fiber.StatusTooManyRequests, fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": common.MsgTooManyRequests,
					"status":  false,
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/metrics" ||
					c.Path() == "/api/v1/system/health" ||
					c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 6. Recover Middleware - panic ngoài SafeHandler (middleware, adaptor)
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", e).Error("Panic recovered")
		},
	}))

	// /metrics nằm ngoài /api/v1 để Prometheus scrape trực tiếp
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	if err := apirouter.SetupRoutes(app, regs...); err != nil {
		return nil, err
	}
	return app, nil
}

// parseOrigins tách CORS_ORIGINS ("*" hoặc danh sách phân cách bởi dấu phẩy)
func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" || raw == "*" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

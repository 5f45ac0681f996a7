package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// Pinger là phần của *mongo.Client mà health check cần.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct {
	db Pinger
}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// HandleHealth kiểm tra tình trạng API và kết nối MongoDB.
// Trả 503 khi ping database thất bại.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	if h.db == nil {
		healthData["status"] = "degraded"
		services["database"] = "not_initialized"
		return HandleResponse(c, healthData, nil)
	}

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		healthData["status"] = "degraded"
		services["database"] = "error"
		healthData["database_error"] = err.Error()
		return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": "Hệ thống đang gặp sự cố",
			"data":    healthData,
			"status":  false,
		})
	}
	services["database"] = "ok"
	return HandleResponse(c, healthData, nil)
}

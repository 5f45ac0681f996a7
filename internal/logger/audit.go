package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction ghi một bản ghi audit cho thao tác quản trị
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	if requestID := RequestID(c); requestID != "" {
		details["request_id"] = requestID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":     action,
		"ip":         c.IP(),
		"user_agent": c.Get("User-Agent"),
		"details":    details,
		"timestamp":  time.Now(),
	}).Info("Audit log")
}

// LogCRUD ghi audit cho các thao tác thay đổi dữ liệu
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("crud_"+operation, c, details)
}

// LogModeration ghi audit cho thao tác duyệt/từ chối
func LogModeration(action string, resourceType string, resourceID string, c fiber.Ctx) {
	LogAction("moderation_"+action, c, map[string]interface{}{
		"resource_type": resourceType,
		"resource_id":   resourceID,
	})
}

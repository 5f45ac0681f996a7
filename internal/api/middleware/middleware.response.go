// Package middleware chứa các middleware và helper response dùng chung cho mọi route.
package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse ghi envelope lỗi {code, message, details, status:false}.
// Lỗi nghiệp vụ (common.Error có StatusCode < 500) trả HTTP 200, client đọc trường status;
// lỗi hệ thống giữ nguyên status code của nó, lỗi lạ trả 500.
// Tách riêng để tránh import cycle với handler package
func HandleErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		httpStatus := common.StatusOK
		if customErr.StatusCode >= common.StatusInternalServerError {
			httpStatus = customErr.StatusCode
			logger.WithRequest(c).WithError(err).WithField("code", customErr.Code.Code).Error("Request failed")
		}
		return JSONResponse(c, httpStatus, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": publicDetails(customErr.Details),
			"status":  false,
		})
	}

	logger.WithRequest(c).WithError(err).Error("Unexpected error")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
		"status":  false,
	})
}

// publicDetails bỏ lỗi gốc (driver, I/O) khỏi response, chỉ giữ dữ liệu mô tả.
func publicDetails(details any) any {
	if _, isErr := details.(error); isErr {
		return nil
	}
	return details
}

// ErrorHandler là fiber.Config.ErrorHandler: lỗi chưa được handler xử lý (route không tồn tại,
// body quá lớn, lỗi trả về từ middleware) cũng được trả theo cùng envelope.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := common.ErrCodeInternalServer.Code
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			code = common.ErrCodeNotFound.Code
		case fiberErr.Code == fiber.StatusTooManyRequests:
			code = common.ErrCodeBusinessOperation.Code
		case fiberErr.Code < fiber.StatusInternalServerError:
			code = common.ErrCodeValidationInput.Code
		}
		return JSONResponse(c, fiberErr.Code, fiber.Map{
			"code":    code,
			"message": fiberErr.Message,
			"status":  false,
		})
	}
	return HandleErrorResponse(c, err)
}

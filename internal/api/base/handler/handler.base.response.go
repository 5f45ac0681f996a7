// Package basehdl chứa các tiện ích dùng chung cho mọi handler: envelope response, recover panic,
// đọc tệp multipart và health check.
package basehdl

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/middleware"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/global"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	return middleware.JSONResponse(c, statusCode, data)
}

// SafeHandler chạy handler và chuyển panic thành response 500 theo envelope chuẩn.
func SafeHandler(c fiber.Ctx, handler func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Panic recovered in handler")

			err = HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về cho client (có thể là nil nếu chỉ trả về lỗi)
// - err: Lỗi nếu có (nil nếu không có lỗi)
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return middleware.HandleErrorResponse(c, err)
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  true,
	})
}

// BindForm đọc body (form/multipart/json) vào input rồi validate theo tag `validate`.
func BindForm(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng. Chi tiết: %v", err),
			common.StatusBadRequest,
			nil,
		)
	}
	return global.ValidateStruct(input)
}

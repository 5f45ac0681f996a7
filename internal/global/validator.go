package global

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator trả về validator dùng chung, khởi tạo một lần cùng các custom rule
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("no_xss", validateNoXSS)
		validate = v
	})
	return validate
}

// ValidateStruct kiểm tra struct theo tag `validate`.
// Lỗi trả về là common.Error (VAL_001) với Details là map field -> rule vi phạm.
func ValidateStruct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	details := make(map[string]string, len(fieldErrs))
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
		names = append(names, fe.Field())
	}
	return common.NewError(common.ErrCodeValidationInput,
		common.MsgValidationError+": "+strings.Join(names, ", "),
		common.StatusBadRequest, details)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

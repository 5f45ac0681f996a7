package basehdl

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

func call(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	return resp.StatusCode, body
}

func TestHandleResponse_Success(t *testing.T) {
	status, body := call(t, func(c fiber.Ctx) error {
		return HandleResponse(c, fiber.Map{"shop_id": "abc"}, nil)
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, float64(200), body["code"])
	assert.Equal(t, map[string]interface{}{"shop_id": "abc"}, body["data"])
}

func TestHandleResponse_DomainErrorIs200(t *testing.T) {
	status, body := call(t, func(c fiber.Ctx) error {
		return HandleResponse(c, nil, common.NotFoundf("Không tìm thấy thành phố %s", "Atlantis"))
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "DB_003", body["code"])
	assert.Contains(t, body["message"], "Atlantis")
}

func TestHandleResponse_SystemErrorKeepsStatus(t *testing.T) {
	status, body := call(t, func(c fiber.Ctx) error {
		return HandleResponse(c, nil, common.NewError(common.ErrCodeMediaStore, "disk full", common.StatusInternalServerError, errors.New("ENOSPC")))
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "MED_001", body["code"])
	assert.Nil(t, body["details"], "driver/I/O errors are not exposed")
}

func TestHandleResponse_UnknownErrorIs500(t *testing.T) {
	status, body := call(t, func(c fiber.Ctx) error {
		return HandleResponse(c, nil, errors.New("boom"))
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, common.ErrCodeInternalServer.Code, body["code"])
	assert.NotContains(t, body["message"], "boom")
}

func TestSafeHandler_RecoversPanic(t *testing.T) {
	status, body := call(t, func(c fiber.Ctx) error {
		return SafeHandler(c, func() error {
			var m map[string]int
			m["x"] = 1
			return nil
		})
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, common.ErrCodeInternalServer.Code, body["code"])
}

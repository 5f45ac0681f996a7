package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakthiswaran2705/rk-dail-admin/config"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/memstore"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout", BufferSize: 100})
	code := m.Run()
	logger.Shutdown()
	os.Exit(code)
}

type testServer struct {
	app        *fiber.App
	users      *memstore.UserStore
	cities     *memstore.CityStore
	categories *memstore.CategoryStore
	shops      *memstore.ShopStore
	offers     *memstore.OfferStore
	jobs       *memstore.JobStore
	media      *memstore.MediaStore

	owner dirmodels.User
}

type envelope struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details json.RawMessage `json:"details"`
	Status  bool            `json:"status"`
}

func (e envelope) ErrorCode() string {
	var code string
	_ = json.Unmarshal(e.Code, &code)
	return code
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		users:      memstore.NewUserStore(),
		cities:     memstore.NewCityStore(),
		categories: memstore.NewCategoryStore(),
		shops:      memstore.NewShopStore(),
		offers:     memstore.NewOfferStore(),
		jobs:       memstore.NewJobStore(),
		media:      memstore.NewMediaStore(),
	}
	repos := &repositories{
		users:      ts.users,
		cities:     ts.cities,
		categories: ts.categories,
		shops:      ts.shops,
		offers:     ts.offers,
		jobs:       ts.jobs,
		reviews:    memstore.NewReviewStore(),
	}
	cfg := &config.Configuration{CORS_Origins: "*", BodyLimitMB: 10}
	m := metrics.New()
	app, err := InitFiberApp(cfg, m, buildRoutes(repos, ts.media, m, nil)...)
	require.NoError(t, err)
	ts.app = app
	ts.owner = ts.users.Add(dirmodels.User{FirstName: "Asha", LastName: "Patil", Email: "asha@example.com", PhoneNumber: "9820012345"})
	return ts
}

func (ts *testServer) do(t *testing.T, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := ts.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp, env
}

type filePart struct {
	field, filename, contentType, body string
}

func multipartRequest(t *testing.T, target string, fields map[string]string, files ...filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func formRequest(method, target string, fields url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func (ts *testServer) createShop(t *testing.T, files ...filePart) string {
	t.Helper()
	_, env := ts.do(t, multipartRequest(t, "/api/v1/shops/add", map[string]string{
		"phoneid":   ts.owner.PhoneNumber,
		"shop_name": "Patil General Store",
		"city_name": "pune",
		"keywords":  "grocery, dairy",
	}, files...))
	require.True(t, env.Status, env.Message)

	var created struct {
		ShopID string `json:"shop_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ShopID
}

func TestShopLifecycle_PuneEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	ts.cities.Add(dirmodels.City{CityName: "Pune", District: "Pune", State: "Maharashtra", Pincode: 411001})

	shopID := ts.createShop(t,
		filePart{"main_image", "front.jpg", "image/jpeg", "main"},
		filePart{"photos", "inside.png", "image/png", "p1"},
	)
	require.NotEmpty(t, shopID)
	assert.Len(t, ts.media.Paths(), 2)

	// City search is a case-insensitive substring match
	_, env := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/city/search?city_name=pun", nil))
	require.True(t, env.Status)
	var cities []dirmodels.City
	require.NoError(t, json.Unmarshal(env.Data, &cities))
	require.Len(t, cities, 1)
	assert.Equal(t, "Pune", cities[0].CityName)

	// Pending until approved
	_, env = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/shops/pending", nil))
	assert.Contains(t, string(env.Data), shopID)

	resp, env := ts.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/shops/"+shopID+"/approve", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Status, env.Message)

	_, env = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/shops/all", nil))
	require.True(t, env.Status)
	var listed struct {
		Shops []dirmodels.ShopView `json:"shops"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed.Shops, 1)
	shop := listed.Shops[0]
	assert.Equal(t, shopID, shop.ShopID)
	require.NotNil(t, shop.City)
	assert.Equal(t, "Pune", shop.City.CityName)
	require.NotNil(t, shop.Owner)
	assert.Equal(t, "Asha Patil", shop.Owner.Name)
	require.Len(t, shop.Images, 2)
	assert.Equal(t, "main", shop.Images[0].Type)

	// Delete cascades and purges the shop media directory
	_, env = ts.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/shops/"+shopID, nil))
	require.True(t, env.Status, env.Message)
	assert.Equal(t, 0, ts.shops.Len())
	assert.Empty(t, ts.media.Paths())
}

func TestDomainErrorsAnswer200WithStatusFalse(t *testing.T) {
	ts := newTestServer(t)

	resp, env := ts.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/shops/not-an-id/approve", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Equal(t, "VAL_003", env.ErrorCode())

	resp, env = ts.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/jobs/64b7f0c2a1b2c3d4e5f60718", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Equal(t, "DB_003", env.ErrorCode())
}

func TestCreateShop_UnknownCity(t *testing.T) {
	ts := newTestServer(t)

	_, env := ts.do(t, multipartRequest(t, "/api/v1/shops/add", map[string]string{
		"phoneid":   ts.owner.Email,
		"shop_name": "Nowhere Mart",
		"city_name": "Atlantis",
	}))
	assert.False(t, env.Status)
	assert.Equal(t, "DB_003", env.ErrorCode())
	assert.Contains(t, env.Message, "Atlantis")
	assert.Equal(t, 0, ts.shops.Len())
}

func TestCreateShop_ValidationFailure(t *testing.T) {
	ts := newTestServer(t)

	_, env := ts.do(t, multipartRequest(t, "/api/v1/shops/add", map[string]string{
		"phoneid":   ts.owner.Email,
		"shop_name": "<script>alert(1)</script>",
		"city_name": "Pune",
	}))
	assert.False(t, env.Status)
	assert.Equal(t, "VAL_001", env.ErrorCode())
	assert.Contains(t, string(env.Details), "ShopName")
}

func TestDeletePhoto_RequiresIndex(t *testing.T) {
	ts := newTestServer(t)
	ts.cities.Add(dirmodels.City{CityName: "Pune"})
	shopID := ts.createShop(t,
		filePart{"photos", "a.png", "image/png", "a"},
		filePart{"photos", "b.png", "image/png", "b"},
	)

	_, env := ts.do(t, formRequest(http.MethodPost, "/api/v1/shops/"+shopID+"/photos/delete", url.Values{}))
	assert.False(t, env.Status)
	assert.Equal(t, "VAL_001", env.ErrorCode())

	_, env = ts.do(t, formRequest(http.MethodPost, "/api/v1/shops/"+shopID+"/photos/delete", url.Values{"photo_index": {"5"}}))
	assert.False(t, env.Status)
	assert.Equal(t, "VAL_005", env.ErrorCode())

	_, env = ts.do(t, formRequest(http.MethodPost, "/api/v1/shops/"+shopID+"/photos/delete", url.Values{"photo_index": {"0"}}))
	require.True(t, env.Status, env.Message)
	assert.Len(t, ts.media.Paths(), 1)
}

func TestAddOffer_RejectsUnsupportedMedia(t *testing.T) {
	ts := newTestServer(t)
	ts.cities.Add(dirmodels.City{CityName: "Pune"})
	shopID := ts.createShop(t)

	resp, env := ts.do(t, multipartRequest(t, "/api/v1/offers/add", map[string]string{
		"phoneid":     ts.owner.PhoneNumber,
		"target_shop": shopID,
		"title":       "Diwali sale",
	}, filePart{"file", "terms.txt", "text/plain", "terms"}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Equal(t, "VAL_004", env.ErrorCode())
	assert.Empty(t, ts.offers.Containers())

	_, env = ts.do(t, multipartRequest(t, "/api/v1/offers/add", map[string]string{
		"phoneid":     ts.owner.PhoneNumber,
		"target_shop": shopID,
		"title":       "Diwali sale",
		"percentage":  "20",
	}, filePart{"file", "banner.mp4", "video/mp4", "video"}))
	require.True(t, env.Status, env.Message)

	_, env = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/offers/pending", nil))
	require.True(t, env.Status)
	assert.Contains(t, string(env.Data), "Patil General Store")
	assert.Contains(t, string(env.Data), `"media_type":"video"`)
}

func TestJobs_AddUpdateList(t *testing.T) {
	ts := newTestServer(t)
	pune := ts.cities.Add(dirmodels.City{CityName: "Pune"})

	_, env := ts.do(t, formRequest(http.MethodPost, "/api/v1/jobs/add", url.Values{
		"phoneid":         {ts.owner.Email},
		"job_title":       {"Cashier"},
		"job_description": {"Evening shift billing counter"},
		"salary":          {"15000"},
		"work_start_time": {"16:00"},
		"work_end_time":   {"22:00"},
		"city_id":         {pune.ID.Hex()},
	}))
	require.True(t, env.Status, env.Message)
	var job struct {
		ID       string `json:"id"`
		Gender   string `json:"gender"`
		CityName string `json:"city_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &job))
	assert.Equal(t, "Any", job.Gender)
	assert.Equal(t, "Pune", job.CityName)

	_, env = ts.do(t, formRequest(http.MethodPost, "/api/v1/jobs/"+job.ID+"/update", url.Values{
		"job_title": {"Senior Cashier"},
		"salary":    {"fifteen"},
	}))
	require.True(t, env.Status, env.Message)
	assert.Contains(t, string(env.Data), `"field":"salary"`)

	_, env = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/all", nil))
	require.True(t, env.Status)
	assert.Contains(t, string(env.Data), "Senior Cashier")
	assert.Contains(t, string(env.Data), `"salary":15000`)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	ts := newTestServer(t)

	resp, env := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/nothing-here", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Equal(t, "DB_003", env.ErrorCode())
}

func TestHealthWithoutDatabase(t *testing.T) {
	ts := newTestServer(t)

	resp, env := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"degraded"`)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/all", nil))

	resp, err := ts.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/api/v1/jobs/all",status="200"} 1`)
}

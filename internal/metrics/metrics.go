// Package metrics đăng ký các chỉ số Prometheus của API (request HTTP, thao tác duyệt).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics gom các collector dùng trong ứng dụng, đăng ký trên registry riêng.
// Mọi phương thức an toàn khi receiver là nil (tắt metrics trong test).
type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	moderation *prometheus.CounterVec
	cascade    *prometheus.CounterVec
}

// New tạo Metrics với registry riêng, kèm collector của Go runtime và process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Tổng số request HTTP theo method, route và status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Thời gian xử lý request HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		moderation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moderation_actions_total",
			Help: "Số thao tác duyệt/từ chối/xóa theo loại đối tượng.",
		}, []string{"entity", "action"}),
		cascade: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cascade_deleted_documents_total",
			Help: "Số document bị xóa dây chuyền khi xóa shop, theo collection.",
		}, []string{"collection"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.moderation, m.cascade,
	)
	return m
}

// ObserveRequest ghi nhận một request đã xử lý xong.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordModeration ghi nhận thao tác duyệt (entity: shop|offer|job|review, action: approve|reject|delete).
func (m *Metrics) RecordModeration(entity, action string) {
	if m == nil {
		return
	}
	m.moderation.WithLabelValues(entity, action).Inc()
}

// RecordCascade cộng số document bị xóa dây chuyền theo collection.
func (m *Metrics) RecordCascade(collection string, deleted int64) {
	if m == nil || deleted <= 0 {
		return
	}
	m.cascade.WithLabelValues(collection).Add(float64(deleted))
}

// Registry trả về registry (dùng trong test).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler trả về http.Handler phục vụ /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 业务与接口指标
type Metrics struct {
	registry prometheus.Gatherer

	EntityCreated    *prometheus.CounterVec
	EntityUpdated    *prometheus.CounterVec
	ValidationFailed *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// New 在给定的注册表上创建指标；reg 为空时新建独立注册表
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EntityCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_entities_created_total",
			Help: "Total number of entities created through forms or the API",
		}, []string{"entity"}),
		EntityUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_entities_updated_total",
			Help: "Total number of existing entities updated",
		}, []string{"entity"}),
		ValidationFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_validation_failures_total",
			Help: "Total number of rejected submissions",
		}, []string{"entity"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bloodbank_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "path", "status"}),
	}
}

// IncrementCreated 记录一次新增
func (m *Metrics) IncrementCreated(entity string) {
	if m == nil {
		return
	}
	m.EntityCreated.WithLabelValues(entity).Inc()
}

// IncrementUpdated 记录一次更新
func (m *Metrics) IncrementUpdated(entity string) {
	if m == nil {
		return
	}
	m.EntityUpdated.WithLabelValues(entity).Inc()
}

// IncrementValidationFailed 记录一次被拒绝的提交
func (m *Metrics) IncrementValidationFailed(entity string) {
	if m == nil {
		return
	}
	m.ValidationFailed.WithLabelValues(entity).Inc()
}

// ObserveRequest 记录一次 HTTP 请求耗时
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, path, statusLabel(status)).Observe(duration.Seconds())
}

// Handler 以 Prometheus 文本格式暴露指标
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	externalCallsTotal   *prometheus.CounterVec
	externalCallDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		externalCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "external_calls_total",
			Help:        "Total number of calls to external collaborators",
			ConstLabels: constLabels,
		}, []string{"target", "operation", "outcome"}),

		externalCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "external_call_duration_seconds",
			Help:        "External collaborator call duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "operation"}),
	}
}

// ObserveHTTPRequest учитывает завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveExternalCall учитывает вызов внешнего сервиса (Google Calendar / Sheets).
// Безопасен для nil-получателя: при выключенных метриках вызов игнорируется.
func (m *Metrics) ObserveExternalCall(target, operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.externalCallsTotal.WithLabelValues(target, operation, outcome).Inc()
	m.externalCallDuration.WithLabelValues(target, operation).Observe(duration.Seconds())
}

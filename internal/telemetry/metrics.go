package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// PushJob — имя job в Pushgateway.
const PushJob = "dcclient"

// Metrics — метрики запросов к Data Connector.
//
// Хранятся в собственном registry, а не в глобальном:
// процесс живёт один вызов, и отправляются только эти метрики.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	observed int
}

// NewMetrics создаёт и регистрирует метрики.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dcclient_requests_total",
			Help: "Total requests sent to the Data Connector service",
		}, []string{"endpoint", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dcclient_request_duration_seconds",
			Help:    "Data Connector request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// ObserveRequest фиксирует один запрос.
// code == 0 означает, что ответ не был получен (ошибка транспорта).
// Безопасен для nil.
func (m *Metrics) ObserveRequest(endpoint string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}

	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}

	m.observed++
	m.requests.WithLabelValues(endpoint, label).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// Observed сообщает, был ли зафиксирован хотя бы один запрос.
func (m *Metrics) Observed() bool {
	return m != nil && m.observed > 0
}

// Registry возвращает registry с метриками.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Push отправляет метрики в Pushgateway по адресу url.
func (m *Metrics) Push(ctx context.Context, url string) error {
	if m == nil || url == "" {
		return nil
	}

	err := push.New(url, PushJob).
		Gatherer(m.registry).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}

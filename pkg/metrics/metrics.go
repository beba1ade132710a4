package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса.
// Каждый экземпляр держит собственный registry, поэтому New можно вызывать в тестах многократно.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	ReservationsCreated   prometheus.Counter
	ReservationsCancelled *prometheus.CounterVec
}

// New создает и регистрирует метрики с namespace, полученным из имени сервиса
func New(serviceName string) *Metrics {
	ns := namespace(serviceName)
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "db_query_duration_seconds",
			Help:      "Database query latency.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "db_query_errors_total",
			Help:      "Database query errors.",
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_open_connections",
			Help:      "Open connections in the pool.",
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_in_use_connections",
			Help:      "Connections currently in use.",
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_idle_connections",
			Help:      "Idle connections in the pool.",
		}),
		ReservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "reservations_created_total",
			Help:      "Reservations created through the booking flow.",
		}),
		ReservationsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "reservations_cancelled_total",
			Help:      "Cancelled reservations by actor.",
		}, []string{"actor"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.ReservationsCreated,
		m.ReservationsCancelled,
	)

	return m
}

// Handler http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает registry (нужен в тестах для проверки значений)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncReservationCreated безопасен для nil-получателя (метрики выключены)
func (m *Metrics) IncReservationCreated() {
	if m == nil {
		return
	}
	m.ReservationsCreated.Inc()
}

// IncReservationCancelled безопасен для nil-получателя (метрики выключены)
func (m *Metrics) IncReservationCancelled(actor string) {
	if m == nil {
		return
	}
	m.ReservationsCancelled.WithLabelValues(actor).Inc()
}

func namespace(serviceName string) string {
	ns := strings.ToLower(strings.TrimSpace(serviceName))
	ns = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(ns)
	if ns == "" {
		return "villa"
	}
	return ns
}

// Package metrics коллекторы Prometheus сервиса.
// Методы можно вызывать на nil *Metrics: так выглядят выключенные в конфиге метрики.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry
	service  string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec

	appointmentsCreated *prometheus.CounterVec
	slotConflicts       *prometheus.CounterVec
	notificationsFailed *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		service:  serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		dbQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries.",
			},
			[]string{"service", "operation", "status"},
		),
		dbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		dbConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database connection pool state.",
			},
			[]string{"service", "state"},
		),
		appointmentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appointments_created_total",
				Help: "Appointments persisted at booking confirmation.",
			},
			[]string{"service"},
		),
		slotConflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slot_conflicts_total",
				Help: "Confirmations rejected because the slot was taken in the meantime.",
			},
			[]string{"service"},
		),
		notificationsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_failed_total",
				Help: "Confirmation emails that could not be delivered.",
			},
			[]string{"service"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueriesTotal,
		m.dbQueryDuration,
		m.dbConnections,
		m.appointmentsCreated,
		m.slotConflicts,
		m.notificationsFailed,
	)

	return m
}

// Handler возвращает HTTP handler для /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// ObserveQuery фиксирует выполненный SQL запрос
func (m *Metrics) ObserveQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(m.service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

// SetPoolStats обновляет состояние пула соединений
func (m *Metrics) SetPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.service, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.service, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.service, "idle").Set(float64(idle))
}

// IncAppointmentsCreated увеличивает счётчик созданных записей
func (m *Metrics) IncAppointmentsCreated() {
	if m == nil {
		return
	}
	m.appointmentsCreated.WithLabelValues(m.service).Inc()
}

// IncSlotConflicts увеличивает счётчик конфликтов при подтверждении
func (m *Metrics) IncSlotConflicts() {
	if m == nil {
		return
	}
	m.slotConflicts.WithLabelValues(m.service).Inc()
}

// IncNotificationsFailed увеличивает счётчик неотправленных писем
func (m *Metrics) IncNotificationsFailed() {
	if m == nil {
		return
	}
	m.notificationsFailed.WithLabelValues(m.service).Inc()
}

// Package metrics expone métricas Prometheus de la API en un registry propio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Nombres de las métricas.
const (
	MetricRequestsTotal          = "ventas_http_requests_total"
	MetricRequestDurationSeconds = "ventas_http_request_duration_seconds"
	MetricReportsTotal           = "ventas_reports_total"
	MetricDocumentsTotal         = "ventas_documents_total"
)

// Metrics agrupa los colectores de la API.
// Seguro para uso concurrente. Los métodos Observe* sobre un *Metrics nil no hacen nada.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reportsTotal    *prometheus.CounterVec
	documentsTotal  *prometheus.CounterVec
}

// New crea el registry con los colectores de la API más los de proceso y runtime de Go.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRequestsTotal,
			Help: "Peticiones HTTP por método, ruta y estado.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricRequestDurationSeconds,
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricReportsTotal,
			Help: "Reportes servidos por tipo y resultado.",
		}, []string{"report", "result"}),
		documentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricDocumentsTotal,
			Help: "Documentos de venta servidos por tipo y formato.",
		}, []string{"kind", "format"}),
	}
	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.reportsTotal,
		m.documentsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveReport cuenta un reporte; err != nil cuenta como "error".
func (m *Metrics) ObserveReport(report string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reportsTotal.WithLabelValues(report, result).Inc()
}

// ObserveDocument cuenta un documento servido (format: json|pdf).
func (m *Metrics) ObserveDocument(kind, format string) {
	if m == nil {
		return
	}
	m.documentsTotal.WithLabelValues(kind, format).Inc()
}

// Handler expone el registry en formato de texto de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devuelve el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

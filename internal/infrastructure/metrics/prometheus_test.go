package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/infrastructure/metrics"
)

func TestObserveRequest(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("GET", "/api/reports/profit", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "/api/reports/profit", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "/api/reports/profit", 400, time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), metrics.MetricRequestsTotal)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por combinación de etiquetas")
}

func TestObserveReport(t *testing.T) {
	m := metrics.New()
	m.ObserveReport("profit", nil)
	m.ObserveReport("profit", errors.New("x"))
	m.ObserveReport("profit", nil)

	n, err := testutil.GatherAndCount(m.Registry(), metrics.MetricReportsTotal)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveDocument("invoice", "pdf")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `ventas_documents_total{format="pdf",kind="invoice"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.ObserveReport("profit", nil)
		m.ObserveDocument("invoice", "json")
	})
}

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Instrument(t *testing.T) {
	m := New()

	handler := m.Instrument("/v1/stores/:name/kpis")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/stores/Oslo/kpis", nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `hageland_dashboard_http_requests_total{code="404",route="/v1/stores/:name/kpis"} 2`)
	assert.NotContains(t, body, "Oslo")
}

func TestMetrics_ObserveDigest(t *testing.T) {
	m := New()

	m.ObserveDigest(time.Now(), nil)
	m.ObserveDigest(time.Now(), errors.New("falhou"))
	m.ObserveDigest(time.Now(), nil)

	body := scrape(t, m)
	assert.Contains(t, body, `hageland_dashboard_digest_runs_total{status="success"} 2`)
	assert.Contains(t, body, `hageland_dashboard_digest_runs_total{status="failure"} 1`)
	assert.Contains(t, body, "hageland_dashboard_digest_duration_seconds_count 3")
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	m.Instrument("/x")(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.True(t, called)

	m.ObserveDigest(time.Now(), nil)
}

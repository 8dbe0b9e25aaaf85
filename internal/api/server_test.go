package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hageland/store-dashboard-api/infrastructure/repository"
	"github.com/hageland/store-dashboard-api/internal/config"
	"github.com/hageland/store-dashboard-api/internal/usecases/dashboarding"
	"github.com/hageland/store-dashboard-api/pkg/log"
	"github.com/hageland/store-dashboard-api/pkg/metrics"
)

func newTestServer(t *testing.T, rateLimit int) *Server {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		App:    config.App{Env: config.EnvDevelopment},
		Server: config.Server{Host: "localhost", Port: "0"},
		HTTP: config.HTTP{
			AllowedOrigins:     []string{"http://localhost:5173"},
			RateLimitPerMinute: rateLimit,
		},
	}
	provider := dashboarding.NewCachedService(dashboarding.NewService(repository.NewStaticStoreRepository(), nil))

	srv, err := New(cfg, provider, nil, metrics.New(), nil)
	require.NoError(t, err)
	return srv
}

func TestServer_MiddlewareChain(t *testing.T) {
	srv := newTestServer(t, 100)

	req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "localhost:0", srv.httpServer.Addr)
}

func TestServer_RateLimit(t *testing.T) {
	srv := newTestServer(t, 1)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/header", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hageland/store-dashboard-api/pkg/log"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	origins := []string{"http://localhost:5173"}

	tests := []struct {
		name     string
		method   string
		origin   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Origem permitida recebe cabeçalhos",
			method: http.MethodGet,
			origin: "http://localhost:5173",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "Origem desconhecida não recebe cabeçalhos",
			method: http.MethodGet,
			origin: "https://evil.example",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:   "Preflight responde sem chamar o handler",
			method: http.MethodOptions,
			origin: "http://localhost:5173",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/stores", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(origins)(okHandler).ServeHTTP(rec, req)
			tt.validate(t, rec)
		})
	}
}

func TestSecureHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecureHeaders(false)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRateLimit(t *testing.T) {
	log.SetupTestLogger()
	handler := RateLimit(2)(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
		req.RemoteAddr = "10.0.0.1:4321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	require.Len(t, codes, 3)
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("quebrou")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestLoggingMiddleware_KeepsStatus(t *testing.T) {
	log.SetupTestLogger()
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(notFound).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores/Oslo/kpis", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
}

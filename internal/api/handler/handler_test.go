package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hageland/store-dashboard-api/infrastructure/exporter"
	"github.com/hageland/store-dashboard-api/infrastructure/repository"
	"github.com/hageland/store-dashboard-api/internal/api/handler/router"
	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/hageland/store-dashboard-api/internal/usecases/dashboarding"
	"github.com/hageland/store-dashboard-api/pkg/apiErrors"
	"github.com/hageland/store-dashboard-api/pkg/log"
	"github.com/hageland/store-dashboard-api/pkg/metrics"
)

type fakeDigest struct {
	accept    bool
	triggered int
}

func (f *fakeDigest) TriggerManualRun() bool {
	f.triggered++
	return f.accept
}

func (f *fakeDigest) GetStatus() map[string]any {
	return map[string]any{"running": !f.accept}
}

type fakePinger struct {
	err error
}

func (f fakePinger) Enabled() bool { return true }
func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func newTestRouter(digest DigestRunner, cache Pinger) router.Router {
	log.SetupTestLogger()
	provider := dashboarding.NewCachedService(dashboarding.NewService(repository.NewStaticStoreRepository(), nil))
	m := metrics.New()

	return router.New(
		router.WithRoutes(Healthcheck(cache)...),
		router.WithRoutes(Metrics(m)...),
		router.WithRoutes(Instrumented(m, Stores(provider))...),
		router.WithRoutes(Instrumented(m, Comparison(provider, exporter.NewComparisonExporter()))...),
		router.WithRoutes(Instrumented(m, Dashboard(provider))...),
		router.WithRoutes(Instrumented(m, CronJobs(CronJobServices{ChainDigestService: digest}))...),
	)
}

func do(t *testing.T, rt http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestDashboardRoutes(t *testing.T) {
	rt := newTestRouter(&fakeDigest{accept: true}, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		validate   func(t *testing.T, body []byte)
	}{
		{
			name:       "Lista de lojas na ordem do catálogo",
			target:     "/v1/stores",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var tabs []domain.Tab
				require.NoError(t, json.Unmarshal(body, &tabs))
				require.Len(t, tabs, 5)
				assert.Equal(t, "Kolsås", tabs[0].Key)
				assert.Equal(t, "#2d6a4f", tabs[0].Color)
			},
		},
		{
			name:       "KPIs de uma loja com nome acentuado",
			target:     "/v1/stores/" + url.PathEscape("Kolsås") + "/kpis",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var summary domain.KpiSummary
				require.NoError(t, json.Unmarshal(body, &summary))
				assert.Equal(t, "Kolsås", summary.Store)
				assert.Len(t, summary.Entries, 5)
			},
		},
		{
			name:       "Loja desconhecida - 404",
			target:     "/v1/stores/Oslo/radar",
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrStoreNotFound, apiErr.Code)
			},
		},
		{
			name:       "Radar com cinco eixos",
			target:     "/v1/stores/Sande/radar",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var radar []domain.RadarPoint
				require.NoError(t, json.Unmarshal(body, &radar))
				assert.Len(t, radar, 5)
			},
		},
		{
			name:       "Barras de margem com quatro grupos",
			target:     "/v1/stores/Horten/margin-bars",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var bars []domain.MarginBar
				require.NoError(t, json.Unmarshal(body, &bars))
				assert.Len(t, bars, 4)
			},
		},
		{
			name:       "Varegrupper da loja",
			target:     "/v1/stores/Notodden/product-groups",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var groups []domain.ProductGroupBar
				require.NoError(t, json.Unmarshal(body, &groups))
				assert.NotEmpty(t, groups)
			},
		},
		{
			name:       "Tabela comparativa termina com a média",
			target:     "/v1/comparison",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var rows []domain.ComparisonRow
				require.NoError(t, json.Unmarshal(body, &rows))
				require.Len(t, rows, 6)
				average := rows[5]
				assert.True(t, average.IsAverage)
				assert.Equal(t, "80376", average.Sales.String())
				assert.Nil(t, average.MarginPct)
			},
		},
		{
			name:       "Tendências por loja",
			target:     "/v1/comparison/trend",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var trend []domain.TrendPoint
				require.NoError(t, json.Unmarshal(body, &trend))
				assert.Len(t, trend, 5)
			},
		},
		{
			name:       "Comparativo de vendas com rótulo do eixo",
			target:     "/v1/comparison/sales",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var bars []domain.SalesBar
				require.NoError(t, json.Unmarshal(body, &bars))
				require.Len(t, bars, 5)
				assert.Equal(t, "99k", bars[0].TickLabel)
			},
		},
		{
			name:       "Painel sem parâmetro abre a comparação",
			target:     "/v1/dashboard",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var view domain.DashboardView
				require.NoError(t, json.Unmarshal(body, &view))
				assert.Equal(t, domain.ViewKindCompare, view.Kind)
				assert.NotNil(t, view.Compare)
			},
		},
		{
			name:       "Painel de uma loja",
			target:     "/v1/dashboard?view=Sande",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var view domain.DashboardView
				require.NoError(t, json.Unmarshal(body, &view))
				assert.Equal(t, domain.ViewKindStore, view.Kind)
				require.NotNil(t, view.Store)
				assert.Equal(t, "Sande", view.Store.Store)
			},
		},
		{
			name:       "Painel com aba desconhecida - 404",
			target:     "/v1/dashboard?view=Oslo",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Cabeçalho com a aba de comparação primeiro",
			target:     "/v1/dashboard/header",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var header domain.DashboardHeader
				require.NoError(t, json.Unmarshal(body, &header))
				assert.Equal(t, "Week 8, 2026", header.Period)
				require.NotEmpty(t, header.Tabs)
				assert.True(t, header.Tabs[0].IsCompare)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, rt, http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.validate != nil {
				tt.validate(t, rec.Body.Bytes())
			}
		})
	}
}

func TestExportComparison(t *testing.T) {
	rt := newTestRouter(nil, nil)

	rec := do(t, rt, http.MethodGet, "/v1/comparison/export.xlsx")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exporter.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "hageland-comparison-week-8-2026.xlsx")

	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(exporter.SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Average", "80376"}, rows[len(rows)-1])
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name       string
		setup      func() *fakeDigest
		method     string
		target     string
		wantStatus int
		validate   func(t *testing.T, digest *fakeDigest, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "Resumo diário iniciado",
			setup:      func() *fakeDigest { return &fakeDigest{accept: true} },
			method:     http.MethodPost,
			target:     "/v1/cron/digest/run",
			wantStatus: http.StatusAccepted,
			validate: func(t *testing.T, digest *fakeDigest, rec *httptest.ResponseRecorder) {
				assert.Equal(t, 1, digest.triggered)
			},
		},
		{
			name:       "Tipo all dispara o resumo",
			setup:      func() *fakeDigest { return &fakeDigest{accept: true} },
			method:     http.MethodPost,
			target:     "/v1/cron/all/run",
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "Resumo já em execução - 409",
			setup:      func() *fakeDigest { return &fakeDigest{accept: false} },
			method:     http.MethodPost,
			target:     "/v1/cron/digest/run",
			wantStatus: http.StatusConflict,
			validate: func(t *testing.T, digest *fakeDigest, rec *httptest.ResponseRecorder) {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrJobRunning, apiErr.Code)
			},
		},
		{
			name:       "Tipo desconhecido - 400",
			setup:      func() *fakeDigest { return &fakeDigest{accept: true} },
			method:     http.MethodPost,
			target:     "/v1/cron/meta/run",
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, digest *fakeDigest, rec *httptest.ResponseRecorder) {
				assert.Zero(t, digest.triggered)
			},
		},
		{
			name:       "Status do agendador",
			setup:      func() *fakeDigest { return &fakeDigest{accept: true} },
			method:     http.MethodGet,
			target:     "/v1/cron/status",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, digest *fakeDigest, rec *httptest.ResponseRecorder) {
				var status map[string]map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
				assert.Equal(t, false, status["digest"]["running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := tt.setup()
			rt := newTestRouter(digest, nil)

			rec := do(t, rt, tt.method, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, digest, rec)
			}
		})
	}
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name      string
		cache     Pinger
		wantCache string
	}{
		{name: "Sem cache configurado", cache: nil, wantCache: "disabled"},
		{name: "Cache respondendo", cache: fakePinger{}, wantCache: "ok"},
		{name: "Cache fora do ar continua 200", cache: fakePinger{err: errors.New("connection refused")}, wantCache: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestRouter(nil, tt.cache), http.MethodGet, "/healthcheck")

			require.Equal(t, http.StatusOK, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "ok", body["status"])
			assert.Equal(t, tt.wantCache, body["cache"])
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	rt := newTestRouter(nil, nil)

	do(t, rt, http.MethodGet, "/v1/stores/Oslo/kpis")
	rec := do(t, rt, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hageland_dashboard_http_requests_total{code="404",route="/v1/stores/:name/kpis"} 1`)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "hageland-comparison-week-8-2026.xlsx", exportFileName("Week 8, 2026"))
	assert.Equal(t, "hageland-comparison.xlsx", exportFileName(""))
}

package handler

import (
	"net/http"

	"github.com/hageland/store-dashboard-api/infrastructure/exporter"
	"github.com/hageland/store-dashboard-api/internal/api/handler/router"
	"github.com/hageland/store-dashboard-api/internal/usecases/dashboarding"
	"github.com/hageland/store-dashboard-api/pkg/metrics"
)

// Instrumented adiciona a métrica de cada rota, usando o padrão do caminho
// como label
func Instrumented(m *metrics.Metrics, routes []router.Route) []router.Route {
	for i := range routes {
		routes[i].Middlewares = append([]func(http.Handler) http.Handler{m.Instrument(routes[i].Path)}, routes[i].Middlewares...)
	}
	return routes
}

func Healthcheck(cache Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cache),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}

func Stores(provider dashboarding.ViewProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores",
			Method:  http.MethodGet,
			Handler: ListStores(provider),
		},
		{
			Path:    "/v1/stores/:name/kpis",
			Method:  http.MethodGet,
			Handler: GetStoreKpis(provider),
		},
		{
			Path:    "/v1/stores/:name/radar",
			Method:  http.MethodGet,
			Handler: GetStoreRadar(provider),
		},
		{
			Path:    "/v1/stores/:name/product-groups",
			Method:  http.MethodGet,
			Handler: GetStoreProductGroups(provider),
		},
		{
			Path:    "/v1/stores/:name/margin-bars",
			Method:  http.MethodGet,
			Handler: GetStoreMarginBars(provider),
		},
	}
}

func Comparison(provider dashboarding.ViewProvider, xlsx *exporter.ComparisonExporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/comparison",
			Method:  http.MethodGet,
			Handler: GetComparison(provider),
		},
		{
			Path:    "/v1/comparison/trend",
			Method:  http.MethodGet,
			Handler: GetTrend(provider),
		},
		{
			Path:    "/v1/comparison/sales",
			Method:  http.MethodGet,
			Handler: GetSalesComparison(provider),
		},
		{
			Path:    "/v1/comparison/export.xlsx",
			Method:  http.MethodGet,
			Handler: ExportComparison(provider, xlsx),
		},
	}
}

func Dashboard(provider dashboarding.ViewProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(provider),
		},
		{
			Path:    "/v1/dashboard/header",
			Method:  http.MethodGet,
			Handler: GetDashboardHeader(provider),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

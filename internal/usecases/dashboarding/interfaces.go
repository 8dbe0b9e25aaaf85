package dashboarding

import (
	"context"

	"github.com/hageland/store-dashboard-api/internal/domain"
)

// Aggregator monta os modelos de exibição do painel a partir do repositório.
// Todas as operações são puras: mesma entrada, mesma saída.
type Aggregator interface {
	// ListStoreTabs retorna as abas das lojas na ordem do repositório
	ListStoreTabs() []domain.Tab

	// BuildKpiSummary monta os cinco cartões de KPI de uma loja
	BuildKpiSummary(store string) (*domain.KpiSummary, error)

	// BuildComparisonTable monta uma linha por loja seguida da linha de média
	BuildComparisonTable() ([]domain.ComparisonRow, error)

	BuildTrendSeries() ([]domain.TrendPoint, error)
	BuildRadarSeries(store string) ([]domain.RadarPoint, error)
	BuildProductGroupSeries(store string) ([]domain.ProductGroupBar, error)
	BuildMarginBars(store string) ([]domain.MarginBar, error)
	BuildSalesComparison() ([]domain.SalesBar, error)
	BuildHeader() *domain.DashboardHeader

	// BuildView resolve a aba selecionada ("compare", vazio ou nome da loja)
	BuildView(selection string) (*domain.DashboardView, error)
}

// ViewProvider é a versão com contexto usada pela API, pelo CLI e pelo
// agendador. A implementação com cache fica em CachedService.
type ViewProvider interface {
	ListStoreTabs(ctx context.Context) []domain.Tab
	KpiSummary(ctx context.Context, store string) (*domain.KpiSummary, error)
	ComparisonTable(ctx context.Context) ([]domain.ComparisonRow, error)
	TrendSeries(ctx context.Context) ([]domain.TrendPoint, error)
	RadarSeries(ctx context.Context, store string) ([]domain.RadarPoint, error)
	ProductGroupSeries(ctx context.Context, store string) ([]domain.ProductGroupBar, error)
	MarginBars(ctx context.Context, store string) ([]domain.MarginBar, error)
	SalesComparison(ctx context.Context) ([]domain.SalesBar, error)
	Header(ctx context.Context) (*domain.DashboardHeader, error)
	View(ctx context.Context, selection string) (*domain.DashboardView, error)
}

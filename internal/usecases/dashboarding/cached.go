package dashboarding

import (
	"context"

	"github.com/hageland/store-dashboard-api/infrastructure/cache"
	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CachedService expõe o Aggregator com contexto e, quando há Redis, guarda
// os modelos já montados. Erros de domínio nunca são guardados; falhas do
// Redis caem para o cálculo direto.
type CachedService struct {
	aggregator Aggregator
	cache      *cache.Cache
}

// NewCachedService cria o provider sem cache
func NewCachedService(aggregator Aggregator) *CachedService {
	return &CachedService{aggregator: aggregator}
}

// WithCache habilita o cache de modelos de exibição
func (s *CachedService) WithCache(c *cache.Cache) *CachedService {
	s.cache = c
	return s
}

func (s *CachedService) CacheEnabled() bool {
	return s.cache.Enabled()
}

// InvalidateCache troca a versão das chaves
func (s *CachedService) InvalidateCache(ctx context.Context) error {
	if !s.CacheEnabled() {
		return nil
	}
	_, err := s.cache.Bump(ctx)
	return errors.Wrap(err, "dashboarding: erro ao invalidar cache")
}

// fetch executa compute via cache. O erro de compute é sempre devolvido
// como veio; qualquer outro erro vem do Redis.
func fetch[T any](ctx context.Context, s *CachedService, compute func() (T, error), parts ...string) (T, error) {
	if !s.CacheEnabled() {
		return compute()
	}

	var computeErr error
	loader := func(ctx context.Context) (interface{}, error) {
		value, err := compute()
		if err != nil {
			computeErr = err
			return nil, err
		}
		return value, nil
	}

	var dest T
	key, err := s.cache.BuildKey(ctx, parts...)
	if err == nil {
		err = s.cache.FetchJSON(ctx, key, &dest, loader)
	}
	if err == nil {
		return dest, nil
	}
	if computeErr != nil {
		return dest, computeErr
	}

	logrus.WithFields(logrus.Fields{
		"key":   parts,
		"error": err.Error(),
	}).Warn("Cache indisponível, calculando direto")
	return compute()
}

func (s *CachedService) ListStoreTabs(ctx context.Context) []domain.Tab {
	return s.aggregator.ListStoreTabs()
}

func (s *CachedService) KpiSummary(ctx context.Context, store string) (*domain.KpiSummary, error) {
	return fetch(ctx, s, func() (*domain.KpiSummary, error) {
		return s.aggregator.BuildKpiSummary(store)
	}, "kpi", store)
}

func (s *CachedService) ComparisonTable(ctx context.Context) ([]domain.ComparisonRow, error) {
	return fetch(ctx, s, s.aggregator.BuildComparisonTable, "comparison")
}

func (s *CachedService) TrendSeries(ctx context.Context) ([]domain.TrendPoint, error) {
	return fetch(ctx, s, s.aggregator.BuildTrendSeries, "trend")
}

func (s *CachedService) RadarSeries(ctx context.Context, store string) ([]domain.RadarPoint, error) {
	return fetch(ctx, s, func() ([]domain.RadarPoint, error) {
		return s.aggregator.BuildRadarSeries(store)
	}, "radar", store)
}

func (s *CachedService) ProductGroupSeries(ctx context.Context, store string) ([]domain.ProductGroupBar, error) {
	return fetch(ctx, s, func() ([]domain.ProductGroupBar, error) {
		return s.aggregator.BuildProductGroupSeries(store)
	}, "product-groups", store)
}

func (s *CachedService) MarginBars(ctx context.Context, store string) ([]domain.MarginBar, error) {
	return fetch(ctx, s, func() ([]domain.MarginBar, error) {
		return s.aggregator.BuildMarginBars(store)
	}, "margin-bars", store)
}

func (s *CachedService) SalesComparison(ctx context.Context) ([]domain.SalesBar, error) {
	return fetch(ctx, s, s.aggregator.BuildSalesComparison, "sales")
}

func (s *CachedService) Header(ctx context.Context) (*domain.DashboardHeader, error) {
	return fetch(ctx, s, func() (*domain.DashboardHeader, error) {
		return s.aggregator.BuildHeader(), nil
	}, "header")
}

func (s *CachedService) View(ctx context.Context, selection string) (*domain.DashboardView, error) {
	if selection == "" {
		selection = domain.CompareTabKey
	}
	return fetch(ctx, s, func() (*domain.DashboardView, error) {
		return s.aggregator.BuildView(selection)
	}, "view", selection)
}

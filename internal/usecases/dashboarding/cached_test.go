package dashboarding

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/hageland/store-dashboard-api/infrastructure/cache"
	"github.com/hageland/store-dashboard-api/infrastructure/repository"
	"github.com/hageland/store-dashboard-api/infrastructure/repository/mocks"
	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewCache(client, time.Minute), mr
}

func TestCachedService_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	static := repository.NewStaticStoreRepository()
	mockRepo := mocks.NewMockStoreMetricsRepository(ctrl)

	// O repositório só pode ser consultado uma vez
	mockRepo.EXPECT().GetStore("Sande").DoAndReturn(static.GetStore).Times(1)

	c, mr := newTestCache(t)
	svc := NewCachedService(NewService(mockRepo, nil)).WithCache(c)
	require.True(t, svc.CacheEnabled())

	first, err := svc.KpiSummary(ctx, "Sande")
	require.NoError(t, err)
	second, err := svc.KpiSummary(ctx, "Sande")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("dashboard:kpi:Sande:1"))
}

func TestCachedService_ComparisonSurvivesRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	direct := newStaticService()
	svc := NewCachedService(direct).WithCache(c)

	want, err := direct.BuildComparisonTable()
	require.NoError(t, err)

	// A primeira chamada grava, a segunda lê do Redis
	_, err = svc.ComparisonTable(ctx)
	require.NoError(t, err)
	got, err := svc.ComparisonTable(ctx)
	require.NoError(t, err)

	require.Len(t, got, len(want))
	average := got[len(got)-1]
	assert.True(t, average.IsAverage)
	assert.Equal(t, "80376", average.Sales.String())
	assert.Nil(t, average.MarginPct)
	assert.Equal(t, *want[0].Customers, *got[0].Customers)
	assert.Equal(t, want[0].Display.SalesChange.Label(), got[0].Display.SalesChange.Label())
}

func TestCachedService_DomainErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	svc := NewCachedService(newStaticService()).WithCache(c)

	for i := 0; i < 2; i++ {
		view, err := svc.View(ctx, "Oslo")
		assert.Nil(t, view)
		assert.True(t, errors.Is(err, domain.ErrStoreNotFound))
	}
	assert.False(t, mr.Exists("dashboard:view:Oslo:1"))
}

func TestCachedService_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	svc := NewCachedService(newStaticService()).WithCache(c)
	mr.Close()

	trend, err := svc.TrendSeries(ctx)
	require.NoError(t, err)
	assert.Len(t, trend, 5)

	_, err = svc.RadarSeries(ctx, "Oslo")
	assert.True(t, errors.Is(err, domain.ErrStoreNotFound))
}

func TestCachedService_WithoutCache(t *testing.T) {
	ctx := context.Background()
	svc := NewCachedService(newStaticService())

	assert.False(t, svc.CacheEnabled())
	assert.NoError(t, svc.InvalidateCache(ctx))

	view, err := svc.View(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewKindCompare, view.Kind)

	header, err := svc.Header(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Week 8, 2026", header.Period)

	assert.Len(t, svc.ListStoreTabs(ctx), 5)
}

func TestCachedService_InvalidateCache(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	svc := NewCachedService(newStaticService()).WithCache(c)

	_, err := svc.SalesComparison(ctx)
	require.NoError(t, err)
	assert.True(t, mr.Exists("dashboard:sales:1"))

	require.NoError(t, svc.InvalidateCache(ctx))

	_, err = svc.SalesComparison(ctx)
	require.NoError(t, err)
	assert.True(t, mr.Exists("dashboard:sales:2"))
}

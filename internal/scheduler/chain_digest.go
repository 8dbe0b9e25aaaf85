// Package scheduler contém os serviços agendados do painel
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hageland/store-dashboard-api/internal/config"
	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/hageland/store-dashboard-api/pkg/metrics"
	"github.com/hageland/store-dashboard-api/pkg/utils"
)

// ErrDigestRunning indica que já existe uma execução em andamento
var ErrDigestRunning = errors.New("resumo diário já está em execução")

// Quantidade máxima de visões aquecidas em paralelo
const warmUpConcurrency = 4

// DashboardSource é o que o resumo diário precisa do serviço de painel
type DashboardSource interface {
	ListStoreTabs(ctx context.Context) []domain.Tab
	ComparisonTable(ctx context.Context) ([]domain.ComparisonRow, error)
	TrendSeries(ctx context.Context) ([]domain.TrendPoint, error)
	Header(ctx context.Context) (*domain.DashboardHeader, error)
	View(ctx context.Context, selection string) (*domain.DashboardView, error)
	InvalidateCache(ctx context.Context) error
}

type ChainDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

type ChainDigestService struct {
	scheduler          *gocron.Scheduler
	source             DashboardSource
	metrics            *metrics.Metrics
	config             ChainDigestConfig
	now                func() time.Time
	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDigest         *domain.ChainDigest
	lastError          string
}

func NewChainDigestService(source DashboardSource, m *metrics.Metrics, cfg *config.Config) *ChainDigestService {
	digestConfig := ChainDigestConfig{
		CronSchedule: cfg.Digest.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.Digest.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"enabled":       digestConfig.Enabled,
	}).Info("Configuração do resumo diário carregada")

	return &ChainDigestService{
		scheduler: gocron.NewScheduler(time.Local),
		source:    source,
		metrics:   m,
		config:    digestConfig,
		now:       time.Now,
	}
}

func (s *ChainDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunDigest(ctx); err != nil && !errors.Is(err, ErrDigestRunning) {
			logrus.WithError(err).Error("Erro na geração do resumo diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest invalida o cache, aquece todas as visões e calcula o resumo da rede.
// Execuções simultâneas não são permitidas.
func (s *ChainDigestService) RunDigest(ctx context.Context) (*domain.ChainDigest, error) {
	if !s.tryStart() {
		logrus.Warn("Resumo diário já está em execução")
		return nil, ErrDigestRunning
	}
	return s.execute(ctx)
}

// tryStart marca a execução como em andamento na mesma seção crítica da checagem
func (s *ChainDigestService) tryStart() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastRunStartedAt = s.now()
	return true
}

// execute supõe que tryStart já reservou a execução
func (s *ChainDigestService) execute(ctx context.Context) (*domain.ChainDigest, error) {
	started := time.Now()
	digest, err := s.runDigest(ctx)
	s.metrics.ObserveDigest(started, err)

	s.runMutex.Lock()
	s.running = false
	s.lastRunCompletedAt = s.now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastDigest = digest
	}
	s.runMutex.Unlock()

	return digest, err
}

func (s *ChainDigestService) runDigest(ctx context.Context) (*domain.ChainDigest, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da execução")
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando resumo diário")

	if err := s.source.InvalidateCache(ctx); err != nil {
		logger.WithError(err).Warn("Não foi possível invalidar o cache, seguindo com as chaves atuais")
	}

	warmed, err := s.warmUp(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.source.ComparisonTable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar tabela comparativa")
	}
	trend, err := s.source.TrendSeries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar tendências")
	}

	digest := summarize(rows, trend)
	digest.RunID = runID
	digest.GeneratedAt = s.now()
	digest.WarmedViews = warmed

	logger.WithFields(logrus.Fields{
		"digest_stores":      digest.StoreCount,
		"digest_total_sales": digest.TotalSales.String(),
		"digest_average":     digest.AverageSales.String(),
		"digest_best":        digest.BestTrendStore,
		"digest_worst":       digest.WorstTrendStore,
		"digest_warmed":      warmed,
	}).Info("Resumo diário concluído")

	return digest, nil
}

// warmUp monta em paralelo a visão comparativa, o cabeçalho e a visão de
// cada loja. O primeiro erro cancela as demais.
func (s *ChainDigestService) warmUp(ctx context.Context) (int, error) {
	selections := []string{domain.CompareTabKey}
	for _, tab := range s.source.ListStoreTabs(ctx) {
		selections = append(selections, tab.Key)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warmUpConcurrency)

	g.Go(func() error {
		_, err := s.source.Header(gctx)
		return errors.Wrap(err, "erro ao aquecer cabeçalho")
	})
	for _, selection := range selections {
		selection := selection
		g.Go(func() error {
			if _, err := s.source.View(gctx, selection); err != nil {
				return errors.Wrapf(err, "erro ao aquecer visão %q", selection)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(selections) + 1, nil
}

// summarize calcula os números da rede a partir da tabela e das tendências
func summarize(rows []domain.ComparisonRow, trend []domain.TrendPoint) *domain.ChainDigest {
	digest := &domain.ChainDigest{
		TotalSales:   decimal.Zero,
		AverageSales: decimal.Zero,
	}

	for _, row := range rows {
		if row.IsAverage {
			digest.AverageSales = row.Sales
			continue
		}
		digest.StoreCount++
		digest.TotalSales = digest.TotalSales.Add(row.Sales)
	}

	for i, point := range trend {
		if i == 0 || point.SalesTrendPct > digest.BestTrendPct {
			digest.BestTrendStore = point.Store
			digest.BestTrendPct = point.SalesTrendPct
		}
		if i == 0 || point.SalesTrendPct < digest.WorstTrendPct {
			digest.WorstTrendStore = point.Store
			digest.WorstTrendPct = point.SalesTrendPct
		}
	}

	return digest
}

// TriggerManualRun dispara uma execução em segundo plano.
// Retorna false se já houver uma em andamento.
func (s *ChainDigestService) TriggerManualRun() bool {
	if !s.tryStart() {
		logrus.Info("Resumo diário já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando resumo diário manual")
	go func() {
		if _, err := s.execute(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no resumo diário manual")
		}
	}()
	return true
}

// LastDigest retorna o último resumo gerado com sucesso
func (s *ChainDigestService) LastDigest() *domain.ChainDigest {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.lastDigest
}

// GetStatus retorna o status atual do agendador
func (s *ChainDigestService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_error":            s.lastError,
		"last_digest":           s.lastDigest,
	}
}

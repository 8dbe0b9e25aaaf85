package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/hageland/store-dashboard-api/infrastructure/exporter"
	"github.com/hageland/store-dashboard-api/internal/api/handler"
	"github.com/hageland/store-dashboard-api/internal/api/handler/router"
	"github.com/hageland/store-dashboard-api/internal/config"
	"github.com/hageland/store-dashboard-api/internal/usecases/dashboarding"
	"github.com/hageland/store-dashboard-api/pkg/metrics"
	"github.com/hageland/store-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	provider dashboarding.ViewProvider,
	digestService handler.DigestRunner,
	m *metrics.Metrics,
	cache handler.Pinger,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ChainDigestService: digestService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(cache)...),
		router.WithRoutes(handler.Metrics(m)...),
		router.WithRoutes(handler.Instrumented(m, handler.Stores(provider))...),
		router.WithRoutes(handler.Instrumented(m, handler.Comparison(provider, exporter.NewComparisonExporter()))...),
		router.WithRoutes(handler.Instrumented(m, handler.Dashboard(provider))...),
		router.WithRoutes(handler.Instrumented(m, handler.CronJobs(cronServices))...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.SecureHeaders(!config.IsDevelopment()),
		middleware.Cors(config.HTTP.AllowedOrigins),
		middleware.RateLimit(config.HTTP.RateLimitPerMinute),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              config.Address(),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hageland/store-dashboard-api/infrastructure/cache"
	"github.com/hageland/store-dashboard-api/infrastructure/repository"
	"github.com/hageland/store-dashboard-api/internal/api"
	"github.com/hageland/store-dashboard-api/internal/config"
	"github.com/hageland/store-dashboard-api/internal/scheduler"
	"github.com/hageland/store-dashboard-api/internal/usecases/dashboarding"
	"github.com/hageland/store-dashboard-api/pkg/format"
	"github.com/hageland/store-dashboard-api/pkg/log"
	"github.com/hageland/store-dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível e o formato de log com base na configuração
	log.SetEnvironment(cfg.App.Env)
	if err := log.Setup(cfg.App.LogLevel, cfg.IsDevelopment()); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	formatter, err := format.NewFormatter(cfg.Display.Locale, cfg.Display.CurrencySuffix)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de exibição inválida")
	}

	repo := repository.NewStaticStoreRepository()
	service := dashboarding.NewService(repo, formatter)

	viewCache := redisCache(ctx, cfg.Cache)
	defer viewCache.Close()

	provider := dashboarding.NewCachedService(service).WithCache(viewCache)

	m := metrics.New()

	chainDigestService := scheduler.NewChainDigestService(provider, m, cfg)
	if err := chainDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo diário")
	} else {
		logrus.Info("Agendador do resumo diário iniciado com sucesso")
	}

	server, err := api.New(cfg, provider, chainDigestService, m, viewCache)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// redisCache conecta ao Redis quando CACHE_REDIS_URL está definido. Sem URL,
// ou com o Redis fora do ar, o painel calcula direto.
func redisCache(ctx context.Context, cfg config.Cache) *cache.Cache {
	if cfg.RedisURL == "" {
		logrus.Info("Cache de visões desabilitado")
		return nil
	}

	client, err := cache.NewClientFromURL(cfg.RedisURL)
	if err != nil {
		logrus.WithError(err).Warn("URL do Redis inválida, seguindo sem cache")
		return nil
	}

	viewCache := cache.NewCache(client, cfg.TTL)
	if err := viewCache.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível na inicialização, o cache tentará novamente a cada leitura")
	} else {
		logrus.Info("Conexão com Redis estabelecida com sucesso")
	}

	return viewCache
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvDevelopment = "development"

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Display Display `mapstructure:",squash"`
	Cache   Cache   `mapstructure:",squash"`
	HTTP    HTTP    `mapstructure:",squash"`
	Digest  Digest  `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

// Display define como números e moeda aparecem no painel
type Display struct {
	Locale         string `mapstructure:"display_locale"`
	CurrencySuffix string `mapstructure:"currency_suffix"`
}

// Cache de modelos de exibição. RedisURL vazio desliga o cache.
type Cache struct {
	RedisURL string        `mapstructure:"cache_redis_url"`
	TTL      time.Duration `mapstructure:"cache_ttl"`
}

type HTTP struct {
	AllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
	RateLimitPerMinute int      `mapstructure:"rate_limit_per_minute"`
}

type Digest struct {
	CronSchedule string `mapstructure:"digest_cron"`
	Enabled      bool   `mapstructure:"digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", EnvDevelopment)

	viper.SetDefault("DISPLAY_LOCALE", "nb-NO")
	viper.SetDefault("CURRENCY_SUFFIX", "kr")

	viper.SetDefault("CACHE_REDIS_URL", "")
	viper.SetDefault("CACHE_TTL", "10m")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.SetDefault("DIGEST_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DIGEST_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.HTTP.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE deve ser positivo, recebido %d", config.HTTP.RateLimitPerMinute)
	}

	return config, nil
}

// Address é o endereço de escuta do servidor HTTP
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

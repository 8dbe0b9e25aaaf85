package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/hageland/store-dashboard-api/infrastructure/exporter"
	"github.com/hageland/store-dashboard-api/infrastructure/repository"
	"github.com/hageland/store-dashboard-api/internal/config"
	"github.com/hageland/store-dashboard-api/internal/usecases/dashboarding"
	"github.com/hageland/store-dashboard-api/pkg/format"
	"github.com/hageland/store-dashboard-api/pkg/log"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// cli guarda o estado compartilhado entre os comandos
type cli struct {
	provider dashboarding.ViewProvider
	xlsx     *exporter.ComparisonExporter
	output   string
	timeout  time.Duration
}

// newRootCmd monta a árvore de comandos. Com provider nil o painel é montado
// a partir da configuração no primeiro comando executado.
func newRootCmd(provider dashboarding.ViewProvider) *cobra.Command {
	c := &cli{
		provider: provider,
		xlsx:     exporter.NewComparisonExporter(),
	}

	root := &cobra.Command{
		Use:          "dashctl",
		Short:        "Hageland weekly store dashboard",
		Long:         "Query the Hageland weekly dashboard: KPIs, store comparison, trends and radar scores.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch c.output {
			case outputTable, outputJSON, outputYAML:
			default:
				return fmt.Errorf("invalid --output %q: use table, json or yaml", c.output)
			}
			if c.provider != nil {
				return nil
			}
			return c.bootstrap()
		},
	}

	root.PersistentFlags().StringVarP(&c.output, "output", "o", outputTable, "output format: table, json or yaml")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "timeout for each query")

	root.AddCommand(
		c.storesCmd(),
		c.kpiCmd(),
		c.compareCmd(),
		c.trendCmd(),
		c.radarCmd(),
		c.viewCmd(),
		c.exportCmd(),
	)

	return root
}

func (c *cli) bootstrap() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	// No terminal só avisos e erros, para não sujar a saída
	if err := log.Setup("warn", cfg.IsDevelopment()); err != nil {
		return err
	}

	formatter, err := format.NewFormatter(cfg.Display.Locale, cfg.Display.CurrencySuffix)
	if err != nil {
		return err
	}

	service := dashboarding.NewService(repository.NewStaticStoreRepository(), formatter)
	c.provider = dashboarding.NewCachedService(service)
	return nil
}

func (c *cli) queryContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	if c.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.timeout)
}

// render escreve v no formato escolhido; table usa as linhas já formatadas
func (c *cli) render(out io.Writer, v any, t tabular) error {
	switch c.output {
	case outputJSON:
		return writeJSON(out, v)
	case outputYAML:
		return writeYAML(out, v)
	default:
		return writeTable(out, t)
	}
}

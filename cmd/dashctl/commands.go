package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/hageland/store-dashboard-api/pkg/format"
)

func (c *cli) storesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List the stores in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			tabs := c.provider.ListStoreTabs(ctx)
			rows := make([][]string, 0, len(tabs))
			for _, tab := range tabs {
				rows = append(rows, []string{tab.Label, tab.Color})
			}
			return c.render(cmd.OutOrStdout(), tabs, tabular{Headers: []string{"Store", "Color"}, Rows: rows})
		},
	}
}

func (c *cli) kpiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kpi STORE",
		Short: "Show the five KPI cards of a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			summary, err := c.provider.KpiSummary(ctx, args[0])
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), summary, kpiTable(summary))
		},
	}
}

func (c *cli) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Show the store comparison table with the chain average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			rows, err := c.provider.ComparisonTable(ctx)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), rows, comparisonTable(rows))
		},
	}
}

func (c *cli) trendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show sales, customer and margin trends per store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			trend, err := c.provider.TrendSeries(ctx)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), trend, trendTable(trend))
		},
	}
}

func (c *cli) radarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "radar STORE",
		Short: "Show the performance radar of a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			radar, err := c.provider.RadarSeries(ctx, args[0])
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(radar))
			for _, point := range radar {
				rows = append(rows, []string{point.Axis, strconv.FormatFloat(point.Value, 'f', -1, 64)})
			}
			return c.render(cmd.OutOrStdout(), radar, tabular{Title: args[0], Headers: []string{"Axis", "Score"}, Rows: rows})
		},
	}
}

func (c *cli) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [STORE]",
		Short: "Show the full dashboard view of a tab (comparison when no store is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			selection := domain.CompareTabKey
			if len(args) == 1 {
				selection = args[0]
			}

			view, err := c.provider.View(ctx, selection)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), view, viewTable(view))
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the comparison table to an .xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.queryContext(cmd)
			defer cancel()

			rows, err := c.provider.ComparisonTable(ctx)
			if err != nil {
				return err
			}
			header, err := c.provider.Header(ctx)
			if err != nil {
				return err
			}

			file, err := os.Create(args[0])
			if err != nil {
				return errors.Wrap(err, "erro ao criar arquivo da planilha")
			}
			defer file.Close()

			if err := c.xlsx.Write(file, header.Period, rows); err != nil {
				return err
			}
			if err := file.Close(); err != nil {
				return errors.Wrap(err, "erro ao fechar arquivo da planilha")
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d rows)\n", args[0], len(rows))
			return err
		},
	}
}

func kpiTable(summary *domain.KpiSummary) tabular {
	rows := make([][]string, 0, len(summary.Entries))
	for _, entry := range summary.Entries {
		rows = append(rows, []string{entry.Label, entry.Value, entry.Glyph + " " + entry.Delta})
	}
	return tabular{Title: summary.Store, Headers: []string{"KPI", "Value", "Change"}, Rows: rows}
}

func comparisonTable(rows []domain.ComparisonRow) tabular {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		d := row.Display
		out = append(out, []string{
			row.Name,
			d.Sales,
			arrowLabel(d.SalesChange),
			d.Margin,
			arrowLabel(d.MarginDelta),
			d.Customers,
			arrowLabel(d.CustomerChange),
			d.RevenuePerCustomer,
			d.CampaignShare,
		})
	}
	return tabular{
		Headers: []string{"Store", "Sales", "Sales +/-", "Margin", "Margin +/-", "Customers", "Customers +/-", "Revenue/customer", "Campaign"},
		Rows:    out,
	}
}

func trendTable(trend []domain.TrendPoint) tabular {
	rows := make([][]string, 0, len(trend))
	for _, point := range trend {
		rows = append(rows, []string{
			point.Store,
			format.FormatSignedPct(point.SalesTrendPct),
			format.FormatSignedPct(point.CustomerTrendPct),
			format.FormatSignedPoints(point.MarginChangePp),
		})
	}
	return tabular{Headers: []string{"Store", "Sales", "Customers", "Margin"}, Rows: rows}
}

func viewTable(view *domain.DashboardView) tabular {
	if view.Kind == domain.ViewKindCompare && view.Compare != nil {
		table := comparisonTable(view.Compare.Table)
		table.Title = "Comparison"
		trend := trendTable(view.Compare.Trend)
		trend.Title = "Trend"
		table.Next = &trend
		return table
	}

	store := view.Store
	kpis := kpiTable(store.Kpis)

	bars := make([][]string, 0, len(store.MarginBars))
	for _, bar := range store.MarginBars {
		bars = append(bars, []string{bar.Name, bar.Label})
	}
	margin := tabular{Title: "Margin by product group", Headers: []string{"Product group", "Margin"}, Rows: bars}
	kpis.Next = &margin
	return kpis
}

func arrowLabel(a *format.Arrow) string {
	if a == nil {
		return ""
	}
	return a.Label()
}

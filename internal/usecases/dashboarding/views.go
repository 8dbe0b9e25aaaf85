package dashboarding

import (
	"fmt"
	"math"

	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/hageland/store-dashboard-api/pkg/format"
)

const (
	// Quantidade de varegrupper exibidas nas barras de DB%
	marginBarCount = 4

	// Limiares de cor das barras de DB%
	marginBarAccentAbove   = 60.0
	marginLabelAccentAbove = 50.0
)

func (s *Service) BuildProductGroupSeries(store string) ([]domain.ProductGroupBar, error) {
	record, err := s.repo.GetStore(store)
	if err != nil {
		return nil, err
	}

	color := domain.StoreColor(record.Name)
	bars := make([]domain.ProductGroupBar, 0, len(record.ProductGroups))
	for _, group := range record.ProductGroups {
		bars = append(bars, domain.ProductGroupBar{
			Name:       group.Name,
			Sales:      group.Sales,
			SalesLabel: s.formatter.FormatCurrency(group.Sales),
			MarginPct:  group.MarginPct,
			Color:      color,
		})
	}
	return bars, nil
}

// BuildMarginBars usa as quatro primeiras varegrupper, sem reordenar
func (s *Service) BuildMarginBars(store string) ([]domain.MarginBar, error) {
	record, err := s.repo.GetStore(store)
	if err != nil {
		return nil, err
	}

	groups := record.ProductGroups
	if len(groups) > marginBarCount {
		groups = groups[:marginBarCount]
	}

	bars := make([]domain.MarginBar, 0, len(groups))
	for _, group := range groups {
		bar := domain.MarginBar{
			Name:       group.Name,
			MarginPct:  group.MarginPct,
			WidthPct:   math.Max(0, group.MarginPct),
			BarColor:   domain.LimeColor,
			LabelColor: domain.AlertColor,
			Label:      format.FormatPlainPct(group.MarginPct),
		}
		if group.MarginPct > marginBarAccentAbove {
			bar.BarColor = domain.AccentColor
		}
		if group.MarginPct > marginLabelAccentAbove {
			bar.LabelColor = domain.AccentColor
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func (s *Service) BuildSalesComparison() ([]domain.SalesBar, error) {
	records, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	bars := make([]domain.SalesBar, 0, len(records))
	for _, record := range records {
		bars = append(bars, domain.SalesBar{
			Store:      record.Name,
			Color:      domain.StoreColor(record.Name),
			Sales:      record.TotalSales,
			SalesLabel: s.formatter.FormatCurrency(record.TotalSales),
			TickLabel:  format.FormatThousandsTick(record.TotalSales.InexactFloat64()),
			MarginPct:  record.GrossMarginPct,
			Customers:  record.CustomerCount,
		})
	}
	return bars, nil
}

// BuildHeader monta o cabeçalho da rede com as abas: comparação primeiro,
// depois as lojas na ordem do repositório.
func (s *Service) BuildHeader() *domain.DashboardHeader {
	chain := s.repo.GetChainSummary()

	tabs := make([]domain.Tab, 0, len(s.repo.ListStoreNames())+1)
	tabs = append(tabs, domain.Tab{
		Key:       domain.CompareTabKey,
		Label:     CompareTabLabel,
		IsCompare: true,
	})
	tabs = append(tabs, s.ListStoreTabs()...)

	source := chain.Source
	if chain.UpdateInterval != "" {
		source = fmt.Sprintf("Source: %s · updated %s", chain.Source, chain.UpdateInterval)
	}

	return &domain.DashboardHeader{
		ChainName:    chain.ChainName,
		Title:        chain.Title,
		Period:       fmt.Sprintf("Week %d, %d", chain.ReportWeek, chain.ReportYear),
		RevenueLabel: "Chain revenue",
		Revenue:      s.formatter.FormatCurrency(chain.Revenue),
		Change:       format.DeltaArrow(chain.RevenueChange),
		ChangeLabel:  "vs. last year",
		Source:       source,
		Tabs:         tabs,
	}
}

// BuildView resolve a seleção de aba. Vazio ou "compare" levam à visão
// comparativa; qualquer outro valor precisa ser o nome de uma loja.
func (s *Service) BuildView(selection string) (*domain.DashboardView, error) {
	if selection == "" || selection == domain.CompareTabKey {
		return s.buildCompareView()
	}
	return s.buildStoreView(selection)
}

func (s *Service) buildCompareView() (*domain.DashboardView, error) {
	table, err := s.BuildComparisonTable()
	if err != nil {
		return nil, err
	}
	salesBars, err := s.BuildSalesComparison()
	if err != nil {
		return nil, err
	}
	trend, err := s.BuildTrendSeries()
	if err != nil {
		return nil, err
	}

	return &domain.DashboardView{
		Selection: domain.CompareTabKey,
		Kind:      domain.ViewKindCompare,
		Compare: &domain.CompareView{
			Table:     table,
			SalesBars: salesBars,
			Trend:     trend,
		},
	}, nil
}

func (s *Service) buildStoreView(store string) (*domain.DashboardView, error) {
	kpis, err := s.BuildKpiSummary(store)
	if err != nil {
		return nil, err
	}
	groups, err := s.BuildProductGroupSeries(store)
	if err != nil {
		return nil, err
	}
	radar, err := s.BuildRadarSeries(store)
	if err != nil {
		return nil, err
	}
	marginBars, err := s.BuildMarginBars(store)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardView{
		Selection: store,
		Kind:      domain.ViewKindStore,
		Store: &domain.StoreView{
			Store:         kpis.Store,
			Color:         kpis.Color,
			Kpis:          kpis,
			ProductGroups: groups,
			Radar:         radar,
			MarginBars:    marginBars,
		},
	}, nil
}

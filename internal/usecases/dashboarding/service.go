// Package dashboarding agrega os números das lojas em modelos prontos para
// exibição: cartões de KPI, tabela comparativa, tendências e radar.
package dashboarding

import (
	"fmt"

	"github.com/hageland/store-dashboard-api/infrastructure/repository"
	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/hageland/store-dashboard-api/pkg/format"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	AverageRowName  = "Average"
	CompareTabLabel = "Comparison"
)

// Service não guarda estado além do repositório e do formatador, que são
// imutáveis. Pode ser usado por várias goroutines sem locks.
type Service struct {
	repo      repository.StoreMetricsRepository
	formatter *format.Formatter
}

// NewService cria o serviço de agregação; formatter nil usa o padrão nb-NO
func NewService(repo repository.StoreMetricsRepository, formatter *format.Formatter) *Service {
	if formatter == nil {
		formatter = format.Default()
	}
	return &Service{
		repo:      repo,
		formatter: formatter,
	}
}

func (s *Service) ListStoreTabs() []domain.Tab {
	names := s.repo.ListStoreNames()
	tabs := make([]domain.Tab, 0, len(names))
	for _, name := range names {
		tabs = append(tabs, domain.Tab{
			Key:   name,
			Label: name,
			Color: domain.StoreColor(name),
		})
	}
	return tabs
}

func (s *Service) BuildKpiSummary(store string) (*domain.KpiSummary, error) {
	record, err := s.repo.GetStore(store)
	if err != nil {
		return nil, err
	}

	f := s.formatter
	perCustomerDelta := record.RevenuePerCustomerDelta.InexactFloat64()

	entries := []domain.KpiEntry{
		kpiEntry(domain.KpiSales, "Sales",
			f.FormatCurrency(record.TotalSales),
			format.FormatAbsPct(record.SalesChangePct),
			record.SalesChangePct, format.IsNonNegative(record.SalesChangePct)),
		kpiEntry(domain.KpiMargin, "Gross margin",
			format.FormatPlainPct(record.GrossMarginPct),
			format.FormatAbsPoints(record.GrossMarginDeltaPp),
			record.GrossMarginDeltaPp, format.IsNonNegative(record.GrossMarginDeltaPp)),
		kpiEntry(domain.KpiCustomers, "Customers",
			f.FormatNumber(int64(record.CustomerCount)),
			format.FormatAbsPct(record.CustomerChangePct),
			record.CustomerChangePct, format.IsNonNegative(record.CustomerChangePct)),
		kpiEntry(domain.KpiRevenuePerCustomer, "Revenue/customer",
			f.FormatCurrency(record.RevenuePerCustomer),
			f.FormatSignedCurrency(record.RevenuePerCustomerDelta),
			perCustomerDelta, format.IsNonNegative(perCustomerDelta)),
		// Campanha é sempre exibida como positiva
		kpiEntry(domain.KpiCampaign, "Campaign revenue",
			f.FormatCurrency(record.CampaignRevenue),
			format.FormatPlainPct(record.CampaignRevenueSharePct)+" of total",
			record.CampaignRevenueSharePct, true),
	}

	return &domain.KpiSummary{
		Store:   record.Name,
		Color:   domain.StoreColor(record.Name),
		Entries: entries,
	}, nil
}

func kpiEntry(key domain.KpiKey, label, value, delta string, change float64, positive bool) domain.KpiEntry {
	entry := domain.KpiEntry{
		Key:        key,
		Label:      label,
		Value:      value,
		Delta:      delta,
		Change:     change,
		IsPositive: positive,
	}
	if positive {
		entry.Glyph = format.UpGlyph
		entry.Color = format.UpColor
	} else {
		entry.Glyph = format.DownGlyph
		entry.Color = format.DownColor
	}
	return entry
}

// BuildComparisonTable retorna N linhas de loja mais a linha de média.
// A média cobre apenas as vendas; as outras colunas da média ficam nil.
func (s *Service) BuildComparisonTable() ([]domain.ComparisonRow, error) {
	records, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ComparisonRow, 0, len(records)+1)
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.TotalSales)
		rows = append(rows, s.storeRow(record))
	}

	average := averageSales(total, len(records))
	rows = append(rows, domain.ComparisonRow{
		Name:      AverageRowName,
		Color:     domain.AccentColor,
		IsAverage: true,
		Sales:     average,
		Display: domain.ComparisonDisplay{
			Sales: s.formatter.FormatAmount(average),
		},
	})

	logrus.WithFields(logrus.Fields{
		"stores":  len(records),
		"average": average.String(),
	}).Debug("Tabela comparativa montada")

	return rows, nil
}

func (s *Service) storeRow(record domain.StoreRecord) domain.ComparisonRow {
	f := s.formatter
	salesChange := record.SalesChangePct
	margin := record.GrossMarginPct
	marginDelta := record.GrossMarginDeltaPp
	customers := record.CustomerCount
	customerChange := record.CustomerChangePct
	perCustomer := record.RevenuePerCustomer
	campaignShare := record.CampaignRevenueSharePct

	salesArrow := format.DeltaArrow(salesChange)
	marginArrow := format.DeltaArrow(marginDelta)
	customerArrow := format.DeltaArrow(customerChange)

	return domain.ComparisonRow{
		Name:               record.Name,
		Color:              domain.StoreColor(record.Name),
		Sales:              record.TotalSales,
		SalesChangePct:     &salesChange,
		MarginPct:          &margin,
		MarginDeltaPp:      &marginDelta,
		Customers:          &customers,
		CustomerChangePct:  &customerChange,
		RevenuePerCustomer: &perCustomer,
		CampaignSharePct:   &campaignShare,
		Display: domain.ComparisonDisplay{
			Sales:              f.FormatAmount(record.TotalSales),
			SalesChange:        &salesArrow,
			Margin:             format.FormatPlainPct(margin),
			MarginDelta:        &marginArrow,
			Customers:          f.FormatNumber(int64(customers)),
			CustomerChange:     &customerArrow,
			RevenuePerCustomer: f.FormatCurrency(perCustomer),
			CampaignShare:      format.FormatPlainPct(campaignShare),
		},
	}
}

// averageSales arredonda a média para coroas inteiras (meio para cima)
func averageSales(total decimal.Decimal, count int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(count))).Round(0)
}

func (s *Service) BuildTrendSeries() ([]domain.TrendPoint, error) {
	records, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	points := make([]domain.TrendPoint, 0, len(records))
	for _, record := range records {
		points = append(points, domain.TrendPoint{
			Store:            record.Name,
			Color:            domain.StoreColor(record.Name),
			SalesTrendPct:    record.SalesChangePct,
			CustomerTrendPct: record.CustomerChangePct,
			MarginChangePp:   record.GrossMarginDeltaPp,
		})
	}
	return points, nil
}

func (s *Service) BuildRadarSeries(store string) ([]domain.RadarPoint, error) {
	record, err := s.repo.GetStore(store)
	if err != nil {
		return nil, err
	}

	if len(record.PerformanceRadar) != domain.RadarAxisCount {
		return nil, domain.NewInvariantError(record.Name, "PerformanceRadar",
			fmt.Sprintf("esperados %d valores, encontrados %d", domain.RadarAxisCount, len(record.PerformanceRadar)))
	}

	points := make([]domain.RadarPoint, 0, domain.RadarAxisCount)
	for i, axis := range domain.RadarAxes {
		points = append(points, domain.RadarPoint{Axis: axis, Value: record.PerformanceRadar[i]})
	}
	return points, nil
}

// loadAll busca todos os registros na ordem do repositório. Um catálogo vazio
// não tem média definida e é tratado como violação de invariante.
func (s *Service) loadAll() ([]domain.StoreRecord, error) {
	names := s.repo.ListStoreNames()
	if len(names) == 0 {
		return nil, domain.NewInvariantError("", "Stores", "catálogo sem lojas")
	}

	records := make([]domain.StoreRecord, 0, len(names))
	for _, name := range names {
		record, err := s.repo.GetStore(name)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

// RadarAxes são os rótulos fixos do radar de desempenho, na ordem em que os
// valores de PerformanceRadar são armazenados.
var RadarAxes = []string{"Sales trend", "Margin %", "Customers", "Campaign", "Revenue/customer"}

// RadarAxisCount é o tamanho obrigatório de PerformanceRadar
const RadarAxisCount = 5

type ProductGroup struct {
	Name      string          `json:"name" validate:"required"`
	Sales     decimal.Decimal `json:"sales"`
	MarginPct float64         `json:"margin_pct" validate:"lte=100"`
}

// StoreRecord representa os números semanais de uma loja.
// Registros são imutáveis depois de carregados no repositório.
type StoreRecord struct {
	ID                      StoreID         `json:"-"`
	Name                    string          `json:"name" validate:"required"`
	TotalSales              decimal.Decimal `json:"total_sales"`
	SalesChangePct          float64         `json:"sales_change_pct"`
	GrossMarginPct          float64         `json:"gross_margin_pct" validate:"gte=0,lte=100"`
	GrossMarginDeltaPp      float64         `json:"gross_margin_delta_pp"`
	CustomerCount           int             `json:"customer_count" validate:"gte=0"`
	CustomerChangePct       float64         `json:"customer_change_pct"`
	RevenuePerCustomer      decimal.Decimal `json:"revenue_per_customer"`
	RevenuePerCustomerDelta decimal.Decimal `json:"revenue_per_customer_delta"`
	CampaignRevenue         decimal.Decimal `json:"campaign_revenue"`
	CampaignRevenueSharePct float64         `json:"campaign_revenue_share_pct" validate:"gte=0,lte=100"`
	ProductGroups           []ProductGroup  `json:"product_groups" validate:"required,min=1,dive"`
	PerformanceRadar        []float64       `json:"performance_radar" validate:"len=5,dive,gte=0,lte=100"`
}

// Clone devolve uma cópia profunda do registro, para que nenhum chamador
// consiga alterar os slices guardados no repositório.
func (r StoreRecord) Clone() StoreRecord {
	out := r
	if r.ProductGroups != nil {
		out.ProductGroups = make([]ProductGroup, len(r.ProductGroups))
		copy(out.ProductGroups, r.ProductGroups)
	}
	if r.PerformanceRadar != nil {
		out.PerformanceRadar = make([]float64, len(r.PerformanceRadar))
		copy(out.PerformanceRadar, r.PerformanceRadar)
	}
	return out
}

// ChainSummary são os números da rede exibidos no cabeçalho do painel
type ChainSummary struct {
	ChainName      string          `json:"chain_name"`
	Title          string          `json:"title"`
	Revenue        decimal.Decimal `json:"revenue"`
	RevenueChange  float64         `json:"revenue_change_pct"`
	ReportWeek     int             `json:"report_week" validate:"gte=1,lte=53"`
	ReportYear     int             `json:"report_year" validate:"gte=2000"`
	Source         string          `json:"source"`
	UpdateInterval string          `json:"update_interval"`
}

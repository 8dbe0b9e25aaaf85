package domain

import (
	"github.com/hageland/store-dashboard-api/pkg/format"
	"github.com/shopspring/decimal"
)

type KpiKey string

const (
	KpiSales              KpiKey = "sales"
	KpiMargin             KpiKey = "margin"
	KpiCustomers          KpiKey = "customers"
	KpiRevenuePerCustomer KpiKey = "revenue_per_customer"
	KpiCampaign           KpiKey = "campaign"
)

// KpiEntry é um cartão de KPI pronto para exibição
type KpiEntry struct {
	Key        KpiKey  `json:"key"`
	Label      string  `json:"label"`
	Value      string  `json:"value"`
	Delta      string  `json:"delta"`
	Change     float64 `json:"change"`
	IsPositive bool    `json:"is_positive"`
	Glyph      string  `json:"glyph"`
	Color      string  `json:"color"`
}

type KpiSummary struct {
	Store   string     `json:"store"`
	Color   string     `json:"color"`
	Entries []KpiEntry `json:"entries"`
}

// ComparisonRow é uma linha da tabela comparativa. Na linha de média apenas
// Sales é preenchido; os demais campos ficam nil.
type ComparisonRow struct {
	Name               string            `json:"name"`
	Color              string            `json:"color,omitempty"`
	IsAverage          bool              `json:"is_average"`
	Sales              decimal.Decimal   `json:"sales"`
	SalesChangePct     *float64          `json:"sales_change_pct"`
	MarginPct          *float64          `json:"margin_pct"`
	MarginDeltaPp      *float64          `json:"margin_delta_pp"`
	Customers          *int              `json:"customers"`
	CustomerChangePct  *float64          `json:"customer_change_pct"`
	RevenuePerCustomer *decimal.Decimal  `json:"revenue_per_customer"`
	CampaignSharePct   *float64          `json:"campaign_share_pct"`
	Display            ComparisonDisplay `json:"display"`
}

type ComparisonDisplay struct {
	Sales              string        `json:"sales"`
	SalesChange        *format.Arrow `json:"sales_change,omitempty"`
	Margin             string        `json:"margin,omitempty"`
	MarginDelta        *format.Arrow `json:"margin_delta,omitempty"`
	Customers          string        `json:"customers,omitempty"`
	CustomerChange     *format.Arrow `json:"customer_change,omitempty"`
	RevenuePerCustomer string        `json:"revenue_per_customer,omitempty"`
	CampaignShare      string        `json:"campaign_share,omitempty"`
}

type TrendPoint struct {
	Store            string  `json:"store"`
	Color            string  `json:"color"`
	SalesTrendPct    float64 `json:"sales_trend_pct"`
	CustomerTrendPct float64 `json:"customer_trend_pct"`
	MarginChangePp   float64 `json:"margin_change_pp"`
}

type RadarPoint struct {
	Axis  string  `json:"axis"`
	Value float64 `json:"value"`
}

type ProductGroupBar struct {
	Name       string          `json:"name"`
	Sales      decimal.Decimal `json:"sales"`
	SalesLabel string          `json:"sales_label"`
	MarginPct  float64         `json:"margin_pct"`
	Color      string          `json:"color"`
}

// MarginBar é a barra de DB% das principais varegrupper
type MarginBar struct {
	Name       string  `json:"name"`
	MarginPct  float64 `json:"margin_pct"`
	WidthPct   float64 `json:"width_pct"`
	BarColor   string  `json:"bar_color"`
	LabelColor string  `json:"label_color"`
	Label      string  `json:"label"`
}

type SalesBar struct {
	Store      string          `json:"store"`
	Color      string          `json:"color"`
	Sales      decimal.Decimal `json:"sales"`
	SalesLabel string          `json:"sales_label"`
	TickLabel  string          `json:"tick_label"`
	MarginPct  float64         `json:"margin_pct"`
	Customers  int             `json:"customers"`
}

// CompareTabKey é a seleção da visão comparativa
const CompareTabKey = "compare"

type Tab struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Color     string `json:"color,omitempty"`
	IsCompare bool   `json:"is_compare"`
}

type DashboardHeader struct {
	ChainName    string       `json:"chain_name"`
	Title        string       `json:"title"`
	Period       string       `json:"period"`
	RevenueLabel string       `json:"revenue_label"`
	Revenue      string       `json:"revenue"`
	Change       format.Arrow `json:"change"`
	ChangeLabel  string       `json:"change_label"`
	Source       string       `json:"source"`
	Tabs         []Tab        `json:"tabs"`
}

type CompareView struct {
	Table     []ComparisonRow `json:"table"`
	SalesBars []SalesBar      `json:"sales_bars"`
	Trend     []TrendPoint    `json:"trend"`
}

type StoreView struct {
	Store         string            `json:"store"`
	Color         string            `json:"color"`
	Kpis          *KpiSummary       `json:"kpis"`
	ProductGroups []ProductGroupBar `json:"product_groups"`
	Radar         []RadarPoint      `json:"radar"`
	MarginBars    []MarginBar       `json:"margin_bars"`
}

type ViewKind string

const (
	ViewKindCompare ViewKind = "compare"
	ViewKindStore   ViewKind = "store"
)

// DashboardView é o modelo completo da aba selecionada
type DashboardView struct {
	Selection string       `json:"selection"`
	Kind      ViewKind     `json:"kind"`
	Compare   *CompareView `json:"compare,omitempty"`
	Store     *StoreView   `json:"store,omitempty"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChainDigest é o resumo da rede gerado pelo agendador diário
type ChainDigest struct {
	RunID           string          `json:"run_id"`
	GeneratedAt     time.Time       `json:"generated_at"`
	StoreCount      int             `json:"store_count"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	AverageSales    decimal.Decimal `json:"average_sales"`
	BestTrendStore  string          `json:"best_trend_store"`
	BestTrendPct    float64         `json:"best_trend_pct"`
	WorstTrendStore string          `json:"worst_trend_store"`
	WorstTrendPct   float64         `json:"worst_trend_pct"`
	WarmedViews     int             `json:"warmed_views"`
}

package repository

import (
	"github.com/hageland/store-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Números da uke 8, 2026. Fonte: Hageland Seebrite.

func kr(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func hagelandChain() domain.ChainSummary {
	return domain.ChainSummary{
		ChainName:      "Hageland",
		Title:          "Store overview",
		Revenue:        kr(7598484),
		RevenueChange:  -11.5,
		ReportWeek:     8,
		ReportYear:     2026,
		Source:         "Hageland Seebrite",
		UpdateInterval: "daily",
	}
}

func hagelandStores() []domain.StoreRecord {
	return []domain.StoreRecord{
		{
			ID:                      domain.StoreKolsas,
			Name:                    domain.StoreKolsas.String(),
			TotalSales:              kr(98975),
			SalesChangePct:          -13.4,
			GrossMarginPct:          48.0,
			GrossMarginDeltaPp:      -8.0,
			CustomerCount:           268,
			CustomerChangePct:       -21.6,
			RevenuePerCustomer:      kr(376),
			RevenuePerCustomerDelta: kr(36),
			CampaignRevenue:         kr(10613),
			CampaignRevenueSharePct: 10.7,
			ProductGroups: []domain.ProductGroup{
				{Name: "Inneplanter", Sales: kr(20305), MarginPct: 42.9},
				{Name: "Frø og løk", Sales: kr(12711), MarginPct: 57.1},
				{Name: "Dekor", Sales: kr(9713), MarginPct: 56.1},
				{Name: "Pet", Sales: kr(8353), MarginPct: 60.6},
				{Name: "Hageredskap", Sales: kr(8074), MarginPct: 55.2},
				{Name: "Snittblomst", Sales: kr(7380), MarginPct: 45.5},
			},
			PerformanceRadar: []float64{78, 77, 38, 62, 82},
		},
		{
			ID:                      domain.StoreAssiden,
			Name:                    domain.StoreAssiden.String(),
			TotalSales:              kr(66765),
			SalesChangePct:          -48.0,
			GrossMarginPct:          54.7,
			GrossMarginDeltaPp:      -1.0,
			CustomerCount:           275,
			CustomerChangePct:       -24.5,
			RevenuePerCustomer:      kr(250),
			RevenuePerCustomerDelta: kr(-110),
			CampaignRevenue:         kr(10281),
			CampaignRevenueSharePct: 15.4,
			ProductGroups: []domain.ProductGroup{
				{Name: "Inneplanter", Sales: kr(18557), MarginPct: 49.5},
				{Name: "Pet", Sales: kr(8542), MarginPct: 48.4},
				{Name: "Snittblomst", Sales: kr(7384), MarginPct: 47.3},
				{Name: "Dekor", Sales: kr(5807), MarginPct: 65.1},
				{Name: "Jord/gjødsel", Sales: kr(5316), MarginPct: 77.3},
				{Name: "Frø og løk", Sales: kr(4772), MarginPct: 56.8},
			},
			PerformanceRadar: []float64{30, 80, 42, 68, 55},
		},
		{
			ID:                      domain.StoreNotodden,
			Name:                    domain.StoreNotodden.String(),
			TotalSales:              kr(53981),
			SalesChangePct:          -21.8,
			GrossMarginPct:          55.2,
			GrossMarginDeltaPp:      4.6,
			CustomerCount:           217,
			CustomerChangePct:       -7.3,
			RevenuePerCustomer:      kr(256),
			RevenuePerCustomerDelta: kr(-46),
			CampaignRevenue:         kr(6996),
			CampaignRevenueSharePct: 13.0,
			ProductGroups: []domain.ProductGroup{
				{Name: "Inneplanter", Sales: kr(16644), MarginPct: 55.9},
				{Name: "Jord/gjødsel", Sales: kr(7018), MarginPct: 73.5},
				{Name: "Pet", Sales: kr(6436), MarginPct: 40.8},
				{Name: "Frø og løk", Sales: kr(4418), MarginPct: 58.3},
				{Name: "Hageredskap", Sales: kr(4394), MarginPct: 61.2},
				{Name: "Dekor", Sales: kr(4391), MarginPct: 57.3},
			},
			PerformanceRadar: []float64{56, 82, 60, 58, 65},
		},
		{
			ID:                      domain.StoreSande,
			Name:                    domain.StoreSande.String(),
			TotalSales:              kr(101816),
			SalesChangePct:          -13.2,
			GrossMarginPct:          50.4,
			GrossMarginDeltaPp:      -3.4,
			CustomerCount:           374,
			CustomerChangePct:       -12.0,
			RevenuePerCustomer:      kr(280),
			RevenuePerCustomerDelta: kr(-2),
			CampaignRevenue:         kr(10393),
			CampaignRevenueSharePct: 10.2,
			ProductGroups: []domain.ProductGroup{
				{Name: "Pet", Sales: kr(21386), MarginPct: 40.6},
				{Name: "Inneplanter", Sales: kr(20095), MarginPct: 59.0},
				{Name: "Snittblomst", Sales: kr(17181), MarginPct: 53.8},
				{Name: "Mat", Sales: kr(9484), MarginPct: 44.4},
				{Name: "Dekor", Sales: kr(6876), MarginPct: 57.5},
				{Name: "Innepotter", Sales: kr(4947), MarginPct: 60.4},
			},
			PerformanceRadar: []float64{66, 75, 65, 62, 72},
		},
		{
			ID:                      domain.StoreHorten,
			Name:                    domain.StoreHorten.String(),
			TotalSales:              kr(80343),
			SalesChangePct:          -11.0,
			GrossMarginPct:          52.1,
			GrossMarginDeltaPp:      -3.0,
			CustomerCount:           337,
			CustomerChangePct:       -8.7,
			RevenuePerCustomer:      kr(248),
			RevenuePerCustomerDelta: kr(-3),
			CampaignRevenue:         kr(17120),
			CampaignRevenueSharePct: 21.3,
			ProductGroups: []domain.ProductGroup{
				{Name: "Inneplanter", Sales: kr(19960), MarginPct: 49.2},
				{Name: "Snittblomst", Sales: kr(10608), MarginPct: 47.9},
				{Name: "Pet", Sales: kr(9033), MarginPct: 43.5},
				{Name: "Frø og løk", Sales: kr(8697), MarginPct: 56.7},
				{Name: "Dekor", Sales: kr(7137), MarginPct: 54.6},
				{Name: "Jord/gjødsel", Sales: kr(7081), MarginPct: 77.7},
			},
			PerformanceRadar: []float64{70, 78, 62, 72, 68},
		},
	}
}

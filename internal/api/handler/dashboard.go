package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/hageland/store-dashboard-api/internal/usecases/dashboarding"
)

func storeParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("name")
}

// ListStores retorna as abas das lojas na ordem do catálogo
func ListStores(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, provider.ListStoreTabs(r.Context()))
	}
}

func GetStoreKpis(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := provider.KpiSummary(r.Context(), storeParam(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar KPIs da loja")
			return
		}
		writeJSON(w, r, http.StatusOK, summary)
	}
}

func GetStoreRadar(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		radar, err := provider.RadarSeries(r.Context(), storeParam(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar radar da loja")
			return
		}
		writeJSON(w, r, http.StatusOK, radar)
	}
}

func GetStoreProductGroups(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := provider.ProductGroupSeries(r.Context(), storeParam(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar varegrupper da loja")
			return
		}
		writeJSON(w, r, http.StatusOK, groups)
	}
}

func GetStoreMarginBars(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bars, err := provider.MarginBars(r.Context(), storeParam(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar barras de margem")
			return
		}
		writeJSON(w, r, http.StatusOK, bars)
	}
}

// GetComparison retorna a tabela comparativa com a linha de média no fim
func GetComparison(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := provider.ComparisonTable(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar tabela comparativa")
			return
		}
		writeJSON(w, r, http.StatusOK, rows)
	}
}

func GetTrend(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trend, err := provider.TrendSeries(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar tendências")
			return
		}
		writeJSON(w, r, http.StatusOK, trend)
	}
}

func GetSalesComparison(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bars, err := provider.SalesComparison(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar comparativo de vendas")
			return
		}
		writeJSON(w, r, http.StatusOK, bars)
	}
}

// GetDashboard resolve a aba de ?view=; sem parâmetro abre a comparação
func GetDashboard(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := provider.View(r.Context(), r.URL.Query().Get("view"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar visão do painel")
			return
		}
		writeJSON(w, r, http.StatusOK, view)
	}
}

func GetDashboardHeader(provider dashboarding.ViewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header, err := provider.Header(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar cabeçalho do painel")
			return
		}
		writeJSON(w, r, http.StatusOK, header)
	}
}

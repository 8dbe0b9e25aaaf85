package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hageland/store-dashboard-api/infrastructure/exporter"
	"github.com/hageland/store-dashboard-api/internal/usecases/dashboarding"
	"github.com/hageland/store-dashboard-api/pkg/apiErrors"
	"github.com/hageland/store-dashboard-api/pkg/log"
)

// ExportComparison gera a planilha da tabela comparativa. O arquivo é montado
// em memória antes de escrever, para que uma falha ainda responda em JSON.
func ExportComparison(provider dashboarding.ViewProvider, xlsx *exporter.ComparisonExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := provider.ComparisonTable(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar tabela comparativa para exportação")
			return
		}

		header, err := provider.Header(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar cabeçalho para exportação")
			return
		}

		var buf bytes.Buffer
		if err := xlsx.Write(&buf, header.Period, rows); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar planilha comparativa")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao gerar planilha", nil)
			return
		}

		w.Header().Set("Content-Type", exporter.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(header.Period)))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar planilha")
		}
	}
}

// exportFileName transforma "Week 8, 2026" em "hageland-comparison-week-8-2026.xlsx"
func exportFileName(period string) string {
	slug := strings.ToLower(strings.Join(strings.FieldsFunc(period, func(r rune) bool {
		return r == ' ' || r == ','
	}), "-"))
	if slug == "" {
		return "hageland-comparison.xlsx"
	}
	return "hageland-comparison-" + slug + ".xlsx"
}

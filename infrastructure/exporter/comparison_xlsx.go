// Package exporter gera a planilha da tabela comparativa
package exporter

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/hageland/store-dashboard-api/internal/domain"
)

const (
	SheetName   = "Comparison"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	titleRow  = 1
	headerRow = 2
	firstRow  = 3

	// "#,##0" e "0.0" dos formatos embutidos do Excel
	numFmtThousands = 3
	numFmtDecimal   = 2
)

var Columns = []string{
	"Store", "Sales", "Sales +/-", "Margin %", "Margin +/-",
	"Customers", "Customers +/-", "Revenue/customer", "Campaign %",
}

// ComparisonExporter grava a tabela comparativa em XLSX. A linha de média
// sai só com a coluna de vendas, igual à tabela do painel.
type ComparisonExporter struct{}

func NewComparisonExporter() *ComparisonExporter {
	return &ComparisonExporter{}
}

// Build monta o workbook em memória
func (e *ComparisonExporter) Build(period string, rows []domain.ComparisonRow) (*excelize.File, error) {
	wb := excelize.NewFile()

	if err := wb.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errors.Wrap(err, "exporter: erro ao renomear aba")
	}

	title := "Comparison, all stores"
	if period != "" {
		title = fmt.Sprintf("%s, %s", title, period)
	}
	if err := wb.SetCellValue(SheetName, cell(1, titleRow), title); err != nil {
		return nil, err
	}

	header := make([]interface{}, 0, len(Columns))
	for _, column := range Columns {
		header = append(header, column)
	}
	if err := wb.SetSheetRow(SheetName, cell(1, headerRow), &header); err != nil {
		return nil, errors.Wrap(err, "exporter: erro ao escrever cabeçalho")
	}

	for i, row := range rows {
		values := rowValues(row)
		if err := wb.SetSheetRow(SheetName, cell(1, firstRow+i), &values); err != nil {
			return nil, errors.Wrapf(err, "exporter: erro ao escrever linha %q", row.Name)
		}
	}

	if err := e.applyStyles(wb, len(rows)); err != nil {
		return nil, err
	}

	return wb, nil
}

// Write monta e grava o workbook no writer
func (e *ComparisonExporter) Write(w io.Writer, period string, rows []domain.ComparisonRow) error {
	wb, err := e.Build(period, rows)
	if err != nil {
		return err
	}
	defer wb.Close()

	if _, err := wb.WriteTo(w); err != nil {
		return errors.Wrap(err, "exporter: erro ao gravar planilha")
	}
	return nil
}

func (e *ComparisonExporter) applyStyles(wb *excelize.File, rowCount int) error {
	bold, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	thousands, err := wb.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		return err
	}
	decimal, err := wb.NewStyle(&excelize.Style{NumFmt: numFmtDecimal})
	if err != nil {
		return err
	}

	if err := wb.SetCellStyle(SheetName, cell(1, titleRow), cell(1, titleRow), bold); err != nil {
		return err
	}
	if err := wb.SetCellStyle(SheetName, cell(1, headerRow), cell(len(Columns), headerRow), bold); err != nil {
		return err
	}
	if rowCount == 0 {
		return nil
	}

	last := firstRow + rowCount - 1
	if err := wb.SetCellStyle(SheetName, cell(2, firstRow), cell(2, last), thousands); err != nil {
		return err
	}
	if err := wb.SetCellStyle(SheetName, cell(3, firstRow), cell(5, last), decimal); err != nil {
		return err
	}
	return wb.SetColWidth(SheetName, "A", "I", 16)
}

func rowValues(row domain.ComparisonRow) []interface{} {
	values := []interface{}{row.Name, row.Sales.Round(0).IntPart()}
	if row.IsAverage {
		return values
	}

	values = append(values,
		floatOrNil(row.SalesChangePct),
		floatOrNil(row.MarginPct),
		floatOrNil(row.MarginDeltaPp),
		intOrNil(row.Customers),
		floatOrNil(row.CustomerChangePct),
		nil,
		floatOrNil(row.CampaignSharePct),
	)
	if row.RevenuePerCustomer != nil {
		values[7] = row.RevenuePerCustomer.Round(0).IntPart()
	}
	return values
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func intOrNil(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(err)
	}
	return name
}

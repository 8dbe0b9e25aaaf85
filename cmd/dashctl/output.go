package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/hageland/store-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	accent      = lipgloss.Color("#3a7d5a")
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// tabular é uma tabela pronta para o terminal
type tabular struct {
	Title   string
	Headers []string
	Rows    [][]string
	Next    *tabular
}

func writeJSON(out io.Writer, v any) error {
	raw, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(raw))
	return err
}

// writeYAML passa pelo JSON antes para que as chaves sigam as tags json
func writeYAML(out io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func writeTable(out io.Writer, t tabular) error {
	for current := &t; current != nil; current = current.Next {
		if current.Title != "" {
			if _, err := fmt.Fprintln(out, titleStyle.Render(current.Title)); err != nil {
				return err
			}
		}

		rendered := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(current.Headers...).
			Rows(current.Rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})

		if _, err := fmt.Fprintln(out, rendered.Render()); err != nil {
			return err
		}
	}
	return nil
}

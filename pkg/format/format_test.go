package format

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spaced troca separadores de milhar (espaço rígido, etc.) por espaço comum
func spaced(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.' || r == ',' || r == 'k' || r == 'r' {
			return r
		}
		return ' '
	}, s)
}

func TestFormatSignedPct(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "positivo", input: 10.7, want: "+10.7%"},
		{name: "negativo", input: -13.4, want: "-13.4%"},
		{name: "zero é positivo", input: 0, want: "+0.0%"},
		{name: "zero negativo vira positivo", input: math.Copysign(0, -1), want: "+0.0%"},
		{name: "inteiro ganha casa decimal", input: 13, want: "+13.0%"},
		{name: "negativo pequeno", input: -0.04, want: "-0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSignedPct(tt.input))
		})
	}
}

func TestFormatSignedPctDecimals(t *testing.T) {
	assert.Equal(t, "+10.70%", FormatSignedPctDecimals(10.7, 2))
	assert.Equal(t, "-48%", FormatSignedPctDecimals(-48, 0))
}

func TestFormatSignedPoints(t *testing.T) {
	assert.Equal(t, "-8.0 pp", FormatSignedPoints(-8))
	assert.Equal(t, "+0.0 pp", FormatSignedPoints(0))
	assert.Equal(t, "+4.6 pp", FormatSignedPoints(4.6))
}

func TestFormatAbsAndPlain(t *testing.T) {
	assert.Equal(t, "13.4%", FormatAbsPct(-13.4))
	assert.Equal(t, "21.6%", FormatAbsPct(21.6))
	assert.Equal(t, "8.0 pp", FormatAbsPoints(-8))
	assert.Equal(t, "4.6 pp", FormatAbsPoints(4.6))
	assert.Equal(t, "48%", FormatPlainPct(48.0))
	assert.Equal(t, "54.7%", FormatPlainPct(54.7))
	assert.Equal(t, "13%", FormatPlainPct(13.0))
}

func TestFormatThousandsTick(t *testing.T) {
	assert.Equal(t, "99k", FormatThousandsTick(98975))
	assert.Equal(t, "54k", FormatThousandsTick(53981))
	assert.Equal(t, "0k", FormatThousandsTick(0))
}

func TestFormatter_English(t *testing.T) {
	f, err := NewFormatter("en", "NOK")
	require.NoError(t, err)

	assert.Equal(t, "98,975", f.FormatNumber(98975))
	assert.Equal(t, "268", f.FormatNumber(268))
	assert.Equal(t, "7,598,484", f.FormatNumber(7598484))
	assert.Equal(t, "80,376 NOK", f.FormatCurrency(decimal.NewFromInt(80376)))
	assert.Equal(t, "80,376 NOK", f.FormatCurrency(decimal.RequireFromString("80375.6")))
}

func TestFormatter_Norwegian(t *testing.T) {
	f := Default()

	assert.Equal(t, "nb-NO", f.Locale())
	assert.Equal(t, "kr", f.CurrencySuffix())
	assert.Equal(t, "98 975", spaced(f.FormatNumber(98975)))
	assert.Equal(t, "376", f.FormatNumber(376))
	assert.Equal(t, "10 613 kr", spaced(f.FormatCurrency(decimal.NewFromInt(10613))))
	assert.Equal(t, "7 598 484 kr", spaced(f.FormatCurrency(decimal.NewFromInt(7598484))))
}

func TestFormatter_SignedCurrency(t *testing.T) {
	f := Default()

	assert.Equal(t, "+36 kr", f.FormatSignedCurrency(decimal.NewFromInt(36)))
	assert.Equal(t, "-110 kr", f.FormatSignedCurrency(decimal.NewFromInt(-110)))
	assert.Equal(t, "+0 kr", f.FormatSignedCurrency(decimal.Zero))
}

func TestNewFormatter_InvalidLocale(t *testing.T) {
	_, err := NewFormatter("not a locale!!", "kr")
	assert.Error(t, err)
}

func TestNewFormatter_Defaults(t *testing.T) {
	f, err := NewFormatter("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, f.Locale())
	assert.Equal(t, DefaultCurrencySuffix, f.CurrencySuffix())
}

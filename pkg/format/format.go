// Package format concentra as regras de exibição de números do painel:
// agrupamento de milhar por locale, percentuais com sinal e setas de variação.
package format

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale         = "nb-NO"
	DefaultCurrencySuffix = "kr"
)

// Formatter agrupa números conforme um único locale fixo.
// É seguro para uso concorrente.
type Formatter struct {
	locale   language.Tag
	printer  *message.Printer
	currency string
}

func NewFormatter(locale, currencySuffix string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(err, "format: locale inválido %q", locale)
	}
	if currencySuffix == "" {
		currencySuffix = DefaultCurrencySuffix
	}

	return &Formatter{
		locale:   tag,
		printer:  message.NewPrinter(tag),
		currency: currencySuffix,
	}, nil
}

// Default usa o locale norueguês e o sufixo "kr"
func Default() *Formatter {
	f, err := NewFormatter(DefaultLocale, DefaultCurrencySuffix)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Locale() string {
	return f.locale.String()
}

func (f *Formatter) CurrencySuffix() string {
	return f.currency
}

// FormatNumber agrupa milhares sem casas decimais
func (f *Formatter) FormatNumber(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// FormatAmount arredonda para unidades inteiras e agrupa milhares
func (f *Formatter) FormatAmount(amount decimal.Decimal) string {
	return f.FormatNumber(amount.Round(0).IntPart())
}

// FormatCurrency é FormatAmount com o sufixo da moeda ("98 975 kr")
func (f *Formatter) FormatCurrency(amount decimal.Decimal) string {
	return f.FormatAmount(amount) + " " + f.currency
}

// FormatSignedCurrency mostra o sinal explícito e não agrupa ("+36 kr", "-110 kr")
func (f *Formatter) FormatSignedCurrency(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	sign := ""
	if n >= 0 {
		sign = "+"
	}
	return sign + strconv.FormatInt(n, 10) + " " + f.currency
}

// FormatSignedPct formata com sinal explícito e uma casa decimal
func FormatSignedPct(v float64) string {
	return FormatSignedPctDecimals(v, 1)
}

func FormatSignedPctDecimals(v float64, decimals int) string {
	v = normalizeZero(v)
	sign := ""
	if v >= 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

// FormatSignedPoints é a variação em pontos percentuais com sinal ("-2.1 pp")
func FormatSignedPoints(v float64) string {
	pct := FormatSignedPct(v)
	return pct[:len(pct)-1] + " pp"
}

// FormatAbsPct mostra só a magnitude ("13.4%")
func FormatAbsPct(v float64) string {
	return strconv.FormatFloat(math.Abs(v), 'f', 1, 64) + "%"
}

// FormatAbsPoints mostra a magnitude em pontos percentuais ("8.0 pp")
func FormatAbsPoints(v float64) string {
	return strconv.FormatFloat(math.Abs(v), 'f', 1, 64) + " pp"
}

// FormatPlainPct usa a menor representação do número ("48%", "54.7%")
func FormatPlainPct(v float64) string {
	return strconv.FormatFloat(normalizeZero(v), 'f', -1, 64) + "%"
}

// FormatThousandsTick é o rótulo do eixo de vendas ("99k")
func FormatThousandsTick(v float64) string {
	return strconv.FormatFloat(normalizeZero(math.Round(v/1000)), 'f', 0, 64) + "k"
}

// IsNonNegative é a regra única de direção: zero conta como positivo
func IsNonNegative(v float64) bool {
	return v >= 0
}

func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

package format

import "math"

const (
	UpGlyph   = "▲"
	DownGlyph = "▼"

	UpColor   = "#3a7d5a"
	DownColor = "#e63946"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Arrow é o indicador de variação: o sinal vai no glifo e na cor, o texto
// traz apenas a magnitude.
type Arrow struct {
	Direction Direction `json:"direction"`
	Glyph     string    `json:"glyph"`
	Color     string    `json:"color"`
	Text      string    `json:"text"`
	Value     float64   `json:"value"`
}

// DirectionOf resolve a direção de qualquer valor; zero é "up"
func DirectionOf(v float64) Direction {
	if IsNonNegative(v) {
		return DirectionUp
	}
	return DirectionDown
}

// DeltaArrow monta o indicador com uma casa decimal e sufixo "%"
func DeltaArrow(v float64) Arrow {
	return deltaArrow(v, FormatAbsPct(v))
}

func deltaArrow(v float64, text string) Arrow {
	arrow := Arrow{
		Direction: DirectionOf(v),
		Text:      text,
		Value:     normalizeZero(v),
	}
	if math.IsNaN(v) {
		arrow.Value = 0
	}
	if arrow.Direction == DirectionUp {
		arrow.Glyph = UpGlyph
		arrow.Color = UpColor
	} else {
		arrow.Glyph = DownGlyph
		arrow.Color = DownColor
	}
	return arrow
}

// Label junta glifo e texto ("▼ 13.4%")
func (a Arrow) Label() string {
	return a.Glyph + " " + a.Text
}

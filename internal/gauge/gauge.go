// Package gauge draws the "Em Andamento" gauge as an SVG ring chart.
package gauge

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Step colours the filled part of the gauge while the value is below Upper.
type Step struct {
	Upper float64
	Color string
}

// Config describes the gauge range and palette. Colours are hex without '#'.
type Config struct {
	Min        float64
	Max        float64
	Steps      []Step
	BarColor   string
	Track      string
	Background string
	Width      int
	Height     int
}

// Default mirrors the dashboard gauge: range 0-100 in three blue steps.
func Default() Config {
	return Config{
		Min: 0,
		Max: 100,
		Steps: []Step{
			{Upper: 33, Color: "9CFCF9"},
			{Upper: 66, Color: "60bfff"},
			{Upper: 100, Color: "0f3bff"},
		},
		BarColor:   "020133",
		Track:      "ffffff",
		Background: "080830",
		Width:      300,
		Height:     300,
	}
}

// StepColor returns the colour of the step value falls in. Values past the
// last step use the last colour; without steps the bar colour is used.
func (c Config) StepColor(value float64) string {
	for _, s := range c.Steps {
		if value < s.Upper {
			return s.Color
		}
	}
	if len(c.Steps) > 0 {
		return c.Steps[len(c.Steps)-1].Color
	}
	return c.BarColor
}

// Fraction returns how much of the gauge value fills, clamped to [0, 1].
func (c Config) Fraction(value float64) float64 {
	span := c.Max - c.Min
	if span <= 0 {
		return 0
	}
	f := (value - c.Min) / span
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Render writes the gauge for value as SVG. The number itself is drawn by
// the page, the chart only shows the filled share.
func Render(w io.Writer, value int, cfg Config) error {
	pie := chart.PieChart{
		Width:  cfg.Width,
		Height: cfg.Height,
		Background: chart.Style{
			FillColor: drawing.ColorFromHex(cfg.Background),
		},
		Canvas: chart.Style{
			FillColor: drawing.ColorFromHex(cfg.Background),
		},
		Values: pieValues(float64(value), cfg),
	}

	if err := pie.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("error rendering gauge: %w", err)
	}
	return nil
}

// minSlice keeps both slices positive: the chart drops zero values and
// styles a lone slice from its own palette.
const minSlice = 1e-3

func pieValues(value float64, cfg Config) []chart.Value {
	filled := cfg.Fraction(value)
	border := drawing.ColorFromHex(cfg.BarColor)

	return []chart.Value{
		{
			Value: max(filled, minSlice),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(cfg.StepColor(value)),
				StrokeColor: border,
				StrokeWidth: 2,
			},
		},
		{
			Value: max(1-filled, minSlice),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(cfg.Track),
				StrokeColor: border,
				StrokeWidth: 2,
			},
		},
	}
}

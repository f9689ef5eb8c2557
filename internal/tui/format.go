package tui

import (
	"fmt"

	"hevy-insights/internal/analysis"
	"hevy-insights/internal/config"
)

const lbPerKg = 2.2046226218

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatWeight formats a weight in kilograms to the user's preferred unit
func (u Units) FormatWeight(kg float64) string {
	if u.cfg.WeightUnit == "lb" {
		return fmt.Sprintf("%.1f lb", kg*lbPerKg)
	}
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatVolume formats a training volume, dropping decimals since
// volumes run into the thousands
func (u Units) FormatVolume(kg float64) string {
	if u.cfg.WeightUnit == "lb" {
		return fmt.Sprintf("%.0f lb", kg*lbPerKg)
	}
	return fmt.Sprintf("%.0f kg", kg)
}

// WeightLabel returns the short unit label ("kg" or "lb")
func (u Units) WeightLabel() string {
	if u.cfg.WeightUnit == "lb" {
		return "lb"
	}
	return "kg"
}

// ConvertSeries converts a kilogram series for charting if needed
func (u Units) ConvertSeries(kgSeries []float64) []float64 {
	if u.cfg.WeightUnit != "lb" {
		return kgSeries
	}
	converted := make([]float64, len(kgSeries))
	for i, v := range kgSeries {
		converted[i] = v * lbPerKg
	}
	return converted
}

func formatMinutes(mins int) string {
	h := mins / 60
	m := mins % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func truncateName(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// describeTrend renders a classification as a short styled phrase.
func describeTrend(t analysis.Trend, units Units) string {
	switch t.Type {
	case analysis.TrendInactive:
		return trendFlatStyle.Render(fmt.Sprintf("inactive (%dd ago)", t.DaysSinceLast))
	case analysis.TrendInsufficient:
		return trendFlatStyle.Render(fmt.Sprintf("need %d more sessions", t.Needed-t.Sessions))
	case analysis.TrendPlateau:
		return warningStyle.Render(fmt.Sprintf("plateau at %s", units.FormatWeight(t.AvgWeight)))
	case analysis.TrendGaining:
		return trendUpStyle.Render("↑ gaining (" + trendDelta("+", t, units) + ")")
	case analysis.TrendLosing:
		return trendDownStyle.Render("↓ losing (" + trendDelta("-", t, units) + ")")
	default:
		return trendFlatStyle.Render("→ maintaining")
	}
}

// trendDelta picks the dominant gain/loss figure: weight when it
// moved, otherwise reps.
func trendDelta(sign string, t analysis.Trend, units Units) string {
	if t.WeightChange > 0 {
		return sign + units.FormatWeight(t.WeightChange)
	}
	return fmt.Sprintf("%s%.0f reps", sign, t.RepsChange)
}

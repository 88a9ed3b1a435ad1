// Package style centralizes the dashboard's colors: the dark page theme,
// tyre compound colors and a fallback palette for drivers without a known
// team color.
package style

import "strings"

// Theme colors of the dark dashboard layout.
const (
	Background = "#0e1117"
	Paper      = "#0e1117"
	GridColor  = "#31333f"
	TextColor  = "#fafafa"
	GapColor   = "#808080" // neutral for data gaps
	RainColor  = "#4a90d9"
)

// compoundColors follows the tyre supplier's marking colors.
var compoundColors = map[string]string{
	"SOFT":         "#da291c",
	"MEDIUM":       "#ffd12e",
	"HARD":         "#f0f0ec",
	"INTERMEDIATE": "#43b02a",
	"WET":          "#0067ad",
}

// CompoundColor returns the display color of a tyre compound. Unknown
// compounds get the neutral gap color.
func CompoundColor(compound string) string {
	if c, ok := compoundColors[strings.ToUpper(compound)]; ok {
		return c
	}
	return GapColor
}

// DriverColor returns teamColor when set, otherwise a stable fallback from
// the categorical palette keyed by the series index.
func DriverColor(teamColor string, index int) string {
	if teamColor != "" {
		return teamColor
	}
	return Set1[index%len(Set1)]
}

package scoreboard

import (
	"github.com/guptarohit/asciigraph"

	"factmaster/pkg/game/palette"
)

// Series is one player's score after each round, starting at 0.
type Series struct {
	Name   string
	Color  palette.Color
	Scores []int
}

// ChartOptions controls Chart.
type ChartOptions struct {
	Height  int
	Width   int
	Caption string
	Colored bool
}

var chartColors = map[palette.Color]asciigraph.AnsiColor{
	palette.Blue:       asciigraph.Blue,
	palette.Red:        asciigraph.Red,
	palette.Green:      asciigraph.Green,
	palette.Cyan:       asciigraph.Cyan,
	palette.Magenta:    asciigraph.Magenta,
	palette.Yellow:     asciigraph.Yellow,
	palette.LightBlue:  asciigraph.LightBlue,
	palette.LightGreen: asciigraph.LightGreen,
}

// Chart plots every series as a line. Colored charts carry a legend with
// the player names. It returns "" when there is nothing worth plotting: no
// series, fewer than two points, or no points scored.
func Chart(series []Series, opts ChartOptions) string {
	if len(series) == 0 {
		return ""
	}

	data := make([][]float64, len(series))
	legends := make([]string, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	scored := false

	for i, s := range series {
		if len(s.Scores) < 2 {
			return ""
		}
		points := make([]float64, len(s.Scores))
		for j, v := range s.Scores {
			points[j] = float64(v)
			scored = scored || v > 0
		}
		data[i] = points
		legends[i] = s.Name
		colors[i] = chartColors[s.Color]
	}
	if !scored {
		return ""
	}

	options := []asciigraph.Option{asciigraph.Precision(0)}
	if opts.Height > 0 {
		options = append(options, asciigraph.Height(opts.Height))
	}
	if opts.Width > 0 {
		options = append(options, asciigraph.Width(opts.Width))
	}
	if opts.Caption != "" {
		options = append(options, asciigraph.Caption(opts.Caption))
	}
	// Legends need one color per series, and without colors the lines
	// cannot be told apart anyway.
	if opts.Colored {
		options = append(options,
			asciigraph.SeriesColors(colors...),
			asciigraph.SeriesLegends(legends...),
		)
	}

	return asciigraph.PlotMany(data, options...)
}

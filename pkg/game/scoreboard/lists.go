package scoreboard

import (
	"strconv"
	"strings"

	"factmaster/pkg/engine/layout"
)

// List column widths
const (
	NameWidth       = 10
	ScoreWidth      = 3
	HorizontalWidth = 15
	StarPoints      = 10
)

const horizontalIndent = "   "

// Vertical lists one player per line: name, score and one star per
// StarPoints points.
func Vertical(entries []Entry, painter Painter) []string {
	painter = painterOrPlain(painter)
	lines := make([]string, len(entries))
	for i, e := range entries {
		stars := strings.Repeat("*", max(e.Score/StarPoints, 0))
		lines[i] = painter.Paint(e.Color, layout.PadRight(e.Name, NameWidth)) + " " +
			layout.PadRight(strconv.Itoa(e.Score), ScoreWidth) + " " + stars
	}
	return lines
}

// Horizontal returns two lines, names then scores, with every player in a
// fixed-width column so each score sits under its name.
func Horizontal(entries []Entry, painter Painter) []string {
	if len(entries) == 0 {
		return nil
	}
	painter = painterOrPlain(painter)

	names := make([]string, len(entries))
	scores := make([]string, len(entries))
	for i, e := range entries {
		names[i] = painter.Paint(e.Color, layout.PadRight(e.Name, HorizontalWidth))
		scores[i] = painter.Paint(e.Color, layout.PadRight(strconv.Itoa(e.Score), HorizontalWidth))
	}

	return []string{
		horizontalIndent + strings.Join(names, Gutter),
		horizontalIndent + strings.Join(scores, Gutter),
	}
}

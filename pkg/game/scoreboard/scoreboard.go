// Package scoreboard renders player scores as text: a podium bar chart, a
// vertical and a horizontal list, and a score-progression chart.
//
// Renderers take Entry values, copy them before reordering, and return
// lines without printing. Colors are applied through a Painter so the
// package never deals with escape sequences.
package scoreboard

import (
	"github.com/pkg/errors"

	"factmaster/pkg/engine/layout"
	"factmaster/pkg/game/palette"
)

// ErrEmptyInput is returned when there are no scores to rank.
var ErrEmptyInput = errors.Wrap(layout.ErrInvalidArgument, "no players to rank")

// Entry is a read-only snapshot of one player's standing.
type Entry struct {
	Name  string
	Score int
	Color palette.Color
}

// Painter colors a piece of text.
type Painter interface {
	Paint(c palette.Color, s string) string
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(c palette.Color, s string) string

// Paint calls f(c, s).
func (f PainterFunc) Paint(c palette.Color, s string) string {
	return f(c, s)
}

// Plain leaves text uncolored.
var Plain Painter = PainterFunc(func(_ palette.Color, s string) string { return s })

func painterOrPlain(p Painter) Painter {
	if p == nil {
		return Plain
	}
	return p
}

package scoreboard

import (
	"slices"
	"strconv"
	"strings"

	"factmaster/pkg/engine/layout"
)

// Podium geometry
const (
	// ScaleFactor is the number of points per bar level.
	ScaleFactor = 10

	// CellWidth is the width of every podium column.
	CellWidth = 8

	// Gutter separates podium columns.
	Gutter = "  "

	BarCell   = "|      |"
	CapCell   = "@******@"
	BlankCell = "        "
)

// Cell is one square of the podium grid.
type Cell int

// Grid cell kinds
const (
	CellBlank Cell = iota
	CellBar
	CellCap
)

// Column is one player's bar.
type Column struct {
	Entry
	Height int
}

// Podium is a bottom-anchored bar chart with one column per player,
// highest score first. Cells[0] is the top row.
type Podium struct {
	Columns   []Column
	Cells     [][]Cell
	MaxHeight int
}

// NewPodium ranks entries by score and builds the grid. Ties keep their
// input order. entries is not modified.
func NewPodium(entries []Entry) (Podium, error) {
	if len(entries) == 0 {
		return Podium{}, ErrEmptyInput
	}

	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return b.Score - a.Score
	})

	p := Podium{Columns: make([]Column, len(ranked))}
	for i, e := range ranked {
		h := e.Score / ScaleFactor
		p.Columns[i] = Column{Entry: e, Height: h}
		p.MaxHeight = max(p.MaxHeight, h)
	}

	p.Cells = make([][]Cell, p.MaxHeight+1)
	for level := range p.Cells {
		row := make([]Cell, len(p.Columns))
		depth := p.MaxHeight - level
		for i, col := range p.Columns {
			switch {
			case depth < col.Height:
				row[i] = CellBar
			case depth == col.Height:
				row[i] = CellCap
			default:
				row[i] = CellBlank
			}
		}
		p.Cells[level] = row
	}

	return p, nil
}

// Lines draws the grid followed by a score row and a name row.
func (p Podium) Lines(painter Painter) []string {
	painter = painterOrPlain(painter)
	lines := make([]string, 0, len(p.Cells)+2)

	for _, row := range p.Cells {
		cells := make([]string, len(row))
		for i, c := range row {
			color := p.Columns[i].Color
			switch c {
			case CellBar:
				cells[i] = painter.Paint(color, BarCell)
			case CellCap:
				cells[i] = painter.Paint(color, CapCell)
			default:
				cells[i] = BlankCell
			}
		}
		lines = append(lines, strings.Join(cells, Gutter))
	}

	scores := make([]string, len(p.Columns))
	names := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		scores[i] = painter.Paint(col.Color, layout.Center(strconv.Itoa(col.Score), CellWidth))
		names[i] = painter.Paint(col.Color, layout.Center(col.Name, CellWidth))
	}

	return append(lines, strings.Join(scores, Gutter), strings.Join(names, Gutter))
}

// RenderPodium builds the podium for entries and draws it.
func RenderPodium(entries []Entry, painter Painter) ([]string, error) {
	p, err := NewPodium(entries)
	if err != nil {
		return nil, err
	}
	return p.Lines(painter), nil
}

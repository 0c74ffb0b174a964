package layout

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultSeparator divides the two columns of a side-by-side layout.
const DefaultSeparator = "  │  "

// RuleChar is repeated to draw horizontal rules.
const RuleChar = "─"

// Options controls SideBySide.
type Options struct {
	// Width is the total row width, separator included.
	Width int
	// Separator is placed between the columns on every row.
	Separator string
	// Highlight styles the headings. The padding around a heading is
	// computed from the unstyled text, so Highlight may add escape codes.
	Highlight func(string) string
}

// ColumnRow is one line of each column, both padded to the column width.
type ColumnRow struct {
	Left  string
	Right string
}

// Columns is the result of laying out two paragraphs side by side.
type Columns struct {
	Heading     string
	Rule        string
	Rows        []ColumnRow
	Separator   string
	ColumnWidth int
}

// Empty reports whether there is nothing to print.
func (c Columns) Empty() bool {
	return c.Heading == "" && len(c.Rows) == 0
}

// Lines renders the heading block followed by one line per row.
func (c Columns) Lines() []string {
	if c.Empty() {
		return nil
	}

	lines := make([]string, 0, len(c.Rows)+2)
	if c.Heading != "" {
		lines = append(lines, c.Heading, c.Rule)
	}
	for _, row := range c.Rows {
		lines = append(lines, row.Left+c.Separator+row.Right)
	}
	return lines
}

// SideBySide wraps two paragraphs into equal-width columns and pairs their
// lines row by row. The shorter column is padded with blank rows so both
// columns always have the same number of rows. If either paragraph is
// empty the result is empty. The heading block is rendered only when both
// headings are set.
func SideBySide(heading1, paragraph1, heading2, paragraph2 string, opts Options) (Columns, error) {
	words1 := strings.Fields(paragraph1)
	words2 := strings.Fields(paragraph2)
	if len(words1) == 0 || len(words2) == 0 {
		return Columns{}, nil
	}
	if opts.Width <= 0 {
		return Columns{}, errors.Wrapf(ErrInvalidArgument, "line length must be greater than 0, got %d", opts.Width)
	}

	columnWidth := (opts.Width - Width(opts.Separator)) / 2
	if columnWidth < 1 {
		return Columns{}, errors.Wrapf(ErrInvalidArgument, "line length %d leaves no room beside separator %q", opts.Width, opts.Separator)
	}

	highlight := opts.Highlight
	if highlight == nil {
		highlight = func(s string) string { return s }
	}

	lines1 := WrapWords(words1, columnWidth)
	lines2 := WrapWords(words2, columnWidth)

	cols := Columns{
		Separator:   opts.Separator,
		ColumnWidth: columnWidth,
		Rows:        make([]ColumnRow, 0, max(len(lines1), len(lines2))),
	}

	if heading1 != "" && heading2 != "" {
		cols.Heading = highlight(heading1) + padding(heading1, columnWidth) +
			opts.Separator +
			highlight(heading2) + padding(heading2, columnWidth)
		cols.Rule = strings.Repeat(RuleChar, opts.Width)
	}

	for i := 0; i < len(lines1) || i < len(lines2); i++ {
		left := lineAt(lines1, i)
		right := lineAt(lines2, i)
		if left == "" && right == "" {
			break
		}
		cols.Rows = append(cols.Rows, ColumnRow{
			Left:  PadRight(left, columnWidth),
			Right: PadRight(right, columnWidth),
		})
	}

	return cols, nil
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func padding(s string, width int) string {
	if gap := width - Width(s); gap > 0 {
		return strings.Repeat(" ", gap)
	}
	return ""
}

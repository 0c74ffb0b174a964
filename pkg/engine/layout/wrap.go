// Package layout arranges plain paragraphs into fixed-width terminal lines.
//
// All functions are pure: they return lines and never print. Widths are
// measured in terminal cells, so wide runes such as emoji count twice.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned for non-positive widths, negative indents
// and other malformed layout input.
var ErrInvalidArgument = errors.New("invalid argument")

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// WrapWords greedily packs words into lines no wider than width.
// A word that lands on an empty line is always placed, even when it is
// wider than width on its own; words are never split.
func WrapWords(words []string, width int) []string {
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range words {
		wordWidth := Width(word)

		if lineWidth == 0 {
			line.WriteString(word)
			lineWidth = wordWidth
			continue
		}

		if lineWidth+1+wordWidth <= width {
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + wordWidth
			continue
		}

		lines = append(lines, line.String())
		line.Reset()
		line.WriteString(word)
		lineWidth = wordWidth
	}

	return append(lines, line.String())
}

// Wrap splits paragraph on whitespace and wraps it to lineLength cells,
// prefixing every line with indent spaces. The indent is not counted
// against lineLength.
func Wrap(paragraph string, lineLength, indent int) ([]string, error) {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return nil, nil
	}
	if lineLength <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "line length must be greater than 0, got %d", lineLength)
	}
	if indent < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "indent must be greater than or equal to 0, got %d", indent)
	}

	lines := WrapWords(words, lineLength)
	if indent > 0 {
		prefix := strings.Repeat(" ", indent)
		for i := range lines {
			lines[i] = prefix + lines[i]
		}
	}

	return lines, nil
}

// PadRight pads s with spaces to width cells. Strings already at least
// width cells wide are returned unchanged.
func PadRight(s string, width int) string {
	if gap := width - Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Center pads s on both sides to width cells. When the padding is odd the
// extra space goes to the right. Strings at least width cells wide are
// returned unchanged.
func Center(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

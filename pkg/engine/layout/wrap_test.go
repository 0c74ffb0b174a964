package layout

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const lorem = "Lorem ipsum dolor sit amet, consetetur sadipscing elitr, sed diam nonumy eirmod " +
	"tempor invidunt ut labore et dolore magna aliquyam erat, sed diam voluptua. At vero eos " +
	"et accusam et justo duo dolores et ea rebum. Stet clita kasd gubergren, no sea takimata " +
	"sanctus est Lorem ipsum dolor sit amet."

func TestWrap_EmptyParagraph(t *testing.T) {
	for _, p := range []string{"", "   ", "\t\n"} {
		lines, err := Wrap(p, 80, 0)
		if err != nil {
			t.Fatalf("Wrap(%q) error = %v, want nil", p, err)
		}
		if len(lines) != 0 {
			t.Errorf("Wrap(%q) = %v, want empty", p, lines)
		}
	}
}

func TestWrap_InvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		length int
		indent int
	}{
		{"zero length", 0, 0},
		{"negative length", -5, 0},
		{"negative indent", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wrap("some words", tt.length, tt.indent)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Wrap error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestWrap_OverlongFirstWord(t *testing.T) {
	word := "supercalifragilisticexpialidocious"
	lines, err := Wrap(word, 10, 0)
	if err != nil {
		t.Fatalf("Wrap error = %v", err)
	}
	if len(lines) != 1 || lines[0] != word {
		t.Errorf("Wrap = %q, want [%q]", lines, word)
	}
}

func TestWrap_LinesFitWidth(t *testing.T) {
	for _, width := range []int{12, 20, 40, 80} {
		for _, indent := range []int{0, 4} {
			lines, err := Wrap(lorem, width, indent)
			if err != nil {
				t.Fatalf("Wrap error = %v", err)
			}
			for i, line := range lines {
				if !strings.HasPrefix(line, strings.Repeat(" ", indent)) {
					t.Errorf("width %d line %d = %q, missing %d-space indent", width, i, line, indent)
				}
				content := line[indent:]
				if Width(content) > width {
					t.Errorf("width %d line %d = %q is %d cells wide", width, i, content, Width(content))
				}
			}
		}
	}
}

func TestWrap_PreservesWords(t *testing.T) {
	lines, err := Wrap(lorem, 17, 2)
	if err != nil {
		t.Fatalf("Wrap error = %v", err)
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	got := strings.Join(lines, " ")
	want := strings.Join(strings.Fields(lorem), " ")
	if got != want {
		t.Errorf("rejoined = %q, want %q", got, want)
	}
}

func TestWrapWords_Greedy(t *testing.T) {
	got := WrapWords(strings.Fields("aa bb cc dd ee"), 5)
	want := []string{"aa bb", "cc dd", "ee"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("WrapWords = %q, want %q", got, want)
	}
}

func TestWrapWords_OverlongWordGetsOwnLine(t *testing.T) {
	got := WrapWords([]string{"a", "abcdefghij", "b"}, 4)
	want := []string{"a", "abcdefghij", "b"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("WrapWords = %q, want %q", got, want)
	}
}

func TestWrapWords_WideRunes(t *testing.T) {
	// Each trophy is two cells wide; "🏆 🏆" is five cells.
	got := WrapWords([]string{"🏆", "🏆", "🏆"}, 5)
	if len(got) != 2 {
		t.Fatalf("WrapWords = %q, want 2 lines", got)
	}
	if got[0] != "🏆 🏆" || got[1] != "🏆" {
		t.Errorf("WrapWords = %q", got)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"55", "   55   "},
		{"100", "  100   "},
		{"", "        "},
		{"Maximilian", "Maximilian"},
	}
	for _, tt := range tests {
		if got := Center(tt.in, 8); got != tt.want {
			t.Errorf("Center(%q, 8) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q, want %q", got, "ab   ")
	}
	if got := PadRight("abcdef", 5); got != "abcdef" {
		t.Errorf("PadRight = %q, want unchanged", got)
	}
}

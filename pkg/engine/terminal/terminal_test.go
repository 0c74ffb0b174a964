package terminal

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestConsole_WriteLines(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	if err := c.WriteLines("one", "", "three"); err != nil {
		t.Fatalf("WriteLines error = %v", err)
	}
	if got, want := buf.String(), "one\n\nthree\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConsole_WriteLinesIsContiguous(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	block := func(tag string) []string {
		lines := make([]string, 50)
		for i := range lines {
			lines[i] = tag
		}
		return lines
	}

	var wg sync.WaitGroup
	for _, tag := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(tag string) {
			defer wg.Done()
			_ = c.WriteLines(block(tag)...)
		}(tag)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 200 {
		t.Fatalf("got %d lines, want 200", len(lines))
	}
	for start := 0; start < len(lines); start += 50 {
		for i := start; i < start+50; i++ {
			if lines[i] != lines[start] {
				t.Fatalf("line %d = %q inside block of %q", i, lines[i], lines[start])
			}
		}
	}
}

func TestConsole_Clear(t *testing.T) {
	var buf bytes.Buffer
	if err := NewConsole(&buf).Clear(); err != nil {
		t.Fatalf("Clear error = %v", err)
	}
	if buf.String() != clearScreen {
		t.Errorf("Clear wrote %q, want %q", buf.String(), clearScreen)
	}
}

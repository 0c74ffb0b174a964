package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Console serializes writes to an output stream. Each call holds the lock
// for all of its lines, so a multi-line screen is never interleaved with
// output from another goroutine.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole wraps out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Stdout returns a Console on os.Stdout.
func Stdout() *Console {
	return NewConsole(os.Stdout)
}

// WriteLines writes each line followed by a newline.
func (c *Console) WriteLines(lines ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := bufio.NewWriter(c.out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Write writes s as is, without a trailing newline.
func (c *Console) Write(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := io.WriteString(c.out, s)
	return err
}

// Clear erases the screen.
func (c *Console) Clear() error {
	return c.Write(clearScreen)
}

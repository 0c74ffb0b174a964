// Package palette defines the player colors and hands them out round-robin.
package palette

import "sync"

// Color is a named player color. The layout code treats it as an opaque
// label; only renderers map it to escape sequences.
type Color int

// Player colors, in allocation order
const (
	Blue Color = iota
	Red
	Green
	Cyan
	Magenta
	Yellow
	LightBlue
	LightGreen
)

// Size is the number of colors in the palette.
const Size = 8

var names = [Size]string{
	"blue",
	"red",
	"green",
	"cyan",
	"magenta",
	"yellow",
	"light-blue",
	"light-green",
}

// String returns the color name
func (c Color) String() string {
	if c < 0 || int(c) >= Size {
		return "unknown"
	}
	return names[c]
}

// All returns the palette in allocation order.
func All() []Color {
	colors := make([]Color, Size)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

// Allocator cycles through the palette. The zero value starts at Blue.
type Allocator struct {
	mu     sync.Mutex
	cursor int
}

// NewAllocator creates an allocator starting at Blue.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next color and advances the cursor, wrapping after the
// last color.
func (a *Allocator) Next() Color {
	a.mu.Lock()
	defer a.mu.Unlock()

	c := Color(a.cursor)
	a.cursor = (a.cursor + 1) % Size
	return c
}

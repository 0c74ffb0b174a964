package renderer

import (
	"factmaster/pkg/game/palette"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHighlight
	StyleInput
	StyleError
	StyleSubtle
	StyleSuccess
)

// Banner identifies one of the static ASCII-art screens
type Banner int

const (
	BannerOpening Banner = iota
	BannerHeader
	BannerClosing
)

// Renderer defines the interface for game rendering backends.
// Every method that draws takes all of its lines in one call, so a backend
// can write them as a single unit.
type Renderer interface {
	// Clear clears the display
	Clear() error

	// Show prints lines as they are
	Show(lines ...string) error

	// ShowBanner prints one of the static banners
	ShowBanner(b Banner) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// Paint colors text with a player color. It satisfies scoreboard.Painter.
	Paint(c palette.Color, text string) string

	// Width returns the layout width in cells
	Width() int
}

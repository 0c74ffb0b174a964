package tui

import (
	"strings"

	"github.com/gookit/color"

	"factmaster/pkg/engine/terminal"
	"factmaster/pkg/game/palette"
	"factmaster/pkg/game/renderer"
)

// MaxWidth caps the layout width on very wide terminals.
const MaxWidth = 200

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	console *terminal.Console
	width   int

	players [palette.Size]color.Style

	colorHighlight color.Style
	colorInput     color.Style
	colorError     color.Style
	colorSubtle    color.Style
	colorSuccess   color.Style
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a TUI renderer writing to console. A width of 0 or less
// uses the terminal width, capped at MaxWidth.
func New(console *terminal.Console, width int) *TUIRenderer {
	if width <= 0 {
		width = min(terminal.GetWidth(), MaxWidth)
	}
	t := &TUIRenderer{console: console, width: width}
	t.Init()
	return t
}

// Init initializes the color styles
func (t *TUIRenderer) Init() {
	t.players = [palette.Size]color.Style{
		palette.Blue:       {color.FgBlue},
		palette.Red:        {color.FgRed},
		palette.Green:      {color.FgGreen},
		palette.Cyan:       {color.FgCyan},
		palette.Magenta:    {color.FgMagenta},
		palette.Yellow:     {color.FgYellow},
		palette.LightBlue:  {color.FgLightBlue},
		palette.LightGreen: {color.FgLightGreen},
	}

	t.colorHighlight = color.Style{color.FgWhite, color.OpBold}
	t.colorInput = color.Style{color.FgLightYellow, color.OpBold}
	t.colorError = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorSuccess = color.Style{color.FgGreen, color.OpBold}
}

// DisableColor turns off escape sequences for every renderer.
func DisableColor() {
	color.Enable = false
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() error {
	return t.console.Clear()
}

// Show prints lines in one locked write
func (t *TUIRenderer) Show(lines ...string) error {
	return t.console.WriteLines(lines...)
}

// ShowBanner prints a static banner
func (t *TUIRenderer) ShowBanner(b renderer.Banner) error {
	art, ok := banners[b]
	if !ok {
		return nil
	}
	lines := strings.Split(art, "\n")
	for i, line := range lines {
		lines[i] = t.colorHighlight.Sprint(line)
	}
	return t.Show(lines...)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHighlight:
		return t.colorHighlight.Sprint(text)
	case renderer.StyleInput:
		return t.colorInput.Sprint(text)
	case renderer.StyleError:
		return t.colorError.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	default:
		return text
	}
}

// Paint colors text with a player's color
func (t *TUIRenderer) Paint(c palette.Color, text string) string {
	if c < 0 || int(c) >= palette.Size {
		return text
	}
	return t.players[c].Sprint(text)
}

// Width returns the layout width
func (t *TUIRenderer) Width() int {
	return t.width
}

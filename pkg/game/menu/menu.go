// Package menu asks players multiple-choice questions.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	engineinput "factmaster/pkg/engine/input"
	"factmaster/pkg/engine/layout"
	"factmaster/pkg/game/renderer"
)

const optionGap = "  "

var optionBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Prompt shows a question with numbered options and reads the answer.
type Prompt struct {
	Screen renderer.Renderer
	Input  *engineinput.Reader
	Log    *zap.Logger

	// Silent suppresses the messages shown after invalid answers.
	Silent bool
}

// NewPrompt creates a prompt. A nil logger discards logs.
func NewPrompt(screen renderer.Renderer, in *engineinput.Reader, log *zap.Logger) *Prompt {
	if log == nil {
		log = zap.NewNop()
	}
	return &Prompt{Screen: screen, Input: in, Log: log}
}

// Ask displays question and options and blocks until the player picks a
// number between 1 and len(options). It returns the zero-based index of
// the chosen option. Invalid answers are rejected and asked again; read
// errors, including io.EOF and input.ErrQuit, are returned.
func (p *Prompt) Ask(question string, options []string) (int, error) {
	if err := validate(question, options); err != nil {
		return -1, err
	}

	lines := []string{
		strings.Repeat(layout.RuleChar, layout.Width(question)),
		p.Screen.StyleText(question, renderer.StyleInput),
	}
	lines = append(lines, Boxes(options, func(s string) string {
		return p.Screen.StyleText(s, renderer.StyleHighlight)
	})...)
	if err := p.Screen.Show(lines...); err != nil {
		return -1, err
	}

	for {
		line, err := p.Input.ReadLine()
		if err != nil {
			return -1, err
		}

		answer, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil:
			p.Log.Debug("non-numeric answer", zap.String("input", line))
			if err := p.complain("Input must be a number. Try again!"); err != nil {
				return -1, err
			}
		case answer < 1 || answer > len(options):
			p.Log.Debug("answer out of range", zap.Int("answer", answer), zap.Int("options", len(options)))
			if err := p.complain(fmt.Sprintf("Choose only between 1 - %d", len(options))); err != nil {
				return -1, err
			}
		default:
			return answer - 1, nil
		}
	}
}

func (p *Prompt) complain(msg string) error {
	if p.Silent {
		return nil
	}
	return p.Screen.Show(p.Screen.StyleText(msg, renderer.StyleError))
}

func validate(question string, options []string) error {
	if question == "" {
		return errors.Wrap(layout.ErrInvalidArgument, "question must not be empty")
	}
	if len(options) == 0 {
		return errors.Wrap(layout.ErrInvalidArgument, "options must not be empty")
	}
	for i, o := range options {
		if o == "" {
			return errors.Wrapf(layout.ErrInvalidArgument, "option %d must not be empty", i+1)
		}
	}
	return nil
}

// Boxes draws the numbered options as a row of rounded boxes. highlight
// styles the label inside each box and may be nil.
func Boxes(options []string, highlight func(string) string) []string {
	if len(options) == 0 {
		return nil
	}
	if highlight == nil {
		highlight = func(s string) string { return s }
	}

	blocks := make([]string, 0, 2*len(options)-1)
	for i, o := range options {
		if i > 0 {
			blocks = append(blocks, optionGap)
		}
		blocks = append(blocks, optionBox.Render(highlight(fmt.Sprintf("%d. %s", i+1, o))))
	}

	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")
}

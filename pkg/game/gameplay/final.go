package gameplay

import (
	"fmt"
	"strings"

	"factmaster/pkg/engine/layout"
	"factmaster/pkg/game/renderer"
	"factmaster/pkg/game/scoreboard"
	"factmaster/pkg/game/state"
)

const (
	trophy        = "🏆"
	confettiCount = 120
	chartHeight   = 10
	chartMaxWidth = 80
)

var confetti = []string{"🏆", "🎉", "🥳", "🍾", "⭐"}

func (s *Session) final(g *state.Game) error {
	if err := s.screen.Clear(); err != nil {
		return err
	}

	var lines []string

	burst, err := layout.Wrap(s.confetti(), s.screen.Width(), 0)
	if err != nil {
		return err
	}
	lines = append(lines, burst...)

	podium, err := scoreboard.RenderPodium(g.Players.Entries(), s.screen)
	if err != nil {
		return err
	}
	lines = append(lines, podium...)

	lines = append(lines,
		"",
		"",
		s.screen.StyleText(fmt.Sprintf("  %s Congratulation To All Players %s  ", trophy, trophy), renderer.StyleHighlight),
		"",
		s.screen.StyleText(s.winnerLine(g), renderer.StyleHighlight),
		"",
	)
	lines = append(lines, scoreboard.Vertical(g.Players.Entries(), s.screen)...)

	chart := scoreboard.Chart(g.Series(), scoreboard.ChartOptions{
		Height:  chartHeight,
		Width:   min(chartMaxWidth, s.screen.Width()-12),
		Caption: "Score after each round",
		Colored: s.settings.Color,
	})
	if chart != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(chart, "\n")...)
	}
	lines = append(lines, "")

	if err := s.screen.Show(lines...); err != nil {
		return err
	}
	return s.waitForEnter(`Press "Enter" to finish`)
}

func (s *Session) confetti() string {
	pieces := make([]string, confettiCount)
	for i := range pieces {
		pieces[i] = confetti[s.rng.Intn(len(confetti))]
	}
	return strings.Join(pieces, " ")
}

func (s *Session) winnerLine(g *state.Game) string {
	leaders := g.Players.Leaders()
	names := make([]string, len(leaders))
	for i, p := range leaders {
		names[i] = s.screen.Paint(p.Color, p.Name)
	}

	trophies := strings.Repeat(trophy, 3)
	if len(names) == 1 {
		return fmt.Sprintf("%s %s is the **FACT MASTER**! %s", trophies, names[0], trophies)
	}
	return fmt.Sprintf("%s %s are the **FACT MASTERS**! %s", trophies, strings.Join(names, " and "), trophies)
}

package gameplay

import (
	"fmt"

	"go.uber.org/zap"

	"factmaster/pkg/engine/layout"
	"factmaster/pkg/game/deck"
	"factmaster/pkg/game/player"
	"factmaster/pkg/game/renderer"
	"factmaster/pkg/game/scoreboard"
	"factmaster/pkg/game/state"
)

var articleLabels = []string{"Article 1", "Article 2"}

type answer struct {
	player  *player.Player
	correct bool
	points  int
}

func (s *Session) playRound(g *state.Game, round deck.Round, number int) error {
	shown := round.Shuffle(s.rng)

	if err := s.screen.Clear(); err != nil {
		return err
	}
	if err := s.screen.ShowBanner(renderer.BannerHeader); err != nil {
		return err
	}

	title := fmt.Sprintf("Round %d of %d: %s", number, len(g.Rounds), shown.Topic)
	if err := s.screen.Show(s.screen.StyleText(title, renderer.StyleHighlight), ""); err != nil {
		return err
	}

	cols, err := layout.SideBySide(
		articleLabels[0], shown.Articles[0].Summary,
		articleLabels[1], shown.Articles[1].Summary,
		layout.Options{
			Width:     s.screen.Width(),
			Separator: s.settings.Separator,
			Highlight: func(text string) string {
				return s.screen.StyleText(text, renderer.StyleHighlight)
			},
		},
	)
	if err != nil {
		return err
	}
	if err := s.screen.Show(append(cols.Lines(), "")...); err != nil {
		return err
	}

	answers := make([]answer, 0, g.Players.Len())
	for _, p := range g.Players.Players() {
		choice, err := s.prompt.Ask(fmt.Sprintf("%s, which article is fake?", p.Name), articleLabels)
		if err != nil {
			return err
		}
		correct := choice == shown.FakeIndex
		answers = append(answers, answer{
			player:  p,
			correct: correct,
			points:  s.settings.Rules.Points(correct, p.Streak),
		})
	}

	// Scores change only after everyone has answered, so nobody can read
	// the result off the screen before their turn.
	for _, a := range answers {
		if err := a.player.Award(a.points); err != nil {
			return err
		}
		s.log.Debug("answer scored",
			zap.Int("round", number),
			zap.String("player", a.player.Name),
			zap.Bool("correct", a.correct),
			zap.Int("points", a.points),
			zap.Int("score", a.player.Score),
		)
	}

	return s.reveal(g, shown, answers)
}

func (s *Session) reveal(g *state.Game, shown deck.Presentation, answers []answer) error {
	fake := shown.Fake()
	fact := shown.Articles[1-shown.FakeIndex]

	lines := []string{
		"",
		s.screen.StyleText(fmt.Sprintf("%s was the fake: %q is made up.", articleLabels[shown.FakeIndex], fake.Title), renderer.StyleHighlight),
		s.screen.StyleText(fmt.Sprintf("%q is a real article.", fact.Title), renderer.StyleSubtle),
		"",
	}
	for _, a := range answers {
		name := s.screen.Paint(a.player.Color, a.player.Name)
		if a.correct {
			lines = append(lines, fmt.Sprintf("%s %s", name, s.screen.StyleText(fmt.Sprintf("got it right! +%d", a.points), renderer.StyleSuccess)))
		} else {
			lines = append(lines, fmt.Sprintf("%s %s", name, s.screen.StyleText("was fooled.", renderer.StyleError)))
		}
	}
	lines = append(lines, "")
	lines = append(lines, scoreboard.Horizontal(g.Players.Entries(), s.screen)...)
	lines = append(lines, "")

	if err := s.screen.Show(lines...); err != nil {
		return err
	}
	return s.waitForEnter(`Press "Enter" to continue`)
}

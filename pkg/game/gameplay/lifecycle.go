package gameplay

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	engineinput "factmaster/pkg/engine/input"
	"factmaster/pkg/game/deck"
	"factmaster/pkg/game/menu"
	"factmaster/pkg/game/palette"
	"factmaster/pkg/game/player"
	"factmaster/pkg/game/renderer"
	"factmaster/pkg/game/state"
)

// Settings configures a session.
type Settings struct {
	// Separator sits between the two article columns.
	Separator string

	// Rounds is the number of rounds to play; 0 plays the whole deck.
	Rounds int

	// Color enables colored charts.
	Color bool

	Rules Rules
}

// Session drives one game from the opening screen to the closing banner.
type Session struct {
	screen   renderer.Renderer
	in       *engineinput.Reader
	prompt   *menu.Prompt
	log      *zap.Logger
	rng      *rand.Rand
	deck     *deck.Deck
	settings Settings
}

// NewSession creates a session. A nil logger discards logs.
func NewSession(screen renderer.Renderer, in *engineinput.Reader, d *deck.Deck, rng *rand.Rand, log *zap.Logger, settings Settings) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		screen:   screen,
		in:       in,
		prompt:   menu.NewPrompt(screen, in, log),
		log:      log,
		rng:      rng,
		deck:     d,
		settings: settings,
	}
}

// Run plays the game. Quitting or closing the input ends the game early
// and is not an error.
func (s *Session) Run() error {
	err := s.play()
	if errors.Is(err, engineinput.ErrQuit) || errors.Is(err, io.EOF) {
		s.log.Info("game ended early", zap.Error(err))
		err = nil
	}
	if err != nil {
		return err
	}
	return s.closing()
}

func (s *Session) play() error {
	if err := s.opening(); err != nil {
		return err
	}

	players, err := s.registerPlayers()
	if err != nil {
		return err
	}

	g := state.NewGame(players, s.deck.Draw(s.rng, s.settings.Rounds))
	g.Start()
	s.log.Info("game started",
		zap.String("deck", s.deck.Title),
		zap.Int("players", players.Len()),
		zap.Int("rounds", len(g.Rounds)),
	)

	for {
		round, number, ok := g.Next()
		if !ok {
			break
		}
		if err := s.playRound(g, round, number); err != nil {
			return err
		}
		g.CompleteRound()
	}

	return s.final(g)
}

func (s *Session) opening() error {
	if err := s.screen.Clear(); err != nil {
		return err
	}
	if err := s.screen.ShowBanner(renderer.BannerOpening); err != nil {
		return err
	}
	return s.waitForEnter(`Press "Enter" to start`)
}

func (s *Session) registerPlayers() (*player.Registry, error) {
	players := player.NewRegistry(palette.NewAllocator())

	err := s.screen.Show("", s.screen.StyleText("Enter the player names, one per line. Leave the line empty when everyone has joined.", renderer.StyleInput))
	if err != nil {
		return nil, err
	}

	for {
		line, err := s.in.ReadLine()
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(line) == "" {
			if players.Len() > 0 {
				return players, nil
			}
			if err := s.screen.Show(s.screen.StyleText("At least one player has to join.", renderer.StyleError)); err != nil {
				return nil, err
			}
			continue
		}

		p, err := players.Add(line)
		if errors.Is(err, player.ErrDuplicateName) {
			msg := fmt.Sprintf("%s is already playing, pick another name.", strings.TrimSpace(line))
			if err := s.screen.Show(s.screen.StyleText(msg, renderer.StyleError)); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		s.log.Info("player joined", zap.String("name", p.Name), zap.Stringer("color", p.Color))
		if err := s.screen.Show(s.screen.Paint(p.Color, p.Name) + " joined the game."); err != nil {
			return nil, err
		}
	}
}

func (s *Session) waitForEnter(msg string) error {
	if err := s.screen.Show(s.screen.StyleText(msg, renderer.StyleInput)); err != nil {
		return err
	}
	_, err := s.in.ReadLine()
	return err
}

func (s *Session) closing() error {
	if err := s.screen.Clear(); err != nil {
		return err
	}
	return s.screen.ShowBanner(renderer.BannerClosing)
}

package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"factmaster/pkg/engine/input"
	"factmaster/pkg/engine/logging"
	"factmaster/pkg/engine/terminal"
	"factmaster/pkg/game/deck"
	"factmaster/pkg/game/gameplay"
	"factmaster/pkg/game/renderer/tui"
)

const (
	releaseVersion = "1.0.0"
)

func main() {
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

// loadDeck reads the deck named in the config, or the built-in one.
func loadDeck(cfg *Config) (*deck.Deck, error) {
	if cfg.deck == "" {
		return deck.Default()
	}
	return deck.Load(cfg.deck)
}

func run(cfg *Config) error {
	log, err := logging.New(cfg.logLevel, cfg.logFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	d, err := loadDeck(cfg)
	if err != nil {
		return err
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	colored := !cfg.noColor && terminal.IsTerminal(os.Stdout)
	if !colored {
		tui.DisableColor()
	}

	log.Info("starting",
		zap.String("version", releaseVersion),
		zap.String("deck", d.Title),
		zap.Int64("seed", seed),
		zap.Bool("color", colored),
	)

	screen := tui.New(terminal.Stdout(), cfg.width)
	session := gameplay.NewSession(screen, input.Stdin(), d, rand.New(rand.NewSource(seed)), log, gameplay.Settings{
		Separator: cfg.separator,
		Rounds:    cfg.rounds,
		Color:     colored,
		Rules:     gameplay.DefaultRules,
	})

	if err := session.Run(); err != nil {
		return errors.Wrap(err, "game aborted")
	}
	return nil
}

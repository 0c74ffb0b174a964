package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"factmaster/pkg/engine/layout"
)

// minWidth leaves room for two columns next to the default separator.
const minWidth = 20

type Config struct {
	deck      string
	logFile   string
	logLevel  string
	noColor   bool
	rounds    int
	seed      int64
	separator string
	width     int
}

func (c *Config) validate() error {
	if c.rounds < 0 {
		return errors.Errorf("invalid round count (must be 0 or more): %d", c.rounds)
	}
	if c.width != 0 && c.width < minWidth {
		return errors.Errorf("invalid width (must be 0 or at least %d): %d", minWidth, c.width)
	}
	if c.separator == "" {
		return errors.New("--separator must not be empty")
	}
	if c.width != 0 && layout.Width(c.separator) >= c.width-1 {
		return errors.Errorf("separator %q leaves no room for the columns at width %d", c.separator, c.width)
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FACTMASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "factmaster",
		Short:         "A party quiz for the terminal: spot the fake article.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.deck, "deck", "d", "", "path to a YAML quiz deck, built-in deck if empty (env: FACTMASTER_DECK)")
	fs.StringVar(&cfg.logFile, "log-file", "", "file to write logs to, stderr if empty (env: FACTMASTER_LOG_FILE)")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error (env: FACTMASTER_LOG_LEVEL)")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored output (env: FACTMASTER_NO_COLOR)")
	fs.IntVarP(&cfg.rounds, "rounds", "r", 0, "number of rounds to play, 0 plays the whole deck (env: FACTMASTER_ROUNDS)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed, 0 picks one from the clock (env: FACTMASTER_SEED)")
	fs.StringVar(&cfg.separator, "separator", layout.DefaultSeparator, "text between the two article columns (env: FACTMASTER_SEPARATOR)")
	fs.IntVarP(&cfg.width, "width", "w", 0, "screen width, 0 uses the terminal width (env: FACTMASTER_WIDTH)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("factmaster v{{.Version}}\n")

	cmd.SilenceUsage = true

	return cmd
}

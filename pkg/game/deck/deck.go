// Package deck defines the quiz rounds: pairs of a real and a made-up
// article summary on the same topic. Decks are YAML files; one is built in.
package deck

import (
	_ "embed"
	"math/rand"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDeck is returned for decks that cannot be played.
var ErrInvalidDeck = errors.New("invalid deck")

//go:embed default.yaml
var defaultDeck []byte

// Article is one summary shown to the players.
type Article struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Round pairs a real article with a fabricated one.
type Round struct {
	Topic string  `yaml:"topic"`
	Fact  Article `yaml:"fact"`
	Fake  Article `yaml:"fake"`
}

// Deck is an ordered collection of rounds.
type Deck struct {
	Title  string  `yaml:"title"`
	Rounds []Round `yaml:"rounds"`
}

// Presentation is a round with its articles in display order.
type Presentation struct {
	Topic     string
	Articles  [2]Article
	FakeIndex int
}

// Fake returns the fabricated article.
func (p Presentation) Fake() Article {
	return p.Articles[p.FakeIndex]
}

// Parse decodes and validates a YAML deck.
func Parse(data []byte) (*Deck, error) {
	d := &Deck{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, errors.Wrapf(ErrInvalidDeck, "cannot decode: %v", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads a deck from path.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read deck")
	}
	d, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return d, nil
}

// Default returns the built-in deck.
func Default() (*Deck, error) {
	return Parse(defaultDeck)
}

// Validate checks that the deck has rounds and that every article has a
// summary.
func (d *Deck) Validate() error {
	if len(d.Rounds) == 0 {
		return errors.Wrap(ErrInvalidDeck, "deck has no rounds")
	}
	for i, r := range d.Rounds {
		if strings.TrimSpace(r.Fact.Summary) == "" {
			return errors.Wrapf(ErrInvalidDeck, "round %d: fact has no summary", i+1)
		}
		if strings.TrimSpace(r.Fake.Summary) == "" {
			return errors.Wrapf(ErrInvalidDeck, "round %d: fake has no summary", i+1)
		}
	}
	return nil
}

// Draw returns n rounds in random order. n <= 0, or more than the deck
// holds, draws every round.
func (d *Deck) Draw(rng *rand.Rand, n int) []Round {
	if n <= 0 || n > len(d.Rounds) {
		n = len(d.Rounds)
	}
	order := rng.Perm(len(d.Rounds))
	rounds := make([]Round, n)
	for i := range rounds {
		rounds[i] = d.Rounds[order[i]]
	}
	return rounds
}

// Shuffle decides which side the fake is shown on.
func (r Round) Shuffle(rng *rand.Rand) Presentation {
	p := Presentation{Topic: r.Topic, FakeIndex: rng.Intn(2)}
	p.Articles[p.FakeIndex] = r.Fake
	p.Articles[1-p.FakeIndex] = r.Fact
	return p
}

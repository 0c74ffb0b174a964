package deck

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

const smallDeck = `
title: Test
rounds:
  - topic: One
    fact: {title: Real one, summary: real summary one}
    fake: {title: Fake one, summary: fake summary one}
  - topic: Two
    fact: {title: Real two, summary: real summary two}
    fake: {title: Fake two, summary: fake summary two}
  - topic: Three
    fact: {title: Real three, summary: real summary three}
    fake: {title: Fake three, summary: fake summary three}
`

func TestDefault(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if len(d.Rounds) == 0 {
		t.Fatal("Default() has no rounds")
	}
	for i, r := range d.Rounds {
		if r.Topic == "" || r.Fact.Title == "" || r.Fake.Title == "" {
			t.Errorf("round %d is missing a topic or title: %+v", i, r)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse([]byte(smallDeck))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if d.Title != "Test" || len(d.Rounds) != 3 {
		t.Errorf("Parse = %q with %d rounds", d.Title, len(d.Rounds))
	}
	if d.Rounds[1].Fake.Summary != "fake summary two" {
		t.Errorf("round 2 fake summary = %q", d.Rounds[1].Fake.Summary)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "rounds: [unterminated"},
		{"no rounds", "title: empty\nrounds: []\n"},
		{"missing fake", "rounds:\n  - topic: x\n    fact: {summary: yes}\n"},
		{"missing fact", "rounds:\n  - topic: x\n    fake: {summary: yes}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !errors.Is(err, ErrInvalidDeck) {
				t.Errorf("Parse error = %v, want ErrInvalidDeck", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(smallDeck), 0o600); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(d.Rounds) != 3 {
		t.Errorf("len(Rounds) = %d, want 3", len(d.Rounds))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}

func TestDraw(t *testing.T) {
	d, err := Parse([]byte(smallDeck))
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))

	tests := []struct {
		n    int
		want int
	}{
		{0, 3},
		{-1, 3},
		{2, 2},
		{3, 3},
		{10, 3},
	}
	for _, tt := range tests {
		rounds := d.Draw(rng, tt.n)
		if len(rounds) != tt.want {
			t.Errorf("Draw(%d) returned %d rounds, want %d", tt.n, len(rounds), tt.want)
		}
		seen := map[string]bool{}
		for _, r := range rounds {
			if seen[r.Topic] {
				t.Errorf("Draw(%d) repeated %s", tt.n, r.Topic)
			}
			seen[r.Topic] = true
		}
	}
}

func TestShuffle(t *testing.T) {
	r := Round{
		Topic: "Topic",
		Fact:  Article{Title: "real", Summary: "real"},
		Fake:  Article{Title: "fake", Summary: "fake"},
	}
	rng := rand.New(rand.NewSource(1))

	sides := map[int]int{}
	for i := 0; i < 50; i++ {
		p := r.Shuffle(rng)
		if p.Fake() != r.Fake {
			t.Fatalf("Fake() = %+v, want %+v", p.Fake(), r.Fake)
		}
		if p.Articles[1-p.FakeIndex] != r.Fact {
			t.Fatalf("other article = %+v, want the fact", p.Articles[1-p.FakeIndex])
		}
		if p.Topic != "Topic" {
			t.Fatalf("Topic = %q", p.Topic)
		}
		sides[p.FakeIndex]++
	}
	if sides[0] == 0 || sides[1] == 0 {
		t.Errorf("fake side distribution = %v, want both sides used", sides)
	}
}

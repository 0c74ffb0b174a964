package player

import (
	"testing"

	"github.com/pkg/errors"

	"factmaster/pkg/engine/layout"
	"factmaster/pkg/game/palette"
)

func TestRegistry_AddAssignsColorsInOrder(t *testing.T) {
	r := NewRegistry(nil)
	names := []string{"Dominik", "Philipp", "Amir", "Jorge", "Lea", "Ana", "Ben", "Cleo", "Dan"}

	for i, name := range names {
		p, err := r.Add(name)
		if err != nil {
			t.Fatalf("Add(%q) error = %v", name, err)
		}
		if want := palette.Color(i % palette.Size); p.Color != want {
			t.Errorf("Add(%q).Color = %v, want %v", name, p.Color, want)
		}
	}

	if r.Len() != len(names) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(names))
	}
	for i, p := range r.Players() {
		if p.Name != names[i] {
			t.Errorf("Players()[%d] = %s, want %s", i, p.Name, names[i])
		}
	}
}

func TestRegistry_SharedAllocator(t *testing.T) {
	colors := palette.NewAllocator()
	colors.Next()

	r := NewRegistry(colors)
	p, err := r.Add("Lea")
	if err != nil {
		t.Fatalf("Add error = %v", err)
	}
	if p.Color != palette.Red {
		t.Errorf("Color = %v, want %v", p.Color, palette.Red)
	}
}

func TestRegistry_AddRejects(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.Add("  Lea "); err != nil {
		t.Fatalf("Add error = %v", err)
	}

	if _, err := r.Add("   "); !errors.Is(err, layout.ErrInvalidArgument) {
		t.Errorf("Add(blank) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := r.Add("lea"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Add(lea) error = %v, want ErrDuplicateName", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if got := r.Players()[0].Name; got != "Lea" {
		t.Errorf("Name = %q, want trimmed %q", got, "Lea")
	}
}

func TestPlayer_Award(t *testing.T) {
	p := &Player{Name: "Amir"}

	steps := []struct {
		points     int
		wantScore  int
		wantStreak int
	}{
		{10, 10, 1},
		{15, 25, 2},
		{0, 25, 0},
		{10, 35, 1},
	}
	for i, s := range steps {
		if err := p.Award(s.points); err != nil {
			t.Fatalf("step %d: Award error = %v", i, err)
		}
		if p.Score != s.wantScore || p.Streak != s.wantStreak {
			t.Errorf("step %d: score/streak = %d/%d, want %d/%d", i, p.Score, p.Streak, s.wantScore, s.wantStreak)
		}
	}

	if err := p.Award(-5); !errors.Is(err, layout.ErrInvalidArgument) {
		t.Errorf("Award(-5) error = %v, want ErrInvalidArgument", err)
	}
	if p.Score != 35 {
		t.Errorf("Score = %d after rejected award, want 35", p.Score)
	}
}

func TestRegistry_EntriesAreSnapshots(t *testing.T) {
	r := NewRegistry(nil)
	p, _ := r.Add("Jorge")
	_ = p.Award(10)

	entries := r.Entries()
	entries[0].Score = 999

	if p.Score != 10 {
		t.Errorf("Score = %d, want 10 after editing snapshot", p.Score)
	}
}

func TestRegistry_Leaders(t *testing.T) {
	r := NewRegistry(nil)
	if leaders := r.Leaders(); len(leaders) != 0 {
		t.Errorf("Leaders() on empty registry = %v", leaders)
	}

	a, _ := r.Add("a")
	b, _ := r.Add("b")
	c, _ := r.Add("c")
	_ = a.Award(20)
	_ = b.Award(10)
	_ = c.Award(20)

	leaders := r.Leaders()
	if len(leaders) != 2 || leaders[0] != a || leaders[1] != c {
		t.Errorf("Leaders() = %v, want [a c]", leaders)
	}
}

func TestRegistry_PlayersReturnsCopy(t *testing.T) {
	r := NewRegistry(nil)
	for _, name := range []string{"Amir", "Lea"} {
		if _, err := r.Add(name); err != nil {
			t.Fatalf("Add(%q) error = %v", name, err)
		}
	}

	got := r.Players()
	got[0], got[1] = got[1], got[0]
	_ = append(got[:1], &Player{Name: "Intruder"})

	players := r.Players()
	if players[0].Name != "Amir" || players[1].Name != "Lea" {
		t.Errorf("Players() = [%s %s], want [Amir Lea]", players[0].Name, players[1].Name)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

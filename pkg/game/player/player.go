// Package player keeps track of who is playing and how well they are doing.
package player

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"factmaster/pkg/engine/layout"
	"factmaster/pkg/game/palette"
	"factmaster/pkg/game/scoreboard"
)

// ErrDuplicateName is returned when a name is already taken (ignoring case).
var ErrDuplicateName = errors.New("name already taken")

// Player is a single contestant
type Player struct {
	Name  string
	Color palette.Color
	Score int

	// Streak counts consecutive correct answers.
	Streak int
}

// Award adds points to the player's score. Zero points breaks the streak;
// anything else extends it.
func (p *Player) Award(points int) error {
	if points < 0 {
		return errors.Wrapf(layout.ErrInvalidArgument, "points must not be negative, got %d", points)
	}
	if points == 0 {
		p.Streak = 0
		return nil
	}
	p.Score += points
	p.Streak++
	return nil
}

// Entry returns a snapshot of the player for rendering.
func (p *Player) Entry() scoreboard.Entry {
	return scoreboard.Entry{Name: p.Name, Score: p.Score, Color: p.Color}
}

// Registry holds players in the order they joined. Each player gets the
// next color from the registry's allocator. A Registry is not safe for
// concurrent use.
type Registry struct {
	colors  *palette.Allocator
	players []*Player
	names   mapset.Set[string]
}

// NewRegistry creates an empty registry drawing colors from colors. A nil
// allocator gets a fresh one.
func NewRegistry(colors *palette.Allocator) *Registry {
	if colors == nil {
		colors = palette.NewAllocator()
	}
	return &Registry{
		colors: colors,
		names:  mapset.New[string](),
	}
}

// Add registers a new player.
func (r *Registry) Add(name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(layout.ErrInvalidArgument, "player name must not be empty")
	}

	key := strings.ToLower(name)
	if r.names.Has(key) {
		return nil, errors.Wrapf(ErrDuplicateName, "%q", name)
	}

	p := &Player{Name: name, Color: r.colors.Next()}
	r.names.Put(key)
	r.players = append(r.players, p)
	return p, nil
}

// Players returns the players in join order. The slice is a copy; the
// players themselves are shared.
func (r *Registry) Players() []*Player {
	return slices.Clone(r.players)
}

// Len returns the number of players.
func (r *Registry) Len() int {
	return len(r.players)
}

// Entries returns rendering snapshots in join order.
func (r *Registry) Entries() []scoreboard.Entry {
	entries := make([]scoreboard.Entry, len(r.players))
	for i, p := range r.players {
		entries[i] = p.Entry()
	}
	return entries
}

// Leaders returns every player sharing the highest score, in join order.
func (r *Registry) Leaders() []*Player {
	var leaders []*Player
	best := -1
	for _, p := range r.players {
		switch {
		case p.Score > best:
			best = p.Score
			leaders = []*Player{p}
		case p.Score == best:
			leaders = append(leaders, p)
		}
	}
	return leaders
}

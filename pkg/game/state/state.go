package state

import (
	"factmaster/pkg/game/deck"
	"factmaster/pkg/game/player"
	"factmaster/pkg/game/scoreboard"
)

// Game represents one play session
type Game struct {
	Players *player.Registry

	Rounds []deck.Round

	// Played counts completed rounds.
	Played int

	// history[i] holds player i's score after each completed round,
	// starting with the score when the game started.
	history [][]int
}

// NewGame creates a new game over the given rounds
func NewGame(players *player.Registry, rounds []deck.Round) *Game {
	return &Game{
		Players: players,
		Rounds:  rounds,
	}
}

// Start records the opening scores. Players joining later are not tracked.
func (g *Game) Start() {
	g.history = make([][]int, g.Players.Len())
	g.snapshot()
}

// Next returns the round to play and its 1-based number, or false when
// every round has been played.
func (g *Game) Next() (deck.Round, int, bool) {
	if g.Finished() {
		return deck.Round{}, 0, false
	}
	return g.Rounds[g.Played], g.Played + 1, true
}

// CompleteRound marks the current round as played and records scores
func (g *Game) CompleteRound() {
	g.Played++
	g.snapshot()
}

// Finished reports whether all rounds have been played
func (g *Game) Finished() bool {
	return g.Played >= len(g.Rounds)
}

func (g *Game) snapshot() {
	for i, p := range g.Players.Players() {
		if i < len(g.history) {
			g.history[i] = append(g.history[i], p.Score)
		}
	}
}

// Series returns each player's score history for charting
func (g *Game) Series() []scoreboard.Series {
	players := g.Players.Players()
	series := make([]scoreboard.Series, 0, len(g.history))
	for i, scores := range g.history {
		p := players[i]
		series = append(series, scoreboard.Series{
			Name:   p.Name,
			Color:  p.Color,
			Scores: append([]int(nil), scores...),
		})
	}
	return series
}

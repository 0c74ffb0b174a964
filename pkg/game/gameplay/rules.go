// Package gameplay runs a Fact Master session: registration, rounds and
// the final standings.
package gameplay

// Rules decides how many points an answer is worth.
type Rules struct {
	PointsPerCorrect int

	// StreakBonus is added to a correct answer that makes the player's
	// streak reach StreakThreshold or more. A threshold of 0 disables it.
	StreakBonus     int
	StreakThreshold int
}

// DefaultRules gives 10 points per correct answer and 5 extra from the
// third correct answer in a row.
var DefaultRules = Rules{
	PointsPerCorrect: 10,
	StreakBonus:      5,
	StreakThreshold:  3,
}

// Points returns the score for one answer given the player's streak before
// answering.
func (r Rules) Points(correct bool, streak int) int {
	if !correct {
		return 0
	}
	points := r.PointsPerCorrect
	if r.StreakThreshold > 0 && streak+1 >= r.StreakThreshold {
		points += r.StreakBonus
	}
	return points
}

package session

import (
	"time"

	"github.com/robalobadob/numbermatch/internal/game"
)

// Totals accumulates the rounds of one session.
type Totals struct {
	Score   int
	Elapsed time.Duration
	Best    int  // all-time best after this session
	NewBest bool // Score beat the previous best
	Rounds  []game.Outcome
}

// MaxScore is the best possible session score.
const MaxScore = Missions * game.MaxRoundScore

// Tally sums outcomes and compares the total against prevBest.
func Tally(outcomes []game.Outcome, prevBest int) Totals {
	t := Totals{Best: prevBest, Rounds: append([]game.Outcome(nil), outcomes...)}
	for _, o := range outcomes {
		t.Score += o.Score
		t.Elapsed += o.Elapsed
	}
	if t.Score > prevBest {
		t.Best = t.Score
		t.NewBest = true
	}
	return t
}

// internal/game/types.go
//
// Core type definitions for the round engine.
// Defines:
//   - State / EndReason: the round state machine and why it ended.
//   - Outcome: immutable result handed to the session when a round ends.
//   - Toast: non-blocking transient message with an expiry.
//   - Snapshot / CellView: read-only frame data for the renderer.

package game

import (
	"time"

	"github.com/robalobadob/numbermatch/internal/grid"
)

const (
	PointsPerPair = 5
	PairsPerLevel = 10
	TimePerLevel  = 120 * time.Second
	MaxRoundScore = PairsPerLevel * PointsPerPair
)

// State is the round state machine position.
type State int

const (
	StateRunning    State = iota // accepting selections
	StateEvaluating              // two cells held, resolved on the next tick
	StateEnded                   // terminal
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateEvaluating:
		return "evaluating"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason says why a round reached StateEnded.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonTimeExpired
	ReasonAllPairsFound
	ReasonNoMovesLeft // sum rule only
)

func (r EndReason) String() string {
	switch r {
	case ReasonTimeExpired:
		return "time_expired"
	case ReasonAllPairsFound:
		return "all_pairs_found"
	case ReasonNoMovesLeft:
		return "no_moves_left"
	default:
		return "none"
	}
}

// Outcome is the immutable result of a finished round.
type Outcome struct {
	Mission    int
	Score      int           // multiple of PointsPerPair
	Elapsed    time.Duration // 0 <= Elapsed <= time limit
	PairsFound int
	Reason     EndReason
}

// Tone is the semantic color of a toast; the renderer maps it to a palette.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneWarning
	ToneGold
)

// Toast is a transient message shown while now < Expires.
type Toast struct {
	Text    string
	Tone    Tone
	Expires time.Time
}

// Active reports whether the toast should still be displayed at now.
func (t *Toast) Active(now time.Time) bool {
	return t != nil && now.Before(t.Expires)
}

// CellView is one cell as the renderer sees it.
type CellView struct {
	Pos         grid.Pos
	Value       int
	Visible     bool
	Highlighted bool
}

// Snapshot is the per-frame read-only view of a round.
type Snapshot struct {
	Mission     int
	Objective   string
	Rows, Cols  int
	Cells       []CellView
	Score       int
	MaxScore    int
	PairsFound  int
	PairsTarget int
	Remaining   time.Duration
	TimeLimit   time.Duration
	Selected    []int // values of selected cells, selection order
	State       State
	Reason      EndReason
	Toast       *Toast // nil unless active
}

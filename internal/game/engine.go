// internal/game/engine.go
//
// Round engine for a single mission.
// Responsibilities:
//   - Selection handling: toggle up to two visible cells; a third is ignored.
//   - Pair resolution: valid pairs hide both cells and score PointsPerPair.
//   - End conditions, checked every tick in this order:
//       time expired → all pairs found → no moves left (dead-end rule only).
//   - Toasts replace blocking message pauses.
//
// Notes:
//   - Time is sampled, never pushed: every call takes the caller's now.
//   - Ended is terminal; inputs after that are ignored.
package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/numbermatch/internal/grid"
	"github.com/robalobadob/numbermatch/internal/pairs"
)

// Toast texts and durations.
const (
	msgPoints   = "+5 POINTS"
	msgInvalid  = "INVALID PAIR"
	msgComplete = "MISSION COMPLETE!"
	msgDeadEnd  = "NO MORE VALID PAIRS"

	pointsToastFor   = 500 * time.Millisecond
	invalidToastFor  = 500 * time.Millisecond
	completeToastFor = time.Second
	deadEndToastFor  = 1500 * time.Millisecond
)

// Config describes one mission.
type Config struct {
	Mission      int
	Rule         pairs.Rule
	TimeLimit    time.Duration // defaults to TimePerLevel
	PairsToWin   int           // defaults to PairsPerLevel; capped at cells/2
	DeadEndCheck bool          // end with NoMovesLeft when Rule has no pair left
}

// MissionConfig returns the fixed config for mission 1 (equal) or 2 (sum to 7).
func MissionConfig(mission int) Config {
	if mission == 2 {
		return Config{
			Mission:      2,
			Rule:         pairs.SumTo(pairs.DefaultSumTarget),
			TimeLimit:    TimePerLevel,
			PairsToWin:   PairsPerLevel,
			DeadEndCheck: true,
		}
	}
	return Config{
		Mission:    1,
		Rule:       pairs.Equal(),
		TimeLimit:  TimePerLevel,
		PairsToWin: PairsPerLevel,
	}
}

// selection is a fixed-capacity ordered set of at most two positions.
type selection struct {
	pos [2]grid.Pos
	n   int
}

func (s *selection) index(p grid.Pos) int {
	for i := 0; i < s.n; i++ {
		if s.pos[i] == p {
			return i
		}
	}
	return -1
}

func (s *selection) add(p grid.Pos) bool {
	if s.n == len(s.pos) {
		return false
	}
	s.pos[s.n] = p
	s.n++
	return true
}

func (s *selection) remove(i int) {
	if i == 0 && s.n == 2 {
		s.pos[0] = s.pos[1]
	}
	s.n--
}

func (s *selection) clear() { s.n = 0 }

func (s *selection) items() []grid.Pos { return append([]grid.Pos(nil), s.pos[:s.n]...) }

// Round is the state machine for one mission.
type Round struct {
	ID string

	cfg     Config
	grid    *grid.Grid
	sel     selection
	score   int
	state   State
	reason  EndReason
	start   time.Time
	elapsed time.Duration
	toast   *Toast
}

// NewRound starts a round on g at now.
func NewRound(cfg Config, g *grid.Grid, now time.Time) *Round {
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = TimePerLevel
	}
	if cfg.PairsToWin <= 0 {
		cfg.PairsToWin = PairsPerLevel
	}
	cfg.PairsToWin = min(cfg.PairsToWin, g.Len()/2)
	return &Round{
		ID:    uuid.NewString(),
		cfg:   cfg,
		grid:  g,
		state: StateRunning,
		start: now,
	}
}

func (r *Round) Mission() int         { return r.cfg.Mission }
func (r *Round) Rule() pairs.Rule     { return r.cfg.Rule }
func (r *Round) Grid() *grid.Grid     { return r.grid }
func (r *Round) State() State         { return r.state }
func (r *Round) Reason() EndReason    { return r.reason }
func (r *Round) Score() int           { return r.score }
func (r *Round) Ended() bool          { return r.state == StateEnded }
func (r *Round) Selected() []grid.Pos { return r.sel.items() }

// PairsFound is the grid's cleared-cells metric.
func (r *Round) PairsFound() int { return r.grid.PairsFound() }

// Remaining is the time left at now, never negative. Frozen once ended.
func (r *Round) Remaining(now time.Time) time.Duration {
	if r.state == StateEnded {
		return r.cfg.TimeLimit - r.elapsed
	}
	return max(0, r.cfg.TimeLimit-now.Sub(r.start))
}

// Toast returns the current message if it is still showing at now.
func (r *Round) Toast(now time.Time) *Toast {
	if r.toast.Active(now) {
		return r.toast
	}
	return nil
}

// Toggle adds p to the selection, or removes it if already selected.
// Hidden or out-of-range cells, a third selection, and input after the
// round ended are ignored.
func (r *Round) Toggle(p grid.Pos) {
	if r.state == StateEnded {
		return
	}
	if i := r.sel.index(p); i >= 0 {
		r.sel.remove(i)
		r.state = StateRunning
		return
	}
	c, ok := r.grid.At(p)
	if !ok || !c.Visible {
		return
	}
	if r.sel.add(p) && r.sel.n == 2 {
		r.state = StateEvaluating
	}
}

// ClearSelection drops any held cells without scoring.
func (r *Round) ClearSelection() {
	if r.state == StateEnded {
		return
	}
	r.sel.clear()
	r.state = StateRunning
}

// Tick runs one update of the state machine at now and reports whether the
// round has ended.
func (r *Round) Tick(now time.Time) bool {
	if r.state == StateEnded {
		return true
	}

	if r.Remaining(now) <= 0 {
		r.end(ReasonTimeExpired, now)
		return true
	}

	if r.state == StateEvaluating {
		r.resolve(now)
	}

	found := r.grid.PairsFound()
	if found >= r.cfg.PairsToWin {
		r.end(ReasonAllPairsFound, now)
		return true
	}

	if r.cfg.DeadEndCheck && !pairs.HasAnyPair(r.grid.Visible(), r.cfg.Rule) {
		r.toast = &Toast{Text: msgDeadEnd, Tone: ToneWarning, Expires: now.Add(deadEndToastFor)}
		r.end(ReasonNoMovesLeft, now)
		return true
	}
	return false
}

// resolve applies the rule to the two held cells and clears the selection.
func (r *Round) resolve(now time.Time) {
	a, _ := r.grid.At(r.sel.pos[0])
	b, _ := r.grid.At(r.sel.pos[1])
	r.sel.clear()
	r.state = StateRunning

	if !r.cfg.Rule.Match(a.Value, b.Value) {
		r.toast = &Toast{Text: msgInvalid, Tone: ToneWarning, Expires: now.Add(invalidToastFor)}
		return
	}

	r.grid.Hide(a.Pos)
	r.grid.Hide(b.Pos)
	r.score += PointsPerPair

	if r.grid.PairsFound() >= r.cfg.PairsToWin {
		r.toast = &Toast{Text: msgComplete, Tone: ToneGold, Expires: now.Add(completeToastFor)}
	} else {
		r.toast = &Toast{Text: msgPoints, Tone: ToneSuccess, Expires: now.Add(pointsToastFor)}
	}
}

func (r *Round) end(reason EndReason, now time.Time) {
	r.elapsed = min(max(0, now.Sub(r.start)), r.cfg.TimeLimit)
	r.sel.clear()
	r.state = StateEnded
	r.reason = reason
}

// Outcome returns the round result once ended.
func (r *Round) Outcome() (Outcome, bool) {
	if r.state != StateEnded {
		return Outcome{}, false
	}
	return Outcome{
		Mission:    r.cfg.Mission,
		Score:      r.score,
		Elapsed:    r.elapsed,
		PairsFound: r.grid.PairsFound(),
		Reason:     r.reason,
	}, true
}

// Snapshot builds the renderer's view at now.
func (r *Round) Snapshot(now time.Time) Snapshot {
	cells := r.grid.Cells()
	views := make([]CellView, len(cells))
	for i, c := range cells {
		views[i] = CellView{
			Pos:         c.Pos,
			Value:       c.Value,
			Visible:     c.Visible,
			Highlighted: r.sel.index(c.Pos) >= 0,
		}
	}
	var selected []int
	for _, p := range r.sel.items() {
		if c, ok := r.grid.At(p); ok {
			selected = append(selected, c.Value)
		}
	}
	return Snapshot{
		Mission:     r.cfg.Mission,
		Objective:   r.cfg.Rule.Objective(),
		Rows:        r.grid.Rows(),
		Cols:        r.grid.Cols(),
		Cells:       views,
		Score:       r.score,
		MaxScore:    r.cfg.PairsToWin * PointsPerPair,
		PairsFound:  r.grid.PairsFound(),
		PairsTarget: r.cfg.PairsToWin,
		Remaining:   r.Remaining(now),
		TimeLimit:   r.cfg.TimeLimit,
		Selected:    selected,
		State:       r.state,
		Reason:      r.reason,
		Toast:       r.Toast(now),
	}
}

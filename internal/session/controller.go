// internal/session/controller.go
//
// Session controller: one play-through is
//   start screen → mission 1 → summary → mission 2 → report → (restart | exit).
//
// Responsibilities:
//   - Build a fresh grid and Round per mission (mission 2 reuses mission 1's
//     dimensions, not its content).
//   - Hold the terminal transition until the finished round's toast expires.
//   - Accumulate score/time and persist the best score at session boundaries.
//
// The controller is driven synchronously by the game loop; nothing here
// spawns goroutines or timers.

package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/numbermatch/internal/game"
	"github.com/robalobadob/numbermatch/internal/grid"
	"github.com/robalobadob/numbermatch/internal/store"
)

// ErrPhase is returned when an action does not apply to the current phase.
var ErrPhase = errors.New("session: action not valid in this phase")

// Phase is the screen the session is on.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMission
	PhaseSummary
	PhaseReport
	PhaseExited
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMission:
		return "mission"
	case PhaseSummary:
		return "summary"
	case PhaseReport:
		return "report"
	case PhaseExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Missions is the number of rounds in a session.
const Missions = 2

// Clock samples wall-clock time once per tick.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// GameContext carries everything a session needs. It is built once at
// startup and passed in; there is no package-level state.
type GameContext struct {
	Store  store.Store
	Clock  Clock
	Logger zerolog.Logger
	Grid   grid.Options

	// NewRand returns the RNG for one session. Nil means a random seed.
	NewRand func() *rand.Rand
}

// Controller sequences the missions of a session.
type Controller struct {
	gc  GameContext
	log zerolog.Logger

	id       string
	phase    Phase
	rng      *rand.Rand
	round    *game.Round
	outcomes []game.Outcome
	totals   Totals
	best     int
	saveErr  error
}

// New validates the grid options (a ConfigError here is fatal) and loads the
// best score.
func New(ctx context.Context, gc GameContext) (*Controller, error) {
	if err := grid.Validate(gc.Grid); err != nil {
		return nil, err
	}
	if gc.Store == nil {
		gc.Store = store.NewMemoryStore(0)
	}
	if gc.Clock == nil {
		gc.Clock = ClockFunc(time.Now)
	}
	if gc.NewRand == nil {
		gc.NewRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	c := &Controller{gc: gc, log: gc.Logger, phase: PhaseStart}
	c.loadBest(ctx)
	return c, nil
}

func (c *Controller) Phase() Phase       { return c.phase }
func (c *Controller) Round() *game.Round { return c.round }
func (c *Controller) Best() int          { return c.best }
func (c *Controller) Totals() Totals     { return c.totals }
func (c *Controller) SessionID() string  { return c.id }
func (c *Controller) Now() time.Time     { return c.gc.Clock.Now() }

// SaveErr is the last best-score write failure, cleared on restart.
func (c *Controller) SaveErr() error { return c.saveErr }

// LastOutcome is the most recently finished round.
func (c *Controller) LastOutcome() (game.Outcome, bool) {
	if len(c.outcomes) == 0 {
		return game.Outcome{}, false
	}
	return c.outcomes[len(c.outcomes)-1], true
}

// Start leaves the start screen and begins mission 1 on a fresh grid.
func (c *Controller) Start() error {
	if c.phase != PhaseStart {
		return fmt.Errorf("%w: start from %s", ErrPhase, c.phase)
	}
	c.id = uuid.NewString()
	c.rng = c.gc.NewRand()
	c.outcomes = nil
	c.totals = Totals{}
	c.saveErr = nil
	c.log.Info().Str("session", c.id).Msg("session started")
	return c.startMission(1, c.gc.Grid)
}

// Continue leaves the mission 1 summary and begins mission 2 on a new grid
// with mission 1's dimensions.
func (c *Controller) Continue() error {
	if c.phase != PhaseSummary {
		return fmt.Errorf("%w: continue from %s", ErrPhase, c.phase)
	}
	opts := c.gc.Grid
	opts.Rows, opts.Cols = c.round.Grid().Rows(), c.round.Grid().Cols()
	return c.startMission(2, opts)
}

// Restart leaves the report for a new start screen. Nothing of the previous
// session survives; the best score is reloaded at this boundary.
func (c *Controller) Restart(ctx context.Context) error {
	if c.phase != PhaseReport {
		return fmt.Errorf("%w: restart from %s", ErrPhase, c.phase)
	}
	c.round = nil
	c.outcomes = nil
	c.totals = Totals{}
	c.saveErr = nil
	c.phase = PhaseStart
	c.loadBest(ctx)
	return nil
}

// Exit ends the program loop from any phase.
func (c *Controller) Exit() {
	c.phase = PhaseExited
	c.log.Info().Str("session", c.id).Msg("exit requested")
}

// Toggle forwards a cell selection to the active round.
func (c *Controller) Toggle(p grid.Pos) {
	if c.phase == PhaseMission {
		c.round.Toggle(p)
	}
}

// ClearSelection forwards the clear key to the active round.
func (c *Controller) ClearSelection() {
	if c.phase == PhaseMission {
		c.round.ClearSelection()
	}
}

// Update ticks the active round. When it has ended and its last toast has
// expired, the session moves to the summary or report.
func (c *Controller) Update(ctx context.Context) {
	if c.phase != PhaseMission {
		return
	}
	now := c.gc.Clock.Now()
	if !c.round.Tick(now) {
		return
	}
	if c.round.Toast(now) != nil {
		return
	}
	c.finishRound(ctx)
}

func (c *Controller) startMission(mission int, opts grid.Options) error {
	g, err := grid.Generate(c.rng, opts)
	if err != nil {
		return fmt.Errorf("mission %d grid: %w", mission, err)
	}
	c.round = game.NewRound(game.MissionConfig(mission), g, c.gc.Clock.Now())
	c.phase = PhaseMission
	c.log.Debug().
		Str("session", c.id).
		Str("round", c.round.ID).
		Int("mission", mission).
		Str("rule", c.round.Rule().String()).
		Int("rows", g.Rows()).
		Int("cols", g.Cols()).
		Msg("mission started")
	return nil
}

func (c *Controller) finishRound(ctx context.Context) {
	out, _ := c.round.Outcome()
	c.outcomes = append(c.outcomes, out)
	c.log.Info().
		Str("session", c.id).
		Str("round", c.round.ID).
		Int("mission", out.Mission).
		Str("reason", out.Reason.String()).
		Int("score", out.Score).
		Int("pairs", out.PairsFound).
		Dur("elapsed", out.Elapsed).
		Msg("round ended")

	if len(c.outcomes) < Missions {
		c.phase = PhaseSummary
		return
	}
	c.finishSession(ctx)
	c.phase = PhaseReport
}

func (c *Controller) finishSession(ctx context.Context) {
	c.totals = Tally(c.outcomes, c.best)
	if !c.totals.NewBest {
		return
	}
	c.best = c.totals.Best
	if err := c.gc.Store.Save(ctx, c.best); err != nil {
		c.saveErr = err
		c.log.Warn().Err(err).Int("best", c.best).Msg("best score not saved")
		return
	}
	c.log.Info().Str("session", c.id).Int("best", c.best).Msg("new best score")
}

func (c *Controller) loadBest(ctx context.Context) {
	n, err := c.gc.Store.Load(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("best score unreadable, using 0")
		n = 0
	}
	c.best = n
}

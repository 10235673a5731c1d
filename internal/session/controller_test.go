package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/numbermatch/internal/game"
	"github.com/robalobadob/numbermatch/internal/grid"
	"github.com/robalobadob/numbermatch/internal/pairs"
	"github.com/robalobadob/numbermatch/internal/store"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

type brokenStore struct {
	loadErr, saveErr error
	saves            int
}

func (b *brokenStore) Load(ctx context.Context) (int, error) { return 0, b.loadErr }
func (b *brokenStore) Save(ctx context.Context, n int) error {
	b.saves++
	return b.saveErr
}

func newController(t *testing.T, st store.Store, opts grid.Options) (*Controller, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	c, err := New(context.Background(), GameContext{
		Store:  st,
		Clock:  clock,
		Logger: zerolog.Nop(),
		Grid:   opts,
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(7, 11))
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, clock
}

// playMission solves the active round greedily, one pair per second, until
// the session leaves the mission phase.
func playMission(t *testing.T, c *Controller, clock *fakeClock) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 100 && c.Phase() == PhaseMission; i++ {
		r := c.Round()
		if !r.Ended() {
			if ps := pairs.Find(r.Grid().Visible(), r.Rule()); len(ps) > 0 {
				c.Toggle(ps[0].A)
				c.Toggle(ps[0].B)
			}
		}
		clock.Advance(time.Second)
		c.Update(ctx)
	}
	if c.Phase() == PhaseMission {
		t.Fatal("mission did not finish")
	}
}

func TestFullSessionPersistsNewBest(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore(40)
	c, clock := newController(t, mem, grid.Options{Rows: 4, Cols: 5})

	if c.Phase() != PhaseStart || c.Best() != 40 {
		t.Fatalf("phase=%s best=%d; want start/40", c.Phase(), c.Best())
	}
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	playMission(t, c, clock)
	if c.Phase() != PhaseSummary {
		t.Fatalf("phase = %s; want summary", c.Phase())
	}
	first, _ := c.LastOutcome()
	if first.Mission != 1 || first.Score != game.MaxRoundScore || first.Reason != game.ReasonAllPairsFound {
		t.Fatalf("mission 1 outcome = %+v; want full clear", first)
	}

	if err := c.Continue(); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if g := c.Round().Grid(); g.Rows() != 4 || g.Cols() != 5 || g.VisibleCount() != 20 {
		t.Fatalf("mission 2 grid %dx%d visible %d; want fresh 4x5", g.Rows(), g.Cols(), g.VisibleCount())
	}
	if c.Round().Mission() != 2 {
		t.Fatalf("mission = %d; want 2", c.Round().Mission())
	}

	playMission(t, c, clock)
	if c.Phase() != PhaseReport {
		t.Fatalf("phase = %s; want report", c.Phase())
	}

	totals := c.Totals()
	if len(totals.Rounds) != 2 {
		t.Fatalf("rounds = %d; want 2", len(totals.Rounds))
	}
	want := totals.Rounds[0].Score + totals.Rounds[1].Score
	if totals.Score != want || totals.Score < game.MaxRoundScore {
		t.Fatalf("total = %d; want %d (>= %d)", totals.Score, want, game.MaxRoundScore)
	}
	if totals.Elapsed != totals.Rounds[0].Elapsed+totals.Rounds[1].Elapsed {
		t.Fatalf("elapsed = %v; want sum of rounds", totals.Elapsed)
	}
	if !totals.NewBest || c.Best() != totals.Score {
		t.Fatalf("best = %d newBest = %v; want %d/true", c.Best(), totals.NewBest, totals.Score)
	}
	if n, _ := mem.Load(ctx); n != totals.Score || mem.Saves() != 1 {
		t.Fatalf("stored = %d saves = %d; want %d/1", n, mem.Saves(), totals.Score)
	}
}

func TestTimeoutSessionKeepsBest(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore(90)
	c, clock := newController(t, mem, grid.DefaultOptions())

	_ = c.Start()
	clock.Advance(game.TimePerLevel + time.Second)
	c.Update(ctx)
	if c.Phase() != PhaseSummary {
		t.Fatalf("phase = %s; want summary", c.Phase())
	}
	out, _ := c.LastOutcome()
	if out.Reason != game.ReasonTimeExpired || out.Elapsed != game.TimePerLevel {
		t.Fatalf("outcome = %+v; want time_expired after %v", out, game.TimePerLevel)
	}

	_ = c.Continue()
	clock.Advance(game.TimePerLevel + time.Second)
	for i := 0; i < 5 && c.Phase() == PhaseMission; i++ {
		c.Update(ctx)
		clock.Advance(time.Second)
	}
	if c.Phase() != PhaseReport {
		t.Fatalf("phase = %s; want report", c.Phase())
	}
	if c.Totals().Score != 0 || c.Totals().NewBest || c.Best() != 90 || mem.Saves() != 0 {
		t.Fatalf("totals=%+v best=%d saves=%d; want unchanged best 90", c.Totals(), c.Best(), mem.Saves())
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	st := &brokenStore{saveErr: fmt.Errorf("%w: disk full", store.ErrWrite)}
	c, clock := newController(t, st, grid.DefaultOptions())

	_ = c.Start()
	playMission(t, c, clock)
	_ = c.Continue()
	playMission(t, c, clock)

	if c.Phase() != PhaseReport {
		t.Fatalf("phase = %s; want report", c.Phase())
	}
	if st.saves != 1 || !errors.Is(c.SaveErr(), store.ErrWrite) {
		t.Fatalf("saves=%d err=%v; want one failed save", st.saves, c.SaveErr())
	}
	if c.Best() != c.Totals().Score {
		t.Fatalf("best = %d; want in-memory %d", c.Best(), c.Totals().Score)
	}
}

func TestCorruptBestScoreDefaultsToZero(t *testing.T) {
	st := &brokenStore{loadErr: fmt.Errorf("%w: garbage", store.ErrRead)}
	c, _ := newController(t, st, grid.DefaultOptions())
	if c.Best() != 0 {
		t.Fatalf("best = %d; want 0", c.Best())
	}
}

func TestNewRejectsSmallGrid(t *testing.T) {
	_, err := New(context.Background(), GameContext{Grid: grid.Options{Rows: 4, Cols: 4}, Logger: zerolog.Nop()})
	var cfgErr *grid.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v; want *grid.ConfigError", err)
	}
}

func TestPhaseGuards(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(t, store.NewMemoryStore(0), grid.DefaultOptions())

	if err := c.Continue(); !errors.Is(err, ErrPhase) {
		t.Fatalf("Continue from start err = %v; want ErrPhase", err)
	}
	if err := c.Restart(ctx); !errors.Is(err, ErrPhase) {
		t.Fatalf("Restart from start err = %v; want ErrPhase", err)
	}
	_ = c.Start()
	if err := c.Start(); !errors.Is(err, ErrPhase) {
		t.Fatalf("second Start err = %v; want ErrPhase", err)
	}
}

func TestRestartStartsFreshSession(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore(0)
	c, clock := newController(t, mem, grid.DefaultOptions())

	_ = c.Start()
	firstID := c.SessionID()
	playMission(t, c, clock)
	_ = c.Continue()
	playMission(t, c, clock)

	// another process raised the best meanwhile
	_ = mem.Save(ctx, 100)

	if err := c.Restart(ctx); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if c.Phase() != PhaseStart || c.Round() != nil || len(c.Totals().Rounds) != 0 {
		t.Fatalf("phase=%s round=%v totals=%+v; want clean start", c.Phase(), c.Round(), c.Totals())
	}
	if c.Best() != 100 {
		t.Fatalf("best = %d; want reloaded 100", c.Best())
	}
	_ = c.Start()
	if c.SessionID() == firstID {
		t.Fatal("restart reused the session id")
	}
}

func TestInputIgnoredOutsideMission(t *testing.T) {
	c, _ := newController(t, store.NewMemoryStore(0), grid.DefaultOptions())
	c.Toggle(grid.Pos{})
	c.ClearSelection()
	c.Update(context.Background())
	if c.Phase() != PhaseStart {
		t.Fatalf("phase = %s; want start", c.Phase())
	}
	c.Exit()
	if c.Phase() != PhaseExited {
		t.Fatalf("phase = %s; want exited", c.Phase())
	}
}

func TestTally(t *testing.T) {
	rounds := []game.Outcome{
		{Mission: 1, Score: 30, Elapsed: 80 * time.Second},
		{Mission: 2, Score: 45, Elapsed: 100 * time.Second},
	}
	cases := []struct {
		prev    int
		best    int
		newBest bool
	}{
		{prev: 60, best: 75, newBest: true},
		{prev: 90, best: 90, newBest: false},
		{prev: 75, best: 75, newBest: false},
	}
	for _, tc := range cases {
		got := Tally(rounds, tc.prev)
		if got.Score != 75 || got.Elapsed != 180*time.Second {
			t.Fatalf("Tally score=%d elapsed=%v; want 75/180s", got.Score, got.Elapsed)
		}
		if got.Best != tc.best || got.NewBest != tc.newBest {
			t.Fatalf("Tally(prev=%d) best=%d new=%v; want %d/%v", tc.prev, got.Best, got.NewBest, tc.best, tc.newBest)
		}
	}
}

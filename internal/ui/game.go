// Package ui runs the session controller inside an ebiten game loop: it
// turns mouse and keyboard events into controller actions and draws the
// current phase every frame.
package ui

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/robalobadob/numbermatch/internal/layout"
	"github.com/robalobadob/numbermatch/internal/session"
)

const starCount = 100

type star struct {
	x, y, r    float32
	brightness uint8
}

// Game implements ebiten.Game.
type Game struct {
	ctx    context.Context
	ctl    *session.Controller
	assets *Assets
	log    zerolog.Logger

	stars []star
	phase session.Phase
}

func New(ctx context.Context, ctl *session.Controller, assets *Assets, logger zerolog.Logger) *Game {
	if assets == nil {
		assets = &Assets{}
	}
	g := &Game{ctx: ctx, ctl: ctl, assets: assets, log: logger, phase: ctl.Phase()}
	rng := rand.New(rand.NewPCG(1, 2))
	g.stars = make([]star, starCount)
	for i := range g.stars {
		g.stars[i] = star{
			x:          float32(rng.IntN(layout.ScreenW)),
			y:          float32(rng.IntN(layout.ScreenH)),
			r:          float32(1 + rng.IntN(2)),
			brightness: uint8(150 + rng.IntN(106)),
		}
	}
	assets.PlayMusic()
	return g
}

func (g *Game) Layout(_, _ int) (int, int) {
	return layout.ScreenW, layout.ScreenH
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctl.Exit()
	}
	if g.ctl.Phase() == session.PhaseExited {
		return ebiten.Termination
	}
	if err := g.handleInput(); err != nil {
		return err
	}
	g.ctl.Update(g.ctx)
	g.onPhaseChange()
	return nil
}

func (g *Game) handleInput() error {
	x, y := ebiten.CursorPosition()
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	switch g.ctl.Phase() {
	case session.PhaseStart:
		if enter || (click && layout.LaunchButton.Contains(x, y)) {
			if err := g.ctl.Start(); err != nil {
				return fmt.Errorf("start session: %w", err)
			}
		}

	case session.PhaseMission:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.ctl.ClearSelection()
		}
		if click {
			gr := g.ctl.Round().Grid()
			if p, ok := layout.NewBoard(gr.Rows(), gr.Cols()).CellAt(x, y); ok {
				g.ctl.Toggle(p)
			}
		}

	case session.PhaseSummary:
		if enter || (click && layout.ContinueButton.Contains(x, y)) {
			if err := g.ctl.Continue(); err != nil {
				return fmt.Errorf("continue session: %w", err)
			}
		}

	case session.PhaseReport:
		switch {
		case click && layout.NewGameButton.Contains(x, y):
			if err := g.ctl.Restart(g.ctx); err != nil {
				return fmt.Errorf("restart session: %w", err)
			}
		case click && layout.ExitButton.Contains(x, y):
			g.ctl.Exit()
		}
	}
	return nil
}

// onPhaseChange drives the sound cues off phase transitions.
func (g *Game) onPhaseChange() {
	next := g.ctl.Phase()
	if next == g.phase {
		return
	}
	prev := g.phase
	g.phase = next
	g.log.Debug().Stringer("from", prev).Stringer("to", next).Msg("phase changed")

	switch {
	case next == session.PhaseReport:
		g.assets.GameOver()
	case prev == session.PhaseReport && next == session.PhaseStart:
		g.assets.PlayMusic()
	}
}

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/robalobadob/numbermatch/internal/game"
	"github.com/robalobadob/numbermatch/internal/layout"
	"github.com/robalobadob/numbermatch/internal/pairs"
	"github.com/robalobadob/numbermatch/internal/session"
	"github.com/robalobadob/numbermatch/internal/theme"
)

var face font.Face = basicfont.Face7x13

// text scales over the 7x13 bitmap face
const (
	small  = 2
	header = 2.5
	title  = 4
	digit  = 3
)

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.ctl.Phase() {
	case session.PhaseStart:
		g.drawBackground(screen, g.assets.StartBG)
		g.drawStart(screen)
	case session.PhaseMission:
		g.drawBackground(screen, nil)
		g.drawMission(screen)
	case session.PhaseSummary:
		g.drawBackground(screen, nil)
		g.drawSummary(screen)
	case session.PhaseReport:
		g.drawBackground(screen, g.assets.GameOverBG)
		g.drawReport(screen)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image, img *ebiten.Image) {
	if img != nil {
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(layout.ScreenW)/float64(b.Dx()), float64(layout.ScreenH)/float64(b.Dy()))
		screen.DrawImage(img, op)
		return
	}
	screen.Fill(theme.DarkSpace)
	for _, s := range g.stars {
		vector.DrawFilledCircle(screen, s.x, s.y, s.r, color.RGBA{s.brightness, s.brightness, s.brightness, 255}, false)
	}
	vector.DrawFilledCircle(screen, layout.ScreenW-100, 100, 50, theme.PlanetNear, true)
	vector.DrawFilledCircle(screen, 100, layout.ScreenH-100, 30, theme.PlanetFar, true)
}

func (g *Game) drawStart(screen *ebiten.Image) {
	cx := layout.ScreenW / 2
	drawPanel(screen, image.Rect(cx-350, 50, cx+350, 200), theme.StarBlue, 3)
	drawTextCentered(screen, "SPACE NUMBER", cx, 80, title, theme.StarWhite)
	drawTextCentered(screen, "MATCH MISSION", cx, 145, title, theme.NebulaTeal)

	drawPanel(screen, image.Rect(cx-300, 220, cx+300, 440), theme.GridBlue, 2)
	lines := []string{
		fmt.Sprintf("MISSION 1: Find %d matching number pairs", game.PairsPerLevel),
		fmt.Sprintf("MISSION 2: Find %d pairs that sum to %d", game.PairsPerLevel, pairs.DefaultSumTarget),
		"Click two numbers to select them",
		"Press SPACE to clear selection",
		"Complete both missions before time runs out",
	}
	for i, ln := range lines {
		drawTextCentered(screen, ln, cx, 245+i*38, small, theme.StarWhite)
	}

	drawPanel(screen, image.Rect(cx-200, 460, cx+200, 510), theme.Gold, 2)
	drawTextCentered(screen, fmt.Sprintf("High Score: %d/%d", g.ctl.Best(), session.MaxScore), cx, 472, header, theme.Gold)

	g.drawButton(screen, layout.LaunchButton, theme.ShipOrange, theme.NebulaTeal)
}

func (g *Game) drawMission(screen *ebiten.Image) {
	r := g.ctl.Round()
	now := g.ctl.Now()
	snap := r.Snapshot(now)
	board := layout.NewBoard(snap.Rows, snap.Cols)

	for _, c := range snap.Cells {
		if c.Visible {
			drawCell(screen, board, c)
		}
	}
	drawHUD(screen, snap)

	if snap.Toast != nil {
		drawToast(screen, snap.Toast)
	}
}

func drawCell(screen *ebiten.Image, board layout.Board, c game.CellView) {
	rect := board.CellRect(c.Pos)
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	size := float32(board.CellSize)

	vector.DrawFilledRect(screen, x+2, y+2, size-4, size-4, theme.ValueColor(c.Value), false)
	border, width := color.Color(theme.StarWhite), float32(1)
	if c.Highlighted {
		border, width = theme.Gold, 3
	}
	vector.StrokeRect(screen, x, y, size, size, width, border, false)

	label := strconv.Itoa(c.Value)
	scale := float64(digit) * float64(board.CellSize) / layout.MaxCellSize
	drawTextCentered(screen, label, rect.Min.X+board.CellSize/2, rect.Min.Y+board.CellSize/2-int(6.5*scale), scale, theme.StarWhite)
}

func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	w := layout.ScreenW
	vector.DrawFilledRect(screen, 0, 0, float32(w), layout.PanelHeight, theme.DeepSpace, false)
	vector.StrokeLine(screen, 0, layout.PanelHeight, float32(w), layout.PanelHeight, 2, theme.StarBlue, false)

	drawText(screen, fmt.Sprintf("MISSION %d", snap.Mission), 50, 25, header, theme.StarWhite)
	drawText(screen, fmt.Sprintf("SCORE: %d/%d", snap.Score, snap.MaxScore), 50, 70, small, theme.Gold)
	drawText(screen, fmt.Sprintf("PAIRS: %d/%d", snap.PairsFound, snap.PairsTarget), 50, 98, small, theme.AlienGreen)

	drawTextCentered(screen, snap.Objective, w/2, 70, small, theme.NebulaTeal)

	secs := int(snap.Remaining.Seconds())
	drawText(screen, fmt.Sprintf("TIME: %ds", secs), w-200, 25, header, theme.StarWhite)

	const barW, barH = 200, 8
	barX, barY := float32(w-barW-50), float32(90)
	frac := 0.0
	if snap.TimeLimit > 0 {
		frac = snap.Remaining.Seconds() / snap.TimeLimit.Seconds()
	}
	vector.DrawFilledRect(screen, barX, barY, barW, barH, theme.BarTrack, false)
	vector.DrawFilledRect(screen, barX, barY, float32(barW*frac), barH, theme.TimerColor(frac), false)

	if len(snap.Selected) == 1 {
		drawTextCentered(screen, fmt.Sprintf("Selected: %d", snap.Selected[0]), w/2, 112, small, theme.NebulaTeal)
	}
}

func drawToast(screen *ebiten.Image, t *game.Toast) {
	cx, cy := layout.ScreenW/2, layout.ScreenH/2
	tw := int(float64(text.BoundString(face, t.Text).Dx()) * header)
	pad := 16
	vector.DrawFilledRect(screen, float32(cx-tw/2-pad), float32(cy-30), float32(tw+2*pad), 60, color.RGBA{5, 5, 20, 220}, false)
	drawTextCentered(screen, t.Text, cx, cy-16, header, theme.ToneColor(t.Tone))
}

func (g *Game) drawSummary(screen *ebiten.Image) {
	out, ok := g.ctl.LastOutcome()
	if !ok {
		return
	}
	cx := layout.ScreenW / 2
	drawPanel(screen, image.Rect(cx-250, 150, cx+250, 500), theme.StarBlue, 3)
	drawTextCentered(screen, fmt.Sprintf("MISSION %d COMPLETE", out.Mission), cx, 190, title*0.8, theme.Gold)
	drawTextCentered(screen, reasonText(out.Reason), cx, 245, small, theme.AsteroidGray)
	drawTextCentered(screen, fmt.Sprintf("Points: %d/%d", out.Score, game.MaxRoundScore), cx, 280, header, theme.StarWhite)
	drawTextCentered(screen, fmt.Sprintf("Time: %ds", int(out.Elapsed.Seconds())), cx, 330, header, theme.NebulaTeal)

	g.drawButton(screen, layout.ContinueButton, theme.ShipOrange, theme.NebulaTeal)
}

func (g *Game) drawReport(screen *ebiten.Image) {
	t := g.ctl.Totals()
	cx := layout.ScreenW / 2
	drawPanel(screen, image.Rect(cx-300, 100, cx+300, 500), theme.StarBlue, 3)
	drawTextCentered(screen, "MISSION REPORT", cx, 140, title, theme.Gold)
	drawTextCentered(screen, fmt.Sprintf("Total Points: %d/%d", t.Score, session.MaxScore), cx, 215, header, theme.StarWhite)
	drawTextCentered(screen, fmt.Sprintf("Mission Duration: %ds", int(t.Elapsed.Seconds())), cx, 260, header, theme.NebulaTeal)

	best := fmt.Sprintf("High Score: %d", g.ctl.Best())
	if t.NewBest {
		best += "  NEW!"
	}
	drawTextCentered(screen, best, cx, 305, header, theme.AlienGreen)
	if g.ctl.SaveErr() != nil {
		drawTextCentered(screen, "High score could not be saved", cx, 350, small, theme.WarningRed)
	}

	g.drawButton(screen, layout.NewGameButton, theme.ShipOrange, theme.NebulaTeal)
	g.drawButton(screen, layout.ExitButton, theme.WarningRed, theme.ShipOrange)
}

func reasonText(r game.EndReason) string {
	switch r {
	case game.ReasonTimeExpired:
		return "TIME EXPIRED"
	case game.ReasonAllPairsFound:
		return "ALL PAIRS FOUND"
	case game.ReasonNoMovesLeft:
		return "NO MORE VALID PAIRS"
	default:
		return ""
	}
}

func (g *Game) drawButton(screen *ebiten.Image, b layout.Button, base, hover color.RGBA) {
	fill := base
	if b.Contains(ebiten.CursorPosition()) {
		fill = hover
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, theme.StarWhite, false)
	drawTextCentered(screen, b.Label, r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2-13, small, theme.StarWhite)
}

func drawPanel(screen *ebiten.Image, r image.Rectangle, border color.Color, width float32) {
	x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, theme.DeepSpace, false)
	vector.StrokeRect(screen, x, y, w, h, width, border, false)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, x, y int, scale float64, clr color.Color) {
	ascent := float64(face.Metrics().Ascent.Ceil())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y)+ascent*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, op)
}

// drawTextCentered centers s horizontally on cx with its top at y.
func drawTextCentered(screen *ebiten.Image, s string, cx, y int, scale float64, clr color.Color) {
	tw := float64(text.BoundString(face, s).Dx()) * scale
	drawText(screen, s, cx-int(tw/2), y, scale, clr)
}

// Package layout maps screen pixels to board cells and buttons.
//
// It has no graphics dependency so the input mapping can be tested without
// a window.
package layout

import (
	"image"

	"github.com/robalobadob/numbermatch/internal/grid"
)

const (
	ScreenW = 900
	ScreenH = 700

	MaxCellSize = 80
	GridTop     = 180
	PanelHeight = 140

	bottomMargin = 20
	sideMargin   = 20
)

// Board positions an R×C grid horizontally centered below the info panel.
type Board struct {
	Rows, Cols int
	CellSize   int
	Origin     image.Point
}

// NewBoard sizes cells to fit the screen, never larger than MaxCellSize.
func NewBoard(rows, cols int) Board {
	size := MaxCellSize
	if rows > 0 && cols > 0 {
		size = min(size, (ScreenW-2*sideMargin)/cols, (ScreenH-GridTop-bottomMargin)/rows)
	}
	return Board{
		Rows:     rows,
		Cols:     cols,
		CellSize: size,
		Origin:   image.Pt((ScreenW-cols*size)/2, GridTop),
	}
}

// CellRect is the on-screen square of p.
func (b Board) CellRect(p grid.Pos) image.Rectangle {
	tl := b.Origin.Add(image.Pt(p.Col*b.CellSize, p.Row*b.CellSize))
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(b.CellSize, b.CellSize))}
}

// CellAt maps a pointer position to a cell.
func (b Board) CellAt(x, y int) (grid.Pos, bool) {
	dx, dy := x-b.Origin.X, y-b.Origin.Y
	if dx < 0 || dy < 0 || b.CellSize <= 0 {
		return grid.Pos{}, false
	}
	p := grid.Pos{Row: dy / b.CellSize, Col: dx / b.CellSize}
	if p.Row >= b.Rows || p.Col >= b.Cols {
		return grid.Pos{}, false
	}
	return p, true
}

// Button is a clickable labelled rectangle.
type Button struct {
	Label string
	Rect  image.Rectangle
}

func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func button(label string, x, y, w, h int) Button {
	return Button{Label: label, Rect: image.Rect(x, y, x+w, y+h)}
}

// Screen buttons.
var (
	LaunchButton   = button("LAUNCH MISSION", ScreenW/2-120, 530, 240, 60)
	ContinueButton = button("CONTINUE", ScreenW/2-120, 420, 240, 50)
	NewGameButton  = button("NEW GAME", ScreenW/2-160, 400, 150, 50)
	ExitButton     = button("EXIT", ScreenW/2+10, 400, 150, 50)
)

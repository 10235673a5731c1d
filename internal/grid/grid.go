// internal/grid/grid.go
//
// Grid model for the number-match board.
// Responsibilities:
//   - Generate solvable layouts: N guaranteed equal-value pairs plus random filler.
//   - Track per-cell visibility (a cell is hidden once, when consumed by a pair).
//   - Expose row-major enumeration of visible cells and the pairs-found metric.
//
// Cells are stored row-major in a flat slice; Pos{Row, Col} is the value key
// used everywhere else (selection, pair lists, rendering).
package grid

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

const (
	DefaultRows     = 5
	DefaultCols     = 5
	DefaultPairs    = 10
	DefaultMinValue = 1
	DefaultMaxValue = 9
)

// Pos identifies a cell by zero-based row and column.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Less orders positions row-major.
func (p Pos) Less(o Pos) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Cell is one numbered square. Value never changes after creation.
type Cell struct {
	Pos     Pos
	Value   int
	Visible bool
}

// Options controls generation. Zero fields take the package defaults.
type Options struct {
	Rows     int
	Cols     int
	Pairs    int
	MinValue int
	MaxValue int
}

// DefaultOptions returns the fixed 5x5 / 10 pair / values 1..9 layout.
func DefaultOptions() Options {
	return Options{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		Pairs:    DefaultPairs,
		MinValue: DefaultMinValue,
		MaxValue: DefaultMaxValue,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Rows == 0 {
		o.Rows = d.Rows
	}
	if o.Cols == 0 {
		o.Cols = d.Cols
	}
	if o.Pairs == 0 {
		o.Pairs = d.Pairs
	}
	if o.MinValue == 0 && o.MaxValue == 0 {
		o.MinValue, o.MaxValue = d.MinValue, d.MaxValue
	}
	return o
}

// ConfigError reports dimensions that cannot host the required pairs.
type ConfigError struct {
	Rows, Cols, Pairs int
	Reason            string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grid: invalid config %dx%d with %d pairs: %s", e.Rows, e.Cols, e.Pairs, e.Reason)
}

// Validate checks that opts describe a grid that can be filled.
func Validate(opts Options) error {
	o := opts.withDefaults()
	switch {
	case o.Rows < 1 || o.Cols < 1:
		return &ConfigError{Rows: o.Rows, Cols: o.Cols, Pairs: o.Pairs, Reason: "dimensions must be positive"}
	case o.Pairs < 0:
		return &ConfigError{Rows: o.Rows, Cols: o.Cols, Pairs: o.Pairs, Reason: "pair count must not be negative"}
	case o.Rows*o.Cols < 2*o.Pairs:
		return &ConfigError{Rows: o.Rows, Cols: o.Cols, Pairs: o.Pairs,
			Reason: fmt.Sprintf("%d cells cannot hold %d pair cells", o.Rows*o.Cols, 2*o.Pairs)}
	case o.MinValue > o.MaxValue:
		return &ConfigError{Rows: o.Rows, Cols: o.Cols, Pairs: o.Pairs,
			Reason: fmt.Sprintf("value range [%d,%d] is empty", o.MinValue, o.MaxValue)}
	}
	return nil
}

// Grid is a fixed R×C board.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// Generate builds Pairs duplicated values plus Rows*Cols-2*Pairs random filler,
// shuffles the multiset uniformly and lays it out row-major, all visible.
func Generate(rng *rand.Rand, opts Options) (*Grid, error) {
	o := opts.withDefaults()
	if err := Validate(o); err != nil {
		return nil, err
	}

	n := o.Rows * o.Cols
	values := make([]int, 0, n)
	for i := 0; i < o.Pairs; i++ {
		v := randValue(rng, o.MinValue, o.MaxValue)
		values = append(values, v, v)
	}
	for len(values) < n {
		values = append(values, randValue(rng, o.MinValue, o.MaxValue))
	}
	rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	return build(o.Rows, o.Cols, values), nil
}

// FromValues lays out explicit values row-major. Used for fixed layouts and tests.
func FromValues(rows, cols int, values []int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, &ConfigError{Rows: rows, Cols: cols, Reason: "dimensions must be positive"}
	}
	if len(values) != rows*cols {
		return nil, &ConfigError{Rows: rows, Cols: cols,
			Reason: fmt.Sprintf("got %d values for %d cells", len(values), rows*cols)}
	}
	return build(rows, cols, values), nil
}

func build(rows, cols int, values []int) *Grid {
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i, v := range values {
		g.cells[i] = Cell{Pos: Pos{Row: i / cols, Col: i % cols}, Value: v, Visible: true}
	}
	return g
}

func randValue(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Len is the total number of cells, visible or not.
func (g *Grid) Len() int { return len(g.cells) }

// In reports whether p lies on the board.
func (g *Grid) In(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p.
func (g *Grid) At(p Pos) (Cell, bool) {
	if !g.In(p) {
		return Cell{}, false
	}
	return g.cells[p.Row*g.cols+p.Col], true
}

// Hide marks the cell at p consumed. Reports whether anything changed;
// hiding an already hidden cell is a no-op.
func (g *Grid) Hide(p Pos) bool {
	if !g.In(p) {
		return false
	}
	c := &g.cells[p.Row*g.cols+p.Col]
	if !c.Visible {
		return false
	}
	c.Visible = false
	return true
}

// VisibleCells yields visible cells in row-major order. The sequence is
// restartable: each range starts again from (0,0).
func (g *Grid) VisibleCells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range g.cells {
			if !c.Visible {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Visible collects VisibleCells into a slice snapshot.
func (g *Grid) Visible() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c := range g.VisibleCells() {
		out = append(out, c)
	}
	return out
}

// Cells returns a copy of every cell, hidden ones included.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) VisibleCount() int {
	n := 0
	for range g.VisibleCells() {
		n++
	}
	return n
}

// PairsFound is the progress metric: cleared cells / 2.
func (g *Grid) PairsFound() int {
	return PairsFound(g.Len(), g.VisibleCount())
}

// PairsFound computes (totalCells - visible) / 2 with integer division.
func PairsFound(totalCells, visible int) int {
	return (totalCells - visible) / 2
}

package pairs

import (
	"slices"

	"github.com/robalobadob/numbermatch/internal/grid"
)

// Pair is an unordered pair of cells, stored with A before B row-major.
type Pair struct {
	A grid.Pos `json:"a"`
	B grid.Pos `json:"b"`
}

// Find lists every pair of distinct visible cells matching r.
// Order: ascending by A's row-major index, then by B's; B always follows A.
func Find(cells []grid.Cell, r Rule) []Pair {
	vis := visibleSorted(cells)
	var out []Pair
	for i := 0; i < len(vis); i++ {
		for j := i + 1; j < len(vis); j++ {
			if r.Match(vis[i].Value, vis[j].Value) {
				out = append(out, Pair{A: vis[i].Pos, B: vis[j].Pos})
			}
		}
	}
	return out
}

// FindEqualPairs is Find with the Equal rule.
func FindEqualPairs(cells []grid.Cell) []Pair { return Find(cells, Equal()) }

// FindSumPairs is Find with SumTo(target).
func FindSumPairs(cells []grid.Cell, target int) []Pair { return Find(cells, SumTo(target)) }

// HasAnyPair stops at the first match instead of building the full list.
func HasAnyPair(cells []grid.Cell, r Rule) bool {
	vis := visibleSorted(cells)
	for i := 0; i < len(vis); i++ {
		for j := i + 1; j < len(vis); j++ {
			if r.Match(vis[i].Value, vis[j].Value) {
				return true
			}
		}
	}
	return false
}

// visibleSorted drops hidden cells and fixes the global row-major ordering,
// whatever order the caller's snapshot came in.
func visibleSorted(cells []grid.Cell) []grid.Cell {
	vis := make([]grid.Cell, 0, len(cells))
	for _, c := range cells {
		if c.Visible {
			vis = append(vis, c)
		}
	}
	slices.SortFunc(vis, func(a, b grid.Cell) int {
		switch {
		case a.Pos.Less(b.Pos):
			return -1
		case b.Pos.Less(a.Pos):
			return 1
		}
		return 0
	})
	return vis
}

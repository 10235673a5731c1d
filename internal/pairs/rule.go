// Package pairs enumerates matchable cell pairs under a mission's rule.
//
// Everything here is pure and stateless: callers pass a snapshot of cells and
// get positions back. Search is a plain O(n²) sweep, which is fine for boards
// of at most a few dozen visible cells.
package pairs

import "fmt"

// Kind tags the variant held by a Rule.
type Kind int

const (
	KindEqual Kind = iota
	KindSumTo
)

// DefaultSumTarget is the mission 2 target.
const DefaultSumTarget = 7

// Rule is the matching rule of a mission: Equal, or SumTo(target).
type Rule struct {
	kind   Kind
	target int
}

// Equal matches two cells holding the same value.
func Equal() Rule { return Rule{kind: KindEqual} }

// SumTo matches two cells whose values add up to target.
func SumTo(target int) Rule { return Rule{kind: KindSumTo, target: target} }

func (r Rule) Kind() Kind  { return r.kind }
func (r Rule) Target() int { return r.target }

// Match reports whether values a and b form a pair under r.
func (r Rule) Match(a, b int) bool {
	switch r.kind {
	case KindEqual:
		return a == b
	case KindSumTo:
		return a+b == r.target
	default:
		return false
	}
}

// Objective is the player-facing description of the rule.
func (r Rule) Objective() string {
	switch r.kind {
	case KindSumTo:
		return fmt.Sprintf("FIND PAIRS THAT SUM TO %d", r.target)
	default:
		return "FIND MATCHING NUMBER PAIRS"
	}
}

func (r Rule) String() string {
	switch r.kind {
	case KindEqual:
		return "equal"
	case KindSumTo:
		return fmt.Sprintf("sum-to-%d", r.target)
	default:
		return "unknown"
	}
}

package grid

import (
	"fmt"
	"strings"
)

// Path is an ordered route through a grid; Path[0] is the start and
// Path[len-1] the end. Depending on the solver it may or may not repeat points.
type Path []Point

// Len returns the number of points in p.
func (p Path) Len() int { return len(p) }

// Start returns the first point. ok is false for an empty path.
func (p Path) Start() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0], true
}

// End returns the last point. ok is false for an empty path.
func (p Path) End() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

// Contains reports whether q occurs anywhere in p.
func (p Path) Contains(q Point) bool {
	for _, x := range p {
		if x == q {
			return true
		}
	}
	return false
}

// HasDuplicates reports whether any point occurs more than once.
func (p Path) HasDuplicates() bool {
	seen := make(map[Point]struct{}, len(p))
	for _, x := range p {
		if _, dup := seen[x]; dup {
			return true
		}
		seen[x] = struct{}{}
	}
	return false
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = x.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ValidateSteps checks that every consecutive pair in p is a single
// orthogonal move that g allows. Complexity: O(len(p)).
func ValidateSteps(g Grid, p Path) error {
	for i, x := range p {
		if !Contains(g, x) {
			return fmt.Errorf("%w: %s at index %d", ErrOutOfBounds, x, i)
		}
		if i == 0 {
			continue
		}
		prev := p[i-1]
		d, ok := DirectionBetween(prev, x)
		if !ok {
			return fmt.Errorf("%w: %s -> %s at index %d", ErrBadStep, prev, x, i)
		}
		if !g.CanGo(d, prev.Row, prev.Col) {
			return fmt.Errorf("%w: %s -> %s at index %d", ErrBlockedStep, prev, x, i)
		}
	}
	return nil
}

// PathCost sums g.Cost over every step of p, recomputed from the grid alone.
// It returns an error under the same conditions as ValidateSteps.
func PathCost(g Grid, p Path) (int, error) {
	if err := ValidateSteps(g, p); err != nil {
		return 0, err
	}
	total := 0
	for i := 1; i < len(p); i++ {
		d, _ := DirectionBetween(p[i-1], p[i])
		total += g.Cost(p[i-1].Row, p[i-1].Col, d)
	}
	return total, nil
}

package solve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// layout maps grid points to dense row-major indices so per-cell state can
// live in slices instead of maps.
type layout struct {
	rows, cols int
}

func layoutOf(g grid.Grid) layout {
	return layout{rows: g.Rows(), cols: g.Columns()}
}

func (l layout) size() int { return l.rows * l.cols }

func (l layout) index(p grid.Point) int { return p.Row*l.cols + p.Col }

func (l layout) point(idx int) grid.Point {
	return grid.Point{Row: idx / l.cols, Col: idx % l.cols}
}

func (l layout) contains(p grid.Point) bool {
	return p.Row >= 0 && p.Row < l.rows && p.Col >= 0 && p.Col < l.cols
}

// neighbour returns the index of the cell reached by leaving idx in
// direction d, or -1 when the grid reports the wall closed or the step
// would leave the grid.
func (l layout) neighbour(g grid.Grid, idx int, d grid.Direction) int {
	p := l.point(idx)
	if !g.CanGo(d, p.Row, p.Col) {
		return -1
	}
	q := p.Step(d)
	if !l.contains(q) {
		return -1
	}
	return l.index(q)
}

// Parent markers. Every other value in a parentMap is a cell index.
const (
	unclaimed = -2
	rootCell  = -1
)

// parentMap records, for each discovered cell, the cell it was reached from.
type parentMap []int

func newParentMap(n, root int) parentMap {
	pm := make(parentMap, n)
	for i := range pm {
		pm[i] = unclaimed
	}
	pm[root] = rootCell
	return pm
}

// claim registers parent as the parent of child. It reports false,
// leaving the map untouched, if child already has a parent.
func (pm parentMap) claim(child, parent int) bool {
	if pm[child] != unclaimed {
		return false
	}
	pm[child] = parent
	return true
}

// path walks parents from end back to the root and returns the route in
// start-to-end order.
func (pm parentMap) path(l layout, end int) grid.Path {
	n := 0
	for cur := end; cur != rootCell; cur = pm[cur] {
		n++
	}
	out := make(grid.Path, n)
	for cur := end; cur != rootCell; cur = pm[cur] {
		n--
		out[n] = l.point(cur)
	}
	return out
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// checkEndpoints validates g and both endpoints.
func checkEndpoints(g grid.Grid, start, end grid.Point) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Rows() <= 0 || g.Columns() <= 0 {
		return fmt.Errorf("%w: %dx%d", grid.ErrEmptyGrid, g.Rows(), g.Columns())
	}
	for _, p := range [2]grid.Point{start, end} {
		if !grid.Contains(g, p) {
			return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, p, g.Rows(), g.Columns())
		}
	}
	return nil
}

// cancelled returns ctx.Err() once ctx is done, nil otherwise.
func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

package solve

import (
	"github.com/katalvlaran/labyrinth/grid"
)

// BFS finds a minimum-step path from (0,0) to (rows-1, cols-1).
// See BFSBetween.
func BFS(g grid.Grid, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return BFSBetween(g, grid.Point{}, grid.BottomRight(g), opts...)
}

// BFSBetween expands level-synchronous frontiers from start, exploring
// Up, Left, Down, Right from each cell. A neighbour joins the next level
// the first time it is discovered; the search stops after the level in
// which end is discovered and rebuilds the path through the parent map.
// The result is duplicate-free and has the fewest possible steps.
//
// Returns a SolveError wrapping ErrUnreachable when the frontier empties,
// or ErrRunaway once the level reaches rows*cols.
func BFSBetween(g grid.Grid, start, end grid.Point, opts ...Option) (grid.Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkEndpoints(g, start, end); err != nil {
		return nil, err
	}

	l := layoutOf(g)
	from, to := l.index(start), l.index(end)
	parents := newParentMap(l.size(), from)
	current := []int{from}
	found := from == to

	for level := 0; !found; level++ {
		if err = cancelled(o.Ctx); err != nil {
			return nil, err
		}
		if len(current) == 0 {
			return nil, unreachable("bfs frontier exhausted", level)
		}
		if level >= l.size() {
			return nil, runaway("bfs exceeded maximum number of tree levels", level)
		}

		next := make([]int, 0, len(current)*2)
		for _, idx := range current {
			for _, d := range grid.Directions {
				nb := l.neighbour(g, idx, d)
				if nb < 0 || nb == parents[idx] || !parents.claim(nb, idx) {
					continue
				}
				next = append(next, nb)
				if nb == to {
					found = true
				}
			}
		}
		o.Logger.Debug("bfs level", "level", level, "frontier", len(next))
		current = next
	}

	return parents.path(l, to), nil
}

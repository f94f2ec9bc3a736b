package solve

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/labyrinth/grid"
)

// exitInfo is the Dijkstra bookkeeping for one discovered cell.
// exits[d] is the neighbour index through d, or -1 once the exit is
// unavailable or consumed; exitCost[d] is the cumulative cost through it.
type exitInfo struct {
	ccost    int
	exits    [4]int
	exitCost [4]int
	known    bool
}

func (e *exitInfo) open() bool {
	for _, nb := range e.exits {
		if nb >= 0 {
			return true
		}
	}
	return false
}

// dijkstraWalker encapsulates mutable frontier state.
type dijkstraWalker struct {
	g       grid.Grid
	l       layout
	opts    Options
	nodes   []exitInfo
	parents parentMap
	from    int
	to      int
}

// Dijkstra finds a least-cost path from (0,0) to (rows-1, cols-1).
// See DijkstraBetween.
func Dijkstra(g grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	p, cost, err := DijkstraBetween(g, grid.Point{}, grid.BottomRight(g), opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Path: p, Cost: cost}, nil
}

// DijkstraBetween finds a least-cost path from start to end and its total
// cost, using a two-pass bucket expansion per frontier level:
//
//  1. Every new frontier cell gets its cumulative cost from its parent and
//     the cost of each non-parent exit; the frontier minimum is tracked.
//  2. Exits costing exactly that minimum are promoted. The first claim on a
//     neighbour fixes its parent; a later claim finds it taken, pushes the
//     neighbour into the next frontier and consumes the exit. Cells with
//     unconsumed exits stay in the frontier.
//
// The next frontier is sorted and deduplicated. The search stops once end
// sits in a frontier; its cumulative cost is returned with the path.
//
// Edge costs must be non-negative. Returns a SolveError wrapping
// ErrNegativeCost, ErrUnreachable when the frontier empties, or ErrRunaway
// beyond 5*rows*cols levels.
func DijkstraBetween(g grid.Grid, start, end grid.Point, opts ...Option) (grid.Path, int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	if err = checkEndpoints(g, start, end); err != nil {
		return nil, 0, err
	}

	l := layoutOf(g)
	w := &dijkstraWalker{
		g:     g,
		l:     l,
		opts:  o,
		nodes: make([]exitInfo, l.size()),
		from:  l.index(start),
		to:    l.index(end),
	}
	w.parents = newParentMap(l.size(), w.from)

	if err = w.loop(); err != nil {
		return nil, 0, err
	}
	p := w.parents.path(l, w.to)
	cost := w.nodes[w.to].ccost
	o.Logger.Debug("dijkstra done", "start", start, "end", end, "length", len(p), "cost", cost)
	return p, cost, nil
}

// loop runs frontier levels until end is in the frontier.
func (w *dijkstraWalker) loop() error {
	limit := 5 * w.l.size()
	current := []int{w.from}

	for level := 0; ; level++ {
		if err := cancelled(w.opts.Ctx); err != nil {
			return err
		}
		if len(current) == 0 {
			return unreachable("dijkstra frontier exhausted", level)
		}
		if level > limit {
			return runaway("dijkstra exceeded maximum number of frontier levels", level)
		}

		lowest, err := w.discover(current, level)
		if err != nil {
			return err
		}
		next, found := w.expand(current, lowest)
		if found {
			return nil
		}

		slices.Sort(next)
		current = slices.Compact(next)
		w.opts.Logger.Debug("dijkstra level", "level", level, "lowest", lowest, "frontier", len(current))
	}
}

// discover fills in every new frontier cell and returns the lowest exit
// cost offered by the frontier, or math.MaxInt if it offers none.
func (w *dijkstraWalker) discover(frontier []int, level int) (int, error) {
	lowest := math.MaxInt
	for _, idx := range frontier {
		n := &w.nodes[idx]
		if !n.known {
			if err := w.fill(idx, level); err != nil {
				return 0, err
			}
		}
		for d, nb := range n.exits {
			if nb >= 0 && n.exitCost[d] < lowest {
				lowest = n.exitCost[d]
			}
		}
	}
	return lowest, nil
}

// fill computes the cumulative cost of idx and the cost through each of
// its non-parent exits.
func (w *dijkstraWalker) fill(idx, level int) error {
	n := &w.nodes[idx]
	n.known = true

	parent := w.parents[idx]
	if parent != rootCell {
		d, _ := grid.DirectionBetween(w.l.point(parent), w.l.point(idx))
		c, err := w.cost(parent, d, level)
		if err != nil {
			return err
		}
		n.ccost = w.nodes[parent].ccost + c
	}

	for _, d := range grid.Directions {
		nb := w.l.neighbour(w.g, idx, d)
		if nb < 0 || nb == parent {
			n.exits[d] = -1
			continue
		}
		c, err := w.cost(idx, d, level)
		if err != nil {
			return err
		}
		n.exits[d] = nb
		n.exitCost[d] = n.ccost + c
	}
	return nil
}

func (w *dijkstraWalker) cost(idx int, d grid.Direction, level int) (int, error) {
	p := w.l.point(idx)
	c := w.g.Cost(p.Row, p.Col, d)
	if c < 0 {
		return 0, &SolveError{
			Msg:   fmt.Sprintf("cost %d leaving %s %s", c, p, d),
			Level: level,
			Err:   ErrNegativeCost,
		}
	}
	return c, nil
}

// expand promotes every exit costing lowest and returns the next frontier.
// found reports whether end was part of the current frontier.
func (w *dijkstraWalker) expand(frontier []int, lowest int) (next []int, found bool) {
	next = make([]int, 0, len(frontier)*2)
	for _, idx := range frontier {
		n := &w.nodes[idx]
		for d, nb := range n.exits {
			if nb < 0 || n.exitCost[d] != lowest {
				continue
			}
			if !w.parents.claim(nb, idx) {
				next = append(next, nb)
				n.exits[d] = -1
			}
		}
		if n.open() {
			next = append(next, idx)
		}
		if idx == w.to {
			found = true
		}
	}
	return next, found
}

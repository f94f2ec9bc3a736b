package solve

import (
	"github.com/katalvlaran/labyrinth/grid"
)

// Exit states tracked per cell by DFS.
const (
	exitNone      int8 = 0  // wall
	exitUntried   int8 = 1  // open and not yet explored
	exitExhausted int8 = -1 // came from, already known, or backtracked out of
)

// nodeInfo is the DFS bookkeeping for one visited cell.
type nodeInfo struct {
	parent int
	exits  [4]int8
	seen   bool
}

// dfsWalker encapsulates mutable DFS state.
type dfsWalker struct {
	g     grid.Grid
	l     layout
	opts  Options
	nodes []nodeInfo
	path  grid.Path
	start int
	end   int
	cur   int
	limit int
}

// DFS runs a backtracking depth-first search from (0,0) to
// (rows-1, cols-1). See DFSBetween.
func DFS(g grid.Grid, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return DFSBetween(g, grid.Point{}, grid.BottomRight(g), opts...)
}

// DFSBetween runs a backtracking depth-first search from start to end.
// Exits are tried in Options.DFSOrder priority (Down, Left, Up, Right by
// default). Moving forward appends a cell to the path; backtracking pops
// it and marks the exit that led to it exhausted on the parent. The search
// stops as soon as end is reached, so the result holds no duplicates.
//
// Returns a SolveError wrapping ErrUnreachable if the search backtracks
// past start, or ErrRunaway after more than 2*rows*cols iterations.
func DFSBetween(g grid.Grid, start, end grid.Point, opts ...Option) (grid.Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkEndpoints(g, start, end); err != nil {
		return nil, err
	}

	l := layoutOf(g)
	w := &dfsWalker{
		g:     g,
		l:     l,
		opts:  o,
		nodes: make([]nodeInfo, l.size()),
		start: l.index(start),
		end:   l.index(end),
		limit: 2 * l.size(),
	}
	w.enter(w.start, rootCell)
	w.path = grid.Path{start}

	if err = w.loop(); err != nil {
		return nil, err
	}
	o.Logger.Debug("dfs done", "start", start, "end", end, "length", len(w.path))
	return w.path, nil
}

// loop advances or backtracks once per iteration until end is current.
func (w *dfsWalker) loop() error {
	for iter := 0; w.cur != w.end; iter++ {
		if iter > w.limit {
			return runaway("dfs exceeded iteration bound", iter)
		}
		if err := cancelled(w.opts.Ctx); err != nil {
			return err
		}

		if d, ok := w.pick(w.cur); ok {
			nb := w.l.neighbour(w.g, w.cur, d)
			w.enter(nb, w.cur)
			w.path = append(w.path, w.l.point(nb))
			continue
		}
		if err := w.backtrack(len(w.path)); err != nil {
			return err
		}
	}
	return nil
}

// enter makes idx the current cell, scoring its exits on first visit.
func (w *dfsWalker) enter(idx, parent int) {
	w.cur = idx
	n := &w.nodes[idx]
	if n.seen {
		return
	}
	n.seen = true
	n.parent = parent
	for _, d := range grid.Directions {
		nb := w.l.neighbour(w.g, idx, d)
		switch {
		case nb < 0:
			n.exits[d] = exitNone
		case nb == parent || w.nodes[nb].seen:
			n.exits[d] = exitExhausted
		default:
			n.exits[d] = exitUntried
		}
	}
}

// pick returns the highest-priority untried exit of idx that leads to a
// cell not yet seen.
func (w *dfsWalker) pick(idx int) (grid.Direction, bool) {
	n := &w.nodes[idx]
	for _, d := range w.opts.DFSOrder {
		if n.exits[d] != exitUntried {
			continue
		}
		if nb := w.l.neighbour(w.g, idx, d); w.nodes[nb].seen {
			n.exits[d] = exitExhausted
			continue
		}
		return d, true
	}
	return 0, false
}

// backtrack pops the current cell and returns to its parent, marking the
// abandoned exit exhausted there.
func (w *dfsWalker) backtrack(depth int) error {
	child := w.cur
	parent := w.nodes[child].parent
	if parent == rootCell {
		return unreachable("dfs backtracked past the start", depth)
	}
	w.path = w.path[:len(w.path)-1]

	p := &w.nodes[parent]
	if d, ok := grid.DirectionBetween(w.l.point(parent), w.l.point(child)); ok {
		p.exits[d] = exitExhausted
	}
	w.cur = parent
	return nil
}

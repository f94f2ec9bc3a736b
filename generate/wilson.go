package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// Wilson returns a perfect rows×cols maze carved with Wilson's algorithm and
// weighted according to opts.
func Wilson(rows, cols int, opts ...Option) (*grid.Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	m, err := grid.NewMaze(rows, cols)
	if err != nil {
		return nil, err
	}

	w := &walker{
		maze:    m,
		rng:     rngFromSeed(o.Seed),
		inTree:  make([]bool, rows*cols),
		exitDir: make([]grid.Direction, rows*cols),
	}
	w.carve()
	assignCosts(m, w.rng, o)

	o.Logger.Debug("maze generated", "rows", rows, "cols", cols, "seed", o.Seed, "walks", w.walks)
	return m, nil
}

// walker holds the mutable state of one Wilson run.
type walker struct {
	maze    *grid.Maze
	rng     *rand.Rand
	inTree  []bool
	exitDir []grid.Direction // last direction taken out of each cell during the current walk
	walks   int
}

// carve adds every cell to the spanning tree, one loop-erased walk at a time.
func (w *walker) carve() {
	total := len(w.inTree)
	w.inTree[w.rng.Intn(total)] = true
	remaining := total - 1

	// Visit walk origins in a shuffled order so no region is favoured.
	order := w.rng.Perm(total)
	for _, origin := range order {
		if remaining == 0 {
			break
		}
		if w.inTree[origin] {
			continue
		}
		w.walk(origin)
		remaining -= w.commit(origin)
		w.walks++
	}
}

// walk performs a random walk from origin until it meets the tree. Revisiting
// a cell overwrites its recorded exit, which erases the loop implicitly.
func (w *walker) walk(origin int) {
	cur := w.maze.PointAt(origin)
	for !w.inTree[w.maze.Index(cur)] {
		d := w.randomDirection(cur)
		w.exitDir[w.maze.Index(cur)] = d
		cur = cur.Step(d)
	}
}

// commit retraces the loop-erased walk from origin, opening walls and adding
// cells to the tree. It returns the number of cells added.
func (w *walker) commit(origin int) int {
	added := 0
	cur := w.maze.PointAt(origin)
	for idx := origin; !w.inTree[idx]; idx = w.maze.Index(cur) {
		d := w.exitDir[idx]
		_ = w.maze.Open(cur, d)
		w.inTree[idx] = true
		added++
		cur = cur.Step(d)
	}
	return added
}

// randomDirection picks uniformly among the in-bounds neighbours of p.
func (w *walker) randomDirection(p grid.Point) grid.Direction {
	var candidates [4]grid.Direction
	n := 0
	for _, d := range grid.Directions {
		if w.maze.InBounds(p.Step(d)) {
			candidates[n] = d
			n++
		}
	}
	return candidates[w.rng.Intn(n)]
}

// assignCosts draws a cost for every open edge in row-major order.
func assignCosts(m *grid.Maze, rng *rand.Rand, o Options) {
	span := o.MaxCost - o.MinCost + 1
	draw := func() int { return o.MinCost + rng.Intn(span) }

	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Columns(); c++ {
			p := grid.Pt(r, c)
			for _, d := range [2]grid.Direction{grid.Down, grid.Right} {
				if !m.CanGo(d, r, c) {
					continue
				}
				if o.Directional {
					_ = m.SetCost(p, d, draw())
					_ = m.SetCost(p.Step(d), d.Back(), draw())
				} else {
					_ = m.SetEdgeCost(p, d, draw())
				}
			}
		}
	}
}

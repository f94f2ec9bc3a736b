package solve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
)

// snake returns a 3×3 maze whose only route is a boustrophedon corridor.
func snake(t testing.TB) *grid.Maze {
	t.Helper()
	m, err := grid.NewMaze(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Carve(
		grid.Pt(0, 0), grid.Pt(0, 1), grid.Pt(0, 2),
		grid.Pt(1, 2), grid.Pt(1, 1), grid.Pt(1, 0),
		grid.Pt(2, 0), grid.Pt(2, 1), grid.Pt(2, 2),
	))
	return m
}

// snakePath is the unique route through snake.
var snakePath = grid.Path{
	grid.Pt(0, 0), grid.Pt(0, 1), grid.Pt(0, 2),
	grid.Pt(1, 2), grid.Pt(1, 1), grid.Pt(1, 0),
	grid.Pt(2, 0), grid.Pt(2, 1), grid.Pt(2, 2),
}

// deadEnd returns a 2×2 maze with a dead-end spur at (0,1):
//
//	+---+---+
//	|       |
//	+   +---+
//	|       |
//	+---+---+
func deadEnd(t testing.TB) *grid.Maze {
	t.Helper()
	m, err := grid.NewMaze(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Carve(grid.Pt(0, 1), grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(1, 1)))
	return m
}

func wilson(t testing.TB, rows, cols int, seed int64, opts ...generate.Option) *grid.Maze {
	t.Helper()
	m, err := generate.Wilson(rows, cols, append([]generate.Option{generate.WithSeed(seed)}, opts...)...)
	require.NoError(t, err)
	return m
}

// randomOpen returns a fully open maze with random directional costs in [1,9].
func randomOpen(t testing.TB, rows, cols int, seed int64) *grid.Maze {
	t.Helper()
	m, err := grid.NewOpenMaze(rows, cols)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for _, d := range grid.Directions {
				if m.CanGo(d, r, c) {
					require.NoError(t, m.SetCost(grid.Pt(r, c), d, 1+rng.Intn(9)))
				}
			}
		}
	}
	return m
}

// referenceCost computes least costs from start by plain relaxation.
func referenceCost(g grid.Grid, start, end grid.Point) int {
	const inf = int(^uint(0) >> 1)
	rows, cols := g.Rows(), g.Columns()
	dist := make([]int, rows*cols)
	for i := range dist {
		dist[i] = inf
	}
	dist[start.Row*cols+start.Col] = 0
	for changed := true; changed; {
		changed = false
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cur := dist[r*cols+c]
				if cur == inf {
					continue
				}
				for _, d := range grid.Directions {
					if !g.CanGo(d, r, c) {
						continue
					}
					q := grid.Pt(r, c).Step(d)
					if nd := cur + g.Cost(r, c, d); nd < dist[q.Row*cols+q.Col] {
						dist[q.Row*cols+q.Col] = nd
						changed = true
					}
				}
			}
		}
	}
	return dist[end.Row*cols+end.Col]
}

// requireRoute checks endpoints and unit steps; strict also forbids revisits.
func requireRoute(t *testing.T, g grid.Grid, p grid.Path, start, end grid.Point, strict bool) {
	t.Helper()
	require.NotEmpty(t, p)
	s, _ := p.Start()
	e, _ := p.End()
	require.Equal(t, start, s, "path must start at %s", start)
	require.Equal(t, end, e, "path must end at %s", end)
	require.NoError(t, grid.ValidateSteps(g, p))
	if strict {
		require.False(t, p.HasDuplicates(), "path %s revisits a cell", p)
	}
}

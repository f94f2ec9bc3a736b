package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/solve"
)

// allOrders lists the 24 corner orders.
func allOrders() [][4]int {
	var out [][4]int
	c := []int{solve.TopLeft, solve.TopRight, solve.BottomRight, solve.BottomLeft}
	for _, a := range c {
		for _, b := range c {
			for _, x := range c {
				for _, y := range c {
					if a != b && a != x && a != y && b != x && b != y && x != y {
						out = append(out, [4]int{a, b, x, y})
					}
				}
			}
		}
	}
	return out
}

func TestWaypoints(t *testing.T) {
	m, err := grid.NewMaze(5, 8)
	require.NoError(t, err)
	assert.Equal(t, [5]grid.Point{
		grid.Pt(2, 4), grid.Pt(0, 0), grid.Pt(0, 7), grid.Pt(4, 7), grid.Pt(4, 0),
	}, solve.Waypoints(m))
}

// TestTour_Properties checks the route and its optimality over the 24 orders.
func TestTour_Properties(t *testing.T) {
	orders := allOrders()
	require.Len(t, orders, 24)

	for seed := int64(1); seed <= 4; seed++ {
		m := wilson(t, 9, 11, seed)
		res, err := solve.Tour(m)
		require.NoError(t, err)

		center := res.Waypoints[solve.Center]
		requireRoute(t, m, res.Path, center, center, false)
		for _, wp := range res.Waypoints {
			assert.True(t, res.Path.Contains(wp), "seed %d: tour misses %s", seed, wp)
		}

		cost, err := grid.PathCost(m, res.Path)
		require.NoError(t, err)
		assert.Equal(t, cost, res.Cost, "seed %d", seed)

		// independent matrix from the single-pair solver
		var matrix solve.CostMatrix
		for i, a := range res.Waypoints {
			for j, b := range res.Waypoints {
				_, c, err := solve.DijkstraBetween(m, a, b)
				require.NoError(t, err)
				matrix[i][j] = c
			}
		}
		assert.Equal(t, matrix, res.Matrix)
		for _, o := range orders {
			assert.LessOrEqual(t, res.Cost, matrix.Score(o), "seed %d order %v", seed, o)
		}
		assert.Equal(t, matrix.Score(res.Order), res.Cost)
	}
}

// TestTour_HopMetric weighs legs by steps.
func TestTour_HopMetric(t *testing.T) {
	m := wilson(t, 7, 7, 5)
	res, err := solve.Tour(m, solve.WithHopMetric())
	require.NoError(t, err)
	assert.Equal(t, len(res.Path)-1, res.Cost)
	for _, o := range allOrders() {
		assert.LessOrEqual(t, res.Cost, res.Matrix.Score(o))
	}
}

// TestTour_TieBreak: on a snake every order crosses the same corridor, so
// costs tie often and the first lexicographic minimum is kept.
func TestTour_TieBreak(t *testing.T) {
	m := snake(t)
	res, err := solve.Tour(m)
	require.NoError(t, err)

	best := res.Matrix.Score(res.Order)
	for _, o := range allOrders() {
		s := res.Matrix.Score(o)
		if s == best {
			assert.Equal(t, o, res.Order, "first minimal order in lexicographic sequence")
			break
		}
	}
}

// TestTour_SingleCell collapses every waypoint to the same cell.
func TestTour_SingleCell(t *testing.T) {
	m, err := grid.NewMaze(1, 1)
	require.NoError(t, err)
	res, err := solve.Tour(m)
	require.NoError(t, err)
	assert.Equal(t, grid.Path{grid.Pt(0, 0)}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, [4]int{solve.TopLeft, solve.TopRight, solve.BottomRight, solve.BottomLeft}, res.Order)
}

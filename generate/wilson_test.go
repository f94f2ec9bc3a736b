package generate_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
)

// reachable counts the cells connected to (0,0) through open walls.
func reachable(m *grid.Maze) int {
	seen := make(map[grid.Point]bool)
	queue := []grid.Point{{}}
	seen[grid.Point{}] = true
	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		for _, d := range grid.Directions {
			if !m.CanGo(d, p.Row, p.Col) {
				continue
			}
			q := p.Step(d)
			if !seen[q] {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	return len(seen)
}

// TestWilson_Perfect checks the spanning-tree property: N-1 edges, all connected.
func TestWilson_Perfect(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {6, 1}, {2, 2}, {5, 8}, {20, 20}}
	for _, sz := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			m, err := generate.Wilson(sz[0], sz[1], generate.WithSeed(seed))
			require.NoError(t, err)
			n := sz[0] * sz[1]
			assert.Equal(t, n-1, m.OpenCount(), "size %v seed %d", sz, seed)
			assert.Equal(t, n, reachable(m), "size %v seed %d", sz, seed)
		}
	}
}

func TestWilson_Deterministic(t *testing.T) {
	a, err := generate.Wilson(12, 9, generate.WithSeed(42))
	require.NoError(t, err)
	b, err := generate.Wilson(12, 9, generate.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := generate.Wilson(12, 9, generate.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestWilson_Costs(t *testing.T) {
	m, err := generate.Wilson(10, 10, generate.WithSeed(7), generate.WithCostRange(3, 5))
	require.NoError(t, err)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Columns(); c++ {
			for _, d := range grid.Directions {
				if !m.CanGo(d, r, c) {
					continue
				}
				cost := m.Cost(r, c, d)
				assert.GreaterOrEqual(t, cost, 3)
				assert.LessOrEqual(t, cost, 5)
				q := grid.Pt(r, c).Step(d)
				assert.Equal(t, cost, m.Cost(q.Row, q.Col, d.Back()), "symmetric by default")
			}
		}
	}
}

func TestWilson_DirectionalCosts(t *testing.T) {
	m, err := generate.Wilson(15, 15, generate.WithSeed(3), generate.WithDirectionalCosts())
	require.NoError(t, err)
	asymmetric := 0
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Columns(); c++ {
			if m.CanGo(grid.Right, r, c) && m.Cost(r, c, grid.Right) != m.Cost(r, c+1, grid.Left) {
				asymmetric++
			}
		}
	}
	assert.Positive(t, asymmetric, "with 9 cost values some edges must differ by direction")
}

func TestWilson_Errors(t *testing.T) {
	_, err := generate.Wilson(0, 4)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = generate.Wilson(4, 4, generate.WithCostRange(0, 3))
	assert.ErrorIs(t, err, generate.ErrOptionViolation)
	_, err = generate.Wilson(4, 4, generate.WithCostRange(5, 2))
	assert.ErrorIs(t, err, generate.ErrOptionViolation)
}

func TestWilson_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.DebugLevel)
	_, err := generate.Wilson(3, 3, generate.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "maze generated")
}

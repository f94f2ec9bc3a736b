package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/solve"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]solve.Algorithm{
		"left":     solve.AlgoLeft,
		"DFS":      solve.AlgoDFS,
		" bfs ":    solve.AlgoBFS,
		"dijkstra": solve.AlgoDijkstra,
		"dij":      solve.AlgoDijkstra,
		"tour":     solve.AlgoTour,
	}
	for name, want := range cases {
		got, err := solve.ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := solve.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, solve.ErrOptionViolation)
	assert.Equal(t, "Algorithm(9)", solve.Algorithm(9).String())
}

func TestParseSelection(t *testing.T) {
	basic, err := solve.ParseSelection("basic")
	require.NoError(t, err)
	assert.Equal(t, []solve.Algorithm{solve.AlgoDFS, solve.AlgoBFS, solve.AlgoDijkstra}, basic)

	adv, err := solve.ParseSelection("Advanced")
	require.NoError(t, err)
	assert.Equal(t, append(basic, solve.AlgoTour), adv)

	one, err := solve.ParseSelection("left")
	require.NoError(t, err)
	assert.Equal(t, []solve.Algorithm{solve.AlgoLeft}, one)

	_, err = solve.ParseSelection("everything")
	assert.ErrorIs(t, err, solve.ErrOptionViolation)
}

func TestRun(t *testing.T) {
	m := snake(t)
	for _, algo := range solve.Algorithms {
		out, err := solve.Run(m, algo)
		require.NoError(t, err, "%s", algo)
		assert.Equal(t, algo, out.Algorithm)
		assert.Equal(t, algo.HasCost(), out.HasCost)
		if algo == solve.AlgoTour {
			require.NotNil(t, out.Tour)
			assert.Equal(t, out.Tour.Path, out.Path)
			continue
		}
		assert.Nil(t, out.Tour)
		assert.Equal(t, snakePath, out.Path, "%s", algo)
	}

	_, err := solve.Run(m, solve.Algorithm(42))
	assert.ErrorIs(t, err, solve.ErrOptionViolation)
}

package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
)

func hook(t *testing.T) *grid.Maze {
	t.Helper()
	m, err := grid.NewMaze(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Carve(
		grid.Pt(0, 0), grid.Pt(0, 1), grid.Pt(0, 2),
		grid.Pt(1, 2), grid.Pt(1, 1), grid.Pt(1, 0),
	))
	return m
}

func TestText_Plain(t *testing.T) {
	m := hook(t)
	want := strings.Join([]string{
		"+---+---+---+",
		"|           |",
		"+---+---+   +",
		"|           |",
		"+---+---+---+",
		"",
	}, "\n")
	assert.Equal(t, want, render.String(m, nil))
}

func TestText_Path(t *testing.T) {
	m := hook(t)
	p := grid.Path{grid.Pt(0, 0), grid.Pt(0, 1), grid.Pt(0, 2), grid.Pt(1, 2)}
	want := strings.Join([]string{
		"+---+---+---+",
		"| *   *   * |",
		"+---+---+   +",
		"|         * |",
		"+---+---+---+",
		"",
	}, "\n")

	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, m, p))
	assert.Equal(t, want, buf.String())
}

func TestText_CostsAndWaypoints(t *testing.T) {
	m := hook(t)
	require.NoError(t, m.SetEdgeCost(grid.Pt(0, 0), grid.Right, 4))
	require.NoError(t, m.SetEdgeCost(grid.Pt(0, 1), grid.Right, 12))
	require.NoError(t, m.SetEdgeCost(grid.Pt(0, 2), grid.Down, 7))

	got := render.String(m, grid.Path{grid.Pt(0, 0), grid.Pt(0, 1)},
		render.WithCosts(), render.WithWaypoints(grid.Pt(0, 0)))
	want := strings.Join([]string{
		"+---+---+---+",
		"| @ 4 * +   |",
		"+---+---+ 7 +",
		"|   1   1   |",
		"+---+---+---+",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestText_AsymmetricCosts checks that an edge costing differently in each
// direction is marked instead of showing only its Right or Down cost.
func TestText_AsymmetricCosts(t *testing.T) {
	m, err := grid.NewMaze(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Carve(grid.Pt(0, 0), grid.Pt(0, 1), grid.Pt(1, 1)))
	require.NoError(t, m.SetCost(grid.Pt(0, 0), grid.Right, 3))
	require.NoError(t, m.SetEdgeCost(grid.Pt(0, 1), grid.Down, 5))

	want := strings.Join([]string{
		"+---+---+",
		"|   ~   |",
		"+---+ 5 +",
		"|   |   |",
		"+---+---+",
		"",
	}, "\n")
	assert.Equal(t, want, render.String(m, nil, render.WithCosts()))

	require.NoError(t, m.SetCost(grid.Pt(1, 1), grid.Up, 2))
	lines := strings.Split(render.String(m, nil, render.WithCosts()), "\n")
	assert.Equal(t, "+---+ ~ +", lines[2])

	// without costs the marker never appears
	assert.NotContains(t, render.String(m, nil), "~")
}

// TestText_Color only checks that markers survive styling; escape codes
// depend on the terminal profile.
func TestText_Color(t *testing.T) {
	m := hook(t)
	got := render.String(m, grid.Path{grid.Pt(1, 1)}, render.WithColor())
	assert.Contains(t, got, "*")
	assert.Equal(t, 5, strings.Count(got, "\n"))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestText_WriteError(t *testing.T) {
	err := render.Text(failWriter{}, hook(t), nil)
	assert.EqualError(t, err, "disk full")
}

package solve

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Algorithm names one solving strategy.
type Algorithm int

const (
	AlgoLeft Algorithm = iota
	AlgoDFS
	AlgoBFS
	AlgoDijkstra
	AlgoTour
)

var algorithmNames = [...]string{
	AlgoLeft:     "left",
	AlgoDFS:      "dfs",
	AlgoBFS:      "bfs",
	AlgoDijkstra: "dijkstra",
	AlgoTour:     "tour",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// HasCost reports whether the strategy minimises edge cost.
func (a Algorithm) HasCost() bool {
	return a == AlgoDijkstra || a == AlgoTour
}

// Algorithms lists every strategy in declaration order.
var Algorithms = []Algorithm{AlgoLeft, AlgoDFS, AlgoBFS, AlgoDijkstra, AlgoTour}

// Modes are named groups of strategies run one after another.
var Modes = map[string][]Algorithm{
	"basic":    {AlgoDFS, AlgoBFS, AlgoDijkstra},
	"advanced": {AlgoDFS, AlgoBFS, AlgoDijkstra, AlgoTour},
}

// ParseAlgorithm resolves a strategy name. "dij" is accepted for dijkstra.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "dij" {
		return AlgoDijkstra, nil
	}
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrOptionViolation, name)
}

// ParseSelection resolves either a single strategy or a mode name.
func ParseSelection(name string) ([]Algorithm, error) {
	if algos, ok := Modes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return slices.Clone(algos), nil
	}
	a, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []Algorithm{a}, nil
}

// Outcome is the result of Run.
type Outcome struct {
	Algorithm Algorithm
	Path      grid.Path
	// Cost is set only when HasCost is true.
	Cost    int
	HasCost bool
	// Tour is set only for AlgoTour.
	Tour *TourResult
}

// Run solves g from (0,0) to (rows-1, cols-1) with algo, or runs the tour.
func Run(g grid.Grid, algo Algorithm, opts ...Option) (Outcome, error) {
	out := Outcome{Algorithm: algo, HasCost: algo.HasCost()}
	var err error
	switch algo {
	case AlgoLeft:
		out.Path, err = WallFollower(g, opts...)
	case AlgoDFS:
		out.Path, err = DFS(g, opts...)
	case AlgoBFS:
		out.Path, err = BFS(g, opts...)
	case AlgoDijkstra:
		var r Result
		r, err = Dijkstra(g, opts...)
		out.Path, out.Cost = r.Path, r.Cost
	case AlgoTour:
		var t TourResult
		t, err = Tour(g, opts...)
		out.Path, out.Cost, out.Tour = t.Path, t.Cost, &t
	default:
		return Outcome{}, fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(algo))
	}
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

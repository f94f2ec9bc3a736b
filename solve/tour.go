package solve

import (
	"math"
	"slices"

	"github.com/katalvlaran/labyrinth/grid"
)

// Waypoint indices into TourResult.Waypoints.
const (
	Center = iota
	TopLeft
	TopRight
	BottomRight
	BottomLeft
)

// CostMatrix holds the least leg cost between every ordered pair of
// waypoints: m[i][j] is the cost of travelling from waypoint i to j.
type CostMatrix [5][5]int

// TourResult is the outcome of Tour.
type TourResult struct {
	// Path starts and ends at the center and passes every corner.
	Path grid.Path
	// Cost is the sum of the five leg costs.
	Cost int
	// Order lists the corner waypoint indices in visiting order.
	Order [4]int
	// Waypoints are the center followed by the four corners.
	Waypoints [5]grid.Point
	// Matrix is the leg cost matrix the order was chosen from.
	Matrix CostMatrix
}

// Waypoints returns the tour stops of g: center (rows/2, cols/2), then the
// top-left, top-right, bottom-right and bottom-left corners.
func Waypoints(g grid.Grid) [5]grid.Point {
	r, c := g.Rows(), g.Columns()
	return [5]grid.Point{
		Center:      {Row: r / 2, Col: c / 2},
		TopLeft:     {Row: 0, Col: 0},
		TopRight:    {Row: 0, Col: c - 1},
		BottomRight: {Row: r - 1, Col: c - 1},
		BottomLeft:  {Row: r - 1, Col: 0},
	}
}

// Score returns the cost of visiting the corners in order, starting and
// ending at the center.
func (m CostMatrix) Score(order [4]int) int {
	return m[Center][order[0]] +
		m[order[0]][order[1]] +
		m[order[1]][order[2]] +
		m[order[2]][order[3]] +
		m[order[3]][Center]
}

// legSolver finds one leg of a tour and its cost.
type legSolver func(from, to grid.Point) (grid.Path, int, error)

// Tour plans the cheapest closed route from the center through all four
// corners and back. Leg costs come from DijkstraBetween (or BFSBetween step
// counts with WithHopMetric) for all 25 ordered waypoint pairs. The 24
// corner orders are scored in lexicographic order and the first strict
// minimum wins. The winning legs are solved again and joined, dropping the
// first point of every leg after the first.
func Tour(g grid.Grid, opts ...Option) (TourResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return TourResult{}, err
	}
	if g == nil {
		return TourResult{}, ErrNilGrid
	}
	if err = checkEndpoints(g, grid.Point{}, grid.BottomRight(g)); err != nil {
		return TourResult{}, err
	}

	leg := costLeg(g, opts)
	if o.HopMetric {
		leg = hopLeg(g, opts)
	}

	res := TourResult{Waypoints: Waypoints(g)}
	for i, from := range res.Waypoints {
		for j, to := range res.Waypoints {
			_, cost, err := leg(from, to)
			if err != nil {
				return TourResult{}, err
			}
			res.Matrix[i][j] = cost
		}
	}

	res.Order, res.Cost = bestOrder(res.Matrix)
	o.Logger.Debug("tour order chosen", "order", res.Order, "cost", res.Cost, "hops", o.HopMetric)

	stops := [6]int{Center, res.Order[0], res.Order[1], res.Order[2], res.Order[3], Center}
	for i := 0; i < 5; i++ {
		p, _, err := leg(res.Waypoints[stops[i]], res.Waypoints[stops[i+1]])
		if err != nil {
			return TourResult{}, err
		}
		if i > 0 {
			p = p[1:]
		}
		res.Path = append(res.Path, p...)
	}
	return res, nil
}

func costLeg(g grid.Grid, opts []Option) legSolver {
	return func(from, to grid.Point) (grid.Path, int, error) {
		return DijkstraBetween(g, from, to, opts...)
	}
}

func hopLeg(g grid.Grid, opts []Option) legSolver {
	return func(from, to grid.Point) (grid.Path, int, error) {
		p, err := BFSBetween(g, from, to, opts...)
		if err != nil {
			return nil, 0, err
		}
		return p, len(p) - 1, nil
	}
}

// bestOrder scans every corner order lexicographically and keeps the first
// one with the strictly lowest score.
func bestOrder(m CostMatrix) (best [4]int, cost int) {
	cost = math.MaxInt
	order := [4]int{TopLeft, TopRight, BottomRight, BottomLeft}
	for ok := true; ok; ok = nextPermutation(order[:]) {
		if s := m.Score(order); s < cost {
			best, cost = order, s
		}
	}
	return best, cost
}

// nextPermutation rearranges a into its lexicographic successor and reports
// false, leaving a sorted ascending, once a is the last permutation.
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		slices.Reverse(a)
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	slices.Reverse(a[i+1:])
	return true
}

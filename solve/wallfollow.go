package solve

import (
	"github.com/katalvlaran/labyrinth/grid"
)

// WallFollower walks from (0,0) to (rows-1, cols-1) keeping one hand on
// the wall. It starts facing Down and at every cell turns toward the first
// open direction in the order relative-left, straight, relative-right,
// back (mirrored for HandRight). Every cell entered is appended, so the
// path may revisit cells when the walk backs out of dead ends.
//
// Returns a SolveError wrapping ErrRunaway after more than 4*rows*cols
// steps, or ErrUnreachable when the start cell has no exit at all.
func WallFollower(g grid.Grid, opts ...Option) (grid.Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	start := grid.Point{}
	if err = checkEndpoints(g, start, start); err != nil {
		return nil, err
	}

	goal := grid.BottomRight(g)
	limit := 4 * g.Rows() * g.Columns()
	turns := turnOrder(o.Hand)

	cur, heading := start, grid.Down
	path := grid.Path{cur}
	for steps := 0; cur != goal; steps++ {
		if steps > limit {
			return nil, runaway("wall follower exceeded step bound", steps)
		}
		if err = cancelled(o.Ctx); err != nil {
			return nil, err
		}

		next, ok := pickTurn(g, cur, heading, turns)
		if !ok {
			return nil, unreachable("wall follower is boxed in at "+cur.String(), steps)
		}
		heading = next
		cur = cur.Step(heading)
		path = append(path, cur)
	}

	o.Logger.Debug("wall follower done", "hand", o.Hand, "steps", len(path)-1)
	return path, nil
}

// turn maps a heading to a candidate heading.
type turn func(grid.Direction) grid.Direction

func straight(d grid.Direction) grid.Direction { return d }

func turnOrder(h Hand) [4]turn {
	if h == HandRight {
		return [4]turn{grid.Direction.Right, straight, grid.Direction.Left, grid.Direction.Back}
	}
	return [4]turn{grid.Direction.Left, straight, grid.Direction.Right, grid.Direction.Back}
}

// pickTurn returns the first heading in turns order that g lets us take.
func pickTurn(g grid.Grid, p grid.Point, heading grid.Direction, turns [4]turn) (grid.Direction, bool) {
	for _, t := range turns {
		d := t(heading)
		if g.CanGo(d, p.Row, p.Col) && grid.Contains(g, p.Step(d)) {
			return d, true
		}
	}
	return 0, false
}

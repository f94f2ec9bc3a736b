package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrNotAdjacent indicates two points that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("grid: points are not adjacent")
	// ErrBadStep indicates a path step that is not a single unit move.
	ErrBadStep = errors.New("grid: path step is not a single unit move")
	// ErrBlockedStep indicates a path step that crosses a wall.
	ErrBlockedStep = errors.New("grid: path step crosses a wall")
)

// Direction is one of the four orthogonal headings. The numeric values are
// fixed: relative turns are computed modulo 4 from them.
type Direction int

const (
	// Up moves to row-1.
	Up Direction = iota
	// Left moves to col-1.
	Left
	// Down moves to row+1.
	Down
	// Right moves to col+1.
	Right
)

// Directions lists every Direction in index order.
var Directions = [4]Direction{Up, Left, Down, Right}

// deltas holds the (row, col) offset for each Direction.
var deltas = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Valid reports whether d is one of Up, Left, Down, Right.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Left returns the heading after a quarter turn counter-clockwise.
func (d Direction) Left() Direction { return (d + 1) % 4 }

// Back returns the opposite heading.
func (d Direction) Back() Direction { return (d + 2) % 4 }

// Right returns the heading after a quarter turn clockwise.
func (d Direction) Right() Direction { return (d + 3) % 4 }

// Delta returns the (row, col) offset of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	return deltas[d][0], deltas[d][1]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Point is a (Row, Col) cell coordinate.
type Point struct {
	Row int
	Col int
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Step returns the neighbouring point one unit away in direction d.
// The result may lie outside any particular grid.
func (p Point) Step(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Compare orders points by row, then column. It returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

// Less reports whether p sorts before q.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

func (p Point) String() string {
	return fmt.Sprintf("%d/%d", p.Row, p.Col)
}

// DirectionBetween returns the direction leading from a to the adjacent point b.
// ok is false when a and b are not orthogonal neighbours.
func DirectionBetween(a, b Point) (d Direction, ok bool) {
	for _, d = range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}

// Grid is the read-only view of a maze consumed by the solvers.
//
// CanGo reports whether movement out of (row, col) in direction d is open.
// Implementations must never report an exit that leaves the grid, and a
// nil implementation must report zero rows and columns.
// Cost is the price of leaving (row, col) in direction d and is only
// meaningful when CanGo reports true.
type Grid interface {
	Rows() int
	Columns() int
	CanGo(d Direction, row, col int) bool
	Cost(row, col int, d Direction) int
}

// CanGoUp reports whether g allows moving up from (row, col).
func CanGoUp(g Grid, row, col int) bool { return g.CanGo(Up, row, col) }

// CanGoLeft reports whether g allows moving left from (row, col).
func CanGoLeft(g Grid, row, col int) bool { return g.CanGo(Left, row, col) }

// CanGoDown reports whether g allows moving down from (row, col).
func CanGoDown(g Grid, row, col int) bool { return g.CanGo(Down, row, col) }

// CanGoRight reports whether g allows moving right from (row, col).
func CanGoRight(g Grid, row, col int) bool { return g.CanGo(Right, row, col) }

// Contains reports whether p lies inside g.
func Contains(g Grid, p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Columns()
}

// BottomRight returns the default goal cell (rows-1, cols-1).
func BottomRight(g Grid) Point {
	return Point{Row: g.Rows() - 1, Col: g.Columns() - 1}
}

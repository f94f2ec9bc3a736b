package grid

import "fmt"

// DefaultCost is the cost given to an edge when it is opened.
const DefaultCost = 1

// cell holds the open flags and leaving costs of one maze cell,
// indexed by Direction.
type cell struct {
	open [4]bool
	cost [4]int
}

// Maze is a rows×cols Grid with explicit walls and per-directed-edge costs.
// Cells are stored row-major: index = row*cols + col.
//
// A Maze is not safe for concurrent mutation; concurrent reads are fine.
// A nil *Maze reads as a 0×0 grid.
type Maze struct {
	rows, cols int
	cells      []cell
}

// NewMaze returns a maze of the given size with every wall closed.
// Returns ErrEmptyGrid if rows or cols is not positive.
func NewMaze(rows, cols int) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	return &Maze{rows: rows, cols: cols, cells: make([]cell, rows*cols)}, nil
}

// NewOpenMaze returns a maze with every internal wall removed and every edge
// costing DefaultCost. It is not a perfect maze unless rows or cols is 1.
func NewOpenMaze(rows, cols int) (*Maze, error) {
	m, err := NewMaze(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := Point{Row: r, Col: c}
			if c+1 < cols {
				_ = m.Open(p, Right)
			}
			if r+1 < rows {
				_ = m.Open(p, Down)
			}
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Columns returns the number of columns.
func (m *Maze) Columns() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// InBounds reports whether p lies within the maze.
func (m *Maze) InBounds(p Point) bool {
	if m == nil {
		return false
	}
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// Index maps p to its row-major index. p must be in bounds.
func (m *Maze) Index(p Point) int {
	return p.Row*m.cols + p.Col
}

// PointAt converts a row-major index back to a Point.
func (m *Maze) PointAt(idx int) Point {
	return Point{Row: idx / m.cols, Col: idx % m.cols}
}

// CanGo reports whether the wall on side d of (row, col) is open.
func (m *Maze) CanGo(d Direction, row, col int) bool {
	p := Point{Row: row, Col: col}
	if !d.Valid() || !m.InBounds(p) {
		return false
	}
	return m.cells[m.Index(p)].open[d]
}

// Cost returns the price of leaving (row, col) in direction d, or 0 when the
// point is outside the maze.
func (m *Maze) Cost(row, col int, d Direction) int {
	p := Point{Row: row, Col: col}
	if !d.Valid() || !m.InBounds(p) {
		return 0
	}
	return m.cells[m.Index(p)].cost[d]
}

// Open removes the wall between p and its neighbour in direction d, on both
// sides. Both directions get DefaultCost unless a cost was already set.
func (m *Maze) Open(p Point, d Direction) error {
	q, err := m.neighbour(p, d)
	if err != nil {
		return err
	}
	a, b := &m.cells[m.Index(p)], &m.cells[m.Index(q)]
	back := d.Back()
	a.open[d], b.open[back] = true, true
	if a.cost[d] == 0 {
		a.cost[d] = DefaultCost
	}
	if b.cost[back] == 0 {
		b.cost[back] = DefaultCost
	}
	return nil
}

// Close restores the wall between p and its neighbour in direction d.
// Stored costs are kept so that reopening preserves them.
func (m *Maze) Close(p Point, d Direction) error {
	q, err := m.neighbour(p, d)
	if err != nil {
		return err
	}
	m.cells[m.Index(p)].open[d] = false
	m.cells[m.Index(q)].open[d.Back()] = false
	return nil
}

// SetCost sets the price of leaving p in direction d only.
func (m *Maze) SetCost(p Point, d Direction, cost int) error {
	if _, err := m.neighbour(p, d); err != nil {
		return err
	}
	m.cells[m.Index(p)].cost[d] = cost
	return nil
}

// SetEdgeCost sets the same cost for both directions of the edge between p
// and its neighbour in direction d.
func (m *Maze) SetEdgeCost(p Point, d Direction, cost int) error {
	q, err := m.neighbour(p, d)
	if err != nil {
		return err
	}
	m.cells[m.Index(p)].cost[d] = cost
	m.cells[m.Index(q)].cost[d.Back()] = cost
	return nil
}

// Carve opens the walls along a chain of adjacent points, e.g. to lay out a
// corridor in a test. Returns ErrNotAdjacent or ErrOutOfBounds on a bad link.
func (m *Maze) Carve(points ...Point) error {
	for i := 1; i < len(points); i++ {
		d, ok := DirectionBetween(points[i-1], points[i])
		if !ok {
			return fmt.Errorf("%w: %s -> %s", ErrNotAdjacent, points[i-1], points[i])
		}
		if err := m.Open(points[i-1], d); err != nil {
			return err
		}
	}
	return nil
}

// OpenCount returns the number of open undirected edges.
func (m *Maze) OpenCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for i := range m.cells {
		if m.cells[i].open[Down] {
			n++
		}
		if m.cells[i].open[Right] {
			n++
		}
	}
	return n
}

// neighbour validates p and d and returns the adjacent point.
func (m *Maze) neighbour(p Point, d Direction) (Point, error) {
	if !d.Valid() {
		return Point{}, fmt.Errorf("grid: invalid direction %d", int(d))
	}
	if !m.InBounds(p) {
		return Point{}, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	q := p.Step(d)
	if !m.InBounds(q) {
		return Point{}, fmt.Errorf("%w: %s going %s", ErrOutOfBounds, p, d)
	}
	return q, nil
}

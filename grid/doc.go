// Package grid models a rectangular maze as a graph of cells, the shape every
// solver in this module consumes.
//
// What:
//
//   - Point: a (Row, Col) coordinate; comparable, ordered, usable as a map key.
//   - Direction: Up, Left, Down, Right with fixed indices 0..3 and relative turns.
//   - Grid: the read-only interface solvers need (Rows, Columns, CanGo, Cost).
//   - Maze: a concrete Grid with per-cell walls and per-directed-edge costs,
//     stored densely in row-major order (index = row*cols + col).
//   - Path: an ordered sequence of Points, front = start, back = end.
//
// Why:
//
//   - Solvers stay independent of how a maze was produced (generated, carved by
//     hand in a test, or loaded from elsewhere).
//   - Dense indexing lets solvers keep per-cell bookkeeping in flat slices
//     instead of maps keyed by coordinates.
//
// Costs:
//
//	Cost(row, col, d) is the price of leaving (row, col) in direction d. A Maze
//	stores both directions of every edge separately, so costs may be directional.
//	Freshly opened edges cost 1.
//
// Complexity:
//
//   - CanGo, Cost, Open, SetCost: O(1).
//   - ValidateSteps, PathCost:    O(len(path)).
//
// Errors:
//
//   - ErrEmptyGrid:    rows or cols is not positive.
//   - ErrOutOfBounds:  a point lies outside the grid.
//   - ErrNotAdjacent:  two points of a carve/step are not one unit apart.
//   - ErrBadStep:      a path step is not a single orthogonal move.
//   - ErrBlockedStep:  a path step crosses a wall.
package grid

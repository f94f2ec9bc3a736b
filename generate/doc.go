// Package generate builds random perfect mazes with weighted edges.
//
// What
//
//   - Wilson(rows, cols, opts...) carves a uniform spanning tree of the grid
//     using loop-erased random walks (Wilson's algorithm): exactly one simple
//     path connects any two cells.
//   - Every open edge then receives an integer cost drawn from [MinCost, MaxCost],
//     either shared by both directions or, with WithDirectionalCosts, drawn
//     separately for each direction.
//
// Determinism
//
//	All randomness comes from a single math/rand stream seeded by WithSeed.
//	Seed 0 selects a fixed default, so the same seed and options always yield
//	the same maze.
//
// Complexity (N = rows*cols)
//
//   - Time:   expected O(N·cover), dominated by the random walks.
//   - Memory: O(N).
//
// Errors
//
//   - grid.ErrEmptyGrid   if rows or cols is not positive.
//   - ErrOptionViolation  for an invalid cost range.
package generate

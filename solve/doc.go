// Package solve finds routes through a grid.Grid maze.
//
// What
//
//   - WallFollower: keep one hand on the wall from (0,0) until the
//     bottom-right cell. Paths may revisit cells.
//   - DFS / DFSBetween: backtracking depth-first search with per-cell exit
//     bookkeeping. Paths are duplicate-free.
//   - BFS / BFSBetween: level-synchronous breadth-first search; fewest steps.
//   - Dijkstra / DijkstraBetween: two-pass bucket expansion over integer edge
//     costs; least total cost.
//   - Tour: cheapest closed route from the center through all four corners,
//     chosen by scoring the 24 corner orders over a 5×5 leg cost matrix.
//   - Run: dispatch by Algorithm; Modes groups strategies ("basic",
//     "advanced").
//
// The BFS, DFS and Dijkstra bookkeeping assumes a perfect maze (one simple
// path between any two cells). On other grids they still return valid
// paths, and every solver is bounded so a malformed grid yields an error
// rather than an endless loop.
//
// BFS and DFS never revisit a claimed cell, and Dijkstra consumes at least
// one exit every other level, so their frontier or walk runs out before the
// level bound is reached. The ErrRunaway checks in those three are a safety
// net that no grid is expected to trigger. Only the wall follower hits its
// bound on a consistent grid, when it circles a loop without the goal.
//
// Determinism
//
//	Solvers hold no randomness and explore directions in fixed orders, so
//	repeated calls on the same grid return identical paths.
//
// Complexity (N = rows*cols)
//
//   - WallFollower, DFS, BFS: O(N) time, O(N) memory.
//   - Dijkstra: O(N·L) time where L is the number of frontier levels, O(N) memory.
//   - Tour: 30 Dijkstra (or BFS) runs.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per level or step.
//   - WithLogger(l):          debug tracing through charmbracelet/log.
//   - WithDFSOrder(dirs...):  DFS exit priority, default Down, Left, Up, Right.
//   - WithHand(h):            wall follower hand, default HandLeft.
//   - WithHopMetric():        Tour weighs legs by steps instead of cost.
//
// Errors
//
//   - ErrNilGrid, ErrOutOfBounds, ErrOptionViolation for bad input.
//   - *SolveError wrapping ErrRunaway, ErrUnreachable or ErrNegativeCost
//     when a search fails; Level holds the tree level reached.
package solve

// Package labyrinth generates weighted mazes and finds routes through them.
//
// What
//
//	A small engine for rectangular mazes whose passages carry a traversal cost:
//		• Grid model: cells, directions, open walls and per-direction edge costs
//		• Generation: Wilson's algorithm for uniform random perfect mazes
//		• Solving: wall follower, DFS backtracking, BFS, two-pass Dijkstra
//		• Tours: cheapest visiting order of the centre and the four corners
//		• Rendering: ASCII pictures with route, cost and waypoint overlays
//
// Layout
//
//	grid/          Point, Direction, Path and the Grid interface; Maze implements it
//	generate/      Wilson's random-walk generator with seeded costs
//	solve/         the solvers, the tour and the strategy selector Run
//	render/        text renderer for mazes and routes
//	config/        TOML, .env and LABYRINTH_* environment settings
//	cmd/labyrinth/ the command-line driver
//
// Quick start
//
//	m, _ := generate.Wilson(12, 20, generate.WithSeed(7))
//	res, _ := solve.Dijkstra(m)
//	fmt.Print(render.String(m, res.Path, render.WithCosts()))
//
// Every solver returns the route as a grid.Path from the top-left cell to
// the bottom-right one. Failures are solve.SolveError values wrapping
// solve.ErrRunaway or solve.ErrUnreachable, so callers can use errors.Is.
package labyrinth

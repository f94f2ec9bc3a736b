package solve

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for solver execution.
var (
	// ErrNilGrid is returned if a nil grid is passed.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrOutOfBounds is returned when a start or end point lies outside the grid.
	ErrOutOfBounds = errors.New("solve: endpoint outside grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrRunaway is the cause of a SolveError raised when a solver exceeds
	// its iteration bound, which only happens on a malformed grid.
	ErrRunaway = errors.New("solve: runaway loop")

	// ErrUnreachable is the cause of a SolveError raised when the search
	// space is exhausted without reaching the end.
	ErrUnreachable = errors.New("solve: end is unreachable")

	// ErrNegativeCost is the cause of a SolveError raised when the grid
	// reports a negative edge cost to the Dijkstra solver.
	ErrNegativeCost = errors.New("solve: negative edge cost")
)

// SolveError reports a failed search together with the tree or frontier
// level at which it stopped. Use errors.Is against the sentinels above to
// find the cause.
type SolveError struct {
	Msg   string
	Level int
	Err   error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve: %s - tree level %d", e.Msg, e.Level)
}

// Unwrap exposes the sentinel cause.
func (e *SolveError) Unwrap() error { return e.Err }

func runaway(msg string, level int) error {
	return &SolveError{Msg: msg, Level: level, Err: ErrRunaway}
}

func unreachable(msg string, level int) error {
	return &SolveError{Msg: msg, Level: level, Err: ErrUnreachable}
}

// Hand selects which wall the wall follower keeps contact with.
type Hand int

const (
	// HandLeft prefers relative left, then straight, right, back.
	HandLeft Hand = iota
	// HandRight prefers relative right, then straight, left, back.
	HandRight
)

func (h Hand) String() string {
	if h == HandRight {
		return "right"
	}
	return "left"
}

// DefaultDFSOrder is the exit priority used by DFS when none is configured.
var DefaultDFSOrder = [4]grid.Direction{grid.Down, grid.Left, grid.Up, grid.Right}

// Option configures a solver via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the solver is invoked.
type Option func(*Options)

// Options holds the parameters shared by every solver.
type Options struct {
	// Ctx is checked once per level (per step for the wall follower).
	Ctx context.Context

	// Logger receives debug tracing. Defaults to a discarding logger.
	Logger *log.Logger

	// DFSOrder is the exit priority used by DFS.
	DFSOrder [4]grid.Direction

	// Hand selects the followed wall.
	Hand Hand

	// HopMetric makes Tour weigh legs by step count using BFS instead of
	// edge cost using Dijkstra.
	HopMetric bool

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger writing to io.Discard
//   - DFS priority Down, Left, Up, Right
//   - left-hand wall following
//   - cost-weighted tours.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   log.New(io.Discard),
		DFSOrder: DefaultDFSOrder,
		Hand:     HandLeft,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug tracing to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDFSOrder sets the exit priority for DFS. dirs must list each of
// the four directions exactly once.
func WithDFSOrder(dirs ...grid.Direction) Option {
	return func(o *Options) {
		if len(dirs) != 4 {
			o.err = fmt.Errorf("%w: DFS order needs 4 directions, got %d", ErrOptionViolation, len(dirs))
			return
		}
		var (
			seen  [4]bool
			order [4]grid.Direction
		)
		for i, d := range dirs {
			if !d.Valid() || seen[d] {
				o.err = fmt.Errorf("%w: DFS order %v is not a permutation of the directions", ErrOptionViolation, dirs)
				return
			}
			seen[d] = true
			order[i] = d
		}
		o.DFSOrder = order
	}
}

// WithHand selects the wall the wall follower keeps to.
func WithHand(h Hand) Option {
	return func(o *Options) {
		if h != HandLeft && h != HandRight {
			o.err = fmt.Errorf("%w: unknown hand %d", ErrOptionViolation, int(h))
			return
		}
		o.Hand = h
	}
}

// WithHopMetric makes Tour measure legs in steps (BFS) rather than cost.
func WithHopMetric() Option {
	return func(o *Options) {
		o.HopMetric = true
	}
}

// Result is the outcome of a cost-weighted search.
type Result struct {
	Path grid.Path
	Cost int
}

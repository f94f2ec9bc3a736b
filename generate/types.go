package generate

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("generate: invalid option supplied")

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Default cost range; the largest single-edge cost is a decimal digit so
// costs fit between cells when rendered.
const (
	DefaultMinCost = 1
	DefaultMaxCost = 9
)

// Option configures maze generation.
type Option func(*Options)

// Options holds the generator parameters.
type Options struct {
	// Seed feeds the random stream; 0 means defaultSeed.
	Seed int64
	// MinCost and MaxCost bound the cost of every open edge (inclusive).
	MinCost, MaxCost int
	// Directional draws an independent cost for each direction of an edge.
	Directional bool
	// Logger receives debug output. Defaults to a discarding logger.
	Logger *log.Logger

	err error
}

// DefaultOptions returns seed 0, costs in [DefaultMinCost, DefaultMaxCost],
// symmetric edges and a silent logger.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		MinCost: DefaultMinCost,
		MaxCost: DefaultMaxCost,
		Logger:  log.New(io.Discard),
	}
}

// WithSeed selects the random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithCostRange sets the inclusive edge-cost range. min must be ≥ 1 and
// max ≥ min; otherwise generation fails with ErrOptionViolation.
func WithCostRange(min, max int) Option {
	return func(o *Options) {
		if min < 1 || max < min {
			o.err = fmt.Errorf("%w: cost range [%d,%d]", ErrOptionViolation, min, max)
			return
		}
		o.MinCost, o.MaxCost = min, max
	}
}

// WithDirectionalCosts gives each direction of an edge its own cost.
func WithDirectionalCosts() Option {
	return func(o *Options) {
		o.Directional = true
	}
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

package simplex

import (
	"context"
	"math"
)

// Numeric policy.
const (
	// DefaultEpsilon is the tolerance used by every "is this zero / negative /
	// improving" comparison inside the engine. It is a fixed tunable, not
	// derived per problem.
	DefaultEpsilon = 1e-9

	// iterationCapFactor scales the automatic pivot cap: when MaxIterations
	// is left at 0, the cap is iterationCapFactor*(n+m+1).
	iterationCapFactor = 50
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid    = "simplex: WithEpsilon: eps must be finite, non-negative"
	panicIterationsInvalid = "simplex: WithMaxIterations: n must be non-negative"
	panicNilContext        = "simplex: WithContext: ctx must be non-nil"
)

// Options configures one Solve call.
//
// Epsilon       – non-negative comparison tolerance (default DefaultEpsilon).
// MaxIterations – pivot cap shared across both phases; 0 means automatic
// (50·(n+m+1)). Reaching the cap yields StatusIterationLimit.
// Ctx           – checked between pivots; cancellation aborts the solve with
// ctx.Err() instead of a Status.
// Verbose       – emit one Debug log line per pivot/bound flip and one per
// phase transition via the linprog logger.
type Options struct {
	Epsilon       float64
	MaxIterations int
	Ctx           context.Context
	Verbose       bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithEpsilon sets the comparison tolerance.
// Panics on negative or non-finite eps (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations overrides the automatic pivot cap.
// n == 0 restores the automatic cap; negative n panics.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithContext attaches a cancellation context; Solve checks it before every
// pivot and returns ctx.Err() when it fires. Panics on nil ctx.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithVerbose enables per-pivot Debug tracing through the linprog logger.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// DefaultOptions returns the documented defaults; use functional options to
// override selectively.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: 0,
		Ctx:           context.Background(),
		Verbose:       false,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

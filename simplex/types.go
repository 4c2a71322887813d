package simplex

import "errors"

// Sentinel errors returned by Problem validation and Solve.
var (
	// ErrNilProblem indicates that a nil *Problem was passed to Solve.
	ErrNilProblem = errors.New("simplex: problem is nil")

	// ErrDimensionMismatch indicates that the problem arrays disagree on the
	// number of rows or columns (A vs. B vs. C vs. bounds vs. relations).
	ErrDimensionMismatch = errors.New("simplex: problem dimensions mismatch")

	// ErrInvalidBounds indicates a variable with lower > upper, or a NaN bound.
	ErrInvalidBounds = errors.New("simplex: invalid variable bounds")

	// ErrBadCoefficient indicates a NaN or ±Inf entry in A, B or C.
	ErrBadCoefficient = errors.New("simplex: non-finite coefficient")

	// ErrBadRelation indicates a row relation outside {LE, GE, EQ}.
	ErrBadRelation = errors.New("simplex: unknown row relation")
)

// Relation is the relational operator of one constraint row.
type Relation int8

const (
	// LE is a ≤ row: A·x ≤ b.
	LE Relation = iota

	// GE is a ≥ row: A·x ≥ b.
	GE

	// EQ is an = row: A·x = b.
	EQ
)

// String returns the operator in source notation.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Status is the outcome of one Solve call.
type Status int8

const (
	// StatusOptimal means an optimal basic solution was found.
	StatusOptimal Status = iota

	// StatusInfeasible means Phase 1 proved the feasible region empty.
	StatusInfeasible

	// StatusUnbounded means the objective improves without limit over the
	// feasible region.
	StatusUnbounded

	// StatusIterationLimit means the pivot cap was reached before any of the
	// other outcomes; re-solving with a higher cap is the caller's call.
	StatusIterationLimit
)

// String reports the status in the conventional solver spelling.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusIterationLimit:
		return "ITERATION_LIMIT"
	default:
		return "UNKNOWN"
	}
}

// Result holds the outcome of one Solve call.
type Result struct {
	// Status classifies the outcome; X and Objective are meaningful only
	// when Status == StatusOptimal.
	Status Status

	// X is the optimal assignment for the original columns, in column order.
	// Values are rounded to 1e−9 to keep results reproducible across
	// platforms.
	X []float64

	// Objective is the minimized value of c·x.
	Objective float64

	// Iterations is the total number of pivots and bound flips performed
	// across both phases.
	Iterations int
}

package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Problem is a linear program in canonical form:
//
//	minimize    C·x
//	subject to  A·x Rel B   (row i uses Rel[i])
//	            Lower ≤ x ≤ Upper
//
// Bounds may be infinite: Lower[j] = −Inf marks a free-below variable and
// Upper[j] = +Inf an unbounded-above one; the engine consumes both natively.
// Row order is significant — it feeds the deterministic tie-breaks — and is
// preserved exactly as handed in.
type Problem struct {
	// NumVars is the number of decision variables n (columns of A).
	NumVars int

	// NumRows is the number of constraint rows m.
	NumRows int

	// A is the m×n coefficient matrix. May be nil when NumRows == 0.
	A *mat.Dense

	// B is the right-hand side, length m.
	B []float64

	// Rel holds one relation per row, length m.
	Rel []Relation

	// C is the cost vector to minimize, length n.
	C []float64

	// Lower and Upper are per-variable bounds, length n each.
	Lower, Upper []float64

	// Names are optional column labels used only for tracing; when non-nil,
	// length n.
	Names []string
}

// Validate checks the problem arrays for shape and value sanity.
//
// Errors:
//   - ErrNilProblem        on a nil receiver.
//   - ErrDimensionMismatch when array lengths or A's shape disagree.
//   - ErrInvalidBounds     when some Lower[j] > Upper[j] or a bound is NaN.
//   - ErrBadCoefficient    on NaN/±Inf entries in A, B or C.
//   - ErrBadRelation       on a relation outside {LE, GE, EQ}.
//
// Complexity: O(n·m).
func (p *Problem) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if p.NumVars < 0 || p.NumRows < 0 {
		return ErrDimensionMismatch
	}
	if len(p.C) != p.NumVars || len(p.Lower) != p.NumVars || len(p.Upper) != p.NumVars {
		return ErrDimensionMismatch
	}
	if len(p.B) != p.NumRows || len(p.Rel) != p.NumRows {
		return ErrDimensionMismatch
	}
	if p.Names != nil && len(p.Names) != p.NumVars {
		return ErrDimensionMismatch
	}
	if p.NumRows > 0 && p.NumVars > 0 {
		if p.A == nil {
			return ErrDimensionMismatch
		}
		if r, c := p.A.Dims(); r != p.NumRows || c != p.NumVars {
			return ErrDimensionMismatch
		}
	}

	for j := 0; j < p.NumVars; j++ {
		lo, hi := p.Lower[j], p.Upper[j]
		if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
			return ErrInvalidBounds
		}
		if !isFinite(p.C[j]) {
			return ErrBadCoefficient
		}
	}
	for i := 0; i < p.NumRows; i++ {
		if !isFinite(p.B[i]) {
			return ErrBadCoefficient
		}
		if p.Rel[i] != LE && p.Rel[i] != GE && p.Rel[i] != EQ {
			return ErrBadRelation
		}
		for j := 0; j < p.NumVars; j++ {
			if !isFinite(p.A.At(i, j)) {
				return ErrBadCoefficient
			}
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// round1e9 snaps v to the 1e−9 grid so that returned values are stable
// across platforms and repeated solves.
func round1e9(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// columnName labels column j for tracing: original names when provided,
// synthetic s<i>/a<i> labels for structural and artificial columns.
func (p *Problem) columnName(j int) string {
	if p.Names != nil && j < len(p.Names) {
		return p.Names[j]
	}

	return "col" + itoa(j)
}

// itoa is a minimal non-negative integer formatter for trace labels,
// avoiding strconv on the hot path.
func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}

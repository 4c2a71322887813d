package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/simplex"
)

// toProblem translates the model into the engine's canonical form:
//
//	minimize c·x  s.t.  A·x Rel b,  lower ≤ x ≤ upper
//
// Translation rules:
//   - Maximize becomes Minimize by negating the cost vector; the returned
//     objSign (−1 for Maximize, +1 otherwise) lets Solve un-negate the
//     engine's objective before it reaches the caller. objConst carries the
//     objective expression's constant term, which the engine never sees.
//   - Bounds pass through unchanged; a −Inf lower bound marks a free
//     variable, consumed natively by the engine (no x⁺−x⁻ split).
//   - Rows keep their original ≤ / ≥ / = relation and model order; slack,
//     surplus and artificial bookkeeping is the engine's job.
//
// Errors: ErrNoObjective when no objective was set. Bound validity and
// variable ownership were already enforced at build time.
//
// Complexity: O(m·n) time and space (dense matrix).
func (m *Model) toProblem() (p *simplex.Problem, objSign, objConst float64, err error) {
	if m.obj == nil {
		return nil, 0, 0, ErrNoObjective
	}

	n := len(m.vars)
	rows := len(m.cons)

	p = &simplex.Problem{
		NumVars: n,
		NumRows: rows,
		B:       make([]float64, rows),
		Rel:     make([]simplex.Relation, rows),
		C:       make([]float64, n),
		Lower:   make([]float64, n),
		Upper:   make([]float64, n),
		Names:   make([]string, n),
	}
	for j, mv := range m.vars {
		p.Lower[j] = mv.lower
		p.Upper[j] = mv.upper
		p.Names[j] = mv.v.name
	}

	// Cost vector; MAX flips to MIN here and nowhere else.
	objSign = 1
	if m.obj.Dir == Maximize {
		objSign = -1
	}
	objConst = m.obj.Expr.constant
	for v, coef := range m.obj.Expr.terms {
		p.C[v.id] = objSign * coef
	}

	if rows > 0 && n > 0 {
		p.A = mat.NewDense(rows, n, nil)
	}
	for i, c := range m.cons {
		// Constraints are stored canonically: zero-constant expression on
		// the left, folded scalar on the right.
		p.B[i] = c.rhs
		p.Rel[i] = c.rel
		for v, coef := range c.expr.terms {
			p.A.Set(i, v.id, coef)
		}
	}

	return p, objSign, objConst, nil
}

// round1e9 snaps v to the 1e−9 grid, matching the engine's output policy.
func round1e9(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

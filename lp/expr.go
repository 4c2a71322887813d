package lp

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// coefZeroTol prunes coefficients that cancel to (numerical) zero during
// merging. Dropping such terms never changes an evaluated value beyond
// double-precision noise, and keeps merged expressions from accumulating
// dead entries with a stale sign.
const coefZeroTol = 1e-12

// LinExpr is an immutable linear expression: a mapping from variables to
// real coefficients plus a constant term.
//
// All combinators are pure: they allocate and return a new expression and
// never mutate the receiver, the argument, or any Var. The zero LinExpr is
// the constant 0 and is ready to use.
type LinExpr struct {
	terms    map[Var]float64
	constant float64
}

// Term builds the single-term expression coef·v.
func Term(v Var, coef float64) LinExpr {
	if coef == 0 {
		return LinExpr{}
	}

	return LinExpr{terms: map[Var]float64{v: coef}}
}

// Const builds the constant expression c.
func Const(c float64) LinExpr {
	return LinExpr{constant: c}
}

// Sum adds any number of expressions together.
func Sum(exprs ...LinExpr) LinExpr {
	out := LinExpr{}
	for _, e := range exprs {
		out = out.Plus(e)
	}

	return out
}

// clone copies the receiver's term map so combinators can edit freely.
func (e LinExpr) clone() LinExpr {
	out := LinExpr{constant: e.constant}
	if len(e.terms) > 0 {
		out.terms = make(map[Var]float64, len(e.terms))
		for v, c := range e.terms {
			out.terms[v] = c
		}
	}

	return out
}

// merge folds coef·v into the (already cloned) receiver, pruning cancelled
// coefficients instead of storing a dead term.
func (e *LinExpr) merge(v Var, coef float64) {
	if e.terms == nil {
		e.terms = make(map[Var]float64, 1)
	}
	sum := e.terms[v] + coef
	if math.Abs(sum) <= coefZeroTol {
		delete(e.terms, v)

		return
	}
	e.terms[v] = sum
}

// Plus returns e + o.
func (e LinExpr) Plus(o LinExpr) LinExpr {
	out := e.clone()
	out.constant += o.constant
	for v, c := range o.terms {
		out.merge(v, c)
	}

	return out
}

// Minus returns e − o.
func (e LinExpr) Minus(o LinExpr) LinExpr {
	out := e.clone()
	out.constant -= o.constant
	for v, c := range o.terms {
		out.merge(v, -c)
	}

	return out
}

// Scale returns k·e, scaling every coefficient and the constant.
func (e LinExpr) Scale(k float64) LinExpr {
	if k == 0 {
		return LinExpr{}
	}
	out := LinExpr{constant: e.constant * k}
	if len(e.terms) > 0 {
		out.terms = make(map[Var]float64, len(e.terms))
		for v, c := range e.terms {
			out.terms[v] = c * k
		}
	}

	return out
}

// Neg returns −e.
func (e LinExpr) Neg() LinExpr {
	return e.Scale(-1)
}

// AddTerm returns e + coef·v.
func (e LinExpr) AddTerm(v Var, coef float64) LinExpr {
	out := e.clone()
	out.merge(v, coef)

	return out
}

// AddConst returns e + c.
func (e LinExpr) AddConst(c float64) LinExpr {
	out := e.clone()
	out.constant += c

	return out
}

// Coef returns the coefficient of v (0 when absent).
func (e LinExpr) Coef(v Var) float64 { return e.terms[v] }

// Constant returns the constant term.
func (e LinExpr) Constant() float64 { return e.constant }

// NumTerms returns the number of live (non-cancelled) variable terms.
func (e LinExpr) NumTerms() int { return len(e.terms) }

// TermPair is one (variable, coefficient) entry of an expression.
type TermPair struct {
	Var  Var
	Coef float64
}

// Terms lists the expression's entries sorted by variable ID, so iteration
// order is deterministic regardless of map layout.
func (e LinExpr) Terms() []TermPair {
	out := make([]TermPair, 0, len(e.terms))
	for v, c := range e.terms {
		out = append(out, TermPair{Var: v, Coef: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var.id < out[j].Var.id })

	return out
}

// Eval computes coefficient·value sum + constant at the given assignment.
// Variables missing from the assignment evaluate as 0.
func (e LinExpr) Eval(assign map[Var]float64) float64 {
	out := e.constant
	for v, c := range e.terms {
		out += c * assign[v]
	}

	return out
}

// String renders the expression in source notation, terms ordered by ID.
func (e LinExpr) String() string {
	var sb strings.Builder
	for _, tp := range e.Terms() {
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%g*%s", tp.Coef, tp.Var.name)
	}
	if e.constant != 0 || sb.Len() == 0 {
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%g", e.constant)
	}

	return sb.String()
}

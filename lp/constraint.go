package lp

import (
	"fmt"

	"github.com/katalvlaran/linprog/simplex"
)

// Constraint is a relation between a linear expression and a scalar.
//
// Storage is canonical: all variable terms on the left (with the left side's
// constant folded into the right-hand scalar), so `2x + 3y + 5 ≤ 20` and
// `2x + 3y ≤ 15` are the same Constraint. Relation and right-hand side are
// fixed at construction.
type Constraint struct {
	expr LinExpr
	rel  simplex.Relation
	rhs  float64
	name string
}

// newConstraint folds e's constant into rhs and strips it from the stored
// expression.
func newConstraint(e LinExpr, rel simplex.Relation, rhs float64) Constraint {
	c := Constraint{rel: rel, rhs: rhs - e.constant}
	c.expr = e.clone()
	c.expr.constant = 0

	return c
}

// LessEq builds the constraint e ≤ rhs.
func (e LinExpr) LessEq(rhs float64) Constraint {
	return newConstraint(e, simplex.LE, rhs)
}

// GreaterEq builds the constraint e ≥ rhs.
func (e LinExpr) GreaterEq(rhs float64) Constraint {
	return newConstraint(e, simplex.GE, rhs)
}

// Eq builds the constraint e = rhs.
func (e LinExpr) Eq(rhs float64) Constraint {
	return newConstraint(e, simplex.EQ, rhs)
}

// LessEqExpr builds e ≤ o by moving every variable term left.
func (e LinExpr) LessEqExpr(o LinExpr) Constraint {
	return e.Minus(o).LessEq(0)
}

// GreaterEqExpr builds e ≥ o by moving every variable term left.
func (e LinExpr) GreaterEqExpr(o LinExpr) Constraint {
	return e.Minus(o).GreaterEq(0)
}

// EqExpr builds e = o by moving every variable term left.
func (e LinExpr) EqExpr(o LinExpr) Constraint {
	return e.Minus(o).Eq(0)
}

// WithName returns a copy of the constraint carrying a diagnostic name.
func (c Constraint) WithName(name string) Constraint {
	c.name = name

	return c
}

// Expr returns the canonical left-hand expression (zero constant).
func (c Constraint) Expr() LinExpr { return c.expr }

// Rel returns the relational operator.
func (c Constraint) Rel() simplex.Relation { return c.rel }

// RHS returns the canonical right-hand scalar.
func (c Constraint) RHS() float64 { return c.rhs }

// Name returns the optional diagnostic name ("" when unset).
func (c Constraint) Name() string { return c.name }

func (c Constraint) String() string {
	lhs := c.expr.String()
	if c.name != "" {
		return fmt.Sprintf("%s: %s %s %g", c.name, lhs, c.rel, c.rhs)
	}

	return fmt.Sprintf("%s %s %g", lhs, c.rel, c.rhs)
}

// Package lp provides the symbolic layer of linprog: decision variables
// with bounds, immutable linear expressions, relational constraints and the
// Model builder that translates everything into the canonical form consumed
// by package simplex.
//
// Building blocks:
//
//   - Var — a handle to a model-owned decision variable. Identity is a
//     small integer index assigned at AddVariable time; bounds default to
//     [0, +Inf) and may be widened to (−Inf, +Inf) for free variables.
//   - LinExpr — an immutable value mapping variables to coefficients plus a
//     constant. Combinators (Plus, Minus, Scale, Neg, …) always return a
//     fresh expression; building one never mutates a Var or another
//     expression.
//   - Constraint — built from an expression with LessEq / GreaterEq / Eq
//     (scalar right side) or the …Expr variants (expression right side).
//     Construction normalizes to "all variable terms left, all constants
//     right", so downstream consumers see one canonical form.
//   - Model — insertion-ordered variables and constraints plus exactly one
//     objective; Solve translates and runs the simplex engine without
//     mutating the model, so repeated solves are safe and identical.
//
// Construction errors (duplicate names, foreign variables, inverted bounds)
// surface immediately at the offending call and leave the model unchanged.
// Solve-time outcomes — infeasible, unbounded, iteration limit — are Status
// values on the returned Solution, not errors.
//
// Variables declared but never referenced by any constraint or the objective
// still appear in the Solution, fixed at a finite point of their own bound
// interval: the lower bound when finite, else the upper bound when finite,
// else 0.
package lp

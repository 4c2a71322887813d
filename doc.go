// Package linprog is a pure-Go linear programming toolkit: build a model
// symbolically, or parse one from Xpress-like text, and solve it with a
// bounded-variable two-phase simplex engine.
//
// 🚀 What is linprog?
//
//	A small, deterministic LP stack split into focused packages:
//		• lp      — symbolic layer: variables with bounds, immutable linear
//		            expressions, ≤ / ≥ / = constraints, the Model builder and
//		            its standard-form translation
//		• simplex — the engine: canonical problem arrays, two-phase
//		            bounded-variable simplex with deterministic tie-breaking
//		• mosel   — textual front-end: declarations block + constraint and
//		            objective lines → *lp.Model
//		• logger  — zerolog-backed tracing shared by the solver
//
// Quick start:
//
//	m := lp.NewModel("diet")
//	x, _ := m.AddVariable("x")
//	y, _ := m.AddVariableBounded("y", 0, 100)
//	_ = m.AddConstraint(lp.Sum(lp.Term(x, 2), lp.Term(y, 3)).LessEq(60))
//	_ = m.AddConstraint(lp.Term(x, 1).Minus(lp.Term(y, 1)).GreaterEq(10))
//	_ = m.SetObjective(lp.Sum(lp.Term(x, 3), lp.Term(y, 4)), lp.Maximize)
//	sol, err := m.Solve()
//
// Solve outcomes (optimal / infeasible / unbounded / iteration limit) are
// values on the returned Solution, not errors: branch on sol.Status.
//
// Every solve is self-contained and deterministic; distinct Models may be
// solved concurrently from separate goroutines.
package linprog

package lp

import (
	"github.com/katalvlaran/linprog/simplex"
)

// Solution is the caller-facing outcome of one Solve call.
//
// Values and Objective are populated only for StatusOptimal; the objective
// is signed per the model's original direction (a maximized model reports
// the maximum, not the engine's internal minimum). A Solution is a snapshot:
// it is never mutated after Solve returns.
type Solution struct {
	// Status is one of OPTIMAL, INFEASIBLE, UNBOUNDED, ITERATION_LIMIT.
	Status simplex.Status

	// Objective is the objective value at the optimum, in the model's
	// original direction, including the objective expression's constant.
	Objective float64

	// Values maps every declared variable name to its value at the optimum,
	// unreferenced variables included (fixed at a finite point of their own
	// bound interval).
	Values map[string]float64

	// Iterations is the engine's pivot count across both phases.
	Iterations int
}

// Value returns the assigned value of v (0 when the solution holds none).
func (s Solution) Value(v Var) float64 { return s.Values[v.name] }

// Assignment re-keys Values by Var handle, for use with LinExpr.Eval.
func (s Solution) Assignment(m *Model) map[Var]float64 {
	out := make(map[Var]float64, len(s.Values))
	for _, v := range m.Variables() {
		out[v] = s.Values[v.name]
	}

	return out
}

// Package lp - solve orchestration: translate the symbolic model to
// canonical form, run the simplex engine, and map the result back onto
// variable names.

package lp

import (
	"github.com/katalvlaran/linprog/simplex"
)

// Solve translates the model and runs bounded-variable two-phase simplex.
//
// Contracts:
//   - The model is read, never mutated: repeated Solve calls on an
//     unchanged model return identical Solutions.
//   - opts are forwarded to the engine (epsilon, iteration cap, context,
//     verbosity).
//
// Returns:
//   - (Solution, nil) for every algorithmic outcome — branch on
//     Solution.Status; INFEASIBLE / UNBOUNDED / ITERATION_LIMIT are
//     expected results, not failures.
//   - (zero, error) only for invalid models (ErrNoObjective) or engine
//     misuse/cancellation.
//
// Complexity: translation O(m·n); solving per the engine.
func (m *Model) Solve(opts ...simplex.Option) (Solution, error) {
	// Stage 1 — standard-form translation.
	p, objSign, objConst, err := m.toProblem()
	if err != nil {
		return Solution{}, err
	}

	// Stage 2 — engine run.
	res, err := simplex.Solve(p, opts...)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Status:     res.Status,
		Iterations: res.Iterations,
	}
	if res.Status != simplex.StatusOptimal {
		return sol, nil
	}

	// Stage 3 — map the assignment back onto names and undo the MAX→MIN
	// sign flip recorded by the translator.
	sol.Values = make(map[string]float64, len(m.vars))
	for j, mv := range m.vars {
		sol.Values[mv.v.name] = res.X[j]
	}
	sol.Objective = round1e9(objSign*res.Objective + objConst)

	return sol, nil
}

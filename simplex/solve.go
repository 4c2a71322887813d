// Package simplex - two-phase driver for the bounded-variable engine.
//
// Solve is the single entry point: validate the canonical problem, seed the
// Phase-0 tableau, run Phase 1 until the artificial mass is zero (or proven
// positive ⇒ infeasible), bar the artificials, then run Phase 2 on the true
// cost vector.

package simplex

import (
	"context"

	"github.com/katalvlaran/linprog/logger"
)

// Solve runs bounded-variable two-phase simplex on p.
//
// Contracts:
//   - p must pass Validate; rows keep their original order and relations.
//   - The engine always minimizes; callers wanting MAX negate C and the
//     reported objective themselves.
//
// Returns:
//   - Result with StatusOptimal (X + Objective populated), StatusInfeasible,
//     StatusUnbounded or StatusIterationLimit.
//   - error only on malformed problems or context cancellation; solve-time
//     outcomes are Status values, never errors.
//
// Determinism: identical inputs and options produce identical Results; all
// tie-breaks are lowest-index.
//
// Complexity: O(iterations · m · (n+m)) time, O(m·(n+m)) space.
func Solve(p *Problem, opts ...Option) (Result, error) {
	// Stage 1 — validation and option resolution.
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)
	ctx := o.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	// Stage 2 — Phase-0 setup.
	t := newTableau(p, o)
	t.log = logger.Logger().With().Str("component", "simplex").Logger()
	t.maxIter = o.MaxIterations
	if t.maxIter == 0 {
		t.maxIter = iterationCapFactor * (t.total + t.m + 1)
	}

	// Stage 3 — Phase 1: minimize the artificial mass.
	if t.hasArtificials() {
		for j := 0; j < t.total; j++ {
			if t.kind[j] == colArtificial {
				t.cost[j] = 1
			} else {
				t.cost[j] = 0
			}
		}
		if t.verbose {
			t.log.Debug().Float64("infeasibility", t.infeasibility()).Msg("phase 1 start")
		}

		out, err := t.runPhase(ctx)
		if err != nil {
			return Result{}, err
		}
		switch out {
		case phaseIterLimit:
			return Result{Status: StatusIterationLimit, Iterations: t.iter}, nil
		case phaseUnbounded, phaseConverged:
			// The Phase-1 objective is bounded below by zero, so an
			// "unbounded" outcome can only be numerical noise; both paths
			// are decided by the remaining artificial mass.
			if t.infeasibility() > t.feasTol {
				return Result{Status: StatusInfeasible, Iterations: t.iter}, nil
			}
		}

		t.retireArtificials()
	}

	// Stage 4 — Phase 2: minimize the true cost.
	for j := 0; j < t.total; j++ {
		if j < t.n {
			t.cost[j] = p.C[j]
		} else {
			t.cost[j] = 0
		}
	}
	if t.verbose {
		t.log.Debug().Int("iterations", t.iter).Msg("phase 2 start")
	}

	out, err := t.runPhase(ctx)
	if err != nil {
		return Result{}, err
	}
	switch out {
	case phaseUnbounded:
		return Result{Status: StatusUnbounded, Iterations: t.iter}, nil
	case phaseIterLimit:
		return Result{Status: StatusIterationLimit, Iterations: t.iter}, nil
	}

	// Stage 5 — extraction: nonbasic columns sit at their recorded bound,
	// basics read off the tableau; everything snapped to the 1e−9 grid.
	x := t.values()
	obj := 0.0
	for j := 0; j < t.n; j++ {
		obj += p.C[j] * x[j]
	}

	return Result{
		Status:     StatusOptimal,
		X:          x,
		Objective:  round1e9(obj),
		Iterations: t.iter,
	}, nil
}

// runPhase iterates the pivot rule until no entering column improves the
// current cost vector, a direction proves unbounded, the shared iteration
// cap trips, or ctx fires.
func (t *tableau) runPhase(ctx context.Context) (phaseOutcome, error) {
	cB := make([]float64, t.m)

	for {
		if err := ctx.Err(); err != nil {
			return phaseCancelled, err
		}
		if t.iter >= t.maxIter {
			return phaseIterLimit, nil
		}

		for i := 0; i < t.m; i++ {
			cB[i] = t.cost[t.basic[i]]
		}

		q, dir, ok := t.chooseEntering(cB)
		if !ok {
			return phaseConverged, nil
		}

		theta, row, toUpper, flip := t.ratioTest(q, dir)
		switch {
		case flip:
			t.boundFlip(q, dir, theta)
		case row < 0:
			return phaseUnbounded, nil
		default:
			t.pivot(q, dir, theta, row, toUpper)
		}
	}
}

// retireArtificials prepares the Phase-1 basis for Phase 2: basic artificials
// (all at zero now) are pivoted out wherever their row has a usable nonbasic
// column, and every artificial is clamped to [0,0] and barred so it can
// neither re-enter nor drift.
//
// A row whose artificial cannot be pivoted out is linearly dependent on the
// others; its artificial stays basic at zero, pinned by the clamp.
func (t *tableau) retireArtificials() {
	for i := 0; i < t.m; i++ {
		b := t.basic[i]
		if t.kind[b] != colArtificial {
			continue
		}
		for j := 0; j < t.total; j++ {
			if t.inBasis[j] || t.barred[j] || t.kind[j] == colArtificial {
				continue
			}
			if a := t.T.At(i, j); a > t.eps || a < -t.eps {
				t.pivot(j, 1, 0, i, false)
				break
			}
		}
	}

	for j := 0; j < t.total; j++ {
		if t.kind[j] == colArtificial {
			t.lower[j] = 0
			t.upper[j] = 0
			t.barred[j] = true
		}
	}
}

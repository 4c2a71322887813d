// Package simplex implements a bounded-variable two-phase primal simplex
// engine for linear programs in canonical form:
//
//	minimize    c·x
//	subject to  A·x {≤,≥,=} b     (one relation per row)
//	            lower ≤ x ≤ upper (per-variable; ±Inf allowed)
//
// The engine owns all slack/surplus and artificial bookkeeping: rows arrive
// in their original ≤ / ≥ / = form and free variables arrive with a −Inf
// lower bound — nothing is split or pre-transformed by callers.
//
// Phases:
//
//   - Phase 1 minimizes the sum of artificial variables seeded on rows whose
//     initial residual cannot be covered by the row's structural column.
//     A positive Phase-1 optimum proves the program infeasible.
//   - Phase 2 minimizes the true cost vector with artificial columns barred
//     from the basis.
//
// Pivot rule (both phases): entering column by most-negative reduced cost,
// ties broken by lowest column index; leaving row by minimum ratio over
// basic-to-lower, basic-to-upper and entering-bound-flip limits, row ties
// broken by lowest row index. The tie-breaks make every solve deterministic;
// full lexicographic anti-cycling is intentionally not implemented — a
// shared iteration cap turns residual cycling into StatusIterationLimit.
//
// Outcomes (optimal / infeasible / unbounded / iteration limit) are Status
// values on Result, not errors. Errors are reserved for malformed Problems
// and context cancellation.
//
// All engine state is local to one Solve call: distinct Problems may be
// solved concurrently from separate goroutines.
package simplex

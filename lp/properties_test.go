package lp_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// boxLP is a randomly generated LP over three box-bounded variables and two
// ≤ rows with non-negative right-hand sides. The origin is always feasible
// and the box keeps every direction bounded, so the optimum must exist.
type boxLP struct {
	A   [6]int // two rows, three columns, entries in [−5, 5]
	B   [2]int // right-hand sides in [0, 50]
	C   [3]int // objective coefficients in [−5, 5]
	Dir lp.Direction
	HiX int // shared upper bound in [1, 10]
}

// build materializes the model.
func (g boxLP) build(t *testing.T) (*lp.Model, []lp.Var) {
	t.Helper()
	m := lp.NewModel("property")
	vars, err := m.AddVariables(3, "v", 0, float64(g.HiX))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		row := lp.LinExpr{}
		for j := 0; j < 3; j++ {
			row = row.AddTerm(vars[j], float64(g.A[i*3+j]))
		}
		if err = m.AddConstraint(row.LessEq(float64(g.B[i]))); err != nil {
			t.Fatal(err)
		}
	}

	obj := lp.LinExpr{}
	for j := 0; j < 3; j++ {
		obj = obj.AddTerm(vars[j], float64(g.C[j]))
	}
	if err = m.SetObjective(obj, g.Dir); err != nil {
		t.Fatal(err)
	}

	return m, vars
}

// genBoxLP draws one random instance.
func genBoxLP() gopter.Gen {
	small := gen.IntRange(-5, 5)

	return gopter.CombineGens(
		gen.SliceOfN(6, small),
		gen.SliceOfN(2, gen.IntRange(0, 50)),
		gen.SliceOfN(3, small),
		gen.Bool(),
		gen.IntRange(1, 10),
	).Map(func(vals []interface{}) boxLP {
		var g boxLP
		copy(g.A[:], vals[0].([]int))
		copy(g.B[:], vals[1].([]int))
		copy(g.C[:], vals[2].([]int))
		if vals[3].(bool) {
			g.Dir = lp.Maximize
		} else {
			g.Dir = lp.Minimize
		}
		g.HiX = vals[4].(int)

		return g
	})
}

// TestSolveProperties checks, over random feasible bounded instances, that
// the reported optimum is a feasible point, that the objective matches its
// own assignment, and that repeated solves agree exactly.
func TestSolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(42) // reproducible runs

	properties := gopter.NewProperties(parameters)

	properties.Property("optimum is feasible and consistent", prop.ForAll(
		func(g boxLP) bool {
			m, vars := g.build(t)
			sol, err := m.Solve()
			if err != nil || sol.Status != simplex.StatusOptimal {
				return false
			}

			assign := sol.Assignment(m)
			for _, v := range vars {
				x := assign[v]
				if x < -1e-6 || x > float64(g.HiX)+1e-6 {
					return false
				}
			}
			for _, c := range m.Constraints() {
				if c.Expr().Eval(assign) > c.RHS()+1e-6 {
					return false
				}
			}
			obj, _ := m.Objective()

			return math.Abs(obj.Expr.Eval(assign)-sol.Objective) <= 1e-6
		},
		genBoxLP(),
	))

	properties.Property("repeated solves are identical", prop.ForAll(
		func(g boxLP) bool {
			m, _ := g.build(t)
			first, err := m.Solve()
			if err != nil {
				return false
			}
			second, err := m.Solve()
			if err != nil {
				return false
			}
			if first.Status != second.Status || first.Objective != second.Objective {
				return false
			}
			for name, v := range first.Values {
				if second.Values[name] != v {
					return false
				}
			}

			return first.Iterations == second.Iterations
		},
		genBoxLP(),
	))

	properties.Property("optimum beats the origin and the box corner", prop.ForAll(
		func(g boxLP) bool {
			m, _ := g.build(t)
			sol, err := m.Solve()
			if err != nil || sol.Status != simplex.StatusOptimal {
				return false
			}

			// The origin is always feasible, so the optimum can never lose
			// to it.
			obj, _ := m.Objective()
			atOrigin := obj.Expr.Eval(map[lp.Var]float64{})
			if g.Dir == lp.Maximize {
				return sol.Objective >= atOrigin-1e-6
			}

			return sol.Objective <= atOrigin+1e-6
		},
		genBoxLP(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

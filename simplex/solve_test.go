package simplex_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/simplex"
)

// problem assembles a canonical Problem from flat row-major data.
func problem(m, n int, a, b []float64, rel []simplex.Relation, c, lo, hi []float64) *simplex.Problem {
	p := &simplex.Problem{
		NumVars: n,
		NumRows: m,
		B:       b,
		Rel:     rel,
		C:       c,
		Lower:   lo,
		Upper:   hi,
	}
	if m > 0 && n > 0 {
		p.A = mat.NewDense(m, n, a)
	}

	return p
}

// defaultBounds returns [0, +Inf) bounds for n columns.
func defaultBounds(n int) (lo, hi []float64) {
	lo = make([]float64, n)
	hi = make([]float64, n)
	for j := range hi {
		hi[j] = math.Inf(1)
	}

	return lo, hi
}

// SolveSuite exercises the two-phase engine across all four outcomes.
type SolveSuite struct {
	suite.Suite
}

// TestBoxOnly verifies that a row-free problem is solved by bound flips
// alone: min −x over x ∈ [1,5] rests x at its upper bound.
func (s *SolveSuite) TestBoxOnly() {
	p := problem(0, 1, nil, nil, nil,
		[]float64{-1}, []float64{1}, []float64{5})

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.Equal(s.T(), []float64{5}, res.X)
	require.Equal(s.T(), -5.0, res.Objective)
}

// TestEmptyProblem verifies that zero variables and zero rows is a legal
// problem with objective 0.
func (s *SolveSuite) TestEmptyProblem() {
	p := problem(0, 0, nil, nil, nil, nil, nil, nil)

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.Empty(s.T(), res.X)
	require.Equal(s.T(), 0.0, res.Objective)
}

// TestMixedRelations runs min −3x−4y subject to 2x+3y ≤ 60, x−y ≥ 10 with
// y capped at 100. The ≥ row forces a Phase-1 artificial; the optimum sits
// at (30, 0).
func (s *SolveSuite) TestMixedRelations() {
	p := problem(2, 2,
		[]float64{2, 3, 1, -1},
		[]float64{60, 10},
		[]simplex.Relation{simplex.LE, simplex.GE},
		[]float64{-3, -4},
		[]float64{0, 0},
		[]float64{math.Inf(1), 100})

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.Equal(s.T(), []float64{30, 0}, res.X)
	require.Equal(s.T(), -90.0, res.Objective)
}

// TestEqualityRow runs min x subject to x+y = 100 and −x+2y ≤ 50; the
// equality binds through an artificial and the optimum is (50, 50).
func (s *SolveSuite) TestEqualityRow() {
	lo, hi := defaultBounds(2)
	p := problem(2, 2,
		[]float64{1, 1, -1, 2},
		[]float64{100, 50},
		[]simplex.Relation{simplex.EQ, simplex.LE},
		[]float64{1, 0}, lo, hi)

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.Equal(s.T(), []float64{50, 50}, res.X)
	require.Equal(s.T(), 50.0, res.Objective)
}

// TestRedundantEquality feeds the same equality twice; the dependent row's
// artificial stays pinned at zero and the solve still reaches the optimum.
func (s *SolveSuite) TestRedundantEquality() {
	lo, hi := defaultBounds(2)
	p := problem(2, 2,
		[]float64{1, 1, 1, 1},
		[]float64{10, 10},
		[]simplex.Relation{simplex.EQ, simplex.EQ},
		[]float64{1, 0}, lo, hi)

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.Equal(s.T(), []float64{0, 10}, res.X)
	require.Equal(s.T(), 0.0, res.Objective)
}

// TestInfeasible verifies that x ≤ −1 over x ≥ 0 is reported as
// INFEASIBLE, not as an error.
func (s *SolveSuite) TestInfeasible() {
	lo, hi := defaultBounds(1)
	p := problem(1, 1,
		[]float64{1}, []float64{-1},
		[]simplex.Relation{simplex.LE},
		[]float64{0}, lo, hi)

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusInfeasible, res.Status)
	require.Nil(s.T(), res.X)
}

// TestUnbounded verifies that min −x over x ∈ [0, +Inf) with no rows is
// reported as UNBOUNDED.
func (s *SolveSuite) TestUnbounded() {
	lo, hi := defaultBounds(1)
	p := problem(0, 1, nil, nil, nil, []float64{-1}, lo, hi)

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusUnbounded, res.Status)
}

// TestFreeVariable verifies that a free column enters downhill: min x
// subject to x ≥ −7 with x unbounded in both directions lands on −7.
func (s *SolveSuite) TestFreeVariable() {
	p := problem(1, 1,
		[]float64{1}, []float64{-7},
		[]simplex.Relation{simplex.GE},
		[]float64{1},
		[]float64{math.Inf(-1)},
		[]float64{math.Inf(1)})

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.Equal(s.T(), []float64{-7}, res.X)
	require.Equal(s.T(), -7.0, res.Objective)
}

// TestBoundFlip runs min −x−2y subject to x+y ≤ 10 with y ∈ [0,6]: the
// ratio test must prefer flipping y to its upper bound over pivoting, then
// bring x in up to the row. Optimum (4, 6).
func (s *SolveSuite) TestBoundFlip() {
	p := problem(1, 2,
		[]float64{1, 1}, []float64{10},
		[]simplex.Relation{simplex.LE},
		[]float64{-1, -2},
		[]float64{0, 0},
		[]float64{math.Inf(1), 6})

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.Equal(s.T(), []float64{4, 6}, res.X)
	require.Equal(s.T(), -16.0, res.Objective)
}

// TestBasicGrowsThroughFlip runs min −x subject to x−y ≤ 4 with y ∈ [0,3]:
// after x becomes basic, raising y relaxes the row without any leaving
// candidate, so y flips to 3 and x settles at 7.
func (s *SolveSuite) TestBasicGrowsThroughFlip() {
	p := problem(1, 2,
		[]float64{1, -1}, []float64{4},
		[]simplex.Relation{simplex.LE},
		[]float64{-1, 0},
		[]float64{0, 0},
		[]float64{math.Inf(1), 3})

	res, err := simplex.Solve(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusOptimal, res.Status)
	require.Equal(s.T(), []float64{7, 3}, res.X)
	require.Equal(s.T(), -7.0, res.Objective)
}

// TestIterationLimit caps the solve at a single pivot on a problem that
// needs several and expects ITERATION_LIMIT, not an error.
func (s *SolveSuite) TestIterationLimit() {
	p := problem(2, 2,
		[]float64{2, 3, 1, -1},
		[]float64{60, 10},
		[]simplex.Relation{simplex.LE, simplex.GE},
		[]float64{-3, -4},
		[]float64{0, 0},
		[]float64{math.Inf(1), 100})

	res, err := simplex.Solve(p, simplex.WithMaxIterations(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.StatusIterationLimit, res.Status)
	require.Equal(s.T(), 1, res.Iterations)
}

// TestDeterminism solves the same problem twice and demands bit-identical
// Results, pivots included.
func (s *SolveSuite) TestDeterminism() {
	build := func() *simplex.Problem {
		return problem(2, 2,
			[]float64{2, 3, 1, -1},
			[]float64{60, 10},
			[]simplex.Relation{simplex.LE, simplex.GE},
			[]float64{-3, -4},
			[]float64{0, 0},
			[]float64{math.Inf(1), 100})
	}

	first, err := simplex.Solve(build())
	require.NoError(s.T(), err)
	second, err := simplex.Solve(build())
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestCancelledContext verifies that a pre-cancelled context aborts the
// solve with ctx.Err() instead of a Status.
func (s *SolveSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lo, hi := defaultBounds(1)
	p := problem(1, 1,
		[]float64{1}, []float64{4},
		[]simplex.Relation{simplex.LE},
		[]float64{-1}, lo, hi)

	_, err := simplex.Solve(p, simplex.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestValidate walks the Problem validation failure modes.
func TestValidate(t *testing.T) {
	lo, hi := defaultBounds(1)

	t.Run("nil problem", func(t *testing.T) {
		_, err := simplex.Solve(nil)
		require.ErrorIs(t, err, simplex.ErrNilProblem)
	})

	t.Run("cost length mismatch", func(t *testing.T) {
		p := problem(0, 1, nil, nil, nil, []float64{1, 2}, lo, hi)
		require.ErrorIs(t, p.Validate(), simplex.ErrDimensionMismatch)
	})

	t.Run("matrix shape mismatch", func(t *testing.T) {
		p := problem(1, 1, []float64{1}, []float64{1},
			[]simplex.Relation{simplex.LE}, []float64{0}, lo, hi)
		p.A = mat.NewDense(1, 2, []float64{1, 2})
		require.ErrorIs(t, p.Validate(), simplex.ErrDimensionMismatch)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		p := problem(0, 1, nil, nil, nil, []float64{0}, []float64{3}, []float64{1})
		require.ErrorIs(t, p.Validate(), simplex.ErrInvalidBounds)
	})

	t.Run("NaN bound", func(t *testing.T) {
		p := problem(0, 1, nil, nil, nil, []float64{0}, []float64{math.NaN()}, []float64{1})
		require.ErrorIs(t, p.Validate(), simplex.ErrInvalidBounds)
	})

	t.Run("non-finite cost", func(t *testing.T) {
		p := problem(0, 1, nil, nil, nil, []float64{math.Inf(1)}, lo, hi)
		require.ErrorIs(t, p.Validate(), simplex.ErrBadCoefficient)
	})

	t.Run("NaN matrix entry", func(t *testing.T) {
		p := problem(1, 1, []float64{math.NaN()}, []float64{1},
			[]simplex.Relation{simplex.LE}, []float64{0}, lo, hi)
		require.ErrorIs(t, p.Validate(), simplex.ErrBadCoefficient)
	})

	t.Run("unknown relation", func(t *testing.T) {
		p := problem(1, 1, []float64{1}, []float64{1},
			[]simplex.Relation{simplex.Relation(9)}, []float64{0}, lo, hi)
		require.ErrorIs(t, p.Validate(), simplex.ErrBadRelation)
	})
}

// TestOptionPanics pins the documented programmer-error panics.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { simplex.WithEpsilon(-1) })
	require.Panics(t, func() { simplex.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { simplex.WithMaxIterations(-1) })
	require.Panics(t, func() { simplex.WithContext(nil) })
}

// BenchmarkSolve measures a small dense solve end to end.
func BenchmarkSolve(b *testing.B) {
	p := problem(2, 2,
		[]float64{2, 3, 1, -1},
		[]float64{60, 10},
		[]simplex.Relation{simplex.LE, simplex.GE},
		[]float64{-3, -4},
		[]float64{0, 0},
		[]float64{math.Inf(1), 100})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(p); err != nil {
			b.Fatal(err)
		}
	}
}

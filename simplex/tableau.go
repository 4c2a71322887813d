package simplex

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// colKind classifies a tableau column for tracing and bookkeeping.
type colKind int8

const (
	colOriginal colKind = iota
	colStructural
	colArtificial
)

// tableau is the entire mutable state of one Solve call.
//
// Layout: columns [0,n) are the original variables, then one structural
// (slack/surplus) column per inequality row, then one artificial column per
// row that needed one. The working matrix T is B⁻¹·A under the current
// basis; because setup scales rows so every initial basic column is a unit
// column, T starts equal to the (scaled) extended matrix and B = I.
//
// Value bookkeeping: rhsB[i] is the current value of the basic variable of
// row i, maintained directly through pivot/bound-flip movements; xval[j] is
// the resting value of every nonbasic column (always one of its bounds, or 0
// for a free column).
type tableau struct {
	m     int // constraint rows
	n     int // original columns
	total int // all columns

	T    *mat.Dense // m×total; nil when m == 0
	rhsB []float64  // length m

	basic   []int  // column basic in row i
	inBasis []bool // length total
	atUpper []bool // nonbasic resting side; false ⇒ lower (or 0 for free)
	xval    []float64

	lower, upper []float64 // per-column, length total
	cost         []float64 // current phase cost, length total

	kind   []colKind
	barred []bool // columns that may never (re-)enter the basis

	eps     float64
	feasTol float64 // eps scaled by max |b|
	iter    int
	maxIter int

	verbose bool
	log     zerolog.Logger
	labels  []string
}

// phaseOutcome is the internal result of one pivoting loop.
type phaseOutcome int8

const (
	phaseConverged phaseOutcome = iota
	phaseUnbounded
	phaseIterLimit
	phaseCancelled
)

// finiteStart picks the initial resting value for a nonbasic column:
// lower bound when finite, else upper bound when finite, else 0.
func finiteStart(lo, hi float64) (v float64, atUpper bool) {
	switch {
	case !math.IsInf(lo, -1):
		return lo, false
	case !math.IsInf(hi, 1):
		return hi, true
	default:
		return 0, false
	}
}

// newTableau builds the Phase-0 state: structural columns, row scaling,
// artificial seeding and the identity starting basis.
//
// Per row, with residual rᵢ = bᵢ − Σⱼ Aᵢⱼ·xⱼ at the initial resting point:
//   - ≤ row, rᵢ ≥ 0: slack (+1) basic at rᵢ.
//   - ≤ row, rᵢ < 0: row negated, slack stays nonbasic, artificial basic at −rᵢ.
//   - ≥ row, rᵢ ≤ 0: row negated so the surplus column becomes +1 and basic at −rᵢ.
//   - ≥ row, rᵢ > 0: surplus (−1) stays nonbasic, artificial basic at rᵢ.
//   - = row: row negated when rᵢ < 0, artificial basic at |rᵢ|.
//
// Every initial basic column is therefore a unit column: B = I and T is the
// scaled extended matrix verbatim.
//
// Complexity: O(m·(n+m)) time and space.
func newTableau(p *Problem, o Options) *tableau {
	n, m := p.NumVars, p.NumRows

	t := &tableau{
		m:       m,
		n:       n,
		eps:     o.Epsilon,
		verbose: o.Verbose,
	}

	// Stage 1 — initial resting values for the original columns.
	xval := make([]float64, n, n+2*m)
	atUp := make([]bool, n, n+2*m)
	for j := 0; j < n; j++ {
		xval[j], atUp[j] = finiteStart(p.Lower[j], p.Upper[j])
	}

	// Stage 2 — residuals at the resting point, and the feasibility scale.
	resid := make([]float64, m)
	maxB := 0.0
	for i := 0; i < m; i++ {
		r := p.B[i]
		for j := 0; j < n; j++ {
			r -= p.A.At(i, j) * xval[j]
		}
		resid[i] = r
		if ab := math.Abs(p.B[i]); ab > maxB {
			maxB = ab
		}
	}
	t.feasTol = t.eps * (1 + maxB)

	// Stage 3 — per-row decisions: sign, structural column, artificial need.
	type rowPlan struct {
		scale     float64
		structCol int // -1 for = rows
		artCol    int // -1 when the structural column can start basic
		needArt   bool
	}
	plans := make([]rowPlan, m)
	numStruct, numArt := 0, 0
	for i := 0; i < m; i++ {
		pl := rowPlan{scale: 1, structCol: -1, artCol: -1}
		r := resid[i]
		switch p.Rel[i] {
		case LE:
			pl.structCol = n + numStruct
			numStruct++
			if r < -t.feasTol {
				pl.scale = -1
				pl.needArt = true
			}
		case GE:
			pl.structCol = n + numStruct
			numStruct++
			if r <= t.feasTol {
				pl.scale = -1 // surplus column flips to +1 and starts basic
			} else {
				pl.needArt = true
			}
		case EQ:
			if r < 0 {
				pl.scale = -1
			}
			pl.needArt = true
		}
		plans[i] = pl
	}
	artBase := n + numStruct
	for i := range plans {
		if plans[i].needArt {
			plans[i].artCol = artBase + numArt
			numArt++
		}
	}
	t.total = n + numStruct + numArt

	// Stage 4 — allocate extended arrays.
	t.xval = append(xval, make([]float64, t.total-n)...)
	t.atUpper = append(atUp, make([]bool, t.total-n)...)
	t.lower = make([]float64, t.total)
	t.upper = make([]float64, t.total)
	t.cost = make([]float64, t.total)
	t.kind = make([]colKind, t.total)
	t.barred = make([]bool, t.total)
	t.inBasis = make([]bool, t.total)
	t.basic = make([]int, m)
	t.rhsB = make([]float64, m)
	t.labels = make([]string, t.total)

	copy(t.lower, p.Lower)
	copy(t.upper, p.Upper)
	for j := n; j < t.total; j++ {
		t.lower[j] = 0
		t.upper[j] = math.Inf(1)
		t.kind[j] = colStructural
	}
	for j := artBase; j < t.total; j++ {
		t.kind[j] = colArtificial
	}
	for j := 0; j < t.total; j++ {
		switch t.kind[j] {
		case colOriginal:
			t.labels[j] = p.columnName(j)
		case colStructural:
			t.labels[j] = "s" + itoa(j-n)
		default:
			t.labels[j] = "a" + itoa(j-artBase)
		}
	}

	// Stage 5 — fill the working matrix and seed the basis.
	if m > 0 {
		t.T = mat.NewDense(m, t.total, nil)
	}
	for i := 0; i < m; i++ {
		pl := plans[i]
		for j := 0; j < n; j++ {
			t.T.Set(i, j, pl.scale*p.A.At(i, j))
		}
		if pl.structCol >= 0 {
			sign := 1.0 // slack
			if p.Rel[i] == GE {
				sign = -1.0 // surplus
			}
			t.T.Set(i, pl.structCol, pl.scale*sign)
		}
		if pl.artCol >= 0 {
			t.T.Set(i, pl.artCol, 1)
		}

		// Seed the basic column with its (non-negative) starting value.
		switch {
		case pl.artCol >= 0:
			t.basic[i] = pl.artCol
			t.rhsB[i] = math.Abs(resid[i])
		default:
			t.basic[i] = pl.structCol
			t.rhsB[i] = pl.scale * resid[i] // = |resid| for the basic side
		}
		if t.rhsB[i] < 0 { // within feasTol of zero by construction
			t.rhsB[i] = 0
		}
		t.inBasis[t.basic[i]] = true
	}

	return t
}

// hasArtificials reports whether any artificial column was seeded.
func (t *tableau) hasArtificials() bool {
	return t.total > 0 && t.kind[t.total-1] == colArtificial
}

// infeasibility returns the Phase-1 objective: the summed value of all
// artificial columns (nonbasic artificials rest at 0).
func (t *tableau) infeasibility() float64 {
	sum := 0.0
	for i := 0; i < t.m; i++ {
		if t.kind[t.basic[i]] == colArtificial {
			sum += t.rhsB[i]
		}
	}

	return sum
}

// reducedCost computes dⱼ = costⱼ − Σᵢ cB[i]·T[i][j] for one column.
func (t *tableau) reducedCost(j int, cB []float64) float64 {
	d := t.cost[j]
	for i := 0; i < t.m; i++ {
		if cB[i] != 0 {
			d -= cB[i] * t.T.At(i, j)
		}
	}

	return d
}

// chooseEntering applies the most-negative-reduced-cost rule over nonbasic,
// non-barred, non-fixed columns. Nonbasic-at-upper columns improve by
// decreasing, so their effective reduced cost is −dⱼ. Ties break to the
// lowest column index via the strict comparison.
//
// Returns the column, its movement direction (+1 from lower, −1 from upper)
// and whether any improving column exists.
func (t *tableau) chooseEntering(cB []float64) (q int, dir float64, ok bool) {
	best := -t.eps
	q = -1
	for j := 0; j < t.total; j++ {
		if t.inBasis[j] || t.barred[j] || t.lower[j] == t.upper[j] {
			continue
		}
		d := t.reducedCost(j, cB)
		dj := 1.0
		switch {
		case t.atUpper[j]:
			dj = -1.0
		case math.IsInf(t.lower[j], -1) && math.IsInf(t.upper[j], 1):
			// Free column resting at 0: either direction is legal, so move
			// against the sign of the reduced cost.
			if d > 0 {
				dj = -1.0
			}
		}
		if score := d * dj; score < best {
			best = score
			q = j
			dir = dj
		}
	}

	return q, dir, q >= 0
}

// ratioTest finds the largest step θ for entering column q moving in
// direction dir, over three limits:
//
//	(a) a basic variable dropping to its lower bound,
//	(b) a basic variable rising to its upper bound,
//	(c) q itself flipping to its opposite bound (no basis change).
//
// Row ties break to the lowest row index; the bound flip is taken only when
// it is strictly smaller than every row limit.
//
// leaveRow == -1 with flip == true signals a bound flip; leaveRow == -1 with
// flip == false signals an unbounded direction.
func (t *tableau) ratioTest(q int, dir float64) (theta float64, leaveRow int, leaveToUpper, flip bool) {
	theta = math.Inf(1)
	leaveRow = -1

	for i := 0; i < t.m; i++ {
		alpha := dir * t.T.At(i, q)
		b := t.basic[i]
		switch {
		case alpha > t.eps: // basic variable decreases toward its lower bound
			if lo := t.lower[b]; !math.IsInf(lo, -1) {
				if step := (t.rhsB[i] - lo) / alpha; step < theta {
					theta = step
					leaveRow = i
					leaveToUpper = false
				}
			}
		case alpha < -t.eps: // basic variable increases toward its upper bound
			if hi := t.upper[b]; !math.IsInf(hi, 1) {
				if step := (hi - t.rhsB[i]) / (-alpha); step < theta {
					theta = step
					leaveRow = i
					leaveToUpper = true
				}
			}
		}
	}

	// Bound-flip limit for the entering column itself.
	flipStep := math.Inf(1)
	if dir > 0 {
		if !math.IsInf(t.upper[q], 1) {
			flipStep = t.upper[q] - t.xval[q]
		}
	} else if !math.IsInf(t.lower[q], -1) {
		flipStep = t.xval[q] - t.lower[q]
	}
	if flipStep < theta {
		return flipStep, -1, false, true
	}
	if leaveRow < 0 {
		return theta, -1, false, false // unbounded direction
	}
	if theta < 0 { // degenerate within tolerance
		theta = 0
	}

	return theta, leaveRow, leaveToUpper, false
}

// applyStep moves entering column q by dir·θ, updating every basic value.
func (t *tableau) applyStep(q int, dir, theta float64) {
	if theta == 0 {
		return
	}
	for i := 0; i < t.m; i++ {
		if a := t.T.At(i, q); a != 0 {
			t.rhsB[i] -= dir * a * theta
		}
	}
}

// boundFlip moves q all the way to its opposite bound without a basis change.
func (t *tableau) boundFlip(q int, dir, theta float64) {
	t.applyStep(q, dir, theta)
	if dir > 0 {
		t.xval[q] = t.upper[q]
		t.atUpper[q] = true
	} else {
		t.xval[q] = t.lower[q]
		t.atUpper[q] = false
	}
	t.iter++

	if t.verbose {
		t.log.Debug().
			Str("col", t.labels[q]).
			Float64("step", theta).
			Msg("bound flip")
	}
}

// pivot replaces the basic variable of row r with column q after a step of
// dir·θ. The leaving variable rests at the bound it hit; leaving artificials
// are barred from re-entering.
//
// Complexity: O(m·total) row elimination.
func (t *tableau) pivot(q int, dir, theta float64, r int, leaveToUpper bool) {
	newVal := t.xval[q] + dir*theta

	// Move every basic value, then overwrite row r with the entering value.
	t.applyStep(q, dir, theta)

	leave := t.basic[r]
	t.inBasis[leave] = false
	if leaveToUpper {
		t.xval[leave] = t.upper[leave]
	} else {
		t.xval[leave] = t.lower[leave]
	}
	t.atUpper[leave] = leaveToUpper
	if t.kind[leave] == colArtificial {
		t.barred[leave] = true
	}

	// Gaussian elimination on the working matrix.
	piv := t.T.At(r, q)
	rowR := t.T.RawRowView(r)
	inv := 1 / piv
	for j := range rowR {
		rowR[j] *= inv
	}
	for i := 0; i < t.m; i++ {
		if i == r {
			continue
		}
		f := t.T.At(i, q)
		if f == 0 {
			continue
		}
		rowI := t.T.RawRowView(i)
		for j := range rowI {
			rowI[j] -= f * rowR[j]
		}
		rowI[q] = 0
	}

	t.basic[r] = q
	t.inBasis[q] = true
	t.rhsB[r] = newVal
	t.iter++

	if t.verbose {
		t.log.Debug().
			Str("enter", t.labels[q]).
			Str("leave", t.labels[leave]).
			Int("row", r).
			Float64("step", theta).
			Msg("pivot")
	}
}

// values reads the current assignment for the first n (original) columns.
func (t *tableau) values() []float64 {
	x := make([]float64, t.n)
	for j := 0; j < t.n; j++ {
		x[j] = t.xval[j]
	}
	for i := 0; i < t.m; i++ {
		if b := t.basic[i]; b < t.n {
			x[b] = t.rhsB[i]
		}
	}
	for j := range x {
		x[j] = round1e9(x[j])
	}

	return x
}

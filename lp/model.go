package lp

import (
	"math"
)

// modelVar is a declared variable together with its bounds.
type modelVar struct {
	v            Var
	lower, upper float64
}

// Objective pairs an expression with an optimization direction.
type Objective struct {
	Expr LinExpr
	Dir  Direction
}

// Model is an ordered collection of variables, constraints and exactly one
// objective. It is built incrementally by AddVariable / AddConstraint /
// SetObjective and is append-only: a rejected call leaves the model
// unchanged, and Solve never mutates it.
//
// A Model is not safe for concurrent mutation; solve distinct Models from
// distinct goroutines instead.
type Model struct {
	name   string
	vars   []modelVar
	byName map[string]int
	cons   []Constraint
	obj    *Objective
}

// NewModel creates an empty model with a diagnostic name.
func NewModel(name string) *Model {
	return &Model{
		name:   name,
		byName: make(map[string]int),
	}
}

// Name returns the model's diagnostic name.
func (m *Model) Name() string { return m.name }

// AddVariable declares a variable with the default bounds [0, +Inf).
//
// Errors: ErrEmptyName; VariableError wrapping ErrDuplicateVariable when the
// name is already bound.
func (m *Model) AddVariable(name string) (Var, error) {
	return m.AddVariableBounded(name, 0, math.Inf(1))
}

// AddVariableBounded declares a variable with explicit bounds. lower may be
// −Inf (free below) and upper +Inf (free above).
//
// Errors: ErrEmptyName; VariableError wrapping ErrDuplicateVariable or
// ErrInvalidBounds (lower > upper, or NaN). A failed call adds nothing.
func (m *Model) AddVariableBounded(name string, lower, upper float64) (Var, error) {
	if name == "" {
		return Var{}, ErrEmptyName
	}
	if _, dup := m.byName[name]; dup {
		return Var{}, VariableError{Name: name, Err: ErrDuplicateVariable}
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return Var{}, VariableError{Name: name, Err: ErrInvalidBounds}
	}

	v := Var{model: m, id: len(m.vars), name: name}
	m.vars = append(m.vars, modelVar{v: v, lower: lower, upper: upper})
	m.byName[name] = v.id

	return v, nil
}

// AddVariables declares count variables named prefix1…prefixN, sharing the
// given bounds. On error the model keeps the variables added so far, exactly
// like the equivalent sequence of AddVariableBounded calls.
func (m *Model) AddVariables(count int, prefix string, lower, upper float64) ([]Var, error) {
	out := make([]Var, 0, count)
	for i := 1; i <= count; i++ {
		v, err := m.AddVariableBounded(prefix+itoa(i), lower, upper)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}

	return out, nil
}

// AddConstraint appends a constraint, preserving insertion order.
//
// Errors: VariableError wrapping ErrUnknownVariable when the constraint
// references a variable not added to this model; the constraint is then NOT
// appended (fail fast, no partial state).
func (m *Model) AddConstraint(c Constraint) error {
	if err := m.checkOwnership(c.expr); err != nil {
		return err
	}
	m.cons = append(m.cons, c)

	return nil
}

// AddConstraintNamed appends the constraint under a diagnostic name.
func (m *Model) AddConstraintNamed(c Constraint, name string) error {
	return m.AddConstraint(c.WithName(name))
}

// SetObjective installs the objective; calling it again replaces the prior
// one (last write before Solve governs).
//
// Errors: VariableError wrapping ErrUnknownVariable.
func (m *Model) SetObjective(e LinExpr, dir Direction) error {
	if err := m.checkOwnership(e); err != nil {
		return err
	}
	m.obj = &Objective{Expr: e, Dir: dir}

	return nil
}

// Objective returns the current objective and whether one was set.
func (m *Model) Objective() (Objective, bool) {
	if m.obj == nil {
		return Objective{}, false
	}

	return *m.obj, true
}

// NumVariables returns the number of declared variables.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumConstraints returns the number of appended constraints.
func (m *Model) NumConstraints() int { return len(m.cons) }

// Variables lists the declared variables in insertion order.
func (m *Model) Variables() []Var {
	out := make([]Var, len(m.vars))
	for i := range m.vars {
		out[i] = m.vars[i].v
	}

	return out
}

// Constraints lists the appended constraints in insertion order.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.cons))
	copy(out, m.cons)

	return out
}

// VariableByName looks a declared variable up by name.
func (m *Model) VariableByName(name string) (Var, bool) {
	id, ok := m.byName[name]
	if !ok {
		return Var{}, false
	}

	return m.vars[id].v, true
}

// Bounds returns the declared bounds of v (ok == false for foreign handles).
func (m *Model) Bounds(v Var) (lower, upper float64, ok bool) {
	if v.model != m || v.id < 0 || v.id >= len(m.vars) {
		return 0, 0, false
	}
	mv := m.vars[v.id]

	return mv.lower, mv.upper, true
}

// checkOwnership verifies every term of e references a variable of this
// model.
func (m *Model) checkOwnership(e LinExpr) error {
	for v := range e.terms {
		if v.model != m || v.id < 0 || v.id >= len(m.vars) {
			return VariableError{Name: v.name, Err: ErrUnknownVariable}
		}
	}

	return nil
}

// itoa formats a small positive integer for generated variable names.
func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}

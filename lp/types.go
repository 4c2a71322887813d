package lp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Model builder.
var (
	// ErrDuplicateVariable is returned by AddVariable when the name is
	// already bound in this model.
	ErrDuplicateVariable = errors.New("lp: variable name already in use")

	// ErrUnknownVariable is returned when a constraint or objective
	// references a variable that was never added to this model.
	ErrUnknownVariable = errors.New("lp: variable does not belong to this model")

	// ErrInvalidBounds is returned when a variable is declared with
	// lower > upper or a NaN bound.
	ErrInvalidBounds = errors.New("lp: invalid variable bounds")

	// ErrEmptyName is returned when a variable name is empty.
	ErrEmptyName = errors.New("lp: variable name is empty")

	// ErrNoObjective is returned by Solve when no objective was set.
	ErrNoObjective = errors.New("lp: model has no objective")
)

// VariableError decorates a sentinel with the offending variable name.
type VariableError struct {
	Name string
	Err  error
}

func (e VariableError) Error() string {
	return fmt.Sprintf("lp: variable %q: %v", e.Name, e.Err)
}

func (e VariableError) Unwrap() error { return e.Err }

// Direction is the optimization sense of the objective.
type Direction int8

const (
	// Minimize seeks the smallest objective value.
	Minimize Direction = iota

	// Maximize seeks the largest objective value.
	Maximize
)

// String reports the direction in source notation.
func (d Direction) String() string {
	if d == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Var is a handle to a decision variable owned by a Model. The zero Var is
// invalid; obtain handles from AddVariable / AddVariableBounded only.
// Handles are small values, comparable, and safe to copy.
type Var struct {
	model *Model
	id    int
	name  string
}

// Name returns the variable's declared name.
func (v Var) Name() string { return v.name }

// ID returns the model-scoped index assigned at AddVariable time.
// Insertion order is preserved: the i-th added variable has ID i.
func (v Var) ID() int { return v.id }

func (v Var) String() string { return v.name }

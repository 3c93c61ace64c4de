package optim

import (
	"errors"
)

var (
	// ErrUnknownConstraint is returned when an adapter's name no longer
	// resolves to a row, e.g. after the row was removed from the problem
	// or the adapter was renamed.
	ErrUnknownConstraint = errors.New("unknown constraint")

	// ErrRowExists is returned by backends asked to register a row whose
	// name is already taken.
	ErrRowExists = errors.New("row already registered")
)

// Entity is the capability a biological entity needs for constraints to
// be attached to it: a stable identifier and a back-reference to the
// problem it lives in. Reaction-like and metabolite-like values satisfy
// it alike; no distinction is made beyond this interface.
type Entity interface {
	ID() string
	Problem() Problem
}

// Row is one live linear (in)equality owned by a Problem.
type Row interface {
	Name() string
	Expression() LinExpr
	SetExpression(LinExpr) error
}

// Problem is the solver-backed object that owns all variables and rows.
// The constraint adapter only needs name-keyed lookup, a row factory and
// registration; optimization itself is the backend's business. Errors
// returned by a backend are surfaced to callers of this package
// unwrapped.
type Problem interface {
	// Constraint looks up a registered row by name.
	Constraint(name string) (Row, bool)

	// NewRow creates a row without registering it. Backends reject rows
	// they consider malformed.
	NewRow(name string, expr LinExpr, settings RowSettings) (Row, error)

	// Register adds a previously created row to the problem.
	Register(Row) error
}

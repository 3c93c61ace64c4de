package optim

import (
	"errors"
	"fmt"
	"math"
)

// InMemoryProblem is a reference Problem backend. It keeps rows with
// their bounds in registration order and performs the checks a real
// solver binding would: malformed expressions and duplicate registration
// are rejected. It does not optimize anything.
//
// Not safe for concurrent use.
type InMemoryProblem struct {
	name  string
	rows  map[string]*memRow
	order []string
}

// NewInMemoryProblem returns an empty problem with the given name.
func NewInMemoryProblem(name string) *InMemoryProblem {
	return &InMemoryProblem{
		name: name,
		rows: make(map[string]*memRow),
	}
}

// Name returns the problem name given at construction.
func (p *InMemoryProblem) Name() string { return p.name }

// NumConstraints returns the number of registered rows.
func (p *InMemoryProblem) NumConstraints() int { return len(p.order) }

// ConstraintNames returns the row names in registration order.
func (p *InMemoryProblem) ConstraintNames() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}

// Constraint implements Problem.
func (p *InMemoryProblem) Constraint(name string) (Row, bool) {
	row, ok := p.rows[name]
	if !ok {
		return nil, false
	}
	return row, true
}

// NewRow implements Problem. It rejects unnamed rows, empty variable
// names, NaN coefficients and inverted bounds.
func (p *InMemoryProblem) NewRow(name string, expr LinExpr, settings RowSettings) (Row, error) {
	if name == "" {
		return nil, errors.New("row name must not be empty")
	}
	if err := checkExpr(expr); err != nil {
		return nil, fmt.Errorf("row %s: %w", name, err)
	}
	if settings.Lower > settings.Upper {
		return nil, fmt.Errorf("row %s: lower bound %g above upper bound %g", name, settings.Lower, settings.Upper)
	}
	return &memRow{
		name:  name,
		expr:  expr.Clone(),
		lower: settings.Lower,
		upper: settings.Upper,
		extra: settings.Extra,
	}, nil
}

// Register implements Problem.
func (p *InMemoryProblem) Register(r Row) error {
	row, ok := r.(*memRow)
	if !ok {
		return fmt.Errorf("row %s was not created by this backend", r.Name())
	}
	if _, taken := p.rows[row.name]; taken {
		return fmt.Errorf("%w: %s", ErrRowExists, row.name)
	}
	p.rows[row.name] = row
	p.order = append(p.order, row.name)
	return nil
}

// Remove drops a row from the problem. Adapters still holding the name
// resolve to ErrUnknownConstraint afterwards.
func (p *InMemoryProblem) Remove(name string) {
	if _, ok := p.rows[name]; !ok {
		return
	}
	delete(p.rows, name)
	for i, n := range p.order {
		if n == name {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

func checkExpr(expr LinExpr) error {
	for _, t := range expr.Terms {
		if t.Var == "" {
			return errors.New("term with empty variable name")
		}
		if math.IsNaN(t.Coeff) {
			return fmt.Errorf("NaN coefficient for %s", t.Var)
		}
	}
	if math.IsNaN(expr.Offset) {
		return errors.New("NaN offset")
	}
	return nil
}

type memRow struct {
	name  string
	expr  LinExpr
	lower float64
	upper float64
	extra map[string]any
}

func (r *memRow) Name() string { return r.name }

func (r *memRow) Expression() LinExpr { return r.expr.Clone() }

func (r *memRow) SetExpression(expr LinExpr) error {
	if err := checkExpr(expr); err != nil {
		return fmt.Errorf("row %s: %w", r.name, err)
	}
	r.expr = expr.Clone()
	return nil
}

// Bounds returns the lower and upper bound of the row.
func (r *memRow) Bounds() (lower, upper float64) { return r.lower, r.upper }

// Extra returns the backend options the row was created with.
func (r *memRow) Extra() map[string]any { return r.extra }

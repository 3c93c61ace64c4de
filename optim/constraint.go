package optim

import (
	"fmt"

	"github.com/thermoflux/gotfa/logger"
)

// Constraint adapts one named row of a Problem. It holds no copy of the
// row's mathematical content: Expression and SetExpression resolve the
// live row by name on every call.
//
// Construction is idempotent per name: the first construction registers
// the row, later constructions with the same name attach to it. The
// check-then-create step is not concurrency-safe; constraints attached
// to a problem must be constructed from a single goroutine.
type Constraint struct {
	kind    Kind
	id      string
	name    string
	owner   Entity
	problem Problem
}

// New registers a problem-level constraint named kind.Prefix()+id, or
// attaches to the row of that name if the problem already has one. In
// the reuse case expr is discarded in favor of the registered row; a
// warning is logged when the two differ.
func New(kind Kind, problem Problem, id string, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	c := &Constraint{
		kind:    kind,
		id:      id,
		name:    kind.makeName(id),
		problem: problem,
	}
	if err := c.attach(expr, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// NewOwned registers a constraint attached to an entity, deriving the
// identifier and problem from the owner at construction time. The owner
// must be attached to a problem, and its identifier must stay stable
// for the lifetime of the constraint; renaming the owner afterwards
// desynchronizes the row key from the owner.
func NewOwned(kind Kind, owner Entity, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	c := &Constraint{
		kind:    kind,
		id:      owner.ID(),
		owner:   owner,
		problem: owner.Problem(),
	}
	c.name = kind.makeName(c.id)
	if err := c.attach(expr, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// attach performs the check-then-create registration. Backend errors are
// returned unwrapped; this layer validates nothing itself.
func (c *Constraint) attach(expr LinExpr, opts []RowOption) error {
	if existing, ok := c.problem.Constraint(c.name); ok {
		// Existing row wins and the caller's expression is dropped.
		// Flag the mismatch rather than resolving it either way.
		if !existing.Expression().Equal(expr) {
			log := logger.With("optim")
			log.Warn().
				Str("constraint", c.name).
				Msg("row already registered with a different expression; keeping the existing row")
		}
		return nil
	}
	settings := DefaultRowSettings()
	for _, opt := range opts {
		opt(&settings)
	}
	row, err := c.problem.NewRow(c.name, expr, settings)
	if err != nil {
		return err
	}
	return c.problem.Register(row)
}

// Kind returns the constraint kind.
func (c *Constraint) Kind() Kind { return c.kind }

// ID returns the identifier the row name was derived from.
func (c *Constraint) ID() string { return c.id }

// Name returns the problem-wide row name, Kind().Prefix() + ID().
func (c *Constraint) Name() string { return c.name }

// SetName rebinds the adapter to another row name. This is an escape
// hatch: the new name is no longer derived from the identifier, and the
// adapter stops resolving the row it registered under the old name.
func (c *Constraint) SetName(name string) { c.name = name }

// Owner returns the entity the constraint is attached to, or nil for
// problem-level constraints.
func (c *Constraint) Owner() Entity { return c.owner }

// Problem returns the problem that owns the row.
func (c *Constraint) Problem() Problem { return c.problem }

// Row resolves the live row in the problem.
func (c *Constraint) Row() (Row, error) {
	row, ok := c.problem.Constraint(c.name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConstraint, c.name)
	}
	return row, nil
}

// Expression reads the live row's expression.
func (c *Constraint) Expression() (LinExpr, error) {
	row, err := c.Row()
	if err != nil {
		return LinExpr{}, err
	}
	return row.Expression(), nil
}

// SetExpression replaces the live row's expression. Validation, if any,
// is the backend's.
func (c *Constraint) SetExpression(expr LinExpr) error {
	row, err := c.Row()
	if err != nil {
		return err
	}
	return row.SetExpression(expr)
}

func (c *Constraint) String() string {
	expr, err := c.Expression()
	if err != nil {
		return c.name + ": <unresolved>"
	}
	return c.name + ": " + expr.String()
}

// NewNegativeDeltaG declares the ΔG balance equation of a reaction
// (name G_<rxn>).
func NewNegativeDeltaG(reaction Entity, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	return NewOwned(NegativeDeltaG, reaction, expr, opts...)
}

// NewForwardDeltaGCoupling couples a reaction's ΔG to its forward-use
// indicator (name FU_<rxn>).
func NewForwardDeltaGCoupling(reaction Entity, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	return NewOwned(ForwardDeltaGCoupling, reaction, expr, opts...)
}

// NewBackwardDeltaGCoupling couples a reaction's ΔG to its backward-use
// indicator (name BU_<rxn>).
func NewBackwardDeltaGCoupling(reaction Entity, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	return NewOwned(BackwardDeltaGCoupling, reaction, expr, opts...)
}

// NewForwardDirectionCoupling links a reaction's forward flux to its
// forward-use indicator (name UF_<rxn>).
func NewForwardDirectionCoupling(reaction Entity, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	return NewOwned(ForwardDirectionCoupling, reaction, expr, opts...)
}

// NewBackwardDirectionCoupling links a reaction's backward flux to its
// backward-use indicator (name UR_<rxn>).
func NewBackwardDirectionCoupling(reaction Entity, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	return NewOwned(BackwardDirectionCoupling, reaction, expr, opts...)
}

// NewSimultaneousUse forbids running a reaction in both directions at
// once (name SU_<rxn>).
func NewSimultaneousUse(reaction Entity, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	return NewOwned(SimultaneousUse, reaction, expr, opts...)
}

// NewDisplacementCoupling links a reaction's log thermodynamic
// displacement to its ΔG (name DC_<rxn>).
func NewDisplacementCoupling(reaction Entity, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	return NewOwned(DisplacementCoupling, reaction, expr, opts...)
}

// NewForbiddenProfile excludes a directionality profile spanning several
// reactions (name FP_<id>). The identifier is caller-supplied; no single
// entity owns the row.
func NewForbiddenProfile(problem Problem, id string, expr LinExpr, opts ...RowOption) (*Constraint, error) {
	return New(ForbiddenProfile, problem, id, expr, opts...)
}

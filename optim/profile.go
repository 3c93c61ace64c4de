package optim

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Prefixes of the direction-use indicator variables. They coincide with
// the FU_/BU_ constraint prefixes but live in the problem's variable
// namespace, not its constraint namespace.
const (
	ForwardUseVarPrefix  = "FU_"
	BackwardUseVarPrefix = "BU_"
)

// A DirectionProfile records one net-flux directionality pattern over an
// ordered set of reactions. Bit i of Forward (resp. Backward) marks
// reaction i as running forwards (resp. backwards); a reaction with
// neither bit set takes no part in the profile.
type DirectionProfile struct {
	Reactions []string
	Forward   *bitset.BitSet
	Backward  *bitset.BitSet
}

// NewDirectionProfile returns an empty profile over the given reactions.
func NewDirectionProfile(reactions []string) DirectionProfile {
	n := uint(len(reactions))
	return DirectionProfile{
		Reactions: append([]string(nil), reactions...),
		Forward:   bitset.New(n),
		Backward:  bitset.New(n),
	}
}

// SetForward marks reaction i as running forwards, clearing any backward
// mark.
func (p DirectionProfile) SetForward(i uint) {
	p.Forward.Set(i)
	p.Backward.Clear(i)
}

// SetBackward marks reaction i as running backwards, clearing any
// forward mark.
func (p DirectionProfile) SetBackward(i uint) {
	p.Backward.Set(i)
	p.Forward.Clear(i)
}

// Size returns the number of reactions taking part in the profile.
func (p DirectionProfile) Size() int {
	return int(p.Forward.Count() + p.Backward.Count())
}

// UseVariables expands the profile to the names of its active use
// variables, in reaction order.
func (p DirectionProfile) UseVariables() []string {
	vars := make([]string, 0, p.Size())
	for i, rxn := range p.Reactions {
		switch {
		case p.Forward.Test(uint(i)):
			vars = append(vars, ForwardUseVarPrefix+rxn)
		case p.Backward.Test(uint(i)):
			vars = append(vars, BackwardUseVarPrefix+rxn)
		}
	}
	return vars
}

// Cut builds the integer-cut expression of the profile, the sum of its
// active use variables.
func (p DirectionProfile) Cut() LinExpr {
	var e LinExpr
	for _, v := range p.UseVariables() {
		e = e.AddTerm(1, v)
	}
	return e
}

// ForbidProfile registers the constraint excluding the profile from the
// feasible set (name FP_<id>):
//
//	FU_rxn1 + BU_rxn2 + ... <= n-1
//
// so that at least one of the n participating reactions must flip
// direction. The profile must involve at least one reaction.
func ForbidProfile(problem Problem, id string, p DirectionProfile, opts ...RowOption) (*Constraint, error) {
	n := p.Size()
	if n == 0 {
		return nil, fmt.Errorf("profile %s: no active reactions", id)
	}
	opts = append([]RowOption{WithUpper(float64(n - 1))}, opts...)
	return NewForbiddenProfile(problem, id, p.Cut(), opts...)
}

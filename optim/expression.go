package optim

import (
	"sort"
	"strconv"
	"strings"
)

// A Term is a coefficient applied to one named problem variable.
type Term struct {
	Coeff float64 `cbor:"coeff"`
	Var   string  `cbor:"var"`
}

// A LinExpr is an affine expression over named problem variables,
// Offset + Σ Coeff·Var. The zero value is the empty expression.
//
// A LinExpr carries no reference to a problem; well-formedness (known
// variables, finite coefficients) is checked by the backend the
// expression is registered with, not here.
type LinExpr struct {
	Terms  []Term  `cbor:"terms,omitempty"`
	Offset float64 `cbor:"offset,omitempty"`
}

// NewExpr builds an expression from an offset and a list of terms.
func NewExpr(offset float64, terms ...Term) LinExpr {
	return LinExpr{Terms: terms, Offset: offset}
}

// Clone returns a copy with its own term slice.
func (e LinExpr) Clone() LinExpr {
	terms := make([]Term, len(e.Terms))
	copy(terms, e.Terms)
	return LinExpr{Terms: terms, Offset: e.Offset}
}

// AddTerm returns e + coeff·v.
func (e LinExpr) AddTerm(coeff float64, v string) LinExpr {
	res := e.Clone()
	res.Terms = append(res.Terms, Term{Coeff: coeff, Var: v})
	return res
}

// Add returns e + other.
func (e LinExpr) Add(other LinExpr) LinExpr {
	res := e.Clone()
	res.Terms = append(res.Terms, other.Terms...)
	res.Offset += other.Offset
	return res
}

// Scale returns k·e.
func (e LinExpr) Scale(k float64) LinExpr {
	res := e.Clone()
	for i := range res.Terms {
		res.Terms[i].Coeff *= k
	}
	res.Offset *= k
	return res
}

// Canonical merges terms referring to the same variable, drops terms with
// a zero coefficient and orders the rest by variable name.
func (e LinExpr) Canonical() LinExpr {
	coeffs := make(map[string]float64, len(e.Terms))
	for _, t := range e.Terms {
		coeffs[t.Var] += t.Coeff
	}
	names := make([]string, 0, len(coeffs))
	for v, c := range coeffs {
		if c != 0 {
			names = append(names, v)
		}
	}
	sort.Strings(names)
	terms := make([]Term, len(names))
	for i, v := range names {
		terms[i] = Term{Coeff: coeffs[v], Var: v}
	}
	return LinExpr{Terms: terms, Offset: e.Offset}
}

// Equal reports whether both expressions have the same canonical form.
func (e LinExpr) Equal(other LinExpr) bool {
	a, b := e.Canonical(), other.Canonical()
	if a.Offset != b.Offset || len(a.Terms) != len(b.Terms) {
		return false
	}
	for i := range a.Terms {
		if a.Terms[i] != b.Terms[i] {
			return false
		}
	}
	return true
}

// String renders the expression in LP notation, e.g.
// "1000 FU_R1 + DGR_R1 - 3.5".
func (e LinExpr) String() string {
	var sb strings.Builder
	for i, t := range e.Terms {
		writeSign(&sb, i == 0, t.Coeff < 0)
		if c := abs(t.Coeff); c != 1 {
			sb.WriteString(formatCoeff(c))
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Var)
	}
	if e.Offset != 0 || len(e.Terms) == 0 {
		writeSign(&sb, len(e.Terms) == 0, e.Offset < 0)
		sb.WriteString(formatCoeff(abs(e.Offset)))
	}
	return sb.String()
}

func writeSign(sb *strings.Builder, first, negative bool) {
	switch {
	case first && negative:
		sb.WriteByte('-')
	case !first && negative:
		sb.WriteString(" - ")
	case !first:
		sb.WriteString(" + ")
	}
}

func formatCoeff(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

func abs(c float64) float64 {
	if c < 0 {
		return -c
	}
	return c
}

package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thermoflux/gotfa/optim"
)

func TestNewRowValidation(t *testing.T) {
	assert := require.New(t)
	p := optim.NewInMemoryProblem("M")

	_, err := p.NewRow("", optim.LinExpr{}, optim.DefaultRowSettings())
	assert.Error(err)

	_, err = p.NewRow("r", optim.NewExpr(0, optim.Term{Coeff: 1, Var: ""}), optim.DefaultRowSettings())
	assert.Error(err)

	_, err = p.NewRow("r", optim.NewExpr(0, optim.Term{Coeff: math.NaN(), Var: "x"}), optim.DefaultRowSettings())
	assert.Error(err)

	_, err = p.NewRow("r", optim.LinExpr{}, optim.RowSettings{Lower: 1, Upper: 0})
	assert.Error(err)
}

func TestRegisterDuplicate(t *testing.T) {
	assert := require.New(t)
	p := optim.NewInMemoryProblem("M")

	expr := optim.NewExpr(0, optim.Term{Coeff: 1, Var: "x"})
	r1, err := p.NewRow("r", expr, optim.DefaultRowSettings())
	assert.NoError(err)
	assert.NoError(p.Register(r1))

	r2, err := p.NewRow("r", expr, optim.DefaultRowSettings())
	assert.NoError(err)
	assert.ErrorIs(p.Register(r2), optim.ErrRowExists)
	assert.Equal(1, p.NumConstraints())
}

func TestRowBoundsFromOptions(t *testing.T) {
	assert := require.New(t)
	p := optim.NewInMemoryProblem("M")

	settings := optim.DefaultRowSettings()
	optim.WithEqual(0)(&settings)
	optim.WithExtra("lazy", true)(&settings)

	row, err := p.NewRow("G_R1", optim.NewExpr(0, optim.Term{Coeff: -1, Var: "DGR_R1"}), settings)
	assert.NoError(err)
	assert.NoError(p.Register(row))

	got, ok := p.Constraint("G_R1")
	assert.True(ok)
	type bounded interface {
		Bounds() (float64, float64)
		Extra() map[string]any
	}
	b, ok := got.(bounded)
	assert.True(ok)
	lower, upper := b.Bounds()
	assert.Equal(0.0, lower)
	assert.Equal(0.0, upper)
	assert.Equal(map[string]any{"lazy": true}, b.Extra())
}

func TestRemoveRow(t *testing.T) {
	assert := require.New(t)
	p := optim.NewInMemoryProblem("M")
	r1 := &testReaction{id: "R1", problem: p}

	c, err := optim.NewNegativeDeltaG(r1, optim.LinExpr{}, optim.WithEqual(0))
	assert.NoError(err)
	assert.Equal(1, p.NumConstraints())

	p.Remove("G_R1")
	assert.Equal(0, p.NumConstraints())
	_, err = c.Expression()
	assert.ErrorIs(err, optim.ErrUnknownConstraint)

	// removing twice is a no-op
	p.Remove("G_R1")
	assert.Equal(0, p.NumConstraints())
}

func TestExpressionIsolation(t *testing.T) {
	assert := require.New(t)
	p := optim.NewInMemoryProblem("M")

	expr := optim.NewExpr(0, optim.Term{Coeff: 1, Var: "x"})
	row, err := p.NewRow("r", expr, optim.DefaultRowSettings())
	assert.NoError(err)
	assert.NoError(p.Register(row))

	// mutating the caller's slice must not leak into the stored row
	expr.Terms[0].Coeff = 99
	got, _ := p.Constraint("r")
	assert.True(got.Expression().Equal(optim.NewExpr(0, optim.Term{Coeff: 1, Var: "x"})))
}

package optim_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/thermoflux/gotfa/optim"
)

func buildProblem(t *testing.T) *optim.InMemoryProblem {
	t.Helper()
	assert := require.New(t)

	m := optim.NewInMemoryProblem("small_model")
	r1 := &testReaction{id: "R1", problem: m}

	_, err := optim.NewNegativeDeltaG(r1, optim.NewExpr(0,
		optim.Term{Coeff: -1, Var: "DGR_R1"},
		optim.Term{Coeff: 1, Var: "DGoRerr_R1"},
	), optim.WithEqual(0))
	assert.NoError(err)

	_, err = optim.NewForwardDeltaGCoupling(r1, couplingExpr("R1"), optim.WithUpper(1000))
	assert.NoError(err)

	_, err = optim.NewSimultaneousUse(r1, optim.NewExpr(0,
		optim.Term{Coeff: 1, Var: "FU_R1"},
		optim.Term{Coeff: 1, Var: "BU_R1"},
	), optim.WithUpper(1))
	assert.NoError(err)

	return m
}

func TestSnapshotRoundTrip(t *testing.T) {
	assert := require.New(t)

	m := buildProblem(t)
	data, err := m.ToBytes()
	assert.NoError(err)

	restored := optim.NewInMemoryProblem("")
	assert.NoError(restored.FromBytes(data))

	assert.Equal(m.Name(), restored.Name())
	assert.Equal(m.ConstraintNames(), restored.ConstraintNames())

	for _, name := range m.ConstraintNames() {
		want, _ := m.Constraint(name)
		got, ok := restored.Constraint(name)
		assert.True(ok, name)
		if diff := cmp.Diff(want.Expression(), got.Expression()); diff != "" {
			t.Errorf("row %s expression mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestSnapshotVersionSkewIsNotFatal(t *testing.T) {
	assert := require.New(t)

	data, err := cbor.Marshal(map[string]any{
		"version": "99.0.0",
		"name":    "future_model",
		"rows":    []any{},
	})
	assert.NoError(err)

	p := optim.NewInMemoryProblem("")
	assert.NoError(p.FromBytes(data))
	assert.Equal("future_model", p.Name())
}

func TestSnapshotBadVersion(t *testing.T) {
	assert := require.New(t)

	data, err := cbor.Marshal(map[string]any{
		"version": "not-a-version",
		"name":    "m",
		"rows":    []any{},
	})
	assert.NoError(err)

	p := optim.NewInMemoryProblem("")
	assert.Error(p.FromBytes(data))
}

func TestSnapshotGarbage(t *testing.T) {
	assert := require.New(t)

	p := optim.NewInMemoryProblem("")
	assert.Error(p.FromBytes([]byte("definitely not cbor")))
}

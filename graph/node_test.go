package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiroIshida/tenkai/graph"
)

func TestAdd_IdentitySimplification(t *testing.T) {
	rng := graph.NewRand(1)
	x := graph.Var(rng)

	sum, err := graph.Add(x, graph.Zero())
	require.NoError(t, err)
	assert.Same(t, x, sum, "x+0 must return the exact same node as x")

	sum2, err := graph.Add(graph.Zero(), x)
	require.NoError(t, err)
	assert.Same(t, x, sum2, "0+x must return the exact same node as x")
}

func TestMul_IdentitySimplification(t *testing.T) {
	rng := graph.NewRand(2)
	x := graph.Var(rng)

	prod, err := graph.Mul(x, graph.One())
	require.NoError(t, err)
	assert.Same(t, x, prod)

	prod2, err := graph.Mul(graph.One(), x)
	require.NoError(t, err)
	assert.Same(t, x, prod2)

	zero1, err := graph.Mul(x, graph.Zero())
	require.NoError(t, err)
	assert.Equal(t, graph.KindZero, zero1.Kind())

	zero2, err := graph.Mul(graph.Zero(), x)
	require.NoError(t, err)
	assert.Equal(t, graph.KindZero, zero2.Kind())
}

func TestTranscendentalZeroIdentities(t *testing.T) {
	s, err := graph.Sin(graph.Zero())
	require.NoError(t, err)
	assert.Equal(t, graph.KindZero, s.Kind())

	c, err := graph.Cos(graph.Zero())
	require.NoError(t, err)
	assert.Equal(t, graph.KindOne, c.Kind())

	neg, err := graph.Negate(graph.Zero())
	require.NoError(t, err)
	assert.Equal(t, graph.KindZero, neg.Kind())
}

func TestConstantFolding(t *testing.T) {
	a := graph.Constant(1.5)
	b := graph.Constant(2.0)
	prod, err := graph.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, graph.KindConstant, prod.Kind())

	c := graph.Constant(3.0)
	sum, err := graph.Add(prod, c)
	require.NoError(t, err)
	require.Equal(t, graph.KindConstant, sum.Kind())
	assert.Equal(t, 6.0, sum.Value())
}

func TestNilArgumentRejected(t *testing.T) {
	_, err := graph.Add(nil, graph.Zero())
	assert.ErrorIs(t, err, graph.ErrNilArgument)

	_, err = graph.Negate(nil)
	assert.ErrorIs(t, err, graph.ErrNilArgument)
}

func TestExtFunc_Validation(t *testing.T) {
	rng := graph.NewRand(3)
	x := graph.Var(rng)

	_, err := graph.ExtFunc("", x)
	assert.ErrorIs(t, err, graph.ErrEmptyExtName)

	_, err = graph.ExtFunc("atan2")
	assert.ErrorIs(t, err, graph.ErrNoArguments)

	call, err := graph.ExtFunc("atan2", x, x)
	require.NoError(t, err)
	assert.Equal(t, graph.KindExtCall, call.Kind())
	assert.Equal(t, "atan2", call.ExtName())
}

func TestHashEquivalence_Commutative(t *testing.T) {
	rng := graph.NewRand(4)
	x := graph.Var(rng)

	s, err := graph.Sin(x)
	require.NoError(t, err)
	c, err := graph.Cos(x)
	require.NoError(t, err)

	f, err := graph.Add(s, c) // sin(x) + cos(x)
	require.NoError(t, err)
	g, err := graph.Add(c, s) // cos(x) + sin(x)
	require.NoError(t, err)

	assert.Equal(t, f.Hash(), g.Hash())
}

func TestHashEquivalence_FourTermCommutative(t *testing.T) {
	rng := graph.NewRand(5)
	a := graph.Var(rng)
	b := graph.Var(rng)
	c := graph.Var(rng)
	d := graph.Var(rng)

	ab, _ := graph.Add(a, b)
	abc, _ := graph.Add(ab, c)
	f, _ := graph.Add(abc, d) // a+b+c+d

	dc, _ := graph.Add(d, c)
	dcb, _ := graph.Add(dc, b)
	g, _ := graph.Add(dcb, a) // d+c+b+a

	assert.Equal(t, f.Hash(), g.Hash())
}

func TestSinCosDoNotCollide(t *testing.T) {
	rng := graph.NewRand(6)
	x := graph.Var(rng)
	s, _ := graph.Sin(x)
	c, _ := graph.Cos(x)

	assert.NotEqual(t, s.Hash(), c.Hash())
	assert.NotEqual(t, x.Hash(), s.Hash())
	assert.NotEqual(t, x.Hash(), c.Hash())
}

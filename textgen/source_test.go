package textgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiroIshida/tenkai/graph"
	"github.com/HiroIshida/tenkai/schedule"
)

func TestGenerateSource_RemapsInputsAndOutputs(t *testing.T) {
	rng := graph.NewRand(100)
	x := graph.Var(rng)
	y := graph.Var(rng)
	sum, err := graph.Add(x, y)
	require.NoError(t, err)

	sched, err := schedule.Linearize([]*graph.Node{x, y}, []*graph.Node{sum})
	require.NoError(t, err)

	src := generateSource("f", sched, nil)
	assert.Contains(t, src, `extern "C" void f(double* input, double* output, void** extfns)`)
	assert.Contains(t, src, "input[0] + input[1]")
	assert.Contains(t, src, "output[0] = ")
}

func TestGenerateSource_ExternalCallIndexesExtfns(t *testing.T) {
	rng := graph.NewRand(101)
	x := graph.Var(rng)
	call, err := graph.ExtFunc("myfunc", x)
	require.NoError(t, err)

	sched, err := schedule.Linearize([]*graph.Node{x}, []*graph.Node{call})
	require.NoError(t, err)

	src := generateSource("f", sched, []string{"myfunc"})
	assert.True(t, strings.Contains(src, "extfns[0]"))
}

func TestGenerateSource_DedupesSharedSubexpression(t *testing.T) {
	rng := graph.NewRand(102)
	a := graph.Var(rng)
	shared, err := graph.Mul(a, a)
	require.NoError(t, err)
	lhs, err := graph.Sin(shared)
	require.NoError(t, err)
	rhs, err := graph.Cos(shared)
	require.NoError(t, err)
	top, err := graph.Add(lhs, rhs)
	require.NoError(t, err)

	sched, err := schedule.Linearize([]*graph.Node{a}, []*graph.Node{top})
	require.NoError(t, err)

	src := generateSource("f", sched, nil)
	sharedName := temporaryName(shared, map[int32]int{a.Hash(): 0})
	assert.Equal(t, 1, strings.Count(src, "double "+sharedName+" ="))
}

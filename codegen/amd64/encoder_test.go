package amd64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amd64 "github.com/HiroIshida/tenkai/codegen/amd64"
	"github.com/HiroIshida/tenkai/graph"
	"github.com/HiroIshida/tenkai/liveness"
	"github.com/HiroIshida/tenkai/regalloc"
	"github.com/HiroIshida/tenkai/schedule"
)

func compile(t *testing.T, inputs, outputs []*graph.Node, extNames []string, opts ...regalloc.Option) []byte {
	t.Helper()
	sched, err := schedule.Linearize(inputs, outputs)
	require.NoError(t, err)
	live := liveness.Analyze(sched)
	result, err := regalloc.Allocate(sched, live, opts...)
	require.NoError(t, err)

	var enc amd64.Encoder
	code, err := enc.Emit(result, extNames)
	require.NoError(t, err)
	return code
}

func TestEmit_SimpleAddHasPrologueAndEpilogue(t *testing.T) {
	rng := graph.NewRand(10)
	x := graph.Var(rng)
	y := graph.Var(rng)
	sum, err := graph.Add(x, y)
	require.NoError(t, err)

	code := compile(t, []*graph.Node{x, y}, []*graph.Node{sum}, nil)
	require.NotEmpty(t, code)

	// push r12; push r13; push r14
	assert.Equal(t, []byte{0x41, 0x54, 0x41, 0x55, 0x41, 0x56}, code[:6])
	assert.Equal(t, byte(0xC3), code[len(code)-1], "must end in ret")
}

func TestEmit_SinCallResolvesExtIndex(t *testing.T) {
	rng := graph.NewRand(11)
	x := graph.Var(rng)
	s, err := graph.Sin(x)
	require.NoError(t, err)

	code := compile(t, []*graph.Node{x}, []*graph.Node{s}, []string{"sin", "cos"})
	require.NotEmpty(t, code)

	// the call sequence is "mov rax, [r14+idx*8]" (0x49 0x8B ...) then
	// "call rax" (0xFF 0xD0); both must appear somewhere in the body.
	// "sin" is extNames[0], so the displacement is 0.
	assert.Contains(t, string(code), string([]byte{0x49, 0x8B, 0x86, 0x00, 0x00, 0x00, 0x00}))
	assert.Contains(t, string(code), string([]byte{0xFF, 0xD0}))
}

func TestEmit_UnknownExternalNameFails(t *testing.T) {
	rng := graph.NewRand(12)
	x := graph.Var(rng)
	s, err := graph.Cos(x)
	require.NoError(t, err)

	sched, err := schedule.Linearize([]*graph.Node{x}, []*graph.Node{s})
	require.NoError(t, err)
	live := liveness.Analyze(sched)
	result, err := regalloc.Allocate(sched, live)
	require.NoError(t, err)

	var enc amd64.Encoder
	_, err = enc.Emit(result, []string{"sin"}) // "cos" missing
	assert.ErrorIs(t, err, amd64.ErrUnsupportedOp)
}

func TestEmit_NegateEmitsMaskMaterialization(t *testing.T) {
	rng := graph.NewRand(13)
	x := graph.Var(rng)
	negX, err := graph.Negate(x)
	require.NoError(t, err)

	code := compile(t, []*graph.Node{x}, []*graph.Node{negX}, nil)
	require.NotEmpty(t, code)

	// vxorpd's opcode 0x57 must appear.
	var sawXorpd bool
	for i := 0; i+1 < len(code); i++ {
		if code[i] == 0x57 {
			sawXorpd = true
		}
	}
	assert.True(t, sawXorpd)
}

func TestEmit_StackSpillReservesRSP(t *testing.T) {
	rng := graph.NewRand(14)
	a := graph.Var(rng)
	shared, err := graph.Mul(a, a)
	require.NoError(t, err)
	lhs, err := graph.Sin(shared)
	require.NoError(t, err)
	rhs, err := graph.Cos(shared)
	require.NoError(t, err)
	top, err := graph.Add(lhs, rhs)
	require.NoError(t, err)

	code := compile(t, []*graph.Node{a}, []*graph.Node{top}, []string{"sin", "cos"},
		regalloc.WithRegisters(3), regalloc.WithStackCapacity(4))
	require.NotEmpty(t, code)
	// "sub rsp, imm8" is 0x48 0x83 0xEC; only emitted when stack spills occur.
	assert.Contains(t, string(code), string([]byte{0x48, 0x83, 0xEC}))
}

package jitmem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiroIshida/tenkai/jitmem"
)

func TestInstall_RejectsEmptyCode(t *testing.T) {
	_, err := jitmem.Install(nil)
	assert.ErrorIs(t, err, jitmem.ErrEmptyCode)
}

func TestInstall_RetFunctionIsExecutable(t *testing.T) {
	// A single `ret` instruction: a minimal, architecture-correct body
	// that returns immediately without touching any of its arguments.
	region, err := jitmem.Install([]byte{0xC3})
	require.NoError(t, err)
	defer region.Close()

	fn, err := region.Func()
	require.NoError(t, err)
	require.NotNil(t, fn)

	assert.NotPanics(t, func() {
		fn(nil, nil, nil)
	})
}

func TestInstall_PassesRealArgumentsThroughSystemVRegisters(t *testing.T) {
	// movsd xmm0, [rdi]; movsd [rsi], xmm0; ret — copies *in to *out.
	// Hand-assembled (not via codegen/amd64) so this test exercises only
	// the trampoline's register wiring, independent of the encoder.
	code := []byte{
		0xF2, 0x0F, 0x10, 0x07, // movsd xmm0, [rdi]
		0xF2, 0x0F, 0x11, 0x06, // movsd [rsi], xmm0
		0xC3, // ret
	}
	region, err := jitmem.Install(code)
	require.NoError(t, err)
	defer region.Close()

	fn, err := region.Func()
	require.NoError(t, err)

	out := make([]float64, 1)
	fn([]float64{3.5}, out, nil)
	assert.Equal(t, 3.5, out[0])
}

func TestClose_IsIdempotent(t *testing.T) {
	region, err := jitmem.Install([]byte{0xC3})
	require.NoError(t, err)

	require.NoError(t, region.Close())
	require.NoError(t, region.Close())
}

func TestFunc_AfterCloseFails(t *testing.T) {
	region, err := jitmem.Install([]byte{0xC3})
	require.NoError(t, err)
	require.NoError(t, region.Close())

	_, err = region.Func()
	assert.ErrorIs(t, err, jitmem.ErrRegionClosed)
}

package sim

import (
	"testing"

	"atom-ca/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationOrderIsStable(t *testing.T) {
	w := New(8, 8)
	assert.Equal(t, uint32(0), w.Empty().Type())
	assert.Equal(t, uint32(1), w.Fish().Type())
	assert.Equal(t, uint32(2), w.Shark().Type())
	assert.Equal(t, 3, w.Registry().Len())
}

func TestResetIsSeedDeterministic(t *testing.T) {
	a, b := New(64, 64), New(64, 64)
	a.Reset(42)
	b.Reset(42)
	assert.Equal(t, a.Cells(), b.Cells())

	b.Reset(43)
	assert.NotEqual(t, a.Cells(), b.Cells())
}

func TestResetHonorsDensities(t *testing.T) {
	w := New(128, 128)
	w.Reset(7)

	total := 128 * 128
	empty, fish, shark := w.Counts()
	require.Equal(t, total, empty+fish+shark)

	// Default densities: 30% fish, 5% shark. Allow generous slack for a
	// single draw.
	assert.InDelta(t, 0.30, float64(fish)/float64(total), 0.03)
	assert.InDelta(t, 0.05, float64(shark)/float64(total), 0.02)
}

func TestStepIsReproducible(t *testing.T) {
	a, b := New(32, 32), New(32, 32)
	a.Reset(1234)
	b.Reset(1234)
	for i := 0; i < 3; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Cells(), b.Cells())
}

func TestStepKeepsTheGridWellTyped(t *testing.T) {
	w := New(32, 32)
	w.Reset(5)
	for i := 0; i < 5; i++ {
		w.Step()
	}

	empty, fish, shark := w.Counts()
	assert.Equal(t, 32*32, empty+fish+shark)
	for _, cell := range w.Cells() {
		assert.Less(t, int(cell), w.Registry().Len())
	}
}

func TestZeroSizedWorldIsInert(t *testing.T) {
	w := New(0, 0)
	assert.NotPanics(t, func() {
		w.Reset(1)
		w.Step()
	})
}

func TestPaletteMatchesRegistry(t *testing.T) {
	w := New(4, 4)
	palette := w.Palette()
	require.Len(t, palette, 3)
	assert.Equal(t, w.Empty().Color(), palette[0])
	assert.Equal(t, w.Fish().Color(), palette[1])
	assert.Equal(t, w.Shark().Color(), palette[2])
}

func TestWorldIsRegisteredAsASim(t *testing.T) {
	factory, ok := core.Sims()["wator"]
	require.True(t, ok)

	s := factory(map[string]string{"w": "8", "h": "8"})
	require.NotNil(t, s)
	assert.Equal(t, core.Size{W: 8, H: 8}, s.Size())
	assert.Equal(t, "wator", s.Name())
}

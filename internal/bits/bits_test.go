package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		pos   uint
		width uint
		value uint32
	}{
		{"leading", 0, 16, 0xbeef},
		{"single bit", 5, 1, 1},
		{"word aligned", 32, 32, 0xdeadbeef},
		{"straddles first boundary", 26, 10, 0x3ff},
		{"straddles second boundary", 60, 9, 0x1ab},
		{"tail", 88, 8, 0x5a},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewField(tc.pos, tc.width)
			var v Vector
			f.Write(&v, tc.value)
			assert.Equal(t, tc.value&f.Mask(), f.Read(&v))
		})
	}
}

func TestWriteTruncatesToFieldWidth(t *testing.T) {
	// Writes wider than the field truncate silently, like a store to a
	// fixed-width hardware register.
	f := NewField(16, 10)
	var v Vector
	f.Write(&v, 0xffffffff)
	assert.Equal(t, uint32(0x3ff), f.Read(&v))

	f.Write(&v, 0x400) // one past the field max: all field bits clear
	assert.Equal(t, uint32(0), f.Read(&v))
}

func TestWritePreservesNeighboringBits(t *testing.T) {
	var v Vector
	for i := range v {
		v[i] = 0xffffffff
	}
	f := NewField(30, 8) // straddles words 0 and 1
	f.Write(&v, 0)

	require.Equal(t, uint32(0), f.Read(&v))
	assert.Equal(t, uint32(0xfffffffc), v[0])
	assert.Equal(t, uint32(0x03ffffff), v[1])
	assert.Equal(t, uint32(0xffffffff), v[2])
}

func TestReadWriteExhaustiveOffsets(t *testing.T) {
	// Every legal (pos, width) with a recognizable pattern round-trips and
	// leaves the rest of the vector untouched.
	for width := uint(1); width <= MaxFieldBits; width++ {
		pattern := uint32(0xa5a5a5a5) & mask32(width)
		for pos := uint(0); pos+width <= VectorBits; pos++ {
			var v Vector
			v.Write(pos, width, pattern)
			if got := v.Read(pos, width); got != pattern {
				t.Fatalf("pos=%d width=%d: wrote %#x read %#x", pos, width, pattern, got)
			}
			v.Write(pos, width, 0)
			if v != (Vector{}) {
				t.Fatalf("pos=%d width=%d: clearing field left stray bits %v", pos, width, v)
			}
		}
	}
}

func TestNewFieldRejectsBadDeclarations(t *testing.T) {
	assert.Panics(t, func() { NewField(0, 0) })
	assert.Panics(t, func() { NewField(0, 33) })
	assert.Panics(t, func() { NewField(90, 8) })
	assert.NotPanics(t, func() { NewField(64, 32) })
}

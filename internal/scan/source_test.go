package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUnreadPeek(t *testing.T) {
	s := NewStringSource("ab")

	assert.Equal(t, int('a'), s.Read())
	s.Unread()
	assert.Equal(t, int('a'), s.Read())

	assert.Equal(t, int('b'), s.Peek())
	assert.Equal(t, int('b'), s.Read())

	assert.Equal(t, EOF, s.Read())
	// EOF is sticky and can be unread like any other result.
	s.Unread()
	assert.Equal(t, EOF, s.Read())
}

func TestDoubleUnreadPanics(t *testing.T) {
	s := NewStringSource("x")
	s.Read()
	s.Unread()
	assert.Panics(t, func() { s.Unread() })
}

func TestBytesReadExcludesPushback(t *testing.T) {
	s := NewStringSource("abc")
	s.Read()
	s.Read()
	require.Equal(t, 2, s.BytesRead())
	s.Unread()
	assert.Equal(t, 1, s.BytesRead())
	s.Read()
	assert.Equal(t, 2, s.BytesRead())
}

func TestScanSetStopsAtFirstNonMember(t *testing.T) {
	s := NewStringSource("aabba!rest")
	var b strings.Builder
	n := s.ScanSet(&b, "[ab]")
	assert.Equal(t, 5, n)
	assert.Equal(t, "aabba", b.String())
	assert.Equal(t, int('!'), s.Read())
}

func TestScanSetRangesAndNegation(t *testing.T) {
	s := NewStringSource("xyz123")
	var b strings.Builder
	assert.Equal(t, 3, s.ScanSet(&b, "[^0-9]"))
	assert.Equal(t, "xyz", b.String())
	assert.Equal(t, 3, s.SkipSet("[0-9]"))
	assert.Equal(t, EOF, s.Read())
}

func TestBadSetSpecPanics(t *testing.T) {
	s := NewStringSource("abc")
	assert.Panics(t, func() { s.SkipSet("abc") })
	assert.Panics(t, func() { s.SkipSet("[z-a]") })
}

func TestSkipWhitespace(t *testing.T) {
	s := NewStringSource(" \t\n\vdone")
	assert.Equal(t, 4, s.SkipWhitespace())
	assert.Equal(t, int('d'), s.Read())
}

func TestScanIdentifier(t *testing.T) {
	s := NewStringSource("  _grid_32 next")
	id, err := s.ScanIdentifier()
	require.NoError(t, err)
	assert.Equal(t, "_grid_32", id)

	// Identifiers cannot start with a digit; the stream is left at it.
	s = NewStringSource("9lives")
	_, err = s.ScanIdentifier()
	require.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, int('9'), s.Read())
}

func TestScanHexAndBinaryStrings(t *testing.T) {
	s := NewStringSource(" dEaD01;")
	h, err := s.ScanHexString()
	require.NoError(t, err)
	assert.Equal(t, "dEaD01", h)

	s = NewStringSource("01102")
	b, err := s.ScanBinaryString()
	require.NoError(t, err)
	assert.Equal(t, "0110", b)
	assert.Equal(t, int('2'), s.Read())
}

func TestScanDoubleQuotedString(t *testing.T) {
	s := NewStringSource(`"hello %22world%25" tail`)
	got, err := s.ScanDoubleQuotedString()
	require.NoError(t, err)
	assert.Equal(t, `hello "world%`, got)

	s = NewStringSource(`"unterminated`)
	_, err = s.ScanDoubleQuotedString()
	assert.ErrorIs(t, err, ErrFormat)

	s = NewStringSource(`"bad %zz escape"`)
	_, err = s.ScanDoubleQuotedString()
	assert.ErrorIs(t, err, ErrFormat)

	// Missing opening quote leaves the stream unchanged.
	s = NewStringSource("plain")
	_, err = s.ScanDoubleQuotedString()
	require.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, int('p'), s.Read())
}

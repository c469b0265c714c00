// Package bits implements the fixed-width bit vector that backs every atom,
// plus the named-field codec elements use to carve it up.
package bits

import "fmt"

const (
	// VectorBits is the total width of an atom's state, in bits.
	VectorBits = 96
	// WordBits is the width of one storage word.
	WordBits = 32
	// Words is the number of storage words per vector.
	Words = VectorBits / WordBits
	// MaxFieldBits is the widest field a single Read/Write can address.
	MaxFieldBits = 32
)

// Vector is a 96-bit vector stored big-endian-ish: bit 0 is the most
// significant bit of word 0.
type Vector [Words]uint32

func mask32(width uint) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return (1 << width) - 1
}

// Read returns the width-bit value starting at bit position pos. A field may
// span at most one word boundary (width <= 32).
func (v *Vector) Read(pos, width uint) uint32 {
	w := pos / WordBits
	b := pos % WordBits
	end := b + width
	if end <= WordBits {
		return (v[w] >> (WordBits - end)) & mask32(width)
	}
	over := end - WordBits
	hi := v[w] & mask32(WordBits-b)
	return (hi << over) | (v[w+1] >> (WordBits - over))
}

// Write stores the low width bits of val at bit position pos. Bits of val
// above the field width are discarded; bits of the vector outside the field
// are untouched. Truncation is deliberate: a field behaves like a fixed-width
// hardware register, not a checked integer.
func (v *Vector) Write(pos, width uint, val uint32) {
	val &= mask32(width)
	w := pos / WordBits
	b := pos % WordBits
	end := b + width
	if end <= WordBits {
		sh := WordBits - end
		v[w] = (v[w] &^ (mask32(width) << sh)) | (val << sh)
		return
	}
	over := end - WordBits
	hiWidth := width - over
	v[w] = (v[w] &^ mask32(hiWidth)) | (val >> over)
	sh := WordBits - over
	v[w+1] = (v[w+1] &^ (mask32(over) << sh)) | ((val & mask32(over)) << sh)
}

// Word returns storage word i. Used by serialization.
func (v *Vector) Word(i int) uint32 { return v[i] }

// SetWord overwrites storage word i. Used by deserialization.
func (v *Vector) SetWord(i int, w uint32) { v[i] = w }

// Field names a fixed (position, width) slice of a Vector. Fields are
// declared once, at element definition time; per-call bounds checks are not
// repeated.
type Field struct {
	pos   uint
	width uint
}

// NewField declares a field of the given width starting at bit pos. It
// panics if the field is empty, wider than one word, or overruns the vector;
// a bad field declaration is a programming error, never input-dependent.
func NewField(pos, width uint) Field {
	if width == 0 || width > MaxFieldBits {
		panic(fmt.Sprintf("bits: field width %d out of range", width))
	}
	if pos+width > VectorBits {
		panic(fmt.Sprintf("bits: field [%d,%d) overruns %d-bit vector", pos, pos+width, VectorBits))
	}
	return Field{pos: pos, width: width}
}

// Pos returns the field's starting bit position.
func (f Field) Pos() uint { return f.pos }

// Width returns the field's width in bits.
func (f Field) Width() uint { return f.width }

// Mask returns the field's value mask (low Width bits set).
func (f Field) Mask() uint32 { return mask32(f.width) }

// Max returns the largest value the field can hold.
func (f Field) Max() uint32 { return mask32(f.width) }

// Read extracts the field's value from v.
func (f Field) Read(v *Vector) uint32 { return v.Read(f.pos, f.width) }

// Write stores val into the field in v, truncating to the field width.
func (f Field) Write(v *Vector, val uint32) { v.Write(f.pos, f.width, val) }

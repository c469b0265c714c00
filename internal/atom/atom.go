// Package atom defines the bit-packed state record held at every grid site.
package atom

import "atom-ca/internal/bits"

const (
	// TypeBits is the width of the leading type tag.
	TypeBits = 16
	// MaxType is the largest representable type code.
	MaxType = 1<<TypeBits - 1
	// FirstStateBit is the first bit position not owned by the core. All
	// element-declared fields start at or after this position.
	FirstStateBit = TypeBits
)

// TypeField addresses the core-owned type tag. Its placement is the only
// layout guarantee the core makes; everything after it belongs to the element
// that owns the type.
var TypeField = bits.NewField(0, TypeBits)

// Atom is one site's complete state: a 96-bit vector whose leading bits carry
// the type tag. Atoms are plain values; they are copied in and out of event
// windows and have no identity apart from the site that holds them.
type Atom struct {
	bits bits.Vector
}

// New returns a zeroed atom tagged with the given type code.
func New(typeCode uint32) Atom {
	var a Atom
	TypeField.Write(&a.bits, typeCode)
	return a
}

// Type returns the atom's type tag.
func (a Atom) Type() uint32 { return TypeField.Read(&a.bits) }

// Get extracts an element-declared field's value.
func (a Atom) Get(f bits.Field) uint32 { return f.Read(&a.bits) }

// Set stores a value into an element-declared field, truncating to its width.
func (a *Atom) Set(f bits.Field, v uint32) { f.Write(&a.bits, v) }

// Word exposes storage word i for serialization.
func (a Atom) Word(i int) uint32 { return a.bits.Word(i) }

// SetWord overwrites storage word i during deserialization.
func (a *Atom) SetWord(i int, w uint32) { a.bits.SetWord(i, w) }

package elements

import (
	"atom-ca/internal/atom"
	"atom-ca/internal/bits"
	"atom-ca/internal/element"
)

// Water-pattern lineage layout: every predator-prey element packs a birth-age
// threshold and a running age directly after the core type tag. Element
// private fields begin at WaPatFirstFreeBit.
const (
	waPatBirthAgeBits = 10
	waPatAgeBits      = 10

	waPatBirthAgePos = atom.FirstStateBit
	waPatAgePos      = waPatBirthAgePos + waPatBirthAgeBits

	// WaPatFirstFreeBit is the first bit position a WaPat subtype may
	// claim for fields of its own.
	WaPatFirstFreeBit = waPatAgePos + waPatAgeBits

	// MaxWaPatAge is the saturation point of both age fields.
	MaxWaPatAge = 1<<waPatAgeBits - 1
)

var (
	waPatBirthAgeField = bits.NewField(waPatBirthAgePos, waPatBirthAgeBits)
	waPatAgeField      = bits.NewField(waPatAgePos, waPatAgeBits)
)

// WaPat is the shared base of the predator-prey elements: the packed age
// fields plus their accessors and the reproduction-eligibility rule.
type WaPat struct {
	element.Base
}

// BirthAge reads the atom's packed reproduction threshold.
func (p *WaPat) BirthAge(a atom.Atom) uint32 { return a.Get(waPatBirthAgeField) }

// SetBirthAge stores the atom's reproduction threshold.
func (p *WaPat) SetBirthAge(a *atom.Atom, v uint32) { a.Set(waPatBirthAgeField, v) }

// Age reads the atom's current age.
func (p *WaPat) Age(a atom.Atom) uint32 { return a.Get(waPatAgeField) }

// SetAge stores the atom's current age.
func (p *WaPat) SetAge(a *atom.Atom, v uint32) { a.Set(waPatAgeField, v) }

// CanReproduce reports whether the atom has reached its birth age.
func (p *WaPat) CanReproduce(a atom.Atom) bool { return p.Age(a) >= p.BirthAge(a) }

// Package element defines the behavior contract every atom type implements,
// the registry that binds type codes to behavior singletons, and the generic
// diffusion protocol elements may opt into.
package element

import (
	"fmt"
	"image/color"

	"atom-ca/internal/atom"
	"atom-ca/internal/mdist"
	"atom-ca/internal/window"

	"github.com/google/uuid"
)

// Element is the behavior module governing all atoms of one type. One
// long-lived singleton exists per type; atoms reference it through their type
// tag, never own it.
type Element interface {
	// Name is the element's human-readable identifier.
	Name() string
	// Symbol is the element's one or two character atomic symbol.
	Symbol() string
	// UUID identifies the element class across processes and snapshots.
	UUID() uuid.UUID
	// Type returns the allocated type code. Panics if called before the
	// registry has allocated one.
	Type() uint32
	// DefaultAtom returns the template atom new sites of this type start
	// from. Panics before allocation.
	DefaultAtom() atom.Atom
	// BuildDefaultAtom constructs the default-atom template. Called by
	// the registry once the type code exists; the template may reference
	// the code and the element's tunables.
	BuildDefaultAtom() atom.Atom
	// Behavior runs one event for the atom at the window's center.
	Behavior(w *window.Window)
	// Diffusability reports how much the atom now at nowAt wants to move
	// to maybeAt (the two may be equal, meaning "stay"). 0 vetoes the
	// move; CompleteDiffusability is full willingness; larger values are
	// clamped. Neither offset is necessarily the window center.
	Diffusability(w *window.Window, nowAt, maybeAt mdist.Point) uint32
	// PercentMovable reports, 0 to 100, how willing an atom of this type
	// (self) is to be displaced by other during generic diffusion.
	PercentMovable(other, self atom.Atom, offset mdist.Point) uint32
	// Color is the 32-bit color atoms of this type render with.
	Color() color.RGBA

	adopt(code uint32)
	setDefaultAtom(a atom.Atom)
}

// Base carries the state common to every element: identity, the allocated
// type code (or its absence), the atomic symbol, and the default-atom
// template. Concrete elements embed a Base and override behavior methods.
// Base values are not copyable once registered; elements are referenced,
// never owned.
type Base struct {
	name        string
	symbol      string
	id          uuid.UUID
	typeCode    uint32
	hasType     bool
	defaultAtom atom.Atom
}

// NewBase constructs the common element state. Symbols follow the periodic
// table convention: one or two characters only.
func NewBase(name, symbol string, id uuid.UUID) Base {
	if n := len(symbol); n == 0 || n > 2 {
		panic(fmt.Sprintf("element: symbol %q must be one or two characters", symbol))
	}
	return Base{name: name, symbol: symbol, id: id}
}

// Name returns the element's identifier.
func (b *Base) Name() string { return b.name }

// Symbol returns the element's atomic symbol.
func (b *Base) Symbol() string { return b.symbol }

// UUID returns the element class identity.
func (b *Base) UUID() uuid.UUID { return b.id }

// Type returns the allocated type code. Requesting the code before
// allocation is an illegal state and panics.
func (b *Base) Type() uint32 {
	if !b.hasType {
		panic(fmt.Sprintf("element: type of %q requested before allocation", b.name))
	}
	return b.typeCode
}

// HasType reports whether a type code has been allocated yet.
func (b *Base) HasType() bool { return b.hasType }

// IsType reports whether the given code is this element's allocated code.
func (b *Base) IsType(code uint32) bool { return b.Type() == code }

// DefaultAtom returns the template atom for this element. Panics before
// allocation, since the template embeds the type code.
func (b *Base) DefaultAtom() atom.Atom {
	if !b.hasType {
		panic(fmt.Sprintf("element: default atom of %q requested before allocation", b.name))
	}
	return b.defaultAtom
}

// BuildDefaultAtom returns a bare atom carrying only the type tag. Elements
// with packed state override this to fill their fields.
func (b *Base) BuildDefaultAtom() atom.Atom {
	return atom.New(b.Type())
}

// Diffusability implements the conservative default: an element that does
// not override diffusion is immobile: full willingness to stay, veto for
// every actual move.
func (b *Base) Diffusability(w *window.Window, nowAt, maybeAt mdist.Point) uint32 {
	return NoDiffusability(nowAt, maybeAt)
}

// PercentMovable defaults to 0: atoms of this type refuse displacement.
func (b *Base) PercentMovable(other, self atom.Atom, offset mdist.Point) uint32 {
	return 0
}

func (b *Base) adopt(code uint32) {
	b.typeCode = code
	b.hasType = true
}

func (b *Base) setDefaultAtom(a atom.Atom) {
	b.defaultAtom = a
}

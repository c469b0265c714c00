// Package window provides the bounded neighborhood view an element receives
// for one event. A window is the only access an element has to the grid: a
// radius-limited set of relative offsets around a hidden center, backed by
// storage the tile manager lends it for the event's duration.
package window

import (
	"fmt"

	"atom-ca/internal/atom"
	"atom-ca/internal/mdist"
	"atom-ca/pkg/core"
)

// Storage is the contract the tile/grid manager presents to windows. The
// boolean results report liveness: a site outside the tile's owned and cached
// area is not live and must be treated as invisible. The storage owner is
// responsible for ensuring that no two concurrently open windows cover
// conflicting live sites; windows assume that guarantee rather than enforce
// it.
type Storage interface {
	// AtomAt returns the atom at absolute site (x, y), or false if the
	// site is not live for this event.
	AtomAt(x, y int) (atom.Atom, bool)
	// SetAtomAt stores an atom at absolute site (x, y), or reports false
	// if the site is not live.
	SetAtomAt(x, y int, a atom.Atom) bool
}

// Window is an ephemeral, per-event view centered on one site. It is open
// from creation until Close; any use after Close panics. Offsets beyond the
// radius, and reads or writes of non-live sites, are invariant violations and
// panic as well; an element that trips them is defective, and continuing
// would corrupt packed state.
type Window struct {
	storage Storage
	cx, cy  int
	radius  int
	rng     *core.RNG
	open    bool
}

// Open creates a window over storage centered at absolute site (cx, cy). The
// rng seeds all randomness used during this event; giving each event an
// independently derived seed makes whole-grid runs reproducible.
func Open(storage Storage, cx, cy, radius int, rng *core.RNG) *Window {
	if radius < 0 {
		panic(fmt.Sprintf("window: negative radius %d", radius))
	}
	return &Window{storage: storage, cx: cx, cy: cy, radius: radius, rng: rng, open: true}
}

// Radius returns the window's radius.
func (w *Window) Radius() int { return w.radius }

// Random returns the event-scoped randomness source.
func (w *Window) Random() *core.RNG {
	w.checkOpen()
	return w.rng
}

// CenterAtom reads the atom at the window's origin.
func (w *Window) CenterAtom() atom.Atom {
	return w.RelativeAtom(mdist.Point{})
}

// SetCenterAtom writes the atom at the window's origin.
func (w *Window) SetCenterAtom(a atom.Atom) {
	w.SetRelativeAtom(mdist.Point{}, a)
}

// IsLiveSite reports whether the offset is within the radius and the backing
// storage currently makes that site visible to this event. Boundary and
// cache sites may be transiently not live.
func (w *Window) IsLiveSite(p mdist.Point) bool {
	w.checkOpen()
	if p.Manhattan() > w.radius {
		return false
	}
	_, live := w.storage.AtomAt(w.cx+p.X, w.cy+p.Y)
	return live
}

// RelativeAtom reads the atom at a relative offset. The offset must be
// within the radius and the site must be live.
func (w *Window) RelativeAtom(p mdist.Point) atom.Atom {
	w.checkOpen()
	w.checkRadius(p)
	a, live := w.storage.AtomAt(w.cx+p.X, w.cy+p.Y)
	if !live {
		panic(fmt.Sprintf("window: read of non-live site at offset (%d,%d)", p.X, p.Y))
	}
	return a
}

// SetRelativeAtom writes the atom at a relative offset. The offset must be
// within the radius and the site must be live.
func (w *Window) SetRelativeAtom(p mdist.Point, a atom.Atom) {
	w.checkOpen()
	w.checkRadius(p)
	if !w.storage.SetAtomAt(w.cx+p.X, w.cy+p.Y, a) {
		panic(fmt.Sprintf("window: write to non-live site at offset (%d,%d)", p.X, p.Y))
	}
}

// SwapAtoms exchanges the atoms at two offsets. Both must be live.
func (w *Window) SwapAtoms(a, b mdist.Point) {
	if a.Equals(b) {
		return
	}
	atomA := w.RelativeAtom(a)
	atomB := w.RelativeAtom(b)
	w.SetRelativeAtom(a, atomB)
	w.SetRelativeAtom(b, atomA)
}

// Close ends the event. The window must not be used afterwards.
func (w *Window) Close() {
	w.checkOpen()
	w.open = false
	w.storage = nil
	w.rng = nil
}

func (w *Window) checkOpen() {
	if !w.open {
		panic("window: use after close")
	}
}

func (w *Window) checkRadius(p mdist.Point) {
	if d := p.Manhattan(); d > w.radius {
		panic(fmt.Sprintf("window: offset (%d,%d) distance %d exceeds radius %d", p.X, p.Y, d, w.radius))
	}
}

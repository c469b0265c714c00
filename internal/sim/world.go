// Package sim provides the single-tile reference world: it owns the atom
// grid, the element registry and singletons, schedules events through
// radius-bounded windows, and implements the engine's storage and display
// contracts. It stands in for the multi-tile manager a distributed build
// would supply; the engine itself only ever sees the window.Storage side of
// it.
package sim

import (
	"atom-ca/internal/atom"
	"atom-ca/internal/core"
	"atom-ca/internal/element"
	"atom-ca/internal/elements"
	"atom-ca/internal/window"
	pcore "atom-ca/pkg/core"
)

// EventWindowRadius is the fixed radius of every event window this world
// opens.
const EventWindowRadius = 4

// World is a wator-style predator-prey world over bit-packed atoms.
type World struct {
	cfg Config

	w, h  int
	atoms []atom.Atom

	reg   *element.Registry
	empty *elements.Empty
	fish  *elements.Fish
	shark *elements.Shark

	display *core.ByteGrid
	rng     *pcore.RNG
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a world and its element catalog from the provided
// options. Element tunables are applied here, before any type allocation,
// so default-atom templates embed the configured values.
func NewWithConfig(cfg Config) *World {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}

	empty := elements.NewEmpty()
	fish := elements.NewFish(empty)
	shark := elements.NewShark(empty, fish)
	fish.SetDefaultBirthAge(uint32(cfg.Params.FishBirthAge))
	shark.SetDefaultBirthAge(uint32(cfg.Params.SharkBirthAge))
	shark.SetEnergyPerFish(uint32(cfg.Params.SharkEnergyPerFish))

	reg := element.NewRegistry()
	reg.Allocate(empty) // type 0: the vacating target every element relies on
	reg.Allocate(fish)
	reg.Allocate(shark)

	return &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		atoms:   make([]atom.Atom, total),
		reg:     reg,
		empty:   empty,
		fish:    fish,
		shark:   shark,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		rng:     pcore.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wator" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display buffer: one palette index per site.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Registry exposes the world's element registry.
func (w *World) Registry() *element.Registry { return w.reg }

// Empty, Fish and Shark expose the element singletons, mainly to tests and
// the snapshot codec.
func (w *World) Empty() *elements.Empty { return w.empty }

// Fish exposes the fish element singleton.
func (w *World) Fish() *elements.Fish { return w.fish }

// Shark exposes the shark element singleton.
func (w *World) Shark() *elements.Shark { return w.shark }

// AtomAt implements window.Storage: sites inside the grid are live, the
// border beyond it is not.
func (w *World) AtomAt(x, y int) (atom.Atom, bool) {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return atom.Atom{}, false
	}
	return w.atoms[y*w.w+x], true
}

// SetAtomAt implements window.Storage.
func (w *World) SetAtomAt(x, y int, a atom.Atom) bool {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return false
	}
	w.atoms[y*w.w+x] = a
	return true
}

// Reset seeds the world deterministically: a fraction of sites start as
// sharks, a fraction as fish, the rest as empty water. Passing seed 0 uses
// the configured seed.
func (w *World) Reset(seed int64) {
	if w.w == 0 || w.h == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)

	sharkCut := w.cfg.Params.SharkDensity
	fishCut := sharkCut + w.cfg.Params.FishDensity
	for i := range w.atoms {
		switch r := w.rng.Float64(); {
		case r < sharkCut:
			w.atoms[i] = w.shark.DefaultAtom()
		case r < fishCut:
			w.atoms[i] = w.fish.DefaultAtom()
		default:
			w.atoms[i] = w.empty.DefaultAtom()
		}
	}
	w.refreshDisplay()
}

// Step advances the world by one epoch: width*height events, each at a
// uniformly chosen site, each confined to a radius-bounded window, each with
// an independently derived random stream. Given the same seed the whole
// epoch is reproducible.
func (w *World) Step() {
	if w.w == 0 || w.h == 0 {
		return
	}
	events := w.w * w.h
	for i := 0; i < events; i++ {
		x := w.rng.IntN(w.w)
		y := w.rng.IntN(w.h)
		evRNG := pcore.NewRNG2(w.rng.Uint64(), w.rng.Uint64())

		win := window.Open(w, x, y, EventWindowRadius, evRNG)
		el := w.reg.Lookup(win.CenterAtom().Type())
		el.Behavior(win)
		win.Close()
	}
	w.refreshDisplay()
}

// Counts tallies the current population per element type.
func (w *World) Counts() (empty, fish, shark int) {
	for i := range w.atoms {
		switch w.atoms[i].Type() {
		case w.empty.Type():
			empty++
		case w.fish.Type():
			fish++
		case w.shark.Type():
			shark++
		}
	}
	return empty, fish, shark
}

func (w *World) refreshDisplay() {
	cells := w.display.Cells()
	for i := range w.atoms {
		cells[i] = uint8(w.atoms[i].Type())
	}
}

func init() {
	core.Register("wator", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}

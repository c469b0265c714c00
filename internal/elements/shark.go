package elements

import (
	"image/color"

	"atom-ca/internal/atom"
	"atom-ca/internal/bits"
	"atom-ca/internal/mdist"
	"atom-ca/internal/sampler"
	"atom-ca/internal/window"
)

const (
	sharkEnergyPos  = WaPatFirstFreeBit
	sharkEnergyBits = 9

	// MaxSharkEnergy is the saturation ceiling of the packed energy
	// counter.
	MaxSharkEnergy = 1<<sharkEnergyBits - 1

	// DefaultSharkBirthAge is the unconfigured reproduction threshold.
	DefaultSharkBirthAge = 16
	// DefaultEnergyPerFish is the unconfigured energy gained per meal.
	DefaultEnergyPerFish = 8
)

var sharkEnergyField = bits.NewField(sharkEnergyPos, sharkEnergyBits)

// Shark is the predator element. Every event costs one energy; a shark at
// zero energy starves and vacates. A hungry shark hunts its distance-1
// neighborhood, eating a uniformly chosen fish when one exists, otherwise
// drifting into a uniformly chosen empty site. A shark past its birth age
// that moves splits its energy with an offspring left at the old site.
type Shark struct {
	WaPat

	birthAge      uint32
	energyPerFish uint32

	empty *Empty
	fish  *Fish
}

// NewShark constructs the shark element singleton. Sharks need to recognize
// fish (their prey) and empty water (where they may drift).
func NewShark(empty *Empty, fish *Fish) *Shark {
	return &Shark{
		WaPat:         WaPat{Base: newWaPatBase("Shark", "Sh")},
		birthAge:      DefaultSharkBirthAge,
		energyPerFish: DefaultEnergyPerFish,
		empty:         empty,
		fish:          fish,
	}
}

// Energy reads the atom's packed energy counter.
func (s *Shark) Energy(a atom.Atom) uint32 { return a.Get(sharkEnergyField) }

// SetEnergy stores the atom's energy counter.
func (s *Shark) SetEnergy(a *atom.Atom, v uint32) { a.Set(sharkEnergyField, v) }

// DefaultBirthAge returns the tunable reproduction threshold.
func (s *Shark) DefaultBirthAge() uint32 { return s.birthAge }

// SetDefaultBirthAge updates the tunable threshold. Only configuration
// loading calls this, before types are allocated.
func (s *Shark) SetDefaultBirthAge(v uint32) {
	if v > MaxWaPatAge {
		v = MaxWaPatAge
	}
	s.birthAge = v
}

// EnergyPerFish returns the tunable per-meal energy gain.
func (s *Shark) EnergyPerFish() uint32 { return s.energyPerFish }

// SetEnergyPerFish updates the tunable per-meal gain. Only configuration
// loading calls this, before types are allocated.
func (s *Shark) SetEnergyPerFish(v uint32) {
	if v > MaxSharkEnergy {
		v = MaxSharkEnergy
	}
	s.energyPerFish = v
}

// BuildDefaultAtom stamps the type tag, the configured birth age, a zero
// starting age, and one meal's worth of starting energy.
func (s *Shark) BuildDefaultAtom() atom.Atom {
	a := atom.New(s.Type())
	s.SetBirthAge(&a, s.birthAge)
	s.SetAge(&a, 0)
	s.SetEnergy(&a, s.energyPerFish)
	return a
}

// Behavior runs one shark event.
func (s *Shark) Behavior(w *window.Window) {
	self := w.CenterAtom()

	energy := s.Energy(self)
	if energy == 0 {
		// Starvation is terminal: vacate without touching a neighbor.
		w.SetCenterAtom(s.empty.DefaultAtom())
		return
	}
	energy--
	s.SetEnergy(&self, energy)

	age := s.Age(self)
	reproable := age >= s.BirthAge(self)
	if !reproable {
		s.SetAge(&self, age+1)
	}

	rng := w.Random()
	fishPick := sampler.NewPicker(rng)
	emptyPick := sampler.NewPicker(rng)
	forEachNeighbor(w, func(rel mdist.Point, other atom.Atom) {
		switch other.Type() {
		case s.fish.Type():
			fishPick.Offer(rel)
		case s.empty.Type():
			emptyPick.Offer(rel)
		}
	})

	switch {
	case fishPick.Any(): // eat, then move or clone onto the prey's site
		energy += s.energyPerFish
		if energy > MaxSharkEnergy {
			energy = MaxSharkEnergy
		}
		if reproable {
			energy /= 2 // parent and kid split the meal
		}
		s.SetEnergy(&self, energy)
		s.moveOrClone(w, &self, reproable, fishPick.Chosen())

	case emptyPick.Any(): // no prey, but room to drift
		if reproable {
			energy /= 2
			s.SetEnergy(&self, energy)
		}
		s.moveOrClone(w, &self, reproable, emptyPick.Chosen())

	default: // boxed in; stay, hungrier and older
		w.SetCenterAtom(self)
	}
}

// moveOrClone finalizes an event that found a target site. A reproducible
// shark clones: the reset-age parent stays at the center and an identical
// copy lands on the target. A shark below birth age moves, leaving empty
// water behind.
func (s *Shark) moveOrClone(w *window.Window, self *atom.Atom, reproable bool, target mdist.Point) {
	if reproable {
		s.SetAge(self, 0)
		w.SetCenterAtom(*self)
	} else {
		w.SetCenterAtom(s.empty.DefaultAtom())
	}
	w.SetRelativeAtom(target, *self)
}

// Color renders sharks in the lavender of the original.
func (s *Shark) Color() color.RGBA {
	return color.RGBA{R: 0xbb, G: 0xaa, B: 0xff, A: 0xff}
}

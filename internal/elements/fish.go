package elements

import (
	"image/color"

	"atom-ca/internal/atom"
	"atom-ca/internal/mdist"
	"atom-ca/internal/sampler"
	"atom-ca/internal/window"
)

// DefaultFishBirthAge is the age at which a fish becomes able to reproduce,
// absent configuration.
const DefaultFishBirthAge = 20

// Fish is the prey element. A fish ages each event and, once old enough,
// clones into a randomly chosen adjacent empty site with its age reset;
// before that it simply swims into empty space, leaving empty water behind.
// Boxed-in fish stay and keep aging.
type Fish struct {
	WaPat

	birthAge uint32
	empty    *Empty
}

// NewFish constructs the fish element singleton. The empty element supplies
// the atom left behind when a fish moves.
func NewFish(empty *Empty) *Fish {
	return &Fish{
		WaPat:    WaPat{Base: newWaPatBase("Fish", "F")},
		birthAge: DefaultFishBirthAge,
		empty:    empty,
	}
}

// DefaultBirthAge returns the tunable birth-age threshold stamped into new
// fish atoms.
func (f *Fish) DefaultBirthAge() uint32 { return f.birthAge }

// SetDefaultBirthAge updates the tunable threshold. Configuration loading
// calls this before the world allocates types; events never mutate it.
func (f *Fish) SetDefaultBirthAge(v uint32) {
	if v > MaxWaPatAge {
		v = MaxWaPatAge
	}
	f.birthAge = v
}

// BuildDefaultAtom stamps the type tag, the configured birth age, and a zero
// starting age.
func (f *Fish) BuildDefaultAtom() atom.Atom {
	a := atom.New(f.Type())
	f.SetBirthAge(&a, f.birthAge)
	f.SetAge(&a, 0)
	return a
}

// Behavior runs one fish event: age if not yet fertile, then move or clone
// into a uniformly chosen adjacent empty site.
func (f *Fish) Behavior(w *window.Window) {
	self := w.CenterAtom()

	age := f.Age(self)
	reproable := age >= f.BirthAge(self)
	if !reproable {
		f.SetAge(&self, age+1)
	}

	emptyPick := sampler.NewPicker(w.Random())
	forEachNeighbor(w, func(rel mdist.Point, other atom.Atom) {
		if other.Type() == f.empty.Type() {
			emptyPick.Offer(rel)
		}
	})

	if !emptyPick.Any() {
		w.SetCenterAtom(self)
		return
	}

	if reproable {
		f.SetAge(&self, 0)
		w.SetCenterAtom(self) // parent stays, kid takes the empty site
	} else {
		w.SetCenterAtom(f.empty.DefaultAtom())
	}
	w.SetRelativeAtom(emptyPick.Chosen(), self)
}

// Color renders fish in a pale green.
func (f *Fish) Color() color.RGBA {
	return color.RGBA{R: 0xaa, G: 0xff, B: 0xbb, A: 0xff}
}

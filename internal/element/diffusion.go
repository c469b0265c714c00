package element

import (
	"atom-ca/internal/mdist"
	"atom-ca/internal/sampler"
	"atom-ca/internal/window"
)

// CompleteDiffusability is the normalization constant for move willingness:
// an element returning it from Diffusability is fully willing to make the
// proposed move. Larger values are clamped to it.
const CompleteDiffusability uint32 = 1000

// NoDiffusability scores full willingness to stay and vetoes every actual
// move. It is the default for elements that do not opt into diffusion.
func NoDiffusability(nowAt, maybeAt mdist.Point) uint32 {
	if nowAt.Equals(maybeAt) {
		return CompleteDiffusability
	}
	return 0
}

// Diffuse performs one round of generic movement negotiation for the atom at
// the window's center. Every live distance-1 site is scored by the center
// element's willingness to move there times the occupant's willingness to be
// displaced; staying put competes with the element's own stay score. A
// single weighted reservoir pass selects the outcome, and the winner (if it
// is not the center itself) is swapped with the center.
func Diffuse(w *window.Window, self Element, reg *Registry) {
	md := mdist.Get(w.Radius())
	center := mdist.Point{}
	selfAtom := w.CenterAtom()

	pick := sampler.NewWeightedPicker(w.Random())
	for i := md.FirstIndex(1); i <= md.LastIndex(1); i++ {
		rel := md.PointAt(i)
		if !w.IsLiveSite(rel) {
			continue
		}
		occupant := w.RelativeAtom(rel)
		want := clampDiffusability(self.Diffusability(w, center, rel))
		if want == 0 {
			continue
		}
		movable := reg.Lookup(occupant.Type()).PercentMovable(selfAtom, occupant, rel)
		if movable > 100 {
			movable = 100
		}
		pick.Offer(rel, want*movable/100)
	}
	pick.Offer(center, clampDiffusability(self.Diffusability(w, center, center)))

	if pick.Any() {
		w.SwapAtoms(center, pick.Chosen())
	}
}

func clampDiffusability(v uint32) uint32 {
	if v > CompleteDiffusability {
		return CompleteDiffusability
	}
	return v
}

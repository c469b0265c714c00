// Package sampler implements single-pass reservoir selection over offset
// streams. Behaviors discover candidate sites one at a time while walking an
// mdist band; a Picker keeps a uniform choice among everything offered so far
// in O(1) space, so the candidate set never has to be materialized.
package sampler

import (
	"atom-ca/internal/mdist"
	"atom-ca/pkg/core"
)

// Picker selects uniformly among offered candidates. After N offers, each
// candidate has probability exactly 1/N of being the held choice.
type Picker struct {
	rng    *core.RNG
	count  uint32
	choice mdist.Point
}

// NewPicker returns an empty picker drawing from the given RNG.
func NewPicker(rng *core.RNG) *Picker {
	return &Picker{rng: rng}
}

// Offer presents one candidate. The newest candidate replaces the held
// choice with probability 1/k, k being the number of candidates seen.
func (p *Picker) Offer(pt mdist.Point) {
	p.count++
	if p.rng.OneIn(p.count) {
		p.choice = pt
	}
}

// Count returns how many candidates have been offered.
func (p *Picker) Count() uint32 { return p.count }

// Any reports whether at least one candidate has been offered.
func (p *Picker) Any() bool { return p.count > 0 }

// Chosen returns the currently held candidate. Meaningless before the first
// Offer; callers gate on Any.
func (p *Picker) Chosen() mdist.Point { return p.choice }

// WeightedPicker selects among candidates with probability proportional to
// their offered weight, still in one pass and O(1) space. A zero weight never
// wins.
type WeightedPicker struct {
	rng    *core.RNG
	total  uint64
	choice mdist.Point
}

// NewWeightedPicker returns an empty weighted picker drawing from rng.
func NewWeightedPicker(rng *core.RNG) *WeightedPicker {
	return &WeightedPicker{rng: rng}
}

// Offer presents one candidate with the given weight. The candidate replaces
// the held choice with probability weight/totalWeightSoFar.
func (p *WeightedPicker) Offer(pt mdist.Point, weight uint32) {
	if weight == 0 {
		return
	}
	p.total += uint64(weight)
	if uint64(p.rng.Uint64()%p.total) < uint64(weight) {
		p.choice = pt
	}
}

// Any reports whether any candidate with positive weight has been offered.
func (p *WeightedPicker) Any() bool { return p.total > 0 }

// Chosen returns the currently held candidate; gate on Any first.
func (p *WeightedPicker) Chosen() mdist.Point { return p.choice }

package sampler

import (
	"testing"

	"atom-ca/internal/mdist"
	"atom-ca/pkg/core"
)

func TestPickerUniformity(t *testing.T) {
	// Offer the same five candidates many times; each should be the final
	// selection about a fifth of the time.
	candidates := []mdist.Point{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 0}}
	const trials = 100000

	rng := core.NewRNG(42)
	counts := map[mdist.Point]int{}
	for trial := 0; trial < trials; trial++ {
		p := NewPicker(rng)
		for _, c := range candidates {
			p.Offer(c)
		}
		if !p.Any() || p.Count() != uint32(len(candidates)) {
			t.Fatal("picker lost track of its candidates")
		}
		counts[p.Chosen()]++
	}

	want := float64(trials) / float64(len(candidates))
	for _, c := range candidates {
		got := float64(counts[c])
		if got < want*0.95 || got > want*1.05 {
			t.Fatalf("candidate %v selected %0.f times, want about %0.f", c, got, want)
		}
	}
}

func TestPickerSingleCandidateAlwaysWins(t *testing.T) {
	rng := core.NewRNG(7)
	only := mdist.Point{X: 1, Y: 0}
	for i := 0; i < 100; i++ {
		p := NewPicker(rng)
		p.Offer(only)
		if p.Chosen() != only {
			t.Fatal("sole candidate must always be chosen")
		}
	}
}

func TestPickerEmpty(t *testing.T) {
	p := NewPicker(core.NewRNG(1))
	if p.Any() || p.Count() != 0 {
		t.Fatal("fresh picker must be empty")
	}
}

func TestWeightedPickerProportionalSelection(t *testing.T) {
	// One candidate three times the weight of the other should win about
	// three quarters of the trials.
	heavy := mdist.Point{X: 1, Y: 0}
	light := mdist.Point{X: -1, Y: 0}
	const trials = 100000

	rng := core.NewRNG(99)
	heavyWins := 0
	for trial := 0; trial < trials; trial++ {
		p := NewWeightedPicker(rng)
		p.Offer(heavy, 750)
		p.Offer(light, 250)
		if p.Chosen() == heavy {
			heavyWins++
		}
	}

	got := float64(heavyWins) / float64(trials)
	if got < 0.73 || got > 0.77 {
		t.Fatalf("heavy candidate won %0.3f of trials, want about 0.75", got)
	}
}

func TestWeightedPickerIgnoresZeroWeight(t *testing.T) {
	rng := core.NewRNG(5)
	vetoed := mdist.Point{X: 0, Y: 1}
	allowed := mdist.Point{X: 0, Y: -1}
	for i := 0; i < 100; i++ {
		p := NewWeightedPicker(rng)
		p.Offer(vetoed, 0)
		if p.Any() {
			t.Fatal("zero-weight candidate must not be selectable")
		}
		p.Offer(allowed, 1)
		if p.Chosen() != allowed {
			t.Fatal("only positive-weight candidate must win")
		}
	}
}

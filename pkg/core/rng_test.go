package core

import (
	"math/rand/v2"
	"testing"
)

func TestSeedDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatal("same seed should give the same stream")
		}
	}
}

func TestTwoWordSeedsGiveDistinctStreams(t *testing.T) {
	a := NewRNG2(1, 1)
	b := NewRNG2(1, 2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same > 0 {
		t.Fatalf("streams with different seeds collided %d times", same)
	}
}

func TestOneIn(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 100; i++ {
		if !r.OneIn(1) {
			t.Fatal("OneIn(1) must always hold")
		}
	}

	const trials = 100000
	hits := 0
	for i := 0; i < trials; i++ {
		if r.OneIn(4) {
			hits++
		}
	}
	got := float64(hits) / float64(trials)
	if got < 0.24 || got > 0.26 {
		t.Fatalf("OneIn(4) hit rate %0.3f, want about 0.25", got)
	}
}

func TestBoundedDraws(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		if v := r.IntN(10); v < 0 || v >= 10 {
			t.Fatalf("IntN(10) returned %d", v)
		}
		if v := r.Uint32n(3); v >= 3 {
			t.Fatalf("Uint32n(3) returned %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 returned %f", f)
		}
	}
}

func TestFillBinary(t *testing.T) {
	buf := make([]uint8, 4096)
	FillBinary(rand.New(rand.NewPCG(9, 0)), buf)
	ones := 0
	for _, v := range buf {
		if v > 1 {
			t.Fatalf("non-binary value %d", v)
		}
		ones += int(v)
	}
	if ones < 1800 || ones > 2300 {
		t.Fatalf("suspicious ones count %d of %d", ones, len(buf))
	}
}

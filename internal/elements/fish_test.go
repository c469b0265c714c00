package elements

import (
	"testing"

	"atom-ca/internal/atom"
	"atom-ca/internal/element"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFishDefaultAtomCarriesConfiguredBirthAge(t *testing.T) {
	empty := NewEmpty()
	fish := NewFish(empty)
	fish.SetDefaultBirthAge(50)

	reg := element.NewRegistry()
	reg.Allocate(empty)
	reg.Allocate(fish)

	a := fish.DefaultAtom()
	assert.Equal(t, fish.Type(), a.Type())
	assert.Equal(t, uint32(50), fish.BirthAge(a))
	assert.Equal(t, uint32(0), fish.Age(a))
}

func TestFishBirthAgeClampsToFieldCapacity(t *testing.T) {
	fish := NewFish(NewEmpty())
	fish.SetDefaultBirthAge(5000)
	assert.Equal(t, uint32(MaxWaPatAge), fish.DefaultBirthAge())
}

func TestYoungFishSwimsIntoEmptyWater(t *testing.T) {
	_, empty, fish, _ := newWatorElements()

	sea := newSeaStorage(3, 3)
	sea.fill(fish.DefaultAtom())
	sea.SetAtomAt(2, 1, empty.DefaultAtom()) // sole open site, offset (1,0)

	w := openAt(sea, 1, 1, 1)
	fish.Behavior(w)
	w.Close()

	// The fish vacated and left water behind.
	left, _ := sea.AtomAt(1, 1)
	assert.Equal(t, empty.Type(), left.Type())

	moved, _ := sea.AtomAt(2, 1)
	require.Equal(t, fish.Type(), moved.Type())
	assert.Equal(t, uint32(1), fish.Age(moved))
}

func TestMatureFishClonesWithAgeReset(t *testing.T) {
	_, empty, fish, _ := newWatorElements()

	parent := fish.DefaultAtom()
	fish.SetAge(&parent, fish.DefaultBirthAge())

	sea := newSeaStorage(3, 3)
	sea.fill(fish.DefaultAtom())
	sea.SetAtomAt(1, 1, parent)
	sea.SetAtomAt(1, 0, empty.DefaultAtom()) // offset (0,-1)

	w := openAt(sea, 1, 1, 1)
	fish.Behavior(w)
	w.Close()

	center, _ := sea.AtomAt(1, 1)
	kid, _ := sea.AtomAt(1, 0)
	require.Equal(t, fish.Type(), center.Type())
	require.Equal(t, fish.Type(), kid.Type())
	assert.Equal(t, uint32(0), fish.Age(center))
	assert.Equal(t, center, kid)
}

func TestBoxedInFishKeepsAging(t *testing.T) {
	_, _, fish, _ := newWatorElements()

	sea := newSeaStorage(3, 3)
	sea.fill(fish.DefaultAtom())

	w := openAt(sea, 1, 1, 1)
	fish.Behavior(w)
	w.Close()

	center, _ := sea.AtomAt(1, 1)
	require.Equal(t, fish.Type(), center.Type())
	assert.Equal(t, uint32(1), fish.Age(center))

	// Neighbors were not touched.
	for _, xy := range [][2]int{{1, 0}, {0, 1}, {2, 1}, {1, 2}} {
		a, _ := sea.AtomAt(xy[0], xy[1])
		assert.Equal(t, uint32(0), fish.Age(a))
	}
}

func TestWaPatReproductionRule(t *testing.T) {
	fish := NewFish(NewEmpty())

	var a atom.Atom
	fish.SetBirthAge(&a, 10)
	fish.SetAge(&a, 9)
	assert.False(t, fish.CanReproduce(a))
	fish.SetAge(&a, 10)
	assert.True(t, fish.CanReproduce(a))
}

package elements

import (
	"atom-ca/internal/atom"
	"atom-ca/internal/element"
	"atom-ca/internal/window"
	"atom-ca/pkg/core"
)

// seaStorage is a small fully-live grid used by the element tests.
type seaStorage struct {
	w, h  int
	atoms []atom.Atom
}

func newSeaStorage(w, h int) *seaStorage {
	return &seaStorage{w: w, h: h, atoms: make([]atom.Atom, w*h)}
}

func (s *seaStorage) AtomAt(x, y int) (atom.Atom, bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return atom.Atom{}, false
	}
	return s.atoms[y*s.w+x], true
}

func (s *seaStorage) SetAtomAt(x, y int, a atom.Atom) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	s.atoms[y*s.w+x] = a
	return true
}

// fill sets every site of the grid to the given atom.
func (s *seaStorage) fill(a atom.Atom) {
	for i := range s.atoms {
		s.atoms[i] = a
	}
}

// newWatorElements allocates the three Wa-Tor elements into a fresh registry.
func newWatorElements() (*element.Registry, *Empty, *Fish, *Shark) {
	reg := element.NewRegistry()
	empty := NewEmpty()
	fish := NewFish(empty)
	shark := NewShark(empty, fish)
	reg.Allocate(empty)
	reg.Allocate(fish)
	reg.Allocate(shark)
	return reg, empty, fish, shark
}

// openAt opens a radius-1 event window at the grid's center site.
func openAt(s *seaStorage, x, y int, seed int64) *window.Window {
	return window.Open(s, x, y, 1, core.NewRNG(seed))
}

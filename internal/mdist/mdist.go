// Package mdist provides the precomputed Manhattan-distance index: a
// deterministic enumeration of all relative offsets within a radius, grouped
// into contiguous bands by exact distance. Behaviors use it to walk "all
// sites at distance 1", "everything within radius 2", and so on without
// re-filtering the window each time.
package mdist

import (
	"fmt"
	"sync"
)

// Point is a signed 2-D offset relative to an event window's center.
type Point struct {
	X, Y int
}

// Manhattan returns the Manhattan length |X| + |Y|.
func (p Point) Manhattan() int {
	d := 0
	if p.X < 0 {
		d -= p.X
	} else {
		d += p.X
	}
	if p.Y < 0 {
		d -= p.Y
	} else {
		d += p.Y
	}
	return d
}

// Equals reports whether two offsets are identical.
func (p Point) Equals(o Point) bool { return p == o }

// MDist is an immutable index over all offsets with Manhattan distance <= R.
// Offsets are stored in canonical order: band 0 first, then band 1, etc.,
// each band in a fixed scan order. The order never varies between runs, so
// band index ranges are stable and randomized selection over a band is
// reproducible given a seed.
type MDist struct {
	radius int
	points []Point
	first  []int
	last   []int
}

// New builds the index for the given radius. Radius must be non-negative.
func New(radius int) *MDist {
	if radius < 0 {
		panic(fmt.Sprintf("mdist: negative radius %d", radius))
	}
	m := &MDist{
		radius: radius,
		first:  make([]int, radius+1),
		last:   make([]int, radius+1),
	}
	for d := 0; d <= radius; d++ {
		m.first[d] = len(m.points)
		for y := -d; y <= d; y++ {
			for x := -d; x <= d; x++ {
				p := Point{X: x, Y: y}
				if p.Manhattan() == d {
					m.points = append(m.points, p)
				}
			}
		}
		m.last[d] = len(m.points) - 1
	}
	return m
}

// Radius returns the index's radius.
func (m *MDist) Radius() int { return m.radius }

// Size returns the total number of offsets within the radius.
func (m *MDist) Size() int { return len(m.points) }

// FirstIndex returns the index of the first offset at exactly distance d.
func (m *MDist) FirstIndex(d int) int {
	m.checkBand(d)
	return m.first[d]
}

// LastIndex returns the index of the last offset at exactly distance d,
// inclusive.
func (m *MDist) LastIndex(d int) int {
	m.checkBand(d)
	return m.last[d]
}

// PointAt returns the i-th offset in canonical order.
func (m *MDist) PointAt(i int) Point {
	if i < 0 || i >= len(m.points) {
		panic(fmt.Sprintf("mdist: index %d out of range [0,%d)", i, len(m.points)))
	}
	return m.points[i]
}

func (m *MDist) checkBand(d int) {
	if d < 0 || d > m.radius {
		panic(fmt.Sprintf("mdist: band %d out of range [0,%d]", d, m.radius))
	}
}

var (
	cacheMu sync.Mutex
	cache   = map[int]*MDist{}
)

// Get returns the shared index for the given radius, building it on first
// use. The returned value is immutable and safe for concurrent readers.
func Get(radius int) *MDist {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if m, ok := cache[radius]; ok {
		return m
	}
	m := New(radius)
	cache[radius] = m
	return m
}

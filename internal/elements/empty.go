package elements

import (
	"image/color"

	"atom-ca/internal/atom"
	"atom-ca/internal/element"
	"atom-ca/internal/mdist"
	"atom-ca/internal/window"
)

// Empty is the vacant-site element. It does nothing during its own events,
// moves freely, and never resists displacement; its default atom is what
// every vacating element leaves behind.
type Empty struct {
	element.Base
}

// NewEmpty constructs the empty element singleton.
func NewEmpty() *Empty {
	return &Empty{Base: element.NewBase("Empty", "E", classUUID("Empty", 1))}
}

// Behavior does nothing; empty sites have no dynamics of their own.
func (e *Empty) Behavior(w *window.Window) {}

// Diffusability reports full willingness for any move. Empty space flows
// wherever anything else wants to go.
func (e *Empty) Diffusability(w *window.Window, nowAt, maybeAt mdist.Point) uint32 {
	return element.CompleteDiffusability
}

// PercentMovable reports that empty sites never resist displacement.
func (e *Empty) PercentMovable(other, self atom.Atom, offset mdist.Point) uint32 {
	return 100
}

// Color renders empty sites as near-black water.
func (e *Empty) Color() color.RGBA {
	return color.RGBA{R: 8, G: 12, B: 24, A: 255}
}

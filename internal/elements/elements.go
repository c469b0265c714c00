// Package elements holds the concrete element implementations shipped with
// the engine: the empty site, and the fish/shark predator-prey pair.
package elements

import (
	"fmt"

	"atom-ca/internal/atom"
	"atom-ca/internal/element"
	"atom-ca/internal/mdist"
	"atom-ca/internal/window"

	"github.com/google/uuid"
)

// classUUID derives the stable identity of an element class from its name
// and version. The same (name, version) always maps to the same UUID, across
// processes and snapshots, so registries re-bind behaviors consistently.
func classUUID(name string, version int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("atom-ca/%s/%d", name, version)))
}

// newWaPatBase builds the common element state for a version-1 water-pattern
// element.
func newWaPatBase(name, symbol string) element.Base {
	return element.NewBase(name, symbol, classUUID(name, 1))
}

// forEachNeighbor visits every live site in the distance-1 band, in the
// deterministic mdist order, handing the callback the offset and the atom
// found there.
func forEachNeighbor(w *window.Window, visit func(rel mdist.Point, other atom.Atom)) {
	md := mdist.Get(w.Radius())
	for i := md.FirstIndex(1); i <= md.LastIndex(1); i++ {
		rel := md.PointAt(i)
		if !w.IsLiveSite(rel) {
			continue
		}
		visit(rel, w.RelativeAtom(rel))
	}
}

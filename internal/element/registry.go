package element

import (
	"fmt"

	"atom-ca/internal/atom"

	"github.com/google/uuid"
)

// Registry allocates type codes to element classes and resolves codes back
// to their behavior singletons. One registry belongs to one simulation
// context; it is not a process-wide global, so independent worlds can carry
// independent element catalogs.
//
// Codes are allocated monotonically from zero, once per UUID, and are stable
// for the registry's lifetime. The code space is bounded by the atom header's
// tag width; exhausting it is unrecoverable.
type Registry struct {
	byUUID map[uuid.UUID]uint32
	table  []Element
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byUUID: map[uuid.UUID]uint32{}}
}

// Allocate assigns a type code to the element, idempotently per UUID: the
// first call for a given UUID reserves the next unused code, later calls
// return the same code. Once the code exists the element's default-atom
// template is built, in that order, since the template embeds the code.
func (r *Registry) Allocate(e Element) uint32 {
	if code, ok := r.byUUID[e.UUID()]; ok {
		return code
	}
	if len(r.table) > atom.MaxType {
		panic(fmt.Sprintf("element: registry out of room allocating %q (%d types)", e.Name(), len(r.table)))
	}
	code := uint32(len(r.table))
	r.byUUID[e.UUID()] = code
	r.table = append(r.table, e)
	e.adopt(code)
	e.setDefaultAtom(e.BuildDefaultAtom())
	return code
}

// RefreshDefaultAtom rebuilds an allocated element's default-atom template
// after its tunables changed. Configuration code calls this between events;
// atoms already on the grid are unaffected.
func (r *Registry) RefreshDefaultAtom(e Element) {
	if _, ok := r.byUUID[e.UUID()]; !ok {
		panic(fmt.Sprintf("element: refresh of unallocated element %q", e.Name()))
	}
	e.setDefaultAtom(e.BuildDefaultAtom())
}

// Lookup resolves a type code to its element singleton. An unknown code
// means a corrupted tag or a foreign atom and is fatal.
func (r *Registry) Lookup(code uint32) Element {
	if int(code) >= len(r.table) {
		panic(fmt.Sprintf("element: lookup of unallocated type code %d", code))
	}
	return r.table[code]
}

// Len returns the number of allocated types.
func (r *Registry) Len() int { return len(r.table) }

// Package adjlist implements the adjacency-list graph of spec component
// C3: a directed variant and a bidirectional variant, both generic over a
// dense integer vertex-id width and over vertex/edge payload types.
//
// Storage is an array indexed by vertex id of (payload, out-edges[],
// optional in-edges[]). Each out-edge carries (destination, optional
// reverse-offset, payload). AddVertex/AddEdge are O(1) amortized; removal
// is O(out-degree) (and, for the bidirectional variant, proportional to the
// in-degree of whatever it touches) because later edges may shift offsets —
// which is exactly why removal invalidates outstanding EIds. Vertex removal
// never shifts other vertices' ids: removed vertices are tombstoned in
// place.
package adjlist

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// EID identifies an edge by its source vertex and its offset into that
// vertex's out-edge list. Equality of two EIDs implies identical source and
// identical edge; it says nothing about whether the edge still exists.
type EID[I constraints.Integer] struct {
	Source I
	Offset int
}

func (e EID[I]) String() string { return fmt.Sprintf("(%v,#%d)", e.Source, e.Offset) }

// outEdge is one entry in a vertex's out-edge list.
type outEdge[I constraints.Integer, EP any] struct {
	dest      I
	revOffset int // index into dest's in-list; -1 when not tracked
	payload   EP
}

// vertexRecord is one entry in the adjacency-list storage.
type vertexRecord[I constraints.Integer, VP any, EP any] struct {
	payload VP
	removed bool
	out     []outEdge[I, EP]
	in      []EID[I] // only populated by the bidirectional variant
}

// ErrVertexRemoved is the panic value checkAlive raises when an operation
// addresses a vertex that has been removed; no method returns it as an
// error.
type ErrVertexRemoved struct{ V any }

func (e ErrVertexRemoved) Error() string { return fmt.Sprintf("adjlist: vertex %v was removed", e.V) }

// checkAlive panics with ErrVertexRemoved if r is a tombstoned record. Every
// access path keyed on a single VId (EdgesFrom, OutDegree, VertexProperty,
// the endpoints of AddEdge, and the Bidirectional-only in-edge accessors)
// calls this before touching r's storage, since a removed vertex's out/in
// lists have already been cleared and silently returning an empty result
// would hide the misuse instead of reporting it.
func (r *vertexRecord[I, VP, EP]) checkAlive(v I) {
	if r.removed {
		panic(ErrVertexRemoved{V: v})
	}
}

package adjlist

import "golang.org/x/exp/constraints"

// Bidirectional is the adjacency-list graph variant that additionally
// maintains, for every vertex, the list of EIds whose edge points at it —
// the in-edges list. Invariant: for every forward edge (u->v, i), the
// reverse-offset recorded on that out-edge names the index j such that
// v.in[j] == EID{u,i}; this invariant is maintained by every mutator below
// and can be checked with CheckInvariants.
//
// Unlike the source this module is grounded on, every Bidirectional
// mutation (RemoveEdge, RemoveEdgeID, RemoveVertex, ClearVertex, and the
// predicate-based removals) is fully implemented rather than left as a
// fatal placeholder — see SPEC_FULL.md / DESIGN.md for that decision.
type Bidirectional[I constraints.Integer, VP any, EP any] struct {
	vertices []vertexRecord[I, VP, EP]
}

// NewBidirectional returns an empty bidirectional adjacency list.
func NewBidirectional[I constraints.Integer, VP any, EP any]() *Bidirectional[I, VP, EP] {
	return &Bidirectional[I, VP, EP]{}
}

// AddVertex appends a new vertex with a zero-valued payload.
func (g *Bidirectional[I, VP, EP]) AddVertex() I {
	var zero VP
	return g.AddVertexWith(zero)
}

// AddVertexWith appends a new vertex carrying payload p.
func (g *Bidirectional[I, VP, EP]) AddVertexWith(p VP) I {
	id := I(len(g.vertices))
	g.vertices = append(g.vertices, vertexRecord[I, VP, EP]{payload: p})
	return id
}

// AddEdge appends a directed edge u->v with a zero-valued payload,
// maintaining v's in-edge index.
func (g *Bidirectional[I, VP, EP]) AddEdge(u, v I) EID[I] {
	var zero EP
	return g.AddEdgeWith(u, v, zero)
}

// AddEdgeWith appends a directed edge u->v carrying payload p, maintaining
// v's in-edge index.
func (g *Bidirectional[I, VP, EP]) AddEdgeWith(u, v I, p EP) EID[I] {
	srcRec := &g.vertices[u]
	srcRec.checkAlive(u)
	dstRec := &g.vertices[v]
	dstRec.checkAlive(v)
	off := len(srcRec.out)
	revOff := len(dstRec.in)
	srcRec.out = append(srcRec.out, outEdge[I, EP]{dest: v, revOffset: revOff, payload: p})
	dstRec.in = append(dstRec.in, EID[I]{Source: u, Offset: off})
	return EID[I]{Source: u, Offset: off}
}

// Vertices returns every non-removed vertex id.
func (g *Bidirectional[I, VP, EP]) Vertices() []I {
	out := make([]I, 0, len(g.vertices))
	for i := range g.vertices {
		if !g.vertices[i].removed {
			out = append(out, I(i))
		}
	}
	return out
}

// VertexCount returns the number of non-removed vertices.
func (g *Bidirectional[I, VP, EP]) VertexCount() int {
	n := 0
	for i := range g.vertices {
		if !g.vertices[i].removed {
			n++
		}
	}
	return n
}

// EdgesFrom returns the ids of every edge leaving v.
func (g *Bidirectional[I, VP, EP]) EdgesFrom(v I) []EID[I] {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	out := make([]EID[I], len(rec.out))
	for i := range rec.out {
		out[i] = EID[I]{Source: v, Offset: i}
	}
	return out
}

// EdgesTo returns the ids of every edge arriving at v.
func (g *Bidirectional[I, VP, EP]) EdgesTo(v I) []EID[I] {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	out := make([]EID[I], len(rec.in))
	copy(out, rec.in)
	return out
}

// Source returns e's source vertex.
func (g *Bidirectional[I, VP, EP]) Source(e EID[I]) I { return e.Source }

// Destination returns e's destination vertex.
func (g *Bidirectional[I, VP, EP]) Destination(e EID[I]) I {
	rec := &g.vertices[e.Source]
	rec.checkAlive(e.Source)
	return rec.out[e.Offset].dest
}

// OutDegree returns the number of edges leaving v.
func (g *Bidirectional[I, VP, EP]) OutDegree(v I) int {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	return len(rec.out)
}

// InDegree returns the number of edges arriving at v.
func (g *Bidirectional[I, VP, EP]) InDegree(v I) int {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	return len(rec.in)
}

// Degree returns InDegree(v) + OutDegree(v).
func (g *Bidirectional[I, VP, EP]) Degree(v I) int { return g.InDegree(v) + g.OutDegree(v) }

// Edges returns every edge id in the graph. Complexity O(V+E).
func (g *Bidirectional[I, VP, EP]) Edges() []EID[I] {
	var out []EID[I]
	for i := range g.vertices {
		if g.vertices[i].removed {
			continue
		}
		for j := range g.vertices[i].out {
			out = append(out, EID[I]{Source: I(i), Offset: j})
		}
	}
	return out
}

// EdgeCount counts every edge in the graph. Complexity O(V).
func (g *Bidirectional[I, VP, EP]) EdgeCount() int {
	n := 0
	for i := range g.vertices {
		if !g.vertices[i].removed {
			n += len(g.vertices[i].out)
		}
	}
	return n
}

// VertexProperty returns v's payload.
func (g *Bidirectional[I, VP, EP]) VertexProperty(v I) VP {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	return rec.payload
}

// SetVertexProperty overwrites v's payload.
func (g *Bidirectional[I, VP, EP]) SetVertexProperty(v I, p VP) {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	rec.payload = p
}

// EdgeProperty returns e's payload.
func (g *Bidirectional[I, VP, EP]) EdgeProperty(e EID[I]) EP {
	rec := &g.vertices[e.Source]
	rec.checkAlive(e.Source)
	return rec.out[e.Offset].payload
}

// SetEdgeProperty overwrites e's payload.
func (g *Bidirectional[I, VP, EP]) SetEdgeProperty(e EID[I], p EP) {
	rec := &g.vertices[e.Source]
	rec.checkAlive(e.Source)
	rec.out[e.Offset].payload = p
}

// removeFromIn deletes the in-list entry at index idx from v's in-list via
// swap-remove, fixing the moved entry's owning out-edge's revOffset.
func (g *Bidirectional[I, VP, EP]) removeFromIn(v I, idx int) {
	rec := &g.vertices[v]
	last := len(rec.in) - 1
	if idx != last {
		moved := rec.in[last]
		rec.in[idx] = moved
		g.vertices[moved.Source].out[moved.Offset].revOffset = idx
	}
	rec.in = rec.in[:last]
}

// rebuildOut removes from u's out-edge list every index i for which
// removeAt(i) is true, fixing reverse-edge bookkeeping on both sides:
// removed edges lose their entry in their destination's in-list; kept
// edges (whose offset may shift due to compaction) get their destination's
// in-list entry rewritten to the new offset.
func (g *Bidirectional[I, VP, EP]) rebuildOut(u I, removeAt func(i int) bool) int {
	rec := &g.vertices[u]
	n := len(rec.out)

	// Phase 1: decide which indices are removed, up front.
	mask := make([]bool, n)
	removed := 0
	for i := 0; i < n; i++ {
		if removeAt(i) {
			mask[i] = true
			removed++
		}
	}

	// Phase 2: detach removed edges from their destinations' in-lists,
	// reading revOffset live since an earlier detach in this same loop may
	// have already shifted it (self-loops / shared destinations).
	for i := 0; i < n; i++ {
		if mask[i] {
			oe := rec.out[i]
			g.removeFromIn(oe.dest, oe.revOffset)
		}
	}

	// Phase 3: compact, preserving relative order of survivors.
	kept := rec.out[:0]
	for i := 0; i < n; i++ {
		if !mask[i] {
			kept = append(kept, rec.out[i])
		}
	}
	rec.out = kept

	// Phase 4: survivors' offsets may have shifted; rewrite their
	// destination's in-list entry to match.
	for newIdx := range rec.out {
		oe := rec.out[newIdx]
		g.vertices[oe.dest].in[oe.revOffset] = EID[I]{Source: u, Offset: newIdx}
	}

	return removed
}

// RemoveEdge deletes every edge u->v. Reports whether any existed.
func (g *Bidirectional[I, VP, EP]) RemoveEdge(u, v I) bool {
	rec := &g.vertices[u]
	return g.rebuildOut(u, func(i int) bool { return rec.out[i].dest == v }) > 0
}

// RemoveEdgeID deletes exactly the edge e names.
func (g *Bidirectional[I, VP, EP]) RemoveEdgeID(e EID[I]) {
	g.rebuildOut(e.Source, func(i int) bool { return i == e.Offset })
}

// RemoveVertex deletes v and every edge incident to it (both directions).
// v's slot is tombstoned in place so other vertices' ids are unaffected.
func (g *Bidirectional[I, VP, EP]) RemoveVertex(v I) {
	g.ClearVertex(v)
	g.vertices[v].removed = true
}

// ClearVertex removes every edge incident to v (both directions) but keeps
// v itself.
func (g *Bidirectional[I, VP, EP]) ClearVertex(v I) {
	// Drop v's own out-edges.
	g.rebuildOut(v, func(i int) bool { return true })

	// Drop every edge pointing at v, batched by source vertex so that
	// removing several in-edges sharing a source only ever uses one
	// rebuildOut call (keeping offsets valid throughout).
	inSnapshot := append([]EID[I](nil), g.vertices[v].in...)
	bySource := make(map[I]map[int]bool)
	for _, e := range inSnapshot {
		set, ok := bySource[e.Source]
		if !ok {
			set = make(map[int]bool)
			bySource[e.Source] = set
		}
		set[e.Offset] = true
	}
	for src, offsets := range bySource {
		g.rebuildOut(src, func(i int) bool { return offsets[i] })
	}
}

// RemoveEdgesWhere deletes every edge in the graph for which pred returns true.
func (g *Bidirectional[I, VP, EP]) RemoveEdgesWhere(pred func(e EID[I]) bool) {
	for i := range g.vertices {
		if g.vertices[i].removed {
			continue
		}
		g.RemoveEdgesFrom(I(i), pred)
	}
}

// RemoveEdgesFrom deletes every out-edge of v for which pred returns true,
// invoking pred in edge order.
func (g *Bidirectional[I, VP, EP]) RemoveEdgesFrom(v I, pred func(e EID[I]) bool) {
	g.rebuildOut(v, func(i int) bool { return pred(EID[I]{Source: v, Offset: i}) })
}

// CheckInvariants walks every forward edge and asserts that its
// destination's in-list names it back with an agreeing reverse-offset. It
// returns the first violation found, or nil if the graph is consistent.
// Intended for tests and debug assertions, as spec §4.3 calls for.
func (g *Bidirectional[I, VP, EP]) CheckInvariants() error {
	for i := range g.vertices {
		if g.vertices[i].removed {
			continue
		}
		u := I(i)
		for off, oe := range g.vertices[i].out {
			dstRec := &g.vertices[oe.dest]
			if oe.revOffset < 0 || oe.revOffset >= len(dstRec.in) {
				return invariantErrorf("edge %v->%v (#%d) has out-of-range reverse offset %d", u, oe.dest, off, oe.revOffset)
			}
			back := dstRec.in[oe.revOffset]
			if back.Source != u || back.Offset != off {
				return invariantErrorf("edge %v->%v (#%d): reverse entry names (%v,#%d) instead", u, oe.dest, off, back.Source, back.Offset)
			}
		}
	}
	return nil
}

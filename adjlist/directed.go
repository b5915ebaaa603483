package adjlist

import "golang.org/x/exp/constraints"

// Directed is the directed adjacency-list graph. It satisfies
// capability.MutableProperty and capability.SearchDefaults, but not
// capability.Bidirectional — it tracks no in-edge index, so RemoveVertex
// and ClearVertex fall back to an O(V+E) scan of every vertex's out-edges.
type Directed[I constraints.Integer, VP any, EP any] struct {
	vertices []vertexRecord[I, VP, EP]
}

// NewDirected returns an empty directed adjacency list.
func NewDirected[I constraints.Integer, VP any, EP any]() *Directed[I, VP, EP] {
	return &Directed[I, VP, EP]{}
}

// AddVertex appends a new vertex with a zero-valued payload and returns its id.
func (g *Directed[I, VP, EP]) AddVertex() I {
	var zero VP
	return g.AddVertexWith(zero)
}

// AddVertexWith appends a new vertex carrying payload p.
func (g *Directed[I, VP, EP]) AddVertexWith(p VP) I {
	id := I(len(g.vertices))
	g.vertices = append(g.vertices, vertexRecord[I, VP, EP]{payload: p})
	return id
}

// AddEdge appends a directed edge u->v with a zero-valued payload.
func (g *Directed[I, VP, EP]) AddEdge(u, v I) EID[I] {
	var zero EP
	return g.AddEdgeWith(u, v, zero)
}

// AddEdgeWith appends a directed edge u->v carrying payload p.
func (g *Directed[I, VP, EP]) AddEdgeWith(u, v I, p EP) EID[I] {
	rec := &g.vertices[u]
	rec.checkAlive(u)
	g.vertices[v].checkAlive(v)
	off := len(rec.out)
	rec.out = append(rec.out, outEdge[I, EP]{dest: v, revOffset: -1, payload: p})
	return EID[I]{Source: u, Offset: off}
}

// Vertices returns every non-removed vertex id, in storage order.
func (g *Directed[I, VP, EP]) Vertices() []I {
	out := make([]I, 0, len(g.vertices))
	for i := range g.vertices {
		if !g.vertices[i].removed {
			out = append(out, I(i))
		}
	}
	return out
}

// VertexCount returns the number of non-removed vertices.
func (g *Directed[I, VP, EP]) VertexCount() int {
	n := 0
	for i := range g.vertices {
		if !g.vertices[i].removed {
			n++
		}
	}
	return n
}

// EdgesFrom returns the ids of every edge leaving v.
func (g *Directed[I, VP, EP]) EdgesFrom(v I) []EID[I] {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	out := make([]EID[I], len(rec.out))
	for i := range rec.out {
		out[i] = EID[I]{Source: v, Offset: i}
	}
	return out
}

// Source returns e's source vertex.
func (g *Directed[I, VP, EP]) Source(e EID[I]) I { return e.Source }

// Destination returns e's destination vertex.
func (g *Directed[I, VP, EP]) Destination(e EID[I]) I {
	rec := &g.vertices[e.Source]
	rec.checkAlive(e.Source)
	return rec.out[e.Offset].dest
}

// OutDegree returns the number of edges leaving v.
func (g *Directed[I, VP, EP]) OutDegree(v I) int {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	return len(rec.out)
}

// Edges returns every edge id in the graph, in vertex-then-offset order.
// Complexity O(V+E).
func (g *Directed[I, VP, EP]) Edges() []EID[I] {
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
func (g *Directed[I, VP, EP]) EdgeCount() int {
	n := 0
	for i := range g.vertices {
		if !g.vertices[i].removed {
			n += len(g.vertices[i].out)
		}
	}
	return n
}

// VertexProperty returns v's payload.
func (g *Directed[I, VP, EP]) VertexProperty(v I) VP {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	return rec.payload
}

// SetVertexProperty overwrites v's payload.
func (g *Directed[I, VP, EP]) SetVertexProperty(v I, p VP) {
	rec := &g.vertices[v]
	rec.checkAlive(v)
	rec.payload = p
}

// EdgeProperty returns e's payload.
func (g *Directed[I, VP, EP]) EdgeProperty(e EID[I]) EP {
	rec := &g.vertices[e.Source]
	rec.checkAlive(e.Source)
	return rec.out[e.Offset].payload
}

// SetEdgeProperty overwrites e's payload.
func (g *Directed[I, VP, EP]) SetEdgeProperty(e EID[I], p EP) {
	rec := &g.vertices[e.Source]
	rec.checkAlive(e.Source)
	rec.out[e.Offset].payload = p
}

// compactOut rewrites u's out-edge list keeping only entries for which
// removeAt(i) is false, preserving relative order.
func (g *Directed[I, VP, EP]) compactOut(u I, removeAt func(i int) bool) int {
	rec := &g.vertices[u]
	n := len(rec.out)
	kept := rec.out[:0]
	removed := 0
	for i := 0; i < n; i++ {
		if removeAt(i) {
			removed++
			continue
		}
		kept = append(kept, rec.out[i])
	}
	rec.out = kept
	return removed
}

// RemoveEdge deletes every edge u->v. Reports whether any existed.
func (g *Directed[I, VP, EP]) RemoveEdge(u, v I) bool {
	rec := &g.vertices[u]
	n := len(rec.out)
	return g.compactOut(u, func(i int) bool { return i < n && rec.out[i].dest == v }) > 0
}

// RemoveEdgeID deletes exactly the edge e names.
func (g *Directed[I, VP, EP]) RemoveEdgeID(e EID[I]) {
	g.compactOut(e.Source, func(i int) bool { return i == e.Offset })
}

// RemoveVertex deletes v and every edge incident to it. Other vertices'
// ids are unaffected; v's slot is tombstoned, not removed, so it never
// reappears through Vertices().
func (g *Directed[I, VP, EP]) RemoveVertex(v I) {
	g.ClearVertex(v)
	g.vertices[v].removed = true
}

// ClearVertex removes every edge incident to v but keeps v itself. Because
// Directed tracks no in-edge index, this scans every other vertex's
// out-edge list: O(V+E).
func (g *Directed[I, VP, EP]) ClearVertex(v I) {
	g.vertices[v].out = nil
	for i := range g.vertices {
		if I(i) == v || g.vertices[i].removed {
			continue
		}
		u := I(i)
		rec := &g.vertices[u]
		g.compactOut(u, func(j int) bool { return rec.out[j].dest == v })
	}
}

// RemoveEdgesWhere deletes every edge in the graph for which pred returns true.
func (g *Directed[I, VP, EP]) RemoveEdgesWhere(pred func(e EID[I]) bool) {
	for i := range g.vertices {
		if g.vertices[i].removed {
			continue
		}
		u := I(i)
		g.RemoveEdgesFrom(u, pred)
	}
}

// RemoveEdgesFrom deletes every out-edge of v for which pred returns true,
// invoking pred in edge order.
func (g *Directed[I, VP, EP]) RemoveEdgesFrom(v I, pred func(e EID[I]) bool) {
	g.compactOut(v, func(i int) bool { return pred(EID[I]{Source: v, Offset: i}) })
}

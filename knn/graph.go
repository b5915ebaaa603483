package knn

import (
	"sort"

	"github.com/arvonlabs/graphkit/adjlist"
)

// Builder maintains an online approximate k-nearest-neighbor graph: every
// insertion hill-climbs from a seed set to find approximate neighbors,
// wires the new point to them bidirectionally, and trims each neighbor's
// edge list back down to k if the new connection pushed it over.
type Builder[P any] struct {
	g    *adjlist.Bidirectional[int, P, float64]
	dist DistanceFunc[P]
	k    int
}

// NewBuilder returns an empty builder targeting at most k neighbors per
// vertex under dist.
func NewBuilder[P any](dist DistanceFunc[P], k int) *Builder[P] {
	return &Builder[P]{g: adjlist.NewBidirectional[int, P, float64](), dist: dist, k: k}
}

// Graph exposes the underlying adjacency structure for read-only use
// (traversal, analysis, further queries).
func (b *Builder[P]) Graph() *adjlist.Bidirectional[int, P, float64] { return b.g }

// Insert adds point to the graph. seeds names the vertices hill climbing
// starts from; pass every existing vertex (via b.Graph().Vertices()) for
// small graphs, or a fixed subset for larger ones. The first insertion
// needs no seeds.
func (b *Builder[P]) Insert(point P, seeds []int) int {
	if b.g.VertexCount() == 0 {
		return b.g.AddVertexWith(point)
	}

	payload := func(v int) P { return b.g.VertexProperty(v) }
	neighbors := Search[int, adjlist.EID[int], P](b.g, payload, b.dist, point, seeds, b.k)

	id := b.g.AddVertexWith(point)
	for _, n := range neighbors {
		d := b.dist(point, payload(n))
		b.g.AddEdgeWith(id, n, d)
		b.g.AddEdgeWith(n, id, d)
		b.trim(n)
	}
	return id
}

// trim keeps only v's k closest out-edges, dropping the rest. It removes
// the losing edges in a single RemoveEdgesFrom pass (one rebuildOut) rather
// than one RemoveEdgeID per edge: RemoveEdgeID compacts v's out-list and
// shifts the offsets of every surviving higher-offset edge, so deleting
// edges[k:] one EID at a time would invalidate the remaining stale EIDs
// after the very first removal.
func (b *Builder[P]) trim(v int) {
	edges := b.g.EdgesFrom(v)
	if len(edges) <= b.k {
		return
	}
	sort.Slice(edges, func(i, j int) bool {
		return b.g.EdgeProperty(edges[i]) < b.g.EdgeProperty(edges[j])
	})
	keep := make(map[int]bool, b.k)
	for _, e := range edges[:b.k] {
		keep[e.Offset] = true
	}
	b.g.RemoveEdgesFrom(v, func(e adjlist.EID[int]) bool { return !keep[e.Offset] })
}

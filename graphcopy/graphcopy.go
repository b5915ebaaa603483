// Package graphcopy implements graph copy and edge-filtering adapters
// (spec component C12): copying any Incidence+VertexList source into any
// Mutable target under a caller-chosen vertex mapping, and a lazy
// edge-filtering view over any Incidence graph.
package graphcopy

import "github.com/arvonlabs/graphkit/capability"

// Source is the capability composition graphs being copied from need.
type Source[VId comparable, EId comparable] interface {
	capability.Incidence[VId, EId]
	capability.VertexList[VId, EId]
}

// From copies every vertex and edge of src into dst, calling AddVertex for
// each source vertex (in Vertices() order) and AddEdge for each of its
// out-edges, with endpoints translated through the mapping From built up
// as it goes. It returns that src-VId -> dst-VId mapping.
func From[SrcV comparable, SrcE comparable, DstV comparable, DstE comparable](
	src Source[SrcV, SrcE],
	dst capability.Mutable[DstV, DstE],
) map[SrcV]DstV {
	mapping := make(map[SrcV]DstV, src.VertexCount())
	for _, v := range src.Vertices() {
		mapping[v] = dst.AddVertex()
	}
	for _, v := range src.Vertices() {
		for _, e := range src.EdgesFrom(v) {
			dst.AddEdge(mapping[v], mapping[src.Destination(e)])
		}
	}
	return mapping
}

// PropertySource is Source plus payload access, for the property-graph
// overload.
type PropertySource[VId comparable, EId comparable, VP any, EP any] interface {
	Source[VId, EId]
	capability.Property[VId, EId, VP, EP]
}

// FromProperties copies src into dst like From, additionally copying
// vertex and edge payloads through dst's AddVertexWith/AddEdgeWith.
func FromProperties[SrcV comparable, SrcE comparable, DstV comparable, DstE comparable, VP any, EP any](
	src PropertySource[SrcV, SrcE, VP, EP],
	dst capability.MutableProperty[DstV, DstE, VP, EP],
) map[SrcV]DstV {
	mapping := make(map[SrcV]DstV, src.VertexCount())
	for _, v := range src.Vertices() {
		mapping[v] = dst.AddVertexWith(src.VertexProperty(v))
	}
	for _, v := range src.Vertices() {
		for _, e := range src.EdgesFrom(v) {
			dst.AddEdgeWith(mapping[v], mapping[src.Destination(e)], src.EdgeProperty(e))
		}
	}
	return mapping
}

package graphcopy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/graphcopy"
)

func TestFromCopiesStructure(t *testing.T) {
	src := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < 3; i++ {
		src.AddVertex()
	}
	src.AddEdge(0, 1)
	src.AddEdge(1, 2)
	src.AddEdge(2, 0)

	dst := adjlist.NewDirected[int, struct{}, struct{}]()
	mapping := graphcopy.From[int, adjlist.EID[int], int, adjlist.EID[int]](src, dst)

	require.Equal(t, 3, dst.VertexCount())
	require.Equal(t, 3, dst.EdgeCount())
	for srcV, dstV := range mapping {
		require.Equal(t, src.OutDegree(srcV), dst.OutDegree(dstV))
	}
}

func TestFromPropertiesCopiesPayloads(t *testing.T) {
	src := adjlist.NewDirected[int, string, int]()
	a := src.AddVertexWith("a")
	b := src.AddVertexWith("b")
	src.AddEdgeWith(a, b, 42)

	dst := adjlist.NewDirected[int, string, int]()
	mapping := graphcopy.FromProperties[int, adjlist.EID[int], int, adjlist.EID[int], string, int](src, dst)

	require.Equal(t, "a", dst.VertexProperty(mapping[a]))
	require.Equal(t, "b", dst.VertexProperty(mapping[b]))
	edges := dst.EdgesFrom(mapping[a])
	require.Len(t, edges, 1)
	require.Equal(t, 42, dst.EdgeProperty(edges[0]))
}

func TestExcludingSelfLoops(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	g.AddVertex()
	g.AddVertex()
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)

	filtered := graphcopy.ExcludingSelfLoops[int, adjlist.EID[int]](g)
	edges := filtered.EdgesFrom(0)
	require.Len(t, edges, 1)
	require.Equal(t, 1, filtered.Destination(edges[0]))
	require.Equal(t, 1, filtered.OutDegree(0))
}

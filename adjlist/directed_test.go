package adjlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/capability"
)

func TestDirectedBasics(t *testing.T) {
	g := adjlist.NewDirected[int32, string, float64]()
	a := g.AddVertexWith("alpha")
	b := g.AddVertexWith("beta")
	c := g.AddVertexWith("gamma")

	eAB := g.AddEdgeWith(a, b, 1.5)
	g.AddEdgeWith(b, c, 2.5)

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, b, g.Destination(eAB))
	require.Equal(t, 1.5, g.EdgeProperty(eAB))
	require.Equal(t, 1, g.OutDegree(a))
}

func TestDirectedRemoveVertexScansOthers(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(c, b)
	g.AddEdge(b, c)

	g.RemoveVertex(b)
	require.ElementsMatch(t, []int{a, c}, g.Vertices())
	require.Equal(t, 0, g.OutDegree(a))
	require.Equal(t, 0, g.OutDegree(c))
}

func TestDirectedColorMapFillsDense(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	g.AddVertex()
	g.AddVertex()
	cm := g.NewColorMap(capability.White)
	require.Equal(t, capability.White, cm.Get(0))
	cm.Set(1, capability.Gray)
	require.Equal(t, capability.Gray, cm.Get(1))
}

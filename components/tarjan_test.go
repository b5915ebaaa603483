package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/components"
)

// TestTwoCyclesBridgedByOneEdge grounds spec.md §8 scenario 4: two
// triangles {0,1,2} and {3,4,5}, each internally cyclic, joined by a
// single one-way edge 2->3. Expect exactly two components, with every
// vertex of the first triangle sharing one id and every vertex of the
// second sharing a different one.
func TestTwoCyclesBridgedByOneEdge(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < 6; i++ {
		g.AddVertex()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(5, 3)
	g.AddEdge(2, 3)

	res := components.Tarjan[int, adjlist.EID[int]](g, g.NewColorMap(capability.White))
	require.Equal(t, 2, res.Count)
	require.Equal(t, res.Component[0], res.Component[1])
	require.Equal(t, res.Component[1], res.Component[2])
	require.Equal(t, res.Component[3], res.Component[4])
	require.Equal(t, res.Component[4], res.Component[5])
	require.NotEqual(t, res.Component[0], res.Component[3])
}

func TestSingleVertexIsItsOwnComponent(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	g.AddVertex()
	res := components.Tarjan[int, adjlist.EID[int]](g, g.NewColorMap(capability.White))
	require.Equal(t, 1, res.Count)
	require.Equal(t, 0, res.Component[0])
}

package toposort_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/toposort"
)

// TestLinearChainOrder grounds spec.md §8 scenario 3.
func TestLinearChainOrder(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < 5; i++ {
		g.AddVertex()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	order, err := toposort.Sort[int, adjlist.EID[int]](g, g.NewColorMap(capability.White))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestCycleDetected(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < 5; i++ {
		g.AddVertex()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 0)

	_, err := toposort.Sort[int, adjlist.EID[int]](g, g.NewColorMap(capability.White))
	require.ErrorIs(t, err, toposort.ErrCycleDetected)
}

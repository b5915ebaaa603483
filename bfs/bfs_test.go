package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/bfs"
	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/event"
)

func buildComplete(n int) *adjlist.Directed[int, struct{}, struct{}] {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

// TestCompleteGraphBFS grounds spec.md §8 scenario 1: BFS over K5 from
// vertex 0 yields exactly one TreeEdge per other vertex and the rest
// NonTreeEdge.
func TestCompleteGraphBFS(t *testing.T) {
	g := buildComplete(5)
	colors := g.NewColorMap(capability.White)

	treeEdges, nonTreeEdges := 0, 0
	err := bfs.Walk[int, adjlist.EID[int]](g, colors, []int{0}, bfs.NewFIFOQueue[int](),
		func(ev event.BFSEvent[int, adjlist.EID[int]]) error {
			switch ev.Kind {
			case event.BFSTreeEdge:
				treeEdges++
			case event.BFSNonTreeEdge:
				nonTreeEdges++
			}
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, 4, treeEdges)
	require.Equal(t, 4, nonTreeEdges)
	for i := 0; i < 5; i++ {
		require.Equal(t, capability.Black, colors.Get(i))
	}
}

func TestBFSDepthOrderOnChain(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	colors := g.NewColorMap(capability.White)

	var order []int
	err := bfs.Walk[int, adjlist.EID[int]](g, colors, []int{0}, bfs.NewFIFOQueue[int](),
		func(ev event.BFSEvent[int, adjlist.EID[int]]) error {
			if ev.Kind == event.BFSExamineVertex {
				order = append(order, ev.Vertex)
			}
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestBFSRequiresAtLeastOneStart(t *testing.T) {
	g := buildComplete(2)
	colors := g.NewColorMap(capability.White)
	err := bfs.Walk[int, adjlist.EID[int]](g, colors, nil, bfs.NewFIFOQueue[int](),
		func(event.BFSEvent[int, adjlist.EID[int]]) error { return nil })
	require.ErrorIs(t, err, bfs.ErrNoStarts)
}

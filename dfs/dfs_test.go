package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/dfs"
	"github.com/arvonlabs/graphkit/event"
)

func buildChain(n int) *adjlist.Directed[int, struct{}, struct{}] {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1)
	}
	return g
}

func TestWalkColorsReachableBlackUnreachableWhite(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	// vertex 3 stays unreachable from 0.

	colors := g.NewColorMap(capability.White)
	require.NoError(t, dfs.Walk[int, adjlist.EID[int]](g, colors, 0, func(ev event.DFSEvent[int, adjlist.EID[int]]) error {
		return nil
	}))

	require.Equal(t, capability.Black, colors.Get(0))
	require.Equal(t, capability.Black, colors.Get(1))
	require.Equal(t, capability.Black, colors.Get(2))
	require.Equal(t, capability.White, colors.Get(3))
}

func TestWalkEmitsFinishInReverseTopoOrderOnDAG(t *testing.T) {
	g := buildChain(5)
	colors := g.NewColorMap(capability.White)

	var finishOrder []int
	err := dfs.Walk[int, adjlist.EID[int]](g, colors, 0, func(ev event.DFSEvent[int, adjlist.EID[int]]) error {
		if ev.Kind == event.DFSFinish {
			finishOrder = append(finishOrder, ev.Vertex)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2, 1, 0}, finishOrder)
}

func TestWalkStopSearchAbortsSilently(t *testing.T) {
	g := buildChain(5)
	colors := g.NewColorMap(capability.White)

	seen := 0
	err := dfs.Walk[int, adjlist.EID[int]](g, colors, 0, func(ev event.DFSEvent[int, adjlist.EID[int]]) error {
		if ev.Kind == event.DFSDiscover {
			seen++
			if ev.Vertex == 2 {
				return event.StopSearch
			}
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, seen) // 0, 1, 2
}

func TestTraverseCoversDisconnectedComponents(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	colors := g.NewColorMap(capability.White)

	var starts []int
	err := dfs.Traverse[int, adjlist.EID[int]](g, colors, func(ev event.DFSEvent[int, adjlist.EID[int]]) error {
		if ev.Kind == event.DFSStart {
			starts = append(starts, ev.Vertex)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, starts)
	for i := 0; i < 4; i++ {
		require.Equal(t, capability.Black, colors.Get(i))
	}
}

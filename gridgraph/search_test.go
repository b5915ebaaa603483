package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/bfs"
	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/event"
	"github.com/arvonlabs/graphkit/gridgraph"
)

// TestBFSOverBoundedManhattanGrid grounds the grid family against the
// generic search algorithms: a 3x3 Manhattan-connected box BFS'd from its
// center should reach every cell within 2 steps.
func TestBFSOverBoundedManhattanGrid(t *testing.T) {
	g := gridgraph.NewRectangularGrid(
		gridgraph.Point2{X: -1, Y: -1}, gridgraph.Point2{X: 1, Y: 1},
		gridgraph.CompleteVertexFilter, gridgraph.ManhattanEdgeFilter,
	)
	colors := g.NewColorMap(capability.White)

	visited := 0
	err := bfs.Walk[gridgraph.Point2, gridgraph.GridEdge](g, colors, []gridgraph.Point2{{X: 0, Y: 0}}, bfs.NewFIFOQueue[gridgraph.Point2](),
		func(ev event.BFSEvent[gridgraph.Point2, gridgraph.GridEdge]) error {
			if ev.Kind == event.BFSDiscover {
				visited++
			}
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, 9, visited)
}

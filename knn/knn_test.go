package knn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/knn"
)

type point struct{ x, y float64 }

func euclidean(a, b point) float64 {
	dx, dy := a.x-b.x, a.y-b.y
	return math.Sqrt(dx*dx + dy*dy)
}

func TestBuilderFindsNearestNeighborsOnALine(t *testing.T) {
	b := knn.NewBuilder[point](euclidean, 2)
	var ids []int
	for i := 0; i < 6; i++ {
		ids = append(ids, b.Insert(point{x: float64(i)}, b.Graph().Vertices()))
	}

	g := b.Graph()
	// Vertex 3 (x=3) should have neighbors drawn from its immediate
	// surroundings on the line, not from the far ends.
	neighbors := make(map[int]bool)
	for _, e := range g.EdgesFrom(ids[3]) {
		neighbors[g.Destination(e)] = true
	}
	require.LessOrEqual(t, len(neighbors), 2)
	for n := range neighbors {
		require.LessOrEqual(t, math.Abs(float64(n)-3), 2.0)
	}
}

func TestSearchReturnsKNearest(t *testing.T) {
	b := knn.NewBuilder[point](euclidean, 3)
	for i := 0; i < 10; i++ {
		b.Insert(point{x: float64(i)}, b.Graph().Vertices())
	}
	g := b.Graph()
	payload := func(v int) point { return g.VertexProperty(v) }

	found := knn.Search[int, adjlist.EID[int], point](g, payload, euclidean, point{x: 5.1}, g.Vertices(), 3)
	require.Len(t, found, 3)
	for _, v := range found {
		require.LessOrEqual(t, math.Abs(float64(v)-5.1), 2.0)
	}
}

package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/analysis"
)

func buildStar(leaves int) *adjlist.Directed[int, struct{}, struct{}] {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	g.AddVertex() // hub, id 0
	for i := 0; i < leaves; i++ {
		l := g.AddVertex()
		g.AddEdge(0, l)
	}
	return g
}

func TestDegreesSplitsAtK(t *testing.T) {
	g := buildStar(5)
	dist := analysis.Degrees[int, adjlist.EID[int]](g, 3)
	require.Equal(t, 5, dist.EdgeCount)
	require.Equal(t, 6, dist.VertexCount)
	require.Equal(t, 5, dist.Small[0]) // every leaf has out-degree 0
	require.Equal(t, []analysis.LargeDegreeCount{{Degree: 5, Count: 1}}, dist.Large)
}

func TestClusteringOfTriangleIsOne(t *testing.T) {
	g := adjlist.NewDirected[int, struct{}, struct{}]()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				g.AddEdge(i, j)
			}
		}
	}
	require.InDelta(t, 1.0, analysis.GlobalClusteringCoefficient[int, adjlist.EID[int]](g), 1e-9)
}

func TestClusteringOfStarIsZero(t *testing.T) {
	g := buildStar(4)
	require.InDelta(t, 0.0, analysis.LocalClusteringCoefficient[int, adjlist.EID[int]](g, 0), 1e-9)
}

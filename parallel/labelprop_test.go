package parallel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/parallel"
)

// TestLabelPropagationSpreadsSeedAlongChain builds a 0-1-2-3-4 chain
// (edges both directions, equal weight) with vertex 0 seeded to label 0
// and vertex 4 seeded to label 1, and checks the middle vertex ends up
// between the two seeds after propagation.
func TestLabelPropagationSpreadsSeedAlongChain(t *testing.T) {
	g := adjlist.NewDirected[int, parallel.VertexState, float64]()
	for i := 0; i < 5; i++ {
		g.AddVertexWith(parallel.NewVertexState(1))
	}
	for i := 0; i < 4; i++ {
		g.AddEdgeWith(i, i+1, 1.0)
		g.AddEdgeWith(i+1, i, 1.0)
	}

	seed0 := parallel.NewVertexState(1)
	seed0.Seed.Set(0, 0.0)
	seed0.HasSeed = true
	g.SetVertexProperty(0, seed0)

	seed4 := parallel.NewVertexState(1)
	seed4.Seed.Set(0, 1.0)
	seed4.HasSeed = true
	g.SetVertexProperty(4, seed4)

	mailboxes := parallel.NewSequentialMailboxes[int]()
	pool := parallel.NewSequentialPool()
	edgeWeight := func(e adjlist.EID[int]) float64 { return g.EdgeProperty(e) }

	cfg := parallel.Config{M1: 1, M2: 1, M3: 0.1, MaxSteps: 20}
	err := parallel.Run[int, adjlist.EID[int], float64](g, mailboxes, pool, edgeWeight, cfg, nil)
	require.NoError(t, err)

	v0, _ := g.VertexProperty(0).Computed.Get(0)
	v2, _ := g.VertexProperty(2).Computed.Get(0)
	v4, _ := g.VertexProperty(4).Computed.Get(0)

	require.Less(t, v0, v2)
	require.Less(t, v2, v4)
}

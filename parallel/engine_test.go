package parallel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/parallel"
)

type sumMessage int

func (s sumMessage) Merge(other parallel.Message) parallel.Message { return s + other.(sumMessage) }

// TestStepSumsIncomingEdgeWeight grounds spec.md §4.11's own worked
// example: every vertex sends 1 to each out-neighbor in one step; after a
// second step stores the delivered sum, each vertex's payload equals its
// in-degree.
func TestStepSumsIncomingEdgeWeight(t *testing.T) {
	g := adjlist.NewDirected[int, int, struct{}]()
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	g.AddEdge(3, 2)

	mailboxes := parallel.NewSequentialMailboxes[int]()
	pool := parallel.NewSequentialPool()

	step := func(ctx *parallel.Context[int, adjlist.EID[int], int, struct{}], payload *int) (struct{}, bool) {
		for _, e := range ctx.Edges() {
			ctx.Send(ctx.Destination(e), sumMessage(1))
		}
		return struct{}{}, false
	}
	_, err := parallel.Step[int, adjlist.EID[int], int, struct{}, struct{}](g, mailboxes, pool, struct{}{}, func(a, b struct{}) struct{} { return a }, step)
	require.NoError(t, err)

	collect := func(ctx *parallel.Context[int, adjlist.EID[int], int, struct{}], payload *int) (struct{}, bool) {
		if msg, ok := ctx.Inbox(); ok {
			*payload = int(msg.(sumMessage))
		}
		return struct{}{}, false
	}
	_, err = parallel.Step[int, adjlist.EID[int], int, struct{}, struct{}](g, mailboxes, pool, struct{}{}, func(a, b struct{}) struct{} { return a }, collect)
	require.NoError(t, err)

	require.Equal(t, 0, g.VertexProperty(0))
	require.Equal(t, 1, g.VertexProperty(1))
	require.Equal(t, 3, g.VertexProperty(2))
	require.Equal(t, 0, g.VertexProperty(3))
}

// TestStepWithRealPoolMergesAcrossWorkers drives Step through the real
// errgroup-backed Pool with more than one worker, so the PerThreadMailboxes
// merge path and partition actually run under concurrent goroutines rather
// than the single-goroutine sequentialPool every other engine test uses.
func TestStepWithRealPoolMergesAcrossWorkers(t *testing.T) {
	g := adjlist.NewDirected[int, int, struct{}]()
	for i := 0; i < 8; i++ {
		g.AddVertex()
	}
	for i := 1; i < 8; i++ {
		g.AddEdge(i, 0)
	}

	pool := parallel.NewPool(4)
	mailboxes := parallel.NewPerThreadMailboxes[int](4)

	send := func(ctx *parallel.Context[int, adjlist.EID[int], int, struct{}], payload *int) (struct{}, bool) {
		for _, e := range ctx.Edges() {
			ctx.Send(ctx.Destination(e), sumMessage(1))
		}
		return struct{}{}, false
	}
	_, err := parallel.Step[int, adjlist.EID[int], int, struct{}, struct{}](g, mailboxes, pool, struct{}{}, func(a, b struct{}) struct{} { return a }, send)
	require.NoError(t, err)

	pool2 := parallel.NewPool(4)
	collect := func(ctx *parallel.Context[int, adjlist.EID[int], int, struct{}], payload *int) (struct{}, bool) {
		if msg, ok := ctx.Inbox(); ok {
			*payload = int(msg.(sumMessage))
		}
		return struct{}{}, false
	}
	_, err = parallel.Step[int, adjlist.EID[int], int, struct{}, struct{}](g, mailboxes, pool2, struct{}{}, func(a, b struct{}) struct{} { return a }, collect)
	require.NoError(t, err)

	require.Equal(t, 7, g.VertexProperty(0))
	for i := 1; i < 8; i++ {
		require.Equal(t, 0, g.VertexProperty(i))
	}
}

func TestPerThreadMailboxesMergeAcrossWorkers(t *testing.T) {
	mb := parallel.NewPerThreadMailboxes[int](3)
	mb.Sender(0).Send(5, sumMessage(1))
	mb.Sender(1).Send(5, sumMessage(2))
	mb.Sender(2).Send(6, sumMessage(4))

	pending := mb.Deliver()
	require.True(t, pending)

	msg, ok := mb.Inbox(5)
	require.True(t, ok)
	require.Equal(t, sumMessage(3), msg)

	msg, ok = mb.Inbox(6)
	require.True(t, ok)
	require.Equal(t, sumMessage(4), msg)

	_, ok = mb.Inbox(7)
	require.False(t, ok)
}

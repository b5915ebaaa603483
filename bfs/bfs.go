// Package bfs implements breadth-first search (spec component C6) over any
// graph satisfying capability.Incidence, driven by an event callback and
// parameterized over an abstract queue primitive.
//
// The queue is abstract on purpose: a plain FIFO deque drives ordinary BFS,
// while the dijkstra package drives the very same Walk with a priority
// queue indexed by vertex, turning BFS into Dijkstra's algorithm by
// relaxing distances inside the TreeEdge/GrayDestination callbacks (a
// BlackDestination edge is reported as not relaxed). See dijkstra.Search.
//
// Complexity: O(V+E) with an O(1) Queue; Dijkstra's own bound follows from
// whatever priority queue it supplies.
package bfs

import (
	"errors"

	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/event"
)

// ErrNoStarts is returned when Walk is given an empty start-vertex set.
var ErrNoStarts = errors.New("bfs: at least one start vertex is required")

// Queue is the abstract FIFO/priority primitive BFS drives. Pop must return
// ok=false once the queue is empty.
type Queue[VId any] interface {
	Push(v VId)
	Pop() (v VId, ok bool)
}

// Callback receives one event.BFSEvent at a time. Returning event.StopSearch
// aborts the walk silently; any other non-nil error propagates.
type Callback[VId comparable, EId comparable] func(ev event.BFSEvent[VId, EId]) error

// fifoQueue is the plain FIFO deque used for ordinary (unweighted) BFS.
type fifoQueue[VId any] struct{ items []VId }

// NewFIFOQueue returns the default FIFO Queue used for unweighted BFS.
func NewFIFOQueue[VId any]() Queue[VId] { return &fifoQueue[VId]{} }

func (q *fifoQueue[VId]) Push(v VId) { q.items = append(q.items, v) }
func (q *fifoQueue[VId]) Pop() (VId, bool) {
	if len(q.items) == 0 {
		var zero VId
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// Walk performs breadth-first search from every vertex in starts over g,
// using colors as the vertex color map (initialized to White for every
// vertex the caller cares about) and queue as the frontier.
func Walk[VId comparable, EId comparable](g capability.Incidence[VId, EId], colors capability.ColorMap[VId], starts []VId, queue Queue[VId], cb Callback[VId, EId]) error {
	if len(starts) == 0 {
		return ErrNoStarts
	}

	for _, s := range starts {
		colors.Set(s, capability.Gray)
		if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSStart, Vertex: s}); err != nil {
			return abort(err)
		}
		if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSDiscover, Vertex: s}); err != nil {
			return abort(err)
		}
		queue.Push(s)
	}

	for {
		v, ok := queue.Pop()
		if !ok {
			break
		}
		if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSExamineVertex, Vertex: v}); err != nil {
			return abort(err)
		}

		for _, e := range g.EdgesFrom(v) {
			if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSExamineEdge, Edge: e}); err != nil {
				return abort(err)
			}
			w := g.Destination(e)
			switch colors.Get(w) {
			case capability.White:
				if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSDiscover, Vertex: w}); err != nil {
					return abort(err)
				}
				if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSTreeEdge, Edge: e}); err != nil {
					return abort(err)
				}
				colors.Set(w, capability.Gray)
				queue.Push(w)
			case capability.Gray:
				if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSNonTreeEdge, Edge: e}); err != nil {
					return abort(err)
				}
				if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSGrayDestination, Edge: e}); err != nil {
					return abort(err)
				}
			case capability.Black:
				if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSNonTreeEdge, Edge: e}); err != nil {
					return abort(err)
				}
				if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSBlackDestination, Edge: e}); err != nil {
					return abort(err)
				}
			}
		}

		colors.Set(v, capability.Black)
		if err := cb(event.BFSEvent[VId, EId]{Kind: event.BFSFinish, Vertex: v}); err != nil {
			return abort(err)
		}
	}
	return nil
}

func abort(err error) error {
	if errors.Is(err, event.StopSearch) {
		return nil
	}
	return err
}

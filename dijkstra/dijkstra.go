package dijkstra

import (
	"errors"

	"github.com/arvonlabs/graphkit/bfs"
	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/event"
)

// ErrGoalUnreachable is returned by ShortestPath when goal was never
// reached from start.
var ErrGoalUnreachable = errors.New("dijkstra: goal unreachable from start")

// Callback receives one event.DijkstraEvent at a time. Returning
// event.StopSearch aborts the search silently.
type Callback[VId comparable, EId comparable] func(ev event.DijkstraEvent[VId, EId]) error

// Search computes shortest distances from start over g into dist (which
// the caller must have initialized to infinity for every vertex it cares
// about), using length to weigh each edge. It assumes non-negative edge
// weights only insofar as early termination (SearchToGoal) requires it;
// full single-source search tolerates negative weights, same as
// bfs.Walk/dfs.Walk tolerate arbitrary edges.
func Search[VId comparable, EId comparable, D Distance](
	g capability.Incidence[VId, EId],
	colors capability.ColorMap[VId],
	dist DistanceMap[VId, D],
	length func(e EId) D,
	start VId,
	infinity D,
	cb Callback[VId, EId],
) error {
	var zero D
	dist.Set(start, zero)
	pq := NewPriorityQueue[VId, D](infinity)

	var zeroEdge EId
	relax := func(e EId) error {
		src, dst := g.Source(e), g.Destination(e)
		candidate := dist.Get(src) + length(e)
		if candidate < dist.Get(dst) {
			dist.Set(dst, candidate)
			pq.Update(dst, candidate)
			return cb(event.DijkstraEvent[VId, EId]{Kind: event.DijkstraEdgeRelaxed, Edge: e})
		}
		return cb(event.DijkstraEvent[VId, EId]{Kind: event.DijkstraEdgeNotRelaxed, Edge: e})
	}

	return bfs.Walk[VId, EId](g, colors, []VId{start}, pq, func(ev event.BFSEvent[VId, EId]) error {
		switch ev.Kind {
		case event.BFSStart:
			return cb(event.DijkstraEvent[VId, EId]{Kind: event.DijkstraStart, Vertex: ev.Vertex, Edge: zeroEdge})
		case event.BFSDiscover:
			return cb(event.DijkstraEvent[VId, EId]{Kind: event.DijkstraDiscover, Vertex: ev.Vertex, Edge: zeroEdge})
		case event.BFSExamineVertex:
			return cb(event.DijkstraEvent[VId, EId]{Kind: event.DijkstraExamineVertex, Vertex: ev.Vertex, Edge: zeroEdge})
		case event.BFSExamineEdge:
			return cb(event.DijkstraEvent[VId, EId]{Kind: event.DijkstraExamineEdge, Edge: ev.Edge})
		case event.BFSTreeEdge, event.BFSGrayDestination:
			return relax(ev.Edge)
		case event.BFSBlackDestination:
			return cb(event.DijkstraEvent[VId, EId]{Kind: event.DijkstraEdgeNotRelaxed, Edge: ev.Edge})
		case event.BFSFinish:
			return cb(event.DijkstraEvent[VId, EId]{Kind: event.DijkstraFinish, Vertex: ev.Vertex, Edge: zeroEdge})
		}
		return nil
	})
}

// SearchToGoal runs Search but stops (via event.StopSearch) the moment
// goal is popped from the priority queue — i.e. on goal's
// ExamineVertex event — which is correct only when every edge weight is
// non-negative.
func SearchToGoal[VId comparable, EId comparable, D Distance](
	g capability.Incidence[VId, EId],
	colors capability.ColorMap[VId],
	dist DistanceMap[VId, D],
	length func(e EId) D,
	start, goal VId,
	infinity D,
	cb Callback[VId, EId],
) error {
	return Search[VId, EId, D](g, colors, dist, length, start, infinity, func(ev event.DijkstraEvent[VId, EId]) error {
		if err := cb(ev); err != nil {
			return err
		}
		if ev.Kind == event.DijkstraExamineVertex && ev.Vertex == goal {
			return event.StopSearch
		}
		return nil
	})
}

// ShortestPath runs SearchToGoal while recording predecessors on every
// EdgeRelaxed event, and returns the reconstructed start->goal path. It
// returns ErrGoalUnreachable if goal was never discovered.
func ShortestPath[VId comparable, EId comparable, D Distance](
	g capability.Incidence[VId, EId],
	colors capability.ColorMap[VId],
	dist DistanceMap[VId, D],
	length func(e EId) D,
	start, goal VId,
	infinity D,
	recorder event.PredecessorRecorder[VId],
) ([]VId, D, error) {
	err := SearchToGoal[VId, EId, D](g, colors, dist, length, start, goal, infinity, func(ev event.DijkstraEvent[VId, EId]) error {
		if ev.Kind == event.DijkstraEdgeRelaxed {
			recorder.Record(g.Source(ev.Edge), g.Destination(ev.Edge))
		}
		return nil
	})
	if err != nil {
		var zero D
		return nil, zero, err
	}
	path := recorder.Path(goal)
	if path == nil {
		return nil, infinity, ErrGoalUnreachable
	}
	return path, dist.Get(goal), nil
}

// Package dfs implements iterative depth-first search (spec component C6)
// over any graph satisfying capability.Incidence, driven entirely by an
// event callback.
//
// Key features:
//   - Walk: single-source DFS using an explicit stack (no recursion, so
//     depth is bounded only by available memory, not goroutine stack size).
//   - Traverse: depth_first_traversal — repeats Walk from the next White
//     vertex until every vertex has been blackened, covering disconnected
//     components.
//   - The callback may return event.StopSearch to abort the walk silently;
//     any other error propagates to the caller.
//
// Complexity: O(V+E) for Walk (O(V) extra for the color map), same for
// Traverse across the whole forest.
package dfs

import (
	"errors"
	"fmt"

	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/event"
)

// ErrStartNotWhite is returned when Walk is asked to start from a vertex
// that is not capability.White — the caller must initialize (or re-use) a
// color map consistently with how it intends to drive the search.
var ErrStartNotWhite = errors.New("dfs: start vertex is not White")

// IncidenceVertexList is the capability composition depth_first_traversal
// needs: enough to enumerate every vertex and to walk out-edges from it.
type IncidenceVertexList[VId comparable, EId comparable] interface {
	capability.Incidence[VId, EId]
	capability.VertexList[VId, EId]
}

// Callback receives one event.DFSEvent at a time. Returning event.StopSearch
// aborts the walk silently; any other non-nil error propagates.
type Callback[VId comparable, EId comparable] func(ev event.DFSEvent[VId, EId]) error

type frame[VId comparable, EId comparable] struct {
	v     VId
	edges []EId
	idx   int
}

// Walk performs depth-first search from start over g, using colors as the
// vertex color map (which the caller must have initialized to White for
// every vertex it cares about). Edges are examined in the order EdgesFrom
// yields them.
func Walk[VId comparable, EId comparable](g capability.Incidence[VId, EId], colors capability.ColorMap[VId], start VId, cb Callback[VId, EId]) error {
	if colors.Get(start) != capability.White {
		return ErrStartNotWhite
	}

	if err := cb(event.DFSEvent[VId, EId]{Kind: event.DFSStart, Vertex: start}); err != nil {
		return abort(err)
	}
	colors.Set(start, capability.Gray)
	if err := cb(event.DFSEvent[VId, EId]{Kind: event.DFSDiscover, Vertex: start}); err != nil {
		return abort(err)
	}

	stack := []*frame[VId, EId]{{v: start, edges: g.EdgesFrom(start)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx >= len(top.edges) {
			stack = stack[:len(stack)-1]
			colors.Set(top.v, capability.Black)
			if err := cb(event.DFSEvent[VId, EId]{Kind: event.DFSFinish, Vertex: top.v}); err != nil {
				return abort(err)
			}
			continue
		}

		e := top.edges[top.idx]
		top.idx++
		if err := cb(event.DFSEvent[VId, EId]{Kind: event.DFSExamine, Edge: e}); err != nil {
			return abort(err)
		}

		w := g.Destination(e)
		switch colors.Get(w) {
		case capability.White:
			if err := cb(event.DFSEvent[VId, EId]{Kind: event.DFSTreeEdge, Edge: e}); err != nil {
				return abort(err)
			}
			colors.Set(w, capability.Gray)
			if err := cb(event.DFSEvent[VId, EId]{Kind: event.DFSDiscover, Vertex: w}); err != nil {
				return abort(err)
			}
			stack = append(stack, &frame[VId, EId]{v: w, edges: g.EdgesFrom(w)})
		case capability.Gray:
			if err := cb(event.DFSEvent[VId, EId]{Kind: event.DFSBackEdge, Edge: e}); err != nil {
				return abort(err)
			}
		case capability.Black:
			if err := cb(event.DFSEvent[VId, EId]{Kind: event.DFSForwardOrCrossEdge, Edge: e}); err != nil {
				return abort(err)
			}
		default:
			return fmt.Errorf("dfs: unknown vertex color %v", colors.Get(w))
		}
	}
	return nil
}

// Traverse repeatedly starts Walk from the next White vertex (in the order
// Vertices returns them) until every vertex has been blackened, covering
// disconnected components as a forest.
func Traverse[VId comparable, EId comparable](g IncidenceVertexList[VId, EId], colors capability.ColorMap[VId], cb Callback[VId, EId]) error {
	for _, v := range g.Vertices() {
		if colors.Get(v) == capability.White {
			if err := Walk[VId, EId](g, colors, v, cb); err != nil {
				return err
			}
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

// Package toposort implements topological sort (spec component C7,
// continued) on top of dfs.Traverse: a back edge means the graph has a
// cycle, and reversing finish order yields a valid topological order.
package toposort

import (
	"errors"

	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/dfs"
	"github.com/arvonlabs/graphkit/event"
)

// ErrCycleDetected is returned when the graph is not a DAG.
var ErrCycleDetected = errors.New("toposort: cycle detected")

// Sort returns g's vertices in topological order: for every edge u->v, u
// precedes v. Returns ErrCycleDetected if g has a cycle. colors must be
// initialized to capability.White for every vertex.
func Sort[VId comparable, EId comparable](g dfs.IncidenceVertexList[VId, EId], colors capability.ColorMap[VId]) ([]VId, error) {
	order := make([]VId, 0, g.VertexCount())
	err := dfs.Traverse[VId, EId](g, colors, func(ev event.DFSEvent[VId, EId]) error {
		switch ev.Kind {
		case event.DFSBackEdge:
			return ErrCycleDetected
		case event.DFSFinish:
			order = append(order, ev.Vertex)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	reverse(order)
	return order, nil
}

func reverse[VId any](s []VId) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Package components implements Tarjan's strongly-connected-components
// algorithm (spec component C8) as a layer over dfs.Traverse: instead of
// maintaining an explicit low-link array, it tracks a stack of "root
// candidates" indexed by discovery time, collapsing it whenever a back or
// cross edge reaches an already-discovered vertex still on the active
// stack.
package components

import (
	"math"

	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/dfs"
	"github.com/arvonlabs/graphkit/event"
)

// Unassigned is the sentinel component id a vertex carries until Tarjan
// closes its strongly-connected component.
const Unassigned = math.MaxInt

// Result is the outcome of a Tarjan run: component ids 0..Count-1,
// assigned so that if u and v are in the same SCC, component[u] ==
// component[v].
type Result[VId comparable] struct {
	Component map[VId]int
	Count     int
}

// Tarjan computes strongly connected components of g. colors must be
// initialized to capability.White for every vertex.
func Tarjan[VId comparable, EId comparable](g dfs.IncidenceVertexList[VId, EId], colors capability.ColorMap[VId]) Result[VId] {
	disc := make(map[VId]int)
	comp := make(map[VId]int)
	var stack, roots []VId
	var clock, count int

	discOf := func(v VId) int {
		if d, ok := disc[v]; ok {
			return d
		}
		return Unassigned
	}

	_ = dfs.Traverse[VId, EId](g, colors, func(ev event.DFSEvent[VId, EId]) error {
		switch ev.Kind {
		case event.DFSDiscover:
			v := ev.Vertex
			disc[v] = clock
			clock++
			comp[v] = Unassigned
			stack = append(stack, v)
			roots = append(roots, v)
		case event.DFSBackEdge, event.DFSForwardOrCrossEdge:
			w := g.Destination(ev.Edge)
			if comp[w] != Unassigned {
				return nil
			}
			for len(roots) > 0 && discOf(roots[len(roots)-1]) > discOf(w) {
				roots = roots[:len(roots)-1]
			}
		case event.DFSFinish:
			v := ev.Vertex
			if len(roots) > 0 && roots[len(roots)-1] == v {
				roots = roots[:len(roots)-1]
				for {
					n := len(stack) - 1
					top := stack[n]
					stack = stack[:n]
					comp[top] = count
					if top == v {
						break
					}
				}
				count++
			}
		}
		return nil
	})

	return Result[VId]{Component: comp, Count: count}
}

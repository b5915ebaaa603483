package graphcopy

import "github.com/arvonlabs/graphkit/capability"

// FilteredGraph wraps an Incidence graph so that EdgesFrom lazily skips
// any edge for which predicate returns false. Iteration order otherwise
// matches the underlying graph's.
type FilteredGraph[VId comparable, EId comparable] struct {
	inner     capability.Incidence[VId, EId]
	predicate capability.EdgePredicate[VId, EId]
}

// FilterEdges wraps g so that only edges satisfying predicate are
// visible through EdgesFrom/OutDegree.
func FilterEdges[VId comparable, EId comparable](g capability.Incidence[VId, EId], predicate capability.EdgePredicate[VId, EId]) *FilteredGraph[VId, EId] {
	return &FilteredGraph[VId, EId]{inner: g, predicate: predicate}
}

// ExcludingSelfLoops wraps g so that every edge with Source == Destination
// is hidden.
func ExcludingSelfLoops[VId comparable, EId comparable](g capability.Incidence[VId, EId]) *FilteredGraph[VId, EId] {
	return FilterEdges[VId, EId](g, func(g capability.Incidence[VId, EId], e EId) bool {
		return g.Source(e) != g.Destination(e)
	})
}

// EdgesFrom implements capability.Incidence, lazily skipping edges the
// predicate rejects.
func (f *FilteredGraph[VId, EId]) EdgesFrom(v VId) []EId {
	all := f.inner.EdgesFrom(v)
	out := make([]EId, 0, len(all))
	for _, e := range all {
		if f.predicate(f.inner, e) {
			out = append(out, e)
		}
	}
	return out
}

// Source implements capability.Incidence.
func (f *FilteredGraph[VId, EId]) Source(e EId) VId { return f.inner.Source(e) }

// Destination implements capability.Incidence.
func (f *FilteredGraph[VId, EId]) Destination(e EId) VId { return f.inner.Destination(e) }

// OutDegree implements capability.Incidence as len(EdgesFrom(v)): the
// predicate may reject edges, so it cannot be read off the wrapped
// graph's own OutDegree.
func (f *FilteredGraph[VId, EId]) OutDegree(v VId) int { return len(f.EdgesFrom(v)) }

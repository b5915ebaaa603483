package adjlist

import (
	"github.com/arvonlabs/graphkit/capability"
	"golang.org/x/exp/constraints"
)

// projection is the capability.ParallelProjection both Directed and
// Bidirectional hand to the parallel engine: structural reads delegate to
// the owning graph (safe to share across workers, since a super-step never
// mutates structure), and Payload hands out a pointer directly into the
// graph's own storage, partitioned per vertex.
type projection[I constraints.Integer, VP any, EP any] struct {
	incidence interface {
		EdgesFrom(v I) []EID[I]
		Source(e EID[I]) I
		Destination(e EID[I]) I
		OutDegree(v I) int
	}
	payload func(v I) *VP
}

func (p projection[I, VP, EP]) EdgesFrom(v I) []EID[I]    { return p.incidence.EdgesFrom(v) }
func (p projection[I, VP, EP]) Source(e EID[I]) I         { return p.incidence.Source(e) }
func (p projection[I, VP, EP]) Destination(e EID[I]) I    { return p.incidence.Destination(e) }
func (p projection[I, VP, EP]) OutDegree(v I) int         { return p.incidence.OutDegree(v) }
func (p projection[I, VP, EP]) Payload(v I) *VP           { return p.payload(v) }

// Project implements capability.ParallelGraph for Directed.
func (g *Directed[I, VP, EP]) Project() capability.ParallelProjection[I, EID[I], VP] {
	return projection[I, VP, EP]{incidence: g, payload: func(v I) *VP { return &g.vertices[v].payload }}
}

// Project implements capability.ParallelGraph for Bidirectional.
func (g *Bidirectional[I, VP, EP]) Project() capability.ParallelProjection[I, EID[I], VP] {
	return projection[I, VP, EP]{incidence: g, payload: func(v I) *VP { return &g.vertices[v].payload }}
}

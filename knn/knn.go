// Package knn implements approximate k-nearest-neighbor search and graph
// construction (spec component C9) via enhanced hill climbing: starting
// from one or more seed vertices, each round offers every out-neighbor of
// the current frontier that is not already in the bounded candidate beam,
// and those neighbors become the next frontier. It stops when the frontier
// is empty or two consecutive rounds add nothing to the beam.
package knn

import (
	"sort"

	"github.com/arvonlabs/graphkit/capability"
)

// DistanceFunc measures dissimilarity between two payloads. Smaller is
// closer; it need not be a metric (triangle inequality is not required),
// but hill climbing is only meaningful when nearby points tend to share
// neighbors.
type DistanceFunc[P any] func(a, b P) float64

// candidate is one entry of the bounded beam hill climbing maintains.
type candidate[VId comparable] struct {
	vertex VId
	dist   float64
}

// beam is a bounded, always-sorted-ascending list of the best k
// candidates seen so far. k is assumed small, so linear insertion beats
// heap bookkeeping.
type beam[VId comparable] struct {
	k     int
	items []candidate[VId]
	seen  map[VId]bool
}

func newBeam[VId comparable](k int) *beam[VId] {
	return &beam[VId]{k: k, seen: make(map[VId]bool)}
}

// offer inserts v at distance d if it improves the beam (either there is
// room, or d beats the current worst). Returns whether it was accepted.
func (b *beam[VId]) offer(v VId, d float64) bool {
	if b.seen[v] {
		return false
	}
	if len(b.items) >= b.k && d >= b.items[len(b.items)-1].dist {
		return false
	}
	b.seen[v] = true
	idx := sort.Search(len(b.items), func(i int) bool { return b.items[i].dist > d })
	b.items = append(b.items, candidate[VId]{})
	copy(b.items[idx+1:], b.items[idx:])
	b.items[idx] = candidate[VId]{vertex: v, dist: d}
	if len(b.items) > b.k {
		b.items = b.items[:b.k]
	}
	return true
}

func (b *beam[VId]) worst() float64 {
	if len(b.items) < b.k {
		return -1 // unbounded: beam has room, every candidate improves it
	}
	return b.items[len(b.items)-1].dist
}

// Search performs enhanced hill climbing for query's k nearest vertices in
// g, starting the frontier at seeds. It returns up to k vertices ordered
// nearest-first. graph must expose out-edges via capability.Incidence;
// payload fetches a vertex's point for distance comparisons.
func Search[VId comparable, EId comparable, P any](
	g capability.Incidence[VId, EId],
	payload func(VId) P,
	dist DistanceFunc[P],
	query P,
	seeds []VId,
	k int,
) []VId {
	b := newBeam[VId](k)
	frontier := make([]VId, 0, len(seeds))
	for _, s := range seeds {
		b.offer(s, dist(query, payload(s)))
		frontier = append(frontier, s)
	}

	noProgress := 0
	for len(frontier) > 0 && noProgress < 2 {
		var next []VId
		improved := false
		for _, v := range frontier {
			for _, e := range g.EdgesFrom(v) {
				w := g.Destination(e)
				if b.seen[w] {
					continue
				}
				d := dist(query, payload(w))
				if b.offer(w, d) {
					improved = true
				}
				next = append(next, w)
			}
		}
		frontier = next
		if improved {
			noProgress = 0
		} else {
			noProgress++
		}
	}

	out := make([]VId, len(b.items))
	for i, c := range b.items {
		out[i] = c.vertex
	}
	return out
}

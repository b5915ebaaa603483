// Package analysis implements graph-wide structural analyses (spec
// component C10): degree distribution and clustering coefficients.
package analysis

import (
	"sort"

	"github.com/arvonlabs/graphkit/capability"
)

// LargeDegreeCount is one (degree, count) pair for the sparse tail of a
// DegreeDistribution.
type LargeDegreeCount struct {
	Degree int
	Count  int
}

// DegreeDistribution is the (edge-count, vertex-count, small-counts,
// large-counts) tuple: degrees below K are stored densely by index, and
// degrees at or above K are stored sparsely, ordered ascending by degree.
type DegreeDistribution struct {
	EdgeCount   int
	VertexCount int
	Small       []int // Small[d] = number of vertices with out-degree exactly d, for d < K
	Large       []LargeDegreeCount
}

// IncidenceVertexList is the capability composition Degrees needs.
type IncidenceVertexList[VId comparable, EId comparable] interface {
	capability.Incidence[VId, EId]
	capability.VertexList[VId, EId]
}

// Degrees computes g's out-degree distribution, splitting at K: degrees
// in [0,K) are counted densely in Small, degrees >= K are accumulated in a
// map and emitted sorted ascending in Large.
func Degrees[VId comparable, EId comparable](g IncidenceVertexList[VId, EId], k int) DegreeDistribution {
	small := make([]int, k)
	large := make(map[int]int)
	edgeCount := 0

	for _, v := range g.Vertices() {
		d := len(g.EdgesFrom(v))
		edgeCount += d
		if d < k {
			small[d]++
		} else {
			large[d]++
		}
	}

	largeCounts := make([]LargeDegreeCount, 0, len(large))
	for d, c := range large {
		largeCounts = append(largeCounts, LargeDegreeCount{Degree: d, Count: c})
	}
	sort.Slice(largeCounts, func(i, j int) bool { return largeCounts[i].Degree < largeCounts[j].Degree })

	return DegreeDistribution{
		EdgeCount:   edgeCount,
		VertexCount: len(g.Vertices()),
		Small:       small,
		Large:       largeCounts,
	}
}

package analysis

// LocalClusteringCoefficient measures, for vertex v, the number of edges
// u->w between distinct out-neighbors u, w of v, divided by the n*(n-1)
// ordered pairs of its n out-neighbors; a pair linked in only one
// direction therefore counts half as much as a pair linked both ways.
// Parallel edges are each counted. Returns 0 for a
// vertex with fewer than two neighbors, matching the usual convention that
// an undefined ratio counts as no clustering rather than propagating NaN.
func LocalClusteringCoefficient[VId comparable, EId comparable](g IncidenceVertexList[VId, EId], v VId) float64 {
	neighbors := neighborSet(g, v)
	n := len(neighbors)
	if n < 2 {
		return 0
	}

	links := 0
	for u := range neighbors {
		for _, e := range g.EdgesFrom(u) {
			if w := g.Destination(e); w != u && neighbors[w] {
				links++
			}
		}
	}
	possible := n * (n - 1)
	return float64(links) / float64(possible)
}

// GlobalClusteringCoefficient averages LocalClusteringCoefficient over
// every vertex in g.
func GlobalClusteringCoefficient[VId comparable, EId comparable](g IncidenceVertexList[VId, EId]) float64 {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vertices {
		sum += LocalClusteringCoefficient[VId, EId](g, v)
	}
	return sum / float64(len(vertices))
}

func neighborSet[VId comparable, EId comparable](g IncidenceVertexList[VId, EId], v VId) map[VId]bool {
	set := make(map[VId]bool)
	for _, e := range g.EdgesFrom(v) {
		if w := g.Destination(e); w != v {
			set[w] = true
		}
	}
	return set
}

package gridgraph

// VertexFilter answers is_part_of_grid for a vertex.
type VertexFilter func(p Point2) bool

// EdgeFilter answers is_part_of_grid for an edge.
type EdgeFilter func(e GridEdge) bool

// CompleteVertexFilter admits every vertex.
func CompleteVertexFilter(Point2) bool { return true }

// CompleteEdgeFilter admits every edge the 8-direction neighbor search
// can produce.
func CompleteEdgeFilter(GridEdge) bool { return true }

// ManhattanEdgeFilter admits only edges along the four cardinal
// directions, rejecting the four diagonals.
func ManhattanEdgeFilter(e GridEdge) bool {
	return isCardinal(e.To.Sub(e.From))
}

// RectangularVertexFilter admits vertices lying in the closed axis-aligned
// box [min,max].
func RectangularVertexFilter(min, max Point2) VertexFilter {
	return func(p Point2) bool {
		return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
	}
}

// ComposeVertexFilters ANDs every filter together.
func ComposeVertexFilters(filters ...VertexFilter) VertexFilter {
	return func(p Point2) bool {
		for _, f := range filters {
			if !f(p) {
				return false
			}
		}
		return true
	}
}

// ComposeEdgeFilters ANDs every filter together.
func ComposeEdgeFilters(filters ...EdgeFilter) EdgeFilter {
	return func(e GridEdge) bool {
		for _, f := range filters {
			if !f(e) {
				return false
			}
		}
		return true
	}
}

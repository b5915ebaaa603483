package gridgraph

// InfiniteGrid is a 2-D lattice graph with no stored adjacency at all:
// EdgesFrom computes the 8 canonical neighbor hops on demand and keeps
// only those whose destination passes VertexFilter and whose edge passes
// EdgeFilter. It satisfies capability.Incidence but not VertexList — an
// unbounded grid has no enumerable vertex set.
type InfiniteGrid struct {
	VertexOK VertexFilter
	EdgeOK   EdgeFilter
}

// NewInfiniteGrid returns a grid admitting every vertex and every
// 8-direction edge — the Complete filter pair.
func NewInfiniteGrid() *InfiniteGrid {
	return &InfiniteGrid{VertexOK: CompleteVertexFilter, EdgeOK: CompleteEdgeFilter}
}

// NewFilteredGrid returns a grid using the given vertex and edge filters,
// e.g. ManhattanEdgeFilter or a RectangularVertexFilter, optionally
// combined with ComposeVertexFilters/ComposeEdgeFilters.
func NewFilteredGrid(vertexOK VertexFilter, edgeOK EdgeFilter) *InfiniteGrid {
	return &InfiniteGrid{VertexOK: vertexOK, EdgeOK: edgeOK}
}

// EdgesFrom implements capability.Incidence: it tries all 8 canonical
// directions and yields only those admitted by both filters.
func (g *InfiniteGrid) EdgesFrom(v Point2) []GridEdge {
	if !g.VertexOK(v) {
		return nil
	}
	out := make([]GridEdge, 0, 8)
	for _, d := range directions {
		e := GridEdge{From: v, To: v.Add(d)}
		if g.VertexOK(e.To) && g.EdgeOK(e) {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo implements capability.Bidirectional by reversing each of the 8
// canonical directions and checking the filters against an edge coming
// from that neighbor into v.
func (g *InfiniteGrid) EdgesTo(v Point2) []GridEdge {
	if !g.VertexOK(v) {
		return nil
	}
	out := make([]GridEdge, 0, 8)
	for _, d := range directions {
		u := v.Add(Point2{X: -d.X, Y: -d.Y})
		e := GridEdge{From: u, To: v}
		if g.VertexOK(u) && g.EdgeOK(e) {
			out = append(out, e)
		}
	}
	return out
}

// Source implements capability.Incidence.
func (g *InfiniteGrid) Source(e GridEdge) Point2 { return e.From }

// Destination implements capability.Incidence.
func (g *InfiniteGrid) Destination(e GridEdge) Point2 { return e.To }

// OutDegree implements capability.Incidence.
func (g *InfiniteGrid) OutDegree(v Point2) int { return len(g.EdgesFrom(v)) }

// InDegree implements capability.Bidirectional.
func (g *InfiniteGrid) InDegree(v Point2) int { return len(g.EdgesTo(v)) }

// Degree implements capability.Bidirectional.
func (g *InfiniteGrid) Degree(v Point2) int { return g.InDegree(v) + g.OutDegree(v) }

// RectangularGrid is an InfiniteGrid additionally bounded to a closed
// axis-aligned box, which makes it enumerable: it satisfies VertexList
// with a random-access row-major ordering, matching spec §4.4's note that
// "the rectangular-bounded grid additionally satisfies VertexList".
type RectangularGrid struct {
	*InfiniteGrid
	Min, Max Point2
}

// NewRectangularGrid returns a grid bounded to the closed box [min,max],
// composing a RectangularVertexFilter for the box with any additional vertex/edge filters the
// caller supplies (pass CompleteVertexFilter/CompleteEdgeFilter for none).
func NewRectangularGrid(min, max Point2, vertexOK VertexFilter, edgeOK EdgeFilter) *RectangularGrid {
	bounds := RectangularVertexFilter(min, max)
	return &RectangularGrid{
		InfiniteGrid: NewFilteredGrid(ComposeVertexFilters(bounds, vertexOK), edgeOK),
		Min:          min,
		Max:          max,
	}
}

// width reports how many columns the box spans.
func (g *RectangularGrid) width() int { return g.Max.X - g.Min.X + 1 }

// height reports how many rows the box spans.
func (g *RectangularGrid) height() int { return g.Max.Y - g.Min.Y + 1 }

// Vertices implements capability.VertexList: every point in the box that
// also passes the grid's own vertex filter, enumerated row-major.
func (g *RectangularGrid) Vertices() []Point2 {
	out := make([]Point2, 0, g.width()*g.height())
	for y := g.Min.Y; y <= g.Max.Y; y++ {
		for x := g.Min.X; x <= g.Max.X; x++ {
			p := Point2{X: x, Y: y}
			if g.VertexOK(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// VertexCount implements capability.VertexList.
func (g *RectangularGrid) VertexCount() int { return len(g.Vertices()) }

// Index maps a point in the box to a row-major index, for callers that
// want a dense VId substitute (e.g. a TablePropertyMap keyed by index
// instead of Point2 directly).
func (g *RectangularGrid) Index(p Point2) int {
	return (p.Y-g.Min.Y)*g.width() + (p.X - g.Min.X)
}

// Coordinate is Index's inverse.
func (g *RectangularGrid) Coordinate(idx int) Point2 {
	return Point2{X: g.Min.X + idx%g.width(), Y: g.Min.Y + idx/g.width()}
}

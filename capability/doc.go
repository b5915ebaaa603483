// Package capability defines the small lattice of graph-shape interfaces
// that every algorithm in this module is written against: VertexList,
// EdgeList, Incidence, Bidirectional, Mutable, Property, MutableProperty,
// SearchDefaults, and ParallelGraph.
//
// None of these interfaces say anything about *how* a graph stores its
// vertices or edges. A concrete graph (adjlist.Directed, gridgraph.InfiniteGrid, …)
// satisfies whichever subset it can, and an algorithm (dfs.Walk, bfs.Walk,
// dijkstra.Search, …) is written against the smallest composition it needs.
// This is the central design decision that keeps the algorithm core small
// and reusable across unrelated concrete graph representations.
package capability

// VertexColor is the three-state visitation color used by depth/breadth
// first search and everything layered on top of them.
type VertexColor int

const (
	// White marks a vertex that has not been discovered yet.
	White VertexColor = iota
	// Gray marks a vertex that has been discovered but not finished.
	Gray
	// Black marks a vertex whose entire reachable subtree has been explored.
	Black
)

func (c VertexColor) String() string {
	switch c {
	case White:
		return "White"
	case Gray:
		return "Gray"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Graph is the root capability: a graph has a vertex identifier type and an
// edge identifier type, both required to support equality so algorithms can
// use them as map keys and compare them for identity.
//
// VId and EId are never synthesized by an algorithm — they only ever flow
// out of a concrete graph's own methods.
type Graph[VId comparable, EId comparable] interface {
	// marker interface; no methods of its own
}

// VertexList is a Graph that can enumerate all of its vertices.
type VertexList[VId comparable, EId comparable] interface {
	Graph[VId, EId]

	// Vertices returns every vertex currently in the graph. Order is
	// implementation-defined but stable between calls absent mutation.
	Vertices() []VId

	// VertexCount reports len(Vertices()) without necessarily building it.
	VertexCount() int
}

// EdgeList is a Graph that can enumerate all of its edges and resolve an
// edge's endpoints. EdgeCount may cost O(V+E) for representations that do
// not track edges densely.
type EdgeList[VId comparable, EId comparable] interface {
	Graph[VId, EId]

	Edges() []EId
	Source(e EId) VId
	Destination(e EId) VId
	EdgeCount() int
}

// Incidence is a Graph that can list the edges leaving a vertex. This is
// the minimal capability DFS, BFS, and Dijkstra require.
type Incidence[VId comparable, EId comparable] interface {
	Graph[VId, EId]

	EdgesFrom(v VId) []EId
	Source(e EId) VId
	Destination(e EId) VId

	// OutDegree defaults to len(EdgesFrom(v)) for most implementations but
	// is part of the interface so a graph with a cheaper count may override.
	OutDegree(v VId) int
}

// Bidirectional additionally exposes the edges arriving at a vertex.
type Bidirectional[VId comparable, EId comparable] interface {
	Incidence[VId, EId]

	EdgesTo(v VId) []EId
	InDegree(v VId) int
	Degree(v VId) int
}

// EdgePredicate is a predicate over an edge id given read access to the
// owning graph, used by graphcopy.FilterEdges. Mutable.RemoveEdgesWhere and
// RemoveEdgesFrom take a plain func(e EId) bool instead.
type EdgePredicate[VId comparable, EId comparable] func(g Incidence[VId, EId], e EId) bool

// Mutable is a Graph that supports structural edits. Removing an edge or a
// vertex may invalidate outstanding EIds (and, for vertex removal, outstanding
// VIds referring to the removed vertex); it never shifts other vertices' ids.
type Mutable[VId comparable, EId comparable] interface {
	Graph[VId, EId]

	AddVertex() VId
	AddEdge(u, v VId) EId

	// RemoveEdge deletes every edge from u to v and reports whether any
	// existed.
	RemoveEdge(u, v VId) bool

	// RemoveEdgeID deletes exactly the edge named by e.
	RemoveEdgeID(e EId)

	// RemoveVertex deletes v and every edge incident to it.
	RemoveVertex(v VId)

	// ClearVertex removes every edge incident to v but keeps v itself.
	ClearVertex(v VId)

	// RemoveEdgesWhere deletes every edge in the graph for which pred
	// returns true.
	RemoveEdgesWhere(pred func(e EId) bool)

	// RemoveEdgesFrom deletes every out-edge of v for which pred returns
	// true, invoking pred in edge order.
	RemoveEdgesFrom(v VId, pred func(e EId) bool)
}

// Property is a Graph whose vertices and edges each carry an in-graph
// payload, addressable by id.
type Property[VId comparable, EId comparable, VP any, EP any] interface {
	Graph[VId, EId]

	VertexProperty(v VId) VP
	SetVertexProperty(v VId, p VP)
	EdgeProperty(e EId) EP
	SetEdgeProperty(e EId, p EP)
}

// MutableProperty composes Mutable and Property with payload-carrying
// constructors.
type MutableProperty[VId comparable, EId comparable, VP any, EP any] interface {
	Mutable[VId, EId]
	Property[VId, EId, VP, EP]

	AddVertexWith(p VP) VId
	AddEdgeWith(u, v VId, p EP) EId
}

// ColorMap is a property map from VId to VertexColor, the one external map
// every search-default graph must be able to manufacture.
type ColorMap[VId comparable] interface {
	Get(v VId) VertexColor
	Set(v VId, c VertexColor)
}

// SearchDefaults is an Incidence graph that knows how to build its own
// default color map — a dense slice for integer ids, a hash map otherwise.
type SearchDefaults[VId comparable, EId comparable] interface {
	Incidence[VId, EId]

	// NewColorMap returns a ColorMap covering every current vertex,
	// initialized to fill.
	NewColorMap(fill VertexColor) ColorMap[VId]
}

// ParallelProjection is the read-mostly view of a mutable graph handed to
// the parallel engine for the duration of one super-step: structural
// incidence plus a partitioned, mutable per-vertex payload slot.
type ParallelProjection[VId comparable, EId comparable, VP any] interface {
	Incidence[VId, EId]

	// Payload returns a pointer into the owning graph's storage for v's
	// payload. The pointer is only valid for the lifetime of the Step call
	// that produced this projection.
	Payload(v VId) *VP
}

// ParallelGraph is a Property graph that can produce a ParallelProjection
// of itself for the vertex-parallel engine (package parallel) to drive.
type ParallelGraph[VId comparable, EId comparable, VP any, EP any] interface {
	Property[VId, EId, VP, EP]
	VertexList[VId, EId]

	Project() ParallelProjection[VId, EId, VP]
}

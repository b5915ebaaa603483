// Package gridgraph implements the infinite and bounded 2-D grid graph
// family (spec component C4): vertices are integer lattice points, edges
// connect a point to its 8 canonical neighbors, and which vertices/edges
// actually exist is decided entirely by a pair of composable predicate
// filters rather than by any stored adjacency.
package gridgraph

import "fmt"

// Point2 is an integer lattice coordinate — the grid's vertex id.
type Point2 struct {
	X, Y int
}

// Add returns p+q, componentwise.
func (p Point2) Add(q Point2) Point2 { return Point2{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q, componentwise.
func (p Point2) Sub(q Point2) Point2 { return Point2{X: p.X - q.X, Y: p.Y - q.Y} }

// Less gives Point2 a total order (row-major: Y first, then X).
func (p Point2) Less(q Point2) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point2) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// GridEdge is the grid's edge id: a directed hop from From to one of its 8
// canonical neighbors, To.
type GridEdge struct {
	From, To Point2
}

func (e GridEdge) String() string { return fmt.Sprintf("%v->%v", e.From, e.To) }

// directions lists the 8 canonical neighbor offsets in clockwise order
// starting from North: N, NE, E, SE, S, SW, W, NW.
var directions = [8]Point2{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// cardinalDirections is the 4-connectivity subset: N, E, S, W.
var cardinalDirections = [4]Point2{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
}

// isCardinal reports whether d is one of the four cardinal offsets.
func isCardinal(d Point2) bool {
	return (d.X == 0 && d.Y != 0) || (d.Y == 0 && d.X != 0)
}

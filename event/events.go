// Package event defines the fixed event enums emitted by the sequential
// search algorithms (DFS, BFS, Dijkstra) and the predecessor-recorder
// visitors built on top of them.
//
// Every search takes a single callback of shape func(event) error; the
// graph is not passed to the callback. The sentinel error StopSearch
// aborts the search silently; every other error propagates to the caller.
package event

import "errors"

// StopSearch is returned by a user callback to terminate a search early.
// The immediate algorithm catches it and converts it to a normal return;
// it is never observed outside that algorithm's own wrapper.
var StopSearch = errors.New("event: stop search")

// DFSEventKind enumerates the event stream emitted by dfs.Walk.
type DFSEventKind int

const (
	DFSStart DFSEventKind = iota
	DFSDiscover
	DFSExamine
	DFSTreeEdge
	DFSBackEdge
	DFSForwardOrCrossEdge
	DFSFinish
)

func (k DFSEventKind) String() string {
	switch k {
	case DFSStart:
		return "Start"
	case DFSDiscover:
		return "Discover"
	case DFSExamine:
		return "Examine"
	case DFSTreeEdge:
		return "TreeEdge"
	case DFSBackEdge:
		return "BackEdge"
	case DFSForwardOrCrossEdge:
		return "ForwardOrCrossEdge"
	case DFSFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// DFSEvent is one point in a depth-first search's event stream. Vertex is
// meaningful for Start/Discover/Finish; Edge is meaningful for
// Examine/TreeEdge/BackEdge/ForwardOrCrossEdge.
type DFSEvent[VId comparable, EId comparable] struct {
	Kind   DFSEventKind
	Vertex VId
	Edge   EId
}

// BFSEventKind enumerates the event stream emitted by bfs.Walk.
type BFSEventKind int

const (
	BFSStart BFSEventKind = iota
	BFSDiscover
	BFSExamineVertex
	BFSExamineEdge
	BFSTreeEdge
	BFSNonTreeEdge
	BFSGrayDestination
	BFSBlackDestination
	BFSFinish
)

func (k BFSEventKind) String() string {
	switch k {
	case BFSStart:
		return "Start"
	case BFSDiscover:
		return "Discover"
	case BFSExamineVertex:
		return "ExamineVertex"
	case BFSExamineEdge:
		return "ExamineEdge"
	case BFSTreeEdge:
		return "TreeEdge"
	case BFSNonTreeEdge:
		return "NonTreeEdge"
	case BFSGrayDestination:
		return "GrayDestination"
	case BFSBlackDestination:
		return "BlackDestination"
	case BFSFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// BFSEvent is one point in a breadth-first search's event stream.
type BFSEvent[VId comparable, EId comparable] struct {
	Kind   BFSEventKind
	Vertex VId
	Edge   EId
}

// DijkstraEventKind enumerates the event stream emitted by dijkstra.Search.
type DijkstraEventKind int

const (
	DijkstraStart DijkstraEventKind = iota
	DijkstraDiscover
	DijkstraExamineVertex
	DijkstraExamineEdge
	DijkstraEdgeRelaxed
	DijkstraEdgeNotRelaxed
	DijkstraFinish
)

func (k DijkstraEventKind) String() string {
	switch k {
	case DijkstraStart:
		return "Start"
	case DijkstraDiscover:
		return "Discover"
	case DijkstraExamineVertex:
		return "ExamineVertex"
	case DijkstraExamineEdge:
		return "ExamineEdge"
	case DijkstraEdgeRelaxed:
		return "EdgeRelaxed"
	case DijkstraEdgeNotRelaxed:
		return "EdgeNotRelaxed"
	case DijkstraFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// DijkstraEvent is one point in Dijkstra's event stream.
type DijkstraEvent[VId comparable, EId comparable] struct {
	Kind   DijkstraEventKind
	Vertex VId
	Edge   EId
}

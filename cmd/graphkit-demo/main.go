// Command graphkit-demo exercises the core algorithms end to end over a
// small hand-built graph: BFS, DFS, Dijkstra, topological sort, Tarjan's
// strongly connected components, degree distribution, an approximate k-NN
// graph, and a ten-step label-propagation run.
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/arvonlabs/graphkit/adjlist"
	"github.com/arvonlabs/graphkit/analysis"
	"github.com/arvonlabs/graphkit/bfs"
	"github.com/arvonlabs/graphkit/capability"
	"github.com/arvonlabs/graphkit/components"
	"github.com/arvonlabs/graphkit/dfs"
	"github.com/arvonlabs/graphkit/dijkstra"
	"github.com/arvonlabs/graphkit/event"
	"github.com/arvonlabs/graphkit/knn"
	"github.com/arvonlabs/graphkit/parallel"
	"github.com/arvonlabs/graphkit/toposort"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	g := adjlist.NewDirected[int, struct{}, int]()
	for i := 0; i < 5; i++ {
		g.AddVertex()
	}
	g.AddEdgeWith(0, 1, 10)
	g.AddEdgeWith(0, 2, 3)
	g.AddEdgeWith(2, 1, 1)
	g.AddEdgeWith(1, 3, 2)
	g.AddEdgeWith(3, 4, 1)

	fmt.Println("-- BFS --")
	if err := bfs.Walk[int, adjlist.EID[int]](g, g.NewColorMap(capability.White), []int{0}, bfs.NewFIFOQueue[int](),
		func(ev event.BFSEvent[int, adjlist.EID[int]]) error {
			if ev.Kind == event.BFSDiscover {
				fmt.Println("discovered", ev.Vertex)
			}
			return nil
		}); err != nil {
		return err
	}

	fmt.Println("-- DFS traversal --")
	if err := dfs.Traverse[int, adjlist.EID[int]](g, g.NewColorMap(capability.White),
		func(ev event.DFSEvent[int, adjlist.EID[int]]) error {
			if ev.Kind == event.DFSFinish {
				fmt.Println("finished", ev.Vertex)
			}
			return nil
		}); err != nil {
		return err
	}

	fmt.Println("-- Dijkstra shortest path 0 -> 4 --")
	dist := dijkstra.NewTableDistanceMap[int, int](5, math.MaxInt32)
	length := func(e adjlist.EID[int]) int { return g.EdgeProperty(e) }
	rec := event.NewDictionaryPredecessorRecorder[int](0)
	path, d, err := dijkstra.ShortestPath[int, adjlist.EID[int], int](g, g.NewColorMap(capability.White), dist, length, 0, 4, math.MaxInt32, rec)
	if err != nil {
		return err
	}
	fmt.Println("path", path, "distance", d)

	fmt.Println("-- Topological sort --")
	order, err := toposort.Sort[int, adjlist.EID[int]](g, g.NewColorMap(capability.White))
	if err != nil {
		return err
	}
	fmt.Println("order", order)

	fmt.Println("-- Strongly connected components --")
	res := components.Tarjan[int, adjlist.EID[int]](g, g.NewColorMap(capability.White))
	fmt.Println("component count", res.Count)

	fmt.Println("-- Degree distribution --")
	fmt.Printf("%+v\n", analysis.Degrees[int, adjlist.EID[int]](g, 2))

	fmt.Println("-- Approximate k-NN over points on a line --")
	dist2 := func(a, b float64) float64 { return math.Abs(a - b) }
	builder := knn.NewBuilder[float64](dist2, 2)
	for i := 0; i < 6; i++ {
		builder.Insert(float64(i), builder.Graph().Vertices())
	}
	fmt.Println("knn edges", builder.Graph().EdgeCount())

	fmt.Println("-- Label propagation over a small chain --")
	lg := adjlist.NewDirected[int, parallel.VertexState, float64]()
	for i := 0; i < 4; i++ {
		lg.AddVertexWith(parallel.NewVertexState(1))
	}
	for i := 0; i < 3; i++ {
		lg.AddEdgeWith(i, i+1, 1.0)
		lg.AddEdgeWith(i+1, i, 1.0)
	}
	seed := parallel.NewVertexState(1)
	seed.Seed.Set(0, 1.0)
	seed.HasSeed = true
	lg.SetVertexProperty(0, seed)

	mailboxes := parallel.NewSequentialMailboxes[int]()
	pool := parallel.NewSequentialPool()
	cfg := parallel.Config{M1: 1, M2: 1, M3: 0.1, MaxSteps: 10}
	edgeWeight := func(e adjlist.EID[int]) float64 { return lg.EdgeProperty(e) }
	if err := parallel.Run[int, adjlist.EID[int], float64](lg, mailboxes, pool, edgeWeight, cfg, nil); err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		label, _ := lg.VertexProperty(i).Computed.Get(0)
		fmt.Printf("vertex %d label %.4f\n", i, label)
	}

	return nil
}

// Package parallel implements the Pregel-style vertex-parallel engine
// (spec component C11): a super-step driver over a ParallelProjection,
// two Mailboxes implementations, and label propagation built on top.
package parallel

import "github.com/arvonlabs/graphkit/capability"

// StepFunc is invoked once per vertex per super-step. It may read
// ctx.Inbox(), walk ctx.Edges(), mutate *payload, and ctx.Send() to any
// vertex. If it returns ok=true, partial is merged into the super-step's
// resulting global state.
type StepFunc[VId comparable, EId comparable, VP any, GS any] func(ctx *Context[VId, EId, VP, GS], payload *VP) (partial GS, ok bool)

// Step runs one super-step of g over every vertex, in parallel across
// pool's workers, then calls mailboxes.Deliver(). merge folds partial
// global-state contributions together, both within a worker's chunk and
// across workers; it must be associative and ideally commutative, since
// contribution order is unspecified.
//
// Passing NewSequentialPool() runs this as sequential_step: one worker,
// vertices visited in order, fully deterministic. Passing a Pool runs it
// as the parallel step, partitioning Vertices() into pool.Workers() chunks.
func Step[VId comparable, EId comparable, VP any, EP any, GS any](
	g capability.ParallelGraph[VId, EId, VP, EP],
	mailboxes Mailboxes[VId],
	pool ThreadPool,
	global GS,
	merge func(a, b GS) GS,
	fn StepFunc[VId, EId, VP, GS],
) (GS, error) {
	proj := g.Project()
	vertices := g.Vertices()
	workers := pool.Workers()

	chunks := partition(vertices, workers)
	accum := make([]GS, workers)
	has := make([]bool, workers)

	for w := 0; w < workers; w++ {
		chunk := chunks[w]
		pool.Go(func(worker int) error {
			sender := mailboxes.Sender(worker)
			for _, v := range chunk {
				msg, ok := mailboxes.Inbox(v)
				ctx := &Context[VId, EId, VP, GS]{
					Vertex: v,
					Global: global,
					graph:  proj,
					sender: sender,
					inbox:  msg,
					hasMsg: ok,
				}
				partial, contributed := fn(ctx, proj.Payload(v))
				if !contributed {
					continue
				}
				if has[worker] {
					accum[worker] = merge(accum[worker], partial)
				} else {
					accum[worker] = partial
					has[worker] = true
				}
			}
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		var zero GS
		return zero, err
	}

	result := global
	for w := range accum {
		if has[w] {
			result = merge(result, accum[w])
		}
	}
	mailboxes.Deliver()
	return result, nil
}

// partition splits vertices into exactly workers contiguous, near-equal
// chunks. If there are fewer vertices than workers, the trailing chunks
// are empty rather than absent, so callers can always index [0,workers).
func partition[VId any](vertices []VId, workers int) [][]VId {
	chunks := make([][]VId, workers)
	if workers <= 0 {
		return chunks
	}
	n := len(vertices)
	base := n / workers
	rem := n % workers
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		chunks[w] = vertices[start : start+size]
		start += size
	}
	return chunks
}

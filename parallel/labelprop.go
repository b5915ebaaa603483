package parallel

import "github.com/arvonlabs/graphkit/capability"

// VertexState is the per-vertex payload label propagation runs over: a
// fixed seed label (if any), the label currently believed for this
// vertex, and the total weight of edges pointing at it (computed once, in
// the warm-up super-step).
type VertexState struct {
	Seed          LabelBundle
	HasSeed       bool
	Computed      LabelBundle
	TotalIncoming float64
}

// NewVertexState returns a width-wide VertexState with no seed and all
// labels invalid.
func NewVertexState(width int) VertexState {
	return VertexState{Seed: NewLabelBundle(width), Computed: NewLabelBundle(width)}
}

// scalarMessage is the Message used by the warm-up super-step to sum
// incoming edge weights.
type scalarMessage float64

// Merge implements Message.
func (s scalarMessage) Merge(other Message) Message { return s + other.(scalarMessage) }

// Config holds label propagation's three mixing weights (injection from
// the seed, continuation from the vertex's own prior label, and
// absorption from neighbors) and its iteration budget.
type Config struct {
	// M1 weights injection from Seed.
	M1 float64
	// M2 weights absorption from neighbors' previous labels.
	M2 float64
	// M3 weights continuation of this vertex's own prior label.
	M3 float64
	// MaxSteps bounds how many absorption super-steps run.
	MaxSteps int
}

func noopMerge(a, b struct{}) struct{} { return struct{}{} }

// Run executes label propagation (spec's canonical C11 application) over
// g: one warm-up super-step sums each vertex's total incoming edge
// weight, then up to cfg.MaxSteps absorption super-steps update every
// vertex's Computed label from its seed, its own prior label, and the
// merged labels its neighbors sent last round.
//
// earlyStop, if non-nil, is consulted after every absorption super-step
// with the step index (0-based); returning true ends the run early.
func Run[VId comparable, EId comparable, EP any](
	g capability.ParallelGraph[VId, EId, VertexState, EP],
	mailboxes Mailboxes[VId],
	pool ThreadPool,
	edgeWeight func(e EId) float64,
	cfg Config,
	earlyStop func(step int) bool,
) error {
	warmup := func(ctx *Context[VId, EId, VertexState, struct{}], payload *VertexState) (struct{}, bool) {
		for _, e := range ctx.Edges() {
			ctx.Send(ctx.Destination(e), scalarMessage(edgeWeight(e)))
		}
		return struct{}{}, false
	}
	if _, err := Step[VId, EId, VertexState, EP, struct{}](g, mailboxes, pool, struct{}{}, noopMerge, warmup); err != nil {
		return err
	}

	collectWarmup := func(ctx *Context[VId, EId, VertexState, struct{}], payload *VertexState) (struct{}, bool) {
		if msg, ok := ctx.Inbox(); ok {
			payload.TotalIncoming = float64(msg.(scalarMessage))
		}
		return struct{}{}, false
	}
	if _, err := Step[VId, EId, VertexState, EP, struct{}](g, mailboxes, pool, struct{}{}, noopMerge, collectWarmup); err != nil {
		return err
	}

	absorb := func(ctx *Context[VId, EId, VertexState, struct{}], payload *VertexState) (struct{}, bool) {
		width := payload.Seed.Width()
		inbox := NewLabelBundle(width)
		if msg, ok := ctx.Inbox(); ok {
			inbox = msg.(LabelBundle)
		}

		hasSeed := 0.0
		if payload.HasSeed {
			hasSeed = 1.0
		}
		denom := cfg.M2*payload.TotalIncoming + cfg.M3 + cfg.M1*hasSeed

		numerator := add(add(inbox.Scale(cfg.M2), payload.Computed.Scale(cfg.M3)), payload.Seed.Scale(cfg.M1))
		next := numerator.Divide(NewUniformLabelBundle(width, denom))
		next = next.FillMissingFrom(payload.Seed)
		payload.Computed = next

		for _, e := range ctx.Edges() {
			ctx.Send(ctx.Destination(e), next.Scale(edgeWeight(e)))
		}
		return struct{}{}, false
	}

	for step := 0; step < cfg.MaxSteps; step++ {
		if _, err := Step[VId, EId, VertexState, EP, struct{}](g, mailboxes, pool, struct{}{}, noopMerge, absorb); err != nil {
			return err
		}
		if earlyStop != nil && earlyStop(step) {
			break
		}
	}
	return nil
}

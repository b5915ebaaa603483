package parallel

import "github.com/arvonlabs/graphkit/capability"

// Context is the per-vertex handle a StepFunc invocation runs with: the
// vertex being processed, read-only access to the current global state,
// the parallel projection's structural view, and this super-step's inbox
// and outgoing sender for that vertex.
type Context[VId comparable, EId comparable, VP any, GS any] struct {
	Vertex VId
	Global GS

	graph  capability.ParallelProjection[VId, EId, VP]
	sender Sender[VId]
	inbox  Message
	hasMsg bool
}

// Inbox returns the message delivered to this vertex in the previous
// super-step, if any.
func (c *Context[VId, EId, VP, GS]) Inbox() (Message, bool) { return c.inbox, c.hasMsg }

// Edges returns the ids of every edge leaving this vertex.
func (c *Context[VId, EId, VP, GS]) Edges() []EId { return c.graph.EdgesFrom(c.Vertex) }

// Destination resolves an edge's destination vertex.
func (c *Context[VId, EId, VP, GS]) Destination(e EId) VId { return c.graph.Destination(e) }

// Send enqueues msg for delivery to `to` at the next Deliver, merging with
// any message already enqueued for it this super-step.
func (c *Context[VId, EId, VP, GS]) Send(to VId, msg Message) { c.sender.Send(to, msg) }

// Payload returns a pointer to this vertex's mutable payload slot, valid
// only for the duration of the current StepFunc call.
func (c *Context[VId, EId, VP, GS]) Payload() *VP { return c.graph.Payload(c.Vertex) }

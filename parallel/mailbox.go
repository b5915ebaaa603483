package parallel

// Message is a mailbox payload. Messages addressed to the same recipient
// within one super-step are folded together with Merge, so Message values
// must behave like a commutative monoid under it: order of merging must
// not matter.
type Message interface {
	Merge(other Message) Message
}

// Sender is the scoped, worker-bound handle Context.Send writes through.
type Sender[VId comparable] interface {
	Send(to VId, msg Message)
}

// Mailboxes is the per-super-step message-passing contract: Send enqueues
// (merging on collision), Deliver moves every outbox into the shared inbox
// and reports whether anything was pending, and Inbox reads back what was
// delivered for v in the previous super-step.
type Mailboxes[VId comparable] interface {
	// Sender returns the Sender bound to worker's outbox, valid for one
	// super-step.
	Sender(worker int) Sender[VId]

	// Inbox returns the message delivered to v by the last Deliver call,
	// if any.
	Inbox(v VId) (Message, bool)

	// Deliver moves every outbox into the inbox and clears the outboxes.
	// Returns true iff at least one message was pending.
	Deliver() bool
}

func mergeInto[VId comparable](box map[VId]Message, to VId, msg Message) {
	if existing, ok := box[to]; ok {
		box[to] = msg.Merge(existing)
		return
	}
	box[to] = msg
}

// SequentialMailboxes is the single-outbox implementation: Deliver swaps
// the one outbox map into the inbox and allocates a fresh outbox. Correct
// regardless of how many workers call Sender, since every Sender shares
// the same underlying map — safe only when the driving ThreadPool runs
// workers one at a time (sequential_step).
type SequentialMailboxes[VId comparable] struct {
	inbox  map[VId]Message
	outbox map[VId]Message
}

// NewSequentialMailboxes returns an empty SequentialMailboxes.
func NewSequentialMailboxes[VId comparable]() *SequentialMailboxes[VId] {
	return &SequentialMailboxes[VId]{inbox: make(map[VId]Message), outbox: make(map[VId]Message)}
}

type sequentialSender[VId comparable] struct{ box *SequentialMailboxes[VId] }

func (s sequentialSender[VId]) Send(to VId, msg Message) { mergeInto(s.box.outbox, to, msg) }

// Sender implements Mailboxes. worker is ignored: every sender shares the
// one outbox.
func (m *SequentialMailboxes[VId]) Sender(worker int) Sender[VId] {
	return sequentialSender[VId]{box: m}
}

// Inbox implements Mailboxes.
func (m *SequentialMailboxes[VId]) Inbox(v VId) (Message, bool) {
	msg, ok := m.inbox[v]
	return msg, ok
}

// Deliver implements Mailboxes.
func (m *SequentialMailboxes[VId]) Deliver() bool {
	pending := len(m.outbox) > 0
	m.inbox = m.outbox
	m.outbox = make(map[VId]Message)
	return pending
}

// PerThreadMailboxes gives every worker its own outbox (one map per worker
// slot, written without locking since workers never share a slot) and one
// shared inbox. Deliver picks the first non-empty outbox as the inbox's new
// backing storage, then folds every other worker's outbox into it.
type PerThreadMailboxes[VId comparable] struct {
	workers int
	outbox  []map[VId]Message
	inbox   map[VId]Message
}

// NewPerThreadMailboxes returns an empty PerThreadMailboxes with one
// outbox per worker.
func NewPerThreadMailboxes[VId comparable](workers int) *PerThreadMailboxes[VId] {
	if workers < 1 {
		workers = 1
	}
	outbox := make([]map[VId]Message, workers)
	for i := range outbox {
		outbox[i] = make(map[VId]Message)
	}
	return &PerThreadMailboxes[VId]{workers: workers, outbox: outbox, inbox: make(map[VId]Message)}
}

type perThreadSender[VId comparable] struct {
	box    *PerThreadMailboxes[VId]
	worker int
}

func (s perThreadSender[VId]) Send(to VId, msg Message) {
	mergeInto(s.box.outbox[s.worker], to, msg)
}

// Sender implements Mailboxes, returning the handle for worker's own
// outbox.
func (m *PerThreadMailboxes[VId]) Sender(worker int) Sender[VId] {
	if worker < 0 || worker >= m.workers {
		worker = 0
	}
	return perThreadSender[VId]{box: m, worker: worker}
}

// Inbox implements Mailboxes.
func (m *PerThreadMailboxes[VId]) Inbox(v VId) (Message, bool) {
	msg, ok := m.inbox[v]
	return msg, ok
}

// Deliver implements Mailboxes.
func (m *PerThreadMailboxes[VId]) Deliver() bool {
	first := -1
	for i, box := range m.outbox {
		if len(box) > 0 {
			first = i
			break
		}
	}
	if first == -1 {
		m.inbox = make(map[VId]Message)
		return false
	}

	merged := m.outbox[first]
	m.outbox[first] = make(map[VId]Message)
	for i, box := range m.outbox {
		if i == first || len(box) == 0 {
			continue
		}
		for to, msg := range box {
			mergeInto(merged, to, msg)
		}
		m.outbox[i] = make(map[VId]Message)
	}
	m.inbox = merged
	return true
}

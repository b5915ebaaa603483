package parallel

import "golang.org/x/sync/errgroup"

// ThreadPool is the collaborator Step uses to fan work out across workers.
// Step chooses sequential_step or parallel_step purely by which
// implementation it is handed.
type ThreadPool interface {
	// Go schedules fn to run on a worker. The pool assigns fn its worker
	// slot index, in [0, Workers()).
	Go(fn func(worker int) error)

	// Wait blocks until every scheduled fn has returned, and returns the
	// first non-nil error any of them produced.
	Wait() error

	// Workers reports how many worker slots this pool hands out.
	Workers() int
}

// Pool is an errgroup-backed ThreadPool: it assigns each Go call the next
// worker slot in round-robin order and caps in-flight goroutines at
// workers via errgroup.Group.SetLimit, mirroring the worker-pool-plus-
// super-step-barrier shape the sequential core avoids needing but the
// parallel engine requires.
type Pool struct {
	workers int
	group   *errgroup.Group
	next    int
}

// NewPool returns a Pool with the given number of worker slots.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	g := &errgroup.Group{}
	g.SetLimit(workers)
	return &Pool{workers: workers, group: g}
}

// Go implements ThreadPool.
func (p *Pool) Go(fn func(worker int) error) {
	slot := p.next % p.workers
	p.next++
	p.group.Go(func() error { return fn(slot) })
}

// Wait implements ThreadPool. The Pool must not be reused after Wait.
func (p *Pool) Wait() error { return p.group.Wait() }

// Workers implements ThreadPool.
func (p *Pool) Workers() int { return p.workers }

// sequentialPool is the single-goroutine fallback sequential_step drives:
// every Go call runs inline, on worker slot 0, before Go returns.
type sequentialPool struct {
	err error
}

// NewSequentialPool returns a ThreadPool that runs every scheduled
// function immediately on the calling goroutine, for deterministic,
// single-threaded execution (testing, or graphs too small to parallelize).
func NewSequentialPool() ThreadPool { return &sequentialPool{} }

func (p *sequentialPool) Go(fn func(worker int) error) {
	if p.err != nil {
		return
	}
	p.err = fn(0)
}

func (p *sequentialPool) Wait() error { return p.err }

func (p *sequentialPool) Workers() int { return 1 }

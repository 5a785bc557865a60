// Package dispatch hands work from background goroutines to the UI event
// loop.
package dispatch

import "sync"

// Queue is an unbounded fire-and-forget call queue. Producers enqueue
// zero-argument functions from any goroutine; the UI goroutine drains them
// in FIFO order. There is no backpressure and no result channel: rapid
// duplicate triggers simply line up as independent entries.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	ready   chan struct{}
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Enqueue adds fn to the queue and signals the drain side. Safe for
// concurrent use and never blocks. A nil fn is ignored.
func (q *Queue) Enqueue(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Ready signals when the queue has entries to drain. The signal is
// coalesced: one receive may cover several queued entries, so drain
// everything per wakeup.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Drain runs every queued function in enqueue order on the calling
// goroutine and reports how many ran.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

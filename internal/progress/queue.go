// Package progress paces server progress messages for display. Messages
// arrive in bursts but each one must stay on screen for a minimum hold, so
// a queue buffers them and a single consumer shows them one at a time.
package progress

import (
	"sync"
	"time"
)

// DefaultHold is the minimum time each message stays visible
const DefaultHold = 1500 * time.Millisecond

// Queue is a FIFO message buffer with a single display consumer. Messages
// are shown in arrival order, one at a time, each held for at least the
// configured duration. Nothing is reordered or dropped: closing the queue
// lets the consumer finish the messages already buffered.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []string
	closed  bool

	hold   time.Duration
	onShow func(string)
	onHide func()
	done   chan struct{}
}

// NewQueue creates a queue and starts its display consumer. onShow is
// called when a message becomes visible, onHide when its hold elapses;
// both run on the consumer goroutine, so UI callers must hop to the UI
// thread themselves. A non-positive hold falls back to DefaultHold.
func NewQueue(hold time.Duration, onShow func(string), onHide func()) *Queue {
	if hold <= 0 {
		hold = DefaultHold
	}
	q := &Queue{
		hold:   hold,
		onShow: onShow,
		onHide: onHide,
		done:   make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Push appends a message to the buffer. Pushes after Close are discarded.
func (q *Queue) Push(message string) {
	if message == "" {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.pending = append(q.pending, message)
	q.cond.Signal()
}

// Close stops accepting messages. The consumer drains what is already
// buffered, then exits; Done is closed when it finishes. Safe to call
// multiple times.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Signal()
}

// Done is closed once the consumer has displayed every buffered message
// and exited
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		message, ok := q.next()
		if !ok {
			return
		}
		if q.onShow != nil {
			q.onShow(message)
		}
		time.Sleep(q.hold)
		if q.onHide != nil {
			q.onHide()
		}
	}
}

// next blocks until a message is available or the queue is closed and empty
func (q *Queue) next() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.pending) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.pending) == 0 {
		return "", false
	}
	message := q.pending[0]
	q.pending = q.pending[1:]
	return message, true
}

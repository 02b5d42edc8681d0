// Package queue implements the bounded output ring every ordering stage
// feeds into: one producer (the parsing pipeline), many consumers (the
// caller's worker goroutines), lock-free, and never blocking the producer.
package queue

import (
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/withobsrvr/solana-dex-parser/event"
)

// DefaultCapacity matches the 100,000-event default ring size.
const DefaultCapacity = 100_000

// slot pairs a buffered event with a sequence number a la Vyukov's bounded
// MPMC queue: seq tells a Pop whether the producer has finished writing
// this slot's event, so a slot is only ever read after its write is
// published, never between the tail CAS and the write.
type slot struct {
	seq uint64
	ev  event.Event
}

// Queue is a Vyukov-style SPMC ring buffer over a fixed slice of slots.
// Push is non-blocking and reports failure when full; Pop reports failure
// when empty. Both are safe to call concurrently with each other (one
// pushing goroutine, any number of popping goroutines).
type Queue struct {
	buf      []slot
	mask     uint64
	head     uint64 // next slot a Pop will claim
	tail     uint64 // next slot a Push will claim
	logger   *zap.Logger
	dropRate *rate.Limiter
	dropped  uint64
}

// New creates a queue whose capacity is rounded up to the next power of two
// (required for the mask-based index wrap). A nil logger disables the
// rate-limited drop warning.
func New(capacity int, logger *zap.Logger) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	size := nextPowerOfTwo(uint64(capacity))
	if logger == nil {
		logger = zap.NewNop()
	}
	buf := make([]slot, size)
	for i := range buf {
		buf[i].seq = uint64(i)
	}
	return &Queue{
		buf:      buf,
		mask:     size - 1,
		logger:   logger,
		dropRate: rate.NewLimiter(rate.Every(1e9), 1), // at most one warning per second
	}
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// Push attempts to enqueue ev without blocking. It returns false, logs a
// rate-limited warning, and drops the event when the ring is full - the
// producer must never stall waiting on a slow consumer.
func (q *Queue) Push(ev event.Event) bool {
	for {
		tail := atomic.LoadUint64(&q.tail)
		s := &q.buf[tail&q.mask]
		seq := atomic.LoadUint64(&s.seq)
		diff := int64(seq) - int64(tail)
		switch {
		case diff == 0:
			if atomic.CompareAndSwapUint64(&q.tail, tail, tail+1) {
				s.ev = ev
				// Publish only after the write lands, so a Pop that has
				// already claimed this slot cannot observe it before ev
				// is actually stored.
				atomic.StoreUint64(&s.seq, tail+1)
				return true
			}
		case diff < 0:
			atomic.AddUint64(&q.dropped, 1)
			if q.dropRate.Allow() {
				q.logger.Warn("output queue full, dropping event",
					zap.Uint64("capacity", uint64(len(q.buf))),
					zap.Uint64("dropped_total", atomic.LoadUint64(&q.dropped)))
			}
			return false
		}
	}
}

// Pop attempts to dequeue one event without blocking. It returns
// (event.Event{}, false) when the ring is currently empty; callers are
// expected to spin briefly then yield, or park on their own wake-up
// mechanism.
func (q *Queue) Pop() (event.Event, bool) {
	for {
		head := atomic.LoadUint64(&q.head)
		s := &q.buf[head&q.mask]
		seq := atomic.LoadUint64(&s.seq)
		diff := int64(seq) - int64(head+1)
		switch {
		case diff == 0:
			if atomic.CompareAndSwapUint64(&q.head, head, head+1) {
				ev := s.ev
				// Release the slot for the producer's next lap around
				// the ring.
				atomic.StoreUint64(&s.seq, head+q.mask+1)
				return ev, true
			}
		case diff < 0:
			return event.Event{}, false
		}
	}
}

// Len reports the approximate number of events currently queued. It is a
// snapshot, not a synchronization point.
func (q *Queue) Len() int {
	tail := atomic.LoadUint64(&q.tail)
	head := atomic.LoadUint64(&q.head)
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Dropped reports the cumulative number of events dropped due to a full
// ring since the queue was created.
func (q *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&q.dropped)
}

// Cap reports the ring's true capacity (the power-of-two rounding of the
// requested capacity).
func (q *Queue) Cap() int {
	return len(q.buf)
}

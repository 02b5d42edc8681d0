// Package order implements the four ordering/batching modes a subscription
// can select: Unordered, Ordered, StreamingOrdered, and MicroBatch. Each
// mode is its own struct rather than one state machine wearing four hats -
// the buffering strategy and the flush trigger differ enough between modes
// that sharing one struct would mean dead fields in three out of four.
package order

import (
	"sort"
	"time"

	"github.com/withobsrvr/solana-dex-parser/event"
)

// Stage is the common contract every ordering mode satisfies. Accept may
// return events ready for immediate emission (Unordered always does;
// StreamingOrdered does whenever a watermark advances). Flush forces out
// whatever is currently buffered, in order, without closing the stage.
// Close behaves like Flush but marks the stage as done.
type Stage interface {
	Accept(ev event.Event) []event.Event
	Flush() []event.Event
	Close() []event.Event
}

type slotEntry struct {
	TxIndex uint64
	Event   event.Event
}

func sortEntriesByTxIndex(entries []slotEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].TxIndex < entries[j].TxIndex })
}

// Unordered emits every event the instant it is accepted. No buffering, no
// latency beyond decode cost, no ordering guarantee.
type Unordered struct{}

func NewUnordered() *Unordered { return &Unordered{} }

func (u *Unordered) Accept(ev event.Event) []event.Event { return []event.Event{ev} }
func (u *Unordered) Flush() []event.Event                { return nil }
func (u *Unordered) Close() []event.Event                { return nil }

// Ordered buffers events per slot. Arrival of an event at a strictly higher
// slot than anything currently buffered flushes every buffered slot below
// it, sorted by tx-index within each slot and by slot ascending across
// slots. A periodic timer (driven externally via Flush) forces a full
// flush when no higher-slot event has arrived recently.
type Ordered struct {
	buf     map[uint64][]slotEntry
	maxSlot uint64
	hasMax  bool
}

func NewOrdered() *Ordered {
	return &Ordered{buf: make(map[uint64][]slotEntry)}
}

func (o *Ordered) Accept(ev event.Event) []event.Event {
	s := ev.Metadata.Slot
	var out []event.Event
	if o.hasMax && s > o.maxSlot {
		out = o.flushBelow(s)
	}
	if !o.hasMax || s > o.maxSlot {
		o.maxSlot = s
		o.hasMax = true
	}
	o.buf[s] = append(o.buf[s], slotEntry{TxIndex: ev.Metadata.TxIndex, Event: ev})
	return out
}

func (o *Ordered) flushBelow(ceiling uint64) []event.Event {
	var slots []uint64
	for k := range o.buf {
		if k < ceiling {
			slots = append(slots, k)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	var out []event.Event
	for _, k := range slots {
		entries := o.buf[k]
		sortEntriesByTxIndex(entries)
		for _, e := range entries {
			out = append(out, e.Event)
		}
		delete(o.buf, k)
	}
	return out
}

func (o *Ordered) Flush() []event.Event {
	return o.flushBelow(^uint64(0))
}

func (o *Ordered) Close() []event.Event { return o.Flush() }

// watermarkState tracks, per slot, the next tx-index StreamingOrdered
// expects to emit, and any events buffered ahead of that watermark.
type watermarkState struct {
	next    uint64
	pending map[uint64]event.Event
}

// StreamingOrdered emits events the instant their tx-index matches the
// per-slot watermark, draining any contiguous run that was buffered ahead
// of it. Events behind the watermark are duplicates and are silently
// discarded - the one case in this package where dropping an event is
// correct behavior rather than a bug.
type StreamingOrdered struct {
	slots   map[uint64]*watermarkState
	maxSlot uint64
	hasMax  bool
}

func NewStreamingOrdered() *StreamingOrdered {
	return &StreamingOrdered{slots: make(map[uint64]*watermarkState)}
}

func (s *StreamingOrdered) stateFor(slot uint64) *watermarkState {
	st, ok := s.slots[slot]
	if !ok {
		st = &watermarkState{pending: make(map[uint64]event.Event)}
		s.slots[slot] = st
	}
	return st
}

func (s *StreamingOrdered) Accept(ev event.Event) []event.Event {
	slot := ev.Metadata.Slot
	var out []event.Event

	if s.hasMax && slot > s.maxSlot {
		out = append(out, s.flushBelow(slot)...)
	}
	if !s.hasMax || slot > s.maxSlot {
		s.maxSlot = slot
		s.hasMax = true
	}

	st := s.stateFor(slot)
	t := ev.Metadata.TxIndex

	switch {
	case t < st.next:
		// duplicate, discard by design
	case t == st.next:
		out = append(out, ev)
		st.next++
		for {
			next, ok := st.pending[st.next]
			if !ok {
				break
			}
			out = append(out, next)
			delete(st.pending, st.next)
			st.next++
		}
	default:
		st.pending[t] = ev
	}

	return out
}

func (s *StreamingOrdered) flushBelow(ceiling uint64) []event.Event {
	var slots []uint64
	for k := range s.slots {
		if k < ceiling {
			slots = append(slots, k)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	var out []event.Event
	for _, k := range slots {
		st := s.slots[k]
		var txs []uint64
		for t := range st.pending {
			txs = append(txs, t)
		}
		sort.Slice(txs, func(i, j int) bool { return txs[i] < txs[j] })
		for _, t := range txs {
			out = append(out, st.pending[t])
		}
		delete(s.slots, k)
	}
	return out
}

func (s *StreamingOrdered) Flush() []event.Event {
	out := s.flushBelow(^uint64(0))
	s.maxSlot = 0
	s.hasMax = false
	return out
}

func (s *StreamingOrdered) Close() []event.Event { return s.Flush() }

// MicroBatch accumulates events in a flat slice for a fixed window width,
// sorting by (slot, tx-index) whenever the window closes - either because
// an event arrives after the window's end, or because the caller forces a
// flush.
type MicroBatch struct {
	width       time.Duration
	windowStart time.Time
	hasWindow   bool
	buf         []event.Event
	now         func() time.Time
}

func NewMicroBatch(width time.Duration) *MicroBatch {
	return &MicroBatch{width: width, now: time.Now}
}

func (m *MicroBatch) Accept(ev event.Event) []event.Event {
	now := m.now()
	var out []event.Event

	if !m.hasWindow {
		m.windowStart = now
		m.hasWindow = true
	} else if now.Sub(m.windowStart) >= m.width {
		out = m.drain()
		m.windowStart = now
	}

	m.buf = append(m.buf, ev)
	return out
}

func (m *MicroBatch) drain() []event.Event {
	out := m.buf
	m.buf = nil
	sort.Slice(out, func(i, j int) bool {
		if out[i].Metadata.Slot != out[j].Metadata.Slot {
			return out[i].Metadata.Slot < out[j].Metadata.Slot
		}
		return out[i].Metadata.TxIndex < out[j].Metadata.TxIndex
	})
	return out
}

func (m *MicroBatch) Flush() []event.Event {
	out := m.drain()
	m.hasWindow = false
	return out
}

func (m *MicroBatch) Close() []event.Event { return m.Flush() }

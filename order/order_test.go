package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/event"
	"github.com/withobsrvr/solana-dex-parser/order"
)

func evAt(slot, tx uint64) event.Event {
	return event.Event{Kind: event.KindOrcaSwap, Metadata: event.Metadata{Slot: slot, TxIndex: tx}}
}

func TestUnorderedEmitsImmediately(t *testing.T) {
	s := order.NewUnordered()
	out := s.Accept(evAt(1, 0))
	require.Len(t, out, 1)
	require.Empty(t, s.Flush())
	require.Empty(t, s.Close())
}

func TestOrderedFlushesLowerSlotsOnHigherArrival(t *testing.T) {
	s := order.NewOrdered()

	require.Empty(t, s.Accept(evAt(10, 2)))
	require.Empty(t, s.Accept(evAt(10, 0)))
	require.Empty(t, s.Accept(evAt(10, 1)))

	out := s.Accept(evAt(11, 0))
	require.Len(t, out, 3)
	require.EqualValues(t, 0, out[0].Metadata.TxIndex)
	require.EqualValues(t, 1, out[1].Metadata.TxIndex)
	require.EqualValues(t, 2, out[2].Metadata.TxIndex)
	for _, e := range out {
		require.EqualValues(t, 10, e.Metadata.Slot)
	}
}

func TestOrderedPeriodicFlushDrainsEverything(t *testing.T) {
	s := order.NewOrdered()
	s.Accept(evAt(5, 0))
	s.Accept(evAt(6, 1))
	s.Accept(evAt(6, 0))

	out := s.Flush()
	require.Len(t, out, 3)
	require.EqualValues(t, 5, out[0].Metadata.Slot)
	require.EqualValues(t, 6, out[1].Metadata.Slot)
	require.EqualValues(t, 0, out[1].Metadata.TxIndex)
	require.EqualValues(t, 6, out[2].Metadata.Slot)
	require.EqualValues(t, 1, out[2].Metadata.TxIndex)

	require.Empty(t, s.Flush())
}

func TestStreamingOrderedEmitsInSequenceAndDrainsGaps(t *testing.T) {
	s := order.NewStreamingOrdered()

	out := s.Accept(evAt(1, 0))
	require.Len(t, out, 1)

	// tx 2 arrives before tx 1: buffered, nothing emitted yet.
	out = s.Accept(evAt(1, 2))
	require.Empty(t, out)

	// tx 1 arrives: closes the gap, drains the buffered tx 2 too.
	out = s.Accept(evAt(1, 1))
	require.Len(t, out, 2)
	require.EqualValues(t, 1, out[0].Metadata.TxIndex)
	require.EqualValues(t, 2, out[1].Metadata.TxIndex)
}

func TestStreamingOrderedDiscardsDuplicates(t *testing.T) {
	s := order.NewStreamingOrdered()
	s.Accept(evAt(1, 0))
	s.Accept(evAt(1, 1))

	out := s.Accept(evAt(1, 0))
	require.Empty(t, out)
}

func TestStreamingOrderedFlushOnHigherSlotAndTimeout(t *testing.T) {
	s := order.NewStreamingOrdered()
	s.Accept(evAt(1, 0))
	out := s.Accept(evAt(1, 5)) // buffered, gap never closes
	require.Empty(t, out)

	out = s.Accept(evAt(2, 0))
	require.Len(t, out, 2) // slot 1's orphaned tx5 flushes, then slot 2's tx0 emits immediately
	require.EqualValues(t, 1, out[0].Metadata.Slot)
	require.EqualValues(t, 2, out[1].Metadata.Slot)

	require.Empty(t, s.Close()) // slot 2's tx0 already emitted; nothing left buffered
}

func TestMicroBatchSortsWithinWindow(t *testing.T) {
	s := order.NewMicroBatch(100 * time.Microsecond)
	s.Accept(evAt(10, 2))
	s.Accept(evAt(9, 5))
	s.Accept(evAt(10, 0))

	out := s.Flush()
	require.Len(t, out, 3)
	require.EqualValues(t, 9, out[0].Metadata.Slot)
	require.EqualValues(t, 10, out[1].Metadata.Slot)
	require.EqualValues(t, 0, out[1].Metadata.TxIndex)
	require.EqualValues(t, 10, out[2].Metadata.Slot)
	require.EqualValues(t, 2, out[2].Metadata.TxIndex)
}

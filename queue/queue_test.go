package queue_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/event"
	"github.com/withobsrvr/solana-dex-parser/queue"
)

func TestPushPopRoundTrip(t *testing.T) {
	q := queue.New(4, nil)
	ev := event.Event{Kind: event.KindOrcaSwap}

	require.True(t, q.Push(ev))
	got, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, event.KindOrcaSwap, got.Kind)
}

func TestPopEmptyReturnsFalse(t *testing.T) {
	q := queue.New(4, nil)
	_, ok := q.Pop()
	require.False(t, ok)
}

func TestPushFullDropsAndReportsFailure(t *testing.T) {
	q := queue.New(4, nil) // rounds up to capacity 4
	for i := 0; i < q.Cap(); i++ {
		require.True(t, q.Push(event.Event{}))
	}
	require.False(t, q.Push(event.Event{}))
	require.EqualValues(t, 1, q.Dropped())
}

func TestOverflowExample(t *testing.T) {
	q := queue.New(queue.DefaultCapacity, nil)
	accepted := 0
	for i := 0; i < queue.DefaultCapacity+1; i++ {
		if q.Push(event.Event{}) {
			accepted++
		}
	}
	require.Equal(t, queue.DefaultCapacity, accepted)
	require.EqualValues(t, 1, q.Dropped())
}

func TestLenTracksOccupancy(t *testing.T) {
	q := queue.New(8, nil)
	require.Equal(t, 0, q.Len())
	q.Push(event.Event{})
	q.Push(event.Event{})
	require.Equal(t, 2, q.Len())
	q.Pop()
	require.Equal(t, 1, q.Len())
}

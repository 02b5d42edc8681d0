package subscribe_test

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/withobsrvr/solana-dex-parser/decode/pumpfun"
	"github.com/withobsrvr/solana-dex-parser/discriminator"
	"github.com/withobsrvr/solana-dex-parser/event"
	"github.com/withobsrvr/solana-dex-parser/filter"
	"github.com/withobsrvr/solana-dex-parser/order"
	"github.com/withobsrvr/solana-dex-parser/queue"
	"github.com/withobsrvr/solana-dex-parser/subscribe"
)

func testRegistry() *discriminator.Registry {
	return discriminator.NewRegistry(
		[]discriminator.Entry8{
			{Disc: pumpfun.DiscTrade, Protocol: event.ProtocolPumpFun, Name: "pumpfun_trade", Decode: pumpfun.DecodeTrade},
		},
		nil,
	)
}

func putU64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:off+8], v) }

func buildTradeLogLine(isBuy bool, solAmount uint64) string {
	payload := make([]byte, 0, 256)
	payload = append(payload, pumpfun.DiscTrade[:]...)
	payload = append(payload, make([]byte, 32)...) // mint
	sol := make([]byte, 8)
	putU64(sol, 0, solAmount)
	payload = append(payload, sol...)
	payload = append(payload, make([]byte, 8)...) // token_amount
	if isBuy {
		payload = append(payload, 1)
	} else {
		payload = append(payload, 0)
	}
	payload = append(payload, make([]byte, 32+8+4*8+32+2*8+32+2*8+1+3*8)...) // rest, zeroed
	return "Program data: " + base64.StdEncoding.EncodeToString(payload)
}

type fakeTransport struct {
	updates []*subscribe.RawUpdate
	idx     int
}

func (f *fakeTransport) Recv(ctx context.Context) (*subscribe.RawUpdate, error) {
	if f.idx >= len(f.updates) {
		return nil, errors.New("no more updates")
	}
	u := f.updates[f.idx]
	f.idx++
	return u, nil
}

func (f *fakeTransport) Close() error { return nil }

func TestSubscriptionDecodesFiltersAndEnqueues(t *testing.T) {
	reg := testRegistry()
	stage := order.NewUnordered()
	q := queue.New(16, nil)

	transport := &fakeTransport{
		updates: []*subscribe.RawUpdate{
			{
				Slot:     1,
				TxIndex:  0,
				LogLines: []string{buildTradeLogLine(true, 1_000_000_000)},
			},
			{
				Slot:     1,
				TxIndex:  1,
				LogLines: []string{buildTradeLogLine(false, 2_000_000_000)},
			},
		},
	}

	sub := subscribe.New(transport, reg, stage, q, subscribe.Filters{
		EventFilter: filter.IncludeOnlyFilter(filter.KindPumpFunBuy),
	}, nil)

	err := sub.Run(context.Background(), nil)
	require.Error(t, err) // fakeTransport errors once exhausted, surfaced to the caller

	ev, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, event.KindPumpFunTrade, ev.Kind)
	require.True(t, ev.PumpFunTrade.IsBuy)
	require.EqualValues(t, 1_000_000_000, ev.PumpFunTrade.SolAmount)

	_, ok = q.Pop()
	require.False(t, ok) // the sell trade was filtered out by include_only=PumpFunBuy
}

func TestUpdateFiltersAcceptsNewFiltersWithoutReconnect(t *testing.T) {
	reg := testRegistry()
	stage := order.NewUnordered()
	q := queue.New(16, nil)
	transport := &fakeTransport{}

	sub := subscribe.New(transport, reg, stage, q, subscribe.Filters{
		EventFilter: filter.ExcludeFilter(event.KindPumpFunTrade),
	}, nil)

	sub.UpdateFilters(subscribe.Filters{EventFilter: filter.IncludeOnlyFilter(event.KindPumpFunTrade)})

	// No assertion on internal state beyond "doesn't panic and accepts the
	// mutation" - handleUpdate is exercised end-to-end above.
	_ = sub
}

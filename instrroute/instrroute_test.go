package instrroute_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/discriminator"
	"github.com/withobsrvr/solana-dex-parser/event"
	"github.com/withobsrvr/solana-dex-parser/instrroute"
)

func stubDecode(kind event.Kind) discriminator.Decoder {
	return func(data []byte, meta event.Metadata) (*event.Event, bool) {
		return &event.Event{Kind: kind, Metadata: meta}, true
	}
}

func TestRouteOuterAndInner(t *testing.T) {
	outerDisc := [8]byte{1, 1, 1, 1, 1, 1, 1, 1}
	var innerDisc [16]byte
	innerDisc[0] = 2

	reg := discriminator.NewRegistry(
		[]discriminator.Entry8{{Disc: outerDisc, Name: "outer", Decode: stubDecode(event.KindRaydiumAmmSwap)}},
		[]discriminator.Entry16{{Disc: innerDisc, Name: "inner", Decode: stubDecode(event.KindRaydiumClmmSwap)}},
	)

	tx := instrroute.Transaction{
		Pools: accounts.KeyPools{Static: make([]solana.PublicKey, 4)},
		Outer: []instrroute.Instruction{
			{ProgramIDIndex: 0, AccountIndexes: []uint8{0, 1}, Data: append(outerDisc[:], 0xFF)},
		},
		Inner: []instrroute.InnerGroup{
			{OuterIndex: 0, Instructions: []instrroute.Instruction{
				{ProgramIDIndex: 1, AccountIndexes: []uint8{1}, Data: append(innerDisc[:], 0xAA)},
			}},
		},
	}

	routed := instrroute.Route(tx, reg)
	require.Len(t, routed, 2)
	require.Equal(t, event.KindRaydiumAmmSwap, routed[0].Event.Kind)
	require.Equal(t, int32(-1), routed[0].InnerIndex)
	require.Equal(t, event.KindRaydiumClmmSwap, routed[1].Event.Kind)
	require.Equal(t, int32(0), routed[1].InnerIndex)
}

func TestRouteSkipsUnmatchedAndTruncated(t *testing.T) {
	reg := discriminator.NewRegistry(nil, nil)
	tx := instrroute.Transaction{
		Outer: []instrroute.Instruction{
			{Data: []byte{1, 2}},
			{Data: []byte{1, 1, 1, 1, 1, 1, 1, 1, 9}},
		},
	}
	routed := instrroute.Route(tx, reg)
	require.Empty(t, routed)
}

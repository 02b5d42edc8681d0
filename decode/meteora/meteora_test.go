package meteora_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/decode/meteora"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func TestDecodePoolsSwapTruncated(t *testing.T) {
	_, ok := meteora.DecodePoolsSwap(make([]byte, 4), event.Metadata{})
	require.False(t, ok)
}

func TestDecodeDammV2Swap(t *testing.T) {
	data := make([]byte, 32+32+8+8+1)
	data[len(data)-1] = 1
	ev, ok := meteora.DecodeDammV2Swap(data, event.Metadata{})
	require.True(t, ok)
	require.True(t, ev.MeteoraDammV2Swap.ATobB)
}

func TestDecodeDlmmSwapTruncated(t *testing.T) {
	_, ok := meteora.DecodeDlmmSwap(make([]byte, 20), event.Metadata{})
	require.False(t, ok)
}

func TestDecodeDlmmPositionCreate(t *testing.T) {
	data := make([]byte, 32*3+4+4)
	ev, ok := meteora.DecodeDlmmPositionCreate(data, event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.KindMeteoraDlmmPositionCreate, ev.Kind)
}

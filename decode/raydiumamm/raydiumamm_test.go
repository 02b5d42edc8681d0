package raydiumamm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/decode/raydiumamm"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func TestDecodeSwapTruncated(t *testing.T) {
	_, ok := raydiumamm.DecodeSwap(make([]byte, 4), event.Metadata{})
	require.False(t, ok)
}

func TestDecodeWithdraw(t *testing.T) {
	data := make([]byte, 32+32+8)
	data[0] = 9
	ev, ok := raydiumamm.DecodeWithdraw(data, event.Metadata{Slot: 5})
	require.True(t, ok)
	require.Equal(t, byte(9), ev.RaydiumAmmWithdraw.AmmID[0])
	require.Equal(t, uint64(5), ev.Metadata.Slot)
}

func TestDecodeInitializeTruncated(t *testing.T) {
	_, ok := raydiumamm.DecodeInitialize(make([]byte, 32*4), event.Metadata{})
	require.False(t, ok)
}

package raydiumclmm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/decode/raydiumclmm"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func TestDecodeSwapTruncated(t *testing.T) {
	_, ok := raydiumclmm.DecodeSwap(make([]byte, 10), event.Metadata{})
	require.False(t, ok)
}

func TestDecodeCollectFee(t *testing.T) {
	data := make([]byte, 32+32+8+8)
	ev, ok := raydiumclmm.DecodeCollectFee(data, event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.KindRaydiumClmmCollectFee, ev.Kind)
}

func TestDecodeOpenPositionTruncated(t *testing.T) {
	_, ok := raydiumclmm.DecodeOpenPosition(make([]byte, 32+32+4+4), event.Metadata{})
	require.False(t, ok)
}

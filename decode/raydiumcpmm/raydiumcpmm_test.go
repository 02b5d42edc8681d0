package raydiumcpmm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/decode/raydiumcpmm"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func TestDecodeSwapBaseIn(t *testing.T) {
	data := make([]byte, 32+32+8+8+32+32+1)
	data[len(data)-1] = 1
	ev, ok := raydiumcpmm.DecodeSwapBaseIn(data, event.Metadata{})
	require.True(t, ok)
	require.True(t, ev.RaydiumCpmmSwap.ZeroForOne)
	require.True(t, ev.RaydiumCpmmSwap.BaseInput)
}

func TestDecodeSwapBaseOut(t *testing.T) {
	data := make([]byte, 32+32+8+8+32+32+1)
	ev, ok := raydiumcpmm.DecodeSwapBaseOut(data, event.Metadata{})
	require.True(t, ok)
	require.False(t, ev.RaydiumCpmmSwap.BaseInput)
}

func TestDecodeSwapTruncated(t *testing.T) {
	_, ok := raydiumcpmm.DecodeSwapBaseIn(make([]byte, 3), event.Metadata{})
	require.False(t, ok)
}

func TestDecodeInitializeTruncated(t *testing.T) {
	_, ok := raydiumcpmm.DecodeInitialize(make([]byte, 32), event.Metadata{})
	require.False(t, ok)
}

package orca_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/decode/orca"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func TestDecodeSwapTruncated(t *testing.T) {
	_, ok := orca.DecodeSwap(make([]byte, 5), event.Metadata{})
	require.False(t, ok)
}

func TestDecodePoolInitialized(t *testing.T) {
	data := make([]byte, 32*3+2+16)
	ev, ok := orca.DecodePoolInitialized(data, event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.KindOrcaPoolInitialized, ev.Kind)
}

func TestDecodeLiquidityIncreasedTruncated(t *testing.T) {
	_, ok := orca.DecodeLiquidityIncreased(make([]byte, 10), event.Metadata{})
	require.False(t, ok)
}

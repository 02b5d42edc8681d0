package pumpswap_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/decode/pumpswap"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func u64bytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func TestDecodeBuy(t *testing.T) {
	var buf []byte
	buf = append(buf, u64bytes(100)...) // base_amount_out
	buf = append(buf, u64bytes(200)...) // max_quote_amount_in
	for i := 0; i < 4; i++ {
		buf = append(buf, make([]byte, 32)...)
	}
	for i := 0; i < 7; i++ {
		buf = append(buf, u64bytes(uint64(i))...)
	}
	ev, ok := pumpswap.DecodeBuy(buf, event.Metadata{})
	require.True(t, ok)
	require.Equal(t, uint64(100), ev.PumpSwapBuy.BaseAmountOut)
	require.Equal(t, uint64(200), ev.PumpSwapBuy.MaxQuoteAmountIn)
}

func TestDecodeBuyTruncated(t *testing.T) {
	_, ok := pumpswap.DecodeBuy([]byte{1, 2, 3}, event.Metadata{})
	require.False(t, ok)
}

func TestDecodeCreatePoolTruncated(t *testing.T) {
	_, ok := pumpswap.DecodeCreatePool(make([]byte, 5), event.Metadata{})
	require.False(t, ok)
}

func TestInnerDiscriminatorSharesMagicPrefix(t *testing.T) {
	require.Equal(t, pumpswap.InnerMagicPrefix[:], pumpswap.DiscBuy[:8])
	require.Equal(t, pumpswap.InnerMagicPrefix[:], pumpswap.DiscSell[:8])
	require.NotEqual(t, pumpswap.DiscBuy, pumpswap.DiscSell)
}

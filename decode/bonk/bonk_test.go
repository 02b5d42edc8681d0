package bonk_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/decode/bonk"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func TestDecodeTrade(t *testing.T) {
	data := make([]byte, 32+32+1+8+8+8+8)
	data[64] = 1 // direction = sell
	ev, ok := bonk.DecodeTrade(data, event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.TradeDirectionSell, ev.BonkTrade.Direction)
}

func TestDecodeTradeTruncated(t *testing.T) {
	_, ok := bonk.DecodeTrade(make([]byte, 10), event.Metadata{})
	require.False(t, ok)
}

func TestDecodePoolCreateTruncated(t *testing.T) {
	_, ok := bonk.DecodePoolCreate(make([]byte, 32*4), event.Metadata{})
	require.False(t, ok)
}

func TestDecodeMigrateAmm(t *testing.T) {
	data := make([]byte, 32*4+8+8)
	ev, ok := bonk.DecodeMigrateAmm(data, event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.KindBonkMigrateAmm, ev.Kind)
}

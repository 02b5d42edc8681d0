package decode_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/withobsrvr/solana-dex-parser/decode"
	"github.com/withobsrvr/solana-dex-parser/decode/bonk"
	"github.com/withobsrvr/solana-dex-parser/decode/pumpfun"
	"github.com/withobsrvr/solana-dex-parser/decode/pumpswap"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func TestDefaultRegistryResolvesPumpFunBonkAndPumpSwapEntries(t *testing.T) {
	reg := decode.DefaultRegistry()

	entry, ok := reg.LookupOuter(pumpfun.DiscTrade)
	require.True(t, ok)
	require.Equal(t, event.ProtocolPumpFun, entry.Protocol)
	require.Equal(t, "pumpfun.Trade", entry.Name)

	entry, ok = reg.LookupOuter(bonk.DiscTrade)
	require.True(t, ok)
	require.Equal(t, event.ProtocolBonk, entry.Protocol)

	inner, ok := reg.LookupInner(pumpswap.DiscBuy)
	require.True(t, ok)
	require.Equal(t, event.ProtocolPumpSwap, inner.Protocol)
	require.Equal(t, "pumpswap.Buy", inner.Name)
}

func TestDefaultRegistryRejectsUnknownDiscriminator(t *testing.T) {
	reg := decode.DefaultRegistry()

	_, ok := reg.LookupOuter([8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	require.False(t, ok)
}

func TestDecodeAccountRoutesByOwner(t *testing.T) {
	ev, ok := decode.DecodeAccount(solana.SystemProgramID, [32]byte{}, make([]byte, 80), event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.KindAccountNonce, ev.Kind)

	ev, ok = decode.DecodeAccount(solana.TokenProgramID, [32]byte{}, make([]byte, 82), event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.KindAccountTokenInfo, ev.Kind)

	ev, ok = decode.DecodeAccount(solana.TokenProgramID, [32]byte{}, make([]byte, 165), event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.KindAccountTokenAccount, ev.Kind)
}

func TestDecodeAccountUnknownOwnerIsUndecoded(t *testing.T) {
	_, ok := decode.DecodeAccount([32]byte{0x01}, [32]byte{}, make([]byte, 80), event.Metadata{})
	require.False(t, ok)
}

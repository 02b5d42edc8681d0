package accounts_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/decode/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func TestDecodeNonce(t *testing.T) {
	data := make([]byte, 80)
	data[8] = 1  // authority[0]
	data[40] = 2 // nonce[0]
	ev, ok := accounts.DecodeNonce([32]byte{}, data, event.Metadata{})
	require.True(t, ok)
	require.Equal(t, byte(1), ev.AccountNonce.AuthorizedPubkey[0])
	require.Equal(t, byte(2), ev.AccountNonce.Nonce[0])
}

func TestDecodeNonceTruncated(t *testing.T) {
	_, ok := accounts.DecodeNonce([32]byte{}, make([]byte, 20), event.Metadata{})
	require.False(t, ok)
}

func TestIsNonceAccount(t *testing.T) {
	require.True(t, accounts.IsNonceAccount(make([]byte, 80)))
	require.False(t, accounts.IsNonceAccount(make([]byte, 79)))
}

func TestDecodeMintWithNoAuthorities(t *testing.T) {
	data := make([]byte, 82)
	// mint_authority tag = 0 (None), freeze_authority tag = 0 (None)
	ev, ok := accounts.DecodeMint([32]byte{}, data, event.Metadata{})
	require.True(t, ok)
	require.False(t, ev.AccountTokenInfo.HasMintAuthority)
	require.False(t, ev.AccountTokenInfo.HasFreezeAuthority)
	require.False(t, ev.AccountTokenInfo.IsToken2022)
}

func TestDecodeMintToken2022Detection(t *testing.T) {
	data := make([]byte, 200)
	ev, ok := accounts.DecodeMint([32]byte{}, data, event.Metadata{})
	require.True(t, ok)
	require.True(t, ev.AccountTokenInfo.IsToken2022)
}

func TestDecodeTokenAccount(t *testing.T) {
	data := make([]byte, 165)
	ev, ok := accounts.DecodeTokenAccount([32]byte{}, data, event.Metadata{})
	require.True(t, ok)
	require.False(t, ev.AccountTokenAccount.HasDelegate)
	require.False(t, ev.AccountTokenAccount.IsNative)
}

func TestDecodeTokenAccountTruncated(t *testing.T) {
	_, ok := accounts.DecodeTokenAccount([32]byte{}, make([]byte, 100), event.Metadata{})
	require.False(t, ok)
}

func TestDecodePumpSwapGlobalConfigTruncated(t *testing.T) {
	_, ok := accounts.DecodePumpSwapGlobalConfig([32]byte{}, make([]byte, 10), event.Metadata{})
	require.False(t, ok)
}

func TestDecodePumpSwapPool(t *testing.T) {
	data := make([]byte, 32*6)
	ev, ok := accounts.DecodePumpSwapPool([32]byte{}, data, event.Metadata{})
	require.True(t, ok)
	require.Equal(t, event.KindAccountPumpSwapPool, ev.Kind)
}

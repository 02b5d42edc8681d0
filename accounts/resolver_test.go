package accounts_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/accounts"
)

func keys(n int, seed byte) []solana.PublicKey {
	out := make([]solana.PublicKey, n)
	for i := range out {
		out[i][0] = seed
		out[i][1] = byte(i)
	}
	return out
}

func TestResolveAcrossPools(t *testing.T) {
	pools := accounts.KeyPools{
		Static:         keys(2, 1),
		LoadedWritable: keys(2, 2),
		LoadedReadonly: keys(2, 3),
	}

	pk, ok := pools.Resolve(0)
	require.True(t, ok)
	require.Equal(t, byte(1), pk[0])

	pk, ok = pools.Resolve(2)
	require.True(t, ok)
	require.Equal(t, byte(2), pk[0])
	require.Equal(t, byte(0), pk[1])

	pk, ok = pools.Resolve(5)
	require.True(t, ok)
	require.Equal(t, byte(3), pk[0])
	require.Equal(t, byte(1), pk[1])
}

func TestResolveOutOfRange(t *testing.T) {
	pools := accounts.KeyPools{Static: keys(1, 1)}
	_, ok := pools.Resolve(5)
	require.False(t, ok)
}

func TestGetterFor(t *testing.T) {
	pools := accounts.KeyPools{Static: keys(5, 9)}
	getter := accounts.GetterFor(pools, []uint8{2, 4})
	pk, ok := getter(1)
	require.True(t, ok)
	require.Equal(t, byte(4), pk[1])

	_, ok = getter(9)
	require.False(t, ok)
}

func TestInnerGroupIndex(t *testing.T) {
	idx := accounts.BuildInnerGroupIndex([]int32{3, 1, 7})
	pos, ok := idx.GroupFor(1)
	require.True(t, ok)
	require.Equal(t, 1, pos)

	_, ok = idx.GroupFor(99)
	require.False(t, ok)
}

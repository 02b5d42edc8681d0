package bytesreader_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
)

func TestReadU64LE(t *testing.T) {
	data := []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	v, ok := bytesreader.ReadU64LE(data, 0)
	require.True(t, ok)
	require.Equal(t, uint64(0xff), v)
}

func TestReadU64LETruncated(t *testing.T) {
	_, ok := bytesreader.ReadU64LE([]byte{1, 2, 3}, 0)
	require.False(t, ok)
}

func TestReadPubkey(t *testing.T) {
	data := make([]byte, 32)
	data[0] = 7
	data[31] = 9
	pk, ok := bytesreader.ReadPubkey(data, 0)
	require.True(t, ok)
	require.Equal(t, byte(7), pk[0])
	require.Equal(t, byte(9), pk[31])
}

func TestReadPubkeyOutOfRange(t *testing.T) {
	_, ok := bytesreader.ReadPubkey(make([]byte, 10), 0)
	require.False(t, ok)
}

func TestReadString(t *testing.T) {
	// 4-byte LE length prefix followed by UTF-8 bytes.
	data := []byte{5, 0, 0, 0, 'h', 'e', 'l', 'l', 'o'}
	s, consumed, ok := bytesreader.ReadString(data, 0)
	require.True(t, ok)
	require.Equal(t, "hello", s)
	require.Equal(t, 9, consumed)
}

func TestReadStringTruncatedPayload(t *testing.T) {
	data := []byte{10, 0, 0, 0, 'h', 'i'}
	_, _, ok := bytesreader.ReadString(data, 0)
	require.False(t, ok)
}

func TestReadBool(t *testing.T) {
	v, ok := bytesreader.ReadBool([]byte{1}, 0)
	require.True(t, ok)
	require.True(t, v)

	v, ok = bytesreader.ReadBool([]byte{0}, 0)
	require.True(t, ok)
	require.False(t, v)
}

func TestReadU128LE(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 1
	data[8] = 2
	u, ok := bytesreader.ReadU128(data, 0)
	require.True(t, ok)
	require.Equal(t, uint64(1), u.Lo)
	require.Equal(t, uint64(2), u.Hi)
}

func TestRemaining(t *testing.T) {
	require.True(t, bytesreader.Remaining(make([]byte, 10), 2, 8))
	require.False(t, bytesreader.Remaining(make([]byte, 10), 2, 9))
}

// Package bytesreader provides branch-light, allocation-free primitive
// readers over raw instruction and log-line payloads.
//
// Every reader follows the same contract: given a buffer and an offset,
// return the decoded value, or ok=false if the buffer is too short.
// ReadString also returns the number of bytes it consumed (length prefix
// plus string bytes). None of these allocate on the success path
// except ReadString, which must copy out of the shared receive buffer.
package bytesreader

import (
	"encoding/binary"
	"math/bits"
	"unicode/utf8"

	"github.com/gagliardetto/solana-go"
)

func ReadU8(data []byte, offset int) (uint8, bool) {
	if offset < 0 || offset >= len(data) {
		return 0, false
	}
	return data[offset], true
}

func ReadBool(data []byte, offset int) (bool, bool) {
	v, ok := ReadU8(data, offset)
	return v == 1, ok
}

func ReadU16LE(data []byte, offset int) (uint16, bool) {
	if offset < 0 || offset+2 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(data[offset : offset+2]), true
}

func ReadU32LE(data []byte, offset int) (uint32, bool) {
	if offset < 0 || offset+4 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[offset : offset+4]), true
}

func ReadI32LE(data []byte, offset int) (int32, bool) {
	v, ok := ReadU32LE(data, offset)
	return int32(v), ok
}

func ReadU64LE(data []byte, offset int) (uint64, bool) {
	if offset < 0 || offset+8 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[offset : offset+8]), true
}

func ReadI64LE(data []byte, offset int) (int64, bool) {
	v, ok := ReadU64LE(data, offset)
	return int64(v), ok
}

// ReadU128LE decodes a 16-byte little-endian unsigned integer into the
// high/low uint64 halves used by U128 (no native 128-bit integer in Go).
func ReadU128LE(data []byte, offset int) (hi uint64, lo uint64, ok bool) {
	if offset < 0 || offset+16 > len(data) {
		return 0, 0, false
	}
	lo = binary.LittleEndian.Uint64(data[offset : offset+8])
	hi = binary.LittleEndian.Uint64(data[offset+8 : offset+16])
	return hi, lo, true
}

// U128 packs a 128-bit unsigned integer as two uint64 halves.
type U128 struct {
	Hi uint64
	Lo uint64
}

func (u U128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Add128 adds two U128 values, ignoring overflow beyond 128 bits (the
// wire values this module decodes never approach that range).
func Add128(a, b U128) U128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return U128{Hi: hi, Lo: lo}
}

func ReadU128(data []byte, offset int) (U128, bool) {
	hi, lo, ok := ReadU128LE(data, offset)
	return U128{Hi: hi, Lo: lo}, ok
}

// ReadPubkey decodes a 32-byte Solana public key.
func ReadPubkey(data []byte, offset int) (solana.PublicKey, bool) {
	if offset < 0 || offset+32 > len(data) {
		return solana.PublicKey{}, false
	}
	var pk solana.PublicKey
	copy(pk[:], data[offset:offset+32])
	return pk, true
}

// ReadString decodes a borsh-style u32-length-prefixed string. It returns
// ok=false both on a truncated buffer and on a length-valid but invalid-UTF-8
// payload, rather than silently producing a string holding non-UTF-8 bytes.
// It returns the number of bytes consumed including the length prefix.
func ReadString(data []byte, offset int) (string, int, bool) {
	if offset < 0 || offset+4 > len(data) {
		return "", 0, false
	}
	n, _ := ReadU32LE(data, offset)
	strLen := int(n)
	if strLen < 0 || offset+4+strLen > len(data) {
		return "", 0, false
	}
	raw := data[offset+4 : offset+4+strLen]
	if !utf8.Valid(raw) {
		return "", 0, false
	}
	return string(raw), 4 + strLen, true
}

// Remaining reports whether at least n bytes are available starting at
// offset, without reading them.
func Remaining(data []byte, offset, n int) bool {
	return offset >= 0 && n >= 0 && offset+n <= len(data)
}

// Package orca decodes Orca Whirlpool swap, liquidity, and pool-lifecycle
// events keyed by an 8-byte discriminator (outer instruction data and
// `Program data:` log payloads).
package orca

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// These four discriminators are placeholders, not recovered on-chain values.
var (
	DiscSwap            = [8]byte{0x17, 0x4C, 0xB9, 0x21, 0x6A, 0xE8, 0x3F, 0x05}
	DiscLiquidityIncreased = [8]byte{0x3E, 0x6B, 0xA7, 0x4D, 0x21, 0xF0, 0x8C, 0x19}
	DiscLiquidityDecreased = [8]byte{0x5D, 0x91, 0x2A, 0xF6, 0x3B, 0x0E, 0x74, 0xD8}
	DiscPoolInitialized    = [8]byte{0x7A, 0x2D, 0xE8, 0x4F, 0x16, 0xB3, 0x59, 0x0C}
)

// DecodeSwap parses: whirlpool(32) authority(32) amount_in(8) amount_out(8)
// sqrt_price_x64(16) liquidity_after(16) a_to_b(1)
func DecodeSwap(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	whirlpool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	authority, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	amountIn, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	amountOut, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	sqrtPrice, ok := bytesreader.ReadU128(data, off)
	if !ok {
		return nil, false
	}
	off += 16
	liqAfter, ok := bytesreader.ReadU128(data, off)
	if !ok {
		return nil, false
	}
	off += 16
	aToB, ok := bytesreader.ReadBool(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.OrcaSwapEvent{
		Whirlpool: whirlpool, Authority: authority, AmountIn: amountIn, AmountOut: amountOut,
		SqrtPriceX64: sqrtPrice, LiquidityAfter: liqAfter, ATobB: aToB,
	}
	return &event.Event{Kind: event.KindOrcaSwap, Metadata: meta, OrcaSwap: ev}, true
}

func decodeLiquidityChange(data []byte) (whirlpool, position [32]byte, amt bytesreader.U128, a, b uint64, ok bool) {
	off := 0
	wp, ok1 := bytesreader.ReadPubkey(data, off)
	off += 32
	pos, ok2 := bytesreader.ReadPubkey(data, off)
	off += 32
	lq, ok3 := bytesreader.ReadU128(data, off)
	off += 16
	ta, ok4 := bytesreader.ReadU64LE(data, off)
	off += 8
	tb, ok5 := bytesreader.ReadU64LE(data, off)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return [32]byte{}, [32]byte{}, bytesreader.U128{}, 0, 0, false
	}
	return wp, pos, lq, ta, tb, true
}

// DecodeLiquidityIncreased parses: whirlpool(32) position(32) liquidity_amount(16)
// token_a_amount(8) token_b_amount(8)
func DecodeLiquidityIncreased(data []byte, meta event.Metadata) (*event.Event, bool) {
	wp, pos, lq, ta, tb, ok := decodeLiquidityChange(data)
	if !ok {
		return nil, false
	}
	ev := &event.OrcaLiquidityIncreasedEvent{Whirlpool: wp, Position: pos, LiquidityAmount: lq, TokenAAmount: ta, TokenBAmount: tb}
	return &event.Event{Kind: event.KindOrcaLiquidityIncreased, Metadata: meta, OrcaLiquidityIncreased: ev}, true
}

// DecodeLiquidityDecreased parses the same shape as DecodeLiquidityIncreased.
func DecodeLiquidityDecreased(data []byte, meta event.Metadata) (*event.Event, bool) {
	wp, pos, lq, ta, tb, ok := decodeLiquidityChange(data)
	if !ok {
		return nil, false
	}
	ev := &event.OrcaLiquidityDecreasedEvent{Whirlpool: wp, Position: pos, LiquidityAmount: lq, TokenAAmount: ta, TokenBAmount: tb}
	return &event.Event{Kind: event.KindOrcaLiquidityDecreased, Metadata: meta, OrcaLiquidityDecreased: ev}, true
}

// DecodePoolInitialized parses: whirlpool(32) token_mint_a(32) token_mint_b(32)
// tick_spacing(2) sqrt_price_x64(16)
func DecodePoolInitialized(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	whirlpool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	mintA, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	mintB, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	tickSpacing, ok := bytesreader.ReadU16LE(data, off)
	if !ok {
		return nil, false
	}
	off += 2
	sqrtPrice, ok := bytesreader.ReadU128(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.OrcaPoolInitializedEvent{Whirlpool: whirlpool, TokenMintA: mintA, TokenMintB: mintB, TickSpacing: tickSpacing, SqrtPriceX64: sqrtPrice}
	return &event.Event{Kind: event.KindOrcaPoolInitialized, Metadata: meta, OrcaPoolInitialized: ev}, true
}

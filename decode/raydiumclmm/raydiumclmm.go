// Package raydiumclmm decodes Raydium's concentrated-liquidity (CLMM)
// program's swap and position-management events keyed by an 8-byte
// discriminator (outer instruction data and `Program data:` log payloads).
package raydiumclmm

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

var (
	DiscSwap              = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
	DiscCreatePool        = [8]byte{233, 146, 209, 142, 207, 104, 64, 188}
	DiscIncreaseLiquidity = [8]byte{133, 29, 89, 223, 69, 238, 176, 10}
	DiscDecreaseLiquidity = [8]byte{160, 38, 208, 111, 104, 91, 44, 1}
	DiscCollectFee        = [8]byte{164, 152, 207, 99, 187, 104, 171, 119}

	// DiscOpenPosition and DiscClosePosition have no recovered discriminator
	// in the available source material (only Swap/IncreaseLiquidity/
	// DecreaseLiquidity/CreatePool/CollectFee events are present there);
	// these two remain placeholders.
	DiscOpenPosition  = [8]byte{0x87, 0xD6, 0x24, 0x6F, 0xB8, 0x11, 0x5E, 0x3C}
	DiscClosePosition = [8]byte{0x7B, 0x4A, 0xCF, 0x39, 0xE1, 0x02, 0xA8, 0x6D}
)

func readU128AsPair(data []byte, off int) (bytesreader.U128, int, bool) {
	u, ok := bytesreader.ReadU128(data, off)
	return u, 16, ok
}

// DecodeSwap parses: pool_state(32) sender(32) amount_in(8) amount_out(8)
// sqrt_price_x64(16) liquidity_after(16) tick_after(4) zero_for_one(1)
func DecodeSwap(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	sender, ok := bytesreader.ReadPubkey(data, off)
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
	sqrtPrice, n, ok := readU128AsPair(data, off)
	if !ok {
		return nil, false
	}
	off += n
	liqAfter, n, ok := readU128AsPair(data, off)
	if !ok {
		return nil, false
	}
	off += n
	tick, ok := bytesreader.ReadI32LE(data, off)
	if !ok {
		return nil, false
	}
	off += 4
	zeroForOne, ok := bytesreader.ReadBool(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumClmmSwapEvent{
		PoolState: pool, Sender: sender, AmountIn: amountIn, AmountOut: amountOut,
		SqrtPriceX64: sqrtPrice, LiquidityAfter: liqAfter, TickAfter: tick, ZeroForOne: zeroForOne,
	}
	return &event.Event{Kind: event.KindRaydiumClmmSwap, Metadata: meta, RaydiumClmmSwap: ev}, true
}

// DecodeCreatePool parses: pool_state(32) token_mint_0(32) token_mint_1(32) sqrt_price_x64(16) tick(4)
func DecodeCreatePool(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	mint0, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	mint1, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	sqrtPrice, n, ok := readU128AsPair(data, off)
	if !ok {
		return nil, false
	}
	off += n
	tick, ok := bytesreader.ReadI32LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumClmmCreatePoolEvent{PoolState: pool, TokenMint0: mint0, TokenMint1: mint1, SqrtPriceX64: sqrtPrice, Tick: tick}
	return &event.Event{Kind: event.KindRaydiumClmmCreatePool, Metadata: meta, RaydiumClmmCreatePool: ev}, true
}

// DecodeOpenPosition parses: pool_state(32) owner(32) tick_lower(4) tick_upper(4)
// liquidity(16) amount0(8) amount1(8)
func DecodeOpenPosition(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	owner, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	tickLower, ok := bytesreader.ReadI32LE(data, off)
	if !ok {
		return nil, false
	}
	off += 4
	tickUpper, ok := bytesreader.ReadI32LE(data, off)
	if !ok {
		return nil, false
	}
	off += 4
	liquidity, n, ok := readU128AsPair(data, off)
	if !ok {
		return nil, false
	}
	off += n
	amount0, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	amount1, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumClmmOpenPositionEvent{
		PoolState: pool, Owner: owner, TickLowerIndex: tickLower, TickUpperIndex: tickUpper,
		Liquidity: liquidity, Amount0: amount0, Amount1: amount1,
	}
	return &event.Event{Kind: event.KindRaydiumClmmOpenPosition, Metadata: meta, RaydiumClmmOpenPosition: ev}, true
}

// DecodeClosePosition parses: pool_state(32) owner(32) position_nft_mint(32)
func DecodeClosePosition(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	owner, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	nftMint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumClmmClosePositionEvent{PoolState: pool, Owner: owner, PositionNftMint: nftMint}
	return &event.Event{Kind: event.KindRaydiumClmmClosePosition, Metadata: meta, RaydiumClmmClosePosition: ev}, true
}

func decodeLiquidityChange(data []byte, meta event.Metadata, kind event.Kind) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	owner, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	liquidity, n, ok := readU128AsPair(data, off)
	if !ok {
		return nil, false
	}
	off += n
	amount0, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	amount1, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.Event{Kind: kind, Metadata: meta}
	switch kind {
	case event.KindRaydiumClmmIncreaseLiquidity:
		ev.RaydiumClmmIncreaseLiquidity = &event.RaydiumClmmIncreaseLiquidityEvent{
			PoolState: pool, Owner: owner, Liquidity: liquidity, Amount0: amount0, Amount1: amount1,
		}
	case event.KindRaydiumClmmDecreaseLiquidity:
		ev.RaydiumClmmDecreaseLiquidity = &event.RaydiumClmmDecreaseLiquidityEvent{
			PoolState: pool, Owner: owner, Liquidity: liquidity, Amount0: amount0, Amount1: amount1,
		}
	}
	return ev, true
}

// DecodeIncreaseLiquidity parses: pool_state(32) owner(32) liquidity(16) amount0(8) amount1(8)
func DecodeIncreaseLiquidity(data []byte, meta event.Metadata) (*event.Event, bool) {
	return decodeLiquidityChange(data, meta, event.KindRaydiumClmmIncreaseLiquidity)
}

// DecodeDecreaseLiquidity parses the same shape as DecodeIncreaseLiquidity.
func DecodeDecreaseLiquidity(data []byte, meta event.Metadata) (*event.Event, bool) {
	return decodeLiquidityChange(data, meta, event.KindRaydiumClmmDecreaseLiquidity)
}

// DecodeCollectFee parses: pool_state(32) owner(32) amount0(8) amount1(8)
func DecodeCollectFee(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	owner, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	amount0, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	amount1, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumClmmCollectFeeEvent{PoolState: pool, Owner: owner, Amount0: amount0, Amount1: amount1}
	return &event.Event{Kind: event.KindRaydiumClmmCollectFee, Metadata: meta, RaydiumClmmCollectFee: ev}, true
}

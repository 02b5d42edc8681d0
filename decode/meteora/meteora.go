// Package meteora decodes Meteora's three pool programs: the classic
// constant-product/stable Pools (AMM) program, DAMM v2, and the DLMM
// (discretized liquidity market maker) program. All three are dispatched by
// an 8-byte discriminator (outer instruction data and `Program data:` log
// payloads) despite being distinct on-chain
// programs, so their decoders live together here the way the upstream
// implementation groups them under one logs module.
package meteora

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

var (
	// Pools (classic AMM)
	DiscPoolsSwap            = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
	DiscPoolsAddLiquidity    = [8]byte{181, 157, 89, 67, 143, 182, 52, 72}
	DiscPoolsRemoveLiquidity = [8]byte{80, 85, 209, 72, 24, 206, 177, 108}

	// DAMM v2. SWAP_LOG is the recovered event discriminator for a plain
	// swap; SWAP2_LOG (a distinct, newer swap event variant) is not wired
	// to its own registry entry since it shares DecodeDammV2Swap's event
	// kind and field shape closely enough not to warrant a second decoder.
	DiscDammV2Swap            = [8]byte{27, 60, 21, 213, 138, 170, 187, 147}
	DiscDammV2AddLiquidity    = [8]byte{175, 242, 8, 157, 30, 247, 185, 169}
	DiscDammV2RemoveLiquidity = [8]byte{87, 46, 88, 98, 175, 96, 34, 91}
	DiscDammV2CreatePosition  = [8]byte{156, 15, 119, 198, 29, 181, 221, 55}
	DiscDammV2ClosePosition   = [8]byte{20, 145, 144, 68, 143, 142, 214, 178}

	// DLMM has no recovered discriminator in the available source material;
	// these three remain placeholders.
	DiscDlmmSwap           = [8]byte{0xA4, 0x6F, 0x3B, 0x82, 0x1D, 0x95, 0x0E, 0x27}
	DiscDlmmPositionCreate = [8]byte{0x2F, 0x8D, 0x61, 0xA3, 0x74, 0xC0, 0x5B, 0x19}
	DiscDlmmPositionClose  = [8]byte{0x6C, 0x14, 0xE9, 0x5A, 0x2B, 0x87, 0x3D, 0x06}
)

// DecodePoolsSwap parses: pool(32) user(32) in_amount(8) out_amount(8) trade_fee(8)
func DecodePoolsSwap(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	user, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	in, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	out, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	fee, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.MeteoraPoolsSwapEvent{Pool: pool, User: user, InAmount: in, OutAmount: out, TradeFee: fee}
	return &event.Event{Kind: event.KindMeteoraPoolsSwap, Metadata: meta, MeteoraPoolsSwap: ev}, true
}

func decodePoolsLiquidity(data []byte) (pool, user [32]byte, a, b, lp uint64, ok bool) {
	off := 0
	p, ok1 := bytesreader.ReadPubkey(data, off)
	off += 32
	u, ok2 := bytesreader.ReadPubkey(data, off)
	off += 32
	va, ok3 := bytesreader.ReadU64LE(data, off)
	off += 8
	vb, ok4 := bytesreader.ReadU64LE(data, off)
	off += 8
	vl, ok5 := bytesreader.ReadU64LE(data, off)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return [32]byte{}, [32]byte{}, 0, 0, 0, false
	}
	return p, u, va, vb, vl, true
}

// DecodePoolsAddLiquidity parses: pool(32) user(32) token_a_amount(8) token_b_amount(8) lp_mint_amount(8)
func DecodePoolsAddLiquidity(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, user, a, b, lp, ok := decodePoolsLiquidity(data)
	if !ok {
		return nil, false
	}
	ev := &event.MeteoraPoolsAddLiquidityEvent{Pool: pool, User: user, TokenAAmount: a, TokenBAmount: b, LpMintAmount: lp}
	return &event.Event{Kind: event.KindMeteoraPoolsAddLiquidity, Metadata: meta, MeteoraPoolsAddLiquidity: ev}, true
}

// DecodePoolsRemoveLiquidity parses the same shape as DecodePoolsAddLiquidity.
func DecodePoolsRemoveLiquidity(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, user, a, b, lp, ok := decodePoolsLiquidity(data)
	if !ok {
		return nil, false
	}
	ev := &event.MeteoraPoolsRemoveLiquidityEvent{Pool: pool, User: user, TokenAAmount: a, TokenBAmount: b, LpBurnAmount: lp}
	return &event.Event{Kind: event.KindMeteoraPoolsRemoveLiquidity, Metadata: meta, MeteoraPoolsRemoveLiquidity: ev}, true
}

// DecodeDammV2Swap parses: pool(32) payer(32) amount_in(8) amount_out(8) a_to_b(1)
func DecodeDammV2Swap(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	payer, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	in, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	out, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	aToB, ok := bytesreader.ReadBool(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.MeteoraDammV2SwapEvent{Pool: pool, Payer: payer, AmountIn: in, AmountOut: out, ATobB: aToB}
	return &event.Event{Kind: event.KindMeteoraDammV2Swap, Metadata: meta, MeteoraDammV2Swap: ev}, true
}

func decodeDammV2Liquidity(data []byte) (pool, position, owner [32]byte, a, b uint64, ok bool) {
	off := 0
	p, ok1 := bytesreader.ReadPubkey(data, off)
	off += 32
	pos, ok2 := bytesreader.ReadPubkey(data, off)
	off += 32
	o, ok3 := bytesreader.ReadPubkey(data, off)
	off += 32
	va, ok4 := bytesreader.ReadU64LE(data, off)
	off += 8
	vb, ok5 := bytesreader.ReadU64LE(data, off)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return [32]byte{}, [32]byte{}, [32]byte{}, 0, 0, false
	}
	return p, pos, o, va, vb, true
}

// DecodeDammV2AddLiquidity parses: pool(32) position(32) owner(32) amount_a(8) amount_b(8)
func DecodeDammV2AddLiquidity(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, pos, owner, a, b, ok := decodeDammV2Liquidity(data)
	if !ok {
		return nil, false
	}
	ev := &event.MeteoraDammV2AddLiquidityEvent{Pool: pool, Position: pos, Owner: owner, AmountA: a, AmountB: b}
	return &event.Event{Kind: event.KindMeteoraDammV2AddLiquidity, Metadata: meta, MeteoraDammV2AddLiquidity: ev}, true
}

// DecodeDammV2RemoveLiquidity parses the same shape as DecodeDammV2AddLiquidity.
func DecodeDammV2RemoveLiquidity(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, pos, owner, a, b, ok := decodeDammV2Liquidity(data)
	if !ok {
		return nil, false
	}
	ev := &event.MeteoraDammV2RemoveLiquidityEvent{Pool: pool, Position: pos, Owner: owner, AmountA: a, AmountB: b}
	return &event.Event{Kind: event.KindMeteoraDammV2RemoveLiquidity, Metadata: meta, MeteoraDammV2RemoveLiquidity: ev}, true
}

func decodePositionTriple(data []byte) (pool, position, owner [32]byte, ok bool) {
	off := 0
	p, ok1 := bytesreader.ReadPubkey(data, off)
	off += 32
	pos, ok2 := bytesreader.ReadPubkey(data, off)
	off += 32
	o, ok3 := bytesreader.ReadPubkey(data, off)
	if !(ok1 && ok2 && ok3) {
		return [32]byte{}, [32]byte{}, [32]byte{}, false
	}
	return p, pos, o, true
}

// DecodeDammV2CreatePosition parses: pool(32) position(32) owner(32)
func DecodeDammV2CreatePosition(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, pos, owner, ok := decodePositionTriple(data)
	if !ok {
		return nil, false
	}
	ev := &event.MeteoraDammV2CreatePositionEvent{Pool: pool, Position: pos, Owner: owner}
	return &event.Event{Kind: event.KindMeteoraDammV2CreatePosition, Metadata: meta, MeteoraDammV2CreatePosition: ev}, true
}

// DecodeDammV2ClosePosition parses the same shape as DecodeDammV2CreatePosition.
func DecodeDammV2ClosePosition(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, pos, owner, ok := decodePositionTriple(data)
	if !ok {
		return nil, false
	}
	ev := &event.MeteoraDammV2ClosePositionEvent{Pool: pool, Position: pos, Owner: owner}
	return &event.Event{Kind: event.KindMeteoraDammV2ClosePosition, Metadata: meta, MeteoraDammV2ClosePosition: ev}, true
}

// DecodeDlmmSwap parses: lb_pair(32) user(32) amount_in(8) amount_out(8) active_bin_id(4) swap_for_y(1)
func DecodeDlmmSwap(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	lbPair, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	user, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	in, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	out, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	activeBin, ok := bytesreader.ReadI32LE(data, off)
	if !ok {
		return nil, false
	}
	off += 4
	swapForY, ok := bytesreader.ReadBool(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.MeteoraDlmmSwapEvent{LbPair: lbPair, User: user, AmountIn: in, AmountOut: out, ActiveBinID: activeBin, SwapForY: swapForY}
	return &event.Event{Kind: event.KindMeteoraDlmmSwap, Metadata: meta, MeteoraDlmmSwap: ev}, true
}

// DecodeDlmmPositionCreate parses: lb_pair(32) position(32) owner(32) lower_bin_id(4) upper_bin_id(4)
func DecodeDlmmPositionCreate(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	lbPair, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	position, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	owner, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	lower, ok := bytesreader.ReadI32LE(data, off)
	if !ok {
		return nil, false
	}
	off += 4
	upper, ok := bytesreader.ReadI32LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.MeteoraDlmmPositionCreateEvent{LbPair: lbPair, Position: position, Owner: owner, LowerBinID: lower, UpperBinID: upper}
	return &event.Event{Kind: event.KindMeteoraDlmmPositionCreate, Metadata: meta, MeteoraDlmmPositionCreate: ev}, true
}

// DecodeDlmmPositionClose parses: lb_pair(32) position(32) owner(32)
func DecodeDlmmPositionClose(data []byte, meta event.Metadata) (*event.Event, bool) {
	lbPair, position, owner, ok := decodePositionTriple(data)
	if !ok {
		return nil, false
	}
	ev := &event.MeteoraDlmmPositionCloseEvent{LbPair: lbPair, Position: position, Owner: owner}
	return &event.Event{Kind: event.KindMeteoraDlmmPositionClose, Metadata: meta, MeteoraDlmmPositionClose: ev}, true
}

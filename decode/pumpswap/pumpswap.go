// Package pumpswap decodes PumpSwap (Pump AMM) events. Buy/Sell trades are
// emitted as inner-instruction CPI payloads (16-byte discriminator, magic
// prefix E4 45 A5 2E 51 CB 9A 1D per spec); pool-lifecycle events
// (CreatePool, LiquidityAdded, LiquidityRemoved) are emitted as outer
// program-data log lines (8-byte discriminator).
package pumpswap

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// InnerMagicPrefix is the constant 8-byte prefix shared by all PumpSwap
// inner-instruction CPI discriminators.
var InnerMagicPrefix = [8]byte{0xE4, 0x45, 0xA5, 0x2E, 0x51, 0xCB, 0x9A, 0x1D}

func innerDisc(eventHash [8]byte) [16]byte {
	var d [16]byte
	copy(d[:8], InnerMagicPrefix[:])
	copy(d[8:], eventHash[:])
	return d
}

var (
	DiscBuy              = innerDisc([8]byte{0x67, 0xF4, 0x52, 0x1F, 0x2C, 0xF5, 0x77, 0x77})
	DiscSell             = innerDisc([8]byte{0x3E, 0x2F, 0x37, 0x0A, 0xA5, 0x03, 0xDC, 0x2A})
	DiscCreatePool       = [8]byte{177, 49, 12, 210, 160, 118, 167, 116}
	DiscLiquidityAdded   = [8]byte{120, 248, 61, 83, 31, 142, 107, 144}
	DiscLiquidityRemoved = [8]byte{22, 9, 133, 26, 160, 44, 71, 192}
)

// DecodeBuy parses a PumpSwap Buy CPI log payload:
//
//	base_amount_out(8) max_quote_amount_in(8) user_base_ata(32)
//	user_quote_ata(32) pool(32) user(32) timestamp(8) quote_amount_in(8)
//	lp_fee_bps(8) lp_fee(8) protocol_fee_bps(8) protocol_fee(8)
//	quote_amount_in_with_lp_fee(8)
func DecodeBuy(data []byte, meta event.Metadata) (*event.Event, bool) {
	fields, ok := readUint64Prefixed(data, []int{8, 8}, []int{32, 32, 32, 32}, 8, 7)
	if !ok {
		return nil, false
	}
	ev := &event.PumpSwapBuyEvent{
		BaseAmountOut:          fields.u64[0],
		MaxQuoteAmountIn:       fields.u64[1],
		UserBaseTokenAccount:   fields.pk[0],
		UserQuoteTokenAccount:  fields.pk[1],
		Pool:                   fields.pk[2],
		User:                   fields.pk[3],
		Timestamp:              int64(fields.tail[0]),
		QuoteAmountIn:          fields.tail[1],
		LpFeeBasisPoints:       fields.tail[2],
		LpFee:                  fields.tail[3],
		ProtocolFeeBasisPoints: fields.tail[4],
		ProtocolFee:            fields.tail[5],
		QuoteAmountInWithLpFee: fields.tail[6],
	}
	return &event.Event{Kind: event.KindPumpSwapBuy, Metadata: meta, PumpSwapBuy: ev}, true
}

// DecodeSell parses a PumpSwap Sell CPI log payload, mirroring DecodeBuy's
// field shape with out/in amounts reversed.
func DecodeSell(data []byte, meta event.Metadata) (*event.Event, bool) {
	fields, ok := readUint64Prefixed(data, []int{8, 8}, []int{32, 32, 32, 32}, 8, 6)
	if !ok {
		return nil, false
	}
	ev := &event.PumpSwapSellEvent{
		BaseAmountIn:           fields.u64[0],
		MinQuoteAmountOut:      fields.u64[1],
		UserBaseTokenAccount:   fields.pk[0],
		UserQuoteTokenAccount:  fields.pk[1],
		Pool:                   fields.pk[2],
		User:                   fields.pk[3],
		Timestamp:              int64(fields.tail[0]),
		QuoteAmountOut:         fields.tail[1],
		LpFeeBasisPoints:       fields.tail[2],
		LpFee:                  fields.tail[3],
		ProtocolFeeBasisPoints: fields.tail[4],
		ProtocolFee:            fields.tail[5],
	}
	return &event.Event{Kind: event.KindPumpSwapSell, Metadata: meta, PumpSwapSell: ev}, true
}

// DecodeCreatePool parses a PumpSwap pool-creation log event:
//
//	pool(32) creator(32) base_mint(32) quote_mint(32) base_amount_in(8)
//	quote_amount_in(8) pool_base_amount(8) pool_quote_amount(8) timestamp(8)
func DecodeCreatePool(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	creator, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	baseMint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	quoteMint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	baseIn, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	quoteIn, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	poolBase, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	poolQuote, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	ts, ok := bytesreader.ReadI64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.PumpSwapCreatePoolEvent{
		Pool: pool, Creator: creator, BaseMint: baseMint, QuoteMint: quoteMint,
		BaseAmountIn: baseIn, QuoteAmountIn: quoteIn,
		PoolBaseAmount: poolBase, PoolQuoteAmount: poolQuote, Timestamp: ts,
	}
	return &event.Event{Kind: event.KindPumpSwapCreatePool, Metadata: meta, PumpSwapCreatePool: ev}, true
}

// DecodeLiquidityAdded parses: pool(32) user(32) base_in(8) quote_in(8) lp_out(8) timestamp(8)
func DecodeLiquidityAdded(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, user, a, b, c, ts, ok := readLiquidityPayload(data)
	if !ok {
		return nil, false
	}
	ev := &event.PumpSwapLiquidityAddedEvent{
		Pool: pool, User: user, BaseAmountIn: a, QuoteAmountIn: b, LpTokenAmountOut: c, Timestamp: ts,
	}
	return &event.Event{Kind: event.KindPumpSwapLiquidityAdded, Metadata: meta, PumpSwapLiquidityAdded: ev}, true
}

// DecodeLiquidityRemoved parses: pool(32) user(32) base_out(8) quote_out(8) lp_in(8) timestamp(8)
func DecodeLiquidityRemoved(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, user, a, b, c, ts, ok := readLiquidityPayload(data)
	if !ok {
		return nil, false
	}
	ev := &event.PumpSwapLiquidityRemovedEvent{
		Pool: pool, User: user, BaseAmountOut: a, QuoteAmountOut: b, LpTokenAmountIn: c, Timestamp: ts,
	}
	return &event.Event{Kind: event.KindPumpSwapLiquidityRemoved, Metadata: meta, PumpSwapLiquidityRemoved: ev}, true
}

func readLiquidityPayload(data []byte) (pool, user [32]byte, a, b, c uint64, ts int64, ok bool) {
	off := 0
	pk1, ok1 := bytesreader.ReadPubkey(data, off)
	off += 32
	pk2, ok2 := bytesreader.ReadPubkey(data, off)
	off += 32
	v1, ok3 := bytesreader.ReadU64LE(data, off)
	off += 8
	v2, ok4 := bytesreader.ReadU64LE(data, off)
	off += 8
	v3, ok5 := bytesreader.ReadU64LE(data, off)
	off += 8
	v6, ok6 := bytesreader.ReadI64LE(data, off)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return [32]byte{}, [32]byte{}, 0, 0, 0, 0, false
	}
	return pk1, pk2, v1, v2, v3, v6, true
}

type prefixedFields struct {
	u64  []uint64
	pk   [][32]byte
	tail []uint64
}

// readUint64Prefixed reads a run of u64 fields, then a run of pubkeys, then
// a run of u64/i64-as-u64 trailing fields, bailing out with ok=false on the
// first short read. u64Widths/pkWidths give byte widths (always 8/32) purely
// for readability at call sites; counts are len(...). tailWidth is the
// offset step between trailing fields and tailCount is how many are read.
func readUint64Prefixed(data []byte, u64Widths, pkWidths []int, tailWidth, tailCount int) (prefixedFields, bool) {
	off := 0
	var out prefixedFields
	for range u64Widths {
		v, ok := bytesreader.ReadU64LE(data, off)
		if !ok {
			return out, false
		}
		out.u64 = append(out.u64, v)
		off += 8
	}
	for range pkWidths {
		pk, ok := bytesreader.ReadPubkey(data, off)
		if !ok {
			return out, false
		}
		out.pk = append(out.pk, pk)
		off += 32
	}
	for i := 0; i < tailCount; i++ {
		v, ok := bytesreader.ReadU64LE(data, off)
		if !ok {
			return out, false
		}
		out.tail = append(out.tail, v)
		off += tailWidth
	}
	return out, true
}

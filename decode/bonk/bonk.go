// Package bonk decodes Bonk (Raydium Launchpad) pool-create, trade, and
// migrate-to-AMM events.
package bonk

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

var (
	DiscPoolCreate = [8]byte{0x3A, 0xC8, 0x1F, 0x5D, 0x62, 0xE0, 0x94, 0x27}
	DiscTrade      = [8]byte{0x7E, 0x2F, 0x4A, 0x91, 0xC6, 0x38, 0x0D, 0x5B}
	DiscMigrateAmm = [8]byte{0x52, 0x9B, 0xD7, 0x16, 0x8A, 0x4F, 0xE3, 0x0C}
)

// DecodePoolCreate parses: pool_state(32) creator(32) base_mint(32) quote_mint(32)
// base_mint_param{decimals(1) name(string) symbol(string) uri(string)}
// initial_base_amount(8) initial_quote_amount(8)
func DecodePoolCreate(data []byte, meta event.Metadata) (*event.Event, bool) {
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

	decimals, ok := bytesreader.ReadU8(data, off)
	if !ok {
		return nil, false
	}
	off += 1
	name, n, ok := bytesreader.ReadString(data, off)
	if !ok {
		return nil, false
	}
	off += n
	symbol, n, ok := bytesreader.ReadString(data, off)
	if !ok {
		return nil, false
	}
	off += n
	uri, n, ok := bytesreader.ReadString(data, off)
	if !ok {
		return nil, false
	}
	off += n

	initialBase, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	initialQuote, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.BonkPoolCreateEvent{
		PoolState: pool, Creator: creator, BaseMint: baseMint, QuoteMint: quoteMint,
		BaseMintParam: event.BaseMintParam{Decimals: decimals, Name: name, Symbol: symbol, URI: uri},
		InitialBaseAmount:  initialBase,
		InitialQuoteAmount: initialQuote,
	}
	return &event.Event{Kind: event.KindBonkPoolCreate, Metadata: meta, BonkPoolCreate: ev}, true
}

// DecodeTrade parses: pool_state(32) payer(32) direction(1) amount_in(8)
// amount_out(8) protocol_fee(8) platform_fee(8)
func DecodeTrade(data []byte, meta event.Metadata) (*event.Event, bool) {
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
	dir, ok := bytesreader.ReadU8(data, off)
	if !ok {
		return nil, false
	}
	off += 1
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
	protocolFee, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	platformFee, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.BonkTradeEvent{
		PoolState: pool, Payer: payer, Direction: event.TradeDirection(dir),
		AmountIn: amountIn, AmountOut: amountOut, ProtocolFee: protocolFee, PlatformFee: platformFee,
	}
	return &event.Event{Kind: event.KindBonkTrade, Metadata: meta, BonkTrade: ev}, true
}

// DecodeMigrateAmm parses: pool_state(32) base_mint(32) quote_mint(32)
// base_amount(8) quote_amount(8) new_amm_pool(32)
func DecodeMigrateAmm(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	pool, ok := bytesreader.ReadPubkey(data, off)
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
	baseAmount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	quoteAmount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	newAmmPool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.BonkMigrateAmmEvent{
		PoolState: pool, BaseMint: baseMint, QuoteMint: quoteMint,
		BaseAmount: baseAmount, QuoteAmount: quoteAmount, NewAmmPool: newAmmPool,
	}
	return &event.Event{Kind: event.KindBonkMigrateAmm, Metadata: meta, BonkMigrateAmm: ev}, true
}

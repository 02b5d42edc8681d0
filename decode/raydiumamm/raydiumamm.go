// Package raydiumamm decodes Raydium AMM v4 (the original constant-product
// pool program) swap, deposit, withdraw, and initialize events keyed by an
// 8-byte discriminator (outer instruction data and `Program data:` log
// payloads).
package raydiumamm

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// These four discriminators are placeholders, not recovered on-chain values.
var (
	DiscSwap       = [8]byte{0xD7, 0xA1, 0x4C, 0xB2, 0x61, 0x4F, 0x9A, 0x03}
	DiscDeposit    = [8]byte{0x2E, 0xC6, 0x4A, 0x77, 0x15, 0xBC, 0x2D, 0x91}
	DiscWithdraw   = [8]byte{0xB7, 0x12, 0x46, 0x9E, 0xF3, 0x5A, 0x88, 0x2C}
	DiscInitialize = [8]byte{0x4F, 0x9D, 0xE3, 0x02, 0xA1, 0x6B, 0x7C, 0x55}
)

// DecodeSwap parses: amount_in(8) minimum_out(8) amount_out(8) amm_id(32)
// user_source_ata(32) user_dest_ata(32) user(32)
func DecodeSwap(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	amountIn, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	minOut, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	amountOut, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	ammID, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	src, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	dst, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	user, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumAmmSwapEvent{
		AmountIn: amountIn, MinimumOut: minOut, AmountOut: amountOut,
		AmmID: ammID, UserSourceTokenAccount: src, UserDestTokenAccount: dst, User: user,
	}
	return &event.Event{Kind: event.KindRaydiumAmmSwap, Metadata: meta, RaydiumAmmSwap: ev}, true
}

// DecodeDeposit parses: amm_id(32) user(32) max_coin_amount(8) max_pc_amount(8) base_side(8)
func DecodeDeposit(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	ammID, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	user, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	maxCoin, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	maxPc, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	baseSide, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumAmmDepositEvent{AmmID: ammID, User: user, MaxCoinAmount: maxCoin, MaxPcAmount: maxPc, BaseSide: baseSide}
	return &event.Event{Kind: event.KindRaydiumAmmDeposit, Metadata: meta, RaydiumAmmDeposit: ev}, true
}

// DecodeWithdraw parses: amm_id(32) user(32) amount(8)
func DecodeWithdraw(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	ammID, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	user, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	amount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumAmmWithdrawEvent{AmmID: ammID, User: user, Amount: amount}
	return &event.Event{Kind: event.KindRaydiumAmmWithdraw, Metadata: meta, RaydiumAmmWithdraw: ev}, true
}

// DecodeInitialize parses: amm_id(32) coin_mint(32) pc_mint(32) lp_mint(32)
// user_wallet(32) nonce(1) open_time(8)
func DecodeInitialize(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	ammID, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	coinMint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	pcMint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	lpMint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	userWallet, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	nonce, ok := bytesreader.ReadU8(data, off)
	if !ok {
		return nil, false
	}
	off += 1
	openTime, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumAmmInitializeEvent{
		AmmID: ammID, CoinMint: coinMint, PcMint: pcMint, LpMint: lpMint,
		UserWallet: userWallet, Nonce: nonce, OpenTime: openTime,
	}
	return &event.Event{Kind: event.KindRaydiumAmmInitialize, Metadata: meta, RaydiumAmmInitialize: ev}, true
}

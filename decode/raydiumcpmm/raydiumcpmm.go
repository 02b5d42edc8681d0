// Package raydiumcpmm decodes Raydium's constant-product v2 (CPMM) program
// events, keyed by an 8-byte discriminator (outer instruction data and
// `Program data:` log payloads).
package raydiumcpmm

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

var (
	// DiscSwapBaseIn and DiscSwapBaseOut are two distinct discriminators for
	// the same underlying swap event: the program emits SWAP_BASE_IN when
	// the instruction pins the input amount (amount_in fixed, output a
	// minimum), and SWAP_BASE_OUT when it pins the output amount
	// (maximum input, amount_out fixed). Both decode into
	// RaydiumCpmmSwapEvent with BaseInput set accordingly.
	DiscSwapBaseIn  = [8]byte{143, 190, 90, 218, 196, 30, 51, 222}
	DiscSwapBaseOut = [8]byte{55, 217, 98, 86, 163, 74, 180, 173}

	DiscDeposit    = [8]byte{242, 35, 198, 137, 82, 225, 242, 182}
	DiscWithdraw   = [8]byte{183, 18, 70, 156, 148, 109, 161, 34}
	DiscInitialize = [8]byte{175, 175, 109, 31, 13, 152, 155, 237}
)

func decodeSwap(data []byte, meta event.Metadata, baseInput bool) (*event.Event, bool) {
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
	inAmount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	outAmount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	inVault, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	outVault, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	zeroForOne, ok := bytesreader.ReadBool(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumCpmmSwapEvent{
		PoolState: pool, Payer: payer, InputAmount: inAmount, OutputAmount: outAmount,
		InputVault: inVault, OutputVault: outVault, ZeroForOne: zeroForOne, BaseInput: baseInput,
	}
	return &event.Event{Kind: event.KindRaydiumCpmmSwap, Metadata: meta, RaydiumCpmmSwap: ev}, true
}

// DecodeSwapBaseIn parses a SWAP_BASE_IN payload: pool_state(32) payer(32)
// input_amount(8) output_amount(8) input_vault(32) output_vault(32)
// zero_for_one(1). input_amount is the fixed amount_in; output_amount is the
// minimum_amount_out the instruction accepted.
func DecodeSwapBaseIn(data []byte, meta event.Metadata) (*event.Event, bool) {
	return decodeSwap(data, meta, true)
}

// DecodeSwapBaseOut parses the same field shape as DecodeSwapBaseIn, but
// input_amount holds the maximum_amount_in the instruction allowed and
// output_amount holds the fixed amount_out.
func DecodeSwapBaseOut(data []byte, meta event.Metadata) (*event.Event, bool) {
	return decodeSwap(data, meta, false)
}

func decodeLiquidity(data []byte) (pool, owner [32]byte, lp, t0, t1 uint64, ok bool) {
	off := 0
	p, ok1 := bytesreader.ReadPubkey(data, off)
	off += 32
	o, ok2 := bytesreader.ReadPubkey(data, off)
	off += 32
	l, ok3 := bytesreader.ReadU64LE(data, off)
	off += 8
	a0, ok4 := bytesreader.ReadU64LE(data, off)
	off += 8
	a1, ok5 := bytesreader.ReadU64LE(data, off)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return [32]byte{}, [32]byte{}, 0, 0, 0, false
	}
	return p, o, l, a0, a1, true
}

// DecodeDeposit parses: pool_state(32) owner(32) lp_token_amount(8) token0_amount(8) token1_amount(8)
func DecodeDeposit(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, owner, lp, t0, t1, ok := decodeLiquidity(data)
	if !ok {
		return nil, false
	}
	ev := &event.RaydiumCpmmDepositEvent{PoolState: pool, Owner: owner, LpTokenAmount: lp, Token0Amount: t0, Token1Amount: t1}
	return &event.Event{Kind: event.KindRaydiumCpmmDeposit, Metadata: meta, RaydiumCpmmDeposit: ev}, true
}

// DecodeWithdraw parses the same shape as DecodeDeposit.
func DecodeWithdraw(data []byte, meta event.Metadata) (*event.Event, bool) {
	pool, owner, lp, t0, t1, ok := decodeLiquidity(data)
	if !ok {
		return nil, false
	}
	ev := &event.RaydiumCpmmWithdrawEvent{PoolState: pool, Owner: owner, LpTokenAmount: lp, Token0Amount: t0, Token1Amount: t1}
	return &event.Event{Kind: event.KindRaydiumCpmmWithdraw, Metadata: meta, RaydiumCpmmWithdraw: ev}, true
}

// DecodeInitialize parses: pool_state(32) creator(32) token0_mint(32) token1_mint(32)
// token0_amount(8) token1_amount(8) open_time(8)
func DecodeInitialize(data []byte, meta event.Metadata) (*event.Event, bool) {
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
	amount0, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	amount1, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	openTime, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.RaydiumCpmmInitializeEvent{
		PoolState: pool, Creator: creator, Token0Mint: mint0, Token1Mint: mint1,
		Token0Amount: amount0, Token1Amount: amount1, OpenTime: openTime,
	}
	return &event.Event{Kind: event.KindRaydiumCpmmInitialize, Metadata: meta, RaydiumCpmmInitialize: ev}, true
}

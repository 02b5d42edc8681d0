// Package accounts decodes account-state snapshots that arrive alongside
// transaction updates: the system program's nonce account, SPL
// Token/Token-2022 mint and token accounts, and PumpSwap's two singleton
// account types (GlobalConfig, Pool).
//
// Token/Token-2022 accounts are decoded from the base 165/82-byte layout
// only. An account longer than the base size gets IsToken2022 set; the
// Token-2022 extension bytes past the base layout are not decoded.
package accounts

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

const (
	nonceAccountLen = 80
	tokenAccountLen = 165
	mintAccountLen  = 82
)

// DecodeNonce parses the system program's fixed 80-byte nonce account
// layout: version(4) state(4) authority(32) nonce(32) lamports_per_signature(8).
func DecodeNonce(address [32]byte, data []byte, meta event.Metadata) (*event.Event, bool) {
	if len(data) < nonceAccountLen {
		return nil, false
	}
	authority, ok := bytesreader.ReadPubkey(data, 8)
	if !ok {
		return nil, false
	}
	nonce, ok := bytesreader.ReadPubkey(data, 40)
	if !ok {
		return nil, false
	}
	lamportsPerSig, ok := bytesreader.ReadU64LE(data, 72)
	if !ok {
		return nil, false
	}

	ev := &event.NonceAccount{
		Address:              address,
		AuthorizedPubkey:     authority,
		Nonce:                nonce,
		LamportsPerSignature: lamportsPerSig,
	}
	return &event.Event{Kind: event.KindAccountNonce, Metadata: meta, AccountNonce: ev}, true
}

// IsNonceAccount reports whether data matches the fixed nonce-account
// length, a cheap pre-check before calling DecodeNonce.
func IsNonceAccount(data []byte) bool {
	return len(data) == nonceAccountLen
}

func readCOptionPubkey(data []byte, offset int) (pk [32]byte, present bool, consumed int, ok bool) {
	tag, ok := bytesreader.ReadU32LE(data, offset)
	if !ok {
		return pk, false, 0, false
	}
	if tag == 0 {
		return pk, false, 36, true
	}
	pk, ok = bytesreader.ReadPubkey(data, offset+4)
	if !ok {
		return pk, false, 0, false
	}
	return pk, true, 36, true
}

// DecodeMint parses an SPL Token mint account's base 82-byte layout. For
// Token-2022 mints carrying extension TLV data beyond the base layout,
// IsToken2022 is set but the extensions themselves are not decoded (out of
// scope: only the base fields this module's events reference are needed).
func DecodeMint(address [32]byte, data []byte, meta event.Metadata) (*event.Event, bool) {
	if len(data) < mintAccountLen {
		return nil, false
	}
	mintAuthority, hasMintAuthority, _, ok := readCOptionPubkey(data, 0)
	if !ok {
		return nil, false
	}
	supply, ok := bytesreader.ReadU64LE(data, 36)
	if !ok {
		return nil, false
	}
	decimals, ok := bytesreader.ReadU8(data, 44)
	if !ok {
		return nil, false
	}
	isInitialized, ok := bytesreader.ReadBool(data, 45)
	if !ok {
		return nil, false
	}
	freezeAuthority, hasFreezeAuthority, _, ok := readCOptionPubkey(data, 46)
	if !ok {
		return nil, false
	}

	ev := &event.TokenInfoAccount{
		Address:            address,
		MintAuthority:      mintAuthority,
		HasMintAuthority:   hasMintAuthority,
		Supply:             supply,
		Decimals:           decimals,
		IsInitialized:      isInitialized,
		FreezeAuthority:    freezeAuthority,
		HasFreezeAuthority: hasFreezeAuthority,
		IsToken2022:        len(data) > mintAccountLen,
	}
	return &event.Event{Kind: event.KindAccountTokenInfo, Metadata: meta, AccountTokenInfo: ev}, true
}

// DecodeTokenAccount parses an SPL Token account's base 165-byte layout.
func DecodeTokenAccount(address [32]byte, data []byte, meta event.Metadata) (*event.Event, bool) {
	if len(data) < tokenAccountLen {
		return nil, false
	}
	mint, ok := bytesreader.ReadPubkey(data, 0)
	if !ok {
		return nil, false
	}
	owner, ok := bytesreader.ReadPubkey(data, 32)
	if !ok {
		return nil, false
	}
	amount, ok := bytesreader.ReadU64LE(data, 64)
	if !ok {
		return nil, false
	}
	delegate, hasDelegate, _, ok := readCOptionPubkey(data, 72)
	if !ok {
		return nil, false
	}
	state, ok := bytesreader.ReadU8(data, 108)
	if !ok {
		return nil, false
	}

	isNativeTag, ok := bytesreader.ReadU32LE(data, 109)
	if !ok {
		return nil, false
	}
	isNative := isNativeTag != 0
	var nativeReserve uint64
	if isNative {
		nativeReserve, ok = bytesreader.ReadU64LE(data, 113)
		if !ok {
			return nil, false
		}
	}

	delegatedAmount, ok := bytesreader.ReadU64LE(data, 121)
	if !ok {
		return nil, false
	}
	closeAuthority, hasCloseAuthority, _, ok := readCOptionPubkey(data, 129)
	if !ok {
		return nil, false
	}

	ev := &event.TokenAccount{
		Address:                 address,
		Mint:                    mint,
		Owner:                   owner,
		Amount:                  amount,
		Delegate:                delegate,
		HasDelegate:             hasDelegate,
		State:                   state,
		IsNative:                isNative,
		NativeRentExemptReserve: nativeReserve,
		DelegatedAmount:         delegatedAmount,
		CloseAuthority:          closeAuthority,
		HasCloseAuthority:       hasCloseAuthority,
		IsToken2022:             len(data) > tokenAccountLen,
	}
	return &event.Event{Kind: event.KindAccountTokenAccount, Metadata: meta, AccountTokenAccount: ev}, true
}

// DecodePumpSwapGlobalConfig parses PumpSwap's singleton config account:
// admin(32) lp_fee_bps(8) protocol_fee_bps(8) protocol_fee_recipients(32*8)
func DecodePumpSwapGlobalConfig(address [32]byte, data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	admin, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32
	lpFeeBps, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8
	protocolFeeBps, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	var recipients [8][32]byte
	for i := 0; i < 8; i++ {
		pk, ok := bytesreader.ReadPubkey(data, off)
		if !ok {
			return nil, false
		}
		recipients[i] = pk
		off += 32
	}

	ev := &event.PumpSwapGlobalConfigAccount{
		Address: address, Admin: admin, LpFeeBasisPoints: lpFeeBps,
		ProtocolFeeBasisPoints: protocolFeeBps, ProtocolFeeRecipients: recipients,
	}
	return &event.Event{Kind: event.KindAccountPumpSwapGlobalConfig, Metadata: meta, AccountPumpSwapGlobalConfig: ev}, true
}

// DecodePumpSwapPool parses a PumpSwap liquidity pool account: base_mint(32)
// quote_mint(32) lp_mint(32) pool_base_token_account(32) pool_quote_token_account(32) creator(32)
func DecodePumpSwapPool(address [32]byte, data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	fields := make([][32]byte, 6)
	for i := range fields {
		pk, ok := bytesreader.ReadPubkey(data, off)
		if !ok {
			return nil, false
		}
		fields[i] = pk
		off += 32
	}

	ev := &event.PumpSwapPoolAccount{
		Address: address, BaseMint: fields[0], QuoteMint: fields[1], LpMint: fields[2],
		PoolBaseTokenAccount: fields[3], PoolQuoteTokenAccount: fields[4], Creator: fields[5],
	}
	return &event.Event{Kind: event.KindAccountPumpSwapPool, Metadata: meta, AccountPumpSwapPool: ev}, true
}

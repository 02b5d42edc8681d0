// Package pumpfun decodes PumpFun's three program-data log events: trade
// (the Buy/Sell/BuyExactSolIn umbrella), create, and migrate.
//
// PumpFun emits its events exclusively through `Program data:` log lines
// (self-CPI logging via `sol_log_data`), never through inner-instruction
// payloads, so every decoder here takes the 8-byte discriminator that
// prefixes the base64-decoded log payload.
package pumpfun

import (
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// Discriminators as emitted by the PumpFun program's anchor event log.
var (
	DiscCreate  = [8]byte{27, 114, 169, 77, 222, 235, 99, 118}
	DiscTrade   = [8]byte{189, 219, 127, 211, 78, 230, 97, 238}
	DiscMigrate = [8]byte{189, 233, 93, 185, 92, 148, 234, 148}
)

// DecodeTrade parses a PumpFun Buy/Sell/BuyExactSolIn trade event. The
// payload following the 8-byte discriminator is:
//
//	mint(32) sol_amount(8) token_amount(8) is_buy(1) user(32) timestamp(8)
//	virtual_sol_reserves(8) virtual_token_reserves(8) real_sol_reserves(8)
//	real_token_reserves(8) fee_recipient(32) fee_basis_points(8) fee(8)
//	creator(32) creator_fee_basis_points(8) creator_fee(8) track_volume(1)
//	total_unclaimed_tokens(8) total_claimed_tokens(8) current_sol_volume(8)
func DecodeTrade(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0
	mint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	solAmount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	tokenAmount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	isBuy, ok := bytesreader.ReadBool(data, off)
	if !ok {
		return nil, false
	}
	off += 1

	user, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	ts, ok := bytesreader.ReadI64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	vsol, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	vtoken, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	rsol, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	rtoken, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	feeRecipient, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	feeBps, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	fee, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	creator, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	creatorFeeBps, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	creatorFee, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	ev := &event.PumpFunTradeEvent{
		Mint:                  mint,
		SolAmount:             solAmount,
		TokenAmount:           tokenAmount,
		IsBuy:                 isBuy,
		User:                  user,
		Timestamp:             ts,
		VirtualSolReserves:    vsol,
		VirtualTokenReserves:  vtoken,
		RealSolReserves:       rsol,
		RealTokenReserves:     rtoken,
		FeeRecipient:          feeRecipient,
		FeeBasisPoints:        feeBps,
		Fee:                   fee,
		Creator:               creator,
		CreatorFeeBasisPoints: creatorFeeBps,
		CreatorFee:            creatorFee,
	}

	// The trailing volume-tracking fields were added in a later program
	// upgrade; tolerate their absence so older transactions still decode.
	if trackVolume, ok := bytesreader.ReadBool(data, off); ok {
		off += 1
		ev.TrackVolume = trackVolume
		if tut, ok := bytesreader.ReadU64LE(data, off); ok {
			off += 8
			ev.TotalUnclaimedTokens = tut
		}
		if tct, ok := bytesreader.ReadU64LE(data, off); ok {
			off += 8
			ev.TotalClaimedTokens = tct
		}
		if csv, ok := bytesreader.ReadU64LE(data, off); ok {
			off += 8
			ev.CurrentSolVolume = csv
		}
	}

	return &event.Event{Kind: event.KindPumpFunTrade, Metadata: meta, PumpFunTrade: ev}, true
}

// DecodeCreate parses a PumpFun token-create event:
//
//	name(string) symbol(string) uri(string) mint(32) bonding_curve(32)
//	user(32) creator(32) timestamp(8) virtual_token_reserves(8)
//	virtual_sol_reserves(8) token_total_supply(8)
func DecodeCreate(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0

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

	mint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	bondingCurve, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	user, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	creator, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	ts, ok := bytesreader.ReadI64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	vtoken, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	vsol, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	supply, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.PumpFunCreateEvent{
		Name:                 name,
		Symbol:               symbol,
		URI:                  uri,
		Mint:                 mint,
		BondingCurve:         bondingCurve,
		User:                 user,
		Creator:              creator,
		Timestamp:            ts,
		VirtualTokenReserves: vtoken,
		VirtualSolReserves:   vsol,
		TokenTotalSupply:     supply,
	}
	return &event.Event{Kind: event.KindPumpFunCreate, Metadata: meta, PumpFunCreate: ev}, true
}

// DecodeMigrate parses a PumpFun bonding-curve-to-AMM migration event:
//
//	user(32) mint(32) mint_amount(8) sol_amount(8) pool_migration_fee(8)
//	bonding_curve(32) timestamp(8) pool(32)
func DecodeMigrate(data []byte, meta event.Metadata) (*event.Event, bool) {
	off := 0

	user, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	mint, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	mintAmount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	solAmount, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	fee, ok := bytesreader.ReadU64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	bondingCurve, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}
	off += 32

	ts, ok := bytesreader.ReadI64LE(data, off)
	if !ok {
		return nil, false
	}
	off += 8

	pool, ok := bytesreader.ReadPubkey(data, off)
	if !ok {
		return nil, false
	}

	ev := &event.PumpFunMigrateEvent{
		User:             user,
		Mint:             mint,
		MintAmount:       mintAmount,
		SolAmount:        solAmount,
		PoolMigrationFee: fee,
		BondingCurve:     bondingCurve,
		Timestamp:        ts,
		Pool:             pool,
	}
	return &event.Event{Kind: event.KindPumpFunMigrate, Metadata: meta, PumpFunMigrate: ev}, true
}

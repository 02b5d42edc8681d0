// Package merge combines two partially-populated records that describe the
// same logical on-chain event: one produced from an outer instruction (which
// has full account context but sometimes only a partial payload) and one
// produced from an inner-instruction CPI log (full payload, but account
// fields default until filler.Fill runs against the wrong instruction's
// account list).
//
// The default strategy is whole-record replacement: when two Events of the
// same Kind describe the same event, the later one simply wins. PumpFun's
// Trade umbrella (Buy/Sell/BuyExactSolIn all decode to KindPumpFunTrade) is
// the one case with a protocol-specific merge, carrying forward any
// account-context field the earlier record already resolved.
package merge

import "github.com/withobsrvr/solana-dex-parser/event"

// Merge combines existing (the record already buffered for this
// signature+kind) with incoming (a newly-decoded record for the same
// logical event). It returns the record that should replace existing in
// the buffer.
func Merge(existing, incoming *event.Event) *event.Event {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}

	switch incoming.Kind {
	case event.KindPumpFunTrade:
		return mergePumpFunTrade(existing, incoming)
	default:
		return incoming
	}
}

// mergePumpFunTrade carries forward account-context fields (BondingCurve,
// AssociatedBondingCurve, AssociatedUser, CreatorVault, TokenProgram) from
// existing whenever
// incoming still has their zero value, then takes every other field from
// incoming - incoming is assumed to be the more complete payload source.
func mergePumpFunTrade(existing, incoming *event.Event) *event.Event {
	if existing.PumpFunTrade == nil || incoming.PumpFunTrade == nil {
		return incoming
	}

	e, n := existing.PumpFunTrade, incoming.PumpFunTrade
	var zero [32]byte

	if n.BondingCurve == zero {
		n.BondingCurve = e.BondingCurve
	}
	if n.AssociatedBondingCurve == zero {
		n.AssociatedBondingCurve = e.AssociatedBondingCurve
	}
	if n.AssociatedUser == zero {
		n.AssociatedUser = e.AssociatedUser
	}
	if n.CreatorVault == zero {
		n.CreatorVault = e.CreatorVault
	}
	if n.TokenProgram == zero {
		n.TokenProgram = e.TokenProgram
	}

	return incoming
}

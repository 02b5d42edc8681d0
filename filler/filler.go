// Package filler enriches decoded events with account-context fields that
// their wire payload doesn't carry directly - the accounts instead being
// named positionally in the instruction's account list. Each event kind
// has its own hand-written filler (no reflection), one file per protocol,
// following a "fill only if still the zero value" rule so a filler never
// clobbers a field the decoder already populated from the payload itself.
package filler

import (
	"github.com/gagliardetto/solana-go"
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// Fill dispatches ev to its protocol-specific filler by kind. Events with
// no registered filler (e.g. those that carry every field in their
// payload already) pass through unchanged.
func Fill(ev *event.Event, get accounts.Getter) {
	if ev == nil {
		return
	}
	switch ev.Kind {
	case event.KindPumpFunTrade:
		fillPumpFunTrade(ev.PumpFunTrade, get)
	case event.KindPumpFunCreate:
		fillPumpFunCreate(ev.PumpFunCreate, get)
	case event.KindPumpSwapBuy, event.KindPumpSwapSell:
		fillPumpSwap(ev, get)
	case event.KindRaydiumAmmSwap:
		fillRaydiumAmmSwap(ev.RaydiumAmmSwap, get)
	case event.KindRaydiumClmmSwap:
		fillRaydiumClmmSwap(ev.RaydiumClmmSwap, get)
	case event.KindOrcaSwap:
		fillOrcaSwap(ev.OrcaSwap, get)
	case event.KindMeteoraDlmmSwap:
		fillMeteoraDlmmSwap(ev.MeteoraDlmmSwap, get)
	case event.KindBonkTrade:
		fillBonkTrade(ev.BonkTrade, get)
	}
}

// setIfDefault assigns *field = value only when *field is still the zero
// PublicKey, preserving any value the binary decoder already populated.
func setIfDefault(field *solana.PublicKey, value solana.PublicKey, ok bool) {
	if !ok {
		return
	}
	if *field == (solana.PublicKey{}) {
		*field = value
	}
}

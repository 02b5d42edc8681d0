// Package filter implements the event-kind filter a subscription applies
// after decoding: include_only/exclude exclusivity, plus the PumpFun-Trade
// umbrella exception (the Buy/Sell/BuyExactSolIn instructions all decode to
// one event.KindPumpFunTrade; a filter asking for just PumpFunBuy still has
// to let the umbrella kind through the coarse check, then re-check
// ev.PumpFunTrade.IsBuy once the payload is actually decoded).
package filter

import "github.com/withobsrvr/solana-dex-parser/event"

// Pseudo-kinds beyond event.Kind's real values, used only to express
// filter intent at a finer grain than the umbrella event this module
// actually emits.
const (
	KindPumpFunBuy event.Kind = 1000 + iota
	KindPumpFunSell
	KindPumpFunBuyExactSolIn
)

// Protocol mirrors event.Protocol. EventFilter selects by event kind only;
// it has no protocol field.
type Protocol = event.Protocol

// EventFilter holds at most one of IncludeOnly or Exclude - setting both is
// a caller error the filter resolves by preferring IncludeOnly, matching
// the upstream Option<Vec<EventType>> exclusivity.
type EventFilter struct {
	IncludeOnly []event.Kind
	Exclude     []event.Kind
}

// IncludeOnlyFilter builds a filter that admits only the listed kinds.
func IncludeOnlyFilter(kinds ...event.Kind) EventFilter {
	return EventFilter{IncludeOnly: kinds}
}

// ExcludeFilter builds a filter that admits everything except the listed
// kinds.
func ExcludeFilter(kinds ...event.Kind) EventFilter {
	return EventFilter{Exclude: kinds}
}

func containsKind(kinds []event.Kind, k event.Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}

// Allows reports whether ev should be emitted. It runs the coarse
// Kind-level check first, then - for PumpFunTrade events only - a
// post-decode re-check of IsBuy against any Buy/Sell-specific pseudo-kinds
// in IncludeOnly.
func (f EventFilter) Allows(ev *event.Event) bool {
	if ev == nil {
		return false
	}
	if !f.coarseAllows(ev.Kind) {
		return false
	}
	return f.pumpFunTradeAllows(ev)
}

func (f EventFilter) coarseAllows(k event.Kind) bool {
	if f.IncludeOnly != nil {
		if containsKind(f.IncludeOnly, k) {
			return true
		}
		if k == event.KindPumpFunTrade {
			return containsKind(f.IncludeOnly, KindPumpFunBuy) ||
				containsKind(f.IncludeOnly, KindPumpFunSell) ||
				containsKind(f.IncludeOnly, KindPumpFunBuyExactSolIn)
		}
		return false
	}
	if f.Exclude != nil {
		return !containsKind(f.Exclude, k)
	}
	return true
}

func (f EventFilter) pumpFunTradeAllows(ev *event.Event) bool {
	if ev.Kind != event.KindPumpFunTrade || ev.PumpFunTrade == nil || f.IncludeOnly == nil {
		return true
	}

	wantBuy := containsKind(f.IncludeOnly, KindPumpFunBuy) ||
		containsKind(f.IncludeOnly, KindPumpFunBuyExactSolIn) ||
		containsKind(f.IncludeOnly, event.KindPumpFunTrade)
	wantSell := containsKind(f.IncludeOnly, KindPumpFunSell) ||
		containsKind(f.IncludeOnly, event.KindPumpFunTrade)

	if !wantBuy && !wantSell {
		return true
	}
	if ev.PumpFunTrade.IsBuy {
		return wantBuy
	}
	return wantSell
}

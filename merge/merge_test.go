package merge_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/event"
	"github.com/withobsrvr/solana-dex-parser/merge"
)

func TestMergeNilExistingReturnsIncoming(t *testing.T) {
	incoming := &event.Event{Kind: event.KindOrcaSwap}
	require.Same(t, incoming, merge.Merge(nil, incoming))
}

func TestMergeNilIncomingReturnsExisting(t *testing.T) {
	existing := &event.Event{Kind: event.KindOrcaSwap}
	require.Same(t, existing, merge.Merge(existing, nil))
}

func TestMergeDefaultReplacesWhole(t *testing.T) {
	existing := &event.Event{Kind: event.KindOrcaSwap, OrcaSwap: &event.OrcaSwapEvent{AmountIn: 1}}
	incoming := &event.Event{Kind: event.KindOrcaSwap, OrcaSwap: &event.OrcaSwapEvent{AmountIn: 2}}

	got := merge.Merge(existing, incoming)
	require.Same(t, incoming, got)
	require.EqualValues(t, 2, got.OrcaSwap.AmountIn)
}

func TestMergePumpFunTradeCarriesForwardAccountContext(t *testing.T) {
	bonding := solana.PublicKey{1, 2, 3}
	tokenProg := solana.PublicKey{4, 5, 6}

	existing := &event.Event{
		Kind: event.KindPumpFunTrade,
		PumpFunTrade: &event.PumpFunTradeEvent{
			BondingCurve: bonding,
			TokenProgram: tokenProg,
		},
	}
	incoming := &event.Event{
		Kind: event.KindPumpFunTrade,
		PumpFunTrade: &event.PumpFunTradeEvent{
			SolAmount: 1_000_000_000,
		},
	}

	got := merge.Merge(existing, incoming)

	require.Same(t, incoming, got)
	require.Equal(t, bonding, got.PumpFunTrade.BondingCurve)
	require.Equal(t, tokenProg, got.PumpFunTrade.TokenProgram)
	require.EqualValues(t, 1_000_000_000, got.PumpFunTrade.SolAmount)
}

func TestMergePumpFunTradeIncomingAccountFieldsWin(t *testing.T) {
	staleBonding := solana.PublicKey{1, 1, 1}
	freshBonding := solana.PublicKey{2, 2, 2}

	existing := &event.Event{
		Kind:         event.KindPumpFunTrade,
		PumpFunTrade: &event.PumpFunTradeEvent{BondingCurve: staleBonding},
	}
	incoming := &event.Event{
		Kind:         event.KindPumpFunTrade,
		PumpFunTrade: &event.PumpFunTradeEvent{BondingCurve: freshBonding},
	}

	got := merge.Merge(existing, incoming)
	require.Equal(t, freshBonding, got.PumpFunTrade.BondingCurve)
}

func TestMergePumpFunTradeMissingPayloadFallsBackToIncoming(t *testing.T) {
	existing := &event.Event{Kind: event.KindPumpFunTrade, PumpFunTrade: nil}
	incoming := &event.Event{Kind: event.KindPumpFunTrade, PumpFunTrade: &event.PumpFunTradeEvent{SolAmount: 5}}

	got := merge.Merge(existing, incoming)
	require.Same(t, incoming, got)
}

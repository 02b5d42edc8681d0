package filler_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
	"github.com/withobsrvr/solana-dex-parser/filler"
)

func getterFromMap(m map[int]solana.PublicKey) accounts.Getter {
	return func(i int) (solana.PublicKey, bool) {
		pk, ok := m[i]
		return pk, ok
	}
}

func TestFillPumpFunTradeBuy(t *testing.T) {
	bonding := solana.PublicKey{1}
	tokenProg := solana.PublicKey{2}
	creatorVault := solana.PublicKey{3}
	associatedBC := solana.PublicKey{4}
	get := getterFromMap(map[int]solana.PublicKey{
		3: bonding, 4: associatedBC, 8: tokenProg, 9: creatorVault,
	})

	ev := &event.Event{
		Kind:         event.KindPumpFunTrade,
		PumpFunTrade: &event.PumpFunTradeEvent{IsBuy: true},
	}
	filler.Fill(ev, get)

	require.Equal(t, bonding, ev.PumpFunTrade.BondingCurve)
	require.Equal(t, associatedBC, ev.PumpFunTrade.AssociatedBondingCurve)
	require.Equal(t, tokenProg, ev.PumpFunTrade.TokenProgram)
	require.Equal(t, creatorVault, ev.PumpFunTrade.CreatorVault)
}

func TestFillPumpFunTradeSellSwapsIndices(t *testing.T) {
	creatorVault := solana.PublicKey{3}
	tokenProg := solana.PublicKey{2}
	get := getterFromMap(map[int]solana.PublicKey{
		8: creatorVault, 9: tokenProg,
	})

	ev := &event.Event{
		Kind:         event.KindPumpFunTrade,
		PumpFunTrade: &event.PumpFunTradeEvent{IsBuy: false},
	}
	filler.Fill(ev, get)

	require.Equal(t, creatorVault, ev.PumpFunTrade.CreatorVault)
	require.Equal(t, tokenProg, ev.PumpFunTrade.TokenProgram)
}

func TestFillNeverOverwritesNonDefault(t *testing.T) {
	already := solana.PublicKey{9, 9, 9}
	get := getterFromMap(map[int]solana.PublicKey{3: {1, 2, 3}})

	ev := &event.Event{
		Kind:         event.KindPumpFunTrade,
		PumpFunTrade: &event.PumpFunTradeEvent{IsBuy: true, BondingCurve: already},
	}
	filler.Fill(ev, get)

	require.Equal(t, already, ev.PumpFunTrade.BondingCurve)
}

func TestFillNilEventIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		filler.Fill(nil, getterFromMap(nil))
	})
}

func TestFillUnregisteredKindIsNoop(t *testing.T) {
	ev := &event.Event{Kind: event.KindBonkPoolCreate}
	require.NotPanics(t, func() {
		filler.Fill(ev, getterFromMap(nil))
	})
}

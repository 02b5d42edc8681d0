package filler

import (
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// PumpFun Buy/Sell instruction account layout (fixed by the program's IDL):
//
//	0 global | 1 fee_recipient | 2 mint | 3 bonding_curve
//	4 associated_bonding_curve | 5 associated_user | 6 user
//	7 system_program | 8/9 creator_vault & token_program (order flips, see
//	below) | 10 event_authority | 11 program
//
// Accounts 8 and 9 swap order between Buy and Sell: on Buy, index 8 is
// token_program and 9 is creator_vault; on Sell it's the reverse. This is
// carried over unverified from the upstream account-index map - see
// DESIGN.md's Open Question note.
const (
	idxBondingCurve   = 3
	idxAssociatedBC   = 4
	idxAssociatedUser = 5
	idxUser           = 6
	idxBuyTokenProgram    = 8
	idxBuyCreatorVault    = 9
	idxSellCreatorVault   = 8
	idxSellTokenProgram   = 9
)

func fillPumpFunTrade(ev *event.PumpFunTradeEvent, get accounts.Getter) {
	if ev == nil {
		return
	}
	setIfDefault(&ev.BondingCurve, get(idxBondingCurve))
	setIfDefault(&ev.AssociatedBondingCurve, get(idxAssociatedBC))
	setIfDefault(&ev.AssociatedUser, get(idxAssociatedUser))

	if ev.IsBuy {
		setIfDefault(&ev.TokenProgram, get(idxBuyTokenProgram))
		setIfDefault(&ev.CreatorVault, get(idxBuyCreatorVault))
	} else {
		setIfDefault(&ev.CreatorVault, get(idxSellCreatorVault))
		setIfDefault(&ev.TokenProgram, get(idxSellTokenProgram))
	}
}

// PumpFun Create instruction accounts: 0 mint 1 mint_authority 2 bonding_curve
// 3 associated_bonding_curve ... 7 user. Create events carry mint/bonding_curve/
// user/creator in their payload already; nothing left to fill in the
// common case, but this stays wired in case a future program revision
// drops one of those fields from the log payload.
func fillPumpFunCreate(ev *event.PumpFunCreateEvent, get accounts.Getter) {
	if ev == nil {
		return
	}
	setIfDefault(&ev.BondingCurve, get(2))
}

package filler

import (
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// Raydium AMM v4 swap instruction accounts: ... 16 source_token_account
// 17 dest_token_account 18 user_owner. The CPI log payload already carries
// these by position in our decoder; this filler exists to backstop older
// program revisions whose log omitted the user-owner account.
const raydiumAmmIdxUserOwner = 18

func fillRaydiumAmmSwap(ev *event.RaydiumAmmSwapEvent, get accounts.Getter) {
	if ev == nil {
		return
	}
	setIfDefault(&ev.User, get(raydiumAmmIdxUserOwner))
}

// Raydium CLMM swap instruction accounts: 0 payer 1 amm_config 2 pool_state ...
const raydiumClmmIdxPayer = 0

func fillRaydiumClmmSwap(ev *event.RaydiumClmmSwapEvent, get accounts.Getter) {
	if ev == nil {
		return
	}
	setIfDefault(&ev.Sender, get(raydiumClmmIdxPayer))
}

package filler

import (
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// Bonk (Raydium Launchpad) trade instruction accounts: 0 payer 1 pool_state ...
const bonkIdxPayer = 0

func fillBonkTrade(ev *event.BonkTradeEvent, get accounts.Getter) {
	if ev == nil {
		return
	}
	setIfDefault(&ev.Payer, get(bonkIdxPayer))
}

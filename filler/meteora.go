package filler

import (
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// Meteora DLMM swap instruction accounts: 0 lb_pair 1 user ...
const meteoraDlmmIdxUser = 1

func fillMeteoraDlmmSwap(ev *event.MeteoraDlmmSwapEvent, get accounts.Getter) {
	if ev == nil {
		return
	}
	setIfDefault(&ev.User, get(meteoraDlmmIdxUser))
}

package filler

import (
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// Orca Whirlpool swap instruction accounts: 0 token_authority 1 whirlpool ...
const orcaIdxTokenAuthority = 0

func fillOrcaSwap(ev *event.OrcaSwapEvent, get accounts.Getter) {
	if ev == nil {
		return
	}
	setIfDefault(&ev.Authority, get(orcaIdxTokenAuthority))
}

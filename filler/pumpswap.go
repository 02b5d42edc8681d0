package filler

import (
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// PumpSwap Buy/Sell instruction accounts: 0 pool 1 user 2 global_config
// 3 base_mint 4 quote_mint ... Both base_mint and quote_mint are absent
// from the CPI log payload and must be filled from the instruction's
// account list.
const (
	pumpSwapIdxBaseMint  = 3
	pumpSwapIdxQuoteMint = 4
)

func fillPumpSwap(ev *event.Event, get accounts.Getter) {
	switch ev.Kind {
	case event.KindPumpSwapBuy:
		setIfDefault(&ev.PumpSwapBuy.BaseMint, get(pumpSwapIdxBaseMint))
		setIfDefault(&ev.PumpSwapBuy.QuoteMint, get(pumpSwapIdxQuoteMint))
	case event.KindPumpSwapSell:
		setIfDefault(&ev.PumpSwapSell.BaseMint, get(pumpSwapIdxBaseMint))
		setIfDefault(&ev.PumpSwapSell.QuoteMint, get(pumpSwapIdxQuoteMint))
	}
}

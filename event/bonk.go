package event

import "github.com/gagliardetto/solana-go"

// TradeDirection mirrors the upstream enum distinguishing buy from sell
// on Bonk (Raydium Launchpad) trades.
type TradeDirection uint8

const (
	TradeDirectionBuy TradeDirection = iota
	TradeDirectionSell
)

type BaseMintParam struct {
	Decimals    uint8
	Name        string
	Symbol      string
	URI         string
}

type BonkPoolCreateEvent struct {
	PoolState    solana.PublicKey
	Creator      solana.PublicKey
	BaseMint     solana.PublicKey
	QuoteMint    solana.PublicKey
	BaseMintParam BaseMintParam
	InitialBaseAmount  uint64
	InitialQuoteAmount uint64
}

type BonkTradeEvent struct {
	PoolState      solana.PublicKey
	Payer          solana.PublicKey
	Direction      TradeDirection
	AmountIn       uint64
	AmountOut      uint64
	ProtocolFee    uint64
	PlatformFee    uint64
}

type BonkMigrateAmmEvent struct {
	PoolState solana.PublicKey
	BaseMint  solana.PublicKey
	QuoteMint solana.PublicKey
	BaseAmount uint64
	QuoteAmount uint64
	NewAmmPool  solana.PublicKey
}

package event

import "github.com/gagliardetto/solana-go"

type PumpSwapBuyEvent struct {
	BaseAmountOut      uint64
	MaxQuoteAmountIn   uint64
	UserBaseTokenAccount  solana.PublicKey
	UserQuoteTokenAccount solana.PublicKey
	Pool               solana.PublicKey
	User               solana.PublicKey
	Timestamp          int64
	QuoteAmountIn      uint64
	LpFeeBasisPoints   uint64
	LpFee              uint64
	ProtocolFeeBasisPoints uint64
	ProtocolFee        uint64
	QuoteAmountInWithLpFee uint64

	BaseMint  solana.PublicKey
	QuoteMint solana.PublicKey
}

type PumpSwapSellEvent struct {
	BaseAmountIn        uint64
	MinQuoteAmountOut   uint64
	UserBaseTokenAccount  solana.PublicKey
	UserQuoteTokenAccount solana.PublicKey
	Pool                solana.PublicKey
	User                solana.PublicKey
	Timestamp           int64
	QuoteAmountOut      uint64
	LpFeeBasisPoints    uint64
	LpFee               uint64
	ProtocolFeeBasisPoints uint64
	ProtocolFee         uint64

	BaseMint  solana.PublicKey
	QuoteMint solana.PublicKey
}

type PumpSwapCreatePoolEvent struct {
	Pool            solana.PublicKey
	Creator         solana.PublicKey
	BaseMint        solana.PublicKey
	QuoteMint       solana.PublicKey
	BaseAmountIn    uint64
	QuoteAmountIn   uint64
	PoolBaseAmount  uint64
	PoolQuoteAmount uint64
	Timestamp       int64
}

type PumpSwapLiquidityAddedEvent struct {
	Pool              solana.PublicKey
	User              solana.PublicKey
	BaseAmountIn      uint64
	QuoteAmountIn     uint64
	LpTokenAmountOut  uint64
	Timestamp         int64
}

type PumpSwapLiquidityRemovedEvent struct {
	Pool              solana.PublicKey
	User              solana.PublicKey
	BaseAmountOut     uint64
	QuoteAmountOut    uint64
	LpTokenAmountIn   uint64
	Timestamp         int64
}

package event

import (
	"github.com/gagliardetto/solana-go"
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
)

type OrcaSwapEvent struct {
	Whirlpool    solana.PublicKey
	Authority    solana.PublicKey
	AmountIn     uint64
	AmountOut    uint64
	SqrtPriceX64 bytesreader.U128
	LiquidityAfter bytesreader.U128
	ATobB        bool
}

type OrcaLiquidityIncreasedEvent struct {
	Whirlpool solana.PublicKey
	Position  solana.PublicKey
	LiquidityAmount bytesreader.U128
	TokenAAmount uint64
	TokenBAmount uint64
}

type OrcaLiquidityDecreasedEvent struct {
	Whirlpool solana.PublicKey
	Position  solana.PublicKey
	LiquidityAmount bytesreader.U128
	TokenAAmount uint64
	TokenBAmount uint64
}

type OrcaPoolInitializedEvent struct {
	Whirlpool solana.PublicKey
	TokenMintA solana.PublicKey
	TokenMintB solana.PublicKey
	TickSpacing uint16
	SqrtPriceX64 bytesreader.U128
}

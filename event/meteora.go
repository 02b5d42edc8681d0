package event

import "github.com/gagliardetto/solana-go"

// --- Meteora Pools (classic constant-product/stable AMM) ---

type MeteoraPoolsSwapEvent struct {
	Pool       solana.PublicKey
	User       solana.PublicKey
	InAmount   uint64
	OutAmount  uint64
	TradeFee   uint64
}

type MeteoraPoolsAddLiquidityEvent struct {
	Pool         solana.PublicKey
	User         solana.PublicKey
	TokenAAmount uint64
	TokenBAmount uint64
	LpMintAmount uint64
}

type MeteoraPoolsRemoveLiquidityEvent struct {
	Pool         solana.PublicKey
	User         solana.PublicKey
	TokenAAmount uint64
	TokenBAmount uint64
	LpBurnAmount uint64
}

// --- Meteora DAMM v2 ---

type MeteoraDammV2SwapEvent struct {
	Pool      solana.PublicKey
	Payer     solana.PublicKey
	AmountIn  uint64
	AmountOut uint64
	ATobB     bool
}

type MeteoraDammV2AddLiquidityEvent struct {
	Pool      solana.PublicKey
	Position  solana.PublicKey
	Owner     solana.PublicKey
	AmountA   uint64
	AmountB   uint64
}

type MeteoraDammV2RemoveLiquidityEvent struct {
	Pool      solana.PublicKey
	Position  solana.PublicKey
	Owner     solana.PublicKey
	AmountA   uint64
	AmountB   uint64
}

type MeteoraDammV2CreatePositionEvent struct {
	Pool     solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
}

type MeteoraDammV2ClosePositionEvent struct {
	Pool     solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
}

// --- Meteora DLMM ---

type MeteoraDlmmSwapEvent struct {
	LbPair    solana.PublicKey
	User      solana.PublicKey
	AmountIn  uint64
	AmountOut uint64
	ActiveBinID int32
	SwapForY  bool
}

type MeteoraDlmmPositionCreateEvent struct {
	LbPair   solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
	LowerBinID int32
	UpperBinID int32
}

type MeteoraDlmmPositionCloseEvent struct {
	LbPair   solana.PublicKey
	Position solana.PublicKey
	Owner    solana.PublicKey
}

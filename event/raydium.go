package event

import (
	"github.com/gagliardetto/solana-go"
	"github.com/withobsrvr/solana-dex-parser/bytesreader"
)

// --- Raydium AMM v4 ---

type RaydiumAmmSwapEvent struct {
	AmountIn     uint64
	MinimumOut   uint64
	AmountOut    uint64
	AmmID        solana.PublicKey
	UserSourceTokenAccount solana.PublicKey
	UserDestTokenAccount   solana.PublicKey
	User         solana.PublicKey
}

type RaydiumAmmDepositEvent struct {
	AmmID         solana.PublicKey
	User          solana.PublicKey
	MaxCoinAmount uint64
	MaxPcAmount   uint64
	BaseSide      uint64
}

type RaydiumAmmWithdrawEvent struct {
	AmmID      solana.PublicKey
	User       solana.PublicKey
	Amount     uint64
}

type RaydiumAmmInitializeEvent struct {
	AmmID     solana.PublicKey
	CoinMint  solana.PublicKey
	PcMint    solana.PublicKey
	LpMint    solana.PublicKey
	UserWallet solana.PublicKey
	Nonce     uint8
	OpenTime  uint64
}

// --- Raydium CLMM ---

type RaydiumClmmSwapEvent struct {
	PoolState        solana.PublicKey
	Sender           solana.PublicKey
	AmountIn         uint64
	AmountOut        uint64
	SqrtPriceX64     bytesreader.U128
	LiquidityAfter   bytesreader.U128
	TickAfter        int32
	ZeroForOne       bool
}

type RaydiumClmmCreatePoolEvent struct {
	PoolState    solana.PublicKey
	TokenMint0   solana.PublicKey
	TokenMint1   solana.PublicKey
	SqrtPriceX64 bytesreader.U128
	Tick         int32
}

type RaydiumClmmOpenPositionEvent struct {
	PoolState      solana.PublicKey
	Owner          solana.PublicKey
	TickLowerIndex int32
	TickUpperIndex int32
	Liquidity      bytesreader.U128
	Amount0        uint64
	Amount1        uint64
}

type RaydiumClmmClosePositionEvent struct {
	PoolState solana.PublicKey
	Owner     solana.PublicKey
	PositionNftMint solana.PublicKey
}

type RaydiumClmmIncreaseLiquidityEvent struct {
	PoolState solana.PublicKey
	Owner     solana.PublicKey
	Liquidity bytesreader.U128
	Amount0   uint64
	Amount1   uint64
}

type RaydiumClmmDecreaseLiquidityEvent struct {
	PoolState solana.PublicKey
	Owner     solana.PublicKey
	Liquidity bytesreader.U128
	Amount0   uint64
	Amount1   uint64
}

type RaydiumClmmCollectFeeEvent struct {
	PoolState solana.PublicKey
	Owner     solana.PublicKey
	Amount0   uint64
	Amount1   uint64
}

// --- Raydium CPMM ---

type RaydiumCpmmSwapEvent struct {
	PoolState    solana.PublicKey
	Payer        solana.PublicKey
	InputAmount  uint64
	OutputAmount uint64
	InputVault   solana.PublicKey
	OutputVault  solana.PublicKey
	ZeroForOne   bool
	// BaseInput is true for a SWAP_BASE_IN instruction (InputAmount is the
	// fixed amount in, OutputAmount the accepted minimum out) and false for
	// SWAP_BASE_OUT (InputAmount the accepted maximum in, OutputAmount the
	// fixed amount out).
	BaseInput bool
}

type RaydiumCpmmDepositEvent struct {
	PoolState      solana.PublicKey
	Owner          solana.PublicKey
	LpTokenAmount  uint64
	Token0Amount   uint64
	Token1Amount   uint64
}

type RaydiumCpmmWithdrawEvent struct {
	PoolState     solana.PublicKey
	Owner         solana.PublicKey
	LpTokenAmount uint64
	Token0Amount  uint64
	Token1Amount  uint64
}

type RaydiumCpmmInitializeEvent struct {
	PoolState solana.PublicKey
	Creator   solana.PublicKey
	Token0Mint solana.PublicKey
	Token1Mint solana.PublicKey
	Token0Amount uint64
	Token1Amount uint64
	OpenTime     uint64
}

// Package event defines the closed set of DEX event records this module
// extracts, along with the metadata every record carries and the Kind tag
// used to dispatch on them without reflection.
package event

import (
	"github.com/gagliardetto/solana-go"
)

// Metadata is embedded as the first field of every event and account
// snapshot record, mirroring the upstream convention of a metadata-first
// struct layout.
type Metadata struct {
	Signature    solana.Signature
	Slot         uint64
	TxIndex      uint64
	BlockTimeUs  int64 // 0 if the source did not supply a block time
	IngestTimeUs int64 // clock.NowMicros() at the moment this record was produced
}

// Kind tags the payload a given Event carries. The zero value, KindUnknown,
// is never emitted.
type Kind uint16

const (
	KindUnknown Kind = iota

	// PumpFun
	KindPumpFunTrade
	KindPumpFunCreate
	KindPumpFunMigrate

	// PumpSwap
	KindPumpSwapBuy
	KindPumpSwapSell
	KindPumpSwapCreatePool
	KindPumpSwapLiquidityAdded
	KindPumpSwapLiquidityRemoved

	// Raydium AMM v4
	KindRaydiumAmmSwap
	KindRaydiumAmmDeposit
	KindRaydiumAmmWithdraw
	KindRaydiumAmmInitialize

	// Raydium CLMM
	KindRaydiumClmmSwap
	KindRaydiumClmmCreatePool
	KindRaydiumClmmOpenPosition
	KindRaydiumClmmClosePosition
	KindRaydiumClmmIncreaseLiquidity
	KindRaydiumClmmDecreaseLiquidity
	KindRaydiumClmmCollectFee

	// Raydium CPMM
	KindRaydiumCpmmSwap
	KindRaydiumCpmmDeposit
	KindRaydiumCpmmWithdraw
	KindRaydiumCpmmInitialize

	// Orca Whirlpool
	KindOrcaSwap
	KindOrcaLiquidityIncreased
	KindOrcaLiquidityDecreased
	KindOrcaPoolInitialized

	// Meteora Pools (classic AMM)
	KindMeteoraPoolsSwap
	KindMeteoraPoolsAddLiquidity
	KindMeteoraPoolsRemoveLiquidity

	// Meteora DAMM v2
	KindMeteoraDammV2Swap
	KindMeteoraDammV2AddLiquidity
	KindMeteoraDammV2RemoveLiquidity
	KindMeteoraDammV2CreatePosition
	KindMeteoraDammV2ClosePosition

	// Meteora DLMM
	KindMeteoraDlmmSwap
	KindMeteoraDlmmPositionCreate
	KindMeteoraDlmmPositionClose

	// Bonk (Raydium Launchpad)
	KindBonkTrade
	KindBonkPoolCreate
	KindBonkMigrateAmm

	// Account snapshots
	KindAccountNonce
	KindAccountTokenInfo
	KindAccountTokenAccount
	KindAccountPumpSwapGlobalConfig
	KindAccountPumpSwapPool
)

// String returns a human-readable name for the kind, used in logging and
// tests.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var kindNames = map[Kind]string{
	KindPumpFunTrade:                 "PumpFunTrade",
	KindPumpFunCreate:                "PumpFunCreate",
	KindPumpFunMigrate:               "PumpFunMigrate",
	KindPumpSwapBuy:                  "PumpSwapBuy",
	KindPumpSwapSell:                 "PumpSwapSell",
	KindPumpSwapCreatePool:           "PumpSwapCreatePool",
	KindPumpSwapLiquidityAdded:       "PumpSwapLiquidityAdded",
	KindPumpSwapLiquidityRemoved:     "PumpSwapLiquidityRemoved",
	KindRaydiumAmmSwap:               "RaydiumAmmSwap",
	KindRaydiumAmmDeposit:            "RaydiumAmmDeposit",
	KindRaydiumAmmWithdraw:           "RaydiumAmmWithdraw",
	KindRaydiumAmmInitialize:         "RaydiumAmmInitialize",
	KindRaydiumClmmSwap:              "RaydiumClmmSwap",
	KindRaydiumClmmCreatePool:        "RaydiumClmmCreatePool",
	KindRaydiumClmmOpenPosition:      "RaydiumClmmOpenPosition",
	KindRaydiumClmmClosePosition:     "RaydiumClmmClosePosition",
	KindRaydiumClmmIncreaseLiquidity: "RaydiumClmmIncreaseLiquidity",
	KindRaydiumClmmDecreaseLiquidity: "RaydiumClmmDecreaseLiquidity",
	KindRaydiumClmmCollectFee:        "RaydiumClmmCollectFee",
	KindRaydiumCpmmSwap:              "RaydiumCpmmSwap",
	KindRaydiumCpmmDeposit:           "RaydiumCpmmDeposit",
	KindRaydiumCpmmWithdraw:          "RaydiumCpmmWithdraw",
	KindRaydiumCpmmInitialize:        "RaydiumCpmmInitialize",
	KindOrcaSwap:                     "OrcaSwap",
	KindOrcaLiquidityIncreased:       "OrcaLiquidityIncreased",
	KindOrcaLiquidityDecreased:       "OrcaLiquidityDecreased",
	KindOrcaPoolInitialized:          "OrcaPoolInitialized",
	KindMeteoraPoolsSwap:             "MeteoraPoolsSwap",
	KindMeteoraPoolsAddLiquidity:     "MeteoraPoolsAddLiquidity",
	KindMeteoraPoolsRemoveLiquidity:  "MeteoraPoolsRemoveLiquidity",
	KindMeteoraDammV2Swap:            "MeteoraDammV2Swap",
	KindMeteoraDammV2AddLiquidity:    "MeteoraDammV2AddLiquidity",
	KindMeteoraDammV2RemoveLiquidity: "MeteoraDammV2RemoveLiquidity",
	KindMeteoraDammV2CreatePosition:  "MeteoraDammV2CreatePosition",
	KindMeteoraDammV2ClosePosition:   "MeteoraDammV2ClosePosition",
	KindMeteoraDlmmSwap:              "MeteoraDlmmSwap",
	KindMeteoraDlmmPositionCreate:    "MeteoraDlmmPositionCreate",
	KindMeteoraDlmmPositionClose:     "MeteoraDlmmPositionClose",
	KindBonkTrade:                    "BonkTrade",
	KindBonkPoolCreate:               "BonkPoolCreate",
	KindBonkMigrateAmm:               "BonkMigrateAmm",
	KindAccountNonce:                 "AccountNonce",
	KindAccountTokenInfo:             "AccountTokenInfo",
	KindAccountTokenAccount:          "AccountTokenAccount",
	KindAccountPumpSwapGlobalConfig:  "AccountPumpSwapGlobalConfig",
	KindAccountPumpSwapPool:          "AccountPumpSwapPool",
}

// Protocol identifies which on-chain program family an event belongs to.
type Protocol uint8

const (
	ProtocolUnknown Protocol = iota
	ProtocolPumpFun
	ProtocolPumpSwap
	ProtocolRaydiumAmmV4
	ProtocolRaydiumClmm
	ProtocolRaydiumCpmm
	ProtocolOrcaWhirlpool
	ProtocolMeteoraPools
	ProtocolMeteoraDammV2
	ProtocolMeteoraDlmm
	ProtocolBonk
)

// ProtocolOf returns the protocol family a given event kind belongs to.
func ProtocolOf(k Kind) Protocol {
	switch {
	case k == KindPumpFunTrade || k == KindPumpFunCreate || k == KindPumpFunMigrate:
		return ProtocolPumpFun
	case k == KindPumpSwapBuy || k == KindPumpSwapSell || k == KindPumpSwapCreatePool ||
		k == KindPumpSwapLiquidityAdded || k == KindPumpSwapLiquidityRemoved ||
		k == KindAccountPumpSwapGlobalConfig || k == KindAccountPumpSwapPool:
		return ProtocolPumpSwap
	case k == KindRaydiumAmmSwap || k == KindRaydiumAmmDeposit || k == KindRaydiumAmmWithdraw ||
		k == KindRaydiumAmmInitialize:
		return ProtocolRaydiumAmmV4
	case k == KindRaydiumClmmSwap || k == KindRaydiumClmmCreatePool || k == KindRaydiumClmmOpenPosition ||
		k == KindRaydiumClmmClosePosition || k == KindRaydiumClmmIncreaseLiquidity ||
		k == KindRaydiumClmmDecreaseLiquidity || k == KindRaydiumClmmCollectFee:
		return ProtocolRaydiumClmm
	case k == KindRaydiumCpmmSwap || k == KindRaydiumCpmmDeposit || k == KindRaydiumCpmmWithdraw ||
		k == KindRaydiumCpmmInitialize:
		return ProtocolRaydiumCpmm
	case k == KindOrcaSwap || k == KindOrcaLiquidityIncreased || k == KindOrcaLiquidityDecreased ||
		k == KindOrcaPoolInitialized:
		return ProtocolOrcaWhirlpool
	case k == KindMeteoraPoolsSwap || k == KindMeteoraPoolsAddLiquidity || k == KindMeteoraPoolsRemoveLiquidity:
		return ProtocolMeteoraPools
	case k == KindMeteoraDammV2Swap || k == KindMeteoraDammV2AddLiquidity || k == KindMeteoraDammV2RemoveLiquidity ||
		k == KindMeteoraDammV2CreatePosition || k == KindMeteoraDammV2ClosePosition:
		return ProtocolMeteoraDammV2
	case k == KindMeteoraDlmmSwap || k == KindMeteoraDlmmPositionCreate || k == KindMeteoraDlmmPositionClose:
		return ProtocolMeteoraDlmm
	case k == KindBonkTrade || k == KindBonkPoolCreate || k == KindBonkMigrateAmm:
		return ProtocolBonk
	default:
		return ProtocolUnknown
	}
}

// Event is the closed-sum wrapper around every decoded record. Exactly one
// payload pointer is non-nil, selected by Kind - Go's idiomatic stand-in
// for a Rust tagged enum.
type Event struct {
	Kind     Kind
	Metadata Metadata

	PumpFunTrade   *PumpFunTradeEvent
	PumpFunCreate  *PumpFunCreateEvent
	PumpFunMigrate *PumpFunMigrateEvent

	PumpSwapBuy              *PumpSwapBuyEvent
	PumpSwapSell             *PumpSwapSellEvent
	PumpSwapCreatePool       *PumpSwapCreatePoolEvent
	PumpSwapLiquidityAdded   *PumpSwapLiquidityAddedEvent
	PumpSwapLiquidityRemoved *PumpSwapLiquidityRemovedEvent

	RaydiumAmmSwap       *RaydiumAmmSwapEvent
	RaydiumAmmDeposit    *RaydiumAmmDepositEvent
	RaydiumAmmWithdraw   *RaydiumAmmWithdrawEvent
	RaydiumAmmInitialize *RaydiumAmmInitializeEvent

	RaydiumClmmSwap              *RaydiumClmmSwapEvent
	RaydiumClmmCreatePool        *RaydiumClmmCreatePoolEvent
	RaydiumClmmOpenPosition      *RaydiumClmmOpenPositionEvent
	RaydiumClmmClosePosition     *RaydiumClmmClosePositionEvent
	RaydiumClmmIncreaseLiquidity *RaydiumClmmIncreaseLiquidityEvent
	RaydiumClmmDecreaseLiquidity *RaydiumClmmDecreaseLiquidityEvent
	RaydiumClmmCollectFee        *RaydiumClmmCollectFeeEvent

	RaydiumCpmmSwap       *RaydiumCpmmSwapEvent
	RaydiumCpmmDeposit    *RaydiumCpmmDepositEvent
	RaydiumCpmmWithdraw   *RaydiumCpmmWithdrawEvent
	RaydiumCpmmInitialize *RaydiumCpmmInitializeEvent

	OrcaSwap               *OrcaSwapEvent
	OrcaLiquidityIncreased *OrcaLiquidityIncreasedEvent
	OrcaLiquidityDecreased *OrcaLiquidityDecreasedEvent
	OrcaPoolInitialized    *OrcaPoolInitializedEvent

	MeteoraPoolsSwap            *MeteoraPoolsSwapEvent
	MeteoraPoolsAddLiquidity    *MeteoraPoolsAddLiquidityEvent
	MeteoraPoolsRemoveLiquidity *MeteoraPoolsRemoveLiquidityEvent

	MeteoraDammV2Swap            *MeteoraDammV2SwapEvent
	MeteoraDammV2AddLiquidity    *MeteoraDammV2AddLiquidityEvent
	MeteoraDammV2RemoveLiquidity *MeteoraDammV2RemoveLiquidityEvent
	MeteoraDammV2CreatePosition  *MeteoraDammV2CreatePositionEvent
	MeteoraDammV2ClosePosition   *MeteoraDammV2ClosePositionEvent

	MeteoraDlmmSwap           *MeteoraDlmmSwapEvent
	MeteoraDlmmPositionCreate *MeteoraDlmmPositionCreateEvent
	MeteoraDlmmPositionClose  *MeteoraDlmmPositionCloseEvent

	BonkTrade      *BonkTradeEvent
	BonkPoolCreate *BonkPoolCreateEvent
	BonkMigrateAmm *BonkMigrateAmmEvent

	AccountNonce                *NonceAccount
	AccountTokenInfo            *TokenInfoAccount
	AccountTokenAccount         *TokenAccount
	AccountPumpSwapGlobalConfig *PumpSwapGlobalConfigAccount
	AccountPumpSwapPool         *PumpSwapPoolAccount
}

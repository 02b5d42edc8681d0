// Package decode assembles every protocol package's discriminator entries
// into one discriminator.Registry, the table instrroute and logscan
// actually dispatch through.
package decode

import (
	"github.com/gagliardetto/solana-go"

	"github.com/withobsrvr/solana-dex-parser/decode/accounts"
	"github.com/withobsrvr/solana-dex-parser/decode/bonk"
	"github.com/withobsrvr/solana-dex-parser/decode/meteora"
	"github.com/withobsrvr/solana-dex-parser/decode/orca"
	"github.com/withobsrvr/solana-dex-parser/decode/pumpfun"
	"github.com/withobsrvr/solana-dex-parser/decode/pumpswap"
	"github.com/withobsrvr/solana-dex-parser/decode/raydiumamm"
	"github.com/withobsrvr/solana-dex-parser/decode/raydiumclmm"
	"github.com/withobsrvr/solana-dex-parser/decode/raydiumcpmm"
	"github.com/withobsrvr/solana-dex-parser/discriminator"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// PumpSwapProgramID is the PumpSwap (Pump AMM) program address; account
// snapshots owned by it are PumpSwap's two singleton account types.
var PumpSwapProgramID = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")

const pumpSwapPoolAccountLen = 32 * 6

// DefaultRegistry builds the discriminator.Registry covering every
// supported program. Account-snapshot decoders (decode/accounts) are keyed
// off owner program and data length rather than a discriminator and are
// invoked separately; they have no entry here.
func DefaultRegistry() *discriminator.Registry {
	outer := []discriminator.Entry8{
		{Disc: pumpfun.DiscCreate, Protocol: event.ProtocolPumpFun, Name: "pumpfun.Create", Decode: pumpfun.DecodeCreate},
		{Disc: pumpfun.DiscTrade, Protocol: event.ProtocolPumpFun, Name: "pumpfun.Trade", Decode: pumpfun.DecodeTrade},
		{Disc: pumpfun.DiscMigrate, Protocol: event.ProtocolPumpFun, Name: "pumpfun.Migrate", Decode: pumpfun.DecodeMigrate},

		{Disc: pumpswap.DiscCreatePool, Protocol: event.ProtocolPumpSwap, Name: "pumpswap.CreatePool", Decode: pumpswap.DecodeCreatePool},
		{Disc: pumpswap.DiscLiquidityAdded, Protocol: event.ProtocolPumpSwap, Name: "pumpswap.LiquidityAdded", Decode: pumpswap.DecodeLiquidityAdded},
		{Disc: pumpswap.DiscLiquidityRemoved, Protocol: event.ProtocolPumpSwap, Name: "pumpswap.LiquidityRemoved", Decode: pumpswap.DecodeLiquidityRemoved},

		{Disc: raydiumamm.DiscSwap, Protocol: event.ProtocolRaydiumAmmV4, Name: "raydiumamm.Swap", Decode: raydiumamm.DecodeSwap},
		{Disc: raydiumamm.DiscDeposit, Protocol: event.ProtocolRaydiumAmmV4, Name: "raydiumamm.Deposit", Decode: raydiumamm.DecodeDeposit},
		{Disc: raydiumamm.DiscWithdraw, Protocol: event.ProtocolRaydiumAmmV4, Name: "raydiumamm.Withdraw", Decode: raydiumamm.DecodeWithdraw},
		{Disc: raydiumamm.DiscInitialize, Protocol: event.ProtocolRaydiumAmmV4, Name: "raydiumamm.Initialize", Decode: raydiumamm.DecodeInitialize},

		{Disc: raydiumclmm.DiscSwap, Protocol: event.ProtocolRaydiumClmm, Name: "raydiumclmm.Swap", Decode: raydiumclmm.DecodeSwap},
		{Disc: raydiumclmm.DiscCreatePool, Protocol: event.ProtocolRaydiumClmm, Name: "raydiumclmm.CreatePool", Decode: raydiumclmm.DecodeCreatePool},
		{Disc: raydiumclmm.DiscOpenPosition, Protocol: event.ProtocolRaydiumClmm, Name: "raydiumclmm.OpenPosition", Decode: raydiumclmm.DecodeOpenPosition},
		{Disc: raydiumclmm.DiscClosePosition, Protocol: event.ProtocolRaydiumClmm, Name: "raydiumclmm.ClosePosition", Decode: raydiumclmm.DecodeClosePosition},
		{Disc: raydiumclmm.DiscIncreaseLiquidity, Protocol: event.ProtocolRaydiumClmm, Name: "raydiumclmm.IncreaseLiquidity", Decode: raydiumclmm.DecodeIncreaseLiquidity},
		{Disc: raydiumclmm.DiscDecreaseLiquidity, Protocol: event.ProtocolRaydiumClmm, Name: "raydiumclmm.DecreaseLiquidity", Decode: raydiumclmm.DecodeDecreaseLiquidity},
		{Disc: raydiumclmm.DiscCollectFee, Protocol: event.ProtocolRaydiumClmm, Name: "raydiumclmm.CollectFee", Decode: raydiumclmm.DecodeCollectFee},

		{Disc: raydiumcpmm.DiscSwapBaseIn, Protocol: event.ProtocolRaydiumCpmm, Name: "raydiumcpmm.SwapBaseIn", Decode: raydiumcpmm.DecodeSwapBaseIn},
		{Disc: raydiumcpmm.DiscSwapBaseOut, Protocol: event.ProtocolRaydiumCpmm, Name: "raydiumcpmm.SwapBaseOut", Decode: raydiumcpmm.DecodeSwapBaseOut},
		{Disc: raydiumcpmm.DiscDeposit, Protocol: event.ProtocolRaydiumCpmm, Name: "raydiumcpmm.Deposit", Decode: raydiumcpmm.DecodeDeposit},
		{Disc: raydiumcpmm.DiscWithdraw, Protocol: event.ProtocolRaydiumCpmm, Name: "raydiumcpmm.Withdraw", Decode: raydiumcpmm.DecodeWithdraw},
		{Disc: raydiumcpmm.DiscInitialize, Protocol: event.ProtocolRaydiumCpmm, Name: "raydiumcpmm.Initialize", Decode: raydiumcpmm.DecodeInitialize},

		{Disc: orca.DiscSwap, Protocol: event.ProtocolOrcaWhirlpool, Name: "orca.Swap", Decode: orca.DecodeSwap},
		{Disc: orca.DiscLiquidityIncreased, Protocol: event.ProtocolOrcaWhirlpool, Name: "orca.LiquidityIncreased", Decode: orca.DecodeLiquidityIncreased},
		{Disc: orca.DiscLiquidityDecreased, Protocol: event.ProtocolOrcaWhirlpool, Name: "orca.LiquidityDecreased", Decode: orca.DecodeLiquidityDecreased},
		{Disc: orca.DiscPoolInitialized, Protocol: event.ProtocolOrcaWhirlpool, Name: "orca.PoolInitialized", Decode: orca.DecodePoolInitialized},

		{Disc: meteora.DiscPoolsSwap, Protocol: event.ProtocolMeteoraPools, Name: "meteora.PoolsSwap", Decode: meteora.DecodePoolsSwap},
		{Disc: meteora.DiscPoolsAddLiquidity, Protocol: event.ProtocolMeteoraPools, Name: "meteora.PoolsAddLiquidity", Decode: meteora.DecodePoolsAddLiquidity},
		{Disc: meteora.DiscPoolsRemoveLiquidity, Protocol: event.ProtocolMeteoraPools, Name: "meteora.PoolsRemoveLiquidity", Decode: meteora.DecodePoolsRemoveLiquidity},
		{Disc: meteora.DiscDammV2Swap, Protocol: event.ProtocolMeteoraDammV2, Name: "meteora.DammV2Swap", Decode: meteora.DecodeDammV2Swap},
		{Disc: meteora.DiscDammV2AddLiquidity, Protocol: event.ProtocolMeteoraDammV2, Name: "meteora.DammV2AddLiquidity", Decode: meteora.DecodeDammV2AddLiquidity},
		{Disc: meteora.DiscDammV2RemoveLiquidity, Protocol: event.ProtocolMeteoraDammV2, Name: "meteora.DammV2RemoveLiquidity", Decode: meteora.DecodeDammV2RemoveLiquidity},
		{Disc: meteora.DiscDammV2CreatePosition, Protocol: event.ProtocolMeteoraDammV2, Name: "meteora.DammV2CreatePosition", Decode: meteora.DecodeDammV2CreatePosition},
		{Disc: meteora.DiscDammV2ClosePosition, Protocol: event.ProtocolMeteoraDammV2, Name: "meteora.DammV2ClosePosition", Decode: meteora.DecodeDammV2ClosePosition},
		{Disc: meteora.DiscDlmmSwap, Protocol: event.ProtocolMeteoraDlmm, Name: "meteora.DlmmSwap", Decode: meteora.DecodeDlmmSwap},
		{Disc: meteora.DiscDlmmPositionCreate, Protocol: event.ProtocolMeteoraDlmm, Name: "meteora.DlmmPositionCreate", Decode: meteora.DecodeDlmmPositionCreate},
		{Disc: meteora.DiscDlmmPositionClose, Protocol: event.ProtocolMeteoraDlmm, Name: "meteora.DlmmPositionClose", Decode: meteora.DecodeDlmmPositionClose},

		{Disc: bonk.DiscPoolCreate, Protocol: event.ProtocolBonk, Name: "bonk.PoolCreate", Decode: bonk.DecodePoolCreate},
		{Disc: bonk.DiscTrade, Protocol: event.ProtocolBonk, Name: "bonk.Trade", Decode: bonk.DecodeTrade},
		{Disc: bonk.DiscMigrateAmm, Protocol: event.ProtocolBonk, Name: "bonk.MigrateAmm", Decode: bonk.DecodeMigrateAmm},
	}

	inner := []discriminator.Entry16{
		{Disc: pumpswap.DiscBuy, Protocol: event.ProtocolPumpSwap, Name: "pumpswap.Buy", Decode: pumpswap.DecodeBuy},
		{Disc: pumpswap.DiscSell, Protocol: event.ProtocolPumpSwap, Name: "pumpswap.Sell", Decode: pumpswap.DecodeSell},
	}

	return discriminator.NewRegistry(outer, inner)
}

// DecodeAccount decodes an account-state snapshot by owner program rather
// than by discriminator: these arrive as account updates, not instruction
// or log payloads, so they never go through a Registry lookup. Unrecognized
// owners (anything that isn't the system program, SPL Token/Token-2022, or
// PumpSwap) are reported as not decoded rather than guessed at.
func DecodeAccount(owner, address [32]byte, data []byte, meta event.Metadata) (*event.Event, bool) {
	switch solana.PublicKey(owner) {
	case solana.SystemProgramID:
		return accounts.DecodeNonce(address, data, meta)
	case solana.TokenProgramID, solana.Token2022ProgramID:
		if len(data) >= 165 {
			return accounts.DecodeTokenAccount(address, data, meta)
		}
		return accounts.DecodeMint(address, data, meta)
	case PumpSwapProgramID:
		if len(data) == pumpSwapPoolAccountLen {
			return accounts.DecodePumpSwapPool(address, data, meta)
		}
		return accounts.DecodePumpSwapGlobalConfig(address, data, meta)
	default:
		return nil, false
	}
}

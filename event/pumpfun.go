package event

import "github.com/gagliardetto/solana-go"

// PumpFunTradeEvent covers the Buy/Sell/BuyExactSolIn umbrella: all three
// share this payload shape on PumpFun, distinguished only by IsBuy and by
// which instruction variant produced them.
type PumpFunTradeEvent struct {
	Mint                 solana.PublicKey
	SolAmount            uint64
	TokenAmount          uint64
	IsBuy                bool
	User                 solana.PublicKey
	Timestamp            int64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	RealSolReserves      uint64
	RealTokenReserves    uint64
	FeeRecipient         solana.PublicKey
	FeeBasisPoints       uint64
	Fee                  uint64
	Creator              solana.PublicKey
	CreatorFeeBasisPoints uint64
	CreatorFee           uint64
	TrackVolume          bool
	TotalUnclaimedTokens uint64
	TotalClaimedTokens   uint64
	CurrentSolVolume     uint64

	// Account-filled fields (default until filler.Fill runs).
	BondingCurve            solana.PublicKey
	AssociatedBondingCurve  solana.PublicKey
	AssociatedUser          solana.PublicKey
	CreatorVault            solana.PublicKey
	TokenProgram            solana.PublicKey
}

type PumpFunCreateEvent struct {
	Name         string
	Symbol       string
	URI          string
	Mint         solana.PublicKey
	BondingCurve solana.PublicKey
	User         solana.PublicKey
	Creator      solana.PublicKey
	Timestamp    int64
	VirtualTokenReserves uint64
	VirtualSolReserves   uint64
	TokenTotalSupply     uint64
}

type PumpFunMigrateEvent struct {
	User                 solana.PublicKey
	Mint                 solana.PublicKey
	MintAmount            uint64
	SolAmount             uint64
	PoolMigrationFee      uint64
	BondingCurve          solana.PublicKey
	Timestamp             int64
	Pool                  solana.PublicKey
}

package event

import "github.com/gagliardetto/solana-go"

// NonceAccount is the fixed-layout system-program nonce account snapshot.
type NonceAccount struct {
	Address          solana.PublicKey
	AuthorizedPubkey solana.PublicKey
	Nonce            solana.PublicKey
	LamportsPerSignature uint64
}

// TokenInfoAccount is an SPL mint (or Token-2022 mint-with-extensions)
// snapshot.
type TokenInfoAccount struct {
	Address         solana.PublicKey
	MintAuthority   solana.PublicKey
	HasMintAuthority bool
	Supply          uint64
	Decimals        uint8
	IsInitialized   bool
	FreezeAuthority solana.PublicKey
	HasFreezeAuthority bool
	IsToken2022     bool
}

// TokenAccount is an SPL token account (or Token-2022 account-with-extensions)
// snapshot.
type TokenAccount struct {
	Address   solana.PublicKey
	Mint      solana.PublicKey
	Owner     solana.PublicKey
	Amount    uint64
	Delegate  solana.PublicKey
	HasDelegate bool
	State     uint8
	IsNative  bool
	NativeRentExemptReserve uint64
	DelegatedAmount uint64
	CloseAuthority solana.PublicKey
	HasCloseAuthority bool
	IsToken2022 bool
}

// PumpSwapGlobalConfigAccount is the PumpSwap program's singleton config
// account snapshot.
type PumpSwapGlobalConfigAccount struct {
	Address              solana.PublicKey
	Admin                solana.PublicKey
	LpFeeBasisPoints     uint64
	ProtocolFeeBasisPoints uint64
	ProtocolFeeRecipients [8]solana.PublicKey
}

// PumpSwapPoolAccount is a PumpSwap liquidity pool account snapshot.
type PumpSwapPoolAccount struct {
	Address        solana.PublicKey
	BaseMint       solana.PublicKey
	QuoteMint      solana.PublicKey
	LpMint         solana.PublicKey
	PoolBaseTokenAccount  solana.PublicKey
	PoolQuoteTokenAccount solana.PublicKey
	Creator        solana.PublicKey
}

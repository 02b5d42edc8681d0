// Package accounts resolves account-index references found in instruction
// data against the three pools a versioned transaction message may split
// its account keys across: the static message account_keys, and the two
// address-lookup-table-loaded pools (writable, readonly).
package accounts

import "github.com/gagliardetto/solana-go"

// KeyPools holds the three account-key pools a resolver indexes across, in
// the fixed order the Solana runtime defines: static keys first, then
// loaded-writable, then loaded-readonly.
type KeyPools struct {
	Static         []solana.PublicKey
	LoadedWritable []solana.PublicKey
	LoadedReadonly []solana.PublicKey
}

// Resolve maps a single absolute account index (as instructions reference
// them) into a public key, branching across the three pools in order. It
// returns the zero PublicKey and false if the index is out of range of all
// three pools combined.
func (p KeyPools) Resolve(index int) (solana.PublicKey, bool) {
	if index < 0 {
		return solana.PublicKey{}, false
	}
	if index < len(p.Static) {
		return p.Static[index], true
	}
	index -= len(p.Static)
	if index < len(p.LoadedWritable) {
		return p.LoadedWritable[index], true
	}
	index -= len(p.LoadedWritable)
	if index < len(p.LoadedReadonly) {
		return p.LoadedReadonly[index], true
	}
	return solana.PublicKey{}, false
}

// Len returns the total number of addressable accounts across all three
// pools.
func (p KeyPools) Len() int {
	return len(p.Static) + len(p.LoadedWritable) + len(p.LoadedReadonly)
}

// Getter is the account-index -> pubkey lookup function handed to account
// fillers, matching the upstream AccountGetter closure shape.
type Getter func(index int) (solana.PublicKey, bool)

// GetterFor builds a Getter bound to a specific instruction's account
// index list (the instruction's own `accounts []uint8` field, each entry
// itself an index into KeyPools).
func GetterFor(pools KeyPools, instructionAccountIndexes []uint8) Getter {
	return func(i int) (solana.PublicKey, bool) {
		if i < 0 || i >= len(instructionAccountIndexes) {
			return solana.PublicKey{}, false
		}
		return pools.Resolve(int(instructionAccountIndexes[i]))
	}
}

// InnerGroupIndex builds the O(1) outer-instruction-index -> position in
// the transaction's inner-instruction-group list map, built once per
// transaction and consulted by the instruction router for every inner
// instruction it walks.
type InnerGroupIndex struct {
	byOuterIndex map[int32]int
}

// BuildInnerGroupIndex indexes a list of outer-instruction indexes (one per
// inner-instruction group, as the transaction meta reports them) into a
// map for O(1) lookup.
func BuildInnerGroupIndex(outerIndexes []int32) InnerGroupIndex {
	m := make(map[int32]int, len(outerIndexes))
	for pos, outerIdx := range outerIndexes {
		m[outerIdx] = pos
	}
	return InnerGroupIndex{byOuterIndex: m}
}

// GroupFor returns the position in the inner-instruction-group list
// corresponding to the given outer-instruction index, if any.
func (idx InnerGroupIndex) GroupFor(outerIndex int32) (int, bool) {
	pos, ok := idx.byOuterIndex[outerIndex]
	return pos, ok
}

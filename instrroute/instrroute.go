// Package instrroute walks a transaction's outer and inner instructions in
// order and dispatches their data through the discriminator registry,
// binding each decoded event to a Getter over its instruction's account
// indexes. The program id (ProgramIDIndex) is not resolved or consulted;
// dispatch is by discriminator alone.
package instrroute

import (
	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/clock"
	"github.com/withobsrvr/solana-dex-parser/discriminator"
	"github.com/withobsrvr/solana-dex-parser/event"
)

// Instruction is the minimal shape this module needs from a raw
// instruction: which account-key pool index names its program, which
// indexes name its accounts, and its opaque data payload.
type Instruction struct {
	ProgramIDIndex int
	AccountIndexes []uint8
	Data           []byte
}

// InnerGroup is the set of inner instructions CPI'd from one outer
// instruction, along with that outer instruction's index.
type InnerGroup struct {
	OuterIndex   int32
	Instructions []Instruction
}

// Transaction bundles everything the router needs to process one
// transaction's instruction tree.
type Transaction struct {
	Pools   accounts.KeyPools
	Outer   []Instruction
	Inner   []InnerGroup
	BaseMeta event.Metadata // signature/slot/tx_index/block_time; IngestTimeUs is stamped per event
}

// Routed is one decoded event plus the account Getter bound to the
// instruction that produced it, ready for the account filler.
type Routed struct {
	Event       *event.Event
	OuterIndex  int32
	InnerIndex  int32 // -1 for outer instructions
	AccountGet  accounts.Getter
}

// Route walks tx's outer instructions (8-byte discriminators) and inner
// instruction groups (16-byte discriminators) as two independent passes,
// dispatching each through reg, mirroring parse_instructions_enhanced's two
// top-level loops: outer-instruction decode never gates inner-group decode,
// since a CPI'd program's event may carry no matching outer entry at all
// (PumpSwap's Buy/Sell, for instance, only ever surface as 16-byte inner
// discriminators). Instructions for programs this module doesn't decode,
// or whose data doesn't match a registered discriminator, are silently
// skipped.
func Route(tx Transaction, reg *discriminator.Registry) []Routed {
	var out []Routed

	for i, instr := range tx.Outer {
		if len(instr.Data) < 8 {
			continue
		}
		var disc [8]byte
		copy(disc[:], instr.Data[:8])

		entry, ok := reg.LookupOuter(disc)
		if !ok {
			continue
		}

		m := tx.BaseMeta
		m.IngestTimeUs = clock.NowMicros()
		ev, ok := entry.Decode(instr.Data[8:], m)
		if !ok {
			continue
		}

		out = append(out, Routed{
			Event:      ev,
			OuterIndex: int32(i),
			InnerIndex: -1,
			AccountGet: accounts.GetterFor(tx.Pools, instr.AccountIndexes),
		})
	}

	for _, group := range tx.Inner {
		for j, inner := range group.Instructions {
			if len(inner.Data) < 16 {
				continue
			}
			var disc16 [16]byte
			copy(disc16[:], inner.Data[:16])

			innerEntry, ok := reg.LookupInner(disc16)
			if !ok {
				continue
			}

			im := tx.BaseMeta
			im.IngestTimeUs = clock.NowMicros()
			innerEv, ok := innerEntry.Decode(inner.Data[16:], im)
			if !ok {
				continue
			}

			out = append(out, Routed{
				Event:      innerEv,
				OuterIndex: group.OuterIndex,
				InnerIndex: int32(j),
				AccountGet: accounts.GetterFor(tx.Pools, inner.AccountIndexes),
			})
		}
	}

	return out
}

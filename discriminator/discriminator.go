// Package discriminator implements the compile-time dispatch table that
// maps an 8-byte (log/outer-instruction) or 16-byte (inner-instruction CPI)
// discriminator to the decoder function responsible for it.
//
// Both tables are built and sorted once, by NewRegistry, and kept sorted so
// lookups are a binary search (sort.Search), giving O(log n) dispatch
// without a map's hashing and bucket-chasing overhead on the hot path.
package discriminator

import (
	"bytes"
	"sort"

	"github.com/withobsrvr/solana-dex-parser/event"
)

// Decoder decodes a single instruction/log payload into an Event.
type Decoder func(data []byte, meta event.Metadata) (*event.Event, bool)

// Entry8 binds an 8-byte discriminator to its decoder and protocol tag.
type Entry8 struct {
	Disc     [8]byte
	Protocol event.Protocol
	Name     string
	Decode   Decoder
}

// Entry16 binds a 16-byte inner-instruction discriminator to its decoder.
type Entry16 struct {
	Disc     [16]byte
	Protocol event.Protocol
	Name     string
	Decode   Decoder
}

type table8 struct {
	entries []Entry8
}

type table16 struct {
	entries []Entry16
}

func newTable8(entries []Entry8) *table8 {
	t := &table8{entries: append([]Entry8(nil), entries...)}
	sort.Slice(t.entries, func(i, j int) bool {
		return bytes.Compare(t.entries[i].Disc[:], t.entries[j].Disc[:]) < 0
	})
	return t
}

func (t *table8) lookup(disc [8]byte) (*Entry8, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return bytes.Compare(t.entries[i].Disc[:], disc[:]) >= 0
	})
	if i < len(t.entries) && t.entries[i].Disc == disc {
		return &t.entries[i], true
	}
	return nil, false
}

func newTable16(entries []Entry16) *table16 {
	t := &table16{entries: append([]Entry16(nil), entries...)}
	sort.Slice(t.entries, func(i, j int) bool {
		return bytes.Compare(t.entries[i].Disc[:], t.entries[j].Disc[:]) < 0
	})
	return t
}

func (t *table16) lookup(disc [16]byte) (*Entry16, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return bytes.Compare(t.entries[i].Disc[:], disc[:]) >= 0
	})
	if i < len(t.entries) && t.entries[i].Disc == disc {
		return &t.entries[i], true
	}
	return nil, false
}

// Registry holds the two dispatch tables. A Registry is immutable once
// built and safe for concurrent lookups from any number of goroutines.
type Registry struct {
	outer *table8
	inner *table16
}

// NewRegistry builds a Registry from the given outer (8-byte) and inner
// (16-byte) entries.
func NewRegistry(outer []Entry8, inner []Entry16) *Registry {
	return &Registry{
		outer: newTable8(outer),
		inner: newTable16(inner),
	}
}

// LookupOuter finds the decoder registered for an 8-byte discriminator
// (log lines and top-level/outer instructions).
func (r *Registry) LookupOuter(disc [8]byte) (*Entry8, bool) {
	return r.outer.lookup(disc)
}

// LookupInner finds the decoder registered for a 16-byte discriminator
// (inner-instruction CPI payloads).
func (r *Registry) LookupInner(disc [16]byte) (*Entry16, bool) {
	return r.inner.lookup(disc)
}

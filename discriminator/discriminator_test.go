package discriminator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/withobsrvr/solana-dex-parser/discriminator"
	"github.com/withobsrvr/solana-dex-parser/event"
)

func noop(data []byte, meta event.Metadata) (*event.Event, bool) { return nil, false }

func TestLookupOuterFound(t *testing.T) {
	reg := discriminator.NewRegistry([]discriminator.Entry8{
		{Disc: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, Name: "a", Decode: noop},
		{Disc: [8]byte{9, 9, 9, 9, 9, 9, 9, 9}, Name: "b", Decode: noop},
		{Disc: [8]byte{0, 0, 0, 0, 0, 0, 0, 1}, Name: "c", Decode: noop},
	}, nil)

	e, ok := reg.LookupOuter([8]byte{9, 9, 9, 9, 9, 9, 9, 9})
	require.True(t, ok)
	require.Equal(t, "b", e.Name)
}

func TestLookupOuterNotFound(t *testing.T) {
	reg := discriminator.NewRegistry([]discriminator.Entry8{
		{Disc: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, Name: "a", Decode: noop},
	}, nil)

	_, ok := reg.LookupOuter([8]byte{9, 9, 9, 9, 9, 9, 9, 9})
	require.False(t, ok)
}

func TestLookupInner(t *testing.T) {
	var d1, d2 [16]byte
	d1[0] = 1
	d2[0] = 2
	reg := discriminator.NewRegistry(nil, []discriminator.Entry16{
		{Disc: d2, Name: "two", Decode: noop},
		{Disc: d1, Name: "one", Decode: noop},
	})

	e, ok := reg.LookupInner(d1)
	require.True(t, ok)
	require.Equal(t, "one", e.Name)
}

func TestEmptyRegistry(t *testing.T) {
	reg := discriminator.NewRegistry(nil, nil)
	_, ok := reg.LookupOuter([8]byte{})
	require.False(t, ok)
}

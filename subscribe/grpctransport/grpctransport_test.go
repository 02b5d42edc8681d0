package grpctransport_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/withobsrvr/solana-dex-parser/subscribe"
	"github.com/withobsrvr/solana-dex-parser/subscribe/grpctransport"
)

func TestDialInsecureToUnreachableEndpointReturnsWithoutBlocking(t *testing.T) {
	recv := func(ctx context.Context) (*subscribe.RawUpdate, error) {
		return nil, errors.New("not implemented")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// grpc.DialContext without WithBlock returns immediately even against an
	// unreachable endpoint; this only exercises option wiring, not a real
	// network round-trip.
	tr, err := grpctransport.Dial(ctx, "127.0.0.1:1", recv, false, nil)
	require.NoError(t, err)
	require.NotNil(t, tr)
	require.NoError(t, tr.Close())
}

func TestDialWithBackoffGivesUpWhenContextExpires(t *testing.T) {
	recv := func(ctx context.Context) (*subscribe.RawUpdate, error) {
		return nil, errors.New("not implemented")
	}

	calls := 0
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// Force every dial attempt to fail by pointing at an invalid target so
	// backoff.Retry actually loops until the context deadline trips it.
	_, err := grpctransport.DialWithBackoff(ctx, "", func(ctx context.Context) (*subscribe.RawUpdate, error) {
		calls++
		return recv(ctx)
	}, false, nil)
	require.Error(t, err)
}

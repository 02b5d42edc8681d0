// Package grpctransport is a thin google.golang.org/grpc-backed
// implementation of subscribe.Transport. It is deliberately minimal: the
// actual Yellowstone geyser wire schema is a collaborator this module does
// not own, so callers supply a Receiver closure (typically backed by a
// generated geyser client's stream) rather than this package generating
// and owning that protobuf service itself.
package grpctransport

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/withobsrvr/solana-dex-parser/subscribe"
)

// Receiver pulls the next RawUpdate off an already-established stream.
// Implementations typically close over a generated geyser client's
// stream-receive method and translate its protobuf message into a
// subscribe.RawUpdate.
type Receiver func(ctx context.Context) (*subscribe.RawUpdate, error)

// Transport wraps a grpc.ClientConn and a Receiver to satisfy
// subscribe.Transport.
type Transport struct {
	conn   *grpc.ClientConn
	recv   Receiver
	logger *zap.Logger
}

// Dial opens a connection to endpoint and wraps recv as a
// subscribe.Transport. enableTLS selects between insecure (development,
// matching the teacher's connectToRawLedgerSource) and the caller's own
// grpc.DialOption-provided credentials via extraOpts.
func Dial(ctx context.Context, endpoint string, recv Receiver, enableTLS bool, logger *zap.Logger, extraOpts ...grpc.DialOption) (*Transport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := append([]grpc.DialOption{}, extraOpts...)
	if !enableTLS {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	logger.Info("dialing geyser endpoint", zap.String("endpoint", endpoint))
	conn, err := grpc.DialContext(ctx, endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	return &Transport{conn: conn, recv: recv, logger: logger}, nil
}

// DialWithBackoff retries Dial using github.com/cenkalti/backoff/v4's
// exponential policy until ctx is cancelled or a dial succeeds. Automatic
// reconnection after a successful stream has already started is out of
// this module's scope; this only covers the initial connect.
func DialWithBackoff(ctx context.Context, endpoint string, recv Receiver, enableTLS bool, logger *zap.Logger, extraOpts ...grpc.DialOption) (*Transport, error) {
	var t *Transport
	op := func() error {
		var err error
		t, err = Dial(ctx, endpoint, recv, enableTLS, logger, extraOpts...)
		return err
	}

	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return t, nil
}

// Recv satisfies subscribe.Transport by delegating to the wrapped Receiver.
func (t *Transport) Recv(ctx context.Context) (*subscribe.RawUpdate, error) {
	return t.recv(ctx)
}

// Close closes the underlying connection.
func (t *Transport) Close() error {
	return t.conn.Close()
}

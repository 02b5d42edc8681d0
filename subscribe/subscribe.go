// Package subscribe is the front-end that turns a stream of raw transaction
// updates into filtered, ordered events on an output queue. The wire
// protocol (Yellowstone geyser, JSON-RPC, or anything else) is out of
// scope; subscribe depends only on the small Transport interface, the same
// way the teacher's server package treats its upstream
// rawledger.RawLedgerServiceClient as an external collaborator behind a
// generated gRPC interface.
package subscribe

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/withobsrvr/solana-dex-parser/accounts"
	"github.com/withobsrvr/solana-dex-parser/decode"
	"github.com/withobsrvr/solana-dex-parser/discriminator"
	"github.com/withobsrvr/solana-dex-parser/event"
	"github.com/withobsrvr/solana-dex-parser/filler"
	"github.com/withobsrvr/solana-dex-parser/filter"
	"github.com/withobsrvr/solana-dex-parser/instrroute"
	"github.com/withobsrvr/solana-dex-parser/logscan"
	"github.com/withobsrvr/solana-dex-parser/merge"
	"github.com/withobsrvr/solana-dex-parser/order"
	"github.com/withobsrvr/solana-dex-parser/queue"
)

// AccountUpdate is the Go-native stand-in for one account-state snapshot
// arriving outside the transaction-instruction stream (an account
// subscribe feed, a geyser accountUpdate message). It is decoded by owner
// program rather than by discriminator, so it bypasses the Registry,
// merge, and ordering stage entirely and goes straight to the output
// queue.
type AccountUpdate struct {
	Owner   [32]byte
	Address [32]byte
	Data    []byte
}

// RawUpdate is the Go-native stand-in for the payload structure a real
// geyser/JSON-RPC feed yields: one confirmed (or processed) transaction,
// already split into the pieces logscan and instrroute operate on. This
// module does not own the real Yellowstone protobuf schema; a Transport
// implementation is responsible for mapping its wire type into this shape.
type RawUpdate struct {
	Signature   [64]byte
	Slot        uint64
	TxIndex     uint64
	BlockTimeUs int64
	Pools       accounts.KeyPools
	OuterInstrs []instrroute.Instruction
	InnerGroups []instrroute.InnerGroup
	LogLines    []string
	Accounts    []AccountUpdate
}

// Transport is the only surface subscribe depends on to receive updates.
// Recv blocks until the next update, an error, or ctx cancellation.
type Transport interface {
	Recv(ctx context.Context) (*RawUpdate, error)
	Close() error
}

// Filters narrows which events a subscription emits. It holds only the
// event-kind filter applied after decode; it carries no protocol,
// program-id, or account filter lists for a Transport's wire-level
// subscribe request.
type Filters struct {
	EventFilter filter.EventFilter
}

// Subscription owns one Transport and drives it through logscan +
// instrroute -> merge -> filler -> the configured ordering Stage -> the
// output queue. Exactly one goroutine calls Transport.Recv at a time.
type Subscription struct {
	transport Transport
	registry  *discriminator.Registry
	stage     order.Stage
	out       *queue.Queue
	logger    *zap.Logger

	mu      sync.RWMutex
	filters Filters

	cancel context.CancelFunc
}

// New builds a Subscription. A nil logger disables logging.
func New(transport Transport, registry *discriminator.Registry, stage order.Stage, out *queue.Queue, filters Filters, logger *zap.Logger) *Subscription {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Subscription{
		transport: transport,
		registry:  registry,
		stage:     stage,
		out:       out,
		filters:   filters,
		logger:    logger,
	}
}

// UpdateFilters mutates the subscription's event-kind filter without
// reconnecting the transport.
func (s *Subscription) UpdateFilters(f Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

func (s *Subscription) currentFilters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Run drives the subscription until ctx is cancelled or the transport
// returns an error. It starts two goroutines under one errgroup: the
// receive loop, and the ordering stage's periodic flush ticker, mirroring
// the teacher's ticker-goroutine-bound-to-context pattern in
// StartHeartbeatLoop. Transport errors are surfaced to the caller; this
// package does not retry them - grpctransport.DialWithBackoff is where
// reconnection policy lives, applied before a Transport is ever handed in.
func (s *Subscription) Run(ctx context.Context, flushInterval flushTicker) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.recvLoop(ctx)
	})

	if flushInterval != nil {
		g.Go(func() error {
			return s.flushLoop(ctx, flushInterval)
		})
	}

	err := g.Wait()
	s.drainStage()
	return err
}

// flushTicker abstracts the periodic-flush clock so tests can drive it
// without real wall-clock waits.
type flushTicker <-chan struct{}

func (s *Subscription) recvLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		update, err := s.transport.Recv(ctx)
		if err != nil {
			s.logger.Error("transport receive failed, terminating subscription", zap.Error(err))
			return err
		}
		s.handleUpdate(update)
	}
}

func (s *Subscription) flushLoop(ctx context.Context, ticks flushTicker) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			for _, ev := range s.stage.Flush() {
				s.enqueue(ev)
			}
		}
	}
}

func (s *Subscription) drainStage() {
	for _, ev := range s.stage.Close() {
		s.enqueue(ev)
	}
}

// handleUpdate runs one raw update through decode, merge, account-fill,
// the event-kind filter, and the ordering stage.
func (s *Subscription) handleUpdate(update *RawUpdate) {
	meta := event.Metadata{
		Slot:        update.Slot,
		TxIndex:     update.TxIndex,
		BlockTimeUs: update.BlockTimeUs,
	}
	meta.Signature = update.Signature

	tx := instrroute.Transaction{
		Pools:    update.Pools,
		Outer:    update.OuterInstrs,
		Inner:    update.InnerGroups,
		BaseMeta: meta,
	}

	byKey := make(map[event.Kind]*event.Event)
	kindOrder := make([]event.Kind, 0)

	getters := make(map[event.Kind]accounts.Getter)
	for _, routed := range instrroute.Route(tx, s.registry) {
		s.mergeInto(byKey, &kindOrder, routed.Event)
		if routed.Event != nil {
			getters[routed.Event.Kind] = routed.AccountGet
		}
	}

	for _, r := range logscan.Scan(update.LogLines, s.registry, meta) {
		s.mergeInto(byKey, &kindOrder, r.Event)
	}

	for _, a := range update.Accounts {
		if ev, ok := decode.DecodeAccount(a.Owner, a.Address, a.Data, meta); ok {
			s.enqueue(*ev)
		}
	}

	f := s.currentFilters()
	for _, k := range kindOrder {
		ev := byKey[k]
		if get, ok := getters[k]; ok {
			filler.Fill(ev, get)
		}
		if !f.EventFilter.Allows(ev) {
			continue
		}
		for _, out := range s.stage.Accept(*ev) {
			s.enqueue(out)
		}
	}
}

func (s *Subscription) mergeInto(byKey map[event.Kind]*event.Event, kindOrder *[]event.Kind, ev *event.Event) {
	if ev == nil {
		return
	}
	existing, ok := byKey[ev.Kind]
	if !ok {
		*kindOrder = append(*kindOrder, ev.Kind)
		byKey[ev.Kind] = ev
		return
	}
	byKey[ev.Kind] = merge.Merge(existing, ev)
}

func (s *Subscription) enqueue(ev event.Event) {
	if !s.out.Push(ev) {
		s.logger.Debug("dropped event on full output queue", zap.String("kind", ev.Kind.String()))
	}
}

// Stop cancels the subscription's context, causing Run to flush and
// return after its current receive completes.
func (s *Subscription) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if err := s.transport.Close(); err != nil {
		s.logger.Warn("error closing transport", zap.Error(err))
	}
}

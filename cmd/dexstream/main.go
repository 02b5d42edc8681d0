// Command dexstream wires the pipeline's components into one runnable
// process: load Config, build the discriminator Registry and ordering
// Stage it selects, stand up the output Queue and metrics Registry, and
// drive a Subscription against a Transport until told to stop.
//
// The real Yellowstone geyser wire schema is an integrator concern; this
// binary dials a Transport via grpctransport but leaves the Receiver that
// turns wire frames into subscribe.RawUpdate values as a caller-supplied
// hook (see newTransport below).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/withobsrvr/solana-dex-parser/config"
	"github.com/withobsrvr/solana-dex-parser/decode"
	"github.com/withobsrvr/solana-dex-parser/filter"
	"github.com/withobsrvr/solana-dex-parser/metrics"
	"github.com/withobsrvr/solana-dex-parser/queue"
	"github.com/withobsrvr/solana-dex-parser/subscribe"
	"github.com/withobsrvr/solana-dex-parser/subscribe/grpctransport"
)

func main() {
	rootCmd := &cobra.Command{Use: "dexstream"}
	rootCmd.AddCommand(streamCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func streamCmd() *cobra.Command {
	var endpoint string
	var healthPort int

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "decode DEX events from a raw transaction feed and emit them to the output queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(endpoint, healthPort)
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "127.0.0.1:10000", "geyser source address")
	cmd.Flags().IntVar(&healthPort, "health-port", 8089, "health and metrics HTTP port")
	return cmd
}

func run(endpoint string, healthPort int) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("dexstream: build logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("dexstream: load config: %w", err)
	}

	stage, err := cfg.NewStage()
	if err != nil {
		return fmt.Errorf("dexstream: build ordering stage: %w", err)
	}

	registry := decode.DefaultRegistry()
	out := queue.New(cfg.QueueCapacity, logger)
	metricsReg := metrics.NewRegistry(prometheus.DefaultRegisterer, cfg.EnableMetrics)

	transport, err := grpctransport.DialWithBackoff(context.Background(), endpoint, unimplementedReceiver, cfg.EnableTLS, logger)
	if err != nil {
		return fmt.Errorf("dexstream: dial %s: %w", endpoint, err)
	}

	sub := subscribe.New(transport, registry, stage, out, subscribe.Filters{EventFilter: filter.EventFilter{}}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flush := make(chan struct{})
	flushTicker := time.NewTicker(100 * time.Microsecond)
	defer flushTicker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				close(flush)
				return
			case <-flushTicker.C:
				select {
				case flush <- struct{}{}:
				case <-ctx.Done():
				}
			}
		}
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- sub.Run(ctx, flush)
	}()

	go startHealthCheckServer(healthPort, out, metricsReg, logger)

	logger.Info("dexstream started", zap.String("endpoint", endpoint), zap.Int("health_port", healthPort))

	select {
	case <-ctx.Done():
		sub.Stop()
		return <-runErr
	case err := <-runErr:
		return err
	}
}

// unimplementedReceiver stands in for the geyser-frame-to-RawUpdate
// mapping a real deployment supplies; wiring the actual wire schema is
// explicitly out of scope here.
func unimplementedReceiver(ctx context.Context) (*subscribe.RawUpdate, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func startHealthCheckServer(port int, out *queue.Queue, m *metrics.Registry, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"status":        "healthy",
			"queue_len":     out.Len(),
			"queue_cap":     out.Cap(),
			"queue_dropped": out.Dropped(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info("starting health check server", zap.String("address", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("health check server stopped", zap.Error(err))
	}
}

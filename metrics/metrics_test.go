package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/withobsrvr/solana-dex-parser/metrics"
)

func TestDisabledRegistryIsNoop(t *testing.T) {
	var m *metrics.Registry
	require.NotPanics(t, func() {
		m.IncTransactionsProcessed()
		m.IncEventsEmitted("pumpfun")
		m.SetQueueDepth(5)
	})

	m = metrics.NewRegistry(prometheus.NewRegistry(), false)
	require.NotPanics(t, func() {
		m.IncTransactionsProcessed()
	})
}

func TestEnabledRegistryRecordsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewRegistry(reg, true)

	m.IncTransactionsProcessed()
	m.IncTransactionsProcessed()
	m.IncEventsEmitted("pumpfun")
	m.SetQueueDepth(42)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "dexparser_transactions_processed_total" {
			found = true
			require.Len(t, f.Metric, 1)
			require.InDelta(t, 2, *f.Metric[0].Counter.Value, 0)
		}
	}
	require.True(t, found)

	var depthFound bool
	for _, f := range families {
		if f.GetName() == "dexparser_output_queue_depth" {
			depthFound = true
			require.InDelta(t, 42, *f.Metric[0].Gauge.Value, 0)
		}
	}
	require.True(t, depthFound)
}

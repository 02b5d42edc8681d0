package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/withobsrvr/solana-dex-parser/config"
	"github.com/withobsrvr/solana-dex-parser/order"
)

func TestLoadDefaultsMatchOriginalClientConfig(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.EqualValues(t, 8000, cfg.ConnectionTimeoutMs)
	require.EqualValues(t, 15000, cfg.RequestTimeoutMs)
	require.EqualValues(t, 100, cfg.OrderTimeoutMs)
	require.EqualValues(t, 100, cfg.MicroBatchUs)
	require.EqualValues(t, 8192, cfg.BufferSize)
	require.Equal(t, config.OrderModeUnordered, cfg.OrderMode)
}

func TestLoadHonorsEnvironmentOverride(t *testing.T) {
	require.NoError(t, os.Setenv("DEXPARSER_ORDER_MODE", "micro_batch"))
	require.NoError(t, os.Setenv("DEXPARSER_MICRO_BATCH_US", "250"))
	defer os.Unsetenv("DEXPARSER_ORDER_MODE")
	defer os.Unsetenv("DEXPARSER_MICRO_BATCH_US")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.OrderModeMicroBatch, cfg.OrderMode)
	require.EqualValues(t, 250, cfg.MicroBatchUs)
}

func TestValidateRejectsUnknownOrderMode(t *testing.T) {
	cfg := &config.Config{OrderMode: "nonsense"}
	require.Error(t, cfg.Validate())
}

func TestNewStageBuildsMatchingImplementation(t *testing.T) {
	cfg := &config.Config{OrderMode: config.OrderModeOrdered}
	stage, err := cfg.NewStage()
	require.NoError(t, err)
	_, ok := stage.(*order.Ordered)
	require.True(t, ok)
}

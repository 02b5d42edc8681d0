// Package config resolves the pipeline's configuration surface from
// environment variables (prefixed DEXPARSER_) with hard-coded defaults,
// the same env-plus-struct-defaults shape the teacher's own services use
// for their runtime settings, generalized here with spf13/viper instead of
// ad hoc os.Getenv calls.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/withobsrvr/solana-dex-parser/order"
)

// OrderMode selects which order.Stage a subscription builds.
type OrderMode string

const (
	OrderModeUnordered        OrderMode = "unordered"
	OrderModeOrdered          OrderMode = "ordered"
	OrderModeStreamingOrdered OrderMode = "streaming_ordered"
	OrderModeMicroBatch       OrderMode = "micro_batch"
)

// Config is the subscription-level configuration surface, defaults
// matching original_source's ClientConfig::default().
type Config struct {
	EnableMetrics       bool
	ConnectionTimeoutMs uint64
	RequestTimeoutMs    uint64
	EnableTLS           bool
	OrderMode           OrderMode
	OrderTimeoutMs      uint64
	MicroBatchUs        uint64
	BufferSize          int
	QueueCapacity       int
}

// Load resolves Config from DEXPARSER_-prefixed environment variables,
// falling back to the defaults below for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEXPARSER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("enable_metrics", false)
	v.SetDefault("connection_timeout_ms", 8000)
	v.SetDefault("request_timeout_ms", 15000)
	v.SetDefault("enable_tls", true)
	v.SetDefault("order_mode", string(OrderModeUnordered))
	v.SetDefault("order_timeout_ms", 100)
	v.SetDefault("micro_batch_us", 100)
	v.SetDefault("buffer_size", 8192)
	v.SetDefault("queue_capacity", 100_000)

	cfg := &Config{
		EnableMetrics:       v.GetBool("enable_metrics"),
		ConnectionTimeoutMs: v.GetUint64("connection_timeout_ms"),
		RequestTimeoutMs:    v.GetUint64("request_timeout_ms"),
		EnableTLS:           v.GetBool("enable_tls"),
		OrderMode:           OrderMode(v.GetString("order_mode")),
		OrderTimeoutMs:      v.GetUint64("order_timeout_ms"),
		MicroBatchUs:        v.GetUint64("micro_batch_us"),
		BufferSize:          v.GetInt("buffer_size"),
		QueueCapacity:       v.GetInt("queue_capacity"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects an order_mode outside the four recognised values; every
// other field, zero timeouts included, is accepted as-is.
func (c *Config) Validate() error {
	switch c.OrderMode {
	case OrderModeUnordered, OrderModeOrdered, OrderModeStreamingOrdered, OrderModeMicroBatch:
		return nil
	default:
		return fmt.Errorf("config: unrecognized order_mode %q", c.OrderMode)
	}
}

// NewStage builds the order.Stage this Config selects.
func (c *Config) NewStage() (order.Stage, error) {
	switch c.OrderMode {
	case OrderModeUnordered:
		return order.NewUnordered(), nil
	case OrderModeOrdered:
		return order.NewOrdered(), nil
	case OrderModeStreamingOrdered:
		return order.NewStreamingOrdered(), nil
	case OrderModeMicroBatch:
		return order.NewMicroBatch(microBatchDuration(c.MicroBatchUs)), nil
	default:
		return nil, fmt.Errorf("config: unrecognized order_mode %q", c.OrderMode)
	}
}

func microBatchDuration(us uint64) time.Duration {
	return time.Duration(us) * time.Microsecond
}

// Package clock provides a calibrated, monotonic microsecond clock used to
// timestamp ingestion events without paying for a wall-clock syscall on
// every call.
//
// Go's time.Now() already reads a monotonic reading cheaply, so unlike the
// upstream implementation this never shells out to a platform-specific
// clock_gettime binding; it instead focuses on the same recalibration
// policy: periodically re-anchor against wall-clock time so that long-lived
// processes don't accumulate drift between the monotonic reading and the
// epoch offset events are reported against.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	recalibrationInterval = 5 * time.Minute
	driftThreshold        = time.Millisecond
)

// anchor is the immutable calibration snapshot NowMicros reads on its
// lock-free fast path: swapped in whole by calibrate/recalibrate, never
// mutated in place.
type anchor struct {
	epochAnchor int64     // wall-clock microseconds at anchor time
	monoAnchor  time.Time // monotonic reading at anchor time
	lastCalib   time.Time
}

// Clock is a calibrated monotonic-to-epoch-microsecond converter. The read
// path (NowMicros) only ever does an atomic pointer load; mu guards
// calibrate, the rare recalibration path.
type Clock struct {
	mu      sync.Mutex
	current atomic.Pointer[anchor]

	calibrations int64 // atomic, exposed for tests/metrics
}

// New bootstraps a Clock by sampling wall-clock/monotonic pairs a few times
// and keeping the pair with the smallest measured sampling latency, the
// same bootstrap strategy as the upstream calibration routine.
func New() *Clock {
	c := &Clock{}
	c.calibrate()
	return c
}

func (c *Clock) calibrate() {
	var bestLatency time.Duration = -1
	var bestMono time.Time
	var bestEpochUs int64

	for i := 0; i < 3; i++ {
		start := time.Now()
		epochUs := start.UnixMicro()
		latency := time.Since(start)
		if bestLatency < 0 || latency < bestLatency {
			bestLatency = latency
			bestMono = start
			bestEpochUs = epochUs
		}
	}

	c.mu.Lock()
	c.current.Store(&anchor{epochAnchor: bestEpochUs, monoAnchor: bestMono, lastCalib: bestMono})
	c.mu.Unlock()
	atomic.AddInt64(&c.calibrations, 1)
}

// NowMicros returns the current time as epoch microseconds, recalibrating
// on the calling goroutine, before returning, if more than
// recalibrationInterval has elapsed since the last calibration and the
// observed drift exceeds driftThreshold. The
// common case - no recalibration due - never takes c.mu.
func (c *Clock) NowMicros() int64 {
	now := time.Now()

	a := c.current.Load()
	elapsed := now.Sub(a.monoAnchor)
	result := a.epochAnchor + elapsed.Microseconds()

	if now.Sub(a.lastCalib) > recalibrationInterval {
		drift := now.UnixMicro() - result
		if drift < 0 {
			drift = -drift
		}
		if time.Duration(drift)*time.Microsecond > driftThreshold {
			c.calibrate()
		} else {
			c.mu.Lock()
			// Re-load under the lock: a concurrent calibrate() may have
			// already swapped the anchor out from under us.
			latest := *c.current.Load()
			latest.lastCalib = now
			c.current.Store(&latest)
			c.mu.Unlock()
		}
	}

	return result
}

// ElapsedMicrosSince returns how many microseconds have elapsed since the
// given epoch-microsecond timestamp, per this clock's current calibration.
func (c *Clock) ElapsedMicrosSince(thenMicros int64) int64 {
	return c.NowMicros() - thenMicros
}

// Calibrations reports how many times this clock has re-anchored, for
// tests and diagnostics.
func (c *Clock) Calibrations() int64 {
	return atomic.LoadInt64(&c.calibrations)
}

var global struct {
	once sync.Once
	c    *Clock
}

// Global returns the process-wide singleton clock, initializing it on
// first use.
func Global() *Clock {
	global.once.Do(func() {
		global.c = New()
	})
	return global.c
}

// NowMicros is a convenience wrapper around Global().NowMicros().
func NowMicros() int64 {
	return Global().NowMicros()
}

// Package core holds the portable node runtime shared by the sampler
// and hub firmwares: compile-time configuration, the interrupt-safe
// receive queue and the hardware abstraction interfaces that target
// code implements.
package core

import (
	"errors"
	"time"
)

// Defaults match the original deployment: 8-deep receive queues, a 1 Hz
// sample period, a 2 s telemetry freshness window and a 5-tick button
// stabilization window.
const (
	DefaultQueueCapacity   = 8
	DefaultDebounceTicks   = 5
	DefaultFreshnessWindow = 2 * time.Second
	DefaultSamplePeriod    = time.Second
)

// Config collects the compile-time constants of both nodes. Values are
// fixed at node construction; there is no runtime reconfiguration.
type Config struct {
	// QueueCapacity is the depth of each receive queue.
	QueueCapacity int

	// DebounceTicks is the number of consecutive unchanged polls a raw
	// button level must survive before it is confirmed.
	DebounceTicks uint32

	// FreshnessWindow bounds how long the last telemetry sample counts
	// as current on the hub.
	FreshnessWindow time.Duration

	// SamplePeriod is the interval between sampler telemetry frames.
	SamplePeriod time.Duration
}

// DefaultConfig returns the configuration both nodes ship with.
func DefaultConfig() Config {
	return Config{
		QueueCapacity:   DefaultQueueCapacity,
		DebounceTicks:   DefaultDebounceTicks,
		FreshnessWindow: DefaultFreshnessWindow,
		SamplePeriod:    DefaultSamplePeriod,
	}
}

// Validate checks the configuration parameters.
func (c Config) Validate() error {
	if c.QueueCapacity <= 0 {
		return errors.New("core: queue capacity must be positive")
	}
	if c.DebounceTicks == 0 {
		return errors.New("core: debounce window must be at least one tick")
	}
	if c.FreshnessWindow <= 0 {
		return errors.New("core: freshness window must be positive")
	}
	if c.SamplePeriod <= 0 {
		return errors.New("core: sample period must be positive")
	}
	return nil
}

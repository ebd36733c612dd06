// config.go: configuration for the fixed-tick simulator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sim

import (
	"time"

	timecache "github.com/agilira/go-timecache"
)

// TimeProvider supplies the current wall-clock instant. Pluggable so tests
// can drive a Simulator with synthetic time instead of the real clock.
type TimeProvider interface {
	Now() time.Time
}

// systemTimeProvider is the default TimeProvider, backed by go-timecache's
// cached monotonic clock read instead of a fresh time.Now() syscall on
// every frame.
type systemTimeProvider struct{}

func (systemTimeProvider) Now() time.Time {
	return time.Unix(0, timecache.CachedTimeNano())
}

// Config configures a Simulator.
type Config struct {
	// Tick is the fixed simulation step duration. Must be > 0; there is no
	// sane default, unlike every other field here.
	Tick time.Duration

	// TimeProvider supplies wall-clock instants. Default: systemTimeProvider,
	// backed by go-timecache.
	TimeProvider TimeProvider

	// Logger receives simulator diagnostics. Default: NoOpLogger.
	Logger Logger

	// MetricsCollector receives frame metrics. Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate normalizes cfg in place, applying defaults to every field except
// Tick, which has no sane default and is reported as an error instead.
func (c *Config) Validate() error {
	if c.Tick <= 0 {
		return NewErrInvalidTick(c.Tick)
	}
	if c.TimeProvider == nil {
		c.TimeProvider = systemTimeProvider{}
	}
	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}
	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}
	return nil
}

// Package otelsim provides OpenTelemetry integration for simulator metrics.
//
// This package implements the sim.MetricsCollector interface using
// OpenTelemetry, mirroring store/otelstore's adapter shape.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otelsim

import (
	"context"
	"errors"

	"github.com/agilira/tickforge/sim"
	"go.opentelemetry.io/otel/metric"
)

// Collector implements sim.MetricsCollector using OpenTelemetry.
type Collector struct {
	ticksPerFrame metric.Int64Histogram
	alpha         metric.Float64Histogram
	tickChanges   metric.Int64Counter
}

// Options configures a Collector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/tickforge/sim".
	MeterName string
}

// Option configures a Collector via New.
type Option func(*Options)

// WithMeterName sets a custom meter name.
func WithMeterName(name string) Option {
	return func(o *Options) { o.MeterName = name }
}

// New creates a Collector backed by provider.
func New(provider metric.MeterProvider, opts ...Option) (*Collector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/tickforge/sim"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	c := &Collector{}
	var err error

	if c.ticksPerFrame, err = meter.Int64Histogram("sim_ticks_per_frame", metric.WithDescription("Discrete ticks stepped per Simulate call")); err != nil {
		return nil, err
	}
	if c.alpha, err = meter.Float64Histogram("sim_frame_alpha", metric.WithDescription("Interpolation fraction per Simulate call")); err != nil {
		return nil, err
	}
	if c.tickChanges, err = meter.Int64Counter("sim_tick_duration_changes_total", metric.WithDescription("Hot-reloaded tick duration changes")); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Collector) RecordFrame(ticks int, alpha float32) {
	ctx := context.Background()
	c.ticksPerFrame.Record(ctx, int64(ticks))
	c.alpha.Record(ctx, float64(alpha))
}

func (c *Collector) RecordTickDurationChange() {
	c.tickChanges.Add(context.Background(), 1)
}

var _ sim.MetricsCollector = (*Collector)(nil)

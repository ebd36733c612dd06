// Package otelstore provides OpenTelemetry integration for store metrics.
//
// This package implements the store.MetricsCollector interface using
// OpenTelemetry, mirroring the balios/otel adapter's shape: one counter
// per outcome, created once at construction, recorded from the store's
// (single-threaded) call path.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otelstore

import (
	"context"
	"errors"

	"github.com/agilira/tickforge/store"
	"go.opentelemetry.io/otel/metric"
)

// Collector implements store.MetricsCollector using OpenTelemetry.
type Collector struct {
	registerOK    metric.Int64Counter
	registerFail  metric.Int64Counter
	getHits       metric.Int64Counter
	getMisses     metric.Int64Counter
	modifications metric.Int64Counter
	destroyOK     metric.Int64Counter
	destroyMiss   metric.Int64Counter
}

// Options configures a Collector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/tickforge/store".
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

	options := Options{MeterName: "github.com/agilira/tickforge/store"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	c := &Collector{}
	var err error

	if c.registerOK, err = meter.Int64Counter("store_register_ok_total", metric.WithDescription("Successful Register calls")); err != nil {
		return nil, err
	}
	if c.registerFail, err = meter.Int64Counter("store_register_fail_total", metric.WithDescription("Failed Register calls")); err != nil {
		return nil, err
	}
	if c.getHits, err = meter.Int64Counter("store_get_hits_total", metric.WithDescription("Successful Get calls")); err != nil {
		return nil, err
	}
	if c.getMisses, err = meter.Int64Counter("store_get_misses_total", metric.WithDescription("Failed Get calls")); err != nil {
		return nil, err
	}
	if c.modifications, err = meter.Int64Counter("store_modify_total", metric.WithDescription("Modify calls")); err != nil {
		return nil, err
	}
	if c.destroyOK, err = meter.Int64Counter("store_destroy_ok_total", metric.WithDescription("Successful Destroy calls")); err != nil {
		return nil, err
	}
	if c.destroyMiss, err = meter.Int64Counter("store_destroy_miss_total", metric.WithDescription("Destroy calls against a stale handle")); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Collector) RecordRegister(ok bool) {
	if ok {
		c.registerOK.Add(context.Background(), 1)
	} else {
		c.registerFail.Add(context.Background(), 1)
	}
}

func (c *Collector) RecordGet(hit bool) {
	if hit {
		c.getHits.Add(context.Background(), 1)
	} else {
		c.getMisses.Add(context.Background(), 1)
	}
}

func (c *Collector) RecordModify() {
	c.modifications.Add(context.Background(), 1)
}

func (c *Collector) RecordDestroy(ok bool) {
	if ok {
		c.destroyOK.Add(context.Background(), 1)
	} else {
		c.destroyMiss.Add(context.Background(), 1)
	}
}

var _ store.MetricsCollector = (*Collector)(nil)

// Package otelstore provides OpenTelemetry integration for store metrics.
//
// # Overview
//
// This package implements the store.MetricsCollector interface using
// OpenTelemetry. It is a separate module so the store core stays free of
// OTEL dependencies; applications that don't need metrics don't pay for
// them.
//
// # Quick Start
//
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := otelstore.New(provider)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s, _ := store.NewStore(store.Config{
//		Capacity:         10_000,
//		MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
// Counters:
//   - store_register_ok_total / store_register_fail_total
//   - store_get_hits_total / store_get_misses_total
//   - store_modify_total
//   - store_destroy_ok_total / store_destroy_miss_total
//
// # Configuration
//
// Custom meter name (useful for multiple store instances):
//
//	collector, err := otelstore.New(provider, otelstore.WithMeterName("world_store"))
package otelstore

// Package otelsim provides OpenTelemetry integration for sim metrics.
//
// This package implements the sim.MetricsCollector interface. It is a
// separate module so the sim core stays free of OTEL dependencies.
//
// # Quick Start
//
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := otelsim.New(provider)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := sim.NewSimulator(sim.Config{
//		Tick:             16 * time.Millisecond,
//		MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
//   - sim_ticks_per_frame: histogram of discrete ticks stepped per frame
//   - sim_frame_alpha: histogram of the interpolation fraction per frame
//   - sim_tick_duration_changes_total: counter of hot-reloaded tick changes
package otelsim

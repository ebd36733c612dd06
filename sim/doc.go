// Package sim implements a fixed-tick simulation driver: it accumulates
// real elapsed time and steps a caller-supplied state transition function a
// whole number of times per frame, exposing the leftover fractional tick as
// an interpolation factor so rendering can present smooth motion between
// discrete simulation steps.
//
// Example usage:
//
//	s := sim.NewSimulator(sim.Config{Tick: 16 * time.Millisecond})
//	for range frames {
//		f := s.Go()
//		view, err := sim.Simulate(&f, &world,
//			func(w *World) { w.Step() },
//			func(w *World) RenderView { return w.View() },
//			func(p *WorldSnapshot) RenderView { return p.View() },
//			func(w *World) (*WorldSnapshot, error) { return w.Snapshot(), nil },
//			lerpView,
//		)
//		if err != nil {
//			break
//		}
//		draw(view)
//	}
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sim

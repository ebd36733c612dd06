// sim.go: fixed-tick simulation driver with interpolated rendering
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sim

import (
	"sync/atomic"
	"time"
)

// Simulator accumulates real elapsed time and steps a fixed-tick state
// transition function a whole number of times per frame, leaving a
// fractional remainder available as an interpolation factor for smooth
// rendering of partial ticks.
//
// Simulator is not safe for concurrent use; a single goroutine should own
// the Go()/Simulate() call sequence for a given instance. See hotreload.go
// for the one supported form of cross-goroutine interaction: pushing a new
// tick duration in from a config watcher. tickNanos carries that one shared
// field and is accessed exclusively through atomic load/store so the
// watcher goroutine and the Simulate loop never race on it.
type Simulator struct {
	tickNanos int64
	then      time.Time
	cumul     time.Duration
	total     time.Duration

	timeProvider TimeProvider
	logger       Logger
	metrics      MetricsCollector
}

// NewSimulator constructs a Simulator from cfg. It panics if cfg.Tick is
// not positive: unlike every other Config field, Tick has no sane default,
// so a caller that passes an invalid one has a programming error, not a
// recoverable condition. Use NewSimulatorSafe to get an error instead.
func NewSimulator(cfg Config) *Simulator {
	s, err := NewSimulatorSafe(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSimulatorSafe constructs a Simulator from cfg, returning an error
// instead of panicking when cfg.Tick is not positive.
func NewSimulatorSafe(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		tickNanos:    int64(cfg.Tick),
		then:         cfg.TimeProvider.Now(),
		timeProvider: cfg.TimeProvider,
		logger:       cfg.Logger,
		metrics:      cfg.MetricsCollector,
	}, nil
}

// Go returns a Frame capturing the current instant. The Frame remembers
// when it was created, so code between Go() and Simulate() should not
// perform expensive work that would skew the simulation's notion of
// elapsed time.
func (s *Simulator) Go() Frame {
	return Frame{sim: s, now: s.timeProvider.Now()}
}

// GoWithCallback is like Go, but the returned Frame invokes onFrameEnd with
// the wall-clock duration between the Frame's creation and its End() call.
// Simulate calls End() internally after computing its result, so the
// common Go() -> Simulate() path needs no caller change; a Frame created
// this way and discarded without ever calling Simulate or End() simply
// never fires the callback.
func (s *Simulator) GoWithCallback(onFrameEnd func(time.Duration)) Frame {
	f := s.Go()
	f.onEnd = onFrameEnd
	return f
}

// TotalTime returns the total elapsed wall-clock time observed across every
// frame, including the current partial tick.
func (s *Simulator) TotalTime() time.Duration {
	return s.total
}

// SetTick changes the simulation's tick duration. It is exported for
// hotreload.go; direct callers should prefer NewHotConfig unless they have
// their own reload mechanism. Safe to call from a goroutine other than the
// one driving Go()/Simulate(), which is exactly how hotreload.go uses it.
func (s *Simulator) SetTick(tick time.Duration) {
	if tick <= 0 {
		return
	}
	atomic.StoreInt64(&s.tickNanos, int64(tick))
	s.metrics.RecordTickDurationChange()
}

// tick returns the current tick duration via an atomic load, matching the
// atomic.StoreInt64 in SetTick so the two never race.
func (s *Simulator) tick() time.Duration {
	return time.Duration(atomic.LoadInt64(&s.tickNanos))
}

// elapse folds the wall-clock delta between now and the simulator's last
// observed instant into both the frame accumulator and the running total.
// It panics on a negative delta, the Go analogue of the reference
// implementation's debug_assert!(elapsed >= Zero::zero): wall-clock time
// going backwards between frames is a contract violation, not a
// recoverable condition.
func (s *Simulator) elapse(now time.Time) {
	elapsed := now.Sub(s.then)
	if elapsed < 0 {
		panic(NewErrNegativeElapsed(elapsed))
	}
	s.then = now
	s.cumul += elapsed
	s.total += elapsed
}

// Frame is a single render frame's simulation handle, produced by
// Simulator.Go or Simulator.GoWithCallback.
type Frame struct {
	sim   *Simulator
	now   time.Time
	onEnd func(time.Duration)
	ended bool
}

// Now returns the instant the Frame was created. Useful, for example, to
// compute how long to sleep after processing and drawing.
func (f *Frame) Now() time.Time {
	return f.now
}

// End fires the Frame's onFrameEnd callback, if any, exactly once. It is
// called automatically by Simulate; callers that never call Simulate on a
// Frame may call End explicitly, or let the callback simply never fire.
func (f *Frame) End() {
	if f.ended {
		return
	}
	f.ended = true
	if f.onEnd != nil {
		f.onEnd(f.sim.timeProvider.Now().Sub(f.now))
	}
}

// Simulate steps state forward by whatever whole number of ticks have
// accumulated since the Frame's simulator last ran, then produces an
// interpolated view for rendering:
//
//  1. Fold the wall-clock time since the last frame into the accumulator.
//  2. While the accumulator is positive, subtract one tick and call step
//     once; a positive remainder smaller than a tick still costs one step.
//     On the pass that drives the accumulator below zero (the final
//     sub-tick), snapshot the pre-step state via snapshot — at most once
//     per frame.
//  3. Compute alpha, the fraction of a tick left over, in [0, 1).
//  4. Project both the current state and the snapshot (or the current
//     state again, if no sub-tick boundary was crossed) to the view type V.
//  5. Interpolate between the two views by alpha and return the result.
//
// A non-nil error from snapshot aborts the frame immediately: state may be
// left partially advanced, and the zero value of V is returned alongside
// the error.
func Simulate[S, V, P any](
	f *Frame,
	state *S,
	step func(*S),
	renderView func(*S) V,
	priorView func(*P) V,
	snapshot func(*S) (*P, error),
	interpolate func(alpha float32, current, prior V) V,
) (V, error) {
	var zero V
	s := f.sim
	s.elapse(f.now)

	var priorSnap *P
	ticks := 0
	tick := s.tick()
	for s.cumul > 0 {
		s.cumul -= tick
		if s.cumul < 0 {
			snap, err := snapshot(state)
			if err != nil {
				return zero, err
			}
			priorSnap = snap
		}
		step(state)
		ticks++
	}

	alpha := -(float32(s.cumul) / float32(tick))

	current := renderView(state)
	prior := current
	if priorSnap != nil {
		prior = priorView(priorSnap)
	}

	result := interpolate(alpha, current, prior)
	s.metrics.RecordFrame(ticks, alpha)
	f.End()
	return result, nil
}

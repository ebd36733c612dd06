// main.go: package main - demonstrates store and sim wired together
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	flashflags "github.com/agilira/flash-flags"

	"github.com/agilira/tickforge/sim"
	"github.com/agilira/tickforge/store"
)

// Position and Velocity are the two component types the demo world
// registers. Velocity is added to Position once per simulation tick;
// Position is what gets rendered: each frame prints the watched entity's
// current and prior Position together with the blend factor alpha.
type Position struct{ X, Y float64 }
type Velocity struct{ DX, DY float64 }

// world is the authoritative simulation state threaded through Simulate.
type world struct {
	s         *store.Store
	entities  []store.Entity
	tickCount int
}

// snapshot is the prior-state projection Simulate interpolates from: a
// copy of every entity's Position just before the frame's final sub-tick.
type snapshot struct {
	positions map[store.Entity]Position
}

func main() {
	fs := flashflags.New("ecsdemo")
	entities := fs.Int("entities", 4, "number of entities in the demo world")
	tick := fs.Duration("tick", 16*time.Millisecond, "fixed simulation tick duration")
	frames := fs.Int("frames", 10, "number of render frames to simulate")
	frameTime := fs.Duration("frame-time", 25*time.Millisecond, "simulated wall-clock time per frame")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("ecsdemo: parsing flags: %v", err)
	}

	if err := run(*entities, *tick, *frames, *frameTime); err != nil {
		log.Fatalf("ecsdemo: %v", err)
	}
}

func run(entityCount int, tick time.Duration, frameCount int, frameTime time.Duration) error {
	s, err := store.NewStore(store.Config{Capacity: entityCount})
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	defer s.Close()

	if _, err := store.Register[Position](s); err != nil {
		return fmt.Errorf("registering Position: %w", err)
	}
	if _, err := store.Register[Velocity](s); err != nil {
		return fmt.Errorf("registering Velocity: %w", err)
	}

	w := &world{s: s}
	for i := 0; i < entityCount; i++ {
		e := s.Create()
		w.entities = append(w.entities, e)
		store.Modify(s, e, func(opt *store.Option[Position]) {
			opt.Value = Position{X: float64(i), Y: 0}
			opt.Present = true
		})
		store.Modify(s, e, func(opt *store.Option[Velocity]) {
			opt.Value = Velocity{DX: 1, DY: float64(i) * 0.5}
			opt.Present = true
		})
	}

	// clock advances manually instead of reading the real wall clock, so a
	// single run produces the same frame count regardless of how long
	// rendering actually takes on the machine running the demo.
	clock := &fakeClock{now: time.Now()}
	simulator, err := sim.NewSimulatorSafe(sim.Config{Tick: tick, TimeProvider: clock})
	if err != nil {
		return fmt.Errorf("creating simulator: %w", err)
	}

	watched := w.entities[0]

	stepWorld := func(w *world) {
		for _, e := range w.entities {
			vel, ok := store.Get[Velocity](w.s, e)
			if !ok {
				continue
			}
			store.Modify(w.s, e, func(opt *store.Option[Position]) {
				if !opt.Present {
					return
				}
				opt.Value.X += vel.DX
				opt.Value.Y += vel.DY
			})
		}
		w.tickCount++
	}

	snapshotWorld := func(w *world) (*snapshot, error) {
		snap := &snapshot{positions: make(map[store.Entity]Position, len(w.entities))}
		for _, e := range w.entities {
			if pos, ok := store.Get[Position](w.s, e); ok {
				snap.positions[e] = *pos
			}
		}
		return snap, nil
	}

	renderWorld := func(w *world) string {
		pos, ok := store.Get[Position](w.s, watched)
		if !ok {
			return "(watched entity has no Position)"
		}
		return fmt.Sprintf("watched=(%.2f, %.2f)", pos.X, pos.Y)
	}

	priorWorld := func(p *snapshot) string {
		pos, ok := p.positions[watched]
		if !ok {
			return "(watched entity had no Position)"
		}
		return fmt.Sprintf("watched=(%.2f, %.2f)", pos.X, pos.Y)
	}

	interpolateWorld := func(alpha float32, current, prior string) string {
		return fmt.Sprintf("alpha=%.2f current=%s prior=%s", alpha, current, prior)
	}

	for frame := 1; frame <= frameCount; frame++ {
		clock.advance(frameTime)
		f := simulator.Go()

		view, err := sim.Simulate(&f, w, stepWorld, renderWorld, priorWorld, snapshotWorld, interpolateWorld)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		fmt.Printf("frame %2d: total=%v %s\n", frame, simulator.TotalTime().Round(time.Millisecond), view)
	}

	return nil
}

// fakeClock is a deterministic TimeProvider driven by advance calls instead
// of the real clock, so the demo's frame-by-frame output is reproducible.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

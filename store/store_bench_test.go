// store_bench_test.go: micro-benchmarks for the component store
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package store_test

import (
	"testing"

	"github.com/agilira/tickforge/store"
)

type benchPosition struct{ X, Y float64 }
type benchVelocity struct{ DX, DY float64 }

// BenchmarkStore_Get benchmarks a hot-path Get against a populated slot.
func BenchmarkStore_Get(b *testing.B) {
	s, err := store.NewStore(store.Config{Capacity: 10_000})
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()
	store.Register[benchPosition](s)

	e := s.Create()
	store.Modify(s, e, func(opt *store.Option[benchPosition]) {
		opt.Value = benchPosition{X: 1, Y: 2}
		opt.Present = true
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Get[benchPosition](s, e)
	}
}

// BenchmarkStore_Modify_Insert benchmarks repeatedly inserting a component
// into the same slot.
func BenchmarkStore_Modify_Insert(b *testing.B) {
	s, err := store.NewStore(store.Config{Capacity: 10_000})
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()
	store.Register[benchPosition](s)
	e := s.Create()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Modify(s, e, func(opt *store.Option[benchPosition]) {
			opt.Value = benchPosition{X: float64(i), Y: float64(i)}
			opt.Present = true
		})
	}
}

// BenchmarkStore_CreateDestroy benchmarks the entity free-list churn a
// spawn/despawn-heavy simulation puts through Create/Destroy.
func BenchmarkStore_CreateDestroy(b *testing.B) {
	s, err := store.NewStore(store.Config{Capacity: 1024})
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()
	store.Register[benchVelocity](s)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := s.Create()
		store.Modify(s, e, func(opt *store.Option[benchVelocity]) {
			opt.Value = benchVelocity{DX: 1, DY: 1}
			opt.Present = true
		})
		s.Destroy(e)
	}
}

// BenchmarkStore_MultiComponentWorld simulates a small world of entities
// each carrying two components, iterating and mutating every tick.
func BenchmarkStore_MultiComponentWorld(b *testing.B) {
	const n = 1000
	s, err := store.NewStore(store.Config{Capacity: n})
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()
	store.Register[benchPosition](s)
	store.Register[benchVelocity](s)

	entities := make([]store.Entity, n)
	for i := range entities {
		e := s.Create()
		entities[i] = e
		store.Modify(s, e, func(opt *store.Option[benchPosition]) {
			opt.Value = benchPosition{}
			opt.Present = true
		})
		store.Modify(s, e, func(opt *store.Option[benchVelocity]) {
			opt.Value = benchVelocity{DX: 1, DY: 1}
			opt.Present = true
		})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, e := range entities {
			vel, ok := store.Get[benchVelocity](s, e)
			if !ok {
				continue
			}
			store.Modify(s, e, func(opt *store.Option[benchPosition]) {
				if !opt.Present {
					return
				}
				opt.Value.X += vel.DX
				opt.Value.Y += vel.DY
			})
		}
	}
}

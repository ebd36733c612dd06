// Package store implements a fixed-capacity Entity-Component storage
// engine: up to Capacity entities, up to MaxComponentTypes (64) distinct
// registered component types, O(1) lookup and mutation of any
// (entity, component) pair, and a compact per-entity presence bitmask.
//
// Example usage:
//
//	s, _ := store.NewStore(store.Config{Capacity: 1024})
//	defer s.Close()
//
//	store.Register[Position](s)
//	e := s.Create()
//	store.Modify(s, e, func(opt *store.Option[Position]) {
//		opt.Value = Position{X: 1, Y: 2}
//		opt.Present = true
//	})
//	if pos, ok := store.Get[Position](s, e); ok {
//		fmt.Println(pos.X, pos.Y)
//	}
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package store

// Package tickforge is the umbrella module for two small runtime
// libraries that form the engineering core of a fixed-tick game or
// simulation substrate:
//
//   - store: a fixed-capacity Entity-Component storage engine with O(1)
//     lookup and mutation of any (entity, component) pair and a compact
//     per-entity presence bitmask.
//   - sim: a fixed-step frame driver that decouples simulation from a
//     variable-rate render loop by accumulating real time and exposing an
//     interpolation fraction for smooth presentation of partial ticks.
//
// Both packages are usable independently. cmd/ecsdemo wires them
// together in a small runnable example.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package tickforge

const (
	// Version of the tickforge module.
	Version = "v0.1.0-dev"
)

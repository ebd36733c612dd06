// main_test.go: smoke test for the ecsdemo CLI's simulation loop
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"testing"
	"time"
)

func TestRun_CompletesWithoutError(t *testing.T) {
	if err := run(4, 16*time.Millisecond, 5, 25*time.Millisecond); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRun_SingleEntity(t *testing.T) {
	if err := run(1, 10*time.Millisecond, 3, 10*time.Millisecond); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRun_RejectsInvalidCapacity(t *testing.T) {
	if err := run(0, 10*time.Millisecond, 1, 10*time.Millisecond); err == nil {
		t.Fatal("run() with zero entities: expected error, got nil")
	}
}

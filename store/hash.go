// hash.go: type-identity hashing for the component registry
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package store

import (
	"hash/fnv"
	"reflect"
)

// Hasher computes a bucket hash for a registered component's reflect.Type.
// Implementations only need to be stable within a single process run —
// reflect.Type values are already unique and comparable per type, so the
// hash is a placement hint for the registry's open-addressed table, not
// the source of truth for identity.
type Hasher interface {
	Hash(t reflect.Type) uint64
}

// fnvTypeHasher hashes a reflect.Type's package path and string form with
// FNV-1a. Two distinct types essentially never collide in practice, and a
// collision only costs an extra probe step since bucket occupants are
// still confirmed by direct reflect.Type equality.
type fnvTypeHasher struct{}

func (fnvTypeHasher) Hash(t reflect.Type) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.PkgPath()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(t.String()))
	return h.Sum64()
}

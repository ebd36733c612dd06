// alloc.go: pluggable column allocator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package store

import (
	"sync"
	"unsafe"
)

// Allocator supplies the backing storage for component columns. The store
// holds one Allocator by value for its entire lifetime and releases it
// last, after every column has been freed.
//
// Zero-sized component types never call Alloc/Free: the store instead
// hands out a shared non-nil sentinel pointer, per the zero-sized-type
// handling required of the column layer.
type Allocator interface {
	// Alloc returns size bytes of storage aligned to align, or an error.
	Alloc(size, align uintptr) (unsafe.Pointer, error)
	// Free releases storage previously returned by Alloc with the same
	// size and align.
	Free(p unsafe.Pointer, size, align uintptr)
}

// HeapAllocator backs every column with a plain Go heap allocation. Free
// is a no-op beyond dropping the reference — the garbage collector
// reclaims the backing array once the column itself is released, which is
// the idiomatic Go substitute for the reference implementation's manual
// dealloc_array call.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return zstSentinelPointer(), nil
	}
	buf := make([]byte, size+align)
	// Align the returned pointer within buf so unsafe.Slice reinterpretation
	// downstream never straddles a misaligned boundary.
	base := uintptr(unsafe.Pointer(&buf[0]))
	offset := (align - base%align) % align
	return unsafe.Pointer(&buf[offset]), nil
}

func (HeapAllocator) Free(p unsafe.Pointer, size, align uintptr) {
	// Nothing to do: the Go runtime reclaims buf once no column holds a
	// reference to it.
}

// PooledAllocator recycles same-size-class buffers across Register/Close
// cycles via sync.Pool, for callers (typically tests and short-lived
// worlds) that repeatedly construct and tear down stores of the same
// shape.
type PooledAllocator struct {
	pools sync.Map // size-class (uintptr) -> *sync.Pool
	live  sync.Map // returned pointer (uintptr) -> *[]byte, for Free to return the buffer to its pool
}

func (a *PooledAllocator) poolFor(size uintptr) *sync.Pool {
	if p, ok := a.pools.Load(size); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{New: func() any {
		buf := make([]byte, size)
		return &buf
	}}
	actual, _ := a.pools.LoadOrStore(size, p)
	return actual.(*sync.Pool)
}

func (a *PooledAllocator) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return zstSentinelPointer(), nil
	}
	classSize := size + align
	buf := a.poolFor(classSize).Get().(*[]byte)
	if uintptr(len(*buf)) < classSize {
		*buf = make([]byte, classSize)
	}
	base := uintptr(unsafe.Pointer(&(*buf)[0]))
	offset := (align - base%align) % align
	p := unsafe.Pointer(&(*buf)[offset])
	a.live.Store(uintptr(p), buf)
	return p, nil
}

func (a *PooledAllocator) Free(p unsafe.Pointer, size, align uintptr) {
	if p == zstSentinelPointer() {
		return
	}
	key := uintptr(p)
	buf, ok := a.live.LoadAndDelete(key)
	if !ok {
		return
	}
	classSize := size + align
	a.poolFor(classSize).Put(buf)
}

// zstSentinel is the shared non-nil address returned for zero-sized
// component types, so lookups never dereference a null pointer.
var zstSentinel byte

func zstSentinelPointer() unsafe.Pointer {
	return unsafe.Pointer(&zstSentinel)
}

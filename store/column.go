// column.go: type-erased and generic column storage
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package store

import (
	"reflect"
	"unsafe"
)

// Destroyable is an optional interface a component type may implement to
// receive a callback when its value is removed from the store: by an
// explicit Modify that empties a previously-present slot, by Destroy, or
// by the store's Close. Types that don't implement it simply have no
// destructor, matching the reference implementation's no-op default.
type Destroyable interface {
	OnRemove()
}

// Option mirrors the reference implementation's Option<C>: the mutable
// argument handed to the closure passed to Modify.
type Option[T any] struct {
	Value   T
	Present bool
}

// erasedColumn is the type-erased interface the registry stores per slot.
// Every typedColumn[T] satisfies it.
type erasedColumn interface {
	// dropAt invokes the destructor (if any) for index i and zeroes the
	// slot so the garbage collector can reclaim pointer-containing values.
	dropAt(i int)
	// close releases the column's backing storage.
	close()
}

// typedColumn is the generic backing store for one registered component
// type: a contiguous buffer of cap slots obtained from the store's
// Allocator, reinterpreted via unsafe.Slice the same way balios
// reinterprets a cloned string's backing array through a raw pointer and
// length to stay allocation-free on the hot path.
type typedColumn[T any] struct {
	alloc     Allocator
	ptr       unsafe.Pointer
	cap       int
	zeroSized bool
	destroy   func(*T)
	zeroVal   T // shared slot for zero-sized T; every instance is equal and stateless
}

func newTypedColumn[T any](cap int, alloc Allocator) (*typedColumn[T], error) {
	var zero T
	size := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)

	col := &typedColumn[T]{alloc: alloc, cap: cap, zeroSized: size == 0}
	if _, ok := any(zero).(Destroyable); ok {
		col.destroy = func(v *T) { any(v).(Destroyable).OnRemove() }
	}

	if col.zeroSized {
		col.ptr = zstSentinelPointer()
		return col, nil
	}

	p, err := alloc.Alloc(size*uintptr(cap), align)
	if err != nil {
		return nil, err
	}
	col.ptr = p
	return col, nil
}

func (c *typedColumn[T]) slice() []T {
	if c.zeroSized {
		return nil
	}
	return unsafe.Slice((*T)(c.ptr), c.cap)
}

// at returns a pointer to slot i's component, valid regardless of
// zero-sizedness: zero-sized components share the column's single zero
// value, which is safe because every instance of a zero-sized type is
// indistinguishable and carries no state.
func (c *typedColumn[T]) at(i int) *T {
	if c.zeroSized {
		return &c.zeroVal
	}
	return &c.slice()[i]
}

func (c *typedColumn[T]) dropAt(i int) {
	if c.zeroSized {
		if c.destroy != nil {
			c.destroy(&c.zeroVal)
		}
		return
	}
	sl := c.slice()
	if c.destroy != nil {
		c.destroy(&sl[i])
	}
	var zero T
	sl[i] = zero
}

func (c *typedColumn[T]) close() {
	if c.zeroSized {
		return
	}
	var zero T
	size := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)
	c.alloc.Free(c.ptr, size*uintptr(c.cap), align)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register adds component type T to the store, returning its slot index.
// It fails if T is already registered, if the registry's 64 slots are
// full, or if the column allocation fails.
func Register[T any](s *Store) (int, error) {
	slot, err := registerColumn[T](s)
	s.metrics.RecordRegister(err == nil)
	return slot, err
}

// Get returns a pointer to entity h's T component and true, or (nil,
// false) if T isn't registered, h is stale, or h has no T component.
func Get[T any](s *Store, h Entity) (*T, bool) {
	slot, col, ok := s.lookupColumn(typeOf[T]())
	if !ok {
		s.metrics.RecordGet(false)
		return nil, false
	}
	if !s.isLive(h) {
		s.metrics.RecordGet(false)
		return nil, false
	}
	rec := &s.entities[h.Index]
	if rec.mask&(uint64(1)<<uint(slot)) == 0 {
		s.metrics.RecordGet(false)
		return nil, false
	}
	typed := col.(*typedColumn[T])
	s.metrics.RecordGet(true)
	return typed.at(int(h.Index)), true
}

// Modify is the canonical update primitive: insert, remove, replace, and
// in-place mutate are all expressed as a function over an Option[T]. If T
// is unregistered or h is stale, Modify is a silent no-op.
func Modify[T any](s *Store, h Entity, f func(*Option[T])) {
	slot, col, ok := s.lookupColumn(typeOf[T]())
	if !ok {
		return
	}
	if !s.isLive(h) {
		return
	}
	defer s.metrics.RecordModify()
	rec := &s.entities[h.Index]
	bit := uint64(1) << uint(slot)
	typed := col.(*typedColumn[T])
	slotPtr := typed.at(int(h.Index))

	var opt Option[T]
	wasPresent := rec.mask&bit != 0
	if wasPresent {
		opt.Value = *slotPtr
		opt.Present = true
		rec.mask &^= bit
		var zero T
		*slotPtr = zero
	}

	f(&opt)

	if opt.Present {
		*slotPtr = opt.Value
		rec.mask |= bit
		return
	}
	if wasPresent && typed.destroy != nil {
		// Explicit present -> absent transition within this call: run the
		// destructor exactly once on the value that was removed.
		v := opt.Value
		typed.destroy(&v)
	}
}

// errors.go: structured errors for component store operations
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package store

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for Store operations.
const (
	ErrCodeInvalidCapacity   errors.ErrorCode = "STORE_INVALID_CAPACITY"
	ErrCodeOutOfMemory       errors.ErrorCode = "STORE_OUT_OF_MEMORY"
	ErrCodeAlreadyRegistered errors.ErrorCode = "STORE_ALREADY_REGISTERED"
	ErrCodeRegistryFull      errors.ErrorCode = "STORE_REGISTRY_FULL"
)

const (
	msgInvalidCapacity   = "invalid capacity: must be greater than 0"
	msgOutOfMemory       = "allocation failed"
	msgAlreadyRegistered = "component type already registered"
	msgRegistryFull      = "component registry is full"
)

// NewErrInvalidCapacity reports a non-positive Store capacity.
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrOutOfMemory wraps an allocator failure encountered during
// Register. NewStore allocates its entity records from the Go heap, not
// through the Allocator, and never returns this error.
func NewErrOutOfMemory(cause error) error {
	return errors.Wrap(cause, ErrCodeOutOfMemory, msgOutOfMemory).AsRetryable()
}

// NewErrAlreadyRegistered reports that typeName is already registered.
func NewErrAlreadyRegistered(typeName string) error {
	return errors.NewWithField(ErrCodeAlreadyRegistered, msgAlreadyRegistered, "type", typeName)
}

// NewErrRegistryFull reports that all MaxComponentTypes slots are occupied.
func NewErrRegistryFull() error {
	return errors.NewWithContext(ErrCodeRegistryFull, msgRegistryFull, map[string]interface{}{
		"max_component_types": MaxComponentTypes,
	})
}

// IsInvalidCapacity reports whether err is an invalid-capacity error.
func IsInvalidCapacity(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidCapacity)
}

// IsOutOfMemory reports whether err is an allocation-failure error.
func IsOutOfMemory(err error) bool {
	return errors.HasCode(err, ErrCodeOutOfMemory)
}

// IsAlreadyRegistered reports whether err is an already-registered error.
func IsAlreadyRegistered(err error) bool {
	return errors.HasCode(err, ErrCodeAlreadyRegistered)
}

// IsRegistryFull reports whether err is a registry-full error.
func IsRegistryFull(err error) bool {
	return errors.HasCode(err, ErrCodeRegistryFull)
}

// GetErrorCode extracts the structured error code from err, if any.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

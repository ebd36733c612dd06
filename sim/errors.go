// errors.go: structured error handling for the fixed-tick simulator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sim

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for simulator operations.
const (
	ErrCodeNegativeElapsed errors.ErrorCode = "SIM_NEGATIVE_ELAPSED"
	ErrCodeInvalidTick     errors.ErrorCode = "SIM_INVALID_TICK"
)

const (
	msgNegativeElapsed = "observed a negative elapsed duration between frames"
	msgInvalidTick     = "tick duration must be positive"
)

// NewErrNegativeElapsed reports a frame whose wall-clock delta went
// backwards, the Go analogue of the reference implementation's
// debug_assert!(elapsed >= Zero::zero).
func NewErrNegativeElapsed(elapsed interface{}) error {
	return errors.NewWithContext(ErrCodeNegativeElapsed, msgNegativeElapsed, map[string]interface{}{
		"elapsed": elapsed,
	})
}

// NewErrInvalidTick reports a non-positive tick duration passed to
// NewSimulatorSafe.
func NewErrInvalidTick(tick interface{}) error {
	return errors.NewWithField(ErrCodeInvalidTick, msgInvalidTick, "tick", tick)
}

// IsNegativeElapsed reports whether err is a negative-elapsed error.
func IsNegativeElapsed(err error) bool {
	return errors.HasCode(err, ErrCodeNegativeElapsed)
}

// IsInvalidTick reports whether err is an invalid-tick error.
func IsInvalidTick(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidTick)
}

// GetErrorCode extracts the error code from err, or "" if err carries none.
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

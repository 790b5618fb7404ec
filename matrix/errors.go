// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Callers wrap with fmt.Errorf("ctx: %w", ErrX) and match with errors.Is.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that a band width is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrOutsideBand indicates a write to a cell that is not stored by a Band.
	ErrOutsideBand = errors.New("matrix: cell outside band")
)

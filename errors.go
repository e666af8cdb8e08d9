// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/bdelta

package bdelta

import "errors"

// Sentinel errors for delta generation and application.
var (
	// ErrEmptyInput is returned when the base, target, or delta slice is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrDeltaTooLarge is returned by Diff when the delta would grow past DiffOptions.MaxSize.
	ErrDeltaTooLarge = errors.New("delta exceeds max size")
	// ErrInvalidDelta is returned when the delta header is malformed, the announced
	// base size does not match the given base, or a reserved opcode is encountered.
	ErrInvalidDelta = errors.New("invalid delta")
	// ErrInputOverrun is returned when the applier reads past the end of the delta.
	ErrInputOverrun = errors.New("delta input overrun")
	// ErrBaseOverrun is returned when a COPY opcode reads outside the base buffer.
	ErrBaseOverrun = errors.New("copy outside base")
	// ErrOutputOverrun is returned when the opcode stream would overrun the announced
	// target size, or ends before reaching it.
	ErrOutputOverrun = errors.New("output overrun")
)

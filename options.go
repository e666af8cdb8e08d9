// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/bdelta

package bdelta

// DiffOptions configures delta generation.
type DiffOptions struct {
	// MaxSize caps the encoded delta length in bytes (0 = no cap).
	// Diff returns ErrDeltaTooLarge instead of growing past it.
	MaxSize int
}

// DefaultDiffOptions returns options with no size cap.
func DefaultDiffOptions() *DiffOptions {
	return &DiffOptions{}
}

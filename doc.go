// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/bdelta

/*
Package bdelta generates and applies binary deltas in the git packfile
delta format (diff-delta / patch-delta compatible).

A delta encodes a target buffer as COPY runs taken out of a base buffer
plus inline INSERT literal runs. The stream starts with the base and
target sizes as little-endian base-128 varints, then opcodes until the
target is fully covered.

# Diff

Options may be nil (no size cap). With a cap, Diff fails with
ErrDeltaTooLarge instead of producing an oversized delta:

	delta, err := bdelta.Diff(base, target, nil)
	delta, err := bdelta.Diff(base, target, &bdelta.DiffOptions{MaxSize: 4096})

# Apply

Apply replays a delta against the base it was computed from and returns
the reconstructed target. The announced base size must match len(base):

	target, err := bdelta.Apply(base, delta)

To size buffers before applying (e.g. when reading deltas out of a pack):

	baseSize, targetSize, err := bdelta.DeltaSizes(delta)
*/
package bdelta

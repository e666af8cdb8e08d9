// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bdelta

package bdelta

import "encoding/binary"

// maxPreallocSize caps how much output is preallocated from the announced
// target size before any opcode has been validated.
const maxPreallocSize = 65536

// COPY bitmap layout: which flag selects which offset/size byte, and how
// far that byte shifts into the assembled value.
var copyOffsetBytes = [...]struct {
	mask  byte
	shift uint
}{
	{mask: 0x01, shift: 0},
	{mask: 0x02, shift: 8},
	{mask: 0x04, shift: 16},
	{mask: 0x08, shift: 24},
}

var copySizeBytes = [...]struct {
	mask  byte
	shift uint
}{
	{mask: 0x10, shift: 0},
	{mask: 0x20, shift: 8},
	{mask: 0x40, shift: 16},
}

// Apply reconstructs the target buffer by replaying delta against base.
// The delta's announced base size must match len(base), every COPY must
// stay inside base, and the opcode stream must produce exactly the
// announced target size.
func Apply(base, delta []byte) ([]byte, error) {
	if len(base) == 0 || len(delta) == 0 {
		return nil, ErrEmptyInput
	}

	baseSize, targetSize, pos, err := deltaHeader(delta)
	if err != nil {
		return nil, err
	}

	if baseSize != len(base) {
		return nil, ErrInvalidDelta
	}

	out := make([]byte, 0, min(targetSize, maxPreallocSize))
	for pos < len(delta) {
		cmd := delta[pos]
		pos++

		switch {
		case cmd&opCopy != 0:
			var off, size int
			off, size, pos, err = copyOpArgs(delta, pos, cmd)
			if err != nil {
				return nil, err
			}

			if off+size > len(base) {
				return nil, ErrBaseOverrun
			}

			if len(out)+size > targetSize {
				return nil, ErrOutputOverrun
			}

			out = append(out, base[off:off+size]...)

		case cmd == 0:
			// Reserved opcode; a conforming encoder never emits it.
			return nil, ErrInvalidDelta

		default:
			n := int(cmd)
			if pos+n > len(delta) {
				return nil, ErrInputOverrun
			}

			if len(out)+n > targetSize {
				return nil, ErrOutputOverrun
			}

			out = append(out, delta[pos:pos+n]...)
			pos += n
		}
	}

	if len(out) != targetSize {
		return nil, ErrOutputOverrun
	}

	return out, nil
}

// DeltaSizes parses the delta header and returns the announced base and
// target sizes without applying anything.
func DeltaSizes(delta []byte) (baseSize, targetSize int, err error) {
	if len(delta) == 0 {
		return 0, 0, ErrEmptyInput
	}

	baseSize, targetSize, _, err = deltaHeader(delta)
	return baseSize, targetSize, err
}

// deltaHeader decodes the two leading size varints and returns them with
// the opcode stream start position.
func deltaHeader(delta []byte) (baseSize, targetSize, pos int, err error) {
	b, n := binary.Uvarint(delta)
	if n <= 0 || int64(b) < 0 {
		return 0, 0, 0, ErrInvalidDelta
	}

	t, m := binary.Uvarint(delta[n:])
	if m <= 0 || int64(t) < 0 {
		return 0, 0, 0, ErrInvalidDelta
	}

	return int(b), int(t), n + m, nil
}

// copyOpArgs assembles the offset and size bytes flagged present by the
// COPY bitmap. Absent bytes are zero; an assembled size of zero means
// maxCopySize. Bit 0x40 selects a third size byte kept for format
// compatibility; this package's encoder never sets it.
func copyOpArgs(delta []byte, pos int, cmd byte) (off, size, next int, err error) {
	next = pos

	for _, o := range copyOffsetBytes {
		if cmd&o.mask == 0 {
			continue
		}

		if next >= len(delta) {
			return 0, 0, 0, ErrInputOverrun
		}

		off |= int(delta[next]) << o.shift
		next++
	}

	for _, s := range copySizeBytes {
		if cmd&s.mask == 0 {
			continue
		}

		if next >= len(delta) {
			return 0, 0, 0, ErrInputOverrun
		}

		size |= int(delta[next]) << s.shift
		next++
	}

	if size == 0 {
		size = maxCopySize
	}

	return off, size, next, nil
}

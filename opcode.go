// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bdelta

package bdelta

// copyOpSize returns the encoded length of a COPY opcode for the given
// offset and size: one bitmap byte plus one byte per nonzero offset or
// size byte. A size of maxCopySize has both size bytes zero and costs
// nothing beyond the bitmap.
func copyOpSize(off, size uint32) int {
	n := 1
	if off&0xff != 0 {
		n++
	}
	if off&0xff00 != 0 {
		n++
	}
	if off&0xff0000 != 0 {
		n++
	}
	if off&0xff000000 != 0 {
		n++
	}
	if size&0xff != 0 {
		n++
	}
	if size&0xff00 != 0 {
		n++
	}

	return n
}

// putCopyOp serializes a COPY opcode at out[pos:] and returns the next
// write position. Zero offset and size bytes are elided from the stream
// and flagged absent in the bitmap byte.
func putCopyOp(out []byte, pos int, off, size uint32) int {
	op := pos
	pos++
	cmd := byte(opCopy)

	if off&0xff != 0 {
		out[pos] = byte(off)
		pos++
		cmd |= 0x01
	}
	off >>= 8
	if off&0xff != 0 {
		out[pos] = byte(off)
		pos++
		cmd |= 0x02
	}
	off >>= 8
	if off&0xff != 0 {
		out[pos] = byte(off)
		pos++
		cmd |= 0x04
	}
	off >>= 8
	if off&0xff != 0 {
		out[pos] = byte(off)
		pos++
		cmd |= 0x08
	}

	if size&0xff != 0 {
		out[pos] = byte(size)
		pos++
		cmd |= 0x10
	}
	size >>= 8
	if size&0xff != 0 {
		out[pos] = byte(size)
		pos++
		cmd |= 0x20
	}

	out[op] = cmd
	return pos
}

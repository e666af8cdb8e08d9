// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bdelta

package bdelta

// Delta format constants: block indexing parameters and opcode bounds.

// Block indexing.
const (
	// blockSize is the stride at which base blocks are fingerprinted.
	// Min 16, max 64k, power of two.
	blockSize = 16

	// hashPrime spreads fingerprints over the bucket array
	// (golden-ratio multiplicative hashing).
	hashPrime = 0x9e370001
)

// Opcode layout.
const (
	// opCopy marks a COPY opcode; bits 0-3 flag offset bytes 0-3 and
	// bits 4-5 flag size bytes 0-1 (little-endian, zero bytes elided).
	// Bit 6 is a reserved third size byte slot the encoder never sets.
	opCopy = 0x80

	// maxInsertRun is the longest literal run a single INSERT can carry.
	maxInsertRun = 0x7f

	// maxCopySize is the largest COPY size; it is encoded with all size
	// bytes absent, so an assembled size of zero means maxCopySize.
	maxCopySize = 0x10000

	// maxOpSize bounds a single opcode's encoded length, including the
	// reserved third size byte slot.
	maxOpSize = 8
)

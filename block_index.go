// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/bdelta

package bdelta

import "hash/adler32"

// blockIndex maps the Adler-32 fingerprint of every blockSize-strided base
// block to the positions carrying it. It is built once per Diff call and
// read-only afterwards.
type blockIndex struct {
	arena   *recordArena
	buckets []int32
	bits    uint
}

// hashBits returns the smallest bit width (at least 1) whose table holds n slots.
func hashBits(n int) uint {
	val, bits := 1, uint(0)
	for val < n && bits < 32 {
		val <<= 1
		bits++
	}

	if bits == 0 {
		return 1
	}

	return bits
}

// slot maps a fingerprint to its bucket.
func (bi *blockIndex) slot(fp uint32) int {
	return int((fp * hashPrime) >> (32 - bi.bits))
}

// newBlockIndex fingerprints base in blockSize strides and chains each
// record into its bucket. Positions are walked descending and prepended,
// so a chain walk visits positions in ascending order; the final block is
// fingerprinted over its real (possibly partial) length.
func newBlockIndex(base []byte) *blockIndex {
	bits := hashBits(len(base)/blockSize + 1)
	size := 1 << bits

	buckets := make([]int32, size)
	for i := range buckets {
		buckets[i] = nilRecord
	}

	bi := &blockIndex{
		arena:   newRecordArena(size/4 + 1),
		buckets: buckets,
		bits:    bits,
	}

	pos := (len(base) / blockSize) * blockSize
	if pos == len(base) {
		pos -= blockSize
	}

	for ; pos >= 0; pos -= blockSize {
		end := min(pos+blockSize, len(base))

		rec, idx := bi.arena.alloc()
		rec.fp = adler32.Checksum(base[pos:end])
		rec.pos = int32(pos) //nolint:gosec // G115: pos bounded by len(base)

		s := bi.slot(rec.fp)
		rec.next = buckets[s]
		buckets[s] = idx
	}

	return bi
}

// release drops the bucket array and the record arena.
func (bi *blockIndex) release() {
	bi.buckets = nil
	bi.arena.release()
}

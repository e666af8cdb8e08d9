// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/bdelta

package bdelta

import (
	"encoding/binary"
	"hash/adler32"
)

// initialDeltaSize is the starting delta buffer capacity; growth is
// geometric (3/2) and clamped against DiffOptions.MaxSize.
const initialDeltaSize = 8192

// Diff computes a delta that reconstructs target when applied to base.
// opts may be nil (no size cap). Both buffers must be non-empty and are
// only read; the delta is freshly allocated.
//
// The encoder walks the target left to right: it fingerprints the next
// block, probes the base block index, extends the best match byte-wise,
// and emits a COPY unless inlining the bytes as a literal is smaller
// than the COPY opcode itself; at equal cost the COPY wins.
func Diff(base, target []byte, opts *DiffOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDiffOptions()
	}

	if len(base) == 0 || len(target) == 0 {
		return nil, ErrEmptyInput
	}

	maxSize := opts.MaxSize
	idx := newBlockIndex(base)
	defer idx.release()

	outsize := initialDeltaSize
	if maxSize > 0 && outsize >= maxSize {
		outsize = maxSize + maxOpSize + 1
	}
	if outsize < 2*binary.MaxVarintLen64+maxOpSize {
		outsize = 2*binary.MaxVarintLen64 + maxOpSize
	}
	out := make([]byte, outsize)

	outpos := 0
	outpos += binary.PutUvarint(out[outpos:], uint64(len(base)))
	outpos += binary.PutUvarint(out[outpos:], uint64(len(target)))

	out, err := ensureOpRoom(out, outpos, maxSize)
	if err != nil {
		return nil, err
	}

	inscnt := 0
	moff := 0
	data := 0
	for data < len(target) {
		msize := 0
		end := min(data+blockSize, len(target))
		fp := adler32.Checksum(target[data:end])

		for ri := idx.buckets[idx.slot(fp)]; ri != nilRecord; {
			rec := idx.arena.get(ri)
			ri = rec.next
			if rec.fp != fp {
				continue
			}

			pos := int(rec.pos)
			limit := min(len(base)-pos, len(target)-data)
			csize := 0
			for csize < limit && base[pos+csize] == target[data+csize] {
				csize++
			}

			if csize > msize {
				moff = pos
				msize = csize
				if msize >= maxCopySize {
					msize = maxCopySize
					break
				}
			}
		}

		if msize == 0 || msize < copyOpSize(uint32(moff), uint32(msize)) { //nolint:gosec // G115: moff/msize bounded by buffer sizes
			// Literal byte. The run's length byte is reserved up front and
			// backfilled when the run closes or tops out.
			if inscnt == 0 {
				outpos++
			}

			out[outpos] = target[data]
			outpos++
			data++
			inscnt++

			if inscnt == maxInsertRun {
				out[outpos-inscnt-1] = byte(inscnt)
				inscnt = 0
			}
		} else {
			if inscnt > 0 {
				out[outpos-inscnt-1] = byte(inscnt)
				inscnt = 0
			}

			data += msize
			outpos = putCopyOp(out, outpos, uint32(moff), uint32(msize)) //nolint:gosec // G115: moff/msize bounded by buffer sizes
		}

		out, err = ensureOpRoom(out, outpos, maxSize)
		if err != nil {
			return nil, err
		}
	}

	if inscnt > 0 {
		out[outpos-inscnt-1] = byte(inscnt)
	}

	return out[:outpos:outpos], nil
}

// ensureOpRoom keeps at least maxOpSize spare bytes past outpos so the
// next opcode can be written unchecked. Growth is by 3/2, clamped to
// maxSize+maxOpSize+1 when a cap is set; once outpos itself passes the
// cap the delta is refused.
func ensureOpRoom(out []byte, outpos, maxSize int) ([]byte, error) {
	if maxSize > 0 && outpos > maxSize {
		return nil, ErrDeltaTooLarge
	}

	if outpos < len(out)-maxOpSize {
		return out, nil
	}

	outsize := len(out) * 3 / 2
	if maxSize > 0 && outsize >= maxSize {
		outsize = maxSize + maxOpSize + 1
	}

	grown := make([]byte, outsize)
	copy(grown, out[:outpos])

	return grown, nil
}

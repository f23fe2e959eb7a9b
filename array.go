// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fortio

import (
	"errors"
	"fmt"
	"io"
)

// BlocksizeKind selects one of the canonical ECLIPSE default blocksizes.
type BlocksizeKind uint8

const (
	// BlocksizeNumeric selects the default blocksize for i32/f32/f64 arrays.
	BlocksizeNumeric BlocksizeKind = iota
	// BlocksizeString selects the default blocksize for string8 arrays.
	BlocksizeString
)

// Canonical ECLIPSE default blocksizes, in elements per physical block.
const (
	DefaultBlocksizeNumeric = 1000
	DefaultBlocksizeString  = 105
)

// DefaultBlocksize returns the canonical elements-per-block for kind, or a
// negative sentinel if kind is not one of the known BlocksizeKind values.
func DefaultBlocksize(kind BlocksizeKind) int {
	switch kind {
	case BlocksizeNumeric:
		return DefaultBlocksizeNumeric
	case BlocksizeString:
		return DefaultBlocksizeString
	default:
		return -1
	}
}

// ArrayGet reads a logical array of nmemb entries, each composed of length
// sub-units of opts' element kind (length=8 for fixed-length strings stored
// as raw bytes; 1 for everything else), spread across one or more physical
// records of at most blocksize entries each.
//
// Every physical record but possibly the last must hold exactly blocksize
// entries; the last may hold fewer. If blocksize is 0, underflow is allowed
// throughout: every physical record may hold any positive entry count up to
// what remains.
//
// Unlike Get/Put, a failing physical block is rolled back only to its own
// start (by that block's own Get call, or, when the block was read whole
// but holds the wrong entry count, by a seek back to where it began), not
// to the start of the whole array — already-read blocks stay read. See
// DESIGN.md for the UNALIGNED/TRUNCATED classification this implements.
func ArrayGet(s Stream, opts Options, length, nmemb, blocksize int, buf []byte) error {
	if length < 1 {
		length = 1
	}
	elemSize := opts.ElementSize()
	unit := elemSize * length
	need := nmemb * unit
	if len(buf) < need {
		return fmt.Errorf("%w: array_get: buffer holds %d bytes, need %d", ErrInvalidArgument, len(buf), need)
	}

	done := 0 // logical entries placed so far
	for done < nmemb {
		remaining := nmemb - done
		requiredFull := blocksize > 0 && remaining >= blocksize
		expect := remaining
		if requiredFull {
			expect = blocksize
		}

		hintElems := expect * length
		got := hintElems
		start := done * unit
		blockPos, serr := s.Seek(0, io.SeekCurrent)
		if serr != nil {
			return fmt.Errorf("%w: array_get: %v", ErrSeek, serr)
		}
		err := Get(s, opts, &got, buf[start:start+expect*unit])

		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidArgument):
				// The physical record held more elements than this slot's
				// hint allowed, so Get rejected it before consuming the
				// payload; the cursor sits at the start of this block.
				if requiredFull || blocksize == 0 {
					return fmt.Errorf("%w: block at entry %d exceeds the %d entries expected there", ErrTruncated, done, expect)
				}
				return fmt.Errorf("%w: final block at entry %d exceeds the %d entries remaining", ErrUnaligned, done, expect)
			case errors.Is(err, ErrEOF):
				return fmt.Errorf("%w: array incomplete at %d/%d entries", ErrUnexpectedEOF, done, nmemb)
			default:
				return err
			}
		}

		gotEntries := got / length
		if gotEntries != expect && blocksize != 0 {
			// The block was read whole but holds the wrong entry count:
			// put the cursor back at the start of this block.
			if _, serr := s.Seek(blockPos, io.SeekStart); serr != nil {
				return fmt.Errorf("%w: array_get: rollback: %v", ErrInconsistentState, serr)
			}
		}
		switch {
		case gotEntries == expect:
			done += gotEntries
		case requiredFull:
			return fmt.Errorf("%w: block at entry %d holds %d entries, want %d", ErrUnaligned, done, gotEntries, expect)
		case blocksize == 0:
			// Underflow-allowed: any positive entry count makes progress.
			done += gotEntries
		default:
			return fmt.Errorf("%w: final block at entry %d holds %d entries, want %d", ErrTruncated, done, gotEntries, expect)
		}
	}
	return nil
}

// ArrayPut writes nmemb entries (each of length sub-units of opts' element
// kind) as ceil(nmemb/blocksize) physical records: full blocks of blocksize
// entries, then a final, possibly-short block. blocksize must be positive.
//
// Each block is a separate Put call; a failure partway through is not
// rolled back across the blocks already written — the partial prefix
// remains on disk. The caller may recover by truncating the stream back to
// its position before the call, which the cursor reflects only up to the
// start of the failing block (Put's own rollback), not further back.
func ArrayPut(s Stream, opts Options, length, nmemb, blocksize int, buf []byte) error {
	if length < 1 {
		length = 1
	}
	if blocksize <= 0 {
		return fmt.Errorf("%w: array_put: blocksize must be positive, got %d", ErrInvalidArgument, blocksize)
	}
	elemSize := opts.ElementSize()
	unit := elemSize * length
	need := nmemb * unit
	if len(buf) < need {
		return fmt.Errorf("%w: array_put: buffer holds %d bytes, need %d", ErrInvalidArgument, len(buf), need)
	}

	done := 0
	for done < nmemb {
		chunk := blocksize
		if remaining := nmemb - done; remaining < chunk {
			chunk = remaining
		}
		start := done * unit
		if err := Put(s, opts, chunk*length, buf[start:start+chunk*unit]); err != nil {
			return err
		}
		done += chunk
	}
	return nil
}

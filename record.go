// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fortio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// headLen is the width, in bytes, of the head and tail length markers.
const headLen = 4

// readHead reads the 4-byte head marker. A clean end of stream (no bytes
// available at all) reports ErrEOF; a stream that ends partway through the
// head reports ErrUnexpectedEOF.
func readHead(r io.Reader, endian binary.ByteOrder) (int32, error) {
	var buf [headLen]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if n == 0 && err == io.EOF {
			return 0, ErrEOF
		}
		return 0, fmt.Errorf("%w: head: %v", ErrUnexpectedEOF, err)
	}
	return int32(endian.Uint32(buf[:])), nil
}

// validateHead checks a head value for well-formedness (non-negative,
// a whole multiple of the element size) and returns the element count it
// encodes.
func validateHead(h int32, elemSize int) (int, error) {
	if h < 0 || int(h)%elemSize != 0 {
		return 0, fmt.Errorf("%w: head=%d not a non-negative multiple of element size %d", ErrInvalidRecord, h, elemSize)
	}
	return int(h) / elemSize, nil
}

// consumeTail reads and validates (or skips) the tail marker per the call's
// tail policy, leaving the cursor at the position the policy specifies.
func consumeTail(s Stream, opts Options, h int32) error {
	switch opts.TailPolicy {
	case TailForceMissing:
		return nil

	case TailStrict:
		var buf [headLen]byte
		if _, err := io.ReadFull(s, buf[:]); err != nil {
			return fmt.Errorf("%w: tail: %v", ErrUnexpectedEOF, err)
		}
		if tail := int32(opts.Endian.Uint32(buf[:])); tail != h {
			return fmt.Errorf("%w: tail=%d head=%d", ErrInvalidRecord, tail, h)
		}
		return nil

	default: // TailAllowMissing
		var buf [headLen]byte
		n, err := io.ReadFull(s, buf[:])
		if err != nil {
			// Fewer than headLen bytes were available: no tail is
			// present. Rewind whatever partial bytes were consumed so
			// the cursor sits exactly after the payload.
			if n > 0 {
				if _, serr := s.Seek(-int64(n), io.SeekCurrent); serr != nil {
					return fmt.Errorf("%w: rewind after missing tail: %v", ErrSeek, serr)
				}
			}
			return nil
		}
		if tail := int32(opts.Endian.Uint32(buf[:])); tail != h {
			// A tail-shaped value is present but wrong: treat it as if no
			// tail were there, preserving forward progress by seeking
			// back over the headLen bytes just read.
			if _, serr := s.Seek(-int64(headLen), io.SeekCurrent); serr != nil {
				return fmt.Errorf("%w: rewind after mismatched tail: %v", ErrSeek, serr)
			}
		}
		return nil
	}
}

// Sizeof reads and validates the head of the next record and returns its
// element count, then restores the cursor to the pre-call position
// regardless of outcome.
func Sizeof(s Stream, opts Options) (int, error) {
	var n int
	err := alwaysRollback(s, func() error {
		h, err := readHead(s, opts.Endian)
		if err != nil {
			return err
		}
		n, err = validateHead(h, opts.ElementSize())
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// getOnce implements the single-record read algorithm: read and validate the
// head, check it against the caller's size hint, read (or discard) the
// payload, consume the tail, then byte-swap if needed. size is both in
// (buf's capacity, in elements — consulted unless the IgnoreSizeHint option
// is set) and out (elements actually in the record). Either size or buf (or
// both) may be nil.
func getOnce(s Stream, opts Options, size *int, buf []byte) error {
	elemSize := opts.ElementSize()

	h, err := readHead(s, opts.Endian)
	if err != nil {
		return err
	}
	n, err := validateHead(h, elemSize)
	if err != nil {
		return err
	}

	if !opts.IgnoreSizeHint && size != nil {
		if *size < n {
			return fmt.Errorf("%w: record holds %d elements, buffer holds %d", ErrInvalidArgument, n, *size)
		}
	}

	need := n * elemSize
	if buf != nil {
		if len(buf) < need {
			return fmt.Errorf("%w: record is %d bytes, buffer is %d", ErrInvalidArgument, need, len(buf))
		}
		if _, err := io.ReadFull(s, buf[:need]); err != nil {
			return fmt.Errorf("%w: payload: %v", ErrUnexpectedEOF, err)
		}
	} else if need > 0 {
		if _, err := io.CopyN(io.Discard, s, int64(need)); err != nil {
			return fmt.Errorf("%w: payload: %v", ErrUnexpectedEOF, err)
		}
	}

	if err := consumeTail(s, opts, h); err != nil {
		return err
	}

	if buf != nil && needsTransform(opts.Transform, elemSize, opts.Endian) {
		swapInPlace(buf[:need], elemSize)
	}

	if size != nil {
		*size = n
	}
	return nil
}

// Get reads the next record. buf may be nil, in which case the record's
// data is discarded but still validated and the cursor still advances past
// it. size may be nil, in which case the element count is not reported
// back, but the record is still read. On any failure the stream position is
// restored to its value on entry; buf's contents must be treated as dirty
// on any failure except ErrInvalidArgument, which is detected before buf is
// touched.
func Get(s Stream, opts Options, size *int, buf []byte) error {
	return guard(s, func() error {
		return getOnce(s, opts, size, buf)
	})
}

// Skip advances the stream past n records (n must be non-negative). It
// succeeds only if all n records could be skipped; on failure the cursor is
// restored to its value on entry. For n != 1, the caller cannot tell which
// record failed; skip one record at a time to diagnose a failure.
func Skip(s Stream, opts Options, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: skip: negative count %d", ErrInvalidArgument, n)
	}
	return guard(s, func() error {
		for i := 0; i < n; i++ {
			if err := getOnce(s, opts, nil, nil); err != nil {
				return err
			}
		}
		return nil
	})
}

// Put writes a record of nmemb elements read from buf. Unless the tail
// policy is TailForceMissing, both head and tail markers are written. buf is
// never mutated, even when transform is on: a scratch buffer holds the
// byte-swapped payload. On any failure the cursor is restored to its value
// on entry.
func Put(s Stream, opts Options, nmemb int, buf []byte) error {
	elemSize := opts.ElementSize()
	h64 := int64(nmemb) * int64(elemSize)
	if nmemb < 0 || h64 > math.MaxInt32 {
		return fmt.Errorf("%w: put: nmemb=%d elemSize=%d overflows int32", ErrInvalidArgument, nmemb, elemSize)
	}
	h := int32(h64)
	need := int(h)
	if len(buf) < need {
		return fmt.Errorf("%w: put: nmemb*elemSize=%d exceeds buffer length %d", ErrInvalidArgument, need, len(buf))
	}

	return guard(s, func() error {
		var headBuf [headLen]byte
		opts.Endian.PutUint32(headBuf[:], uint32(h))
		if _, err := s.Write(headBuf[:]); err != nil {
			return fmt.Errorf("%w: head: %v", ErrWrite, err)
		}

		payload := buf[:need]
		if needsTransform(opts.Transform, elemSize, opts.Endian) {
			scratch := make([]byte, need)
			copy(scratch, payload)
			swapInPlace(scratch, elemSize)
			payload = scratch
		}
		if _, err := s.Write(payload); err != nil {
			return fmt.Errorf("%w: payload: %v", ErrWrite, err)
		}

		if opts.TailPolicy != TailForceMissing {
			if _, err := s.Write(headBuf[:]); err != nil {
				return fmt.Errorf("%w: tail: %v", ErrWrite, err)
			}
		}
		return nil
	})
}

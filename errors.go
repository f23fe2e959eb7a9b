// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fortio

import "errors"

// sentinelCode is the stable integer identifying an error, for callers that
// need to cross a boundary (e.g. a restart-file consumer) speaking the
// original ecl_errno numbering. Numbering is append-only across releases.
type sentinelCode int

const (
	codeOK sentinelCode = iota
	codeErrUnknown
	codeErrSeek
	codeErrRead
	codeErrWrite
	codeInvalidRecord
	codeEinval
	codeInconsistentState
	codeUnexpectedEOF
	codeEOF
	codeUnaligned
	codeTruncated
)

type sentinel struct {
	code sentinelCode
	text string
}

func (s *sentinel) Error() string { return "fortio: " + s.text }

// Code returns s's stable numeric code.
func (s *sentinel) Code() int { return int(s.code) }

var (
	// ErrUnknown reports a failure not otherwise classified.
	ErrUnknown = &sentinel{codeErrUnknown, "unknown error"}

	// ErrSeek reports that a seek on the underlying stream failed: the
	// position query taken on entry to an operation, or a rewind the
	// operation itself performs. A failed rollback seek is reported as
	// ErrInconsistentState instead.
	ErrSeek = &sentinel{codeErrSeek, "seek failed"}

	// ErrRead reports an underlying read failure other than a clean EOF.
	ErrRead = &sentinel{codeErrRead, "read failed"}

	// ErrWrite reports an underlying write failure.
	ErrWrite = &sentinel{codeErrWrite, "write failed"}

	// ErrInvalidRecord reports a head that is negative, not a multiple of
	// the element size, or a tail that does not match the head under the
	// strict tail policy.
	ErrInvalidRecord = &sentinel{codeInvalidRecord, "invalid record"}

	// ErrInvalidArgument reports a caller error detected before any byte is
	// touched: most commonly the size hint being smaller than the record,
	// or a negative/overflowing element count on Put.
	ErrInvalidArgument = &sentinel{codeEinval, "invalid argument"}

	// ErrInconsistentState reports that a rollback seek itself failed after
	// an operation had already failed. The stream is unusable until the
	// caller recovers it; no further guarantee is made about its position.
	ErrInconsistentState = &sentinel{codeInconsistentState, "inconsistent state"}

	// ErrUnexpectedEOF reports end-of-stream reached mid-record: partway
	// through the head, or after the head was read but before the payload
	// and/or tail were fully consumed.
	ErrUnexpectedEOF = &sentinel{codeUnexpectedEOF, "unexpected end of stream"}

	// ErrEOF reports an orderly end of stream: no bytes were available
	// where the next record's head should begin. This is a normal
	// termination signal, not a failure.
	ErrEOF = &sentinel{codeEOF, "end of stream"}

	// ErrUnaligned reports, from ArrayGet, a physical block that should be a
	// full block of blocksize entries but holds fewer, or a final block that
	// holds more entries than remain (see DESIGN.md for why this taxonomy is
	// shared between single-record and array paths).
	ErrUnaligned = &sentinel{codeUnaligned, "unaligned record in array"}

	// ErrTruncated reports, from ArrayGet, a physical block that should be a
	// full block but holds more than blocksize entries, a block that holds
	// more entries than remain when blocksize is 0, or a final block that
	// holds fewer entries than remain.
	ErrTruncated = &sentinel{codeTruncated, "array truncated"}
)

// Code returns the stable integer code carried by err (OK=0, ERR_UNKNOWN=1,
// ERR_SEEK=2, ERR_READ=3, ERR_WRITE=4, INVALID_RECORD=5, EINVAL=6,
// INCONSISTENT_STATE=7, UNEXPECTED_EOF=8, EOF=9, UNALIGNED=10, TRUNCATED=11).
// err may be a bare sentinel or wrap one via %w; Code walks the chain and
// returns ERR_UNKNOWN's code if none is found.
func Code(err error) int {
	if err == nil {
		return int(codeOK)
	}
	var s *sentinel
	if errors.As(err, &s) {
		return s.Code()
	}
	return int(codeErrUnknown)
}

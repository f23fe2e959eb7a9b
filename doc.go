// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fortio reads and writes unformatted sequential records in the
// binary layout produced by Fortran 77 programs, as typically emitted by
// reservoir-simulation output (ECLIPSE restart/summary/grid files).
//
// Wire format: a physical record is framed as a 4-byte head, the payload,
// and (usually) a 4-byte tail identical to the head:
//
//	| head (i32) | payload... | tail (i32) |
//
// head and tail are stored in the stream's declared byte order (big-endian
// by default, matching Fortran output on common platforms) and give the
// payload length in bytes. head must be non-negative and a multiple of the
// configured element size.
//
// Every call accepts a compact option string (see ParseOptions) selecting
// element kind, byte order, whether to byte-swap the payload, and how
// tolerant to be of a missing or mismatched tail.
//
// Semantics and design:
//   - Rollback-safe: on entry, every operation checkpoints the stream
//     position and restores it on failure, except where explicitly
//     documented (ErrInconsistentState when the restoring seek itself
//     fails, and multi-block array operations which roll back only to the
//     start of the failing physical block).
//   - Synchronous: the engine blocks on the underlying stream and assumes
//     external serialization — concurrent calls against the same stream are
//     undefined.
//   - No schema understanding above the framing layer: payload element
//     layout is caller-defined; the engine only byte-swaps in place.
package fortio

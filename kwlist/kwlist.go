// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kwlist preserves the order in which short keywords appear across
// a read-modify-write cycle over a restart-style stream. It is independent
// of package fortio: keywords are persisted as an ad hoc length-prefixed
// sequence, not as fortio records.
package kwlist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

type mode uint8

const (
	initialized mode = iota
	writing
	reading
)

// List is an ordered, append-growing sequence of keywords with a
// forward-only read cursor. The zero value is an empty list, the same as
// the one New returns.
type List struct {
	kw       []string
	cursor   int
	mode     mode
	modified bool
}

// New returns an empty List ready for Append or Load.
func New() *List {
	return &List{mode: initialized}
}

// Append adds kw as the next keyword. It panics if the list is currently in
// reading mode (a First/Next call happened since the last Reset): switch
// modes explicitly with Reset first, mirroring the original's abort() on
// write-after-read misuse — this is a programmer error, not a recoverable
// condition.
func (l *List) Append(kw string) {
	if l.mode == reading {
		panic("kwlist: Append called while in reading mode; call Reset first")
	}
	l.mode = writing
	if l.cursor == len(l.kw) {
		l.kw = append(l.kw, kw)
		l.modified = true
	} else if l.kw[l.cursor] != kw {
		l.kw[l.cursor] = kw
		l.modified = true
	}
	l.cursor++
}

// First resets the read cursor to the start and returns the first keyword,
// or ok=false if the list is empty. It switches the list to reading mode.
func (l *List) First() (kw string, ok bool) {
	l.Reset()
	return l.Next()
}

// Next returns the next keyword in order, or ok=false once the end is
// reached. It panics if the list is currently in writing mode.
func (l *List) Next() (kw string, ok bool) {
	if l.mode == writing {
		panic("kwlist: Next called while in writing mode; call Reset first")
	}
	l.mode = reading
	if l.cursor >= len(l.kw) {
		return "", false
	}
	kw = l.kw[l.cursor]
	l.cursor++
	return kw, true
}

// Reset rewinds the cursor to the start, clears the modified flag, and
// returns the list to initialized mode, permitting either Append or
// First/Next next.
func (l *List) Reset() {
	l.cursor = 0
	l.mode = initialized
	l.modified = false
}

// Modified reports whether any Append since the last Reset changed the
// keyword previously occupying its slot (including filling a slot that had
// none before).
func (l *List) Modified() bool {
	return l.modified
}

// Len returns the number of keywords currently held.
func (l *List) Len() int {
	return len(l.kw)
}

// Persist writes the list to w as a 4-byte big-endian count followed by
// each keyword as a 4-byte big-endian length prefix and its raw bytes.
func (l *List) Persist(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(l.kw)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("kwlist: persist count: %w", err)
	}
	for _, kw := range l.kw {
		binary.BigEndian.PutUint32(hdr[:], uint32(len(kw)))
		if _, err := bw.Write(hdr[:]); err != nil {
			return fmt.Errorf("kwlist: persist length: %w", err)
		}
		if _, err := bw.WriteString(kw); err != nil {
			return fmt.Errorf("kwlist: persist keyword: %w", err)
		}
	}
	return bw.Flush()
}

// Load replaces the list's contents with the sequence read from r, which
// must be in the format Persist writes. It grows the backing storage as
// needed and calls Reset when done, mirroring the original's
// read-then-reset behavior.
func (l *List) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	var hdr [4]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return fmt.Errorf("kwlist: load count: %w", err)
	}
	n := int(binary.BigEndian.Uint32(hdr[:]))
	kw := make([]string, n)
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(br, hdr[:]); err != nil {
			return fmt.Errorf("kwlist: load length %d: %w", i, err)
		}
		size := binary.BigEndian.Uint32(hdr[:])
		buf := make([]byte, size)
		if _, err := io.ReadFull(br, buf); err != nil {
			return fmt.Errorf("kwlist: load keyword %d: %w", i, err)
		}
		kw[i] = string(buf)
	}
	l.kw = kw
	l.Reset()
	return nil
}

// Copy appends every keyword of src into dst, in order, resetting both
// lists first.
func Copy(dst, src *List) {
	dst.Reset()
	src.Reset()
	for kw, ok := src.First(); ok; kw, ok = src.Next() {
		dst.Append(kw)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fortio

import (
	"fmt"
	"io"
)

// Stream is the minimal surface the engine needs from the caller's
// underlying file/buffer: ordinary sequential reads and writes, plus seeks
// for rollback and for the "rewind after sizeof" behavior.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
}

// checkpoint captures a stream's position on entry to a public operation and
// restores it on failure. Model: a scoped guard bound to the entry
// position — release() on success, rollback() on any other exit path. This
// removes every explicit restore path from the call sites below.
type checkpoint struct {
	s      io.Seeker
	pos    int64
	active bool
}

// newCheckpoint records the current stream position.
func newCheckpoint(s io.Seeker) (*checkpoint, error) {
	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: checkpoint: %v", ErrSeek, err)
	}
	return &checkpoint{s: s, pos: pos, active: true}, nil
}

// release disarms the checkpoint; call this once the operation has
// succeeded and the new cursor position should stand.
func (c *checkpoint) release() { c.active = false }

// rollback restores the stream to the checkpointed position if still armed.
// If the restoring seek itself fails, the caller must surface
// ErrInconsistentState and must not trust the stream's position afterward.
func (c *checkpoint) rollback() error {
	if !c.active {
		return nil
	}
	c.active = false
	if _, err := c.s.Seek(c.pos, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rollback: %v", ErrSeek, err)
	}
	return nil
}

// guard runs op under a checkpoint: on a nil error from op, the checkpoint
// is released (cursor stands where op left it); on any other error, the
// cursor is rolled back to the entry position, unless the rollback seek
// itself fails, in which case ErrInconsistentState replaces the original
// error. guard never touches op's own output parameters; by contract those
// are dirty on any non-nil, non-ErrInvalidArgument error.
func guard(s io.Seeker, op func() error) error {
	cp, err := newCheckpoint(s)
	if err != nil {
		return err
	}
	if err := op(); err != nil {
		if rbErr := cp.rollback(); rbErr != nil {
			return fmt.Errorf("%w: %v (original error: %v)", ErrInconsistentState, rbErr, err)
		}
		return err
	}
	cp.release()
	return nil
}

// alwaysRollback runs op under a checkpoint and restores the stream to the
// entry position regardless of whether op succeeded. Sizeof uses this: it
// never advances the cursor, on success or failure alike.
func alwaysRollback(s io.Seeker, op func() error) error {
	cp, err := newCheckpoint(s)
	if err != nil {
		return err
	}
	opErr := op()
	if rbErr := cp.rollback(); rbErr != nil {
		return fmt.Errorf("%w: %v (original error: %v)", ErrInconsistentState, rbErr, opErr)
	}
	return opErr
}

package fortio_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	fio "code.hybscloud.com/fortio"
)

// seekFailStream wraps an in-memory buffer and fails the Nth Seek call
// (1-indexed), to exercise the rollback-seek-itself-fails path.
type seekFailStream struct {
	buf       *bytes.Reader
	seekCalls int
	failAt    int
}

func newSeekFailStream(data []byte, failAt int) *seekFailStream {
	return &seekFailStream{buf: bytes.NewReader(data), failAt: failAt}
}

func (s *seekFailStream) Read(p []byte) (int, error)  { return s.buf.Read(p) }
func (s *seekFailStream) Write(p []byte) (int, error) { return 0, errors.New("read-only") }

func (s *seekFailStream) Seek(offset int64, whence int) (int64, error) {
	s.seekCalls++
	if s.seekCalls == s.failAt {
		return 0, errors.New("injected seek failure")
	}
	return s.buf.Seek(offset, whence)
}

func TestGetRollsBackOnInvalidRecord(t *testing.T) {
	// head = 3 (not a multiple of 4): invalid record.
	data := []byte{0, 0, 0, 3}
	s := newSeekFailStream(data, -1) // never fails
	opts := fio.DefaultOptions()

	var size int
	err := fio.Get(s, opts, &size, make([]byte, 16))
	if !errors.Is(err, fio.ErrInvalidRecord) {
		t.Fatalf("want ErrInvalidRecord, got %v", err)
	}
	pos, _ := s.Seek(0, io.SeekCurrent)
	if pos != 0 {
		t.Fatalf("cursor should be rolled back to 0, got %d", pos)
	}
}

func TestGetReportsInconsistentStateWhenRollbackSeekFails(t *testing.T) {
	data := []byte{0, 0, 0, 3} // invalid head, triggers a rollback
	// Seek call #1: checkpoint on entry. Seek call #2: the rollback itself.
	s := newSeekFailStream(data, 2)
	opts := fio.DefaultOptions()

	var size int
	err := fio.Get(s, opts, &size, make([]byte, 16))
	if !errors.Is(err, fio.ErrInconsistentState) {
		t.Fatalf("want ErrInconsistentState, got %v", err)
	}
}

func TestSizeofAlwaysRestoresPosition(t *testing.T) {
	data := []byte{0, 0, 0, 4, 1, 2, 3, 4, 0, 0, 0, 4}
	r := newSeekFailStream(data, -1) // never fails
	opts := fio.DefaultOptions()

	n, err := fio.Sizeof(r, opts)
	if err != nil {
		t.Fatalf("Sizeof: %v", err)
	}
	if n != 1 {
		t.Fatalf("Sizeof = %d, want 1", n)
	}
	pos, _ := r.Seek(0, io.SeekCurrent)
	if pos != 0 {
		t.Fatalf("Sizeof must not advance the cursor, got pos %d", pos)
	}
}

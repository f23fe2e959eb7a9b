package fortio_test

import (
	"bytes"
	"errors"
	"io"
)

// memStream is a fortio.Stream backed by an in-memory byte slice, supporting
// the same sequential read/write/seek semantics as a regular file. Tests use
// it instead of *os.File so round trips stay hermetic.
type memStream struct {
	data []byte
	pos  int64
}

func newMemStream(buf *bytes.Buffer) *memStream {
	return &memStream{data: buf.Bytes()}
}

func (m *memStream) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *memStream) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	n := copy(m.data[m.pos:end], p)
	m.pos = end
	return n, nil
}

func (m *memStream) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = m.pos + offset
	case io.SeekEnd:
		newPos = int64(len(m.data)) + offset
	default:
		return 0, errors.New("memStream: invalid whence")
	}
	if newPos < 0 {
		return 0, errors.New("memStream: negative position")
	}
	m.pos = newPos
	return m.pos, nil
}

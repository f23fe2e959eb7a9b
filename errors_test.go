package fortio_test

import (
	"errors"
	"fmt"
	"testing"

	fio "code.hybscloud.com/fortio"
)

func TestCodeStableNumbering(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{fio.ErrUnknown, 1},
		{fio.ErrSeek, 2},
		{fio.ErrRead, 3},
		{fio.ErrWrite, 4},
		{fio.ErrInvalidRecord, 5},
		{fio.ErrInvalidArgument, 6},
		{fio.ErrInconsistentState, 7},
		{fio.ErrUnexpectedEOF, 8},
		{fio.ErrEOF, 9},
		{fio.ErrUnaligned, 10},
		{fio.ErrTruncated, 11},
	}
	for _, c := range cases {
		if got := fio.Code(c.err); got != c.want {
			t.Fatalf("Code(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestCodeUnwrapsThroughFmtErrorf(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", fio.ErrInvalidRecord)
	if !errors.Is(wrapped, fio.ErrInvalidRecord) {
		t.Fatalf("errors.Is should see through fmt.Errorf wrapping")
	}
	if got := fio.Code(wrapped); got != 5 {
		t.Fatalf("Code(wrapped) = %d, want 5", got)
	}
}

func TestCodeUnknownNonSentinelError(t *testing.T) {
	if got := fio.Code(errors.New("boom")); got != 1 {
		t.Fatalf("Code(plain error) = %d, want 1 (ERR_UNKNOWN)", got)
	}
}

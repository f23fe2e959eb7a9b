// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kwlist

import (
	"bytes"
	"testing"
)

func TestAppendAndIterate(t *testing.T) {
	l := New()
	l.Append("PRESSURE")
	l.Append("SWAT")
	l.Append("SGAS")

	var got []string
	for kw, ok := l.First(); ok; kw, ok = l.Next() {
		got = append(got, kw)
	}
	want := []string{"PRESSURE", "SWAT", "SGAS"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestModifiedFlag(t *testing.T) {
	l := New()
	l.Append("PRESSURE")
	if !l.Modified() {
		t.Fatal("first append into an empty slot should set modified")
	}
	l.Reset()
	if l.Modified() {
		t.Fatal("reset should clear modified")
	}

	l.Append("PRESSURE")
	if l.Modified() {
		t.Fatal("re-appending the same keyword at the same slot should not set modified")
	}

	l.Reset()
	l.Append("SWAT")
	if !l.Modified() {
		t.Fatal("appending a different keyword at an existing slot should set modified")
	}
}

func TestAppendAfterReadPanics(t *testing.T) {
	l := New()
	l.Append("PRESSURE")
	l.First()

	defer func() {
		if recover() == nil {
			t.Fatal("Append after First without Reset should panic")
		}
	}()
	l.Append("SWAT")
}

func TestNextAfterWritePanics(t *testing.T) {
	l := New()
	l.Append("PRESSURE")

	defer func() {
		if recover() == nil {
			t.Fatal("Next after Append without Reset should panic")
		}
	}()
	l.Next()
}

func TestPersistLoadRoundTrip(t *testing.T) {
	l := New()
	for _, kw := range []string{"PRESSURE", "SWAT", "SGAS", ""} {
		l.Append(kw)
	}

	var buf bytes.Buffer
	if err := l.Persist(&buf); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	loaded := New()
	if err := loaded.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != l.Len() {
		t.Fatalf("loaded %d keywords, want %d", loaded.Len(), l.Len())
	}

	var got []string
	for kw, ok := loaded.First(); ok; kw, ok = loaded.Next() {
		got = append(got, kw)
	}
	want := []string{"PRESSURE", "SWAT", "SGAS", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCopy(t *testing.T) {
	src := New()
	src.Append("PRESSURE")
	src.Append("SWAT")

	dst := New()
	dst.Append("STALE")

	Copy(dst, src)

	var got []string
	for kw, ok := dst.First(); ok; kw, ok = dst.Next() {
		got = append(got, kw)
	}
	want := []string{"PRESSURE", "SWAT"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

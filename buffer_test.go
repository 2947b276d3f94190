// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/creachadair/ytree"
)

func TestBufferGrowth(t *testing.T) {
	b := ytree.NewBuffer(16)
	if got := b.Cap(); got != 16 {
		t.Errorf("Initial capacity: got %d, want 16", got)
	}

	var want []byte
	chunk := bytes.Repeat([]byte("0123456789"), 1000)
	for i := range 10 {
		before := b.Bytes()
		if _, err := b.Write(chunk); err != nil {
			t.Fatalf("Write %d: unexpected error: %v", i+1, err)
		}
		want = append(want, chunk...)
		if !bytes.Equal(b.Bytes(), want) {
			t.Fatalf("After write %d: contents differ", i+1)
		}
		if !bytes.Equal(b.Bytes()[:len(before)], before) {
			t.Fatalf("After write %d: earlier data were not preserved", i+1)
		}
		if free := b.Cap() - b.Len(); free < 0 {
			t.Fatalf("After write %d: negative free space %d", i+1, free)
		}
	}

	// Capacity grows by doubling from the initial size.
	if c := b.Cap(); c%16 != 0 || (c/16)&(c/16-1) != 0 {
		t.Errorf("Capacity %d is not a power-of-two multiple of 16", c)
	}
}

func TestBufferGrow(t *testing.T) {
	b := ytree.NewBuffer(0)
	if got := b.Cap(); got != ytree.DefaultBufferSize {
		t.Errorf("Default capacity: got %d, want %d", got, ytree.DefaultBufferSize)
	}

	// An empty buffer at the default size already has enough headroom.
	if err := b.Grow(10); err != nil {
		t.Fatalf("Grow(10): unexpected error: %v", err)
	}
	if got := b.Cap(); got != ytree.DefaultBufferSize {
		t.Errorf("Grow(10): capacity changed to %d", got)
	}

	// Once data are written, the next write restores the headroom by doubling.
	b.Write([]byte("x"))
	if got := b.Cap(); got != ytree.DefaultBufferSize {
		t.Errorf("After first write: capacity %d, want %d", got, ytree.DefaultBufferSize)
	}
	b.Write([]byte("y"))
	if got, want := b.Cap(), 2*ytree.DefaultBufferSize; got != want {
		t.Errorf("After second write: capacity %d, want %d", got, want)
	}

	// A large request doubles as often as needed.
	if err := b.Grow(5 * ytree.DefaultBufferSize); err != nil {
		t.Fatalf("Grow: unexpected error: %v", err)
	}
	if got, want := b.Cap(), 8*ytree.DefaultBufferSize; got != want {
		t.Errorf("After large Grow: capacity %d, want %d", got, want)
	}
	if got := string(b.Bytes()); got != "xy" {
		t.Errorf("After large Grow: contents %q, want %q", got, "xy")
	}

	if err := b.Grow(-1); err == nil {
		t.Error("Grow(-1): got nil, want error")
	}
}

func TestBufferLimit(t *testing.T) {
	b := ytree.NewBuffer(16)
	b.SetLimit(20)

	if _, err := b.Write([]byte("0123456789abcde")); err != nil {
		t.Fatalf("Write 15: unexpected error: %v", err)
	}
	if got := b.Cap(); got != 20 {
		t.Errorf("Capacity: got %d, want 20", got)
	}
	if _, err := b.Write([]byte("fghij")); err != nil {
		t.Fatalf("Write to the limit: unexpected error: %v", err)
	}

	n, err := b.Write([]byte("k"))
	if !errors.Is(err, ytree.ErrBufferLimit) {
		t.Errorf("Write past limit: got (%d, %v), want %v", n, err, ytree.ErrBufferLimit)
	}
	if got := b.Err(); !errors.Is(got, ytree.ErrBufferLimit) {
		t.Errorf("Err: got %v, want %v", got, ytree.ErrBufferLimit)
	}
	if got := string(b.Bytes()); got != "0123456789abcdefghij" {
		t.Errorf("Contents: got %q", got)
	}

	// The error is sticky.
	if _, err := b.Write(nil); err == nil {
		t.Error("Write after failure: got nil, want error")
	}
}

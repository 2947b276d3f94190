// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import (
	"errors"
	"fmt"
)

// DefaultBufferSize is the initial capacity of an output Buffer, and also the
// minimum free space a Buffer keeps available ahead of each write.
const DefaultBufferSize = 16384

// ErrBufferLimit is reported when a Buffer cannot grow without exceeding its
// configured limit.
var ErrBufferLimit = errors.New("output buffer limit exceeded")

// A Buffer is a growable in-memory output buffer. Its capacity doubles as
// needed so that each write finds at least max(n, DefaultBufferSize) bytes of
// free space. Data already written are preserved across growth.
//
// A Buffer records the first error reported by a write, and reports it for all
// subsequent writes.
type Buffer struct {
	buf   []byte
	limit int // 0 means no limit
	err   error
}

// NewBuffer constructs an empty Buffer with the given initial capacity.
// If size ≤ 0, DefaultBufferSize is used.
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{buf: make([]byte, 0, size)}
}

// SetLimit sets the maximum number of bytes b may hold. A limit ≤ 0 means no
// limit. It does not affect data already written.
func (b *Buffer) SetLimit(n int) { b.limit = max(n, 0) }

// Grow ensures that b has room for at least max(n, DefaultBufferSize) more
// bytes, doubling its capacity as often as necessary. If a limit is set, the
// capacity is capped at the limit, and Grow reports ErrBufferLimit if n more
// bytes would not fit.
func (b *Buffer) Grow(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid growth %d", n)
	}
	used := len(b.buf)
	if b.limit > 0 && used+n > b.limit {
		return fmt.Errorf("%w: %d + %d > %d bytes", ErrBufferLimit, used, n, b.limit)
	}
	want := max(n, DefaultBufferSize)
	if cap(b.buf)-used >= want {
		return nil
	}
	c := max(cap(b.buf), 1)
	for c-used < want {
		c *= 2
	}
	if b.limit > 0 {
		c = min(c, b.limit)
		if c <= cap(b.buf) {
			return nil // already at the limit, and n bytes fit
		}
	}
	nb := make([]byte, used, c)
	copy(nb, b.buf)
	b.buf = nb
	return nil
}

// Write appends p to the buffer, growing it first if necessary.
// It satisfies io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	if err := b.Grow(len(p)); err != nil {
		b.err = err
		return 0, err
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Bytes returns the contents of b. The slice is valid until the next write.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len reports the number of bytes written to b.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap reports the current capacity of b.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Err reports the first error recorded by a write to b, or nil.
func (b *Buffer) Err() error { return b.err }

// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escaping of scalar text for the event notation.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	0:    '0',
	'\b': 'b',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote escapes src so that it occupies a single line of event notation.
// Backslashes and control characters are replaced by backslash escapes; all
// other text, including non-ASCII runes, is copied unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n = 1
		}
		switch {
		case r == utf8.RuneError && n == 1:
			// Invalid encoding: keep the raw byte.
			putByte(src.At(0))
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				putByte('\\', b)
			} else {
				putByte('\\', 'x', hexDigit[int(r>>4)], hexDigit[int(r&15)])
			}
		case r == '\\':
			putByte('\\', '\\')
		case r == 0x7f:
			putByte('\\', 'x', '7', 'f')
		default:
			var rbuf [utf8.UTFMax]byte
			n := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:n]...)
		}
		src = src.SliceFrom(n)
	}
	return buf
}

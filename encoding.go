// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tailscale/hujson"
)

// Encoding is the text encoding of a YAML input stream.
type Encoding byte

// Constants defining the supported encodings.
const (
	UTF8    Encoding = iota // UTF-8 (default)
	UTF16LE                 // UTF-16, little-endian
	UTF16BE                 // UTF-16, big-endian
)

var encStr = [...]string{
	UTF8:    "utf-8",
	UTF16LE: "utf-16le",
	UTF16BE: "utf-16be",
}

func (e Encoding) String() string {
	if int(e) < len(encStr) {
		return encStr[e]
	}
	return fmt.Sprintf("Encoding(%d)", byte(e))
}

// ParseEncoding returns the Encoding named by s. Names are matched without
// regard to case, and the hyphen is optional ("utf8", "UTF-16LE").
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "") {
	case "", "utf8":
		return UTF8, nil
	case "utf16le":
		return UTF16LE, nil
	case "utf16be":
		return UTF16BE, nil
	}
	return 0, fmt.Errorf("unknown encoding %q", s)
}

var (
	bomLE = []byte{0xff, 0xfe}
	bomBE = []byte{0xfe, 0xff}
)

// prepare returns data in a form the parser will decode as encoding e.
// UTF-16 input without a byte-order mark has one added.
func (e Encoding) prepare(data []byte) ([]byte, error) {
	var bom []byte
	switch e {
	case UTF8:
		return data, nil
	case UTF16LE:
		bom = bomLE
	case UTF16BE:
		bom = bomBE
	default:
		return nil, fmt.Errorf("unsupported encoding %v", e)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("invalid %v input: odd length %d", e, len(data))
	}
	if bytes.HasPrefix(data, bom) {
		return data, nil
	}
	return append(bytes.Clone(bom), data...), nil
}

// standardizeJWCC converts JSON with commas and comments into standard JSON.
func standardizeJWCC(data []byte) ([]byte, error) {
	return hujson.Standardize(data)
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based; 0 means unknown
	Column int // offset of column in line, 0-based
}

// IsValid reports whether lc denotes a known position.
func (lc LineCol) IsValid() bool { return lc.Line > 0 }

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

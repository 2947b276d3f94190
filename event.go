// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import (
	"strings"

	"github.com/creachadair/ytree/internal/escape"
	"go4.org/mem"
)

// Kind is the type of a structural event in a YAML event stream.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid       Kind = iota // invalid event
	StreamStart               // start of the stream
	StreamEnd                 // end of the stream
	DocumentStart             // start of a document
	DocumentEnd               // end of a document
	Scalar                    // a scalar value
	Alias                     // an alias (*name) to an anchored node
	SequenceStart             // start of a sequence
	SequenceEnd               // end of a sequence
	MappingStart              // start of a mapping
	MappingEnd                // end of a mapping
)

var kindStr = [...]string{
	Invalid:       "invalid event",
	StreamStart:   "stream start",
	StreamEnd:     "stream end",
	DocumentStart: "document start",
	DocumentEnd:   "document end",
	Scalar:        "scalar",
	Alias:         "alias",
	SequenceStart: "sequence start",
	SequenceEnd:   "sequence end",
	MappingStart:  "mapping start",
	MappingEnd:    "mapping end",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// delta reports the change in nesting depth caused by an event of kind k.
func (k Kind) delta() int {
	switch k {
	case SequenceStart, MappingStart:
		return 1
	case SequenceEnd, MappingEnd:
		return -1
	case Invalid, StreamStart, StreamEnd, DocumentStart, DocumentEnd, Scalar, Alias:
		return 0
	}
	return 0 // unknown kinds do not affect nesting
}

// BeginsNode reports whether an event of kind k is the first event of a node:
// a scalar, an alias, or the start of a sequence or mapping.
func (k Kind) BeginsNode() bool {
	return k == Scalar || k == Alias || k == SequenceStart || k == MappingStart
}

// Style is the presentation style of a node. Scalars use the scalar styles;
// sequences and mappings use Block or Flow.
type Style byte

// Constants defining the valid Style values.
const (
	Any          Style = iota // no style recorded
	Plain                     // plain scalar
	SingleQuoted              // 'single-quoted' scalar
	DoubleQuoted              // "double-quoted" scalar
	Literal                   // |literal block scalar
	Folded                    // >folded block scalar
	Block                     // block collection
	Flow                      // flow collection: [...] or {...}
)

var styleStr = [...]string{
	Any:          "any",
	Plain:        "plain",
	SingleQuoted: "single-quoted",
	DoubleQuoted: "double-quoted",
	Literal:      "literal",
	Folded:       "folded",
	Block:        "block",
	Flow:         "flow",
}

func (s Style) String() string {
	v := int(s)
	if v >= len(styleStr) {
		return styleStr[Any]
	}
	return styleStr[v]
}

// An Event is a single structural unit of a YAML document.
//
// Value holds the text of a Scalar, or the anchor name referenced by an
// Alias. Tag is set only for nodes with an explicit tag in the source, and
// Anchor only for nodes that declare one. Style records the presentation of
// scalars and collections.
type Event struct {
	Kind   Kind
	Value  []byte
	Tag    string
	Anchor string
	Style  Style
	Pos    LineCol
}

// String renders e in the line-oriented notation of the YAML test suite, for
// example "+MAP {}", "=VAL :text" or "=ALI *name".
func (e Event) String() string {
	var sb strings.Builder
	switch e.Kind {
	case StreamStart:
		return "+STR"
	case StreamEnd:
		return "-STR"
	case DocumentStart:
		return "+DOC"
	case DocumentEnd:
		return "-DOC"
	case SequenceEnd:
		return "-SEQ"
	case MappingEnd:
		return "-MAP"
	case SequenceStart:
		sb.WriteString("+SEQ")
		if e.Style == Flow {
			sb.WriteString(" []")
		}
		e.writeProps(&sb)
	case MappingStart:
		sb.WriteString("+MAP")
		if e.Style == Flow {
			sb.WriteString(" {}")
		}
		e.writeProps(&sb)
	case Scalar:
		sb.WriteString("=VAL")
		e.writeProps(&sb)
		sb.WriteByte(' ')
		sb.WriteByte(styleMark(e.Style))
		sb.Write(escape.Quote(mem.B(e.Value)))
	case Alias:
		sb.WriteString("=ALI *")
		sb.Write(e.Value)
	case Invalid:
		return "?"
	}
	return sb.String()
}

func (e Event) writeProps(sb *strings.Builder) {
	if e.Anchor != "" {
		sb.WriteString(" &")
		sb.WriteString(e.Anchor)
	}
	if e.Tag != "" {
		sb.WriteString(" <")
		sb.WriteString(e.Tag)
		sb.WriteByte('>')
	}
}

func styleMark(s Style) byte {
	switch s {
	case SingleQuoted:
		return '\''
	case DoubleQuoted:
		return '"'
	case Literal:
		return '|'
	case Folded:
		return '>'
	}
	return ':'
}

// Events is an ordered sequence of events produced by parsing a single
// document. A well-formed sequence has the shape
//
//	StreamStart, DocumentStart, <root node>, DocumentEnd, StreamEnd
//
// so that the root node begins at offset RootIndex.
type Events []Event

// RootIndex is the offset of the first event of the root node in a
// well-formed event sequence.
const RootIndex = 2

// String renders the events in test-suite notation, one event per line.
func (evs Events) String() string {
	ss := make([]string, len(evs))
	for i, e := range evs {
		ss[i] = e.String()
	}
	return strings.Join(ss, "\n")
}

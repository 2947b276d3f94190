// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Handler handles events from parsing an input stream. If a method reports
// an error, parsing stops and that error is returned to the caller.
// The parser ensures sequences and mappings are correctly balanced.
//
// The Event argument to a Handler method is only valid for the duration of
// that method call. If the method needs to retain the event after it returns,
// it must copy it.
type Handler interface {
	// Begin the document, whose root node follows.
	BeginDocument(ev *Event) error

	// End the document.
	EndDocument(ev *Event) error

	// Begin a new sequence. The event carries the tag, anchor and style.
	BeginSequence(ev *Event) error

	// End the most-recently-opened sequence.
	EndSequence(ev *Event) error

	// Begin a new mapping. Keys and values of the mapping follow in
	// alternation, each a complete node.
	BeginMapping(ev *Event) error

	// End the most-recently-opened mapping.
	EndMapping(ev *Event) error

	// Report a scalar value.
	Scalar(ev *Event) error

	// Report an alias to an anchored node. Aliases are not resolved.
	Alias(ev *Event) error

	// EndOfInput reports the end of the input stream.
	EndOfInput(ev *Event)
}

var discardLogger = slog.New(slog.DiscardHandler)

// Stream is a stream parser that consumes a single YAML document and delivers
// events to a Handler corresponding with its structure.
type Stream struct {
	r    io.Reader
	enc  Encoding
	jwcc bool // standardize JWCC input before parsing
	log  *slog.Logger
}

// NewStream constructs a new Stream that consumes input from r.
// By default the input is expected to be UTF-8.
func NewStream(r io.Reader) *Stream { return &Stream{r: r, log: discardLogger} }

// SetEncoding declares the text encoding of the input.
func (s *Stream) SetEncoding(e Encoding) { s.enc = e }

// AllowJWCC configures the stream to accept (true) or reject (false) JSON
// with commas and comments. When enabled, the input is converted to standard
// JSON, which is valid YAML, before it is parsed.
func (s *Stream) AllowJWCC(ok bool) { s.jwcc = ok }

// SetLogger sets the logger used for diagnostics. A nil logger discards.
func (s *Stream) SetLogger(lg *slog.Logger) {
	if lg == nil {
		lg = discardLogger
	}
	s.log = lg
}

func (s *Stream) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *SyntaxError:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// Parse parses the input stream and delivers events to h until either an error
// occurs or the input is exhausted. In case of a syntax error, the returned
// error has type [*SyntaxError]. The stream start is implicit: the first
// method called on h is BeginDocument, or EndOfInput for an empty stream.
func (s *Stream) Parse(h Handler) (err error) {
	defer s.recoverParseError(&err)

	data, err := s.input()
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err == io.EOF {
		h.EndOfInput(&Event{Kind: StreamEnd})
		return nil
	} else if err != nil {
		s.syntaxError(err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		return fmt.Errorf("%w: second document at line %d", ErrMultipleDocuments, extra.Line)
	} else if err != io.EOF {
		s.syntaxError(err)
	}

	s.parseNode(h, &doc)
	h.EndOfInput(&Event{Kind: StreamEnd})
	return nil
}

// Events parses the input stream and returns its complete event sequence,
// beginning with StreamStart and ending with StreamEnd. On error, no events
// are returned.
func (s *Stream) Events() (Events, error) {
	el := &eventList{evs: Events{{Kind: StreamStart}}}
	if err := s.Parse(el); err != nil {
		s.log.Debug("parse failed", "error", err)
		return nil, err
	}
	s.log.Debug("parsed document", "events", len(el.evs))
	return el.evs, nil
}

// Parse parses a single UTF-8 YAML document from data and returns its events.
func Parse(data []byte) (Events, error) {
	return NewStream(bytes.NewReader(data)).Events()
}

// MustParse is as Parse, but panics if the input cannot be parsed.
// It is intended for tests and static initializers.
func MustParse(text string) Events {
	evs, err := Parse([]byte(text))
	if err != nil {
		panic(fmt.Sprintf("ytree: parse %q: %v", text, err))
	}
	return evs
}

func (s *Stream) input() ([]byte, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if s.jwcc {
		if s.enc != UTF8 {
			return nil, fmt.Errorf("JWCC input must be %v, not %v", UTF8, s.enc)
		}
		std, err := standardizeJWCC(data)
		if err != nil {
			return nil, &SyntaxError{Message: err.Error(), err: err}
		}
		data = std
	}
	return s.enc.prepare(data)
}

// parseNode delivers the events for n and its descendants to h.
func (s *Stream) parseNode(h Handler, n *yaml.Node) {
	ev := nodeEvent(n)
	switch n.Kind {
	case yaml.DocumentNode:
		ev.Kind = DocumentStart
		s.checkError(h.BeginDocument(&ev))
		for _, c := range n.Content {
			s.parseNode(h, c)
		}
		s.checkError(h.EndDocument(&Event{Kind: DocumentEnd}))
	case yaml.SequenceNode:
		ev.Kind = SequenceStart
		s.checkError(h.BeginSequence(&ev))
		for _, c := range n.Content {
			s.parseNode(h, c)
		}
		s.checkError(h.EndSequence(&Event{Kind: SequenceEnd}))
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			s.checkError(malformedf("mapping at line %d has %d children", n.Line, len(n.Content)))
		}
		ev.Kind = MappingStart
		s.checkError(h.BeginMapping(&ev))
		for _, c := range n.Content {
			s.parseNode(h, c)
		}
		s.checkError(h.EndMapping(&Event{Kind: MappingEnd}))
	case yaml.ScalarNode:
		ev.Kind = Scalar
		s.checkError(h.Scalar(&ev))
	case yaml.AliasNode:
		ev.Kind = Alias
		s.checkError(h.Alias(&ev))
	default:
		s.checkError(malformedf("unknown node kind %d at line %d", n.Kind, n.Line))
	}
}

// nodeEvent returns an event carrying the properties of n. The caller is
// responsible for setting the Kind.
func nodeEvent(n *yaml.Node) Event {
	ev := Event{
		Anchor: n.Anchor,
		Pos:    LineCol{Line: n.Line, Column: max(n.Column-1, 0)},
	}
	if n.Style&yaml.TaggedStyle != 0 {
		ev.Tag = n.Tag
	}
	switch n.Kind {
	case yaml.ScalarNode:
		ev.Value = []byte(n.Value)
		switch {
		case n.Style&yaml.DoubleQuotedStyle != 0:
			ev.Style = DoubleQuoted
		case n.Style&yaml.SingleQuotedStyle != 0:
			ev.Style = SingleQuoted
		case n.Style&yaml.LiteralStyle != 0:
			ev.Style = Literal
		case n.Style&yaml.FoldedStyle != 0:
			ev.Style = Folded
		default:
			ev.Style = Plain
		}
	case yaml.AliasNode:
		ev.Value = []byte(n.Value)
	case yaml.SequenceNode, yaml.MappingNode:
		if n.Style&yaml.FlowStyle != 0 {
			ev.Style = Flow
		} else {
			ev.Style = Block
		}
	}
	return ev
}

func (s *Stream) syntaxError(err error) {
	panic(newSyntaxError(err))
}

func (s *Stream) checkError(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }

// An eventList is a Handler that records all the events it receives.
type eventList struct{ evs Events }

func (l *eventList) add(ev *Event) error { l.evs = append(l.evs, *ev); return nil }

func (l *eventList) BeginDocument(ev *Event) error { return l.add(ev) }
func (l *eventList) EndDocument(ev *Event) error   { return l.add(ev) }
func (l *eventList) BeginSequence(ev *Event) error { return l.add(ev) }
func (l *eventList) EndSequence(ev *Event) error   { return l.add(ev) }
func (l *eventList) BeginMapping(ev *Event) error  { return l.add(ev) }
func (l *eventList) EndMapping(ev *Event) error    { return l.add(ev) }
func (l *eventList) Scalar(ev *Event) error        { return l.add(ev) }
func (l *eventList) Alias(ev *Event) error         { return l.add(ev) }
func (l *eventList) EndOfInput(ev *Event)          { l.add(ev) }

// SyntaxError is the concrete type of errors reported by the stream parser.
// The Message is the text reported by the underlying parser.
type SyntaxError struct {
	Location LineCol // Column is not reported by the parser
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.Location.IsValid() {
		return fmt.Sprintf("line %d: %s", s.Location.Line, s.Message)
	}
	return s.Message
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// yamlErrorRE matches the "yaml: line N: message" form of parser errors.
var yamlErrorRE = regexp.MustCompile(`(?s)^yaml: line (\d+): (.*)$`)

func newSyntaxError(err error) *SyntaxError {
	msg := err.Error()
	se := &SyntaxError{Message: msg, err: err}
	if m := yamlErrorRE.FindStringSubmatch(msg); m != nil {
		se.Location.Line, _ = strconv.Atoi(m[1])
		se.Message = m[2]
	} else if t, ok := strings.CutPrefix(msg, "yaml: "); ok {
		se.Message = t
	}
	if se.Message == "" {
		se.Message = "invalid YAML input"
	}
	return se
}

// IsSyntaxError reports whether err is or wraps a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

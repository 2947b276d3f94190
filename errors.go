// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed reports that an event sequence does not have the shape
	// produced by a well-formed parse. It indicates a disagreement between
	// the parser and the indexer, not bad input; errors with this cause are
	// wrapped with details of the offending event.
	ErrMalformed = errors.New("malformed document")

	// ErrMultipleDocuments is reported when the input contains more than one
	// YAML document.
	ErrMultipleDocuments = errors.New("multiple documents are not supported")

	// ErrNotSequence is matched by a *TypeError reporting that a
	// sequence-only operation was applied to some other kind of node.
	ErrNotSequence = errors.New("not a sequence")
)

func malformedf(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(msg, args...))
}

// A TypeError reports that an operation was applied to a node of the wrong
// type. This is an ordinary validation failure, not a defect.
type TypeError struct {
	Op   string     // the name of the operation
	Want []NodeType // the types the operation accepts
	Got  NodeType   // the type of the node supplied
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	ws := make([]string, len(e.Want))
	for i, w := range e.Want {
		ws[i] = w.String()
	}
	return fmt.Sprintf("%s: got %s, want %s", e.Op, e.Got, strings.Join(ws, " or "))
}

// Is reports whether target is ErrNotSequence and e rejected a non-sequence
// for an operation that accepts only sequences.
func (e *TypeError) Is(target error) bool {
	return target == ErrNotSequence && len(e.Want) == 1 && e.Want[0] == SequenceType
}

// EmitErrorKind classifies the failures reported by an *EmitError.
type EmitErrorKind byte

// Constants defining the valid EmitErrorKind values.
const (
	EmitMemory  EmitErrorKind = iota + 1 // the output buffer could not grow
	EmitWriter                           // writing to the output failed
	EmitEmitter                          // the serializer reached an invalid state
)

var emitKindStr = [...]string{
	EmitMemory:  "memory",
	EmitWriter:  "writer",
	EmitEmitter: "emitter",
}

func (k EmitErrorKind) String() string {
	if int(k) < len(emitKindStr) && emitKindStr[k] != "" {
		return emitKindStr[k]
	}
	return "unknown"
}

// An EmitError reports a failure to re-serialize a node. The Kind records
// where the failure originated.
type EmitError struct {
	Kind EmitErrorKind

	err error
}

// Error satisfies the error interface.
func (e *EmitError) Error() string {
	return fmt.Sprintf("emit failed (%s): %v", e.Kind, e.err)
}

// Unwrap supports error wrapping.
func (e *EmitError) Unwrap() error { return e.err }

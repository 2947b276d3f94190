// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ytree indexes the event stream of a parsed YAML document and
// extracts individual nodes from it as standalone YAML text.
//
// # Parsing
//
// The Stream type parses a single YAML document and reports its structure by
// calling methods on a Handler. In case of error, parsing is terminated and an
// error of concrete type *ytree.SyntaxError is returned.
//
//	s := ytree.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Most callers want the complete event sequence instead, which is returned by
// the Parse function and the Events method of a Stream:
//
//	evs, err := ytree.Parse(data)
//
// A well-formed sequence has the shape
//
//	StreamStart, DocumentStart, <root node>, DocumentEnd, StreamEnd
//
// and the root node begins at offset RootIndex.
//
// # Handlers
//
// The methods of a Handler correspond to the structure of a YAML document:
//
//	YAML node  | Methods                    | Event kinds
//	---------- | -------------------------- | ----------------------------
//	document   | BeginDocument, EndDocument | DocumentStart, DocumentEnd
//	sequence   | BeginSequence, EndSequence | SequenceStart, SequenceEnd
//	mapping    | BeginMapping, EndMapping   | MappingStart, MappingEnd
//	scalar     | Scalar                     | Scalar
//	alias      | Alias                      | Alias
//	--         | EndOfInput                 | StreamEnd
//
// # Indexing
//
// The events of a document can be queried without building a tree. Classify
// reports the shape of the root, FindKey locates the value of a key in the
// root mapping, ElementAt locates an element of a sequence, and CountTopLevel
// counts the elements of the root sequence. Each of these scans the events
// once, tracking the nesting depth with a Walker.
//
// # Extraction
//
// Extract re-serializes the node beginning at a given event as a standalone
// document, preserving its tags, anchors and styles:
//
//	pos, ok := ytree.FindKey(evs, "name")
//	if ok {
//	   text, _, err := ytree.Extract(evs, pos)
//	   // ...
//	}
//
// An Iterator visits the elements of a sequence or the pairs of a mapping,
// extracting each one as it is reached.
package ytree

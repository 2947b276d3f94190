// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import "fmt"

// The functions in this file operate on YAML text. Each parses its input
// anew and keeps no state between calls.

// TypeOf reports the type of the root node of the YAML document in data, one
// of "scalar", "sequence" or "mapping".
func TypeOf(data []byte) (string, error) {
	evs, err := Parse(data)
	if err != nil {
		return "", err
	}
	t, err := Classify(evs)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// Length reports the number of top-level elements of the sequence in data.
// If the root is not a sequence, the error matches ErrNotSequence.
func Length(data []byte) (int, error) {
	evs, err := Parse(data)
	if err != nil {
		return 0, err
	}
	return CountTopLevel(evs)
}

// Get returns the canonical text of the value of key in the root mapping of
// data. It reports false if the key is absent or the root is not a mapping.
// Aliases in the value are not resolved; see [Extractor.Extract].
func Get(data []byte, key string) ([]byte, bool, error) {
	evs, err := Parse(data)
	if err != nil {
		return nil, false, err
	}
	pos, ok := FindKey(evs, key)
	if !ok {
		return nil, false, nil
	}
	return Extract(evs, pos)
}

// GetText is as Get, but a scalar value is returned as its plain text rather
// than as YAML. Other values are returned as canonical YAML text.
func GetText(data []byte, key string) (string, bool, error) {
	evs, err := Parse(data)
	if err != nil {
		return "", false, err
	}
	pos, ok := FindKey(evs, key)
	if !ok {
		return "", false, nil
	}
	return nodeText(evs, pos)
}

// GetPath returns the canonical text of the node reached from the root of
// data by following path. Each element of path is a string, selecting the
// value of a key in a mapping, or an int, selecting an element of a sequence
// (negative values count from the end). A step that does not apply to the
// node it reaches reports false rather than an error.
func GetPath(data []byte, path ...any) ([]byte, bool, error) {
	evs, err := Parse(data)
	if err != nil {
		return nil, false, err
	}
	pos, ok, err := walkPath(evs, path)
	if err != nil || !ok {
		return nil, false, err
	}
	return Extract(evs, pos)
}

// Elements returns an iterator over the elements of the sequence, or the
// key/value pairs of the mapping, in data.
func Elements(data []byte) (*Iterator, error) {
	evs, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return NewIterator(evs)
}

func walkPath(evs Events, path []any) (int, bool, error) {
	pos := RootIndex
	if _, err := TypeAt(evs, pos); err != nil {
		return -1, false, err
	}
	for _, step := range path {
		var ok bool
		var err error
		switch t := step.(type) {
		case string:
			if evs[pos].Kind != MappingStart {
				return -1, false, nil
			}
			pos, ok, err = FindKeyAt(evs, pos, t)
		case int:
			if evs[pos].Kind != SequenceStart {
				return -1, false, nil
			}
			pos, ok, err = ElementAt(evs, pos, t)
		default:
			return -1, false, fmt.Errorf("invalid path step %T", step)
		}
		if err != nil || !ok {
			return -1, false, err
		}
	}
	return pos, true, nil
}

// nodeText returns the plain text of the scalar at evs[pos], or the canonical
// text of any other node.
func nodeText(evs Events, pos int) (string, bool, error) {
	if evs[pos].Kind == Scalar {
		return string(evs[pos].Value), true, nil
	}
	out, ok, err := Extract(evs, pos)
	return string(out), ok, err
}

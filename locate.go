// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import "go4.org/mem"

// FindKey returns the index of the first event of the value associated with
// key in the root mapping of evs. Keys are compared byte for byte with the
// text of scalar keys; keys that are not scalars never match.
//
// FindKey reports false if the key is absent or the root is not a mapping.
func FindKey(evs Events, key string) (int, bool) {
	if len(evs) <= RootIndex || evs[RootIndex].Kind != MappingStart {
		return -1, false
	}
	pos, ok, err := FindKeyAt(evs, RootIndex, key)
	if err != nil {
		return -1, false
	}
	return pos, ok
}

// FindKeyAt returns the index of the first event of the value associated with
// key in the mapping beginning at evs[at]. It reports a *TypeError if that
// node is not a mapping. A missing key is not an error.
func FindKeyAt(evs Events, at int, key string) (int, bool, error) {
	t, err := TypeAt(evs, at)
	if err != nil {
		return -1, false, err
	} else if t != MappingType {
		return -1, false, &TypeError{Op: "key", Want: []NodeType{MappingType}, Got: t}
	}

	w := NewWalker(evs, at)
	w.Next()
	wantKey, match := true, false
	for w.Next() {
		if d := w.Depth(); d < 0 {
			return -1, false, malformedf("unbalanced %v at %d", w.Event().Kind, w.Index())
		} else if d == 0 {
			return -1, false, nil // end of mapping
		}
		if w.Entered() != 1 || !w.Event().Kind.BeginsNode() {
			continue
		}
		if wantKey {
			ev := w.Event()
			match = ev.Kind == Scalar && mem.B(ev.Value).EqualString(key)
		} else if match {
			return w.Index(), true, nil
		}
		wantKey = !wantKey
	}
	return -1, false, malformedf("unterminated mapping at %d", at)
}

// ElementAt returns the index of the first event of element n of the sequence
// beginning at evs[at]. A negative n counts backward from the end, so -1 is
// the last element. It reports a *TypeError if that node is not a sequence.
// An index out of range is not an error.
func ElementAt(evs Events, at, n int) (int, bool, error) {
	t, err := TypeAt(evs, at)
	if err != nil {
		return -1, false, err
	} else if t != SequenceType {
		return -1, false, &TypeError{Op: "index", Want: []NodeType{SequenceType}, Got: t}
	}
	if n < 0 {
		size, err := countChildren(evs, at)
		if err != nil {
			return -1, false, err
		}
		n += size
		if n < 0 {
			return -1, false, nil
		}
	}

	pos, seen := -1, 0
	if err := evs.eachChild(at, func(i int) bool {
		if seen == n {
			pos = i
			return false
		}
		seen++
		return true
	}); err != nil {
		return -1, false, err
	}
	return pos, pos >= 0, nil
}

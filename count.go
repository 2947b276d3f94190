// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

// CountTopLevel reports the number of elements in the root sequence of evs.
// If the root is not a sequence, it reports a *TypeError that matches
// ErrNotSequence. Nested nodes are not counted.
func CountTopLevel(evs Events) (int, error) {
	t, err := Classify(evs)
	if err != nil {
		return 0, err
	} else if t != SequenceType {
		return 0, &TypeError{Op: "count", Want: []NodeType{SequenceType}, Got: t}
	}
	return countChildren(evs, RootIndex)
}

// CountAt reports the number of elements of the sequence, or the number of
// key/value pairs of the mapping, beginning at evs[at].
func CountAt(evs Events, at int) (int, error) {
	t, err := TypeAt(evs, at)
	if err != nil {
		return 0, err
	}
	switch t {
	case SequenceType:
		return countChildren(evs, at)
	case MappingType:
		n, err := countChildren(evs, at)
		if err != nil {
			return 0, err
		} else if n%2 != 0 {
			return 0, malformedf("mapping at %d has %d children", at, n)
		}
		return n / 2, nil
	}
	return 0, &TypeError{Op: "count", Want: []NodeType{SequenceType, MappingType}, Got: t}
}

func countChildren(evs Events, at int) (int, error) {
	var n int
	err := evs.eachChild(at, func(int) bool { n++; return true })
	return n, err
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import "bytes"

// An Element is a single item produced by an Iterator.
type Element struct {
	Index int    // position of the element or pair, 0-based
	Key   []byte // for mapping pairs, the key; nil for sequence elements
	Value []byte // the element as canonical YAML text
}

// An Iterator visits the top-level elements of a sequence, or the key/value
// pairs of a mapping, one at a time. Each element is extracted only when the
// iterator reaches it.
//
// For a mapping, the Key of each element is the text of a scalar key, or the
// canonical text of a key that is not a scalar.
type Iterator struct {
	evs     Events
	x       *Extractor
	w       *Walker
	mapping bool

	cur  Element
	next int
	err  error
	done bool
}

// NewIterator constructs an Iterator over the root of evs, which must be a
// sequence or a mapping. Otherwise it reports a *TypeError.
func NewIterator(evs Events) (*Iterator, error) {
	t, err := Classify(evs)
	if err != nil {
		return nil, err
	} else if t != SequenceType && t != MappingType {
		return nil, &TypeError{Op: "iterate", Want: []NodeType{SequenceType, MappingType}, Got: t}
	}
	w := NewWalker(evs, RootIndex)
	w.Next()
	return &Iterator{evs: evs, x: NewExtractor(), w: w, mapping: t == MappingType}, nil
}

// SetExtractor sets the extractor used to render elements.
// A nil extractor uses the default settings.
func (it *Iterator) SetExtractor(x *Extractor) {
	if x == nil {
		x = NewExtractor()
	}
	it.x = x
}

// Next advances it to the next element and reports whether one exists.
// When Next returns false, the caller should check Err.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	start, ok := it.child()
	if !ok {
		return false
	}
	var key []byte
	if it.mapping {
		if it.evs[start].Kind == Scalar {
			key = bytes.Clone(it.evs[start].Value)
		} else if key = it.extract(start); key == nil {
			return false
		}
		keyAt := start
		if start, ok = it.child(); !ok {
			if it.err == nil {
				it.fail(malformedf("key at %d has no value", keyAt))
			}
			return false
		}
	}
	val := it.extract(start)
	if val == nil {
		return false
	}
	it.cur = Element{Index: it.next, Key: key, Value: val}
	it.next++
	return true
}

// Element returns the current element. It is only valid after a call to Next
// that returned true.
func (it *Iterator) Element() Element { return it.cur }

// Err reports the error, if any, that stopped the iteration.
func (it *Iterator) Err() error { return it.err }

// child advances to the start of the next direct child of the root.
func (it *Iterator) child() (int, bool) {
	for it.w.Next() {
		switch d := it.w.Depth(); {
		case d < 0:
			it.fail(malformedf("unbalanced %v at %d", it.w.Event().Kind, it.w.Index()))
			return -1, false
		case d == 0:
			it.done = true
			return -1, false
		case it.w.Entered() == 1 && it.w.Event().Kind.BeginsNode():
			return it.w.Index(), true
		}
	}
	it.fail(malformedf("unterminated root at %d", RootIndex))
	return -1, false
}

func (it *Iterator) extract(start int) []byte {
	out, ok, err := it.x.Extract(it.evs, start)
	if err != nil {
		it.fail(err)
		return nil
	} else if !ok {
		it.fail(malformedf("no output for node at %d", start))
		return nil
	}
	return out
}

func (it *Iterator) fail(err error) {
	it.err = err
	it.done = true
}

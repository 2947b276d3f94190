// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

// A Walker traverses an event sequence from a starting index, tracking the
// nesting depth of sequences and mappings relative to its start. Each call to
// Next advances the walker to the next event.
//
// The depth is updated before Next returns, so when Next lands on the End
// event that closes the starting container, Depth reports 0.
type Walker struct {
	evs   Events
	pos   int // index of the current event
	depth int // depth after the current event
	prev  int // depth before the current event
}

// NewWalker constructs a Walker that visits evs beginning at index start.
// The first call to Next moves to evs[start].
func NewWalker(evs Events, start int) *Walker {
	return &Walker{evs: evs, pos: start - 1}
}

// Next advances w to the next event and reports whether one exists.
func (w *Walker) Next() bool {
	if w.pos+1 >= len(w.evs) || w.pos+1 < 0 {
		w.pos = len(w.evs)
		return false
	}
	w.pos++
	w.prev = w.depth
	w.depth += w.evs[w.pos].Kind.delta()
	return true
}

// Index returns the index of the current event.
func (w *Walker) Index() int { return w.pos }

// Event returns the current event. It is only valid after Next reports true.
func (w *Walker) Event() *Event { return &w.evs[w.pos] }

// Depth returns the nesting depth after the current event.
func (w *Walker) Depth() int { return w.depth }

// Entered returns the nesting depth before the current event, which is the
// depth at which a node begun by the current event lives.
func (w *Walker) Entered() int { return w.prev }

// NodeEnd returns the index of the last event of the node beginning at
// evs[start]. For a scalar or an alias that is start itself; for a sequence or
// mapping it is the index of the matching End event.
func (evs Events) NodeEnd(start int) (int, error) {
	if start < 0 || start >= len(evs) {
		return -1, malformedf("index %d out of range (%d events)", start, len(evs))
	}
	first := evs[start].Kind
	if !first.BeginsNode() {
		return -1, malformedf("event %d (%v) does not begin a node", start, first)
	}
	if first.delta() == 0 {
		return start, nil
	}
	w := NewWalker(evs, start)
	w.Next()
	for w.Next() {
		switch d := w.Depth(); {
		case d < 0:
			return -1, malformedf("unbalanced %v at %d", w.Event().Kind, w.Index())
		case d == 0:
			if last := w.Event().Kind; last != closerOf(first) {
				return -1, malformedf("%v at %d closed by %v at %d", first, start, last, w.Index())
			}
			return w.Index(), nil
		}
	}
	return -1, malformedf("unterminated %v at %d", first, start)
}

func closerOf(k Kind) Kind {
	switch k {
	case SequenceStart:
		return SequenceEnd
	case MappingStart:
		return MappingEnd
	}
	return Invalid
}

// eachChild calls f with the start index of each node directly contained in
// the sequence or mapping beginning at evs[at], in order, until f returns
// false. For a mapping, keys and values are both reported.
func (evs Events) eachChild(at int, f func(i int) bool) error {
	w := NewWalker(evs, at)
	w.Next()
	for w.Next() {
		switch {
		case w.Depth() < 0:
			return malformedf("unbalanced %v at %d", w.Event().Kind, w.Index())
		case w.Depth() == 0:
			return nil
		case w.Entered() == 1 && w.Event().Kind.BeginsNode():
			if !f(w.Index()) {
				return nil
			}
		}
	}
	return malformedf("unterminated %v at %d", evs[at].Kind, at)
}

// Package query implements structural queries over YAML event sequences.
//
// A query describes a syntactic substructure of a YAML document, such as the
// value of a mapping key, a sequence element, or a path through the document.
// Evaluating a query against an event sequence traverses the structure
// described by the query and returns the index of the first event of the
// selected node, without building a tree.
//
// The simplest query is for a "path", a sequence of mapping keys and/or
// sequence indices that describes a path from the root of the document. For
// example, given the document:
//
//	[{a: 1, b: 2}, {c: {d: true}, e: false}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// selects the scalar "true".
package query

import (
	"github.com/creachadair/ytree"
)

// Eval evaluates the given query beginning from the root of evs. It returns
// the index of the first event of the selected node. If the query selects
// nothing, Eval reports false with a nil error; a step applied to a node of
// the wrong type reports a *ytree.TypeError.
func Eval(evs ytree.Events, q Query) (int, bool, error) {
	return EvalAt(evs, ytree.RootIndex, q)
}

// EvalAt evaluates the given query beginning from the node at evs[at].
func EvalAt(evs ytree.Events, at int, q Query) (int, bool, error) {
	if _, err := ytree.TypeAt(evs, at); err != nil {
		return -1, false, err
	}
	return q.eval(evs, at)
}

// A Query describes a traversal of a YAML document.
type Query interface {
	eval(evs ytree.Events, at int) (int, bool, error)
}

// Path traverses a sequence of nested mapping keys or sequence indices from
// the root. If no keys are specified, the root is returned. Each key must be
// a string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return Key(t)
	case int:
		return Index(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

// Key selects the value of the given key in a mapping.
type Key string

func (k Key) eval(evs ytree.Events, at int) (int, bool, error) {
	return ytree.FindKeyAt(evs, at, string(k))
}

// Index selects the element at the given offset in a sequence. Negative
// offsets select from the end of the sequence.
type Index int

func (n Index) eval(evs ytree.Events, at int) (int, bool, error) {
	return ytree.ElementAt(evs, at, int(n))
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to the node selected by the previous
// query in the sequence.
type Seq []Query

func (q Seq) eval(evs ytree.Events, at int) (int, bool, error) {
	cur := at
	for _, sq := range q {
		next, ok, err := sq.eval(evs, cur)
		if err != nil || !ok {
			return -1, false, err
		}
		cur = next
	}
	return cur, true, nil
}

// Alt is a query that selects among a sequence of alternatives. The result of
// the first alternative that selects a node without error is returned. If no
// alternative matches, the query selects nothing.
type Alt []Query

func (q Alt) eval(evs ytree.Events, at int) (int, bool, error) {
	for _, alt := range q {
		if pos, ok, err := alt.eval(evs, at); err == nil && ok {
			return pos, true, nil
		}
	}
	return -1, false, nil
}

// Recur selects the first node, in document order, among the root and its
// descendants for which the query described by keys selects something. The
// arguments have the same constraints as Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

type recQuery struct{ Query }

func (q recQuery) eval(evs ytree.Events, at int) (int, bool, error) {
	end, err := evs.NodeEnd(at)
	if err != nil {
		return -1, false, err
	}
	for i := at; i <= end; i++ {
		if !evs[i].Kind.BeginsNode() {
			continue
		}
		if pos, ok, err := q.Query.eval(evs, i); err == nil && ok {
			return pos, true, nil
		}
	}
	return -1, false, nil
}

package query

import "github.com/creachadair/ytree"

// Exists reports whether the query described by keys selects a node from the
// root of evs. The arguments have the same constraints as Path.
func Exists(evs ytree.Events, keys ...any) bool {
	_, ok, err := Eval(evs, Path(keys...))
	return err == nil && ok
}

// Extract evaluates q against the root of evs and returns the selected node as
// YAML text, as rendered by x. If x == nil, default settings are used.
func Extract(x *ytree.Extractor, evs ytree.Events, q Query) ([]byte, bool, error) {
	pos, ok, err := Eval(evs, q)
	if err != nil || !ok {
		return nil, false, err
	}
	if x == nil {
		x = ytree.NewExtractor()
	}
	return x.Extract(evs, pos)
}

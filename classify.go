// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

// NodeType is the shape of a YAML node.
type NodeType byte

// Constants defining the valid NodeType values. UnknownType is reported only
// together with an error.
const (
	UnknownType  NodeType = iota // not a recognized node
	ScalarType                   // a scalar value
	SequenceType                 // a sequence of nodes
	MappingType                  // a mapping of keys to values
)

var nodeTypeStr = [...]string{
	UnknownType:  "unknown",
	ScalarType:   "scalar",
	SequenceType: "sequence",
	MappingType:  "mapping",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeStr) {
		return nodeTypeStr[t]
	}
	return nodeTypeStr[UnknownType]
}

// Classify reports the type of the root node of evs. Only the event at
// RootIndex is examined.
func Classify(evs Events) (NodeType, error) { return TypeAt(evs, RootIndex) }

// TypeAt reports the type of the node beginning at evs[i].
func TypeAt(evs Events, i int) (NodeType, error) {
	if i < 0 || i >= len(evs) {
		return UnknownType, malformedf("no node at index %d (%d events)", i, len(evs))
	}
	switch k := evs[i].Kind; k {
	case Scalar:
		return ScalarType, nil
	case SequenceStart:
		return SequenceType, nil
	case MappingStart:
		return MappingType, nil
	default:
		return UnknownType, malformedf("event %d is %v, not a node", i, k)
	}
}

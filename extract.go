// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// An Extractor re-serializes individual nodes of an event sequence as
// standalone YAML documents. The zero value is not ready for use; call
// NewExtractor to construct one.
type Extractor struct {
	indent int
	size   int // initial buffer capacity
	limit  int // maximum output size, 0 for none
	log    *slog.Logger
}

// NewExtractor constructs an Extractor with default settings: two-space
// indentation, a DefaultBufferSize initial buffer, and no size limit.
func NewExtractor() *Extractor {
	return &Extractor{indent: 2, size: DefaultBufferSize, log: discardLogger}
}

// SetIndent sets the number of spaces per indentation level. Values outside
// the range 2 to 9 are treated as 2.
func (x *Extractor) SetIndent(n int) {
	if n < 2 || n > 9 {
		n = 2
	}
	x.indent = n
}

// SetInitialSize sets the initial capacity of the output buffer.
func (x *Extractor) SetInitialSize(n int) { x.size = n }

// SetLimit sets the maximum size in bytes of the output. A limit ≤ 0 means no
// limit. Exceeding the limit is reported as an *EmitError with kind EmitMemory.
func (x *Extractor) SetLimit(n int) { x.limit = max(n, 0) }

// SetLogger sets the logger used for diagnostics. A nil logger discards.
func (x *Extractor) SetLogger(lg *slog.Logger) {
	if lg == nil {
		lg = discardLogger
	}
	x.log = lg
}

// Extract re-serializes the node beginning at evs[start] as YAML text, using
// the default settings. See [Extractor.Extract].
func Extract(evs Events, start int) ([]byte, bool, error) {
	return NewExtractor().Extract(evs, start)
}

// Extract re-serializes the node beginning at evs[start] as a standalone YAML
// document. The tags, anchors and styles recorded in the events are kept.
// Aliases are written as-is, without resolving them. If the node contains an
// alias whose anchor lies outside the node, the result does not parse on its
// own: extracting "b" from "a: &x 1\nb: *x" yields "*x\n".
//
// If start is out of range or does not begin a node, or if nothing is
// written, Extract reports false with a nil error. Failures of the serializer
// are reported as an *EmitError.
func (x *Extractor) Extract(evs Events, start int) ([]byte, bool, error) {
	if start < 0 || start >= len(evs) || !evs[start].Kind.BeginsNode() {
		return nil, false, nil
	}
	end, err := evs.NodeEnd(start)
	if err != nil {
		return nil, false, err
	}
	root, err := buildNode(evs[start : end+1])
	if err != nil {
		return nil, false, &EmitError{Kind: EmitEmitter, err: err}
	}

	buf := NewBuffer(x.size)
	buf.SetLimit(x.limit)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(x.indent)

	// For a single implicit document the encoder writes no stream or
	// document markers, so the buffer holds exactly the node text.
	if err := enc.Encode(root); err != nil {
		return nil, false, emitError(buf, err)
	}
	if err := enc.Close(); err != nil {
		return nil, false, emitError(buf, err)
	}

	out := buf.Bytes()
	x.log.Debug("extracted node", "start", start, "end", end,
		"bytes", len(out), "capacity", buf.Cap())
	if len(out) == 0 {
		return nil, false, nil
	}
	return out, true, nil
}

// ExtractTo re-serializes the node beginning at evs[start] and writes the
// result to w. It reports false without writing if there is no result. An
// error writing to w is reported as an *EmitError with kind EmitWriter.
func (x *Extractor) ExtractTo(w io.Writer, evs Events, start int) (bool, error) {
	out, ok, err := x.Extract(evs, start)
	if err != nil || !ok {
		return false, err
	}
	if _, err := w.Write(out); err != nil {
		return false, &EmitError{Kind: EmitWriter, err: err}
	}
	return true, nil
}

// emitError classifies an error reported by the encoder. Errors recorded by
// the buffer take precedence over the encoder's description of them.
func emitError(buf *Buffer, err error) error {
	if berr := buf.Err(); berr != nil {
		if errors.Is(berr, ErrBufferLimit) {
			return &EmitError{Kind: EmitMemory, err: berr}
		}
		return &EmitError{Kind: EmitWriter, err: berr}
	}
	return &EmitError{Kind: EmitEmitter, err: err}
}

// buildNode reconstructs the node spanned by evs, which must be exactly one
// complete node.
func buildNode(evs Events) (*yaml.Node, error) {
	var root *yaml.Node
	var stk []*yaml.Node

	push := func(n *yaml.Node) error {
		if len(stk) == 0 {
			if root != nil {
				return errors.New("extra node after root")
			}
			root = n
		} else {
			top := stk[len(stk)-1]
			top.Content = append(top.Content, n)
		}
		return nil
	}

	for i := range evs {
		ev := &evs[i]
		switch ev.Kind {
		case Scalar:
			if err := push(scalarNode(ev)); err != nil {
				return nil, err
			}
		case Alias:
			if err := push(&yaml.Node{Kind: yaml.AliasNode, Value: string(ev.Value)}); err != nil {
				return nil, err
			}
		case SequenceStart, MappingStart:
			n := collectionNode(ev)
			if err := push(n); err != nil {
				return nil, err
			}
			stk = append(stk, n)
		case SequenceEnd, MappingEnd:
			if len(stk) == 0 {
				return nil, fmt.Errorf("unbalanced %v at offset %d", ev.Kind, i)
			}
			top := stk[len(stk)-1]
			stk = stk[:len(stk)-1]
			if ev.Kind == MappingEnd {
				if top.Kind != yaml.MappingNode {
					return nil, fmt.Errorf("%v closes a sequence at offset %d", ev.Kind, i)
				} else if len(top.Content)%2 != 0 {
					return nil, fmt.Errorf("mapping has a key with no value at offset %d", i)
				}
			} else if top.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%v closes a mapping at offset %d", ev.Kind, i)
			}
		default:
			return nil, fmt.Errorf("unexpected %v at offset %d", ev.Kind, i)
		}
	}
	if len(stk) != 0 {
		return nil, fmt.Errorf("%d unclosed collections", len(stk))
	} else if root == nil {
		return nil, errors.New("no node")
	}
	return root, nil
}

func scalarNode(ev *Event) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: string(ev.Value), Anchor: ev.Anchor}
	setTag(n, ev.Tag)
	switch ev.Style {
	case SingleQuoted:
		n.Style |= yaml.SingleQuotedStyle
	case DoubleQuoted:
		n.Style |= yaml.DoubleQuotedStyle
	case Literal:
		n.Style |= yaml.LiteralStyle
	case Folded:
		n.Style |= yaml.FoldedStyle
	default:
		// An empty plain scalar is null; spell it out so the output is not
		// empty and parses back to the same value.
		if n.Value == "" && n.Tag == "" {
			n.Value = "null"
		}
	}
	return n
}

func collectionNode(ev *Event) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Anchor: ev.Anchor}
	if ev.Kind == MappingStart {
		n.Kind = yaml.MappingNode
	}
	setTag(n, ev.Tag)
	if ev.Style == Flow {
		n.Style |= yaml.FlowStyle
	}
	return n
}

func setTag(n *yaml.Node, tag string) {
	if tag != "" {
		n.Tag = tag
		n.Style |= yaml.TaggedStyle
	}
}

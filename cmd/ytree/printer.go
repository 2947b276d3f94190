package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/ytree"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// A printer writes command results to w, as YAML text or as JSON.
type printer struct {
	w     io.Writer
	json  bool
	color bool

	keyColor  *color.Color
	wordColor *color.Color
	markColor *color.Color
}

func newPrinter(w io.Writer, asJSON, useColor bool) *printer {
	p := &printer{
		w:         w,
		json:      asJSON,
		color:     useColor,
		keyColor:  color.New(color.FgBlue),
		wordColor: color.New(color.FgCyan),
		markColor: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.keyColor, p.wordColor, p.markColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// word writes a single string result on a line by itself.
func (p *printer) word(s string) error {
	if p.json {
		return p.value(s)
	}
	_, err := fmt.Fprintln(p.w, p.wordColor.Sprint(s))
	return err
}

func (p *printer) number(n int) error {
	if p.json {
		return p.value(n)
	}
	return p.word(fmt.Sprint(n))
}

// node writes the YAML text of a node, converting it to JSON if required.
func (p *printer) node(text []byte) error {
	if p.json {
		v, err := jsonValue(text)
		if err != nil {
			return err
		}
		return p.value(v)
	}
	_, err := p.w.Write(highlight(text, p.keyColor))
	return err
}

// element writes one element reported by an iterator. In YAML each element is
// written as a document of its own, with the key of a mapping pair in the
// comment on its separator line.
func (p *printer) element(el ytree.Element, mapping bool) error {
	if p.json {
		if !mapping {
			return p.node(el.Value)
		}
		v, err := jsonValue(el.Value)
		if err != nil {
			return err
		}
		return p.value(map[string]any{"key": string(el.Key), "value": v})
	}
	mark := "---"
	if mapping {
		mark += fmt.Sprintf(" # %q", strings.TrimSuffix(string(el.Key), "\n"))
	}
	if _, err := fmt.Fprintln(p.w, p.markColor.Sprint(mark)); err != nil {
		return err
	}
	return p.node(el.Value)
}

// events writes evs in test-suite notation, or as an array of strings in JSON.
func (p *printer) events(evs ytree.Events) error {
	if p.json {
		ss := make([]string, len(evs))
		for i, e := range evs {
			ss[i] = e.String()
		}
		return p.value(ss)
	}
	for _, e := range evs {
		s := e.String()
		if e.Kind.BeginsNode() {
			_, err := fmt.Fprintln(p.w, s)
			if err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(p.w, p.markColor.Sprint(s)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) value(v any) error {
	var opts []json.EncodeOptionFunc
	if p.color {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}
	data, err := json.MarshalWithOption(v, opts...)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintf(p.w, "%s\n", data)
	return err
}

// jsonValue decodes YAML text into a value that can be encoded as JSON.
func jsonValue(text []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(text, &v); err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return jsonCompat(v), nil
}

// jsonCompat replaces mappings with non-string keys by mappings keyed on the
// text of each key.
func jsonCompat(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = jsonCompat(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = jsonCompat(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = jsonCompat(e)
		}
		return t
	default:
		return v
	}
}

// highlight colors the scalar mapping keys of the YAML text. Key positions
// are taken from the events of text itself, so text that does not parse is
// returned unchanged.
func highlight(text []byte, c *color.Color) []byte {
	evs, err := ytree.Parse(text)
	if err != nil {
		return text
	}
	lines := bytes.SplitAfter(text, []byte("\n"))
	spans := make(map[int][][2]int) // line index → byte spans, in order
	for _, pos := range mappingKeys(evs) {
		ev := &evs[pos]
		i := ev.Pos.Line - 1
		if i < 0 || i >= len(lines) {
			continue
		}
		if lo, hi, ok := keySpan(lines[i], ev); ok {
			spans[i] = append(spans[i], [2]int{lo, hi})
		}
	}
	if len(spans) == 0 {
		return text
	}
	var out bytes.Buffer
	for i, line := range lines {
		prev := 0
		for _, sp := range spans[i] {
			if sp[0] < prev {
				continue
			}
			out.Write(line[prev:sp[0]])
			out.WriteString(c.Sprint(string(line[sp[0]:sp[1]])))
			prev = sp[1]
		}
		out.Write(line[prev:])
	}
	return out.Bytes()
}

// mappingKeys returns the offsets of the scalar events in evs that are keys of
// a mapping.
func mappingKeys(evs ytree.Events) []int {
	type frame struct {
		mapping bool
		n       int // children seen so far
	}
	var stk []frame
	var keys []int
	for i, ev := range evs {
		switch {
		case ev.Kind.BeginsNode():
			if len(stk) != 0 {
				top := &stk[len(stk)-1]
				if top.mapping && top.n%2 == 0 && ev.Kind == ytree.Scalar {
					keys = append(keys, i)
				}
				top.n++
			}
			if ev.Kind == ytree.SequenceStart || ev.Kind == ytree.MappingStart {
				stk = append(stk, frame{mapping: ev.Kind == ytree.MappingStart})
			}
		case ev.Kind == ytree.SequenceEnd || ev.Kind == ytree.MappingEnd:
			if len(stk) != 0 {
				stk = stk[:len(stk)-1]
			}
		}
	}
	return keys
}

// keySpan reports the byte span in line of the text of the key scalar ev.
// Keys that continue past the end of the line are not reported.
func keySpan(line []byte, ev *ytree.Event) (lo, hi int, ok bool) {
	lo, ok = byteColumn(line, ev.Pos.Column)
	if !ok {
		return 0, 0, false
	}
	// Anchors and tags precede the key text.
	for lo < len(line) && (line[lo] == '&' || line[lo] == '!') {
		sp := bytes.IndexByte(line[lo:], ' ')
		if sp < 0 {
			return 0, 0, false
		}
		lo += sp
		for lo < len(line) && line[lo] == ' ' {
			lo++
		}
	}
	switch ev.Style {
	case ytree.Plain:
		v := ev.Value
		if len(v) == 0 || bytes.IndexByte(v, '\n') >= 0 || !bytes.HasPrefix(line[lo:], v) {
			return 0, 0, false
		}
		return lo, lo + len(v), true
	case ytree.SingleQuoted, ytree.DoubleQuoted:
		q := byte('\'')
		if ev.Style == ytree.DoubleQuoted {
			q = '"'
		}
		if lo >= len(line) || line[lo] != q {
			return 0, 0, false
		}
		for i := lo + 1; i < len(line); i++ {
			switch {
			case q == '"' && line[i] == '\\':
				i++
			case line[i] != q:
			case q == '\'' && i+1 < len(line) && line[i+1] == '\'':
				i++ // doubled quote
			default:
				return lo, i + 1, true
			}
		}
	}
	return 0, 0, false
}

// byteColumn converts a column offset in characters to a byte offset in line.
func byteColumn(line []byte, col int) (int, bool) {
	off := 0
	for ; col > 0; col-- {
		if off >= len(line) {
			return 0, false
		}
		_, n := utf8.DecodeRune(line[off:])
		off += n
	}
	return off, off < len(line)
}

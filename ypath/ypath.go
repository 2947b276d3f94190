// Package ypath implements a parser for path expressions that select a single
// node of a YAML document.
package ypath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/ytree/query"
)

/*
Grammar:

  expr = [root] steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" INDEX "]"
  step = "[" QNAME "]"
  name = WORD
  name = QNAME

  WORD = RE `[\w-]+`
 QNAME = RE `'([^']|'')*'`   -- '' stands for a single quote
 INDEX = RE `-?\d+`

An expression that does not begin with "$", "." or "[" is treated as if it
began with "$.", so "a.b[0]" is the same as "$.a.b[0]".
*/

// An Expr is a parsed path expression.
type Expr []Step

// Parse parses s as a path expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok && t != "" && t[0] != '.' && t[0] != '[' {
		t = "." + t
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", len(s)-len(t), err)
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

// MustParse is as Parse, but panics if s is not a valid expression.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ypath: %v", err))
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member:
			if s.Quoted {
				fmt.Fprintf(&buf, "[%s]", quote(s.Name))
			} else {
				fmt.Fprint(&buf, ".", s.Name)
			}
		case Recur:
			if s.Quoted {
				fmt.Fprint(&buf, "..", quote(s.Name))
			} else {
				fmt.Fprint(&buf, "..", s.Name)
			}
		case Index:
			fmt.Fprintf(&buf, "[%d]", s.N)
		}
	}
	return buf.String()
}

// Query returns a query that selects the node described by e.
func (e Expr) Query() query.Query {
	q := make(query.Seq, 0, len(e))
	for _, s := range e {
		switch s.Op {
		case Member:
			q = append(q, query.Key(s.Name))
		case Recur:
			q = append(q, query.Recur(s.Name))
		case Index:
			q = append(q, query.Index(s.N))
		}
	}
	return q
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		name, quoted, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid ..name: %w", err)
		}
		return Step{Op: Recur, Name: name, Quoted: quoted}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		name, quoted, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		}
		return Step{Op: Member, Name: name, Quoted: quoted}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var out Step
		var u string
		if m := indexRE.FindStringSubmatch(t); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return Step{}, t, fmt.Errorf("invalid index: %w", err)
			}
			out, u = Step{Op: Index, N: n}, t[len(m[0]):]
		} else if name, ok, rest := parseQuoted(t); ok {
			out, u = Step{Op: Member, Name: name, Quoted: true}, rest
		} else {
			return Step{}, t, fmt.Errorf("invalid subscript: %q", t)
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, errors.New("missing close bracket")
		}
		return out, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (name string, quoted bool, rest string, _ error) {
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], false, s[len(m[0]):], nil
	}
	if name, ok, rest := parseQuoted(s); ok {
		return name, true, rest, nil
	}
	return "", false, s, errors.New("invalid name")
}

func parseQuoted(s string) (name string, ok bool, rest string) {
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return strings.ReplaceAll(m[1], "''", "'"), true, s[len(m[0]):]
	}
	return "", false, s
}

func quote(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

var (
	wordRE  = regexp.MustCompile(`^([\w-]+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'((?:[^']|'')*)'`)
)

// An Op is a path operator.
type Op byte

// Constants defining the valid Op values.
const (
	Invalid Op = iota // invalid operator
	Member            // mapping key lookup
	Index             // sequence index lookup
	Recur             // recursive key lookup (..)
)

var opText = map[Op]string{
	Invalid: "invalid",
	Member:  "member",
	Index:   "index",
	Recur:   "recur",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a path expression.
type Step struct {
	Op     Op
	Name   string // for Member and Recur
	N      int    // for Index
	Quoted bool   // whether Name was written in quotes
}

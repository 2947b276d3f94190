// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree_test

import (
	"errors"
	"testing"

	"github.com/creachadair/ytree"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  ytree.NodeType
	}{
		{"hello", ytree.ScalarType},
		{"'quoted'", ytree.ScalarType},
		{"~", ytree.ScalarType},
		{"[]", ytree.SequenceType},
		{"- a\n- b\n", ytree.SequenceType},
		{"{}", ytree.MappingType},
		{"a: 1\n", ytree.MappingType},
		{"!!set {a, b}", ytree.MappingType},
	}
	for _, test := range tests {
		got, err := ytree.Classify(ytree.MustParse(test.input))
		if err != nil {
			t.Errorf("Classify(%q): unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Classify(%q): got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestClassifyMalformed(t *testing.T) {
	tests := []struct {
		name string
		evs  ytree.Events
	}{
		{"Nil", nil},
		{"EmptyStream", ytree.MustParse("")},
		{"ShortSequence", ytree.Events{{Kind: ytree.StreamStart}, {Kind: ytree.DocumentStart}}},
		{"Alias", ytree.Events{
			{Kind: ytree.StreamStart}, {Kind: ytree.DocumentStart},
			{Kind: ytree.Alias, Value: []byte("x")},
		}},
		{"EndAtRoot", ytree.Events{
			{Kind: ytree.StreamStart}, {Kind: ytree.DocumentStart},
			{Kind: ytree.MappingEnd},
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ytree.Classify(test.evs)
			if !errors.Is(err, ytree.ErrMalformed) {
				t.Errorf("Classify: got (%v, %v), want %v", got, err, ytree.ErrMalformed)
			}
			if got != ytree.UnknownType {
				t.Errorf("Classify: got type %v, want %v", got, ytree.UnknownType)
			}
		})
	}
}

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		t    ytree.NodeType
		want string
	}{
		{ytree.ScalarType, "scalar"},
		{ytree.SequenceType, "sequence"},
		{ytree.MappingType, "mapping"},
		{ytree.UnknownType, "unknown"},
		{ytree.NodeType(100), "unknown"},
	}
	for _, test := range tests {
		if got := test.t.String(); got != test.want {
			t.Errorf("String(%d): got %q, want %q", test.t, got, test.want)
		}
	}
}

func TestFindKey(t *testing.T) {
	tests := []struct {
		input string
		key   string
		want  int // -1 for not found
	}{
		{nestedDoc, "a", 4},
		{nestedDoc, "c", 12},
		{nestedDoc, "b", -1}, // nested keys are not visible
		{nestedDoc, "d", -1}, // values are not keys
		{nestedDoc, "", -1},

		// A value equal to the key sought must not match.
		{"x: y\ny: z\n", "y", 6},

		// Keys are compared by their text, not their resolved value.
		{"1: one\n'2': two\n", "2", 6},
		{"1: one\n'2': two\n", "1", 4},

		// Complex keys are skipped, and do not disturb the alternation.
		{"? [a]\n: 1\na: 2\n", "a", 8},
		{"? {k: v}\n: [1, 2]\nk: 3\n", "k", 12},

		{"{}", "a", -1},
		{"[a, b]", "a", -1},
		{"a", "a", -1},
	}
	for _, test := range tests {
		evs := ytree.MustParse(test.input)
		got, ok := ytree.FindKey(evs, test.key)
		if ok != (test.want >= 0) || got != test.want {
			t.Errorf("FindKey(%q, %q): got (%d, %v), want %d", test.input, test.key, got, ok, test.want)
		}
	}

	// An empty event sequence has no keys.
	if got, ok := ytree.FindKey(nil, "a"); ok {
		t.Errorf("FindKey(nil): got %d, want not found", got)
	}
}

func TestFindKeyAt(t *testing.T) {
	evs := ytree.MustParse(nestedDoc)

	if got, ok, err := ytree.FindKeyAt(evs, 6, "b"); err != nil || !ok || got != 8 {
		t.Errorf("FindKeyAt(6, b): got (%d, %v, %v), want 8", got, ok, err)
	}
	if got, ok, err := ytree.FindKeyAt(evs, 6, "a"); err != nil || ok {
		t.Errorf("FindKeyAt(6, a): got (%d, %v, %v), want not found", got, ok, err)
	}

	_, _, err := ytree.FindKeyAt(evs, 4, "a")
	var te *ytree.TypeError
	if !errors.As(err, &te) {
		t.Fatalf("FindKeyAt(4): got error %v, want *TypeError", err)
	}
	if te.Got != ytree.SequenceType {
		t.Errorf("TypeError: got %v, want %v", te.Got, ytree.SequenceType)
	}
	if _, _, err := ytree.FindKeyAt(evs, 14, "a"); !errors.Is(err, ytree.ErrMalformed) {
		t.Errorf("FindKeyAt(14): got error %v, want %v", err, ytree.ErrMalformed)
	}
}

func TestElementAt(t *testing.T) {
	evs := ytree.MustParse(nestedDoc)
	tests := []struct {
		n, want int
	}{
		{0, 5},
		{1, 6},
		{2, -1},
		{-1, 6},
		{-2, 5},
		{-3, -1},
	}
	for _, test := range tests {
		got, ok, err := ytree.ElementAt(evs, 4, test.n)
		if err != nil {
			t.Errorf("ElementAt(4, %d): unexpected error: %v", test.n, err)
		} else if ok != (test.want >= 0) || got != test.want {
			t.Errorf("ElementAt(4, %d): got (%d, %v), want %d", test.n, got, ok, test.want)
		}
	}

	var te *ytree.TypeError
	if _, _, err := ytree.ElementAt(evs, ytree.RootIndex, 0); !errors.As(err, &te) {
		t.Errorf("ElementAt(root): got error %v, want *TypeError", err)
	}
	if got, ok, err := ytree.ElementAt(ytree.MustParse("[]"), ytree.RootIndex, 0); err != nil || ok {
		t.Errorf("ElementAt(empty): got (%d, %v, %v), want not found", got, ok, err)
	}
}

func TestCountTopLevel(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"[]", 0},
		{"[1]", 1},
		{"- 1\n- 2\n- 3\n", 3},
		{"- &x 1\n- [2, 3]\n- {a: b, c: [d]}\n- *x\n", 4},
		{"- - - deep\n", 1},
		{"- a:\n- ~\n- ''\n", 3},
	}
	for _, test := range tests {
		got, err := ytree.CountTopLevel(ytree.MustParse(test.input))
		if err != nil {
			t.Errorf("CountTopLevel(%q): unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("CountTopLevel(%q): got %d, want %d", test.input, got, test.want)
		}
	}
}

func TestCountTopLevelErrors(t *testing.T) {
	for _, input := range []string{"a: 1", "{}", "scalar", "'[1, 2]'"} {
		evs := ytree.MustParse(input)
		before := evs.String()

		got, err := ytree.CountTopLevel(evs)
		if !errors.Is(err, ytree.ErrNotSequence) {
			t.Errorf("CountTopLevel(%q): got (%d, %v), want %v", input, got, err, ytree.ErrNotSequence)
		}
		var te *ytree.TypeError
		if !errors.As(err, &te) || te.Op != "count" {
			t.Errorf("CountTopLevel(%q): got error %v, want count *TypeError", input, err)
		}
		if after := evs.String(); after != before {
			t.Errorf("CountTopLevel(%q) modified its input", input)
		}
	}

	if _, err := ytree.CountTopLevel(ytree.MustParse("")); !errors.Is(err, ytree.ErrMalformed) {
		t.Errorf("CountTopLevel(empty): got error %v, want %v", err, ytree.ErrMalformed)
	}
}

func TestCountAt(t *testing.T) {
	evs := ytree.MustParse(nestedDoc)
	tests := []struct {
		at, want int
	}{
		{2, 2}, // root mapping: two pairs
		{4, 2}, // [1, {b: 2}]
		{6, 1}, // {b: 2}
	}
	for _, test := range tests {
		got, err := ytree.CountAt(evs, test.at)
		if err != nil {
			t.Errorf("CountAt(%d): unexpected error: %v", test.at, err)
		} else if got != test.want {
			t.Errorf("CountAt(%d): got %d, want %d", test.at, got, test.want)
		}
	}

	var te *ytree.TypeError
	if _, err := ytree.CountAt(evs, 5); !errors.As(err, &te) || te.Got != ytree.ScalarType {
		t.Errorf("CountAt(scalar): got error %v, want *TypeError", err)
	} else if errors.Is(err, ytree.ErrNotSequence) {
		t.Errorf("CountAt(scalar): error %v should not match %v", err, ytree.ErrNotSequence)
	}
}

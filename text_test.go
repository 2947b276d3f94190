// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ytree_test

import (
	"errors"
	"testing"

	"github.com/creachadair/ytree"
)

func TestScenarios(t *testing.T) {
	t.Run("A", func(t *testing.T) {
		data := []byte("a: 1\nb: 2\n")
		if got, err := ytree.TypeOf(data); err != nil || got != "mapping" {
			t.Errorf("TypeOf: got (%q, %v), want mapping", got, err)
		}
		text, ok, err := ytree.Get(data, "b")
		if err != nil || !ok {
			t.Fatalf("Get(b): got (%v, %v)", ok, err)
		}
		evs, err := ytree.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got, err := ytree.Classify(evs); err != nil || got != ytree.ScalarType {
			t.Errorf("Classify(%q): got (%v, %v), want scalar", text, got, err)
		}
		if got := string(evs[ytree.RootIndex].Value); got != "2" {
			t.Errorf("Value of %q: got %q, want 2", text, got)
		}
	})

	t.Run("B", func(t *testing.T) {
		data := []byte("- 1\n- 2\n- 3\n")
		if got, err := ytree.TypeOf(data); err != nil || got != "sequence" {
			t.Errorf("TypeOf: got (%q, %v), want sequence", got, err)
		}
		if got, err := ytree.Length(data); err != nil || got != 3 {
			t.Errorf("Length: got (%d, %v), want 3", got, err)
		}
	})

	t.Run("C", func(t *testing.T) {
		data := []byte("a:\n  - 1\n  - 2\nb: 3\n")
		if got, err := ytree.Length(data); !errors.Is(err, ytree.ErrNotSequence) {
			t.Errorf("Length: got (%d, %v), want %v", got, err, ytree.ErrNotSequence)
		}
		text, ok, err := ytree.Get(data, "a")
		if err != nil || !ok {
			t.Fatalf("Get(a): got (%v, %v)", ok, err)
		}
		if got, err := ytree.Length(text); err != nil || got != 2 {
			t.Errorf("Length(%q): got (%d, %v), want 2", text, got, err)
		}
	})

	t.Run("D", func(t *testing.T) {
		data := []byte("x: 1")
		if got, ok, err := ytree.Get(data, "y"); err != nil || ok || got != nil {
			t.Errorf("Get(y): got (%q, %v, %v), want not found", got, ok, err)
		}
		if pos, ok := ytree.FindKey(ytree.MustParse(string(data)), "y"); ok {
			t.Errorf("FindKey(y): got %d, want not found", pos)
		}
	})

	t.Run("E", func(t *testing.T) {
		_, err := ytree.TypeOf([]byte("a: [1, 2"))
		var se *ytree.SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("TypeOf: got error %v, want *SyntaxError", err)
		}
		if se.Message == "" {
			t.Error("SyntaxError has an empty message")
		}
	})
}

func TestGetText(t *testing.T) {
	const data = "name: 'ytree'\nlist: [1, 2]\nblock: |\n  one\n  two\nnull:\n"
	tests := []struct {
		key, want string
		ok        bool
	}{
		{"name", "ytree", true},
		{"list", "[1, 2]\n", true},
		{"block", "one\ntwo\n", true},
		{"null", "", true},
		{"missing", "", false},
	}
	for _, test := range tests {
		got, ok, err := ytree.GetText([]byte(data), test.key)
		if err != nil {
			t.Errorf("GetText(%q): unexpected error: %v", test.key, err)
		} else if ok != test.ok || got != test.want {
			t.Errorf("GetText(%q): got (%q, %v), want (%q, %v)", test.key, got, ok, test.want, test.ok)
		}
	}
}

func TestGetPath(t *testing.T) {
	const data = "a: [1, {b: [x, y]}]\nc:\n  d: e\n"
	tests := []struct {
		path []any
		want string // "" for not found
	}{
		{nil, "a: [1, {b: [x, y]}]\nc:\n  d: e\n"},
		{[]any{"c", "d"}, "e\n"},
		{[]any{"a", 0}, "1\n"},
		{[]any{"a", 1, "b"}, "[x, y]\n"},
		{[]any{"a", 1, "b", -1}, "y\n"},
		{[]any{"a", -2}, "1\n"},

		{[]any{"z"}, ""},
		{[]any{"a", 5}, ""},
		{[]any{"a", "b"}, ""}, // a is a sequence
		{[]any{"c", 0}, ""},   // c is a mapping
		{[]any{"c", "d", "e"}, ""},
	}
	for _, test := range tests {
		got, ok, err := ytree.GetPath([]byte(data), test.path...)
		if err != nil {
			t.Errorf("GetPath(%v): unexpected error: %v", test.path, err)
		} else if ok != (test.want != "") || string(got) != test.want {
			t.Errorf("GetPath(%v): got (%q, %v), want %q", test.path, got, ok, test.want)
		}
	}

	if _, _, err := ytree.GetPath([]byte(data), 1.5); err == nil {
		t.Error("GetPath with a float step: got nil, want error")
	}
	if _, _, err := ytree.GetPath([]byte("")); !errors.Is(err, ytree.ErrMalformed) {
		t.Errorf("GetPath on empty input: got %v, want %v", err, ytree.ErrMalformed)
	}
}

func TestElements(t *testing.T) {
	it, err := ytree.Elements([]byte("[a, b, c]"))
	if err != nil {
		t.Fatalf("Elements: unexpected error: %v", err)
	}
	var n int
	for it.Next() {
		n++
	}
	if err := it.Err(); err != nil || n != 3 {
		t.Errorf("Elements: got (%d, %v), want 3", n, err)
	}

	if _, err := ytree.Elements([]byte("[a, b")); !ytree.IsSyntaxError(err) {
		t.Errorf("Elements(invalid): got error %v, want syntax error", err)
	}
}

func TestTextErrors(t *testing.T) {
	bad := []byte("{a: 1")
	if _, err := ytree.TypeOf(bad); !ytree.IsSyntaxError(err) {
		t.Errorf("TypeOf: got %v, want syntax error", err)
	}
	if _, err := ytree.Length(bad); !ytree.IsSyntaxError(err) {
		t.Errorf("Length: got %v, want syntax error", err)
	}
	if _, _, err := ytree.Get(bad, "a"); !ytree.IsSyntaxError(err) {
		t.Errorf("Get: got %v, want syntax error", err)
	}
	if _, _, err := ytree.GetText(bad, "a"); !ytree.IsSyntaxError(err) {
		t.Errorf("GetText: got %v, want syntax error", err)
	}
	if _, err := ytree.TypeOf(nil); !errors.Is(err, ytree.ErrMalformed) {
		t.Errorf("TypeOf(empty): got %v, want %v", err, ytree.ErrMalformed)
	}
}

// Package testutil defines support code for unit tests.
package testutil

import (
	"strings"

	"github.com/google/go-cmp/cmp"
)

// DiffLines reports the line-by-line differences between want and got, after
// trimming leading and trailing whitespace from each. It returns "" if they
// are equal.
func DiffLines(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

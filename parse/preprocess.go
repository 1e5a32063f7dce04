// Package parse implements the parsing pipeline: preprocessing,
// tokenizing, rule-driven backtracking parsing, and finalization.
package parse

import (
	"regexp"
	"strings"
)

// blankLineRegexp matches a whole line consisting only of whitespace.
var blankLineRegexp = regexp.MustCompile(`(?m)^[ \t]+$`)

// backslashNewlineRegexp matches a backslash-newline line continuation.
var backslashNewlineRegexp = regexp.MustCompile(`\\\n`)

// excessNewlineRegexp matches three or more newlines, possibly with
// interior whitespace-only content, collapsing to exactly two.
var excessNewlineRegexp = regexp.MustCompile(`\n[ \t]*(?:\n[ \t]*){2,}`)

// Preprocess normalizes input into the form the tokenizer expects.
// It is a pure, total string-to-string transform applied in the fixed
// order documented here; each step runs to a fixed point before the
// next begins. Preprocess never fails: every input produces a valid
// normalized output.
func Preprocess(input string) string {
	s := input

	// 1. \r\n -> \n
	s = strings.ReplaceAll(s, "\r\n", "\n")

	// 2. remaining \r -> \n
	s = strings.ReplaceAll(s, "\r", "\n")

	// 3. whitespace-only lines -> empty lines
	s = blankLineRegexp.ReplaceAllString(s, "")

	// 4. remove backslash-newline continuations
	for backslashNewlineRegexp.MatchString(s) {
		s = backslashNewlineRegexp.ReplaceAllString(s, "")
	}

	// 5. tabs -> four spaces
	s = strings.ReplaceAll(s, "\t", "    ")

	// 6. collapse 3+ newlines (with interior whitespace) to exactly two
	s = excessNewlineRegexp.ReplaceAllString(s, "\n\n")

	return s
}

package parse

import "testing"

func TestPreprocessTabsExpand(t *testing.T) {
	got := Preprocess("\tapple\n\tbanana\tcherry\n")
	want := "    apple\n    banana    cherry\n"
	if got != want {
		t.Fatalf("Preprocess() = %q, want %q", got, want)
	}
}

func TestPreprocessNewlineCompression(t *testing.T) {
	got := Preprocess("a\n\n\n\nb")
	want := "a\n\nb"
	if got != want {
		t.Fatalf("Preprocess() = %q, want %q", got, want)
	}
}

func TestPreprocessCRLF(t *testing.T) {
	got := Preprocess("a\r\nb\rc")
	want := "a\nb\nc"
	if got != want {
		t.Fatalf("Preprocess() = %q, want %q", got, want)
	}
}

func TestPreprocessBackslashContinuation(t *testing.T) {
	got := Preprocess("a\\\nb")
	want := "ab"
	if got != want {
		t.Fatalf("Preprocess() = %q, want %q", got, want)
	}
}

func TestPreprocessBlankWhitespaceLine(t *testing.T) {
	got := Preprocess("a\n   \nb")
	want := "a\n\nb"
	if got != want {
		t.Fatalf("Preprocess() = %q, want %q", got, want)
	}
}

func TestPreprocessIdempotent(t *testing.T) {
	inputs := []string{
		"\tapple\n\tbanana\tcherry\n",
		"a\n\n\n\nb",
		"a\r\nb\rc\\\nd\n\n\n   \n\ne",
		"",
		"plain text with no special characters",
	}
	for _, in := range inputs {
		once := Preprocess(in)
		twice := Preprocess(once)
		if once != twice {
			t.Fatalf("Preprocess not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestPreprocessFixedPoints(t *testing.T) {
	inputs := []string{
		"\tapple\r\n\r\n\r\n\tbanana\\\ncherry\n\n\n\nfoo",
		"no special chars here",
	}
	for _, in := range inputs {
		out := Preprocess(in)
		if containsRune(out, '\r') {
			t.Fatalf("output contains \\r: %q", out)
		}
		if containsRune(out, '\t') {
			t.Fatalf("output contains tab: %q", out)
		}
		if containsSubstr(out, "\\\n") {
			t.Fatalf("output contains backslash-newline: %q", out)
		}
		if containsRunOfNewlines(out, 3) {
			t.Fatalf("output contains a run of 3+ newlines: %q", out)
		}
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func containsSubstr(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func containsRunOfNewlines(s string, n int) bool {
	run := 0
	for _, c := range s {
		if c == '\n' {
			run++
			if run >= n {
				return true
			}
		} else if c != ' ' && c != '\t' {
			run = 0
		}
	}
	return false
}

package parse

import (
	"strings"
	"testing"

	"github.com/wikidot-go/wikidot/token"
)

func TestTokenizeCoverage(t *testing.T) {
	inputs := []string{
		"Hello, world!\n\nSecond paragraph with a [https://example.com link].",
		": fruit : apple\n: color : red\n",
		"* one\n* two\n  * nested\n",
		"[[ruby]][[rt]]base[[/rt]][[/ruby]]",
		"",
		"plain",
	}
	for _, in := range inputs {
		pre := Preprocess(in)
		toks := NewTokenizer(pre).Tokenize()

		if len(toks) < 2 {
			t.Fatalf("expected at least sentinel tokens for %q", pre)
		}
		if toks[0].Type != token.InputStart {
			t.Fatalf("first token should be InputStart, got %v", toks[0].Type)
		}
		if toks[len(toks)-1].Type != token.InputEnd {
			t.Fatalf("last token should be InputEnd, got %v", toks[len(toks)-1].Type)
		}

		var sb strings.Builder
		for _, tk := range toks {
			sb.WriteString(tk.Slice)
		}
		if sb.String() != pre {
			t.Fatalf("concatenated slices != preprocessed input\n got: %q\nwant: %q", sb.String(), pre)
		}
	}
}

func TestTokenizeBulletRequiresLineStart(t *testing.T) {
	toks := NewTokenizer("a * not a bullet").Tokenize()
	for _, tk := range toks {
		if tk.Type == token.BulletItem {
			t.Fatalf("did not expect a BulletItem mid-line, got token stream %v", toks)
		}
	}
}

func TestTokenizeNumberedBullet(t *testing.T) {
	toks := NewTokenizer("1. item").Tokenize()
	found := false
	for _, tk := range toks {
		if tk.Type == token.NumberedItem {
			found = true
			if tk.Slice != "1." {
				t.Fatalf("NumberedItem slice = %q, want %q", tk.Slice, "1.")
			}
		}
	}
	if !found {
		t.Fatalf("expected a NumberedItem token, got %v", toks)
	}
}

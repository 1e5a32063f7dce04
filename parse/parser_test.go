package parse

import (
	"testing"

	"github.com/wikidot-go/wikidot/token"
)

func newTestParser(input string) *Parser {
	toks := NewTokenizer(Preprocess(input)).Tokenize()
	return NewParser(toks, Settings{}, nil)
}

func TestParserCloneIsIndependent(t *testing.T) {
	p := newTestParser("abc def")
	clone := p.Clone()

	if err := clone.Step(); err != nil {
		t.Fatalf("Step on clone failed: %v", err)
	}
	if p.index == clone.index {
		t.Fatalf("stepping the clone moved the original's index too")
	}
}

func TestParserUpdateCommitsClone(t *testing.T) {
	p := newTestParser("abc def")
	clone := p.Clone()
	if err := clone.StepN(2); err != nil {
		t.Fatalf("StepN failed: %v", err)
	}
	p.Update(clone)
	if p.index != clone.index {
		t.Fatalf("Update did not commit clone's index: p.index=%d clone.index=%d", p.index, clone.index)
	}
}

func TestParserStepPastEndFails(t *testing.T) {
	p := newTestParser("")
	for p.Current().Type != token.InputEnd {
		if err := p.Step(); err != nil {
			t.Fatalf("unexpected error stepping to InputEnd: %v", err)
		}
	}
	if err := p.Step(); err == nil {
		t.Fatal("expected an error stepping past InputEnd")
	}
}

func TestParserAtStartOfLine(t *testing.T) {
	p := newTestParser("a\nb")
	if !p.AtStartOfLine() {
		t.Fatal("cursor at InputStart should report start-of-line")
	}
	_ = p.Step() // move onto 'a' (still start-of-line: previous token is InputStart)
	_ = p.Step() // move past 'a' onto the line break
	if p.AtStartOfLine() {
		t.Fatal("cursor after 'a' should not report start-of-line")
	}
}

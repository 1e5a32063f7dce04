package parse

import (
	"github.com/sirupsen/logrus"

	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

// Settings is the subset of host configuration the parser itself
// consults; it mirrors wikidot.Settings but lives here too so the
// parse package has no import cycle back to the root package.
type Settings struct {
	EnablePageSyntax bool
	UseTrueIDs       bool
	AllowLocalPaths  bool
	Interwiki        map[string]string
}

// Parser holds all mutable state for one parse: the immutable token
// vector, a current index into it, a stack of partial-element kinds
// the innermost enclosing block currently accepts, and the settings
// handle rules consult. Cloning a Parser is a cheap value copy --
// this is the speculative-execution primitive every backtracking rule
// relies on, adapted from a scan-cursor clone to an index-into-a-fixed-
// vector clone since the token vector itself never changes mid-parse.
type Parser struct {
	tokens       []token.Token
	index        int
	partialStack []tree.PartialKind
	settings     Settings
	log          *logrus.Entry

	warnings []tree.Warning
}

// NewParser builds a Parser over tokens (as produced by Tokenizer),
// starting at index 0, on the InputStart sentinel itself.
func NewParser(tokens []token.Token, settings Settings, log *logrus.Entry) *Parser {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	p := &Parser{tokens: tokens, settings: settings, log: log}
	if len(tokens) > 0 && tokens[0].Type == token.InputStart {
		p.index = 0
	}
	return p
}

// Clone returns an independent copy of p's cursor state. The token
// vector is shared (it is immutable), so this is O(1) plus the size
// of the partial-kind stack, never O(input). The clone starts with no
// warnings of its own, so Update appends only what the sub-parse added.
func (p *Parser) Clone() *Parser {
	clone := &Parser{
		tokens:   p.tokens,
		index:    p.index,
		settings: p.settings,
		log:      p.log,
	}
	if len(p.partialStack) > 0 {
		clone.partialStack = append([]tree.PartialKind(nil), p.partialStack...)
	}
	return clone
}

// Update commits other's cursor position and any warnings it
// accumulated back into p. Call this only after a speculative
// sub-parse on a clone has succeeded; a failed sub-parse's progress
// and warnings must never reach p.
func (p *Parser) Update(other *Parser) {
	p.index = other.index
	p.partialStack = other.partialStack
	p.warnings = append(p.warnings, other.warnings...)
}

// Warnings returns every warning accumulated on this parser so far, in
// source order.
func (p *Parser) Warnings() []tree.Warning {
	return p.warnings
}

// Settings returns the settings handle rules may consult.
func (p *Parser) Settings() Settings { return p.settings }

// Current returns the token at the cursor without advancing.
func (p *Parser) Current() token.Token {
	return p.tokens[p.index]
}

// PeekTwo returns the current token's type and the type of the
// following token, or false if there isn't one (end of stream).
func (p *Parser) PeekTwo() (token.Type, token.Type, bool) {
	first := p.tokens[p.index].Type
	if p.index+1 >= len(p.tokens) {
		return first, 0, false
	}
	return first, p.tokens[p.index+1].Type, true
}

// PeekThree returns the types of the current token and the two that
// follow; ok2/ok3 report whether the second/third lookahead exist.
func (p *Parser) PeekThree() (t0, t1, t2 token.Type, ok2, ok3 bool) {
	t0 = p.tokens[p.index].Type
	if p.index+1 < len(p.tokens) {
		t1 = p.tokens[p.index+1].Type
		ok2 = true
	}
	if p.index+2 < len(p.tokens) {
		t2 = p.tokens[p.index+2].Type
		ok3 = true
	}
	return
}

// AtStartOfLine reports whether the token immediately preceding the
// cursor is InputStart or LineBreak/ParagraphBreak -- the precondition
// several rules (definition lists, lists, headers) require.
func (p *Parser) AtStartOfLine() bool {
	if p.index == 0 {
		return true
	}
	prev := p.tokens[p.index-1].Type
	return prev == token.InputStart || prev == token.LineBreak || prev == token.ParagraphBreak
}

// Step advances the cursor by one token. It is an error to step past
// InputEnd; callers (rule implementations) must check Current() first.
func (p *Parser) Step() error {
	if p.tokens[p.index].Type == token.InputEnd {
		return errPastEnd
	}
	p.index++
	return nil
}

// StepN advances the cursor n tokens.
func (p *Parser) StepN(n int) error {
	for i := 0; i < n; i++ {
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

// MakeWarning constructs a non-fatal diagnostic at the current span
// and records it for return with the final tree, without aborting the
// calling rule -- the caller decides what to do next (try the next
// alternative, or fall back to emitting a text token).
func (p *Parser) MakeWarning(kind tree.WarningKind, rule string) tree.Warning {
	w := tree.Warning{Kind: kind, Span: p.Current().Span, Rule: rule}
	p.warnings = append(p.warnings, w)
	return w
}

// PushPartial marks kind as acceptable as a Partial element until the
// matching PopPartial call, scoping which partials the enclosing block
// currently allows its children to produce.
func (p *Parser) PushPartial(kind tree.PartialKind) {
	p.partialStack = append(p.partialStack, kind)
}

// PopPartial removes the most recently pushed partial-acceptance scope.
func (p *Parser) PopPartial() {
	if len(p.partialStack) > 0 {
		p.partialStack = p.partialStack[:len(p.partialStack)-1]
	}
}

// AcceptsPartial reports whether kind is currently accepted by some
// enclosing block.
func (p *Parser) AcceptsPartial(kind tree.PartialKind) bool {
	for _, k := range p.partialStack {
		if k == kind {
			return true
		}
	}
	return false
}

package parse

import (
	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

// sigilStyle pairs a delimiter token with the container kind it
// produces, for the styled-container rules that match a repeated
// sigil rather than a `[[name]] ... [[/name]]` block.
type sigilStyle struct {
	name  string
	sigil token.Type
	kind  tree.ContainerKind
}

var sigilStyles = []sigilStyle{
	{"bold", token.DoubleSingleQuote, tree.Bold},
	{"italics", token.LeftDoubleSlash, tree.Italics},
	{"underline", token.Underscore, tree.Underline},
	{"strikethrough", token.LeftDoubleDash, tree.Strikethrough},
	{"superscript", token.Caret, tree.Superscript},
	{"subscript", token.Tilde, tree.Subscript},
}

func init() {
	for _, s := range sigilStyles {
		s := s
		registerInlineRule(&Rule{
			Name:     s.name,
			Position: Any,
			TryConsume: func(p *Parser) (tree.Elements, *tree.Warning) {
				return tryConsumeSigilStyle(p, s)
			},
		})
	}
	registerInlineRule(&Rule{Name: "monospace", Position: Any, TryConsume: tryConsumeMonospace})
	registerInlineRule(&Rule{Name: "header", Position: StartOfLine, TryConsume: tryConsumeHeader})
}

// tryConsumeSigilStyle matches a pair of the same sigil token
// surrounding a body, with paragraphs disabled inside -- the body is
// collected up to the next instance of the sigil, LineBreak,
// ParagraphBreak, or InputEnd.
func tryConsumeSigilStyle(p *Parser, s sigilStyle) (tree.Elements, *tree.Warning) {
	if p.Current().Type != s.sigil {
		w := p.MakeWarning(tree.RuleFailed, s.name)
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, s.name)
		return tree.Elements{}, &w
	}

	body, warn := collectConsume(p, s.name, []ParseCondition{
		ConditionCurrent(s.sigil),
	}, []ParseCondition{
		ConditionCurrent(token.LineBreak),
		ConditionCurrent(token.ParagraphBreak),
		ConditionCurrent(token.InputEnd),
	}, tree.RuleFailed)
	if warn != nil {
		return tree.Elements{}, warn
	}
	if p.Current().Type != s.sigil {
		w := p.MakeWarning(tree.RuleFailed, s.name)
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, s.name)
		return tree.Elements{}, &w
	}

	el := tree.Container{Kind: s.kind, Children: body}
	return tree.Single(el), nil
}

// tryConsumeMonospace matches `{{ body }}`.
func tryConsumeMonospace(p *Parser) (tree.Elements, *tree.Warning) {
	if p.Current().Type != token.LeftDoubleBrace {
		w := p.MakeWarning(tree.RuleFailed, "monospace")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "monospace")
		return tree.Elements{}, &w
	}

	body, warn := collectConsume(p, "monospace", []ParseCondition{
		ConditionCurrent(token.RightDoubleBrace),
	}, []ParseCondition{
		ConditionCurrent(token.ParagraphBreak),
		ConditionCurrent(token.InputEnd),
	}, tree.RuleFailed)
	if warn != nil {
		return tree.Elements{}, warn
	}
	if p.Current().Type != token.RightDoubleBrace {
		w := p.MakeWarning(tree.RuleFailed, "monospace")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "monospace")
		return tree.Elements{}, &w
	}

	el := tree.Container{Kind: tree.Monospace, Children: body}
	return tree.Single(el), nil
}

// tryConsumeHeader matches one to six consecutive "+" characters
// (tokenized individually as Other, since "+" carries no dedicated
// sigil) at start of line, followed by whitespace, producing a
// Header(level) container whose children run to end of line.
func tryConsumeHeader(p *Parser) (tree.Elements, *tree.Warning) {
	level := 0
	for level < 6 && p.Current().Type == token.Other && p.Current().Slice == "+" {
		level++
		if err := p.Step(); err != nil {
			w := p.MakeWarning(tree.RuleFailed, "header")
			return tree.Elements{}, &w
		}
	}
	if level == 0 {
		w := p.MakeWarning(tree.RuleFailed, "header")
		return tree.Elements{}, &w
	}
	if p.Current().Type != token.Whitespace {
		w := p.MakeWarning(tree.RuleFailed, "header")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "header")
		return tree.Elements{}, &w
	}

	body, _ := collectConsume(p, "header", []ParseCondition{
		ConditionCurrent(token.LineBreak),
		ConditionCurrent(token.ParagraphBreak),
		ConditionCurrent(token.InputEnd),
	}, nil, tree.RuleFailed)

	el := tree.Container{Kind: tree.HeaderKind(level), Children: body}
	return tree.Single(el), nil
}

package parse

import (
	"regexp"
	"strings"

	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

func init() {
	registerInlineRule(&Rule{Name: "block-dispatch", Position: Any, TryConsume: tryConsumeBlockDispatch})

	for _, kind := range []tree.ContainerKind{tree.Div, tree.Blockquote, tree.Hidden, tree.Invisible, tree.Mark, tree.Span} {
		registerBlockRule(namedContainerBlockRule(kind))
	}

	registerBlockRule(&BlockRule{
		Name: "footnote",
		Parse: func(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
			body, warn := collectBlockBody(p, []string{"footnote"})
			if warn != nil {
				return nil, warn
			}
			return tree.Footnote{Children: body}, nil
		},
	})
}

var blockArgRegexp = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\s*=\s*"([^"]*)"`)

// bareLeadingWordRegexp matches a standalone word at the start of a
// block head's argument span -- e.g. the "ListPages" in
// "[[module ListPages category=\"x\"]]" or the "red" in
// "[[color red]]" -- as opposed to the start of a key="value" pair,
// which this does not match (the word must be followed by whitespace
// or the end of the span, not by "=").
var bareLeadingWordRegexp = regexp.MustCompile(`^\s*([^\s=]+)(\s|$)`)

// extractBareAndArgs splits a block head's raw argument span (the
// text between the head identifier and the closing "]]") into an
// optional bare leading word and the set of key="value" pairs found
// anywhere in the span.
func extractBareAndArgs(raw string) (string, tree.Attributes) {
	args := make(tree.Attributes)
	bare := ""
	if m := bareLeadingWordRegexp.FindStringSubmatch(raw); m != nil {
		bare = m[1]
	}
	for _, m := range blockArgRegexp.FindAllStringSubmatch(raw, -1) {
		args.Set(m[1], m[2])
	}
	return bare, args
}

// parseBlockHead reads a `[[ name args ]]` head starting at a
// LeftBlock/LeftBlockStar token and returns it along with whether the
// head was well-formed (name present, head properly closed by
// RightBlock). Arguments between the name and the closing `]]` are
// parsed as `key="value"` pairs, and a bare leading word (see
// bareLeadingWordRegexp) is stored under the reserved "_name" key;
// anything else in that span is ignored, matching a permissive
// real-world wikitext head.
func parseBlockHead(p *Parser) (blockHead, bool) {
	star := false
	switch p.Current().Type {
	case token.LeftBlockStar:
		star = true
	case token.LeftBlock:
	default:
		return blockHead{}, false
	}
	if err := p.Step(); err != nil {
		return blockHead{}, false
	}
	if p.Current().Type == token.Whitespace {
		if err := p.Step(); err != nil {
			return blockHead{}, false
		}
	}
	if p.Current().Type != token.Identifier {
		return blockHead{}, false
	}
	name := p.Current().Slice
	if err := p.Step(); err != nil {
		return blockHead{}, false
	}

	var raw strings.Builder
	for p.Current().Type != token.RightBlock {
		if p.Current().Type == token.InputEnd || p.Current().Type == token.LineBreak {
			return blockHead{}, false
		}
		raw.WriteString(p.Current().Slice)
		if err := p.Step(); err != nil {
			return blockHead{}, false
		}
	}
	if err := p.Step(); err != nil { // consume RightBlock
		return blockHead{}, false
	}

	bare, args := extractBareAndArgs(raw.String())
	if bare != "" {
		args.Set("_name", bare)
	}

	return blockHead{Name: name, Star: star, Arguments: args}, true
}

// tryConsumeBlockDispatch is the bridge between the inline-rule table
// and block rules: it parses the head, looks the lowercased name up
// in blockRules, and on a hit delegates the rest of the parse to that
// rule's Parse function. A name with no registered BlockRule makes
// this rule fail with BlockExpectedName, so dispatchOne goes on to the
// later inline rules (the double-bracket link and the self-closing
// iframe/radio/checkbox forms); if none of those match either, the
// opening bracket becomes a literal text token, exactly as an
// unrecognized inline sigil would.
func tryConsumeBlockDispatch(p *Parser) (tree.Elements, *tree.Warning) {
	head, ok := parseBlockHead(p)
	if !ok {
		w := p.MakeWarning(tree.RuleFailed, "block-dispatch")
		return tree.Elements{}, &w
	}
	rule, found := blockRules[strings.ToLower(head.Name)]
	if !found {
		w := p.MakeWarning(tree.BlockExpectedName, "block-dispatch")
		return tree.Elements{}, &w
	}
	el, warn := rule.Parse(p, head)
	if warn != nil {
		return tree.Elements{}, warn
	}
	return tree.Single(el), nil
}

// namedContainerBlockRule builds a BlockRule for a simple
// `[[name attrs]] body [[/name]]` construct that just wraps its body
// in a Container of the given kind, with no special partial handling.
func namedContainerBlockRule(kind tree.ContainerKind) *BlockRule {
	name := containerBlockName(kind)
	return &BlockRule{
		Name: name,
		Parse: func(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
			body, warn := collectBlockBody(p, []string{name})
			if warn != nil {
				return nil, warn
			}
			delete(head.Arguments, "_name")
			return tree.Container{Kind: kind, Children: body, Attributes: head.Arguments}, nil
		},
	}
}

func containerBlockName(kind tree.ContainerKind) string {
	switch kind {
	case tree.Div:
		return "div"
	case tree.Blockquote:
		return "blockquote"
	case tree.Hidden:
		return "hidden"
	case tree.Invisible:
		return "invisible"
	case tree.Mark:
		return "mark"
	case tree.Span:
		return "span"
	default:
		panic("parse: no block name for container kind")
	}
}

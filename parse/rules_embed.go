package parse

import (
	"strings"

	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

// This file supplements the rules the distillation singled out
// (em-dash, links, lists, definition-list, ruby, the plain named
// containers in rules_block.go) with the remaining Element variants
// spec.md's data model names but doesn't walk through in detail:
// code/html raw-body blocks, a self-closing iframe, a module
// invocation, a color wrapper, a collapsible, and the two form
// controls. Each is grounded in the same block-head/body-collection
// primitives the detailed rules already use.

func init() {
	registerBlockRule(&BlockRule{
		Name: "code",
		Parse: func(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
			body, warn := collectBlockBodyRaw(p, []string{"code"})
			if warn != nil {
				return nil, warn
			}
			lang, _ := head.Arguments.Get("type")
			if lang == "" {
				lang, _ = head.Arguments.Get("language")
			}
			return tree.Code{Body: body, Language: lang}, nil
		},
	})

	registerBlockRule(&BlockRule{
		Name: "html",
		Parse: func(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
			body, warn := collectBlockBodyRaw(p, []string{"html"})
			if warn != nil {
				return nil, warn
			}
			return tree.Html{Body: body}, nil
		},
	})

	registerBlockRule(&BlockRule{
		Name: "module",
		Parse: parseModuleBlock,
	})

	registerBlockRule(&BlockRule{
		Name: "color",
		Parse: parseColorBlock,
	})

	registerBlockRule(&BlockRule{
		Name: "collapsible",
		Aliases: []string{"collapsible-block"},
		Parse: parseCollapsibleBlock,
	})

	registerInlineRule(&Rule{Name: "iframe", Position: Any, TryConsume: tryConsumeIframe})
	registerInlineRule(&Rule{Name: "radio-button", Position: Any, TryConsume: tryConsumeRadioButton})
	registerInlineRule(&Rule{Name: "check-box", Position: Any, TryConsume: tryConsumeCheckBox})
}

// collectBlockBodyRaw is collectBlockBody's raw-text counterpart: it
// scans for the same `[[/name]]` closing sequence but concatenates
// token slices verbatim instead of running them back through inline
// dispatch, for blocks whose body is not itself wikitext (code, html).
func collectBlockBodyRaw(p *Parser, closeNames []string) (string, *tree.Warning) {
	var raw strings.Builder
	for {
		cur := p.Current()
		if cur.Type == token.InputEnd {
			w := p.MakeWarning(tree.BlockMissingClose, "block-body-raw")
			return raw.String(), &w
		}
		if cur.Type == token.LeftBlockEnd {
			t0, t1, t2, ok2, ok3 := p.PeekThree()
			_ = t0
			if ok2 && t1 == token.Identifier {
				name := p.tokens[p.index+1].Slice
				if matchesAnyName(name, closeNames) && ok3 && t2 == token.RightBlock {
					if err := p.StepN(3); err != nil {
						w := p.MakeWarning(tree.BlockMissingClose, "block-body-raw")
						return raw.String(), &w
					}
					return raw.String(), nil
				}
			}
		}
		raw.WriteString(cur.Slice)
		if err := p.Step(); err != nil {
			break
		}
	}
	return raw.String(), nil
}

// parseModuleBlock handles `[[module Name attr="value" ...]] body
// [[/module]]`. The module name is the bare word immediately after
// "module" in the head, ahead of any key="value" pairs; parseBlockHead
// (rules_block.go) captures that bare word for every block head under
// the reserved "_name" argument key, which is recovered and stripped
// here.
func parseModuleBlock(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
	body, warn := collectBlockBody(p, []string{"module"})
	if warn != nil {
		return nil, warn
	}
	name, _ := head.Arguments.Get("_name")
	delete(head.Arguments, "_name")
	var buf strings.Builder
	for _, el := range body.Items {
		if txt, ok := el.(tree.Text); ok {
			buf.WriteString(txt.Value)
		}
	}
	return tree.Module{Name: name, Arguments: head.Arguments, Body: buf.String()}, nil
}

// parseColorBlock handles `[[color red]] body [[/color]]`. Like
// module, the color spec is a bare leading word rather than a
// key="value" pair; it is recovered the same way, under "_name".
func parseColorBlock(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
	body, warn := collectBlockBody(p, []string{"color"})
	if warn != nil {
		return nil, warn
	}
	spec, _ := head.Arguments.Get("_name")
	return tree.Color{Spec: spec, Children: body}, nil
}

func parseCollapsibleBlock(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
	body, warn := collectBlockBody(p, []string{"collapsible", "collapsible-block"})
	if warn != nil {
		return nil, warn
	}
	showText, _ := head.Arguments.Get("show")
	hideText, _ := head.Arguments.Get("hide")
	_, showTop := head.Arguments.Get("showtop")
	_, showBottom := head.Arguments.Get("showbottom")
	delete(head.Arguments, "_name")
	return tree.Collapsible{
		Children:   body,
		ShowText:   showText,
		HideText:   hideText,
		ShowTop:    showTop,
		ShowBottom: showBottom,
		Attributes: head.Arguments,
	}, nil
}

// tryConsumeIframe implements the self-closing `[[iframe url
// attr="value"]]` construct: unlike the named containers above, it has
// no separate closing tag, so it is registered as an inline rule (like
// the double-bracket link) rather than a BlockRule.
func tryConsumeIframe(p *Parser) (tree.Elements, *tree.Warning) {
	head, url, ok := parseSelfClosingHead(p, "iframe")
	if !ok {
		w := p.MakeWarning(tree.RuleFailed, "iframe")
		return tree.Elements{}, &w
	}
	return tree.Single(tree.Iframe{Url: url, Attributes: head.Arguments}), nil
}

func tryConsumeRadioButton(p *Parser) (tree.Elements, *tree.Warning) {
	head, name, ok := parseSelfClosingHead(p, "radio")
	if !ok {
		w := p.MakeWarning(tree.RuleFailed, "radio-button")
		return tree.Elements{}, &w
	}
	_, checked := head.Arguments.Get("checked")
	return tree.Single(tree.RadioButton{Name: name, Checked: checked, Attributes: head.Arguments}), nil
}

func tryConsumeCheckBox(p *Parser) (tree.Elements, *tree.Warning) {
	head, _, ok := parseSelfClosingHead(p, "checkbox")
	if !ok {
		w := p.MakeWarning(tree.RuleFailed, "check-box")
		return tree.Elements{}, &w
	}
	_, checked := head.Arguments.Get("checked")
	return tree.Single(tree.CheckBox{Checked: checked, Attributes: head.Arguments}), nil
}

// parseSelfClosingHead reads a `[[ name bareWord attrs ]]` head and
// requires the identifier to equal wantName (case-insensitive); it
// never looks for a closing tag. Shared by the iframe/radio/checkbox
// inline rules, which are all headless-body constructs.
func parseSelfClosingHead(p *Parser, wantName string) (blockHead, string, bool) {
	if p.Current().Type != token.LeftBlock && p.Current().Type != token.LeftBlockStar {
		return blockHead{}, "", false
	}
	star := p.Current().Type == token.LeftBlockStar
	if err := p.Step(); err != nil {
		return blockHead{}, "", false
	}
	if p.Current().Type == token.Whitespace {
		if err := p.Step(); err != nil {
			return blockHead{}, "", false
		}
	}
	if p.Current().Type != token.Identifier || !strings.EqualFold(p.Current().Slice, wantName) {
		return blockHead{}, "", false
	}
	if err := p.Step(); err != nil {
		return blockHead{}, "", false
	}

	var raw strings.Builder
	for p.Current().Type != token.RightBlock {
		if p.Current().Type == token.InputEnd || p.Current().Type == token.LineBreak {
			return blockHead{}, "", false
		}
		raw.WriteString(p.Current().Slice)
		if err := p.Step(); err != nil {
			return blockHead{}, "", false
		}
	}
	if err := p.Step(); err != nil {
		return blockHead{}, "", false
	}

	bare, args := extractBareAndArgs(raw.String())

	return blockHead{Name: wantName, Star: star, Arguments: args}, bare, true
}

package parse

import (
	"strings"

	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

func init() {
	registerInlineRule(&Rule{Name: "definition-list-skip-newline", Position: Any, TryConsume: tryConsumeDefinitionListSkipNewline})
	registerInlineRule(&Rule{Name: "definition-list", Position: StartOfLine, TryConsume: tryConsumeDefinitionList})
}

// tryConsumeDefinitionListSkipNewline looks three tokens ahead from a
// LineBreak; if it sees LineBreak, Colon, Whitespace it consumes the
// LineBreak and succeeds with an empty Elements, suppressing the
// ordinary paragraph-break handling of a bare newline so the outer
// paragraph logic doesn't split a definition list from its
// predecessor. This is supplemented from the original's
// RULE_DEFINITION_LIST_SKIP_NEWLINE, which the distilled spec omitted.
func tryConsumeDefinitionListSkipNewline(p *Parser) (tree.Elements, *tree.Warning) {
	t0, t1, t2, ok2, ok3 := p.PeekThree()
	if t0 == token.LineBreak && ok2 && t1 == token.Colon && ok3 && t2 == token.Whitespace {
		if err := p.Step(); err != nil {
			w := p.MakeWarning(tree.RuleFailed, "definition-list-skip-newline")
			return tree.Elements{}, &w
		}
		return tree.None(), nil
	}
	w := p.MakeWarning(tree.RuleFailed, "definition-list-skip-newline")
	return tree.Elements{}, &w
}

// tryConsumeDefinitionList implements the `: key : value` construct of
// spec.md 4.5: it requires start-of-line and a Colon Whitespace pair,
// then repeatedly parses items until ParagraphBreak or InputEnd ends
// the whole list.
func tryConsumeDefinitionList(p *Parser) (tree.Elements, *tree.Warning) {
	item, atEnd, warn := parseDefinitionListItem(p)
	if warn != nil {
		return tree.Elements{}, warn
	}
	items := []tree.DefinitionListItem{item}

	for !atEnd {
		sub := p.Clone()
		next, nextAtEnd, werr := parseDefinitionListItem(sub)
		if werr != nil {
			break
		}
		items = append(items, next)
		p.Update(sub)
		atEnd = nextAtEnd
	}

	return tree.Single(tree.DefinitionList{Items: items}), nil
}

// parseDefinitionListItem parses one `: key : value` row. The key
// collector's close condition is the FIRST Whitespace-Colon pair --
// per the greedy-colon decision recorded in DESIGN.md, a key
// containing " :" truncates at that first occurrence, matching the
// original implementation's observed behavior exactly.
func parseDefinitionListItem(p *Parser) (tree.DefinitionListItem, bool, *tree.Warning) {
	if !p.AtStartOfLine() {
		w := p.MakeWarning(tree.RuleFailed, "definition-list")
		return tree.DefinitionListItem{}, false, &w
	}

	t0, t1, ok := p.PeekTwo()
	if t0 != token.Colon || !ok || t1 != token.Whitespace {
		w := p.MakeWarning(tree.RuleFailed, "definition-list")
		return tree.DefinitionListItem{}, false, &w
	}
	if err := p.StepN(2); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "definition-list")
		return tree.DefinitionListItem{}, false, &w
	}

	key, warn := collectConsume(p, "definition-list", []ParseCondition{
		ConditionPair(token.Whitespace, token.Colon),
	}, []ParseCondition{
		ConditionCurrent(token.ParagraphBreak),
		ConditionCurrent(token.LineBreak),
	}, tree.RuleFailed)
	if warn != nil {
		return tree.DefinitionListItem{}, false, warn
	}
	key = trimElementsWhitespace(key)
	if elementsEmptyText(key) {
		w := p.MakeWarning(tree.EmptyDefinitionListKey, "definition-list")
		return tree.DefinitionListItem{}, false, &w
	}
	if err := p.StepN(2); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "definition-list")
		return tree.DefinitionListItem{}, false, &w
	}

	value, last, _ := collectConsumeKeep(p, "definition-list", []ParseCondition{
		ConditionCurrent(token.ParagraphBreak),
		ConditionCurrent(token.LineBreak),
		ConditionCurrent(token.InputEnd),
	}, nil, tree.RuleFailed)
	value = trimElementsWhitespace(value)

	atEnd := last.Type == token.ParagraphBreak || last.Type == token.InputEnd
	if last.Type == token.LineBreak || last.Type == token.ParagraphBreak {
		if err := p.Step(); err != nil {
			atEnd = true
		}
	}

	return tree.DefinitionListItem{Key: key, Value: value}, atEnd, nil
}

func trimElementsWhitespace(e tree.Elements) tree.Elements {
	items := append([]tree.Element(nil), e.Items...)
	for len(items) > 0 {
		if t, ok := items[0].(tree.Text); ok {
			trimmed := strings.TrimLeft(t.Value, " ")
			if trimmed == "" {
				items = items[1:]
				continue
			}
			items[0] = tree.Text{Value: trimmed}
		}
		break
	}
	for len(items) > 0 {
		last := len(items) - 1
		if t, ok := items[last].(tree.Text); ok {
			trimmed := strings.TrimRight(t.Value, " ")
			if trimmed == "" {
				items = items[:last]
				continue
			}
			items[last] = tree.Text{Value: trimmed}
		}
		break
	}
	return tree.Elements{Items: items, ParagraphSafe: e.ParagraphSafe}
}

func elementsEmptyText(e tree.Elements) bool {
	for _, el := range e.Items {
		if t, ok := el.(tree.Text); ok {
			if t.Value != "" {
				return false
			}
			continue
		}
		return false
	}
	return true
}

package parse

import (
	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

func init() {
	registerInlineRule(&Rule{Name: "list", Position: StartOfLine, TryConsume: tryConsumeList})
}

func listTypeForToken(t token.Type) (tree.ListType, bool) {
	switch t {
	case token.BulletItem:
		return tree.BulletList, true
	case token.NumberedItem:
		return tree.NumberedList, true
	default:
		return 0, false
	}
}

// tryConsumeList implements the bulleted/numbered list rule per
// spec.md 4.5: it requires InputStart or LineBreak immediately before
// it, then repeatedly reads an optional Whitespace run (the item's
// depth, in ASCII spaces), a bullet token, a mandatory separating
// Whitespace, and the item's inline content up to LineBreak or
// InputEnd. The flat (depth, kind, elements) sequence is then folded
// into a nested list by processDepths.
func tryConsumeList(p *Parser) (tree.Elements, *tree.Warning) {
	prevType := token.InputStart
	if p.index > 0 {
		prevType = p.tokens[p.index-1].Type
	}
	if prevType != token.InputStart && prevType != token.LineBreak {
		w := p.MakeWarning(tree.RuleFailed, "list")
		return tree.Elements{}, &w
	}

	var entries []depthEntry
	var topType tree.ListType
	haveTop := false

	for {
		depth := 0
		if p.Current().Type == token.Whitespace {
			depth = len(p.Current().Slice)
			if err := p.Step(); err != nil {
				break
			}
		}

		kind, isBullet := listTypeForToken(p.Current().Type)
		if !isBullet {
			break
		}
		if !haveTop {
			topType = kind
			haveTop = true
		}
		if err := p.Step(); err != nil {
			break
		}

		if p.Current().Type != token.Whitespace {
			break
		}
		if err := p.Step(); err != nil {
			break
		}

		items, _ := collectConsume(p, "list", []ParseCondition{
			ConditionCurrent(token.LineBreak),
			ConditionCurrent(token.InputEnd),
		}, []ParseCondition{
			ConditionCurrent(token.ParagraphBreak),
		}, tree.ListEmpty)

		if haveTop && depth == 0 && kind != topType {
			p.MakeWarning(tree.ListTypeMismatch, "list")
		}
		entries = append(entries, depthEntry{depth: depth, kind: kind, items: items})

		if p.Current().Type == token.LineBreak {
			if err := p.Step(); err != nil {
				break
			}
			continue
		}
		break
	}

	if len(entries) == 0 {
		w := p.MakeWarning(tree.ListEmpty, "list")
		return tree.Elements{}, &w
	}

	list := processDepths(topType, entries)
	return tree.Single(list), nil
}

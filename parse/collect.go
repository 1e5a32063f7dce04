package parse

import (
	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

// collectConsume repeatedly dispatches inline rules until a close
// condition matches (success, closing token left unconsumed), an
// invalid condition matches (failure, warnKind reported), or input
// ends (the collected elements are returned with a nil warning, as on
// success; a caller that needs its closing token checks Current()
// afterwards). ruleName is used only for diagnostics.
func collectConsume(p *Parser, ruleName string, closeConds, invalidConds []ParseCondition, warnKind tree.WarningKind) (tree.Elements, *tree.Warning) {
	var collected tree.Elements
	for {
		if anyMatches(p, closeConds) {
			return collected, nil
		}
		if anyMatches(p, invalidConds) {
			w := p.MakeWarning(warnKind, ruleName)
			return collected, &w
		}
		if p.Current().Type == token.InputEnd {
			return collected, nil
		}

		els, ok := dispatchOne(p)
		if !ok {
			collected = collected.Append(tree.Single(tree.Text{Value: p.Current().Slice}))
			if err := p.Step(); err != nil {
				return collected, nil
			}
			continue
		}
		collected = collected.Append(els)
	}
}

// collectConsumeKeep behaves like collectConsume but also returns the
// token that caused the stop (without consuming it), so the caller can
// inspect which close condition fired.
func collectConsumeKeep(p *Parser, ruleName string, closeConds, invalidConds []ParseCondition, warnKind tree.WarningKind) (tree.Elements, token.Token, *tree.Warning) {
	var collected tree.Elements
	for {
		if anyMatches(p, closeConds) || p.Current().Type == token.InputEnd {
			return collected, p.Current(), nil
		}
		if anyMatches(p, invalidConds) {
			w := p.MakeWarning(warnKind, ruleName)
			return collected, p.Current(), &w
		}

		els, ok := dispatchOne(p)
		if !ok {
			collected = collected.Append(tree.Single(tree.Text{Value: p.Current().Slice}))
			if err := p.Step(); err != nil {
				return collected, p.Current(), nil
			}
			continue
		}
		collected = collected.Append(els)
	}
}

// collectText gathers raw token slices (ignoring inline rule dispatch
// entirely) until a close condition matches or input ends, returning
// the concatenated text. Used by rules that want literal text, such as
// the single-bracket link's URL/label collection.
func collectText(p *Parser, closeConds []ParseCondition) string {
	var sb []byte
	for {
		if anyMatches(p, closeConds) || p.Current().Type == token.InputEnd {
			break
		}
		sb = append(sb, p.Current().Slice...)
		if err := p.Step(); err != nil {
			break
		}
	}
	return string(sb)
}

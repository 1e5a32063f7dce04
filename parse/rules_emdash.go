package parse

import (
	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

func init() {
	registerInlineRule(&Rule{
		Name:       "em-dash",
		Position:   Any,
		TryConsume: tryConsumeEmDash,
	})
}

// tryConsumeEmDash always matches on the em-dash sigil: it emits a
// literal em dash and advances one token.
func tryConsumeEmDash(p *Parser) (tree.Elements, *tree.Warning) {
	if p.Current().Type != token.EmDash {
		w := p.MakeWarning(tree.RuleFailed, "em-dash")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "em-dash")
		return tree.Elements{}, &w
	}
	return tree.Single(tree.Text{Value: "—"}), nil
}

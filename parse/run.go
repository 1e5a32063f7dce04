package parse

import (
	"github.com/sirupsen/logrus"

	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

// Run drives the whole pipeline over one document: preprocess,
// tokenize, top-level rule dispatch, and finalization. It is total --
// every input produces a SyntaxTree and a (possibly empty) warning
// list, never a Go error, matching spec.md 4.7's totality guarantee.
func Run(input string, settings Settings, log *logrus.Entry) (tree.SyntaxTree, []tree.Warning) {
	pre := Preprocess(input)
	toks := NewTokenizer(pre).Tokenize()
	p := NewParser(toks, settings, log)

	top, _ := collectConsume(p, "document", []ParseCondition{
		ConditionCurrent(token.InputEnd),
	}, nil, tree.RuleFailed)

	result := Finalize(top)
	result.Styles = nil
	return result, p.Warnings()
}

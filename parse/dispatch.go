package parse

import (
	"strings"

	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

// LineRequirement constrains where an inline rule is allowed to match.
type LineRequirement int

const (
	// Any means the rule may match anywhere.
	Any LineRequirement = iota
	// StartOfLine means the rule may only match when the previous
	// token was InputStart, LineBreak, or ParagraphBreak.
	StartOfLine
)

// Rule is an inline rule: a name (for diagnostics), a line-position
// requirement, and a function pointer. Rules are data, not types --
// there is no inheritance here, only values in the inlineRules table
// below, tried in fixed priority order at each cursor position.
type Rule struct {
	Name       string
	Position   LineRequirement
	TryConsume func(*Parser) (tree.Elements, *tree.Warning)
}

// BlockRule handles the `[[ name args ]] body [[/ name ]]` construct.
// Dispatch is keyed on the lowercased first identifier in the head,
// through blockRules below, built from Name and Aliases at init time.
type BlockRule struct {
	Name            string
	Aliases         []string
	AcceptsStar     bool
	AcceptsScore    bool
	AcceptsNewlines bool
	Parse           func(p *Parser, head blockHead) (tree.Element, *tree.Warning)
}

// blockHead is the parsed `[[ name args ]]` head, before the rule's
// Parse function consumes the body and closing tag.
type blockHead struct {
	Name      string
	Star      bool
	Score     bool
	Arguments tree.Attributes
}

// inlineRules holds every registered inline rule in fixed dispatch
// priority order. Rule files append to it from their own init().
var inlineRules []*Rule

// blockRules maps every accepted name/alias (lowercased) to its rule.
var blockRules = map[string]*BlockRule{}

func registerInlineRule(r *Rule) {
	inlineRules = append(inlineRules, r)
}

func registerBlockRule(r *BlockRule) {
	blockRules[strings.ToLower(r.Name)] = r
	for _, alias := range r.Aliases {
		blockRules[strings.ToLower(alias)] = r
	}
}

// dispatchOne tries every inline rule in priority order at the current
// position and returns the first one whose guard matches and that
// successfully consumed input. If none match, ok is false and the
// caller falls back to emitting a single text token.
func dispatchOne(p *Parser) (tree.Elements, bool) {
	startOfLine := p.AtStartOfLine()
	for _, rule := range inlineRules {
		if rule.Position == StartOfLine && !startOfLine {
			continue
		}
		sub := p.Clone()
		els, warn := rule.TryConsume(sub)
		if warn != nil {
			continue
		}
		p.Update(sub)
		return els, true
	}
	return tree.Elements{}, false
}

// collectBlockBody collects inline elements until a LeftBlockEnd token
// is immediately followed by an identifier matching (case-insensitive)
// one of closeNames and then a RightBlock, consuming through the
// closing tag. This is the shared body-collection helper every block
// rule's Parse function uses, rather than each rule re-implementing
// the close-tag scan.
func collectBlockBody(p *Parser, closeNames []string) (tree.Elements, *tree.Warning) {
	var collected tree.Elements
	for {
		cur := p.Current()
		if cur.Type == token.InputEnd {
			w := p.MakeWarning(tree.BlockMissingClose, "block-body")
			return collected, &w
		}
		if cur.Type == token.LeftBlockEnd {
			t0, t1, t2, ok2, ok3 := p.PeekThree()
			_ = t0
			if ok2 && t1 == token.Identifier {
				name := p.tokens[p.index+1].Slice
				if matchesAnyName(name, closeNames) {
					closeOk := ok3 && t2 == token.RightBlock
					if closeOk {
						if err := p.StepN(3); err != nil {
							w := p.MakeWarning(tree.BlockMissingClose, "block-body")
							return collected, &w
						}
						return collected, nil
					}
				}
			}
		}

		els, ok := dispatchOne(p)
		if !ok {
			collected = collected.Append(tree.Single(tree.Text{Value: p.Current().Slice}))
			if err := p.Step(); err != nil {
				break
			}
			continue
		}
		collected = collected.Append(els)
	}
	return collected, nil
}

func matchesAnyName(name string, names []string) bool {
	lower := strings.ToLower(name)
	for _, n := range names {
		if strings.ToLower(n) == lower {
			return true
		}
	}
	return false
}

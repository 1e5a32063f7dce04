package parse

import "github.com/wikidot-go/wikidot/token"

// ParseCondition describes a predicate over the parser's upcoming
// tokens, used by collectConsume and friends to decide when to stop
// collecting. It is data, not a closure, so rule implementations can
// build a fixed slice of conditions once and reuse it.
type ParseCondition struct {
	// Current matches when the token at the cursor has this type.
	Current token.Type
	// hasCurrent distinguishes "match nothing" zero value from a
	// legitimate Current: token.InputStart (index 0).
	hasCurrent bool

	// PairFirst/PairSecond match when the current and next token have
	// these two types, in order (used by the definition-list key
	// terminator: Whitespace followed by Colon).
	PairFirst, PairSecond token.Type
	hasPair               bool
}

// ConditionCurrent builds a condition matching the current token's type.
func ConditionCurrent(t token.Type) ParseCondition {
	return ParseCondition{Current: t, hasCurrent: true}
}

// ConditionPair builds a condition matching the current token followed
// immediately by a second given type.
func ConditionPair(first, second token.Type) ParseCondition {
	return ParseCondition{PairFirst: first, PairSecond: second, hasPair: true}
}

func (c ParseCondition) matches(p *Parser) bool {
	if c.hasCurrent {
		return p.Current().Type == c.Current
	}
	if c.hasPair {
		t0, t1, ok := p.PeekTwo()
		return t0 == c.PairFirst && ok && t1 == c.PairSecond
	}
	return false
}

func anyMatches(p *Parser, conds []ParseCondition) bool {
	for _, c := range conds {
		if c.matches(p) {
			return true
		}
	}
	return false
}

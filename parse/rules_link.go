package parse

import (
	"net/url"
	"strings"

	"github.com/wikidot-go/wikidot/token"
	"github.com/wikidot-go/wikidot/tree"
)

func init() {
	registerInlineRule(&Rule{Name: "link-double-bracket", Position: Any, TryConsume: tryConsumeDoubleBracketLink})
	registerInlineRule(&Rule{Name: "link-single-bracket", Position: Any, TryConsume: tryConsumeSingleBracketLink})
}

// tryConsumeSingleBracketLink implements the `[url label]` / `[*url
// label]` inline link, per the single-bracket link rule: collect
// characters up to whitespace as the URL (failing if empty), resolve
// it against the interwiki map or validate it, then collect up to `]`
// as the trimmed label.
func tryConsumeSingleBracketLink(p *Parser) (tree.Elements, *tree.Warning) {
	newTab := false
	switch p.Current().Type {
	case token.LeftBracketStar:
		newTab = true
	case token.LeftBracket:
	default:
		w := p.MakeWarning(tree.RuleFailed, "link-single-bracket")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "link-single-bracket")
		return tree.Elements{}, &w
	}

	rawURL := collectUntilWhitespaceOrBracket(p)
	if rawURL == "" {
		w := p.MakeWarning(tree.InvalidUrl, "link-single-bracket")
		return tree.Elements{}, &w
	}

	// Skip a single separating whitespace token, if present.
	if p.Current().Type == token.Whitespace {
		if err := p.Step(); err != nil {
			w := p.MakeWarning(tree.RuleFailed, "link-single-bracket")
			return tree.Elements{}, &w
		}
	}

	label := collectText(p, []ParseCondition{ConditionCurrent(token.RightBracket)})
	if p.Current().Type != token.RightBracket {
		w := p.MakeWarning(tree.RuleFailed, "link-single-bracket")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "link-single-bracket")
		return tree.Elements{}, &w
	}
	label = strings.TrimSpace(label)

	target, interwiki, ok := resolveLinkURL(p, rawURL)
	if !ok {
		w := p.MakeWarning(tree.InvalidUrl, "link-single-bracket")
		return tree.Elements{}, &w
	}

	el := tree.Link{
		Target:    tree.LinkLocation{Url: target},
		Label:     tree.LinkLabel{Text: label, URL: label == ""},
		NewTab:    newTab,
		Interwiki: interwiki,
	}
	return tree.Single(el), nil
}

// tryConsumeDoubleBracketLink implements `[[link url|label]]` / bare
// `[[link url]]` as a single self-contained head (no closing tag),
// supplementing the single-bracket form with the original's
// double-bracket link construct.
func tryConsumeDoubleBracketLink(p *Parser) (tree.Elements, *tree.Warning) {
	if p.Current().Type != token.LeftBlock {
		w := p.MakeWarning(tree.RuleFailed, "link-double-bracket")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "link-double-bracket")
		return tree.Elements{}, &w
	}
	if p.Current().Type != token.Identifier || strings.ToLower(p.Current().Slice) != "link" {
		w := p.MakeWarning(tree.RuleFailed, "link-double-bracket")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "link-double-bracket")
		return tree.Elements{}, &w
	}
	if p.Current().Type == token.Whitespace {
		if err := p.Step(); err != nil {
			w := p.MakeWarning(tree.RuleFailed, "link-double-bracket")
			return tree.Elements{}, &w
		}
	}

	rawURL := collectText(p, []ParseCondition{
		ConditionCurrent(token.Pipe),
		ConditionCurrent(token.RightBlock),
	})
	if rawURL == "" {
		w := p.MakeWarning(tree.InvalidUrl, "link-double-bracket")
		return tree.Elements{}, &w
	}

	label := ""
	if p.Current().Type == token.Pipe {
		if err := p.Step(); err != nil {
			w := p.MakeWarning(tree.RuleFailed, "link-double-bracket")
			return tree.Elements{}, &w
		}
		label = collectText(p, []ParseCondition{ConditionCurrent(token.RightBlock)})
	}

	if p.Current().Type != token.RightBlock {
		w := p.MakeWarning(tree.BlockMissingClose, "link-double-bracket")
		return tree.Elements{}, &w
	}
	if err := p.Step(); err != nil {
		w := p.MakeWarning(tree.RuleFailed, "link-double-bracket")
		return tree.Elements{}, &w
	}

	target, interwiki, ok := resolveLinkURL(p, strings.TrimSpace(rawURL))
	if !ok {
		w := p.MakeWarning(tree.InvalidUrl, "link-double-bracket")
		return tree.Elements{}, &w
	}

	label = strings.TrimSpace(label)
	el := tree.Link{
		Target:    tree.LinkLocation{Url: target},
		Label:     tree.LinkLabel{Text: label, URL: label == ""},
		Interwiki: interwiki,
	}
	return tree.Single(el), nil
}

// resolveLinkURL expands raw against the interwiki map if it has a
// recognized prefix; otherwise it validates raw against the URL
// invariant (non-empty, starting with "/" or scheme+authority). The
// literal target "javascript:;" is preserved exactly as-is: the
// original implementation's text renderer rewrites it to "#", but the
// parser itself does not -- this module keeps that behavior too, since
// rendering is out of scope here.
func resolveLinkURL(p *Parser, raw string) (target string, interwiki bool, ok bool) {
	if idx := strings.IndexByte(raw, ':'); idx > 0 {
		prefix := raw[:idx]
		if base, found := p.Settings().Interwiki[prefix]; found {
			return base + raw[idx+1:], true, true
		}
	}
	if raw == "javascript:;" {
		return raw, false, true
	}
	if strings.HasPrefix(raw, "/") {
		return raw, false, true
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false, false
	}
	return raw, false, true
}

func collectUntilWhitespaceOrBracket(p *Parser) string {
	return collectText(p, []ParseCondition{
		ConditionCurrent(token.Whitespace),
		ConditionCurrent(token.RightBracket),
	})
}

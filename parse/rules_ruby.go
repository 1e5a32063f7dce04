package parse

import (
	"github.com/wikidot-go/wikidot/tree"
)

func init() {
	registerBlockRule(&BlockRule{
		Name:            "ruby",
		AcceptsNewlines: true,
		Parse:           parseRubyBlock,
	})
	registerBlockRule(&BlockRule{
		Name:  "rt",
		Parse: parseRubyTextBlock,
	})
}

// parseRubyBlock implements `[[ruby]] ... [[/ruby]]` per spec.md 4.5:
// it opens a scope that accepts RubyText partials, collects its body
// (nested `[[rt]] ... [[/rt]]` blocks produce Partial(RubyText) inside
// that scope), then walks the collected children replacing every
// Partial(RubyText) with a resolved Container. A Partial surviving
// this walk is a programming-error assertion, never a parse warning.
func parseRubyBlock(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
	p.PushPartial(tree.PartialRubyText)
	body, warn := collectBlockBody(p, []string{"ruby"})
	p.PopPartial()
	if warn != nil {
		return nil, warn
	}

	resolved := resolveRubyPartials(body)
	delete(head.Arguments, "_name")
	return tree.Container{Kind: tree.Ruby, Children: resolved, Attributes: head.Arguments}, nil
}

// parseRubyTextBlock implements `[[rt]] ... [[/rt]]`: it only ever
// produces a Partial(RubyText), never a finished Container -- it is
// meaningless outside a Ruby parent, which is why it requires the
// parent to have pushed PartialRubyText onto the accepts-partial stack.
func parseRubyTextBlock(p *Parser, head blockHead) (tree.Element, *tree.Warning) {
	if !p.AcceptsPartial(tree.PartialRubyText) {
		w := p.MakeWarning(tree.RuleFailed, "rt")
		return nil, &w
	}
	body, warn := collectBlockBody(p, []string{"rt"})
	if warn != nil {
		return nil, warn
	}
	delete(head.Arguments, "_name")
	return tree.Partial{Kind: tree.PartialRubyText, Children: body, Attributes: head.Arguments}, nil
}

// resolveRubyPartials replaces every top-level Partial(RubyText) child
// of a Ruby block with a finished RubyText Container. Any Partial
// found at a nested depth below the first level is left alone here --
// Ruby bodies are flat by construction, so this only ever needs to
// look one level deep, unlike the general finalizer's full-tree walk.
func resolveRubyPartials(body tree.Elements) tree.Elements {
	items := make([]tree.Element, len(body.Items))
	for i, el := range body.Items {
		if part, ok := el.(tree.Partial); ok && part.Kind == tree.PartialRubyText {
			items[i] = tree.Container{Kind: tree.RubyText, Children: part.Children, Attributes: part.Attributes}
			continue
		}
		items[i] = el
	}
	return tree.Elements{Items: items, ParagraphSafe: body.ParagraphSafe}
}

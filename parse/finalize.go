package parse

import (
	"fmt"

	"github.com/wikidot-go/wikidot/tree"
)

// Finalize performs the finalization pass described in spec.md 4.6:
// assert no Partial survives, merge adjacent Text elements, group
// paragraph-safe runs into Paragraph containers, build the table of
// contents from headers in source order, and extract footnotes in
// source order. The input Elements is the result of the top-level
// collectConsume call; the output SyntaxTree is what Parse returns.
func Finalize(elements tree.Elements) tree.SyntaxTree {
	assertNoPartial(elements.Items)

	footnotes := collectFootnotes(elements.Items)
	merged := mergeAdjacentText(elements.Items)
	grouped := groupParagraphs(merged)
	toc := buildTableOfContents(grouped)

	return tree.SyntaxTree{
		Elements:        tree.Elements{Items: grouped, ParagraphSafe: elements.ParagraphSafe},
		TableOfContents: toc,
		Footnotes:       footnotes,
	}
}

// eachChildRun calls fn with every slice of child elements el directly
// owns -- a Container's children, a list item's body, a definition
// list entry's key and value, and so on. It is the single place that
// knows how to descend into every Element variant, shared by the
// Partial assertion, the footnote collector, and anything else that
// needs a full-tree walk.
func eachChildRun(el tree.Element, fn func([]tree.Element)) {
	switch v := el.(type) {
	case tree.Container:
		fn(v.Children.Items)
	case tree.Anchor:
		fn(v.Children.Items)
	case tree.Collapsible:
		fn(v.Children.Items)
	case tree.Color:
		fn(v.Children.Items)
	case tree.Footnote:
		fn(v.Children.Items)
	case tree.List:
		eachListItemRun(v.Items, fn)
	case tree.DefinitionList:
		for _, item := range v.Items {
			fn(item.Key.Items)
			fn(item.Value.Items)
		}
	}
}

func eachListItemRun(items []tree.ListItem, fn func([]tree.Element)) {
	for _, item := range items {
		if item.IsSubList && item.SubList != nil {
			eachListItemRun(item.SubList.Items, fn)
		} else {
			fn(item.Elements.Items)
		}
	}
}

// assertNoPartial panics if any Partial element survives anywhere in
// the tree. This is invariant 1 of spec.md 3: a surviving Partial is a
// programming error (some block failed to resolve its own pending
// children), never a value a caller is expected to handle.
func assertNoPartial(items []tree.Element) {
	for _, el := range items {
		if _, ok := el.(tree.Partial); ok {
			panic("parse: Partial element survived finalization, bug in the owning block rule")
		}
		eachChildRun(el, assertNoPartial)
	}
}

func mergeAdjacentText(items []tree.Element) []tree.Element {
	out := make([]tree.Element, 0, len(items))
	for _, el := range items {
		el = mergeElementChildren(el)
		if t, ok := el.(tree.Text); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(tree.Text); ok {
				out[len(out)-1] = tree.Text{Value: prev.Value + t.Value}
				continue
			}
		}
		out = append(out, el)
	}
	return out
}

func mergeElementChildren(el tree.Element) tree.Element {
	switch v := el.(type) {
	case tree.Container:
		v.Children.Items = mergeAdjacentText(v.Children.Items)
		return v
	case tree.Anchor:
		v.Children.Items = mergeAdjacentText(v.Children.Items)
		return v
	case tree.Collapsible:
		v.Children.Items = mergeAdjacentText(v.Children.Items)
		return v
	case tree.Color:
		v.Children.Items = mergeAdjacentText(v.Children.Items)
		return v
	default:
		return el
	}
}

// groupParagraphs wraps runs of paragraph-safe elements into Paragraph
// containers. Elements whose paragraph-safety flag is false are
// emitted outside any paragraph and also break the current run, per
// spec.md 4.6 step 3. Every maximal run of consecutive paragraph-safe
// elements becomes one Paragraph. A paragraph break in the source does
// not end a run: no rule matches a ParagraphBreak token at the top
// level, so it reaches the tree as a Text "\n\n" (merged with the text
// around it), and only a paragraph-unsafe element starts a new
// Paragraph.
func groupParagraphs(items []tree.Element) []tree.Element {
	var out []tree.Element
	var run []tree.Element

	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, tree.Container{Kind: tree.Paragraph, Children: tree.Elements{Items: run, ParagraphSafe: true}})
		run = nil
	}

	for _, el := range items {
		if tree.IsParagraphSafe(el) {
			run = append(run, el)
		} else {
			flush()
			out = append(out, el)
		}
	}
	flush()
	return out
}

func buildTableOfContents(items []tree.Element) []tree.TocEntry {
	var toc []tree.TocEntry
	counter := 0
	var walk func([]tree.Element)
	walk = func(els []tree.Element) {
		for _, el := range els {
			if c, ok := el.(tree.Container); ok {
				if level, isHeader := c.Kind.HeaderLevel(); isHeader {
					counter++
					toc = append(toc, tree.TocEntry{
						Level:  level,
						Text:   textOf(c.Children),
						Anchor: fmt.Sprintf("toc%d", counter),
					})
				}
				walk(c.Children.Items)
			}
		}
	}
	walk(items)
	return toc
}

func textOf(e tree.Elements) string {
	var out string
	for _, el := range e.Items {
		if t, ok := el.(tree.Text); ok {
			out += t.Value
		}
	}
	return out
}

func collectFootnotes(items []tree.Element) []tree.Elements {
	var out []tree.Elements
	var walk func([]tree.Element)
	walk = func(els []tree.Element) {
		for _, el := range els {
			if f, ok := el.(tree.Footnote); ok {
				out = append(out, f.Children)
			}
			eachChildRun(el, walk)
		}
	}
	walk(items)
	return out
}

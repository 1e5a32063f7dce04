package tree

// TocEntry is one entry in the table of contents: a header's level, its
// text, and an anchor "tocN", numbered monotonically from 1 in source
// order.
type TocEntry struct {
	Level  int
	Text   string
	Anchor string
}

// SyntaxTree is the top-level parse result.
type SyntaxTree struct {
	Elements        Elements
	Styles          []string
	TableOfContents []TocEntry
	Footnotes       []Elements
}

// ToOwned returns a copy of the tree. Because this module models all
// strings as already-owned Go strings rather than slices borrowed from
// the input buffer (see the package doc), ToOwned's only job is to copy
// slices: the top-level Elements, Styles, TableOfContents, and each
// footnote's Elements get new backing arrays. The copy is one level
// deep: nested children (a Container's Children, list items and the
// like) and Attributes maps are shared with the original, so mutating
// them through the copy changes the original too. Its JSON output is
// always byte-identical to the
// tree it was copied from, which is what the original's
// borrowed/owned round-trip property is actually checking for.
func (t SyntaxTree) ToOwned() SyntaxTree {
	out := SyntaxTree{
		Styles:          append([]string(nil), t.Styles...),
		TableOfContents: append([]TocEntry(nil), t.TableOfContents...),
	}
	out.Elements = cloneElements(t.Elements)
	if t.Footnotes != nil {
		out.Footnotes = make([]Elements, len(t.Footnotes))
		for i, f := range t.Footnotes {
			out.Footnotes[i] = cloneElements(f)
		}
	}
	return out
}

func cloneElements(e Elements) Elements {
	if e.Items == nil {
		return Elements{ParagraphSafe: e.ParagraphSafe}
	}
	items := make([]Element, len(e.Items))
	copy(items, e.Items)
	return Elements{Items: items, ParagraphSafe: e.ParagraphSafe}
}

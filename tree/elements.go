package tree

// Elements is a sequence of zero or more Element values, together with
// a paragraph-safety flag describing whether the whole run may be
// wrapped in a Paragraph container during finalization. A nil or
// empty Items represents the "empty" case from the original design;
// len(Items) == 1 represents "single"; anything more is the vector
// case. Go has no need to distinguish these three cases with separate
// types, unlike a language without a sequence literal for "one item",
// so this is modeled as a single slice-backed type throughout.
type Elements struct {
	Items         []Element
	ParagraphSafe bool
}

// None is the empty Elements value, paragraph-safe by convention (an
// empty run never breaks paragraph grouping).
func None() Elements {
	return Elements{ParagraphSafe: true}
}

// Single wraps one element, with paragraph safety derived from it.
func Single(el Element) Elements {
	return Elements{Items: []Element{el}, ParagraphSafe: IsParagraphSafe(el)}
}

// Of builds an Elements from a slice, with paragraph safety true only
// if every member is itself paragraph-safe.
func Of(els ...Element) Elements {
	safe := true
	for _, el := range els {
		if !IsParagraphSafe(el) {
			safe = false
			break
		}
	}
	return Elements{Items: els, ParagraphSafe: safe}
}

// IsEmpty reports whether there are no elements.
func (e Elements) IsEmpty() bool { return len(e.Items) == 0 }

// Append returns a new Elements with other's items appended; the
// paragraph-safety flag is the AND of both operands.
func (e Elements) Append(other Elements) Elements {
	items := make([]Element, 0, len(e.Items)+len(other.Items))
	items = append(items, e.Items...)
	items = append(items, other.Items...)
	return Elements{Items: items, ParagraphSafe: e.ParagraphSafe && other.ParagraphSafe}
}

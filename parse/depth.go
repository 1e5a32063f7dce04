package parse

import "github.com/wikidot-go/wikidot/tree"

// depthEntry is one flat (depth, kind, elements) triple collected by
// the list rule before it is folded into a nested tree.
type depthEntry struct {
	depth int
	kind  tree.ListType
	items tree.Elements
}

// processDepths folds a flat sequence of (depth, kind, elements)
// triples into a nested tree.List, following the original's
// depth-stack fold: deeper entries push a new sub-list onto the
// current path, shallower entries pop back up. Per the decision
// recorded in DESIGN.md for the "mixed-type list items at the same
// depth" open question, an entry whose kind differs from the
// enclosing list's type at the same depth is folded into that same
// list (the outer list's type wins) rather than starting a new list.
func processDepths(topType tree.ListType, entries []depthEntry) tree.List {
	if len(entries) == 0 {
		return tree.List{Type: topType}
	}

	type frame struct {
		list  *tree.List
		depth int
	}
	root := &tree.List{Type: topType}
	stack := []frame{{list: root, depth: entries[0].depth}}

	for _, e := range entries {
		for len(stack) > 1 && e.depth < stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}
		top := &stack[len(stack)-1]

		if e.depth > top.depth {
			sub := &tree.List{Type: e.kind}
			top.list.Items = append(top.list.Items, tree.ListItem{IsSubList: true, SubList: sub})
			stack = append(stack, frame{list: sub, depth: e.depth})
			top = &stack[len(stack)-1]
		}

		top.list.Items = append(top.list.Items, tree.ListItem{Elements: e.items})
	}

	return *root
}

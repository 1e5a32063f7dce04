package parse

import (
	"testing"

	"github.com/wikidot-go/wikidot/tree"
)

func TestListTopTypeIsFirstItem(t *testing.T) {
	result := runDoc(t, "* one\n* two\n")
	list := firstList(t, result.Elements)
	if list.Type != tree.BulletList {
		t.Fatalf("Type = %v, want BulletList", list.Type)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
}

func TestListNestedDepth(t *testing.T) {
	result := runDoc(t, "* one\n  * nested\n* two\n")
	list := firstList(t, result.Elements)

	var subLists int
	for _, item := range list.Items {
		if item.IsSubList {
			subLists++
			if item.SubList.Type != tree.BulletList {
				t.Fatalf("nested sublist type = %v, want BulletList", item.SubList.Type)
			}
		}
	}
	if subLists != 1 {
		t.Fatalf("expected exactly one nested sublist item, got %d in %+v", subLists, list.Items)
	}
}

func TestProcessDepthsSimpleFlat(t *testing.T) {
	entries := []depthEntry{
		{depth: 0, kind: tree.BulletList, items: tree.Single(tree.Text{Value: "a"})},
		{depth: 0, kind: tree.BulletList, items: tree.Single(tree.Text{Value: "b"})},
	}
	list := processDepths(tree.BulletList, entries)
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
}

func TestProcessDepthsNesting(t *testing.T) {
	entries := []depthEntry{
		{depth: 0, kind: tree.BulletList, items: tree.Single(tree.Text{Value: "a"})},
		{depth: 2, kind: tree.BulletList, items: tree.Single(tree.Text{Value: "a1"})},
		{depth: 0, kind: tree.BulletList, items: tree.Single(tree.Text{Value: "b"})},
	}
	list := processDepths(tree.BulletList, entries)
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items (a, nested sublist, b), got %d: %+v", len(list.Items), list.Items)
	}
	if !list.Items[1].IsSubList {
		t.Fatalf("middle item should be the nested sublist, got %+v", list.Items[1])
	}
}

func firstList(t *testing.T, e tree.Elements) tree.List {
	t.Helper()
	for _, el := range allElements(e) {
		if list, ok := el.(tree.List); ok {
			return list
		}
	}
	t.Fatalf("no List element found in %+v", e)
	return tree.List{}
}

package parse

import (
	"testing"

	"github.com/wikidot-go/wikidot/tree"
)

func TestFinalizeMergesAdjacentText(t *testing.T) {
	input := tree.Of(tree.Text{Value: "a"}, tree.Text{Value: "b"}, tree.LineBreak{}, tree.Text{Value: "c"})
	result := Finalize(input)

	var texts []string
	for _, el := range allElements(result.Elements) {
		if txt, ok := el.(tree.Text); ok {
			texts = append(texts, txt.Value)
		}
	}
	if len(texts) != 2 || texts[0] != "ab" || texts[1] != "c" {
		t.Fatalf("texts = %v, want [ab c]", texts)
	}
}

func TestFinalizeGroupsParagraphSafeRuns(t *testing.T) {
	input := tree.Of(
		tree.Text{Value: "intro"},
		tree.Container{Kind: tree.Div, Children: tree.Single(tree.Text{Value: "block"})},
		tree.Text{Value: "outro"},
	)
	result := Finalize(input)

	if len(result.Elements.Items) != 3 {
		t.Fatalf("expected 3 top-level items (para, div, para), got %d: %+v", len(result.Elements.Items), result.Elements.Items)
	}
	if _, ok := result.Elements.Items[0].(tree.Container); !ok {
		t.Fatalf("item 0 should be a Container (Paragraph wrapping the intro text), got %+v", result.Elements.Items[0])
	}
	if div, ok := result.Elements.Items[1].(tree.Container); !ok || div.Kind != tree.Div {
		t.Fatalf("item 1 should be the unwrapped Div, got %+v", result.Elements.Items[1])
	}
}

func TestFinalizeAssertsNoPartialSurvives(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when a Partial element survives finalization")
		}
	}()
	Finalize(tree.Single(tree.Partial{Kind: tree.PartialRubyText}))
}

func TestFinalizeCollectsFootnotesInOrder(t *testing.T) {
	input := tree.Of(
		tree.Footnote{Children: tree.Single(tree.Text{Value: "first"})},
		tree.Text{Value: "body"},
		tree.Footnote{Children: tree.Single(tree.Text{Value: "second"})},
	)
	result := Finalize(input)

	if len(result.Footnotes) != 2 {
		t.Fatalf("expected 2 footnotes, got %d", len(result.Footnotes))
	}
	if textOf(result.Footnotes[0]) != "first" || textOf(result.Footnotes[1]) != "second" {
		t.Fatalf("footnotes = %+v", result.Footnotes)
	}
}

func TestFootnoteBlockRuleIntegration(t *testing.T) {
	result := runDoc(t, "body text[[footnote]]note body[[/footnote]]")
	if len(result.Footnotes) != 1 {
		t.Fatalf("expected 1 footnote, got %d: %+v", len(result.Footnotes), result.Footnotes)
	}
	if textOf(result.Footnotes[0]) != "note body" {
		t.Fatalf("footnote = %+v", result.Footnotes[0])
	}
}

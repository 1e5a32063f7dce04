package parse

import (
	"testing"

	"github.com/wikidot-go/wikidot/tree"
)

func runDoc(t *testing.T, input string) tree.SyntaxTree {
	t.Helper()
	result, _ := Run(input, Settings{}, nil)
	return result
}

func TestEmDashScenario(t *testing.T) {
	toks := NewTokenizer("a—b").Tokenize()
	found := false
	for _, tk := range toks {
		if tk.Type.String() == "em-dash" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an em-dash token in %v", toks)
	}
	result := runDoc(t, "—")
	txt := firstText(t, result.Elements)
	if txt != "—" {
		t.Fatalf("em-dash rendered as %q, want the em-dash character", txt)
	}
}

func TestSingleBracketLinkScenario(t *testing.T) {
	result := runDoc(t, "[https://example.com/ Label text]")
	link := firstLink(t, result.Elements)
	if link.Target.Url != "https://example.com/" {
		t.Fatalf("Target.Url = %q", link.Target.Url)
	}
	if link.Label.Text != "Label text" {
		t.Fatalf("Label.Text = %q", link.Label.Text)
	}
	if link.NewTab || link.Interwiki {
		t.Fatalf("unexpected NewTab/Interwiki flags: %+v", link)
	}
}

func TestSingleBracketLinkMissingURLFallsBackToText(t *testing.T) {
	result, warnings := Run("[ Label]", Settings{}, nil)
	foundInvalidURL := false
	for _, w := range warnings {
		if w.Kind == tree.InvalidUrl {
			foundInvalidURL = true
		}
	}
	if !foundInvalidURL {
		t.Fatalf("expected an InvalidUrl warning, got %v", warnings)
	}
	for _, el := range allElements(result.Elements) {
		if _, ok := el.(tree.Link); ok {
			t.Fatalf("expected no Link element, got one in %+v", result.Elements)
		}
	}
}

func TestDefinitionListScenario(t *testing.T) {
	result := runDoc(t, ": fruit : apple\n: color : red\n")
	dl := firstDefinitionList(t, result.Elements)
	if len(dl.Items) != 2 {
		t.Fatalf("expected 2 definition list items, got %d", len(dl.Items))
	}
	if textOf(dl.Items[0].Key) != "fruit" || textOf(dl.Items[0].Value) != "apple" {
		t.Fatalf("item 0 = %+v", dl.Items[0])
	}
	if textOf(dl.Items[1].Key) != "color" || textOf(dl.Items[1].Value) != "red" {
		t.Fatalf("item 1 = %+v", dl.Items[1])
	}
}

func firstText(t *testing.T, e tree.Elements) string {
	t.Helper()
	for _, el := range allElements(e) {
		if txt, ok := el.(tree.Text); ok {
			return txt.Value
		}
	}
	t.Fatalf("no Text element found in %+v", e)
	return ""
}

func firstLink(t *testing.T, e tree.Elements) tree.Link {
	t.Helper()
	for _, el := range allElements(e) {
		if link, ok := el.(tree.Link); ok {
			return link
		}
	}
	t.Fatalf("no Link element found in %+v", e)
	return tree.Link{}
}

func firstDefinitionList(t *testing.T, e tree.Elements) tree.DefinitionList {
	t.Helper()
	for _, el := range allElements(e) {
		if dl, ok := el.(tree.DefinitionList); ok {
			return dl
		}
	}
	t.Fatalf("no DefinitionList element found in %+v", e)
	return tree.DefinitionList{}
}

// allElements flattens one level of Paragraph wrapping so tests can
// look for a specific element kind without caring whether finalize
// wrapped it in a paragraph.
func allElements(e tree.Elements) []tree.Element {
	var out []tree.Element
	for _, el := range e.Items {
		out = append(out, el)
		if c, ok := el.(tree.Container); ok {
			out = append(out, allElements(c.Children)...)
		}
	}
	return out
}

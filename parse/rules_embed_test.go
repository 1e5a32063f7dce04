package parse

import (
	"testing"

	"github.com/wikidot-go/wikidot/tree"
)

func TestCodeBlockRawBody(t *testing.T) {
	result := runDoc(t, `[[code type="go"]]func main() {}[[/code]]`)
	code := firstCode(t, result.Elements)
	if code.Language != "go" {
		t.Fatalf("Language = %q, want go", code.Language)
	}
	if code.Body != "func main() {}" {
		t.Fatalf("Body = %q", code.Body)
	}
}

func TestHtmlBlockRawBody(t *testing.T) {
	result := runDoc(t, `[[html]]<b>raw</b>[[/html]]`)
	for _, el := range allElements(result.Elements) {
		if h, ok := el.(tree.Html); ok {
			if h.Body != "<b>raw</b>" {
				t.Fatalf("Body = %q", h.Body)
			}
			return
		}
	}
	t.Fatalf("no Html element found in %+v", result.Elements)
}

func TestModuleBlockBareName(t *testing.T) {
	result := runDoc(t, `[[module ListPages category="blog"]]fallback text[[/module]]`)
	for _, el := range allElements(result.Elements) {
		if m, ok := el.(tree.Module); ok {
			if m.Name != "ListPages" {
				t.Fatalf("Name = %q, want ListPages", m.Name)
			}
			if v, _ := m.Arguments.Get("category"); v != "blog" {
				t.Fatalf("category = %q, want blog", v)
			}
			if _, leaked := m.Arguments.Get("_name"); leaked {
				t.Fatalf("internal _name key leaked into Arguments: %+v", m.Arguments)
			}
			return
		}
	}
	t.Fatalf("no Module element found in %+v", result.Elements)
}

func TestColorBlockBareSpec(t *testing.T) {
	result := runDoc(t, `[[color red]]warning[[/color]]`)
	for _, el := range allElements(result.Elements) {
		if c, ok := el.(tree.Color); ok {
			if c.Spec != "red" {
				t.Fatalf("Spec = %q, want red", c.Spec)
			}
			return
		}
	}
	t.Fatalf("no Color element found in %+v", result.Elements)
}

func TestCollapsibleBlockAttributes(t *testing.T) {
	result := runDoc(t, `[[collapsible show="Show" hide="Hide"]]body[[/collapsible]]`)
	for _, el := range allElements(result.Elements) {
		if c, ok := el.(tree.Collapsible); ok {
			if c.ShowText != "Show" || c.HideText != "Hide" {
				t.Fatalf("c = %+v", c)
			}
			return
		}
	}
	t.Fatalf("no Collapsible element found in %+v", result.Elements)
}

func TestIframeSelfClosing(t *testing.T) {
	result := runDoc(t, `[[iframe https://example.com/embed]]`)
	for _, el := range allElements(result.Elements) {
		if f, ok := el.(tree.Iframe); ok {
			if f.Url != "https://example.com/embed" {
				t.Fatalf("Url = %q", f.Url)
			}
			return
		}
	}
	t.Fatalf("no Iframe element found in %+v", result.Elements)
}

func TestRadioButtonAndCheckBox(t *testing.T) {
	result := runDoc(t, `[[radio group1 checked="true"]] [[checkbox checked="true"]]`)
	var sawRadio, sawCheck bool
	for _, el := range allElements(result.Elements) {
		if r, ok := el.(tree.RadioButton); ok {
			sawRadio = true
			if r.Name != "group1" || !r.Checked {
				t.Fatalf("radio = %+v", r)
			}
		}
		if c, ok := el.(tree.CheckBox); ok {
			sawCheck = true
			if !c.Checked {
				t.Fatalf("checkbox = %+v", c)
			}
		}
	}
	if !sawRadio || !sawCheck {
		t.Fatalf("expected both a radio button and a checkbox, got %+v", result.Elements)
	}
}

func firstCode(t *testing.T, e tree.Elements) tree.Code {
	t.Helper()
	for _, el := range allElements(e) {
		if c, ok := el.(tree.Code); ok {
			return c
		}
	}
	t.Fatalf("no Code element found in %+v", e)
	return tree.Code{}
}

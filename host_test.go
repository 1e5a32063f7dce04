package wikidot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wikidot-go/wikidot/tree"
)

func TestInMemoryHostInterwiki(t *testing.T) {
	h := NewInMemoryHost()
	h.SetInterwiki("wp", "https://en.wikipedia.org/wiki/")

	url, ok := h.Interwiki("wp")
	require.True(t, ok)
	require.Equal(t, "https://en.wikipedia.org/wiki/", url)

	_, ok = h.Interwiki("missing")
	require.False(t, ok)
}

func TestInMemoryHostPageMetadata(t *testing.T) {
	h := NewInMemoryHost()
	h.SetPage("component:foo", "Foo", 12, []string{"a", "b"})

	require.Equal(t, "Foo", h.GetTitle("component:foo"))
	rating, ok := h.GetRating("component:foo")
	require.True(t, ok)
	require.Equal(t, 12, rating)
	require.Equal(t, []string{"a", "b"}, h.GetTags("component:foo"))
}

func TestInMemoryHostMessage(t *testing.T) {
	h := NewInMemoryHost()
	h.SetMessage("en", "greeting", "Hello")

	require.Equal(t, "Hello", h.GetMessage("en", "greeting"))
	require.Equal(t, "missing-key", h.GetMessage("en", "missing-key"))
}

func TestInMemoryHostLinkLabelFallback(t *testing.T) {
	h := NewInMemoryHost()
	label := h.GetLinkLabel("https://example.com/", "", func(url string) string { return "link:" + url })
	require.Equal(t, "link:https://example.com/", label)

	label = h.GetLinkLabel("https://example.com/", "explicit", func(url string) string { return "unused" })
	require.Equal(t, "explicit", label)
}

func TestInMemoryHostRenderModule(t *testing.T) {
	h := NewInMemoryHost()
	var buf bytes.Buffer
	err := h.RenderModule(&buf, tree.Module{Name: "ListPages"}, ModePage)
	require.NoError(t, err)
	require.Equal(t, "[module:ListPages]", buf.String())
}

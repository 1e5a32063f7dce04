package wikidot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wikidot-go/wikidot/tree"
)

func TestDocumentRoundTrip(t *testing.T) {
	result, _ := Parse("**bold** and * a list item\n", PageInfo{PageID: "test:doc"}, DefaultSettings())

	doc := Document{
		Settings:        DefaultSettings(),
		PageInfo:        PageInfo{PageID: "test:doc", Title: "Doc"},
		TableOfContents: result.TableOfContents,
		Footnotes:       result.Footnotes,
		Elements:        result.Elements,
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(data), `"element"`)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, doc.PageInfo, decoded.PageInfo)
	require.Equal(t, doc.Settings.Mode, decoded.Settings.Mode)
	require.Equal(t, len(doc.Elements.Items), len(decoded.Elements.Items))
}

func TestEncodeDecodeContainerKind(t *testing.T) {
	el := tree.Container{Kind: tree.Header2, Children: tree.Single(tree.Text{Value: "hi"})}
	encoded := encodeElement(el)
	data, err := json.Marshal(encoded)
	require.NoError(t, err)

	decoded, err := decodeElement(data)
	require.NoError(t, err)
	container, ok := decoded.(tree.Container)
	require.True(t, ok)
	require.Equal(t, tree.Header2, container.Kind)
}

func TestDecodeUnknownElementKindFails(t *testing.T) {
	_, err := decodeElement(json.RawMessage(`{"element":"not-a-real-kind","data":{}}`))
	require.Error(t, err)
}

package wikidot

import (
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wikidot-go/wikidot/tree"
)

// newTestPageID mints a unique page identifier per test run, the same
// way the teacher's sqltest fixtures mint a unique scratch database
// name, so that tests asserting on PageInfo round-tripping don't
// collide with fixed string literals.
func newTestPageID() string {
	return "test:" + strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")
}

func TestParseEmDash(t *testing.T) {
	result, warnings := Parse("a—b", PageInfo{PageID: newTestPageID()}, DefaultSettings())
	require.Empty(t, warnings)
	require.NotEmpty(t, result.Elements.Items)
}

func TestParseLinkWithInterwiki(t *testing.T) {
	settings := DefaultSettings()
	settings.Interwiki = map[string]string{"wp": "https://en.wikipedia.org/wiki/"}
	result, _ := Parse("[wp:Go_(programming_language) Go] text", PageInfo{}, settings)

	var link *tree.Link
	var walk func(tree.Elements)
	walk = func(e tree.Elements) {
		for _, el := range e.Items {
			if l, ok := el.(tree.Link); ok {
				link = &l
			}
			if c, ok := el.(tree.Container); ok {
				walk(c.Children)
			}
		}
	}
	walk(result.Elements)
	require.NotNil(t, link)
	require.True(t, link.Interwiki)
}

func TestParseDefaultSettingsMode(t *testing.T) {
	s := DefaultSettings()
	require.Equal(t, ModePage, s.Mode)
	require.Equal(t, "page", s.Mode.String())
}

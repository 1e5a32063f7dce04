package wikidot

import (
	"github.com/alecthomas/repr"

	"github.com/wikidot-go/wikidot/tree"
)

// Debug renders a SyntaxTree as a deeply nested Go-syntax dump, the
// same way the teacher repo's test helpers dump query results for
// fixture comparisons. Intended for ad-hoc inspection and test
// failure output, not for the JSON wire format -- see Document for
// that.
func Debug(result tree.SyntaxTree) string {
	return repr.String(result)
}

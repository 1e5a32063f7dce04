package wikidot

import (
	"github.com/sirupsen/logrus"

	"github.com/wikidot-go/wikidot/parse"
	"github.com/wikidot-go/wikidot/tree"
)

// Parse runs the full pipeline over input and returns the finalized
// syntax tree plus any non-fatal warnings collected along the way.
// Parse never returns a Go error: malformed markup degrades to literal
// text with a warning attached, per the totality guarantee the
// underlying parse.Run provides.
func Parse(input string, pageInfo PageInfo, settings Settings) (tree.SyntaxTree, []tree.Warning) {
	return parse.Run(input, toParseSettings(settings), logEntry(pageInfo))
}

func toParseSettings(s Settings) parse.Settings {
	return parse.Settings{
		EnablePageSyntax: s.EnablePageSyntax,
		UseTrueIDs:       s.UseTrueIDs,
		AllowLocalPaths:  s.AllowLocalPaths,
		Interwiki:        s.Interwiki,
	}
}

func logEntry(pageInfo PageInfo) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"page-id": pageInfo.PageID,
		"slug":    pageInfo.Slug,
	})
}

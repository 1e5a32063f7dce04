package tree

import (
	"fmt"
	"strings"

	"github.com/wikidot-go/wikidot/token"
)

// WarningKind is the closed set of non-fatal diagnostics a rule may
// report. Warnings never abort parsing; they are collected and
// returned alongside the tree.
type WarningKind int

const (
	RuleFailed WarningKind = iota
	InvalidUrl
	BlockExpectedName
	BlockMissingClose
	ListEmpty
	EmptyDefinitionListKey
	ListTypeMismatch
)

func (k WarningKind) String() string {
	switch k {
	case RuleFailed:
		return "rule-failed"
	case InvalidUrl:
		return "invalid-url"
	case BlockExpectedName:
		return "block-expected-name"
	case BlockMissingClose:
		return "block-missing-close"
	case ListEmpty:
		return "list-empty"
	case EmptyDefinitionListKey:
		return "empty-definition-list-key"
	case ListTypeMismatch:
		return "list-type-mismatch"
	default:
		return fmt.Sprintf("warning-kind(%d)", int(k))
	}
}

// Warning is a non-fatal diagnostic attached to the returned tree. It
// is an ordinary value, never used as Go error-style control flow for
// rule dispatch (rules return it as a second value, not wrapped in an
// error chain).
type Warning struct {
	Kind WarningKind
	Span token.Span
	Rule string
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s at %d:%d (rule %s)", w.Kind, w.Span.Start, w.Span.End, w.Rule)
}

// Warnings aggregates a list of Warning. It implements error so a
// caller that wants to treat "any warnings" as failure can do so, but
// ordinary parsing never returns it as the result of Parse itself.
type Warnings []Warning

func (w Warnings) Error() string {
	parts := make([]string, len(w))
	for i, warn := range w {
		parts[i] = warn.Error()
	}
	return strings.Join(parts, "; ")
}

// Package wikidot is the public surface of the wikitext engine: Parse,
// Settings, PageInfo, the Host interface, and JSON wire serialization.
// The parsing pipeline itself lives in the token/tree/parse packages;
// this package is a thin orchestration layer over parse.Run, in the
// same shape as the teacher repo's root package sits over its
// sqlparser engine package.
package wikidot

import "gopkg.in/yaml.v3"

// Mode selects which wikitext dialect variant is in effect.
type Mode int

const (
	ModePage Mode = iota
	ModeDraft
	ModeForumPost
	ModeDirectMessage
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModePage:
		return "page"
	case ModeDraft:
		return "draft"
	case ModeForumPost:
		return "forum-post"
	case ModeDirectMessage:
		return "direct-message"
	case ModeList:
		return "list"
	default:
		return "unknown"
	}
}

// MarshalYAML and UnmarshalYAML let Mode round-trip through a YAML
// config file as its kebab-case name rather than a bare integer, the
// same string form the JSON wire format uses.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := modeFromString(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Settings configures one parse. It is yaml-tagged so a host
// application can load it from a config file, following the same
// pattern the teacher's cli/cmd/config.go uses for DatabaseConfig --
// even though Parse itself only ever receives the already-decoded
// struct, never reads YAML on its own.
type Settings struct {
	Mode             Mode              `yaml:"mode"`
	EnablePageSyntax bool              `yaml:"enable-page-syntax"`
	UseTrueIDs       bool              `yaml:"use-true-ids"`
	AllowLocalPaths  bool              `yaml:"allow-local-paths"`
	Interwiki        map[string]string `yaml:"interwiki"`
}

// DefaultSettings returns the settings a plain page render uses.
func DefaultSettings() Settings {
	return Settings{
		Mode:             ModePage,
		EnablePageSyntax: true,
	}
}

package wikidot

import (
	"gopkg.in/yaml.v3"
)

// LoadSettingsYAML decodes Settings from a YAML document, the same
// way the teacher's cli/cmd/config.go loads its DatabaseConfig: a
// host application keeps its wiki engine configuration in the same
// config file as everything else and decodes this struct out of it
// directly via its yaml tags.
func LoadSettingsYAML(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// MarshalSettingsYAML is LoadSettingsYAML's inverse, used by hosts that
// generate a starter config file for a new wiki.
func MarshalSettingsYAML(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

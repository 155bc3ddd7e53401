package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the on-disk catalog shape:
//
//	wildcards:
//	  tone: [neutral, formal, casual, stern]
//	  size:
//	    - short
//	    - medium
//	    - long
//	themes:
//	  - watercolor, soft light
//	  - oil painting, heavy texture
type document struct {
	Wildcards map[string][]string `yaml:"wildcards"`
	Themes    []string            `yaml:"themes"`
}

// ParseYAML builds a catalog from a YAML document. Unparseable bytes yield
// ErrYAML; a well-formed document carrying an invalid wildcard name yields
// ErrName. Both sections are optional.
//
// Parsing is the only persistence concern this package owns; writing
// documents back out belongs to the surrounding application.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrYAML, err)
	}
	c := New()
	for name, values := range doc.Wildcards {
		if err := c.SetWildcard(name, values); err != nil {
			return nil, err
		}
	}
	c.SetThemes(doc.Themes)
	return c, nil
}

package skills

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_taxonomy.yaml
var defaultTaxonomyYAML []byte

// document is the on-disk YAML layout of a taxonomy.
type document struct {
	Skills    []Entry `yaml:"skills"`
	Knowledge []Entry `yaml:"knowledge"`
}

// Default returns the embedded taxonomy.
func Default() (*Taxonomy, error) {
	return Parse(defaultTaxonomyYAML, "")
}

// Load reads a taxonomy from a YAML file. An empty path selects the embedded default.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(data, path)
}

// Parse decodes taxonomy YAML. path is only used in error messages.
func Parse(data []byte, path string) (*Taxonomy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid YAML", Cause: err}
	}
	if len(doc.Skills) == 0 && len(doc.Knowledge) == 0 {
		return nil, &LoadError{Path: path, Message: "taxonomy has no skills or knowledge entries"}
	}

	taxonomy, err := New(doc.Skills, doc.Knowledge)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid entry", Cause: err}
	}
	return taxonomy, nil
}

// Package config loads and validates the wsdl2phpgenerator naming manifest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// TypeMapping overrides how a schema type name maps onto a PHP type.
type TypeMapping struct {
	SchemaType string `toml:"schema_type" yaml:"schema_type"`
	PHPType    string `toml:"php_type" yaml:"php_type"`
}

// Manifest lists the raw schema names to sanitize, grouped by the identifier
// category that decides which keyword rule applies.
type Manifest struct {
	// Namespace scopes class existence checks, mirroring the PHP namespace
	// the generator emits into.
	Namespace string `toml:"namespace" yaml:"namespace"`

	Classes    []string `toml:"classes" yaml:"classes"`
	Operations []string `toml:"operations" yaml:"operations"`
	Attributes []string `toml:"attributes" yaml:"attributes"`
	Constants  []string `toml:"constants" yaml:"constants"`
	Types      []string `toml:"types" yaml:"types"`

	CustomTypes []TypeMapping `toml:"custom_types" yaml:"custom_types"`
}

// Load reads a manifest from path. Files ending in .yaml or .yml use the
// YAML compatibility format; everything else is parsed as TOML.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("parse yaml manifest %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	}

	if err := manifest.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &manifest, nil
}

func (m *Manifest) validate() error {
	if len(m.Classes)+len(m.Operations)+len(m.Attributes)+len(m.Constants)+len(m.Types) == 0 {
		return fmt.Errorf("manifest lists no names")
	}
	for i, ct := range m.CustomTypes {
		if ct.SchemaType == "" {
			return fmt.Errorf("custom type mapping %d: schema_type is required", i)
		}
		if ct.PHPType == "" {
			return fmt.Errorf("custom type mapping %d (%s): php_type is required", i, ct.SchemaType)
		}
	}
	return nil
}

// NameCount reports how many raw names the manifest lists across all
// categories.
func (m *Manifest) NameCount() int {
	return len(m.Classes) + len(m.Operations) + len(m.Attributes) + len(m.Constants) + len(m.Types)
}

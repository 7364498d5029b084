/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for theme generation.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/vstheme/formatter"
	"bennypowers.dev/vstheme/output"
	"bennypowers.dev/vstheme/schema"
)

// Config represents the theme generation configuration.
type Config struct {
	// Definitions specifies definition files to load (paths or globs).
	Definitions []DefinitionSpec `yaml:"definitions" json:"definitions"`

	// OutDir is where theme files are written. Defaults to "themes".
	OutDir string `yaml:"outDir" json:"outDir"`

	// Indent is the JSON indentation. Defaults to four spaces.
	Indent string `yaml:"indent" json:"indent"`

	// Schema selects the output revision (optional).
	// Valid values: "current", "legacy"
	Schema string `yaml:"schema" json:"schema"`
}

// DefinitionSpec represents a definition file specification.
// It can be specified as a simple string path or as an object with overrides.
type DefinitionSpec struct {
	// Path is the file path (supports ** globs).
	Path string `yaml:"path" json:"path"`

	// OutDir overrides the global output directory for this definition.
	OutDir string `yaml:"outDir" json:"outDir"`
}

// UnmarshalYAML handles both string and object forms for DefinitionSpec.
func (d *DefinitionSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		d.Path = node.Value
		return nil
	}

	type rawDefinitionSpec DefinitionSpec
	return node.Decode((*rawDefinitionSpec)(d))
}

// UnmarshalJSON handles both string and object forms for DefinitionSpec.
func (d *DefinitionSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Path = s
		return nil
	}

	type rawDefinitionSpec DefinitionSpec
	return json.Unmarshal(data, (*rawDefinitionSpec)(d))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		OutDir: output.DefaultDir,
		Indent: formatter.DefaultIndent,
	}
}

// SchemaVersion returns the parsed output revision from the Schema field.
// Returns schema.Unknown if the field is invalid.
func (c *Config) SchemaVersion() schema.Version {
	v, err := schema.FromString(c.Schema)
	if err != nil {
		return schema.Unknown
	}
	return v
}

// FormatOptions returns formatter options with configuration applied.
func (c *Config) FormatOptions() formatter.Options {
	return formatter.Options{
		Indent: c.Indent,
		Schema: c.SchemaVersion(),
	}
}

// OutDirFor returns the output directory for the definition at path.
// Definition-level overrides take precedence over global config.
func (c *Config) OutDirFor(path string) string {
	for _, spec := range c.Definitions {
		if spec.Path == path && spec.OutDir != "" {
			return spec.OutDir
		}
	}
	if c.OutDir != "" {
		return c.OutDir
	}
	return output.DefaultDir
}

// DefinitionPaths returns the list of paths from all DefinitionSpecs.
func (c *Config) DefinitionPaths() []string {
	paths := make([]string, 0, len(c.Definitions))
	for _, spec := range c.Definitions {
		paths = append(paths, spec.Path)
	}
	return paths
}

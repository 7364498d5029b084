/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package definition loads declarative theme definitions from YAML or
// JSON (with comments) and turns them into builder calls.
package definition

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/vstheme/fs"
)

// Document is a parsed theme definition.
type Document struct {
	// Name is the theme name and the stem of the output file name.
	Name string `yaml:"name" json:"name"`

	// Type is "light", "dark", or empty.
	Type string `yaml:"type" json:"type"`

	// SemanticHighlighting defaults to true when omitted.
	SemanticHighlighting *bool `yaml:"semanticHighlighting" json:"semanticHighlighting"`

	// Palette names colors that rules and workbench colors can refer to.
	Palette map[string]ColorSpec `yaml:"palette" json:"palette"`

	// Rules are applied in order.
	Rules []Rule `yaml:"rules" json:"rules"`

	// Colors maps workbench color keys to colors, in document order.
	Colors OrderedColors `yaml:"colors" json:"colors"`

	// Path is the file the document was loaded from, for error messages.
	Path string `yaml:"-" json:"-"`
}

// Rule targets TextMate scopes and semantic selectors with one style.
type Rule struct {
	// Scopes are TextMate scopes, passed through verbatim.
	Scopes []string `yaml:"scopes" json:"scopes"`

	// Semantic holds encoded semantic selectors, e.g. "variable.readonly:go".
	Semantic []string `yaml:"semantic" json:"semantic"`

	// Color is a palette name or any CSS color.
	Color *ColorSpec `yaml:"color" json:"color"`

	// FontStyle is "bold", "italic", or "underline".
	FontStyle string `yaml:"fontStyle" json:"fontStyle"`
}

// ColorSpec is a color written as a string (palette name or CSS color) or
// as a perceptual object such as {oklch: [0.7, 0.1, 250], alpha: 200}.
type ColorSpec struct {
	Value string
	Oklch []float64
	Oklab []float64
	Alpha *int
}

type rawColorSpec struct {
	Oklch []float64 `yaml:"oklch" json:"oklch"`
	Oklab []float64 `yaml:"oklab" json:"oklab"`
	Alpha *int      `yaml:"alpha" json:"alpha"`
}

// UnmarshalYAML handles both string and object forms for ColorSpec.
func (c *ColorSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Value = node.Value
		return nil
	}

	var raw rawColorSpec
	if err := node.Decode(&raw); err != nil {
		return err
	}
	c.Oklch, c.Oklab, c.Alpha = raw.Oklch, raw.Oklab, raw.Alpha
	return nil
}

// UnmarshalJSON handles both string and object forms for ColorSpec.
func (c *ColorSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Value = s
		return nil
	}

	var raw rawColorSpec
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Oklch, c.Oklab, c.Alpha = raw.Oklch, raw.Oklab, raw.Alpha
	return nil
}

// ColorEntry is one workbench color assignment.
type ColorEntry struct {
	Key   string
	Color ColorSpec
}

// OrderedColors keeps workbench colors in the order they were written.
type OrderedColors []ColorEntry

// UnmarshalYAML decodes a mapping without losing key order.
func (o *OrderedColors) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: colors must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var spec ColorSpec
		if err := node.Content[i+1].Decode(&spec); err != nil {
			return err
		}
		*o = append(*o, ColorEntry{Key: node.Content[i].Value, Color: spec})
	}
	return nil
}

// UnmarshalJSON decodes an object without losing key order.
func (o *OrderedColors) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("colors must be an object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var spec ColorSpec
		if err := dec.Decode(&spec); err != nil {
			return fmt.Errorf("colors.%s: %w", key, err)
		}
		*o = append(*o, ColorEntry{Key: key, Color: spec})
	}
	return nil
}

// Parse decodes a definition. JSON documents may contain comments and
// trailing commas; anything that does not look like JSON is read as YAML.
func Parse(data []byte, path string) (*Document, error) {
	doc := &Document{}
	data = bytes.TrimPrefix(data, utf8BOM)
	if isLikelyJSON(data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), doc); err != nil {
			return nil, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	}
	doc.Path = path
	return doc, nil
}

// LoadFile reads and parses the definition at path.
func LoadFile(filesystem fs.FileSystem, path string) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}
	return Parse(data, path)
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
var utf8BOM = []byte("\xef\xbb\xbf")

func isLikelyJSON(data []byte) bool {
	for len(data) > 0 {
		data = bytes.TrimLeft(data, " \t\r\n")
		// Leading comments are allowed before the opening brace.
		switch {
		case bytes.HasPrefix(data, []byte("//")):
			if i := bytes.IndexByte(data, '\n'); i >= 0 {
				data = data[i+1:]
				continue
			}
			return false
		case bytes.HasPrefix(data, []byte("/*")):
			if i := bytes.Index(data, []byte("*/")); i >= 0 {
				data = data[i+2:]
				continue
			}
			return false
		}
		return len(data) > 0 && data[0] == '{'
	}
	return false
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package vscode provides VS Code color theme formatting.
package vscode

import (
	"bytes"
	"encoding/json"
	"strings"

	"bennypowers.dev/vstheme/formatter"
	"bennypowers.dev/vstheme/theme"
)

// Header is the first line of every generated theme file.
const Header = "// Do not edit directly; this file is generated.\n"

// FileNameSuffix is appended to the theme name to form the output file name.
const FileNameSuffix = "-color-theme.json"

// FileName returns the output file name for a theme called name.
func FileName(name string) string {
	return name + FileNameSuffix
}

// Formatter outputs VS Code color theme JSON.
type Formatter struct{}

// New creates a new VS Code color theme formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders t as a VS Code color theme document. Object keys follow
// insertion order, so formatting the same theme twice yields identical bytes.
func (f *Formatter) Format(t *theme.Theme, opts formatter.Options) ([]byte, error) {
	doc := buildDocument(t, opts)

	var buf bytes.Buffer
	buf.WriteString(Header)

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", opts.IndentOrDefault())
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// buildDocument lays out the top-level fields in their fixed order.
func buildDocument(t *theme.Theme, opts formatter.Options) object {
	doc := object{{"name", t.Name()}}

	if typ := t.Type().String(); typ != "" {
		doc = append(doc, member{"type", typ})
	}

	tokenColors := make([]any, 0, t.NumTextMateRules())
	for rule := range t.TextMateRules() {
		tokenColors = append(tokenColors, object{
			{"scope", rule.Scopes},
			{"settings", textMateSettings(rule.Style, opts)},
		})
	}
	doc = append(doc, member{"tokenColors", tokenColors})

	doc = append(doc, member{"semanticHighlighting", t.SemanticHighlighting()})
	if t.SemanticHighlighting() {
		semantic := make(object, 0, t.NumSemanticRules())
		for key, rule := range t.SemanticRules() {
			semantic = append(semantic, member{key, semanticSettings(rule.Style, opts)})
		}
		doc = append(doc, member{"semanticTokenColors", semantic})
	}

	colors := make(object, 0, t.NumColors())
	for c := range t.Colors() {
		colors = append(colors, member{c.Key, opts.ColorString(c.Color)})
	}
	doc = append(doc, member{"colors", colors})

	return doc
}

// textMateSettings collapses the axes that are on into one fontStyle string,
// always in the order italic, bold, underline.
func textMateSettings(style theme.Style, opts formatter.Options) object {
	settings := object{}
	if style.Foreground != nil {
		settings = append(settings, member{"foreground", opts.ColorString(*style.Foreground)})
	}

	var effects []string
	if style.FontStyle.Italic == theme.True {
		effects = append(effects, "italic")
	}
	if style.FontStyle.Bold == theme.True {
		effects = append(effects, "bold")
	}
	if style.FontStyle.Underline == theme.True {
		effects = append(effects, "underline")
	}
	if len(effects) > 0 {
		settings = append(settings, member{"fontStyle", strings.Join(effects, " ")})
	}

	return settings
}

// semanticSettings writes one boolean per explicit axis; inherited axes are
// left out.
func semanticSettings(style theme.Style, opts formatter.Options) object {
	settings := object{}
	if style.Foreground != nil {
		settings = append(settings, member{"foreground", opts.ColorString(*style.Foreground)})
	}

	axes := []struct {
		name    string
		setting theme.FontStyleSetting
	}{
		{"bold", style.FontStyle.Bold},
		{"italic", style.FontStyle.Italic},
		{"underline", style.FontStyle.Underline},
	}
	for _, axis := range axes {
		if v, explicit := axis.setting.Bool(); explicit {
			settings = append(settings, member{axis.name, v})
		}
	}

	return settings
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"fmt"
	"iter"
)

// Type is the base appearance a theme declares to the editor.
type Type int

const (
	// TypeUnset omits the type field.
	TypeUnset Type = iota
	// Light is a light theme.
	Light
	// Dark is a dark theme.
	Dark
)

// String returns the value written to the theme's "type" field.
func (t Type) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return ""
	}
}

// ParseType parses "light" or "dark". The empty string yields TypeUnset.
func ParseType(s string) (Type, error) {
	switch s {
	case "":
		return TypeUnset, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return TypeUnset, fmt.Errorf("unknown theme type %q: expected light or dark", s)
	}
}

// TextMateRule is one tokenColors entry.
type TextMateRule struct {
	Scopes []string
	Style  Style
}

// SemanticRule is one semanticTokenColors entry.
type SemanticRule struct {
	Selector SemanticSelector
	Style    Style
}

func (r SemanticRule) clone() SemanticRule {
	return SemanticRule{Selector: r.Selector, Style: r.Style.clone()}
}

// ColorRule is one workbench colors entry.
type ColorRule struct {
	Key   string
	Color Color
}

// Theme is a built, immutable color theme.
type Theme struct {
	name          string
	typ           Type
	textMate      []TextMateRule
	semanticOn    bool
	semanticRules *OrderedMap[SemanticRule]
	colors        *OrderedMap[Color]
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Type returns the declared appearance.
func (t *Theme) Type() Type {
	return t.typ
}

// TextMateRules iterates over tokenColors entries in the order they were added.
func (t *Theme) TextMateRules() iter.Seq[TextMateRule] {
	return func(yield func(TextMateRule) bool) {
		for _, r := range t.textMate {
			r = TextMateRule{Scopes: append([]string(nil), r.Scopes...), Style: r.Style.clone()}
			if !yield(r) {
				return
			}
		}
	}
}

// NumTextMateRules returns the number of tokenColors entries.
func (t *Theme) NumTextMateRules() int {
	return len(t.textMate)
}

// SemanticHighlighting reports whether the theme enables semantic highlighting.
func (t *Theme) SemanticHighlighting() bool {
	return t.semanticOn
}

// SemanticRules iterates over copies of the semantic rules keyed by their
// encoded selector, in first-insertion order.
func (t *Theme) SemanticRules() iter.Seq2[string, SemanticRule] {
	return func(yield func(string, SemanticRule) bool) {
		for k, r := range t.semanticRules.All() {
			if !yield(k, r.clone()) {
				return
			}
		}
	}
}

// SemanticRule returns a copy of the rule stored for the encoded selector key.
func (t *Theme) SemanticRule(key string) (SemanticRule, bool) {
	r, ok := t.semanticRules.Get(key)
	if !ok {
		return SemanticRule{}, false
	}
	return r.clone(), true
}

// NumSemanticRules returns the number of distinct semantic selectors.
func (t *Theme) NumSemanticRules() int {
	return t.semanticRules.Len()
}

// Colors iterates over workbench colors in first-insertion order.
func (t *Theme) Colors() iter.Seq[ColorRule] {
	return func(yield func(ColorRule) bool) {
		for k, c := range t.colors.All() {
			if !yield(ColorRule{Key: k, Color: c}) {
				return
			}
		}
	}
}

// Color returns the workbench color stored for key.
func (t *Theme) Color(key string) (Color, bool) {
	return t.colors.Get(key)
}

// NumColors returns the number of workbench color keys.
func (t *Theme) NumColors() int {
	return t.colors.Len()
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"fmt"
	"strings"
)

// WildcardMarker is the token kind that matches every semantic token.
const WildcardMarker = "*"

// TokenKind is either the wildcard or a specific semantic token type.
type TokenKind struct {
	id       Identifier
	wildcard bool
}

// Wildcard returns the token kind matching any semantic token type.
func Wildcard() TokenKind {
	return TokenKind{wildcard: true}
}

// Kind returns a token kind for a specific semantic token type.
// It panics if id is the zero Identifier, which no constructor returns.
func Kind(id Identifier) TokenKind {
	mustBeValid("Kind", id)
	return TokenKind{id: id}
}

// mustBeValid panics on the zero Identifier, the only value that can
// bypass NewIdentifier.
func mustBeValid(op string, id Identifier) {
	if id.IsZero() {
		panic(&ValidationError{Reason: op + ": zero Identifier; use NewIdentifier"})
	}
}

// ParseTokenKind returns Wildcard for "*", otherwise validates s as an identifier.
func ParseTokenKind(s string) (TokenKind, error) {
	if s == WildcardMarker {
		return Wildcard(), nil
	}
	id, err := NewIdentifier(s)
	if err != nil {
		return TokenKind{}, err
	}
	return Kind(id), nil
}

// IsWildcard reports whether k matches every token type.
func (k TokenKind) IsWildcard() bool {
	return k.wildcard
}

// Identifier returns the token type name, or false for the wildcard.
func (k TokenKind) Identifier() (Identifier, bool) {
	return k.id, !k.wildcard
}

// String returns "*" for the wildcard, otherwise the token type name.
func (k TokenKind) String() string {
	if k.wildcard {
		return WildcardMarker
	}
	return k.id.String()
}

// Selector is one target of a rule: a TextMateSelector or a SemanticSelector.
type Selector interface {
	fmt.Stringer
	isSelector()
}

// TextMateSelector is a free-form TextMate scope such as "keyword.operator".
// Scopes are passed through to the theme verbatim and are never validated.
type TextMateSelector string

func (TextMateSelector) isSelector() {}

// String returns the scope.
func (s TextMateSelector) String() string {
	return string(s)
}

// SemanticSelector selects semantic tokens by kind, modifiers, and language.
// Values are immutable; the With methods return modified copies.
type SemanticSelector struct {
	kind      TokenKind
	modifiers []Identifier
	language  Identifier
}

func (SemanticSelector) isSelector() {}

// NewSemanticSelector returns a selector for kind with no modifiers or language.
func NewSemanticSelector(kind TokenKind) SemanticSelector {
	return SemanticSelector{kind: kind}
}

// Kind returns the token kind.
func (s SemanticSelector) Kind() TokenKind {
	return s.kind
}

// Modifiers returns a copy of the modifiers in the order they were added.
func (s SemanticSelector) Modifiers() []Identifier {
	return append([]Identifier(nil), s.modifiers...)
}

// Language returns the language restriction, if any.
func (s SemanticSelector) Language() (Identifier, bool) {
	return s.language, !s.language.IsZero()
}

// WithModifier returns a copy of s with mod appended.
// Duplicate modifiers are kept. It panics if mod is the zero Identifier.
func (s SemanticSelector) WithModifier(mod Identifier) SemanticSelector {
	mustBeValid("WithModifier", mod)
	mods := make([]Identifier, len(s.modifiers), len(s.modifiers)+1)
	copy(mods, s.modifiers)
	s.modifiers = append(mods, mod)
	return s
}

// WithLanguage returns a copy of s restricted to lang, replacing any
// previous language. It panics if lang is the zero Identifier.
func (s SemanticSelector) WithLanguage(lang Identifier) SemanticSelector {
	mustBeValid("WithLanguage", lang)
	s.modifiers = append([]Identifier(nil), s.modifiers...)
	s.language = lang
	return s
}

// String encodes the selector as kind(.modifier)*(:language)?, the key
// format of semanticTokenColors.
func (s SemanticSelector) String() string {
	var sb strings.Builder
	sb.WriteString(s.kind.String())
	for _, mod := range s.modifiers {
		sb.WriteByte('.')
		sb.WriteString(mod.String())
	}
	if !s.language.IsZero() {
		sb.WriteByte(':')
		sb.WriteString(s.language.String())
	}
	return sb.String()
}

// ParseSemanticSelector decodes the kind(.modifier)*(:language)? form.
// It is the inverse of SemanticSelector.String.
func ParseSemanticSelector(s string) (SemanticSelector, error) {
	body, lang, hasLang := strings.Cut(s, ":")
	parts := strings.Split(body, ".")

	kind, err := ParseTokenKind(parts[0])
	if err != nil {
		return SemanticSelector{}, fmt.Errorf("selector %q: %w", s, err)
	}
	sel := NewSemanticSelector(kind)

	for _, part := range parts[1:] {
		mod, err := NewIdentifier(part)
		if err != nil {
			return SemanticSelector{}, fmt.Errorf("selector %q: %w", s, err)
		}
		sel = sel.WithModifier(mod)
	}

	if hasLang {
		id, err := NewIdentifier(lang)
		if err != nil {
			return SemanticSelector{}, fmt.Errorf("selector %q: %w", s, err)
		}
		sel = sel.WithLanguage(id)
	}

	return sel, nil
}

// Selectors is an ordered collection of rule targets. Values are immutable.
type Selectors struct {
	items []Selector
}

// Of returns a selector set holding sel in order.
func Of(sel ...Selector) Selectors {
	return Selectors{items: append([]Selector(nil), sel...)}
}

// Union returns s followed by each of others, in order.
// Duplicates are kept.
func (s Selectors) Union(others ...Selectors) Selectors {
	n := len(s.items)
	for _, o := range others {
		n += len(o.items)
	}
	items := make([]Selector, 0, n)
	items = append(items, s.items...)
	for _, o := range others {
		items = append(items, o.items...)
	}
	return Selectors{items: items}
}

// WithModifier appends the modifier name to every selector in s.
// It fails if name is not a valid identifier, or if s is empty or holds a
// TextMate selector.
func (s Selectors) WithModifier(name string) (Selectors, error) {
	mod, err := NewIdentifier(name)
	if err != nil {
		return Selectors{}, err
	}
	return s.mapSemantic("WithModifier", func(sel SemanticSelector) SemanticSelector {
		return sel.WithModifier(mod)
	})
}

// WithLanguage restricts every selector in s to the language name,
// replacing any earlier language. It fails under the same conditions as
// WithModifier.
func (s Selectors) WithLanguage(name string) (Selectors, error) {
	lang, err := NewIdentifier(name)
	if err != nil {
		return Selectors{}, err
	}
	return s.mapSemantic("WithLanguage", func(sel SemanticSelector) SemanticSelector {
		return sel.WithLanguage(lang)
	})
}

func (s Selectors) mapSemantic(op string, fn func(SemanticSelector) SemanticSelector) (Selectors, error) {
	if len(s.items) == 0 {
		return Selectors{}, &StructuralMisuseError{Op: op}
	}
	items := make([]Selector, len(s.items))
	for i, item := range s.items {
		sem, ok := item.(SemanticSelector)
		if !ok {
			return Selectors{}, &StructuralMisuseError{Op: op, Selector: item.String()}
		}
		items[i] = fn(sem)
	}
	return Selectors{items: items}, nil
}

// Len returns the number of selectors.
func (s Selectors) Len() int {
	return len(s.items)
}

// All returns a copy of the selectors in order.
func (s Selectors) All() []Selector {
	return append([]Selector(nil), s.items...)
}

// partition splits s into TextMate scopes and semantic selectors, each in
// their original relative order.
func (s Selectors) partition() ([]string, []SemanticSelector) {
	var scopes []string
	var semantic []SemanticSelector
	for _, item := range s.items {
		switch sel := item.(type) {
		case TextMateSelector:
			scopes = append(scopes, string(sel))
		case SemanticSelector:
			semantic = append(semantic, sel)
		}
	}
	return scopes, semantic
}

// Scopes is an ordered collection of TextMate scopes, the only selectors
// available when semantic highlighting is disabled.
type Scopes struct {
	scopes []string
}

// Union returns s followed by each of others, in order.
func (s Scopes) Union(others ...Scopes) Scopes {
	scopes := append([]string(nil), s.scopes...)
	for _, o := range others {
		scopes = append(scopes, o.scopes...)
	}
	return Scopes{scopes: scopes}
}

// Len returns the number of scopes.
func (s Scopes) Len() int {
	return len(s.scopes)
}

// All returns a copy of the scopes in order.
func (s Scopes) All() []string {
	return append([]string(nil), s.scopes...)
}

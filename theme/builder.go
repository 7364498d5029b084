/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

// accumulator collects rules for both builder flavours.
type accumulator struct {
	typ      Type
	textMate []TextMateRule
	semantic *OrderedMap[SemanticRule]
	colors   *OrderedMap[Color]
	built    bool
}

func newAccumulator() accumulator {
	return accumulator{
		semantic: NewOrderedMap[SemanticRule](),
		colors:   NewOrderedMap[Color](),
	}
}

func (a *accumulator) addTextMate(scopes []string, style Style) {
	if len(scopes) == 0 {
		return
	}
	a.textMate = append(a.textMate, TextMateRule{
		Scopes: append([]string(nil), scopes...),
		Style:  style.clone(),
	})
}

func (a *accumulator) addSemantic(selectors []SemanticSelector, style Style) {
	for _, sel := range selectors {
		a.semantic.Set(sel.String(), SemanticRule{Selector: sel, Style: style.clone()})
	}
}

func (a *accumulator) addColor(c Color, keys []string) {
	for _, k := range keys {
		a.colors.Set(k, c)
	}
}

func (a *accumulator) build(name string, semanticOn bool) (*Theme, error) {
	if a.built {
		return nil, ErrBuilderConsumed
	}
	a.built = true
	t := &Theme{
		name:          name,
		typ:           a.typ,
		textMate:      a.textMate,
		semanticOn:    semanticOn,
		semanticRules: a.semantic,
		colors:        a.colors,
	}
	a.textMate, a.semantic, a.colors = nil, nil, nil
	return t, nil
}

// Builder accumulates rules for a theme with semantic highlighting enabled.
// A Builder is not safe for concurrent use.
type Builder struct {
	acc accumulator
}

// NewBuilder returns a builder whose theme enables semantic highlighting.
func NewBuilder() *Builder {
	return &Builder{acc: newAccumulator()}
}

// SetType declares the theme's base appearance.
func (b *Builder) SetType(t Type) {
	b.acc.typ = t
}

// TM returns a selector set holding one TextMate scope.
func (b *Builder) TM(scope string) Selectors {
	return Of(TextMateSelector(scope))
}

// S returns a selector set holding one semantic selector for kind,
// which is "*" or a token type name.
func (b *Builder) S(kind string) (Selectors, error) {
	k, err := ParseTokenKind(kind)
	if err != nil {
		return Selectors{}, err
	}
	return Of(NewSemanticSelector(k)), nil
}

// Add applies style to every selector in sel.
//
// All TextMate selectors in sel become one new tokenColors rule, even if an
// earlier call used the same scopes. Each semantic selector replaces any
// style previously set for the same encoded selector; styles are never
// merged axis by axis.
func (b *Builder) Add(sel Selectors, style Style) error {
	if b.acc.built {
		return ErrBuilderConsumed
	}
	scopes, semantic := sel.partition()
	b.acc.addTextMate(scopes, style)
	b.acc.addSemantic(semantic, style)
	return nil
}

// AddColor sets the workbench color for each key. A key keeps the position
// of its first insertion; later calls only change its value.
func (b *Builder) AddColor(c Color, keys ...string) error {
	if b.acc.built {
		return ErrBuilderConsumed
	}
	b.acc.addColor(c, keys)
	return nil
}

// Build returns the finished theme. The builder cannot be used afterwards.
func (b *Builder) Build(name string) (*Theme, error) {
	return b.acc.build(name, true)
}

// TextMateBuilder accumulates rules for a theme without semantic
// highlighting. Only TextMate scopes can be targeted.
type TextMateBuilder struct {
	acc accumulator
}

// NewTextMateBuilder returns a builder whose theme disables semantic highlighting.
func NewTextMateBuilder() *TextMateBuilder {
	return &TextMateBuilder{acc: newAccumulator()}
}

// SetType declares the theme's base appearance.
func (b *TextMateBuilder) SetType(t Type) {
	b.acc.typ = t
}

// TM returns a scope set holding one TextMate scope.
func (b *TextMateBuilder) TM(scope string) Scopes {
	return Scopes{scopes: []string{scope}}
}

// Add appends one tokenColors rule targeting scopes. Rules are never merged.
func (b *TextMateBuilder) Add(scopes Scopes, style Style) error {
	if b.acc.built {
		return ErrBuilderConsumed
	}
	b.acc.addTextMate(scopes.scopes, style)
	return nil
}

// AddColor sets the workbench color for each key. A key keeps the position
// of its first insertion; later calls only change its value.
func (b *TextMateBuilder) AddColor(c Color, keys ...string) error {
	if b.acc.built {
		return ErrBuilderConsumed
	}
	b.acc.addColor(c, keys)
	return nil
}

// Build returns the finished theme. The builder cannot be used afterwards.
func (b *TextMateBuilder) Build(name string) (*Theme, error) {
	return b.acc.build(name, false)
}

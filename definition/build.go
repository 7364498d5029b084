/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package definition

import (
	"errors"
	"fmt"
	"slices"

	"bennypowers.dev/vstheme/internal/logger"
	"bennypowers.dev/vstheme/theme"
)

// ErrSemanticDisabled indicates a rule uses semantic selectors in a document
// that turns semantic highlighting off.
var ErrSemanticDisabled = errors.New("semantic selectors require semanticHighlighting")

var errNoTargets = errors.New("rule has no scopes or semantic selectors")

// colorAdder is implemented by both builder flavours.
type colorAdder interface {
	AddColor(c theme.Color, keys ...string) error
}

// SemanticEnabled reports whether the document enables semantic highlighting.
func (d *Document) SemanticEnabled() bool {
	return d.SemanticHighlighting == nil || *d.SemanticHighlighting
}

// Build applies the document's rules, in order, to a new builder and
// returns the built theme.
func (d *Document) Build() (*theme.Theme, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%s: name is required", d.Path)
	}
	typ, err := theme.ParseType(d.Type)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Path, err)
	}
	palette, err := d.resolvePalette()
	if err != nil {
		return nil, err
	}

	if d.SemanticEnabled() {
		b := theme.NewBuilder()
		b.SetType(typ)
		if err := d.addSemanticRules(b, palette); err != nil {
			return nil, err
		}
		if err := d.addColors(b, palette); err != nil {
			return nil, err
		}
		return b.Build(d.Name)
	}

	b := theme.NewTextMateBuilder()
	b.SetType(typ)
	for i, r := range d.Rules {
		if len(r.Semantic) > 0 {
			return nil, d.ruleError(i, ErrSemanticDisabled)
		}
		if len(r.Scopes) == 0 {
			return nil, d.ruleError(i, errNoTargets)
		}
		style, err := r.style(palette)
		if err != nil {
			return nil, d.ruleError(i, err)
		}
		scopes := theme.Scopes{}
		for _, scope := range r.Scopes {
			scopes = scopes.Union(b.TM(scope))
		}
		if err := b.Add(scopes, style); err != nil {
			return nil, d.ruleError(i, err)
		}
	}
	if err := d.addColors(b, palette); err != nil {
		return nil, err
	}
	return b.Build(d.Name)
}

func (d *Document) addSemanticRules(b *theme.Builder, palette map[string]theme.Color) error {
	// first rule index that assigned each encoded selector
	assigned := make(map[string]int)

	for i, r := range d.Rules {
		style, err := r.style(palette)
		if err != nil {
			return d.ruleError(i, err)
		}

		var sel theme.Selectors
		for _, scope := range r.Scopes {
			sel = sel.Union(b.TM(scope))
		}
		for _, s := range r.Semantic {
			sem, err := theme.ParseSemanticSelector(s)
			if err != nil {
				return d.ruleError(i, err)
			}
			key := sem.String()
			if prev, ok := assigned[key]; ok && prev != i {
				logger.Warn("%s: rule %d: semantic selector %q replaces the style from rule %d", d.Path, i, key, prev)
			}
			assigned[key] = i
			sel = sel.Union(theme.Of(sem))
		}

		if sel.Len() == 0 {
			return d.ruleError(i, errNoTargets)
		}
		if err := b.Add(sel, style); err != nil {
			return d.ruleError(i, err)
		}
	}
	return nil
}

func (d *Document) addColors(b colorAdder, palette map[string]theme.Color) error {
	for _, entry := range d.Colors {
		c, err := entry.Color.resolve(palette)
		if err != nil {
			return fmt.Errorf("%s: colors.%s: %w", d.Path, entry.Key, err)
		}
		if err := b.AddColor(c, entry.Key); err != nil {
			return err
		}
	}
	return nil
}

// resolvePalette converts palette entries in sorted name order so errors are
// reported deterministically. Palette entries cannot refer to each other.
func (d *Document) resolvePalette() (map[string]theme.Color, error) {
	names := make([]string, 0, len(d.Palette))
	for name := range d.Palette {
		names = append(names, name)
	}
	slices.Sort(names)

	palette := make(map[string]theme.Color, len(d.Palette))
	for _, name := range names {
		c, err := d.Palette[name].resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("%s: palette.%s: %w", d.Path, name, err)
		}
		palette[name] = c
	}
	return palette, nil
}

func (d *Document) ruleError(i int, err error) error {
	return fmt.Errorf("%s: rule %d: %w", d.Path, i, err)
}

func (r Rule) style(palette map[string]theme.Color) (theme.Style, error) {
	var color *theme.Color
	if r.Color != nil {
		c, err := r.Color.resolve(palette)
		if err != nil {
			return theme.Style{}, err
		}
		color = &c
	}

	if r.FontStyle == "" {
		if color == nil {
			return theme.Style{}, errors.New("rule needs a color or a fontStyle")
		}
		return theme.ColorStyle(*color), nil
	}

	effect, err := theme.ParseFontEffect(r.FontStyle)
	if err != nil {
		return theme.Style{}, err
	}
	if color == nil {
		return theme.EffectStyle(effect), nil
	}
	return theme.ColorEffectStyle(*color, effect), nil
}

// resolve turns c into a color. Strings are looked up in palette
// first and parsed as CSS colors otherwise; an explicit alpha overrides
// theirs.
func (c ColorSpec) resolve(palette map[string]theme.Color) (theme.Color, error) {
	alpha := uint8(0xFF)
	if c.Alpha != nil {
		if *c.Alpha < 0 || *c.Alpha > 255 {
			return theme.Color{}, fmt.Errorf("alpha %d out of range 0-255", *c.Alpha)
		}
		alpha = uint8(*c.Alpha)
	}

	switch {
	case c.Value != "":
		col, ok := palette[c.Value]
		if !ok {
			var err error
			if col, err = theme.ParseColor(c.Value); err != nil {
				return theme.Color{}, err
			}
		}
		if c.Alpha != nil {
			col.A = alpha
		}
		return col, nil
	case c.Oklch != nil:
		if len(c.Oklch) != 3 {
			return theme.Color{}, fmt.Errorf("oklch needs 3 components, got %d", len(c.Oklch))
		}
		return theme.FromOklch(c.Oklch[0], c.Oklch[1], c.Oklch[2], alpha)
	case c.Oklab != nil:
		if len(c.Oklab) != 3 {
			return theme.Color{}, fmt.Errorf("oklab needs 3 components, got %d", len(c.Oklab))
		}
		return theme.FromOklab(c.Oklab[0], c.Oklab[1], c.Oklab[2], alpha)
	default:
		return theme.Color{}, errors.New("empty color")
	}
}

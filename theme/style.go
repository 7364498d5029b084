/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import "fmt"

// FontStyleSetting is the state of one font style axis.
type FontStyleSetting int

const (
	// Inherit leaves the axis to lower-priority rules. It is the zero value.
	Inherit FontStyleSetting = iota

	// True turns the axis on.
	True

	// False turns the axis off.
	False
)

// String returns the string representation of the setting.
func (s FontStyleSetting) String() string {
	switch s {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "inherit"
	}
}

// Bool returns the explicit value of the axis, or false if it inherits.
func (s FontStyleSetting) Bool() (value bool, explicit bool) {
	switch s {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

// FontStyle holds the three font style axes.
type FontStyle struct {
	Bold      FontStyleSetting
	Italic    FontStyleSetting
	Underline FontStyleSetting
}

// FontEffect selects a single font style axis.
type FontEffect int

const (
	// Bold selects the bold axis.
	Bold FontEffect = iota + 1
	// Italic selects the italic axis.
	Italic
	// Underline selects the underline axis.
	Underline
)

// String returns the effect name as used in theme files.
func (e FontEffect) String() string {
	switch e {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	default:
		return fmt.Sprintf("FontEffect(%d)", int(e))
	}
}

// ParseFontEffect parses "bold", "italic", or "underline".
func ParseFontEffect(s string) (FontEffect, error) {
	switch s {
	case "bold":
		return Bold, nil
	case "italic":
		return Italic, nil
	case "underline":
		return Underline, nil
	default:
		return 0, fmt.Errorf("unknown font style %q: expected bold, italic, or underline", s)
	}
}

// fontStyle turns the chosen axis on and the other two off.
func (e FontEffect) fontStyle() FontStyle {
	fs := FontStyle{Bold: False, Italic: False, Underline: False}
	switch e {
	case Bold:
		fs.Bold = True
	case Italic:
		fs.Italic = True
	case Underline:
		fs.Underline = True
	}
	return fs
}

// Style is the styling applied to every selector of one rule.
type Style struct {
	// Foreground is nil when the rule does not set a color.
	Foreground *Color

	FontStyle FontStyle
}

// ColorStyle sets the foreground and inherits every font style axis.
func ColorStyle(c Color) Style {
	return Style{Foreground: &c}
}

// EffectStyle sets one font style axis and explicitly clears the other two.
// The foreground is left unset.
func EffectStyle(e FontEffect) Style {
	return Style{FontStyle: e.fontStyle()}
}

// ColorEffectStyle combines ColorStyle and EffectStyle.
func ColorEffectStyle(c Color, e FontEffect) Style {
	return Style{Foreground: &c, FontStyle: e.fontStyle()}
}

// clone returns a copy of s that shares no memory with it.
func (s Style) clone() Style {
	if s.Foreground != nil {
		c := *s.Foreground
		s.Foreground = &c
	}
	return s
}

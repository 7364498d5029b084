/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/vstheme/formatter"
	"bennypowers.dev/vstheme/theme"
)

// Section names a group of rows.
type Section string

// Sections, in the order they are rendered.
const (
	TokenColors         Section = "token colors"
	SemanticTokenColors Section = "semantic token colors"
	WorkbenchColors     Section = "workbench colors"
)

// Row holds computed display values for a single rule.
type Row struct {
	Section   Section
	Target    string // scopes, encoded semantic selector, or color key
	Color     string // "-" when the rule leaves the foreground alone
	FontStyle string // "-" when every axis inherits
}

// ComputeRows flattens a theme into display rows, one per rule, in output
// order.
func ComputeRows(t *theme.Theme, opts formatter.Options) []Row {
	var rows []Row
	for rule := range t.TextMateRules() {
		rows = append(rows, Row{
			Section:   TokenColors,
			Target:    strings.Join(rule.Scopes, ", "),
			Color:     foreground(rule.Style, opts),
			FontStyle: describeFontStyle(rule.Style.FontStyle),
		})
	}
	if t.SemanticHighlighting() {
		for key, rule := range t.SemanticRules() {
			rows = append(rows, Row{
				Section:   SemanticTokenColors,
				Target:    key,
				Color:     foreground(rule.Style, opts),
				FontStyle: describeFontStyle(rule.Style.FontStyle),
			})
		}
	}
	for c := range t.Colors() {
		rows = append(rows, Row{
			Section:   WorkbenchColors,
			Target:    c.Key,
			Color:     opts.ColorString(c.Color),
			FontStyle: "-",
		})
	}
	return rows
}

func foreground(s theme.Style, opts formatter.Options) string {
	if s.Foreground == nil {
		return "-"
	}
	return opts.ColorString(*s.Foreground)
}

// describeFontStyle lists explicit axes, prefixing those turned off with "!".
func describeFontStyle(fs theme.FontStyle) string {
	var parts []string
	axes := []struct {
		name    string
		setting theme.FontStyleSetting
	}{
		{"bold", fs.Bold},
		{"italic", fs.Italic},
		{"underline", fs.Underline},
	}
	for _, axis := range axes {
		switch axis.setting {
		case theme.True:
			parts = append(parts, axis.name)
		case theme.False:
			parts = append(parts, "!"+axis.name)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (target, color, fontStyle int) {
	target, color, fontStyle = 6, 5, 10 // minimums for headers
	for _, r := range rows {
		target = max(target, len(r.Target))
		color = max(color, len(r.Color))
		fontStyle = max(fontStyle, len(r.FontStyle))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as a plain table, with a swatch before each color.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}
	targetW, colorW, _ := ColumnWidths(rows)
	var section Section
	for _, r := range rows {
		if r.Section != section {
			if section != "" {
				fmt.Fprintln(w)
			}
			section = r.Section
			fmt.Fprintf(w, "%s\n", toTitleCase(string(section)))
		}
		swatch := ""
		if swatches && r.Color != "-" {
			swatch = ColorSwatch(r.Color)
		}
		if _, err := fmt.Fprintf(w, "  %-*s  %s%-*s  %s\n", targetW, r.Target, swatch, colorW, r.Color, r.FontStyle); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as one markdown table per section.
func Markdown(w io.Writer, title string, rows []Row) error {
	if title != "" {
		fmt.Fprintf(w, "# %s\n\n", title)
	}

	first := true
	for _, section := range []Section{TokenColors, SemanticTokenColors, WorkbenchColors} {
		var group []Row
		for _, r := range rows {
			if r.Section == section {
				group = append(group, r)
			}
		}
		if len(group) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false

		heading := toTitleCase(string(section))
		fmt.Fprintf(w, "## %s {#%s}\n\n", heading, slugify(heading))

		targetW, colorW, styleW := ColumnWidths(group)
		fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", targetW, "Target", colorW, "Color", styleW, "Font Style")
		fmt.Fprintf(w, "|-%s-|-%s-|-%s-|\n",
			strings.Repeat("-", targetW), strings.Repeat("-", colorW), strings.Repeat("-", styleW))
		for _, r := range group {
			if _, err := fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", targetW, r.Target, colorW, r.Color, styleW, r.FontStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Token Colors" -> "token-colors"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}

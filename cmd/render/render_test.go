/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/vstheme/formatter"
	"bennypowers.dev/vstheme/schema"
	"bennypowers.dev/vstheme/theme"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Token Colors", "token-colors"},
		{"Semantic Token Colors", "semantic-token-colors"},
		{"editor.background", "editor-background"},
		{"Color  Brand", "color-brand"},
		{"with_underscores", "with-underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := slugify(tt.input)
			if result != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"token colors", "Token Colors"},
		{"workbench colors", "Workbench Colors"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func sampleTheme(t *testing.T) *theme.Theme {
	t.Helper()
	b := theme.NewBuilder()
	kw, err := b.S("keyword")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Add(b.TM("keyword").Union(kw), theme.ColorEffectStyle(theme.RGBA(0xEADFAFFF), theme.Bold)); err != nil {
		t.Fatal(err)
	}
	if err := b.Add(b.TM("comment"), theme.Style{FontStyle: theme.FontStyle{Italic: theme.True}}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddColor(theme.RGBA(0x1E1E1EFF), "editor.background"); err != nil {
		t.Fatal(err)
	}
	th, err := b.Build("Sample")
	if err != nil {
		t.Fatal(err)
	}
	return th
}

func TestComputeRows(t *testing.T) {
	rows := ComputeRows(sampleTheme(t), formatter.Options{Schema: schema.Legacy})

	expected := []Row{
		{TokenColors, "keyword", "#EADFAF", "bold !italic !underline"},
		{TokenColors, "comment", "-", "italic"},
		{SemanticTokenColors, "keyword", "#EADFAF", "bold !italic !underline"},
		{WorkbenchColors, "editor.background", "#1E1E1E", "-"},
	}
	if len(rows) != len(expected) {
		t.Fatalf("expected %d rows, got %d: %+v", len(expected), len(rows), rows)
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], expected[i])
		}
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	rows := ComputeRows(sampleTheme(t), formatter.Options{})
	if err := Table(&buf, rows, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Token Colors\n", "\nSemantic Token Colors\n", "\nWorkbench Colors\n", "#1E1E1EFF"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("swatches disabled but escape codes were written")
	}
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	rows := ComputeRows(sampleTheme(t), formatter.Options{})
	if err := Markdown(&buf, "Sample", rows); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "# Sample\n\n## Token Colors {#token-colors}\n\n") {
		t.Errorf("unexpected markdown start:\n%s", out)
	}
	if !strings.Contains(out, "| editor.background | #1E1E1EFF | -          |") {
		t.Errorf("missing workbench color row:\n%s", out)
	}
}

func TestColorSwatch(t *testing.T) {
	if got := ColorSwatch("#FF0000FF"); got != "\x1b[48;2;255;0;0m  \x1b[0m " {
		t.Errorf("ColorSwatch() = %q", got)
	}
	if got := ColorSwatch("-"); got != "" {
		t.Errorf("ColorSwatch(-) = %q, want empty", got)
	}
}

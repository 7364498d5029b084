/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package definition_test

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/vstheme/definition"
	"bennypowers.dev/vstheme/internal/logger"
	"bennypowers.dev/vstheme/testutil"
	"bennypowers.dev/vstheme/theme"
)

func buildFixture(t *testing.T, path string) *theme.Theme {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "fixtures/definitions/simple", "/defs")
	doc, err := definition.LoadFile(mfs, path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	th, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return th
}

func TestBuild_YAML(t *testing.T) {
	th := buildFixture(t, "/defs/dark.yaml")

	if th.Name() != "Fixture Dark" {
		t.Errorf("Name() = %q", th.Name())
	}
	if th.Type() != theme.Dark {
		t.Errorf("Type() = %v", th.Type())
	}
	if !th.SemanticHighlighting() {
		t.Error("semantic highlighting should default to on")
	}

	rules := slices.Collect(th.TextMateRules())
	if len(rules) != 2 {
		t.Fatalf("expected 2 TextMate rules, got %d", len(rules))
	}
	if got := rules[0].Style.Foreground.Hex(); got != "#6A9955FF" {
		t.Errorf("comment color = %s", got)
	}
	if rules[0].Style.FontStyle.Italic != theme.True || rules[0].Style.FontStyle.Bold != theme.False {
		t.Errorf("comment font style = %+v", rules[0].Style.FontStyle)
	}
	if !slices.Equal(rules[1].Scopes, []string{"keyword", "storage.type"}) {
		t.Errorf("rule 1 scopes = %v", rules[1].Scopes)
	}

	var keys []string
	for k := range th.SemanticRules() {
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []string{"keyword", "*.mutable", "variable.readonly:rust"}) {
		t.Errorf("semantic keys = %v", keys)
	}

	keyword, _ := th.SemanticRule("keyword")
	if *keyword.Style.Foreground != *rules[1].Style.Foreground {
		t.Error("palette color should be shared by TextMate and semantic targets")
	}
	readonly, _ := th.SemanticRule("variable.readonly:rust")
	if readonly.Style.Foreground.A != 128 {
		t.Errorf("explicit alpha ignored: %s", readonly.Style.Foreground)
	}

	var colorKeys []string
	for c := range th.Colors() {
		colorKeys = append(colorKeys, c.Key)
	}
	if !slices.Equal(colorKeys, []string{"editor.foreground", "editor.background", "sideBar.background"}) {
		t.Errorf("color keys = %v, want document order", colorKeys)
	}
	if c, _ := th.Color("editor.foreground"); c.Hex() != "#D4D4D4FF" {
		t.Errorf("palette reference resolved to %s", c.Hex())
	}
}

func TestBuild_JSONC(t *testing.T) {
	th := buildFixture(t, "/defs/light.jsonc")

	if th.Type() != theme.Light {
		t.Errorf("Type() = %v", th.Type())
	}
	if th.SemanticHighlighting() {
		t.Error("semantic highlighting should be off")
	}
	if th.NumTextMateRules() != 2 {
		t.Errorf("NumTextMateRules() = %d", th.NumTextMateRules())
	}
	rules := slices.Collect(th.TextMateRules())
	if got := rules[1].Style.Foreground.Hex(); got != "#A31515FF" {
		t.Errorf("rgb() color = %s", got)
	}

	var colorKeys []string
	for c := range th.Colors() {
		colorKeys = append(colorKeys, c.Key)
	}
	if !slices.Equal(colorKeys, []string{"editor.background", "editor.foreground"}) {
		t.Errorf("color keys = %v, want document order", colorKeys)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
		is      error
	}{
		{
			name:    "missing name",
			doc:     "rules: []",
			wantErr: "name is required",
		},
		{
			name:    "bad type",
			doc:     "name: x\ntype: dim",
			wantErr: `unknown theme type "dim"`,
		},
		{
			name:    "semantic disabled",
			doc:     "name: x\nsemanticHighlighting: false\nrules:\n  - semantic: [variable]\n    color: red",
			wantErr: "rule 0",
			is:      definition.ErrSemanticDisabled,
		},
		{
			name:    "invalid selector",
			doc:     "name: x\nrules:\n  - semantic: [\"my variable\"]\n    color: red",
			wantErr: "rule 0",
			is:      theme.ErrInvalidIdentifier,
		},
		{
			name:    "no targets",
			doc:     "name: x\nrules:\n  - color: red",
			wantErr: "no scopes or semantic selectors",
		},
		{
			name:    "no style",
			doc:     "name: x\nrules:\n  - scopes: [comment]",
			wantErr: "needs a color or a fontStyle",
		},
		{
			name:    "unknown font style",
			doc:     "name: x\nrules:\n  - scopes: [comment]\n    fontStyle: strikethrough",
			wantErr: "unknown font style",
		},
		{
			name:    "out of gamut",
			doc:     "name: x\npalette:\n  hot:\n    oklch: [0.9, 0.4, 30]",
			wantErr: "palette.hot",
			is:      theme.ErrOutOfGamut,
		},
		{
			name:    "bad alpha",
			doc:     "name: x\ncolors:\n  editor.background:\n    oklch: [0.5, 0, 0]\n    alpha: 300",
			wantErr: "colors.editor.background: alpha 300",
		},
		{
			name:    "short oklab",
			doc:     "name: x\ncolors:\n  editor.background:\n    oklab: [0.5, 0]",
			wantErr: "oklab needs 3 components",
		},
		{
			name:    "unknown color",
			doc:     "name: x\ncolors:\n  editor.background: not-a-color",
			wantErr: "colors.editor.background",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := definition.Parse([]byte(tt.doc), "test.yaml")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			_, err = doc.Build()
			if err == nil {
				t.Fatal("Build() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
			if !strings.HasPrefix(err.Error(), "test.yaml: ") {
				t.Errorf("error %q should start with the document path", err.Error())
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("expected errors.Is(%v), got %v", tt.is, err)
			}
		})
	}
}

func TestBuild_WarnsOnSemanticReassignment(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(&bytes.Buffer{}) })

	doc, err := definition.Parse([]byte(`name: x
rules:
  - semantic: [variable]
    color: red
  - semantic: [parameter]
    color: blue
  - semantic: [variable]
    fontStyle: bold
`), "warn.yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	th, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := `warning: warn.yaml: rule 2: semantic selector "variable" replaces the style from rule 0`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("log output %q does not contain %q", buf.String(), want)
	}
	rule, _ := th.SemanticRule("variable")
	if rule.Style.Foreground != nil {
		t.Error("replaced rule kept the earlier color")
	}
}

func TestParse_JSONDetection(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"plain", `{"name": "x"}`},
		{"line comment", "// generated\n{\"name\": \"x\"}"},
		{"block comment", "/* a\n b */ {\"name\": \"x\",}"},
		{"bom", "\xef\xbb\xbf{\"name\": \"x\"}"},
		{"yaml", "name: x"},
		{"yaml flow", "name: \"x\"\nrules: []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := definition.Parse([]byte(tt.data), "doc")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if doc.Name != "x" {
				t.Errorf("Name = %q", doc.Name)
			}
			if doc.Path != "doc" {
				t.Errorf("Path = %q", doc.Path)
			}
		})
	}
}

func TestParse_ColorsMustBeMapping(t *testing.T) {
	if _, err := definition.Parse([]byte("name: x\ncolors:\n  - red"), "doc.yaml"); err == nil {
		t.Error("expected an error for a colors list")
	}
	if _, err := definition.Parse([]byte(`{"name": "x", "colors": ["red"]}`), "doc.json"); err == nil {
		t.Error("expected an error for a colors array")
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/definitions/simple", "/defs")
	if _, err := definition.LoadFile(mfs, "/defs/missing.yaml"); err == nil {
		t.Error("expected error for a missing file")
	}
}

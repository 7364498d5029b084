/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for theme formatters.
package formatter

import (
	"bennypowers.dev/vstheme/schema"
	"bennypowers.dev/vstheme/theme"
)

// DefaultIndent is used when Options.Indent is empty.
const DefaultIndent = "    "

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts a built theme to the target format.
	Format(t *theme.Theme, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Indent is the per-level indentation. Zero value means DefaultIndent.
	Indent string

	// Schema selects the output revision. Zero value means schema.Current.
	Schema schema.Version
}

// IndentOrDefault returns the configured indentation.
func (o Options) IndentOrDefault() string {
	if o.Indent == "" {
		return DefaultIndent
	}
	return o.Indent
}

// ColorString renders c for the configured revision.
func (o Options) ColorString(c theme.Color) string {
	if o.Schema.ElidesOpaqueAlpha() {
		return c.ShortHex()
	}
	return c.Hex()
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme provides the rule and selector model for VS Code color themes.
//
// Rules are accumulated with a Builder. Each call to Add targets a set of
// selectors, which may mix TextMate scopes and semantic token selectors, with
// one Style. TextMate selectors produce a new tokenColors entry per call;
// semantic selectors overwrite any previous style for the same selector.
// Build consumes the builder and returns an immutable Theme, which the
// formatter/vscode package serializes.
//
//	b := theme.NewBuilder()
//	variable, _ := b.S("variable")
//	decl, _ := variable.WithModifier("declaration")
//	_ = b.Add(b.TM("variable").Union(decl), theme.ColorStyle(theme.RGBA(0xD0AAFCFF)))
//	t, _ := b.Build("My Theme")
//
// Themes that disable semantic highlighting are built with a
// TextMateBuilder, whose selectors can only be TextMate scopes.
package theme

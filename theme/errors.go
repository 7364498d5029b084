/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"errors"
	"strings"
)

// Sentinel errors for theme construction.
var (
	// ErrInvalidIdentifier indicates a kind, modifier, or language name contains
	// characters other than ASCII letters, digits, and hyphens.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrStructuralMisuse indicates a selector operation that cannot apply to
	// its operand, such as attaching a modifier to a TextMate scope.
	ErrStructuralMisuse = errors.New("selector misuse")

	// ErrBuilderConsumed indicates a builder was used after Build.
	ErrBuilderConsumed = errors.New("builder already built")

	// ErrOutOfGamut indicates a perceptual color has no sRGB representation.
	ErrOutOfGamut = errors.New("color outside sRGB gamut")
)

// ValidationError reports text that is not a valid identifier.
type ValidationError struct {
	// Value is the offending text, verbatim.
	Value string
	// Reason describes what's wrong.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid identifier ")
	sb.WriteString(quote(e.Value))
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}

// Unwrap allows errors.Is(err, ErrInvalidIdentifier).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidIdentifier
}

// StructuralMisuseError reports a selector operation applied to the wrong
// kind of selector.
type StructuralMisuseError struct {
	// Op is the attempted operation, e.g. "WithModifier".
	Op string
	// Selector is the operand the operation was applied to.
	Selector string
}

// Error implements the error interface.
func (e *StructuralMisuseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Selector == "" {
		sb.WriteString(": no semantic selector to apply to")
		return sb.String()
	}
	sb.WriteString(": cannot apply to TextMate selector ")
	sb.WriteString(quote(e.Selector))
	sb.WriteString(" (modifiers and languages belong to semantic selectors)")
	return sb.String()
}

// Unwrap allows errors.Is(err, ErrStructuralMisuse).
func (e *StructuralMisuseError) Unwrap() error {
	return ErrStructuralMisuse
}

func quote(s string) string {
	return "\"" + s + "\""
}

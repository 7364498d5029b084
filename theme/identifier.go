/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import "strings"

// Identifier is a validated token kind, modifier, or language name.
// The zero value is not a valid identifier.
type Identifier struct {
	text string
}

// NewIdentifier validates s and returns it as an Identifier.
// Only ASCII letters, digits, and hyphens are allowed.
func NewIdentifier(s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, &ValidationError{Value: s, Reason: "must not be empty"}
	}
	for i := 0; i < len(s); i++ {
		if !isIdentifierByte(s[i]) {
			return Identifier{}, &ValidationError{
				Value:  s,
				Reason: "only ASCII letters, digits, and '-' are allowed",
			}
		}
	}
	return Identifier{text: s}, nil
}

// MustIdentifier is like NewIdentifier but panics on invalid input.
// It is intended for identifiers written as literals in Go source.
func MustIdentifier(s string) Identifier {
	id, err := NewIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the identifier text.
func (id Identifier) String() string {
	return id.text
}

// IsZero reports whether id is the zero value.
func (id Identifier) IsZero() bool {
	return id.text == ""
}

// Compare orders identifiers by their text.
func (id Identifier) Compare(other Identifier) int {
	return strings.Compare(id.text, other.text)
}

func isIdentifierByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z',
		c >= 'A' && c <= 'Z',
		c >= '0' && c <= '9',
		c == '-':
		return true
	default:
		return false
	}
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides color theme output revision handling.
package schema

import "fmt"

// Version represents a revision of the generated theme document.
type Version int

const (
	// Unknown represents an unset or unrecognized revision.
	// Consumers treat it as Current.
	Unknown Version = iota

	// Current writes every color as #RRGGBBAA.
	Current

	// Legacy writes opaque colors as #RRGGBB and only translucent
	// colors with an alpha channel.
	Legacy
)

// String returns the string representation of the revision.
func (v Version) String() string {
	switch v {
	case Current:
		return "current"
	case Legacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ElidesOpaqueAlpha reports whether opaque colors drop their alpha digits.
func (v Version) ElidesOpaqueAlpha() bool {
	return v == Legacy
}

// FromString returns the revision from a string representation.
// The empty string selects Current.
func FromString(s string) (Version, error) {
	switch s {
	case "", "current", "rgba", "v2":
		return Current, nil
	case "legacy", "rgb", "v1":
		return Legacy, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownVersion, s)
	}
}

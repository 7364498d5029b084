/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Color is an sRGB color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// RGBA unpacks a 0xRRGGBBAA literal.
func RGBA(v uint32) Color {
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// Hex returns the canonical #RRGGBBAA form with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ShortHex returns #RRGGBB for opaque colors and #RRGGBBAA otherwise.
func (c Color) ShortHex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return c.Hex()
}

// String returns the canonical hex form.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses any CSS color string (hex, rgb(), hsl(), named colors...).
func ParseColor(s string) (Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return Color{R: r, G: g, B: b, A: a}, nil
}

// FromOklch converts an OKLCH color (lightness 0-1, chroma, hue in degrees)
// to sRGB. Colors outside the sRGB gamut are rejected, not clamped.
func FromOklch(l, c, h float64, alpha uint8) (Color, error) {
	return fromColorful(colorful.OkLch(l, c, h), alpha, func() string {
		return fmt.Sprintf("oklch(%g %g %g)", l, c, h)
	})
}

// FromOklab converts an OKLab color to sRGB. Colors outside the sRGB gamut
// are rejected, not clamped.
func FromOklab(l, a, b float64, alpha uint8) (Color, error) {
	return fromColorful(colorful.OkLab(l, a, b), alpha, func() string {
		return fmt.Sprintf("oklab(%g %g %g)", l, a, b)
	})
}

// gamutTolerance absorbs rounding in the Oklab to linear sRGB matrices,
// which lands white slightly above 1 and black slightly below 0.
const gamutTolerance = 1e-6

func fromColorful(col colorful.Color, alpha uint8, describe func() string) (Color, error) {
	for _, ch := range [...]float64{col.R, col.G, col.B} {
		if math.IsNaN(ch) || ch < -gamutTolerance || ch > 1+gamutTolerance {
			return Color{}, fmt.Errorf("%s: %w", describe(), ErrOutOfGamut)
		}
	}
	r, g, b := col.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

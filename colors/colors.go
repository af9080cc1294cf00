// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors resolves the color values accepted throughout ez3d
// (CSS color names, packed 0xRRGGBB numbers, and color strings) into
// colors that the renderer can use. Resolution never fails: unknown
// strings are passed through for the renderer to parse, and values of
// any other type become [DefaultHex].
package colors

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/ez3d/ez3d/math32"
	"golang.org/x/image/colornames"
)

// DefaultHex is the packed color used for values that cannot be
// interpreted as a color at all.
const DefaultHex uint32 = 0x44aa88

// Color is a resolved color value. It is either a packed 0xRRGGBB
// number in Hex, or, when Raw is true, a string in Str that did not
// match a named color and is left for the renderer to parse.
type Color struct {

	// Hex is the packed 0xRRGGBB value; only valid if Raw is false.
	Hex uint32

	// Str is the unresolved color string; only valid if Raw is true.
	Str string

	// Raw is whether this color is an unresolved string.
	Raw bool
}

// Resolve returns the [Color] for the given value:
//   - numeric values are returned unchanged, as a packed color
//   - strings are matched case-insensitively against the named color
//     table, and returned unchanged as a raw string if there is no match
//   - anything else returns [DefaultHex]
func Resolve(value any) Color {
	switch v := value.(type) {
	case Color:
		return v
	case string:
		if c, ok := colornames.Map[strings.ToLower(v)]; ok {
			return Color{Hex: Pack(c)}
		}
		return Color{Str: v, Raw: true}
	case uint32:
		return Color{Hex: v}
	case int:
		return Color{Hex: uint32(v)}
	case int32:
		return Color{Hex: uint32(v)}
	case int64:
		return Color{Hex: uint32(v)}
	case uint:
		return Color{Hex: uint32(v)}
	case uint64:
		return Color{Hex: uint32(v)}
	case float32:
		return Color{Hex: uint32(v)}
	case float64:
		return Color{Hex: uint32(v)}
	}
	return Color{Hex: DefaultHex}
}

// RGBA returns the color as a [color.RGBA] for rendering. Packed values
// are always opaque. Raw strings are parsed with [FromString] and keep
// any alpha they specify (#rrggbbaa or rgba()); an empty string, or one
// that cannot be parsed, degrades to the opaque [DefaultHex].
func (c Color) RGBA() color.RGBA {
	if !c.Raw {
		return Unpack(c.Hex)
	}
	rc, err := FromString(c.Str)
	if err != nil {
		slog.Debug("colors: using default color", "value", c.Str, "err", err)
		return Unpack(DefaultHex)
	}
	return rc
}

func (c Color) String() string {
	if c.Raw {
		return c.Str
	}
	return fmt.Sprintf("#%06x", c.Hex)
}

// Pack returns the 0xRRGGBB packed value of the given color, ignoring alpha.
func Pack(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack returns the opaque [color.RGBA] for the given 0xRRGGBB packed value.
func Unpack(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 0xff}
}

// Names returns the sorted list of named colors.
func Names() []string {
	return colornames.Names
}

// Random returns a uniformly random opaque color.
func Random() Color {
	return Color{Hex: rand.Uint32N(0x1000000)}
}

// RandomNamed returns a uniformly random pick from the named colors.
func RandomNamed() Color {
	nm := colornames.Names[rand.IntN(len(colornames.Names))]
	return Color{Hex: Pack(colornames.Map[nm])}
}

// Lerp returns the linear interpolation between the resolved colors
// a and b at parameter t, where 0 gives a and 1 gives b. The parameter
// is not clamped; channels that extrapolate past the valid range
// saturate at 0 or 255.
func Lerp(a, b any, t float32) color.RGBA {
	ca := Resolve(a).RGBA()
	cb := Resolve(b).RGBA()
	ch := func(x, y uint8) uint8 {
		return uint8(math32.Clamp(math32.Lerp(float32(x), float32(y), t)+0.5, 0, 255))
	}
	return color.RGBA{ch(ca.R, cb.R), ch(ca.G, cb.G), ch(ca.B, cb.B), ch(ca.A, cb.A)}
}

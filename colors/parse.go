// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ez3d/ez3d/base/errors"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// FromName returns the color value specified by the given
// CSS standard color name, matched case-insensitively.
// It returns an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// It accepts hex values (#rgb, #rrggbb, #rrggbbaa, and 0xrrggbb),
// rgb(r, g, b), rgba(r, g, b, a), hsl(h, s%, l%), and standard
// color names. An empty or blank string is an error.
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 {
		return color.RGBA{}, errors.New("colors.FromString: empty color string")
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "0x"):
		return FromHex(lstr[2:])
	case strings.HasPrefix(lstr, "rgba("):
		var r, g, b int
		var a float64
		_, err := fmt.Sscanf(stripArgs(lstr[5:]), "%d %d %d %g", &r, &g, &b, &a)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: could not parse %q: %w", str, err)
		}
		if a <= 1 { // css alpha is 0-1
			a *= 255
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
	case strings.HasPrefix(lstr, "rgb("):
		var r, g, b int
		_, err := fmt.Sscanf(stripArgs(lstr[4:]), "%d %d %d", &r, &g, &b)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: could not parse %q: %w", str, err)
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}, nil
	case strings.HasPrefix(lstr, "hsl("):
		var h, s, l float64
		_, err := fmt.Sscanf(stripArgs(lstr[4:]), "%g %g %g", &h, &s, &l)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: could not parse %q: %w", str, err)
		}
		r, g, b := colorful.Hsl(h, s/100, l/100).Clamped().RGB255()
		return color.RGBA{r, g, b, 0xff}, nil
	}
	return FromName(lstr)
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// stripArgs turns "1, 2%, 3)" into "1 2 3".
func stripArgs(s string) string {
	s = strings.TrimSuffix(s, ")")
	s = strings.NewReplacer(",", " ", "%", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

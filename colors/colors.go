// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses and formats the CSS color strings
// carried by scene element paint attributes.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Black is the default paint color.
const Black = "#000000"

// White is the default export background color.
const White = "#ffffff"

// Transparent is the fully transparent color.
var Transparent = color.RGBA{}

// IsNone returns whether the given paint string means no paint.
func IsNone(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "" || s == "none" || s == "transparent"
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "transparent" {
		return Transparent, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given hex color string: #rgb, #rgba, #rrggbb or #rrggbbaa.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	switch len(hex) {
	case 4, 7:
		c, err := colorful.Hex(hex)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	case 5, 9:
		n := (len(hex) - 1) / 4
		c, err := FromHex(hex[:len(hex)-n])
		if err != nil {
			return c, err
		}
		a, err := strconv.ParseUint(hex[len(hex)-n:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process alpha of %q: %w", hex, err)
		}
		if n == 1 {
			a |= a << 4
		}
		return premultiply(c, float32(a)/255), nil
	}
	return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
}

// FromString returns a color value from the given CSS string:
// hex values, rgb(), rgba(), hsl(), hsla() functions, or standard color names.
// The empty string and "none" return the transparent color.
func FromString(str string) (color.RGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr == "" || lstr == "none":
		return Transparent, nil
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgb"):
		args, err := funcArgs(lstr)
		if err != nil {
			return color.RGBA{}, err
		}
		if len(args) != 3 && len(args) != 4 {
			return color.RGBA{}, fmt.Errorf("colors.FromString: %q needs 3 or 4 components", str)
		}
		var v [3]uint8
		for i := range 3 {
			f, err := component(args[i], 255)
			if err != nil {
				return color.RGBA{}, err
			}
			v[i] = uint8(clamp(f, 0, 255) + 0.5)
		}
		c := color.RGBA{v[0], v[1], v[2], 255}
		if len(args) == 4 {
			a, err := component(args[3], 1)
			if err != nil {
				return color.RGBA{}, err
			}
			c = premultiply(c, a)
		}
		return c, nil
	case strings.HasPrefix(lstr, "hsl"):
		args, err := funcArgs(lstr)
		if err != nil {
			return color.RGBA{}, err
		}
		if len(args) != 3 && len(args) != 4 {
			return color.RGBA{}, fmt.Errorf("colors.FromString: %q needs 3 or 4 components", str)
		}
		h, err := component(strings.TrimSuffix(args[0], "deg"), 1)
		if err != nil {
			return color.RGBA{}, err
		}
		s, err := component(args[1], 1)
		if err != nil {
			return color.RGBA{}, err
		}
		l, err := component(args[2], 1)
		if err != nil {
			return color.RGBA{}, err
		}
		r, g, b := colorful.Hsl(float64(h), float64(s), float64(l)).Clamped().RGB255()
		c := color.RGBA{r, g, b, 255}
		if len(args) == 4 {
			a, err := component(args[3], 1)
			if err != nil {
				return color.RGBA{}, err
			}
			c = premultiply(c, a)
		}
		return c, nil
	}
	return FromName(lstr)
}

// funcArgs returns the comma or space separated arguments of a
// CSS color function such as rgba(1, 2, 3, 0.5).
func funcArgs(s string) ([]string, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("colors.FromString: malformed color function %q", s)
	}
	body := strings.ReplaceAll(s[open+1:len(s)-1], "/", " ")
	return strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}), nil
}

// component parses a number or percentage, where 100% maps to full.
func component(s string, full float32) (float32, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("colors.FromString: invalid component %q: %w", s, err)
	}
	if pct {
		return float32(f) / 100 * full, nil
	}
	return float32(f), nil
}

func clamp(f, lo, hi float32) float32 {
	return min(max(f, lo), hi)
}

func premultiply(c color.RGBA, a float32) color.RGBA {
	a = clamp(a, 0, 1)
	c.R = uint8(float32(c.R)*a + 0.5)
	c.G = uint8(float32(c.G)*a + 0.5)
	c.B = uint8(float32(c.B)*a + 0.5)
	c.A = uint8(a*255 + 0.5)
	return c
}

// unpremultiply returns the straight (non-premultiplied) components and alpha.
func unpremultiply(c color.RGBA) (r, g, b uint8, a float32) {
	if c.A == 0 {
		return 0, 0, 0, 0
	}
	if c.A == 255 {
		return c.R, c.G, c.B, 1
	}
	f := 255 / float32(c.A)
	un := func(v uint8) uint8 { return uint8(clamp(float32(v)*f+0.5, 0, 255)) }
	return un(c.R), un(c.G), un(c.B), float32(c.A) / 255
}

// AsHex returns the color as a lowercase #rrggbb string,
// or #rrggbbaa when it is not fully opaque.
func AsHex(c color.RGBA) string {
	r, g, b, a := unpremultiply(c)
	if a == 1 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, uint8(a*255+0.5))
}

// AsString returns the color as #rrggbb when opaque,
// and as rgba(r, g, b, a) otherwise.
func AsString(c color.RGBA) string {
	r, g, b, a := unpremultiply(c)
	if a == 1 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, float32(int(a*1000+0.5))/1000)
}

// WithOpacity returns the given paint string with its alpha multiplied
// by the given opacity. Opaque results keep the original string.
func WithOpacity(paint string, opacity float32) (string, error) {
	if opacity >= 1 {
		return paint, nil
	}
	c, err := FromString(paint)
	if err != nil {
		return paint, err
	}
	r, g, b, a := unpremultiply(c)
	return AsString(premultiply(color.RGBA{r, g, b, 255}, a*opacity)), nil
}

// Valid reports whether the given string is a parsable color.
func Valid(s string) bool {
	_, err := FromString(s)
	return err == nil
}

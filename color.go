package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault means "no color": transparent fills, the surface's
	// default foreground for text.
	ColorDefault ColorType = iota
	// ColorANSI is an entry of the ANSI 256 palette.
	ColorANSI
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is a paint color usable by every drawing backend.
// The zero value is the default (unset) color.
type Color struct {
	typ     ColorType
	r, g, b uint8
}

// DefaultColor returns the unset color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// Standard ANSI colors.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

var namedColors = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
}

// ParseColor accepts "#RRGGBB", "#RGB", a basic color name, or "" for the
// default color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "default" || s == "none" {
		return DefaultColor(), nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the unset color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String formats the color the way ParseColor accepts it.
func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		for name, named := range namedColors {
			if named == c {
				return name
			}
		}
		r, g, b := c.ToRGBValues()
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "default"
	}
}

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

// ToANSI approximates an RGB color with the ANSI 256 palette: the
// grayscale ramp for grays, the 6x6x6 cube otherwise. Other colors are
// returned unchanged.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}
	r, g, b := c.r, c.g, c.b
	if r == g && g == b {
		switch {
		case r < 8:
			return ANSIColor(16)
		case r > 248:
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}
	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return ANSIColor(uint8(16 + 36*ri + 6*gi + bi))
}

// ToRGBValues returns the red, green, and blue components of any color.
// ANSI colors are approximated; the default color is black.
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			// 6x6x6 cube: index = 16 + 36*r + 6*g + b
			idx -= 16
			cube := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return 55 + v*40
			}
			return cube(idx / 36), cube((idx % 36) / 6), cube(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

// RGBA converts the color for image-based backends. The default color is
// fully transparent.
func (c Color) RGBA() color.RGBA {
	if c.typ == ColorDefault {
		return color.RGBA{}
	}
	r, g, b := c.ToRGBValues()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

package tiledb

import (
	"fmt"
	"strconv"
)

// ColorKind discriminates how a color is specified.
type ColorKind int8

const (
	// ColorDefault is the zero value: palette index (0, 3), white.
	ColorDefault ColorKind = iota
	// ColorPaletted takes the color from the global palette at (X, Y).
	ColorPaletted
	// ColorRGB sets the color directly to (R, G, B).
	ColorRGB
)

// Color is a tile's color: either an index into the global palette or a
// direct RGB value. The zero value is the default palette entry (0, 3).
type Color struct {
	Kind    ColorKind
	X, Y    uint8
	R, G, B uint8
}

func (c Color) String() string {
	switch c.Kind {
	case ColorRGB:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	case ColorPaletted:
		return fmt.Sprintf("(%d, %d)", c.X, c.Y)
	}
	return "(0, 3)"
}

// UnmarshalTOML decodes a color from a TOML array: two elements are a
// palette index, three a direct RGB value.
func (c *Color) UnmarshalTOML(v interface{}) error {
	arr, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("color must be an array of 2 or 3 numbers, is %T", v)
	}
	vals := make([]uint8, 0, 3)
	for _, el := range arr {
		n, ok := el.(int64)
		if !ok || n < 0 || n > 255 {
			return fmt.Errorf("color component %v is not a byte value", el)
		}
		vals = append(vals, uint8(n))
	}
	switch len(vals) {
	case 2:
		*c = Color{Kind: ColorPaletted, X: vals[0], Y: vals[1]}
	case 3:
		*c = Color{Kind: ColorRGB, R: vals[0], G: vals[1], B: vals[2]}
	default:
		return fmt.Errorf("color array has %d element(s), expected 2 or 3", len(vals))
	}
	return nil
}

// Palette positions for the well-known color names.
var colorNames = map[string][2]uint8{
	"maroon": {2, 1},
	"gold":   {6, 2},
	"teal":   {1, 2},
	"red":    {2, 2},
	"orange": {2, 3},
	"yellow": {2, 4},
	"lime":   {5, 3},
	"green":  {5, 2},
	"cyan":   {1, 4},
	"blue":   {3, 2},
	"purple": {3, 1},
	"pink":   {4, 1},
	"rosy":   {4, 2},
	"grey":   {0, 1},
	"gray":   {0, 1}, // aliased
	"black":  {0, 4},
	"silver": {0, 2},
	"white":  {0, 3},
	"brown":  {6, 1},
}

// ParseColor parses a color from its textual form: "#RRGGBB" or a
// well-known color name.
func ParseColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		if len(s) != 7 {
			return Color{}, fmt.Errorf("RGB color %q must be exactly 7 characters long", s)
		}
		rgb, err := strconv.ParseUint(s[1:], 16, 24)
		if err != nil {
			return Color{}, fmt.Errorf("RGB color %q must be in base 16", s)
		}
		return Color{
			Kind: ColorRGB,
			R:    uint8(rgb >> 16),
			G:    uint8(rgb >> 8),
			B:    uint8(rgb),
		}, nil
	}
	if s == "darkpink" { // holdover from RIC
		return Color{Kind: ColorRGB, R: 0x80, G: 0x00, B: 0x3B}, nil
	}
	if xy, ok := colorNames[s]; ok {
		return Color{Kind: ColorPaletted, X: xy[0], Y: xy[1]}, nil
	}
	return Color{}, fmt.Errorf("%q is not a valid color name", s)
}

package wheel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultTextColor is used for segments without a TextColor.
var DefaultTextColor = color.RGBA{A: 0xff}

// ParseHex parses #RGB, #RGBA, #RRGGBB and #RRGGBBAA into a color.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("parse color %q: bad length", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatHex renders c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func FormatHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// FillColor returns the parsed fill of seg, or fallback if it does not parse.
func (seg Segment) FillColor(fallback color.Color) color.Color {
	c, err := ParseHex(seg.Color)
	if err != nil {
		return fallback
	}
	return c
}

// LabelColor returns the parsed text color of seg, DefaultTextColor when it
// is unset or does not parse.
func (seg Segment) LabelColor() color.Color {
	if seg.TextColor == "" {
		return DefaultTextColor
	}
	c, err := ParseHex(seg.TextColor)
	if err != nil {
		return DefaultTextColor
	}
	return c
}

// Package colorutil provides shared color utilities for the magnifier application.
package colorutil

import (
	"image/color"
	"strings"
)

// Common colors used by the lens renderer.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// ParseHex parses a CSS-style hex color: "#fff", "#ffffff", "#ffffffff".
// Returns White if the string cannot be parsed, so a bad configuration
// value degrades to the default corner color instead of failing.
func ParseHex(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(s) {
	case 3:
		r, okR := hexNibble(s[0])
		g, okG := hexNibble(s[1])
		b, okB := hexNibble(s[2])
		if !okR || !okG || !okB {
			return White
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}
	case 6, 8:
		var v [4]uint8
		v[3] = 255
		for i := 0; i*2 < len(s); i++ {
			hi, okH := hexNibble(s[i*2])
			lo, okL := hexNibble(s[i*2+1])
			if !okH || !okL {
				return White
			}
			v[i] = hi*16 + lo
		}
		return color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
	default:
		return White
	}
}

// hexNibble converts a single hex digit to its value.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Package color implements the colorimetry primitives behind theme
// validation: parsing of CSS color strings, WCAG relative luminance, and
// contrast-ratio computation.
package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB represents a color in sRGB space with 0-255 channels.
type RGB struct {
	R, G, B uint8
}

// Neutral is the fallback used when a color value cannot be parsed. Validation
// continues against it so a broken scheme still produces a full report.
var Neutral = RGB{R: 128, G: 128, B: 128}

var (
	rgbFuncPattern = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)
	hslFuncPattern = regexp.MustCompile(`(?i)^hsla?\(\s*([\d.]+)\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*(?:,\s*[\d.]+\s*)?\)$`)
)

// Parse interprets a color string in hex (#RGB, #RRGGBB, #RRGGBBAA),
// rgb()/rgba(), or hsl()/hsla() notation. The boolean reports whether the
// value was parseable; on failure the neutral fallback is returned.
func Parse(value string) (RGB, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Neutral, false
	}

	if strings.HasPrefix(value, "#") {
		return parseHex(value)
	}
	if m := rgbFuncPattern.FindStringSubmatch(value); m != nil {
		return parseRGBFunc(m)
	}
	if m := hslFuncPattern.FindStringSubmatch(value); m != nil {
		return parseHSLFunc(m)
	}
	return Neutral, false
}

func parseHex(value string) (RGB, bool) {
	hex := strings.TrimPrefix(value, "#")
	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[i*2] = hex[i]
			expanded[i*2+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
	case 8:
		hex = hex[:6] // alpha ignored for luminance purposes
	default:
		return Neutral, false
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return Neutral, false
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return Neutral, false
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return Neutral, false
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

func parseRGBFunc(m []string) (RGB, bool) {
	channels := [3]uint8{}
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v > 255 {
			return Neutral, false
		}
		channels[i] = uint8(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

func parseHSLFunc(m []string) (RGB, bool) {
	h, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Neutral, false
	}
	s, err := strconv.ParseFloat(m[2], 64)
	if err != nil || s > 100 {
		return Neutral, false
	}
	l, err := strconv.ParseFloat(m[3], 64)
	if err != nil || l > 100 {
		return Neutral, false
	}
	return hslToRGB(math.Mod(h, 360), s/100, l/100), true
}

func hslToRGB(h, s, l float64) RGB {
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}

// Luminance calculates the WCAG 2.1 relative luminance of a color.
// https://www.w3.org/WAI/GL/wiki/Relative_luminance
func Luminance(c RGB) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts an sRGB channel to linear RGB.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two color strings,
// in the range [1, 21]. Unparsable input on either side yields 1, the minimum
// ratio, so validation can continue and still report a failing result.
func ContrastRatio(foreground, background string) float64 {
	fg, okFg := Parse(foreground)
	bg, okBg := Parse(background)
	if !okFg || !okBg {
		return 1
	}
	return Ratio(fg, bg)
}

// Ratio computes the contrast ratio between two parsed colors.
func Ratio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

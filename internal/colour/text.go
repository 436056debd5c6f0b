package colour

var (
	white = RGB{R: 255, G: 255, B: 255}
	black = RGB{R: 0, G: 0, B: 0}
)

// TextColour selects a text/overlay colour for the given background.
//
// White is preferred when it meets WCAG AAA (7:1) contrast against the
// background, then black. When neither reaches AAA the higher-contrast of
// the two is returned as best effort; callers can layer a shadow or outline
// to compensate.
func TextColour(bg RGB) RGB {
	whiteRatio := ContrastRatio(white, bg)
	if whiteRatio >= 7.0 {
		return white
	}

	blackRatio := ContrastRatio(black, bg)
	if blackRatio >= 7.0 {
		return black
	}

	if whiteRatio >= blackRatio {
		return white
	}
	return black
}

// Complementary generates a secondary accent colour for the given colour.
//
// The hue is rotated by 180 degrees, saturation is clamped to [0.3, 0.7] so
// the accent is neither washed out nor garish, and lightness is nudged away
// from the source's luminance extreme. This is a theming accent, not a text
// colour; it carries no contrast guarantee.
func Complementary(c RGB) RGB {
	h, s, l := RGBToHSL(c)

	h += 180
	if h >= 360 {
		h -= 360
	}

	if s < 0.3 {
		s = 0.3
	} else if s > 0.7 {
		s = 0.7
	}

	lum := Luminance(c)
	if lum < 0.3 && l < 0.4 {
		l = 0.4
	} else if lum > 0.7 && l > 0.6 {
		l = 0.6
	}

	return HSLToRGB(h, s, l)
}

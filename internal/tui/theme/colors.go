package theme

import colorful "github.com/lucasb-eyer/go-colorful"

// parse returns the color for a "#rrggbb" string. ok is false for anything
// else, including ANSI color numbers.
func parse(hex string) (colorful.Color, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	return c, err == nil
}

// scale multiplies every channel by factor and lifts it to at least floor
// (0..255), keeping dark shades visible on dark backgrounds.
func scale(hex string, factor float64, floor int) string {
	c, ok := parse(hex)
	if !ok {
		return hex
	}
	lo := float64(floor) / 255
	channel := func(v float64) float64 { return max(v*factor, lo) }
	return colorful.Color{R: channel(c.R), G: channel(c.G), B: channel(c.B)}.Clamped().Hex()
}

// darkenColor halves a color for use as a cell background.
func darkenColor(hex string) string {
	return scale(hex, 0.50, 40)
}

// muteColor darkens a color further than darkenColor so it recedes.
func muteColor(hex string) string {
	return scale(hex, 0.30, 30)
}

// alternateShade gives stacked tokens a second background so neighbours
// stay distinguishable.
func alternateShade(hex string, isLight bool) string {
	if isLight {
		return blendColors(hex, "#000000", 0.10)
	}
	return blendColors(hex, "#ffffff", 0.30)
}

// blendColors mixes b into a by ratio in RGB space. Invalid input returns a.
func blendColors(a, b string, ratio float64) string {
	ca, okA := parse(a)
	cb, okB := parse(b)
	if !okA || !okB {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance is the WCAG luminance of a hex color, 0 when it cannot
// be parsed.
func relativeLuminance(hex string) float64 {
	c, ok := parse(hex)
	if !ok {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

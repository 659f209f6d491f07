package colour

// MinContrast is the WCAG AA contrast ratio for normal text.
const MinContrast = 4.5

var (
	White = RGB{red: 1, green: 1, blue: 1, alpha: 1}
	Black = RGB{alpha: 1}
)

// Text colours at the Material emphasis levels.
var (
	LightTextHigh     = RGB{red: 1, green: 1, blue: 1, alpha: 1}
	LightTextMedium   = RGB{red: 1, green: 1, blue: 1, alpha: 0.6}
	LightTextDisabled = RGB{red: 1, green: 1, blue: 1, alpha: 0.38}
	DarkTextHigh      = RGB{alpha: 0.87}
	DarkTextMedium    = RGB{alpha: 0.6}
	DarkTextDisabled  = RGB{alpha: 0.38}
)

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
// Alpha is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.red) + 0.7152*linearize(c.green) + 0.0722*linearize(c.blue)
}

// opaque drops the alpha channel of a translucent colour.
func opaque(c RGB) RGB {
	c.alpha = 1
	return c
}

// ContrastRatio returns the WCAG contrast ratio between a foreground and a
// background, in [1, 21]. A translucent foreground is composited over the
// background first; the background is treated as opaque.
func ContrastRatio(fg, bg RGB) float64 {
	bg = opaque(bg)
	if 1-fg.alpha >= Accuracy {
		d := bg.alpha * (1 - fg.alpha)
		fg = RGB{
			red:   fg.red*fg.alpha + bg.red*d,
			green: fg.green*fg.alpha + bg.green*d,
			blue:  fg.blue*fg.alpha + bg.blue*d,
			alpha: fg.alpha + d,
		}
	}

	l1 := RelativeLuminance(fg)
	l2 := RelativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// prefersLightText reports whether white text reads better than black on bg.
func prefersLightText(bg RGB) bool {
	white := ContrastRatio(White, bg)
	if white >= MinContrast {
		return true
	}
	dark := ContrastRatio(Black, bg)
	if dark >= MinContrast {
		return false
	}
	return white > dark
}

// TextColour returns the high-emphasis text colour to draw on bg: white when
// it reaches MinContrast, otherwise black when that does, otherwise
// whichever contrasts more.
func TextColour(bg RGB) RGB {
	if prefersLightText(bg) {
		return LightTextHigh
	}
	return DarkTextHigh
}

// MinimumTextAlpha returns the text colour for bg with the lowest alpha, not
// below the high-emphasis alpha, that still reaches MinContrast.
func MinimumTextAlpha(bg RGB) RGB {
	text := TextColour(bg)
	bg = opaque(bg)

	lo, hi := text.alpha-0.01, 1.0
	for hi-lo > 0.01 {
		mid := (lo + hi) / 2
		probe := text
		probe.alpha = mid
		if ContrastRatio(probe, bg) < MinContrast {
			lo = mid
		} else {
			hi = mid
		}
	}
	text.alpha = min(max(hi, text.alpha), 1)
	return text
}

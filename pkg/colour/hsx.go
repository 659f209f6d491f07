package colour

import "math"

// hueOf returns the hue in whole degrees for channels whose max and min
// differ by more than Accuracy.
func hueOf(c RGB, maxVal, minVal float64) float64 {
	var h float64
	if maxVal-minVal > Accuracy {
		switch maxVal {
		case c.red:
			h = 60 * (c.green - c.blue) / (maxVal - minVal)
		case c.green:
			h = 60*(c.blue-c.red)/(maxVal-minVal) + 120
		case c.blue:
			h = 60*(c.red-c.green)/(maxVal-minVal) + 240
		}
	}
	return math.Mod(math.Round(h+360), 360)
}

// HSB converts the colour to hue, saturation, brightness. Hue is rounded to
// whole degrees.
func (c RGB) HSB() HSB {
	maxVal := math.Max(c.red, math.Max(c.green, c.blue))
	minVal := math.Min(c.red, math.Min(c.green, c.blue))

	var s float64
	if maxVal-minVal > Accuracy {
		s = (maxVal - minVal) / maxVal
	}
	return HSB{hue: hueOf(c, maxVal, minVal), saturation: s, value: maxVal, alpha: c.alpha}
}

// HSL converts the colour to hue, saturation, lightness. Hue is rounded to
// whole degrees.
func (c RGB) HSL() HSL {
	maxVal := math.Max(c.red, math.Max(c.green, c.blue))
	minVal := math.Min(c.red, math.Min(c.green, c.blue))
	l := clamp01(0.5 * (maxVal + minVal))

	var s float64
	if maxVal-minVal > Accuracy {
		if l > 0 && l <= 0.5 {
			s = clamp01((maxVal - minVal) / (2 * l))
		} else {
			s = clamp01((maxVal - minVal) / (2 - 2*l))
		}
	}
	return HSL{hue: hueOf(c, maxVal, minVal), saturation: s, lightness: l, alpha: c.alpha}
}

// hsxToRGB builds an RGB colour from a hue, the chroma and the amount m added
// to every channel. It serves both HSB and HSL.
func hsxToRGB(hue, alpha, chroma, m float64) RGB {
	r, g, b := m, m, m
	h := math.Mod(hue, 360) / 60
	// second largest component
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))

	switch int(math.Floor(h)) {
	case 0:
		r += chroma
		g += x
	case 1:
		r += x
		g += chroma
	case 2:
		g += chroma
		b += x
	case 3:
		g += x
		b += chroma
	case 4:
		r += x
		b += chroma
	case 5:
		r += chroma
		b += x
	}
	return RGB{red: clamp01(r), green: clamp01(g), blue: clamp01(b), alpha: alpha}
}

// RGB converts the colour to sRGB.
func (c HSB) RGB() RGB {
	chroma := c.value * c.saturation
	return hsxToRGB(c.hue, c.alpha, chroma, math.Max(0, c.value-chroma))
}

// HSL converts the colour to hue, saturation, lightness without passing
// through RGB.
func (c HSB) HSL() HSL {
	l := clamp01((2 - c.saturation) * c.value / 2)
	var s float64
	if l > 0 && l < 1 {
		if l < 0.5 {
			s = c.saturation * c.value / (2 * l)
		} else {
			s = c.saturation * c.value / (2 - 2*l)
		}
	}
	return HSL{hue: c.hue, saturation: clamp01(s), lightness: l, alpha: c.alpha}
}

// RGB converts the colour to sRGB.
func (c HSL) RGB() RGB {
	chroma := (1 - math.Abs(2*c.lightness-1)) * c.saturation
	return hsxToRGB(c.hue, c.alpha, chroma, math.Max(0, c.lightness-chroma/2))
}

// HSB converts the colour to hue, saturation, brightness without passing
// through RGB.
func (c HSL) HSB() HSB {
	lum := c.lightness
	if lum >= 0.5 {
		lum = 1 - c.lightness
	}
	b := c.saturation * lum
	v := clamp01(c.lightness + b)
	var s float64
	if v > 0 {
		s = 2 * b / v
	}
	return HSB{hue: c.hue, saturation: clamp01(s), value: v, alpha: c.alpha}
}

// SnapHue round-trips the colour through HSB, which rounds its hue to whole
// degrees.
func SnapHue(c RGB) RGB {
	return c.HSB().RGB()
}

package colour

import "math"

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// CIE L*a*b* companding constants.
const (
	labDelta   = 6.0 / 29.0
	labOffset  = 4.0 / 29.0
	labEpsilon = labDelta * labDelta * labDelta
)

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// linearize removes the sRGB transfer curve from a channel.
func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// compand applies the sRGB transfer curve to a linear channel.
func compand(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3.0)
	}
	return t/(3*labDelta*labDelta) + labOffset
}

func labFInverse(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - labOffset)
}

// XYZ converts the colour to CIE XYZ.
func (c RGB) XYZ() XYZ {
	r := linearize(c.red)
	g := linearize(c.green)
	b := linearize(c.blue)
	return XYZ{
		x:     0.4124564*r + 0.3575761*g + 0.1804375*b,
		y:     0.2126729*r + 0.7151522*g + 0.072175*b,
		z:     0.0193339*r + 0.119192*g + 0.9503041*b,
		alpha: c.alpha,
	}
}

// LAB converts the colour to CIE L*a*b*.
func (c RGB) LAB() LAB {
	return c.XYZ().LAB()
}

// LCH converts the colour to CIE LCh.
func (c RGB) LCH() LCH {
	return c.LAB().LCH()
}

// RGB converts the colour to sRGB. Out-of-gamut channels are clipped to [0, 1].
func (c XYZ) RGB() RGB {
	r := 3.2404542*c.x + -1.5371385*c.y + -0.4985314*c.z
	g := -0.969266*c.x + 1.8760108*c.y + 0.041556*c.z
	b := 0.0556434*c.x + -0.2040259*c.y + 1.0572252*c.z
	return RGB{
		red:   clamp01(compand(r)),
		green: clamp01(compand(g)),
		blue:  clamp01(compand(b)),
		alpha: clamp01(c.alpha),
	}
}

// LAB converts the colour to CIE L*a*b*.
func (c XYZ) LAB() LAB {
	fx := labF(c.x / whiteX)
	fy := labF(c.y / whiteY)
	fz := labF(c.z / whiteZ)
	return LAB{
		lightness: math.Max(116*fy-16, 0),
		a:         500 * (fx - fy),
		b:         200 * (fy - fz),
		alpha:     c.alpha,
	}
}

// XYZ converts the colour to CIE XYZ.
func (c LAB) XYZ() XYZ {
	fy := (c.lightness + 16) / 116
	fx := fy + c.a/500
	fz := fy - c.b/200
	return XYZ{
		x:     whiteX * labFInverse(fx),
		y:     whiteY * labFInverse(fy),
		z:     whiteZ * labFInverse(fz),
		alpha: c.alpha,
	}
}

// LCH converts the colour to its polar form. Hue is in [0, 360).
func (c LAB) LCH() LCH {
	hue := math.Mod(math.Atan2(c.b, c.a)*180/math.Pi+360, 360)
	return LCH{
		lightness: c.lightness,
		chroma:    math.Sqrt(c.a*c.a + c.b*c.b),
		hue:       hue,
		alpha:     c.alpha,
	}
}

// RGB converts the colour to sRGB through XYZ.
func (c LAB) RGB() RGB {
	return c.XYZ().RGB()
}

// LAB converts the colour to cartesian L*a*b*.
func (c LCH) LAB() LAB {
	hr := c.hue / 360 * 2 * math.Pi
	return LAB{
		lightness: c.lightness,
		a:         c.chroma * math.Cos(hr),
		b:         c.chroma * math.Sin(hr),
		alpha:     c.alpha,
	}
}

// RGB converts the colour to sRGB through LAB and XYZ.
func (c LCH) RGB() RGB {
	return c.LAB().XYZ().RGB()
}

// Package colour provides colour value types for the RGB, HSB, HSL, LAB, LCH
// and XYZ spaces, exact conversions between them, and the CIEDE2000 colour
// difference.
//
// Every value type is immutable: components are validated once by the
// constructor and only exposed through accessors.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// Accuracy is the tolerance used when comparing colour components.
const Accuracy = 1.0 / (1 << 16)

// Opaque is the alpha value of a fully opaque colour.
const Opaque = 1.0

// hueMax is the exclusive upper bound of a hue angle in degrees.
const hueMax = 360.0

// checkRange rejects NaN and values outside [0, maxValue].
func checkRange(label string, value, maxValue float64) error {
	if math.IsNaN(value) || value < 0 || value > maxValue {
		return &RangeError{Label: label, Value: value, Max: maxValue}
	}
	return nil
}

// checkHue rejects NaN and angles outside [0, 360).
func checkHue(value float64) error {
	if math.IsNaN(value) || value < 0 || value >= hueMax {
		return &RangeError{Label: "hue", Value: value, Max: hueMax}
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) < Accuracy
}

// RGB is an sRGB colour with channels in [0, 1].
type RGB struct {
	red, green, blue, alpha float64
}

// NewRGB validates and returns an RGB colour.
func NewRGB(red, green, blue, alpha float64) (RGB, error) {
	if err := firstError(
		checkRange("red", red, 1),
		checkRange("green", green, 1),
		checkRange("blue", blue, 1),
		checkRange("alpha", alpha, 1),
	); err != nil {
		return RGB{}, err
	}
	return RGB{red: red, green: green, blue: blue, alpha: alpha}, nil
}

// R returns the red channel.
func (c RGB) R() float64 { return c.red }

// G returns the green channel.
func (c RGB) G() float64 { return c.green }

// B returns the blue channel.
func (c RGB) B() float64 { return c.blue }

// Alpha returns the alpha channel.
func (c RGB) Alpha() float64 { return c.alpha }

// Equal reports whether both colours match within Accuracy.
func (c RGB) Equal(o RGB) bool {
	return near(c.red, o.red) && near(c.green, o.green) && near(c.blue, o.blue) && near(c.alpha, o.alpha)
}

// WithAlpha returns the colour with its alpha replaced.
func (c RGB) WithAlpha(alpha float64) (RGB, error) {
	return NewRGB(c.red, c.green, c.blue, alpha)
}

// RGBA implements color.Color. Channels are alpha-premultiplied.
func (c RGB) RGBA() (r, g, b, a uint32) {
	const full = 0xffff
	a = uint32(math.Round(c.alpha * full))
	r = uint32(math.Round(c.red * c.alpha * full))
	g = uint32(math.Round(c.green * c.alpha * full))
	b = uint32(math.Round(c.blue * c.alpha * full))
	return
}

// String returns the colour as rgba() with percentage channels.
func (c RGB) String() string {
	return c.CSS()
}

// CSS returns the colour as a CSS rgba() value.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgba(%g%%, %g%%, %g%%, %g)", 100*c.red, 100*c.green, 100*c.blue, c.alpha)
}

// FromColor converts any color.Color to RGB, undoing alpha premultiplication.
func FromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	fa := float64(a)
	return RGB{
		red:   clamp01(float64(r) / fa),
		green: clamp01(float64(g) / fa),
		blue:  clamp01(float64(b) / fa),
		alpha: fa / 0xffff,
	}
}

// HSB is a hue, saturation, brightness colour.
type HSB struct {
	hue, saturation, value, alpha float64
}

// NewHSB validates and returns an HSB colour.
func NewHSB(hue, saturation, value, alpha float64) (HSB, error) {
	if err := firstError(
		checkHue(hue),
		checkRange("saturation", saturation, 1),
		checkRange("value", value, 1),
		checkRange("alpha", alpha, 1),
	); err != nil {
		return HSB{}, err
	}
	return HSB{hue: hue, saturation: saturation, value: value, alpha: alpha}, nil
}

func (c HSB) H() float64     { return c.hue }
func (c HSB) S() float64     { return c.saturation }
func (c HSB) V() float64     { return c.value }
func (c HSB) Alpha() float64 { return c.alpha }

// Equal reports whether both colours match within Accuracy.
func (c HSB) Equal(o HSB) bool {
	return near(c.hue, o.hue) && near(c.saturation, o.saturation) && near(c.value, o.value) && near(c.alpha, o.alpha)
}

func (c HSB) String() string {
	return fmt.Sprintf("hsb(%g, %g%%, %g%%, %g)", c.hue, 100*c.saturation, 100*c.value, c.alpha)
}

// HSL is a hue, saturation, lightness colour.
type HSL struct {
	hue, saturation, lightness, alpha float64
}

// NewHSL validates and returns an HSL colour.
func NewHSL(hue, saturation, lightness, alpha float64) (HSL, error) {
	if err := firstError(
		checkHue(hue),
		checkRange("saturation", saturation, 1),
		checkRange("lightness", lightness, 1),
		checkRange("alpha", alpha, 1),
	); err != nil {
		return HSL{}, err
	}
	return HSL{hue: hue, saturation: saturation, lightness: lightness, alpha: alpha}, nil
}

func (c HSL) H() float64     { return c.hue }
func (c HSL) S() float64     { return c.saturation }
func (c HSL) L() float64     { return c.lightness }
func (c HSL) Alpha() float64 { return c.alpha }

// Equal reports whether both colours match within Accuracy.
func (c HSL) Equal(o HSL) bool {
	return near(c.hue, o.hue) && near(c.saturation, o.saturation) && near(c.lightness, o.lightness) && near(c.alpha, o.alpha)
}

// Rotate returns the colour with its hue turned by degrees.
func (c HSL) Rotate(degrees float64) HSL {
	h := math.Mod(c.hue+degrees, hueMax)
	if h < 0 {
		h += hueMax
	}
	c.hue = h
	return c
}

func (c HSL) String() string {
	return c.CSS()
}

// CSS returns the colour as a CSS hsla() value.
func (c HSL) CSS() string {
	return fmt.Sprintf("hsla(%g, %g%%, %g%%, %g)", c.hue, 100*c.saturation, 100*c.lightness, c.alpha)
}

// LAB is a CIE L*a*b* colour relative to D65.
type LAB struct {
	lightness, a, b, alpha float64
}

// NewLAB validates and returns a LAB colour. Only lightness and alpha are
// bounded.
func NewLAB(lightness, a, b, alpha float64) (LAB, error) {
	if err := firstError(
		checkRange("lightness", lightness, math.MaxFloat64),
		checkRange("alpha", alpha, 1),
	); err != nil {
		return LAB{}, err
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return LAB{}, &RangeError{Label: "a/b", Value: math.NaN(), Max: math.Inf(1)}
	}
	return LAB{lightness: lightness, a: a, b: b, alpha: alpha}, nil
}

func (c LAB) L() float64     { return c.lightness }
func (c LAB) A() float64     { return c.a }
func (c LAB) B() float64     { return c.b }
func (c LAB) Alpha() float64 { return c.alpha }

// Equal reports whether both colours match within Accuracy.
func (c LAB) Equal(o LAB) bool {
	return near(c.lightness, o.lightness) && near(c.a, o.a) && near(c.b, o.b) && near(c.alpha, o.alpha)
}

func (c LAB) String() string {
	return fmt.Sprintf("lab(%g %g %g / %g)", c.lightness, c.a, c.b, c.alpha)
}

// LCH is the polar form of LAB.
type LCH struct {
	lightness, chroma, hue, alpha float64
}

// NewLCH validates and returns an LCH colour.
func NewLCH(lightness, chroma, hue, alpha float64) (LCH, error) {
	if err := firstError(
		checkRange("lightness", lightness, math.MaxFloat64),
		checkRange("chroma", chroma, math.MaxFloat64),
		checkHue(hue),
		checkRange("alpha", alpha, 1),
	); err != nil {
		return LCH{}, err
	}
	return LCH{lightness: lightness, chroma: chroma, hue: hue, alpha: alpha}, nil
}

func (c LCH) L() float64     { return c.lightness }
func (c LCH) C() float64     { return c.chroma }
func (c LCH) H() float64     { return c.hue }
func (c LCH) Alpha() float64 { return c.alpha }

// Equal reports whether both colours match within Accuracy.
func (c LCH) Equal(o LCH) bool {
	return near(c.lightness, o.lightness) && near(c.chroma, o.chroma) && near(c.hue, o.hue) && near(c.alpha, o.alpha)
}

func (c LCH) String() string {
	return fmt.Sprintf("lch(%g %g %g / %g)", c.lightness, c.chroma, c.hue, c.alpha)
}

// XYZ holds CIE tristimulus values relative to D65. It is an intermediate
// of the RGB/LAB conversions and accepts any components.
type XYZ struct {
	x, y, z, alpha float64
}

// NewXYZ returns an XYZ colour.
func NewXYZ(x, y, z, alpha float64) XYZ {
	return XYZ{x: x, y: y, z: z, alpha: alpha}
}

func (c XYZ) X() float64     { return c.x }
func (c XYZ) Y() float64     { return c.y }
func (c XYZ) Z() float64     { return c.z }
func (c XYZ) Alpha() float64 { return c.alpha }

// Equal reports whether both colours match within Accuracy.
func (c XYZ) Equal(o XYZ) bool {
	return near(c.x, o.x) && near(c.y, o.y) && near(c.z, o.z) && near(c.alpha, o.alpha)
}

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g %g %g / %g)", c.x, c.y, c.z, c.alpha)
}

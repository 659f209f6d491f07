package colour

import (
	"math"
	"testing"
)

func TestRGBToHSBAndHSL(t *testing.T) {
	tests := []struct {
		hex string
		hsb HSB
		hsl HSL
	}{
		{hex: "ff0000", hsb: HSB{hue: 0, saturation: 1, value: 1, alpha: 1}, hsl: HSL{hue: 0, saturation: 1, lightness: 0.5, alpha: 1}},
		{hex: "00ff00", hsb: HSB{hue: 120, saturation: 1, value: 1, alpha: 1}, hsl: HSL{hue: 120, saturation: 1, lightness: 0.5, alpha: 1}},
		{hex: "ff00ff", hsb: HSB{hue: 300, saturation: 1, value: 1, alpha: 1}, hsl: HSL{hue: 300, saturation: 1, lightness: 0.5, alpha: 1}},
		{hex: "808080", hsb: HSB{hue: 0, saturation: 0, value: 128.0 / 255, alpha: 1}, hsl: HSL{hue: 0, saturation: 0, lightness: 128.0 / 255, alpha: 1}},
		{hex: "6200ee", hsb: HSB{hue: 265, saturation: 1, value: 238.0 / 255, alpha: 1}, hsl: HSL{hue: 265, saturation: 1, lightness: 119.0 / 255, alpha: 1}},
		{hex: "00000080", hsb: HSB{alpha: 128.0 / 255}, hsl: HSL{alpha: 128.0 / 255}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c := MustParseHex(tt.hex)
			if got := c.HSB(); !got.Equal(tt.hsb) {
				t.Errorf("HSB() = %v, want %v", got, tt.hsb)
			}
			if got := c.HSL(); !got.Equal(tt.hsl) {
				t.Errorf("HSL() = %v, want %v", got, tt.hsl)
			}
		})
	}
}

func TestHSBToRGB(t *testing.T) {
	tests := []struct {
		hsb  HSB
		want string
	}{
		{hsb: HSB{hue: 0, saturation: 1, value: 1, alpha: 1}, want: "ff0000"},
		{hsb: HSB{hue: 120, saturation: 1, value: 1, alpha: 1}, want: "00ff00"},
		{hsb: HSB{hue: 240, saturation: 1, value: 1, alpha: 1}, want: "0000ff"},
		{hsb: HSB{hue: 60, saturation: 1, value: 1, alpha: 1}, want: "ffff00"},
		{hsb: HSB{hue: 200, saturation: 0, value: 1, alpha: 1}, want: "ffffff"},
	}
	for _, tt := range tests {
		if got := tt.hsb.RGB().Hex(); got != tt.want {
			t.Errorf("%v.RGB() = %s, want %s", tt.hsb, got, tt.want)
		}
	}
}

func TestDirectHSBAndHSLMatchRGBRoute(t *testing.T) {
	for _, c := range sampleRGB(300) {
		if got, want := c.HSB().HSL(), c.HSL(); !got.Equal(want) {
			t.Errorf("HSB().HSL() = %v, HSL() = %v for %v", got, want, c)
		}
		if got, want := c.HSL().HSB(), c.HSB(); !got.Equal(want) {
			t.Errorf("HSL().HSB() = %v, HSB() = %v for %v", got, want, c)
		}
	}
}

func TestHSBPreservesValueAndAlpha(t *testing.T) {
	for _, c := range sampleRGB(300) {
		back := c.HSB().RGB()
		if math.Abs(math.Max(back.R(), math.Max(back.G(), back.B()))-c.HSB().V()) > Accuracy {
			t.Errorf("HSB round trip changed brightness of %v to %v", c, back)
		}
		if !near(back.Alpha(), c.Alpha()) {
			t.Errorf("HSB round trip changed alpha of %v to %v", c, back)
		}
		// Whole-degree hue rounding moves a channel by at most half a degree
		// of the hexcone, at most one part in 120.
		for _, d := range []float64{back.R() - c.R(), back.G() - c.G(), back.B() - c.B()} {
			if math.Abs(d) > 1.0/120+1e-9 {
				t.Errorf("HSB round trip moved %v to %v", c, back)
				break
			}
		}
	}
}

func TestSnapHue(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{hex: "ff0000", want: "ff0000"},
		{hex: "9e9e9e", want: "9e9e9e"},
		{hex: "6200ee", want: "6300ee"},
	}
	for _, tt := range tests {
		if got := SnapHue(MustParseHex(tt.hex)).Hex(); got != tt.want {
			t.Errorf("SnapHue(%s) = %s, want %s", tt.hex, got, tt.want)
		}
	}
}

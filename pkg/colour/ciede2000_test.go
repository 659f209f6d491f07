package colour

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func lab(l, a, b float64) LAB {
	return LAB{lightness: l, a: a, b: b, alpha: 1}
}

// Reference pairs from Sharma, Wu and Dalal, "The CIEDE2000 Color-Difference
// Formula: Implementation Notes".
func TestDeltaE2000Reference(t *testing.T) {
	tests := []struct {
		name           string
		reference      LAB
		sample         LAB
		wantDifference float64
	}{
		{name: "blue 1", reference: lab(50, 2.6772, -79.7751), sample: lab(50, 0, -82.7485), wantDifference: 2.0425},
		{name: "blue 2", reference: lab(50, 3.1571, -77.2803), sample: lab(50, 0, -82.7485), wantDifference: 2.8615},
		{name: "blue 3", reference: lab(50, 2.8361, -74.02), sample: lab(50, 0, -82.7485), wantDifference: 3.4412},
		{name: "neutral reference", reference: lab(50, 0, 0), sample: lab(50, -1, 2), wantDifference: 2.3669},
		{name: "opposite hues", reference: lab(50, 2.49, -0.001), sample: lab(50, -2.49, 0.0011), wantDifference: 7.2195},
		{name: "lightness and hue 1", reference: lab(50, 2.5, 0), sample: lab(73, 25, -18), wantDifference: 27.1492},
		{name: "lightness and hue 2", reference: lab(50, 2.5, 0), sample: lab(61, -5, 29), wantDifference: 22.8977},
		{name: "lightness and hue 3", reference: lab(50, 2.5, 0), sample: lab(56, -27, -3), wantDifference: 31.9030},
		{name: "lightness and hue 4", reference: lab(50, 2.5, 0), sample: lab(58, 24, 15), wantDifference: 19.4535},
		{name: "greens", reference: lab(60.2574, -34.0099, 36.2677), sample: lab(60.4626, -34.1751, 39.4387), wantDifference: 1.2644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeltaE2000(tt.reference, tt.sample); math.Abs(got-tt.wantDifference) > 1e-4 {
				t.Errorf("DeltaE2000() = %.4f, want %.4f", got, tt.wantDifference)
			}
			if got := DeltaE2000(tt.sample, tt.reference); math.Abs(got-tt.wantDifference) > 1e-4 {
				t.Errorf("DeltaE2000() swapped = %.4f, want %.4f", got, tt.wantDifference)
			}
		})
	}
}

func TestDeltaE2000Identity(t *testing.T) {
	for _, c := range sampleRGB(100) {
		l := c.LAB()
		if got := l.DeltaE(l); got != 0 {
			t.Errorf("DeltaE(%v, itself) = %v, want 0", l, got)
		}
	}
}

func TestDeltaE2000Properties(t *testing.T) {
	samples := sampleRGB(60)
	for i := 1; i < len(samples); i++ {
		a, b := samples[i-1].LAB(), samples[i].LAB()
		d := DeltaE2000(a, b)
		if d < 0 || math.IsNaN(d) {
			t.Fatalf("DeltaE2000(%v, %v) = %v", a, b, d)
		}
		if swapped := DeltaE2000(b, a); math.Abs(swapped-d) > 1e-9 {
			t.Errorf("DeltaE2000 not symmetric: %v vs %v", d, swapped)
		}
	}
}

func TestDeltaE2000IgnoresAlpha(t *testing.T) {
	a := lab(50, 10, 10)
	b := lab(55, 12, 8)
	translucent := b
	translucent.alpha = 0.2
	if DeltaE2000(a, b) != DeltaE2000(a, translucent) {
		t.Error("alpha should not affect the difference")
	}
}

func TestDeltaE2000MatchesColorful(t *testing.T) {
	pairs := [][2]LAB{
		{lab(50, 2.6772, -79.7751), lab(50, 0, -82.7485)},
		{lab(50, 2.5, 0), lab(73, 25, -18)},
		{lab(60.2574, -34.0099, 36.2677), lab(60.4626, -34.1751, 39.4387)},
		{lab(22.7233, 20.0904, -46.694), lab(23.0331, 14.973, -42.5619)},
		{lab(90.8027, -2.0831, 1.441), lab(91.1528, -1.6435, 0.0447)},
		{lab(35.0831, -44.1164, 3.7933), lab(35.0232, -40.0716, 1.5901)},
	}
	for _, p := range pairs {
		got := DeltaE2000(p[0], p[1])
		c1 := colorful.Lab(p[0].L()/100, p[0].A()/100, p[0].B()/100)
		c2 := colorful.Lab(p[1].L()/100, p[1].A()/100, p[1].B()/100)
		// go-colorful works on a 0-1 lightness scale.
		want := 100 * c1.DistanceCIEDE2000(c2)
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("DeltaE2000(%v, %v) = %v, colorful gives %v", p[0], p[1], got, want)
		}
	}
}

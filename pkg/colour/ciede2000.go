package colour

import "math"

const (
	// pow25To7 is 25^7.
	pow25To7 = 6103515625.0

	// achromaticChroma is the chroma below which a colour has no usable hue.
	achromaticChroma = 1e-4

	degToRad = math.Pi / 180
)

// hueAngle returns atan2(y, x) in degrees in [0, 360), or 0 when both
// arguments are near zero.
func hueAngle(y, x float64) float64 {
	if math.Abs(y) < achromaticChroma && math.Abs(x) < achromaticChroma {
		return 0
	}
	h := math.Atan2(y, x) / degToRad
	if h < 0 {
		h += 360
	}
	return h
}

// DeltaE2000 returns the CIEDE2000 difference between a reference and a
// sample colour, with all parametric weighting factors set to 1. Alpha is
// ignored. The result is symmetric in its arguments.
func DeltaE2000(reference, sample LAB) float64 {
	meanL := (reference.lightness + sample.lightness) / 2
	c1 := math.Sqrt(reference.a*reference.a + reference.b*reference.b)
	c2 := math.Sqrt(sample.a*sample.a + sample.b*sample.b)
	meanC := (c1 + c2) / 2

	meanC7 := math.Pow(meanC, 7)
	g := 0.5 * (1 - math.Sqrt(meanC7/(meanC7+pow25To7)))

	a1 := reference.a * (1 + g)
	a2 := sample.a * (1 + g)
	cp1 := math.Sqrt(a1*a1 + reference.b*reference.b)
	cp2 := math.Sqrt(a2*a2 + sample.b*sample.b)
	deltaCp := cp2 - cp1
	meanCp := (cp1 + cp2) / 2

	hp1 := hueAngle(reference.b, a1)
	hp2 := hueAngle(sample.b, a2)

	// Shortest arc between the hues, and the mean hue on that arc.
	var deltahp, meanHp float64
	if c1 >= achromaticChroma && c2 >= achromaticChroma {
		diff := hp2 - hp1
		switch {
		case math.Abs(diff) <= 180:
			deltahp = diff
			meanHp = (hp1 + hp2) / 2
		case hp2 <= hp1:
			deltahp = diff + 360
		default:
			deltahp = diff - 360
		}
		if math.Abs(diff) > 180 {
			if hp1+hp2 < 360 {
				meanHp = (hp1 + hp2 + 360) / 2
			} else {
				meanHp = (hp1 + hp2 - 360) / 2
			}
		}
	}
	deltaHp := 2 * math.Sqrt(cp1*cp2) * math.Sin(deltahp/2*degToRad)

	t := 1 -
		0.17*math.Cos((meanHp-30)*degToRad) +
		0.24*math.Cos(2*meanHp*degToRad) +
		0.32*math.Cos((3*meanHp+6)*degToRad) -
		0.20*math.Cos((4*meanHp-63)*degToRad)

	dl := meanL - 50
	sl := 1 + 0.015*dl*dl/math.Sqrt(20+dl*dl)
	sc := 1 + 0.045*meanCp
	sh := 1 + 0.015*meanCp*t

	meanCp7 := math.Pow(meanCp, 7)
	rc := 2 * math.Sqrt(meanCp7/(meanCp7+pow25To7))
	deltaTheta := 30 * math.Exp(-math.Pow((meanHp-275)/25, 2))
	rt := -rc * math.Sin(2*deltaTheta*degToRad)

	termL := (sample.lightness - reference.lightness) / sl
	termC := deltaCp / sc
	termH := deltaHp / sh
	return math.Sqrt(math.Max(0, termL*termL+termC*termC+termH*termH+termC*termH*rt))
}

// DeltaE returns the CIEDE2000 difference from c to o.
func (c LAB) DeltaE(o LAB) float64 {
	return DeltaE2000(c, o)
}

package palette

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettegen/pkg/colour"
)

const (
	maxLightness = 100

	// Lightness drop enforced after the source tone and after every other
	// tone.
	sourceStep = 1.7
	toneStep   = 2

	// greyChroma is the mid-tone chroma below which a family is grey.
	greyChroma = 30

	// maxChromaRatio caps the per-tone chroma scaling of coloured families.
	maxChromaRatio = 1.25
)

// Generator interpolates palettes. The zero value is not usable; use
// NewGenerator.
type Generator struct {
	logger hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger that receives match and per-tone traces.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator returns a Generator that logs nothing unless WithLogger is
// given.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the palette for source from the closest reference tone in
// the scheme's catalog. The result has one swatch per anchor of the matched
// palette, and the swatch at the matched position is source unchanged.
func (g *Generator) Generate(source colour.RGB, scheme Scheme) (*Palette, error) {
	sourceLAB := source.LAB()
	m, err := FindClosest(sourceLAB, scheme.Catalog)
	if err != nil {
		return nil, err
	}
	if err := scheme.Tolerances.Validate(m.Palette.Len()); err != nil {
		return nil, err
	}

	g.logger.Trace("matched reference tone",
		"kind", scheme.Kind,
		"family", m.Palette.Name(),
		"tone", m.Label(),
		"difference", m.Difference)

	targets, grey, err := interpolate(sourceLAB.LCH(), m, scheme.Tolerances)
	if err != nil {
		return nil, err
	}

	out := &Palette{
		Kind:        scheme.Kind,
		Family:      m.Palette.Name(),
		AnchorIndex: m.AnchorIndex,
		Difference:  m.Difference,
		Grey:        grey,
		Swatches:    make([]Swatch, len(targets)),
	}
	for i, target := range targets {
		sw := Swatch{Label: m.Palette.Label(i)}
		if i == m.AnchorIndex {
			sw.Colour = source
			sw.Source = true
		} else {
			sw.Colour = target.RGB()
		}
		out.Swatches[i] = sw
		g.logger.Trace("tone", "label", sw.Label, "target", target, "hex", sw.Colour.Hex())
	}
	return out, nil
}

// interpolate moves every tone of the matched palette by the source's
// offset from the matched anchor, scaled by the tolerance ratio of each
// position. Position m.AnchorIndex holds source itself.
func interpolate(source colour.LCH, m Match, tol Tolerances) ([]colour.LCH, bool, error) {
	p := m.Palette
	anchor := p.lch[m.AnchorIndex]
	deltaL := anchor.L() - source.L()
	deltaC := anchor.C() - source.C()
	deltaH := anchor.H() - source.H()
	grey := p.isGrey()

	lightRatio := func(i int) float64 { return tol.Lightness[i] / tol.Lightness[m.AnchorIndex] }
	chromaRatio := func(i int) float64 { return tol.Chroma[i] / tol.Chroma[m.AnchorIndex] }

	ceiling := float64(maxLightness)
	out := make([]colour.LCH, p.Len())
	for i := range p.Len() {
		// accents start a fresh ramp
		if i == rampLen {
			ceiling = maxLightness
		}
		if i == m.AnchorIndex {
			out[i] = source
			ceiling = math.Max(source.L()-sourceStep, 0)
			continue
		}

		ref := p.lch[i]
		l := p.anchors[i].L() - lightRatio(i)*deltaL
		l = math.Min(math.Max(math.Min(l, ceiling), 0), maxLightness)

		var c float64
		if grey {
			c = ref.C() - deltaC
		} else {
			c = ref.C() - deltaC*math.Min(chromaRatio(i), maxChromaRatio)
		}
		c = math.Max(c, 0)

		h := math.Mod(ref.H()-deltaH+360, 360)

		lch, err := colour.NewLCH(l, c, h, colour.Opaque)
		if err != nil {
			return nil, false, fmt.Errorf("interpolating tone %s: %w", p.Label(i), err)
		}
		out[i] = lch
		ceiling = math.Max(l-toneStep, 0)
	}
	return out, grey, nil
}

// isGrey reports whether the palette's mid tone is nearly neutral. Palettes
// too short to have a 500 tone use their middle anchor.
func (p *GoldenPalette) isGrey() bool {
	mid := greyTone
	if mid >= p.Len() {
		mid = p.Len() / 2
	}
	return p.lch[mid].C() < greyChroma
}

var defaultGenerator = NewGenerator()

// Generate builds a palette for source with the given scheme.
func Generate(source colour.RGB, scheme Scheme) (*Palette, error) {
	return defaultGenerator.Generate(source, scheme)
}

// GenerateAccent builds a Material palette, accents included when the
// matched family has them.
func GenerateAccent(source colour.RGB) (*Palette, error) {
	return defaultGenerator.Generate(source, AccentScheme())
}

// GenerateLight builds a light neutral palette.
func GenerateLight(source colour.RGB) (*Palette, error) {
	return defaultGenerator.Generate(source, LightScheme())
}

// GenerateDark builds a dark neutral palette.
func GenerateDark(source colour.RGB) (*Palette, error) {
	return defaultGenerator.Generate(source, DarkScheme())
}

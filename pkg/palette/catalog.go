// Package palette generates Material-style tonal palettes from a single
// source colour by transporting its offset from the nearest reference tone
// onto every other tone of that reference palette.
package palette

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/jmylchreest/palettegen/pkg/colour"
)

const (
	// rampLen is the number of tones in a tonal ramp (50 to 900).
	rampLen = 10

	// greyTone is the ramp position (500) whose chroma classifies a family
	// as grey.
	greyTone = 5
)

var toneLabels = [...]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "A100", "A200", "A400", "A700"}

// ToneLabel returns the conventional Material name of a tone position.
func ToneLabel(i int) string {
	if i >= 0 && i < len(toneLabels) {
		return toneLabels[i]
	}
	return strconv.Itoa(i)
}

type labTriple [3]float64

type family struct {
	name    string
	ramp    [rampLen]labTriple
	accents []string
}

// GoldenPalette is a curated reference ramp ordered from the lightest tone
// to the darkest, optionally followed by accent tones.
type GoldenPalette struct {
	name    string
	anchors []colour.LAB
	lch     []colour.LCH
}

// NewGoldenPalette builds a reference palette from anchors in tone order.
func NewGoldenPalette(name string, anchors []colour.LAB) *GoldenPalette {
	p := &GoldenPalette{
		name:    name,
		anchors: make([]colour.LAB, len(anchors)),
		lch:     make([]colour.LCH, len(anchors)),
	}
	copy(p.anchors, anchors)
	for i, a := range anchors {
		p.lch[i] = a.LCH()
	}
	return p
}

// Name returns the family name, e.g. "deep-purple".
func (p *GoldenPalette) Name() string { return p.name }

// Len returns the number of anchors including accents.
func (p *GoldenPalette) Len() int { return len(p.anchors) }

// RampLen returns the number of anchors that belong to the tonal ramp.
func (p *GoldenPalette) RampLen() int { return min(len(p.anchors), rampLen) }

// Anchor returns the anchor at tone position i.
func (p *GoldenPalette) Anchor(i int) colour.LAB { return p.anchors[i] }

// Label returns the tone name of position i.
func (p *GoldenPalette) Label(i int) string { return ToneLabel(i) }

// All returns an iterator over the anchors in tone order.
func (p *GoldenPalette) All() func(func(int, colour.LAB) bool) {
	return func(yield func(int, colour.LAB) bool) {
		for i, a := range p.anchors {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Catalog is an ordered set of golden palettes.
type Catalog struct {
	name     string
	palettes []*GoldenPalette
}

// NewCatalog returns a catalog holding palettes in the given order.
func NewCatalog(name string, palettes ...*GoldenPalette) *Catalog {
	return &Catalog{name: name, palettes: slices.Clone(palettes)}
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of palettes.
func (c *Catalog) Len() int { return len(c.palettes) }

// Palette returns the palette at index i.
func (c *Catalog) Palette(i int) *GoldenPalette { return c.palettes[i] }

// All returns an iterator over the palettes in catalog order.
func (c *Catalog) All() func(func(int, *GoldenPalette) bool) {
	return func(yield func(int, *GoldenPalette) bool) {
		for i, p := range c.palettes {
			if !yield(i, p) {
				return
			}
		}
	}
}

var (
	accentCatalog = buildMaterialCatalog()
	lightCatalog  = buildNeutralCatalog("light", lightRamp)
	darkCatalog   = buildNeutralCatalog("dark", darkRamp)
)

// AccentCatalog returns the Material colour families with their accents.
func AccentCatalog() *Catalog { return accentCatalog }

// LightCatalog returns the single light neutral ramp.
func LightCatalog() *Catalog { return lightCatalog }

// DarkCatalog returns the single dark neutral ramp.
func DarkCatalog() *Catalog { return darkCatalog }

func mustLAB(t labTriple) colour.LAB {
	lab, err := colour.NewLAB(t[0], t[1], t[2], colour.Opaque)
	if err != nil {
		panic(fmt.Sprintf("palette: bad reference tone %v: %v", t, err))
	}
	return lab
}

func buildMaterialCatalog() *Catalog {
	palettes := make([]*GoldenPalette, 0, len(materialFamilies))
	for _, f := range materialFamilies {
		anchors := make([]colour.LAB, 0, rampLen+len(f.accents))
		for _, t := range f.ramp {
			anchors = append(anchors, mustLAB(t))
		}
		for _, hex := range f.accents {
			anchors = append(anchors, colour.MustParseHex(hex).LAB())
		}
		palettes = append(palettes, NewGoldenPalette(f.name, anchors))
	}
	return NewCatalog("material", palettes...)
}

func buildNeutralCatalog(name string, ramp []string) *Catalog {
	anchors := make([]colour.LAB, len(ramp))
	for i, hex := range ramp {
		anchors[i] = colour.MustParseHex(hex).LAB()
	}
	return NewCatalog(name, NewGoldenPalette(name, anchors))
}

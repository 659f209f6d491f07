package palette

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/palettegen/pkg/colour"
)

// Swatch is one generated tone.
type Swatch struct {
	Label  string
	Colour colour.RGB
	// Source marks the tone that is the unmodified input colour.
	Source bool
}

// Palette is a generated tonal palette in tone order, lightest first.
type Palette struct {
	Kind        Kind
	Family      string
	AnchorIndex int
	Difference  float64
	Grey        bool
	Swatches    []Swatch
}

// Len returns the number of swatches in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// Get returns the swatch at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Swatch, error) {
	if index < 0 || index >= len(p.Swatches) {
		return Swatch{}, fmt.Errorf("index out of bounds: %d (palette has %d swatches)", index, len(p.Swatches))
	}
	return p.Swatches[index], nil
}

// All returns an iterator over all swatches in the palette.
func (p *Palette) All() func(func(int, Swatch) bool) {
	return func(yield func(int, Swatch) bool) {
		for i, s := range p.Swatches {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Colours returns the swatch colours in tone order.
func (p *Palette) Colours() []colour.RGB {
	out := make([]colour.RGB, len(p.Swatches))
	for i, s := range p.Swatches {
		out[i] = s.Colour
	}
	return out
}

// Hex returns the swatch colours as lowercase hex without a leading '#'.
func (p *Palette) Hex() []string {
	out := make([]string, len(p.Swatches))
	for i, s := range p.Swatches {
		out[i] = s.Colour.Hex()
	}
	return out
}

// RGB8 is a colour in 8-bit channels.
type RGB8 struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func toRGB8(c colour.RGB) RGB8 {
	r, g, b, _ := c.Bytes()
	return RGB8{R: r, G: g, B: b}
}

// SwatchJSON represents a swatch in JSON output format.
type SwatchJSON struct {
	Label  string  `json:"label"`
	Hex    string  `json:"hex"`
	RGB    RGB8    `json:"rgb"`
	Alpha  float64 `json:"alpha"`
	Source bool    `json:"source,omitempty"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Kind       string       `json:"kind"`
	Family     string       `json:"family"`
	Anchor     string       `json:"anchor"`
	Difference float64      `json:"difference"`
	Grey       bool         `json:"grey"`
	Count      int          `json:"count"`
	Swatches   []SwatchJSON `json:"swatches"`
}

// JSON returns the JSON form of the palette.
func (p *Palette) JSON() PaletteJSON {
	swatches := make([]SwatchJSON, len(p.Swatches))
	for i, s := range p.Swatches {
		swatches[i] = SwatchJSON{
			Label:  s.Label,
			Hex:    "#" + s.Colour.Hex(),
			RGB:    toRGB8(s.Colour),
			Alpha:  s.Colour.Alpha(),
			Source: s.Source,
		}
	}
	return PaletteJSON{
		Kind:       p.Kind.String(),
		Family:     p.Family,
		Anchor:     ToneLabel(p.AnchorIndex),
		Difference: p.Difference,
		Grey:       p.Grey,
		Count:      len(p.Swatches),
		Swatches:   swatches,
	}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p.JSON(), "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s palette from %s (anchor %s, difference %.4f):\n", p.Kind, p.Family, ToneLabel(p.AnchorIndex), p.Difference)
	for _, s := range p.Swatches {
		marker := ""
		if s.Source {
			marker = " *"
		}
		fmt.Fprintf(&b, "  %4s: #%s%s\n", s.Label, s.Colour.Hex(), marker)
	}
	return b.String()
}

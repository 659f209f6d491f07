package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/jmylchreest/palettegen/pkg/colour"
)

// ErrInvalidCatalog is returned when a catalog has no palettes or a palette
// has no anchors. It points at bad reference data rather than bad input.
var ErrInvalidCatalog = errors.New("invalid palette catalog")

// Match is the reference tone closest to a source colour.
type Match struct {
	Palette      *GoldenPalette
	PaletteIndex int
	AnchorIndex  int
	Difference   float64
}

// Label returns the tone name of the matched anchor.
func (m Match) Label() string { return ToneLabel(m.AnchorIndex) }

// FindClosest scans the ramp tones of every palette in catalog order and
// returns the one with the smallest CIEDE2000 difference from source. Ties
// keep the first tone found. Accent tones are not candidates.
func FindClosest(source colour.LAB, catalog *Catalog) (Match, error) {
	if catalog == nil || catalog.Len() == 0 {
		return Match{}, fmt.Errorf("%w: no palettes", ErrInvalidCatalog)
	}

	best := Match{PaletteIndex: -1, AnchorIndex: -1, Difference: math.Inf(1)}
	for pi, p := range catalog.All() {
		if p == nil || p.Len() == 0 {
			return Match{}, fmt.Errorf("%w: palette %d has no anchors", ErrInvalidCatalog, pi)
		}
		// an exact hit cannot be beaten
		if best.Difference <= 0 {
			continue
		}
		for i := range p.RampLen() {
			d := colour.DeltaE2000(p.Anchor(i), source)
			if d < best.Difference {
				best = Match{Palette: p, PaletteIndex: pi, AnchorIndex: i, Difference: d}
				if d <= 0 {
					break
				}
			}
		}
	}
	return best, nil
}

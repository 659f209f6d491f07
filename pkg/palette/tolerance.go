package palette

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidTolerances is returned when a tolerance table cannot serve a
// palette.
var ErrInvalidTolerances = errors.New("invalid tolerance table")

// Per-tone standard deviations across the reference families. Positions 10
// to 13 cover the accent tones.
var (
	defaultLightnessTolerance = []float64{
		2.048875457, 5.124792061, 8.751659557, 12.07628774, 13.91449542,
		15.92738893, 15.46585818, 15.09779227, 15.13738673, 15.09818372,
		12.16800645, 17.26178879, 17.87176166, 16.72047178,
	}
	defaultChromaTolerance = []float64{
		1.762442714, 4.213532634, 7.395827458, 11.07174158, 13.89634504,
		16.37591477, 16.27071136, 16.54160806, 17.35916727, 19.88410864,
		12.8235763, 18.40545289, 21.71894697, 23.23753494,
	}
	// chroma deviation over the brown, grey and blue-grey families only
	reducedChromaTolerance = []float64{
		0.938037017, 2.445318704, 4.087491384, 6.059560742, 7.794756723,
		9.64262951, 8.836867438, 7.834870841, 6.912351017, 6.213383783,
	}
)

// DefaultLightnessTolerance returns a copy of the lightness table.
func DefaultLightnessTolerance() []float64 { return slices.Clone(defaultLightnessTolerance) }

// DefaultChromaTolerance returns a copy of the chroma table.
func DefaultChromaTolerance() []float64 { return slices.Clone(defaultChromaTolerance) }

// ReducedChromaTolerance returns a copy of the chroma table used for light
// neutral palettes.
func ReducedChromaTolerance() []float64 { return slices.Clone(reducedChromaTolerance) }

// Tolerances scales the source offset per tone position.
type Tolerances struct {
	Lightness []float64
	Chroma    []float64
}

// Validate checks that both tables cover n tone positions with positive
// values.
func (t Tolerances) Validate(n int) error {
	if len(t.Lightness) < n {
		return fmt.Errorf("%w: lightness table has %d entries, need %d", ErrInvalidTolerances, len(t.Lightness), n)
	}
	if len(t.Chroma) < n {
		return fmt.Errorf("%w: chroma table has %d entries, need %d", ErrInvalidTolerances, len(t.Chroma), n)
	}
	for i := range n {
		if !(t.Lightness[i] > 0) || !(t.Chroma[i] > 0) {
			return fmt.Errorf("%w: tone %s has a non-positive tolerance", ErrInvalidTolerances, ToneLabel(i))
		}
	}
	return nil
}

package palette

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/palettegen/pkg/colour"
)

// Kind selects which family of palettes to generate.
type Kind int

const (
	// KindAccent generates from the Material families, accents included.
	KindAccent Kind = iota

	// KindLight generates a light neutral ramp.
	KindLight

	// KindDark generates a dark neutral ramp.
	KindDark
)

// Kinds returns every palette kind in display order.
func Kinds() []Kind {
	return []Kind{KindAccent, KindLight, KindDark}
}

func (k Kind) String() string {
	switch k {
	case KindAccent:
		return "accent"
	case KindLight:
		return "light"
	case KindDark:
		return "dark"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown palette kind: %q (valid kinds: accent, light, dark)", s)
}

// Scheme pairs a catalog with the tolerance tables used to interpolate it.
type Scheme struct {
	Kind       Kind
	Catalog    *Catalog
	Tolerances Tolerances
}

// AccentScheme uses the Material catalog and the default tolerances.
func AccentScheme() Scheme {
	return Scheme{
		Kind:    KindAccent,
		Catalog: AccentCatalog(),
		Tolerances: Tolerances{
			Lightness: DefaultLightnessTolerance(),
			Chroma:    DefaultChromaTolerance(),
		},
	}
}

// LightScheme uses the light neutral catalog and the reduced chroma
// tolerance.
func LightScheme() Scheme {
	return Scheme{
		Kind:    KindLight,
		Catalog: LightCatalog(),
		Tolerances: Tolerances{
			Lightness: DefaultLightnessTolerance(),
			Chroma:    ReducedChromaTolerance(),
		},
	}
}

// DarkScheme uses the dark neutral catalog and the default tolerances.
func DarkScheme() Scheme {
	return Scheme{
		Kind:    KindDark,
		Catalog: DarkCatalog(),
		Tolerances: Tolerances{
			Lightness: DefaultLightnessTolerance(),
			Chroma:    DefaultChromaTolerance(),
		},
	}
}

// SchemeFor returns the built-in scheme for a kind.
func SchemeFor(k Kind) (Scheme, error) {
	switch k {
	case KindAccent:
		return AccentScheme(), nil
	case KindLight:
		return LightScheme(), nil
	case KindDark:
		return DarkScheme(), nil
	default:
		return Scheme{}, fmt.Errorf("unknown palette kind: %s", k)
	}
}

// Lightness and chroma bounds beyond which a neutral palette says little
// about the source colour.
const (
	lightMinLightness = 62
	darkMaxLightness  = 37.8
	neutralMaxChroma  = 30
)

// Suitable reports whether a palette of kind k is meaningful for a source
// colour. Accent palettes always are; light and dark palettes need a
// low-chroma source that is light or dark enough.
func Suitable(k Kind, source colour.LCH) bool {
	switch k {
	case KindLight:
		return source.L() >= lightMinLightness && source.C() <= neutralMaxChroma
	case KindDark:
		return source.L() <= darkMaxLightness && source.C() <= neutralMaxChroma
	default:
		return true
	}
}

// Placeholder returns the fixed neutral ramp shown in place of an
// unsuitable light or dark palette, or nil for other kinds.
func Placeholder(k Kind) []colour.RGB {
	var ramp []string
	switch k {
	case KindLight:
		ramp = lightRamp
	case KindDark:
		ramp = darkRamp
	default:
		return nil
	}
	out := make([]colour.RGB, len(ramp))
	for i, hex := range ramp {
		out[i] = colour.MustParseHex(hex)
	}
	return out
}

package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^[a-fA-F0-9]{3,8}$`)

// ParseHex parses a hex colour without a leading '#'. Accepted forms are
// RGB, RGBA, RRGGBB and RRGGBBAA; a missing alpha means opaque.
func ParseHex(s string) (RGB, error) {
	if !hexPattern.MatchString(s) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	parts := [4]string{"ff", "ff", "ff", "ff"}
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			parts[i] = strings.Repeat(s[i:i+1], 2)
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			parts[i/2] = s[i : i+2]
		}
	default:
		return RGB{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidHex, s, len(s))
	}

	var channels [4]float64
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
		}
		channels[i] = float64(v) / 255
	}
	return NewRGB(channels[0], channels[1], channels[2], channels[3])
}

// MustParseHex is like ParseHex but panics on error. It is intended for
// literals.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as lower-case hex digits without a leading '#'.
// The alpha byte is only written when the colour is translucent.
func (c RGB) Hex() string {
	s := fmt.Sprintf("%02x%02x%02x", channelByte(c.red), channelByte(c.green), channelByte(c.blue))
	if c.alpha < 1 {
		s += fmt.Sprintf("%02x", channelByte(c.alpha))
	}
	return s
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(255 * v))
}

// Bytes returns the channels rounded to 8 bits.
func (c RGB) Bytes() (r, g, b, a uint8) {
	return channelByte(c.red), channelByte(c.green), channelByte(c.blue), channelByte(c.alpha)
}

// HexToLAB parses a hex colour and converts it to LAB.
func HexToLAB(s string) (LAB, error) {
	c, err := ParseHex(s)
	if err != nil {
		return LAB{}, err
	}
	return c.LAB(), nil
}

// HexToLCH parses a hex colour and converts it to LCH.
func HexToLCH(s string) (LCH, error) {
	c, err := ParseHex(s)
	if err != nil {
		return LCH{}, err
	}
	return c.LCH(), nil
}

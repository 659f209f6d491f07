package extract

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"

	"github.com/jmylchreest/palettegen/internal/security"
)

// ContentSeed generates a deterministic seed from image content.
// This hashes the pixel data to create a seed that's consistent for the same image content,
// regardless of filename or location.
func ContentSeed(img image.Image) (int64, error) {
	if img == nil {
		return 0, fmt.Errorf("image cannot be nil")
	}

	bounds := img.Bounds()
	hasher := sha256.New()

	// Hash image dimensions
	dimBytes := make([]byte, 8)
	binary.LittleEndian.PutUint32(dimBytes[0:4], uint32(bounds.Dx())) // #nosec G115 -- image dimensions are safe to convert
	binary.LittleEndian.PutUint32(dimBytes[4:8], uint32(bounds.Dy())) // #nosec G115 -- image dimensions are safe to convert
	hasher.Write(dimBytes)

	// A grid of about 100x100 samples identifies the image well enough.
	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	pixelBytes := make([]byte, 4)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			pixelBytes[0] = security.SafeUint8FromUint32(r >> 8)
			pixelBytes[1] = security.SafeUint8FromUint32(g >> 8)
			pixelBytes[2] = security.SafeUint8FromUint32(b >> 8)
			pixelBytes[3] = security.SafeUint8FromUint32(a >> 8)
			hasher.Write(pixelBytes)
		}
	}

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])), nil // #nosec G115 -- hash conversion is safe
}

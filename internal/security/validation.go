// Package security provides input validation utilities for palettegen.
package security

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ValidateOutputPath checks that path can be used as an output file: it must
// not be empty, contain NUL bytes or name a directory, and its parent
// directory must already exist.
func ValidateOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty output path")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("output path contains a NUL byte")
	}

	clean := filepath.Clean(path)
	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", path)
	}

	dir := filepath.Dir(clean)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", dir)
		}
		return fmt.Errorf("failed to access output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output parent is not a directory: %s", dir)
	}
	return nil
}

// SafeUint8FromUint32 safely converts uint32 to uint8 with bounds checking.
func SafeUint8FromUint32(val uint32) uint8 {
	if val > 255 {
		return 255
	}
	return uint8(val)
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This stops oversized image files from being decoded.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, fmt.Errorf("size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

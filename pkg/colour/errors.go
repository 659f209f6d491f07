package colour

import (
	"errors"
	"fmt"
)

// ErrInvalidHex is returned when a string is not a 3, 4, 6 or 8 digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// RangeError reports a colour component outside its permitted range.
type RangeError struct {
	Label string
	Value float64
	Max   float64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%v for %s is not between 0 and %v", e.Value, e.Label, e.Max)
}

// Package errors defines the error values reported by the steganographic
// protocol. Callers match them with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Protocol errors 🧬
	ErrKeyEncoding      = errors.New("❌ key cannot be encoded")
	ErrMalformedHeader  = errors.New("❌ malformed embedding header")
	ErrDecoding         = errors.New("❌ recovered bits do not decode")
	ErrCapacityExceeded = errors.New("❌ payload exceeds image capacity")

	// Image I/O errors 🖼️
	ErrNotFound = errors.New("❌ no readable image at path")
)

// CapacityError reports by how many bits the header plus payload overshoot
// the slots the image provides.
type CapacityError struct {
	Overage int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("❌ payload exceeds image capacity by %d bits", e.Overage)
}

// Is makes errors.Is(err, ErrCapacityExceeded) match.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

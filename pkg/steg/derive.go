package steg

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	stegerrors "github.com/Jamal135/image-steganography/pkg/steg/errors"
)

const (
	// keyPixels is how many shuffled pixels are sampled to bind the
	// derived key to image content.
	keyPixels = 15

	// bootstrapCoords is the shuffled-coordinate prefix reserved for key
	// derivation. These positions never carry header or payload bits.
	bootstrapCoords = 16
)

// deriveContext turns the textual key and the image into the coordinate
// ordering and derived key that drive one insert or extract operation.
//
// The key text is read as a base-256 integer (first character most
// significant), scaled by the pixel count, and then scaled again by the
// channel sum of a fixed prefix of key-shuffled pixels. The same secret on
// a different image therefore yields an unrelated slot ordering. The
// returned coordinates have the bootstrap prefix removed.
func deriveContext(key string, g *Grid) ([]Coord, *big.Int, error) {
	if !utf8.ValidString(key) {
		return nil, nil, fmt.Errorf("derive: %w: key is not valid UTF-8", stegerrors.ErrKeyEncoding)
	}
	if g.Pixels() < bootstrapCoords+headerBits {
		return nil, nil, fmt.Errorf("derive: %w: image has %d pixels, need at least %d",
			stegerrors.ErrCapacityExceeded, g.Pixels(), bootstrapCoords+headerBits)
	}

	seed := new(big.Int)
	base := big.NewInt(256)
	digit := new(big.Int)
	for _, r := range key {
		seed.Mul(seed, base)
		seed.Add(seed, digit.SetInt64(int64(r)))
	}
	seed.Mul(seed, big.NewInt(int64(g.Pixels()*99)))

	coords := NewPermuter(seed).ShuffleCoords(g.coords())

	var sum int64
	for _, c := range coords[:keyPixels] {
		for _, ch := range AllChannels {
			sum += int64(g.At(c.X, c.Y, ch))
		}
	}
	seed.Mul(seed, big.NewInt(sum))

	coords = NewPermuter(seed).ShuffleCoords(coords[bootstrapCoords:])
	return coords, seed, nil
}

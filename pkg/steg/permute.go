package steg

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"math/rand"
)

// Permuter derives deterministic orderings and samples from a numeric key.
// The extractor rebuilds the embedder's choices purely by running the same
// calls with the same key, so every method must be a pure function of the
// key and its arguments.
//
// Each call starts a fresh generator from the same seed; two calls on the
// same Permuter never influence each other. There is deliberately no
// package-level generator.
type Permuter struct {
	seed int64
}

// NewPermuter reduces an arbitrary-precision key to a generator seed using
// the first 8 bytes of its SHA-256 digest as a little-endian integer.
func NewPermuter(key *big.Int) Permuter {
	sum := sha256.Sum256(key.Bytes())
	return Permuter{seed: int64(binary.LittleEndian.Uint64(sum[:8]))}
}

func (p Permuter) rand() *rand.Rand {
	return rand.New(rand.NewSource(p.seed))
}

// ShuffleCoords returns a keyed permutation of coords. The input is not
// modified.
func (p Permuter) ShuffleCoords(coords []Coord) []Coord {
	out := make([]Coord, len(coords))
	copy(out, coords)
	p.rand().Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// ShuffleSlots returns a keyed permutation of slots. The input is not
// modified.
func (p Permuter) ShuffleSlots(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	p.rand().Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// SampleChannels draws times independent uniform picks from options.
func (p Permuter) SampleChannels(options []Channel, times int) []Channel {
	r := p.rand()
	out := make([]Channel, times)
	for i := range out {
		out[i] = options[r.Intn(len(options))]
	}
	return out
}

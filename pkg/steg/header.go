package steg

import (
	"fmt"

	stegerrors "github.com/Jamal135/image-steganography/pkg/steg/errors"
)

const (
	// headerBits is the fixed header width: 1 method bit, a 3-bit channel
	// bitmap and an 8-bit position bitmap.
	headerBits = 12

	// lsbPos is the least significant bit in MSB-0 indexing. The header
	// always lives there, whatever the configuration selects for payload
	// bits, so the extractor can read it before knowing the configuration.
	lsbPos = 7
)

// encodeHeader packs a configuration into its 12-bit wire form.
func encodeHeader(cfg Config) []uint8 {
	bits := make([]uint8, headerBits)
	if cfg.method == MethodRandom {
		bits[0] = 1
	}
	for _, c := range cfg.channels {
		bits[1+int(c)] = 1
	}
	for _, p := range cfg.bitPositions {
		bits[4+p] = 1
	}
	return bits
}

// decodeHeader rebuilds a configuration from 12 recovered bits. The noise
// flag is not part of the header; extraction never needs it because the
// length prefix alone delimits the payload.
func decodeHeader(bits []uint8) (Config, error) {
	method := MethodAll
	if bits[0] == 1 {
		method = MethodRandom
	}
	var channels []Channel
	for _, c := range AllChannels {
		if bits[1+int(c)] == 1 {
			channels = append(channels, c)
		}
	}
	var positions []int
	for p := 0; p < 8; p++ {
		if bits[4+p] == 1 {
			positions = append(positions, p)
		}
	}
	if len(channels) == 0 || len(positions) == 0 {
		return Config{}, fmt.Errorf("header selects %d channels and %d bit positions: %w",
			len(channels), len(positions), stegerrors.ErrMalformedHeader)
	}
	return Config{
		method:       method,
		channels:     channels,
		bitPositions: positions,
	}, nil
}

// embedHeader writes the header bits into the least significant bit of one
// channel per coordinate, consuming the first len(bits) coordinates. The
// channel for each position is sampled from all three channels with the
// derived key — independent of the configuration, so extraction can mirror
// the choice before the configuration exists. Returns the unconsumed
// coordinates.
func embedHeader(g *Grid, p Permuter, bits []uint8, coords []Coord) []Coord {
	channels := p.SampleChannels(AllChannels, len(bits))
	for i, b := range bits {
		c := coords[i]
		g.SetBit(c.X, c.Y, channels[i], lsbPos, b)
	}
	return coords[len(bits):]
}

// extractHeader mirrors embedHeader: it reads the LSB of the same
// deterministically sampled channel at the same leading coordinates and
// rebuilds the configuration.
func extractHeader(g *Grid, p Permuter, coords []Coord) (Config, []Coord, error) {
	channels := p.SampleChannels(AllChannels, headerBits)
	bits := make([]uint8, headerBits)
	for i := range bits {
		c := coords[i]
		bits[i] = g.Bit(c.X, c.Y, channels[i], lsbPos)
	}
	cfg, err := decodeHeader(bits)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, coords[headerBits:], nil
}

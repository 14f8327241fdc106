package steg

import (
	"fmt"
	"strings"
)

// Method selects how slots are planned across channels.
type Method uint8

const (
	// MethodRandom picks one channel per pixel, keyed by the derived key.
	MethodRandom Method = iota
	// MethodAll uses every selected channel of every pixel.
	MethodAll
)

func (m Method) String() string {
	if m == MethodAll {
		return "all"
	}
	return "random"
}

// ParseMethod maps a method name to its value.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "random", "":
		return MethodRandom, nil
	case "all":
		return MethodAll, nil
	default:
		return MethodRandom, fmt.Errorf("unknown method %q (want random or all)", s)
	}
}

// Config captures one embedding configuration. It is built once per
// operation, either from caller parameters on insert or from the recovered
// header on extract, and never mutated afterwards.
type Config struct {
	method       Method
	channels     []Channel
	bitPositions []int
	noise        bool
}

// NewConfig validates and normalizes an embedding configuration.
//
// A nil channel list defaults to all three channels; a nil bit-position
// list defaults to the two least significant bits {6, 7}. Both lists are
// deduplicated and brought into canonical order (red/green/blue, ascending
// positions) — the header bitmap cannot represent any other order, and the
// extractor must replan the exact same slots.
func NewConfig(method Method, channels []Channel, bitPositions []int, noise bool) (Config, error) {
	if channels == nil {
		channels = []Channel{Red, Green, Blue}
	}
	if bitPositions == nil {
		bitPositions = []int{6, 7}
	}

	var chSet [3]bool
	for _, c := range channels {
		if c > Blue {
			return Config{}, fmt.Errorf("invalid channel %d", c)
		}
		chSet[c] = true
	}
	normCh := make([]Channel, 0, 3)
	for _, c := range AllChannels {
		if chSet[c] {
			normCh = append(normCh, c)
		}
	}
	if len(normCh) == 0 {
		return Config{}, fmt.Errorf("at least one channel required")
	}

	var posSet [8]bool
	for _, p := range bitPositions {
		if p < 0 || p > 7 {
			return Config{}, fmt.Errorf("bit position %d out of range 0-7", p)
		}
		posSet[p] = true
	}
	normPos := make([]int, 0, 8)
	for p := 0; p < 8; p++ {
		if posSet[p] {
			normPos = append(normPos, p)
		}
	}
	if len(normPos) == 0 {
		return Config{}, fmt.Errorf("at least one bit position required")
	}

	return Config{
		method:       method,
		channels:     normCh,
		bitPositions: normPos,
		noise:        noise,
	}, nil
}

// DefaultConfig is the configuration used when the caller specifies
// nothing: random channel per pixel, all channels eligible, the two least
// significant bits, no noise padding.
func DefaultConfig() Config {
	cfg, _ := NewConfig(MethodRandom, nil, nil, false)
	return cfg
}

func (c Config) Method() Method { return c.method }
func (c Config) Noise() bool    { return c.noise }

// Channels returns the selected channels in canonical order.
func (c Config) Channels() []Channel {
	out := make([]Channel, len(c.channels))
	copy(out, c.channels)
	return out
}

// BitPositions returns the selected bit positions in ascending order.
func (c Config) BitPositions() []int {
	out := make([]int, len(c.bitPositions))
	copy(out, c.bitPositions)
	return out
}

// CapacityPerPixel is the number of payload bits one pixel can carry under
// this configuration.
func (c Config) CapacityPerPixel() int {
	if c.method == MethodAll {
		return len(c.channels) * len(c.bitPositions)
	}
	return len(c.bitPositions)
}

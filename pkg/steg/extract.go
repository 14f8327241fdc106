package steg

import (
	"github.com/hashicorp/go-hclog"
)

// Extract recovers the embedded text from the grid under key. The grid is
// only read. A wrong key surfaces as ErrMalformedHeader, ErrDecoding, or —
// when the misread bits happen to form valid UTF-8 — unrelated text.
func Extract(g *Grid, key string, logger hclog.Logger) (string, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	coords, derived, err := deriveContext(key, g)
	if err != nil {
		return "", err
	}
	perm := NewPermuter(derived)

	cfg, coords, err := extractHeader(g, perm, coords)
	if err != nil {
		logger.Error("❌ header extraction failed", "error", err)
		return "", err
	}
	logger.Debug("📂 recovered configuration",
		"method", cfg.method.String(),
		"channels", len(cfg.channels),
		"bit_positions", len(cfg.bitPositions),
	)

	slots := planSlots(cfg, perm, coords)
	bits := make([]uint8, len(slots))
	for i, s := range slots {
		bits[i] = g.Bit(s.X, s.Y, s.Channel, s.BitPos)
	}

	text, err := parsePayload(bits, len(slots))
	if err != nil {
		logger.Error("❌ payload decode failed", "error", err)
		return "", err
	}
	logger.Info("✅ message extracted", "bytes", len(text))
	return text, nil
}

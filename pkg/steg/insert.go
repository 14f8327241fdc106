// Package steg implements the keyed steganographic embedding protocol:
// deterministic derivation of pixel/channel/bit slots from a secret key,
// a self-describing 12-bit header bootstrapped with a fixed scheme, and
// the length-prefixed payload bitstream codec.
//
// The package operates on an in-memory Grid; reading and writing image
// files is the pkg/imageio collaborator's job.
package steg

import (
	"github.com/hashicorp/go-hclog"
)

// Insert embeds text into the grid under key, mutating the grid in place.
// On error the grid may hold a partial header and must be discarded; no
// payload bit is written before the capacity check passes.
func Insert(g *Grid, key, text string, cfg Config, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	coords, derived, err := deriveContext(key, g)
	if err != nil {
		return err
	}
	perm := NewPermuter(derived)
	logger.Debug("🧬 derived embedding context",
		"pixels", g.Pixels(),
		"usable_coords", len(coords),
	)

	header := encodeHeader(cfg)
	slots := planSlots(cfg, perm, coords[len(header):])
	payload, err := buildPayload(cfg, text, len(slots))
	if err != nil {
		logger.Error("❌ payload does not fit", "capacity", len(slots), "error", err)
		return err
	}

	embedHeader(g, perm, header, coords)
	for i, bit := range payload {
		s := slots[i]
		g.SetBit(s.X, s.Y, s.Channel, s.BitPos, bit)
	}

	logger.Info("✅ message embedded",
		"method", cfg.method.String(),
		"bits", len(payload),
		"capacity", len(slots),
		"noise", cfg.noise,
	)
	return nil
}

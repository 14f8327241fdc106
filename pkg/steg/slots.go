package steg

// Slot addresses one embeddable bit: a pixel, a channel of that pixel and
// a bit position within the channel byte.
type Slot struct {
	X       int
	Y       int
	Channel Channel
	BitPos  int
}

// planSlots expands the remaining coordinates into the full shuffled slot
// sequence for one operation. Capacity equals the length of the result.
//
// Insert and extract both call this with the same derived key, the same
// coordinates and the same configuration, and rely on getting a
// byte-identical ordering back — that determinism is what lets extraction
// find the embedded bits without any stored index.
func planSlots(cfg Config, p Permuter, coords []Coord) []Slot {
	var picks []Channel
	if cfg.method == MethodRandom {
		picks = p.SampleChannels(cfg.channels, len(coords))
	}

	slots := make([]Slot, 0, len(coords)*cfg.CapacityPerPixel())
	for i, c := range coords {
		channels := cfg.channels
		if cfg.method == MethodRandom {
			channels = picks[i : i+1]
		}
		for _, ch := range channels {
			for _, pos := range cfg.bitPositions {
				slots = append(slots, Slot{X: c.X, Y: c.Y, Channel: ch, BitPos: pos})
			}
		}
	}
	return p.ShuffleSlots(slots)
}

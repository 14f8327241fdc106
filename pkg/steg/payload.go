package steg

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/bits"
	"unicode/utf8"

	stegerrors "github.com/Jamal135/image-steganography/pkg/steg/errors"
)

// textToBits unpacks the UTF-8 bytes of text into individual bits, most
// significant bit of each byte first.
func textToBits(text string) []uint8 {
	out := make([]uint8, 0, len(text)*8)
	for _, b := range []byte(text) {
		for i := 7; i >= 0; i-- {
			out = append(out, (b>>i)&1)
		}
	}
	return out
}

// bitsToText is the inverse of textToBits.
func bitsToText(b []uint8) (string, error) {
	if len(b)%8 != 0 {
		return "", fmt.Errorf("%w: %d bits is not a whole number of bytes", stegerrors.ErrDecoding, len(b))
	}
	raw := make([]byte, len(b)/8)
	for i, bit := range b {
		raw[i/8] |= bit << (7 - i%8)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: recovered bytes are not valid UTF-8", stegerrors.ErrDecoding)
	}
	return string(raw), nil
}

// prefixWidth is the width of the length prefix for a given slot capacity:
// the number of bits needed to write the capacity itself in binary.
func prefixWidth(capacity int) int {
	return bits.Len(uint(capacity))
}

// appendUintBits appends the low width bits of v, most significant first.
func appendUintBits(dst []uint8, v uint, width int) []uint8 {
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, uint8((v>>i)&1))
	}
	return dst
}

// uintFromBits reads bits back as a big-endian unsigned integer.
func uintFromBits(b []uint8) uint {
	var v uint
	for _, bit := range b {
		v = v<<1 | uint(bit)
	}
	return v
}

// buildPayload assembles the bitstream to embed: a length prefix sized by
// the capacity, the data bits, and — when noise padding is on — random fill
// up to the full capacity. The fill comes from crypto/rand rather than the
// derived key, so it is never predictable from the key and is never read
// back on extraction.
func buildPayload(cfg Config, text string, capacity int) ([]uint8, error) {
	data := textToBits(text)
	width := prefixWidth(capacity)
	total := width + len(data)
	if total > capacity {
		return nil, &stegerrors.CapacityError{Overage: total - capacity}
	}

	payload := make([]uint8, 0, capacity)
	payload = appendUintBits(payload, uint(len(data)), width)
	payload = append(payload, data...)
	if cfg.noise {
		fill, err := noiseBits(capacity - total)
		if err != nil {
			return nil, err
		}
		payload = append(payload, fill...)
	}
	return payload, nil
}

// parsePayload recovers the text from the full recovered bitstream: the
// length prefix delimits the data bits, everything beyond them is padding
// (or untouched pixels) and is ignored.
func parsePayload(b []uint8, capacity int) (string, error) {
	width := prefixWidth(capacity)
	if width > len(b) {
		return "", fmt.Errorf("%w: bitstream shorter than its length prefix", stegerrors.ErrDecoding)
	}
	dataLen := int(uintFromBits(b[:width]))
	if width+dataLen > len(b) {
		return "", fmt.Errorf("%w: length prefix claims %d data bits, only %d available",
			stegerrors.ErrDecoding, dataLen, len(b)-width)
	}
	return bitsToText(b[width : width+dataLen])
}

// noiseBits draws n independent random bits from a high-entropy source.
func noiseBits(n int) ([]uint8, error) {
	raw := make([]byte, (n+7)/8)
	if _, err := cryptorand.Read(raw); err != nil {
		return nil, fmt.Errorf("noise padding: %w", err)
	}
	out := make([]uint8, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, (raw[i/8]>>(7-i%8))&1)
	}
	return out, nil
}

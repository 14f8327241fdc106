package steg

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stegerrors "github.com/Jamal135/image-steganography/pkg/steg/errors"
)

func randomGrid(t *testing.T, w, h int, seed int64) *Grid {
	t.Helper()
	g := NewGrid(w, h)
	r := rand.New(rand.NewSource(seed))
	for _, c := range g.coords() {
		for _, ch := range AllChannels {
			g.Set(c.X, c.Y, ch, uint8(r.Intn(256)))
		}
	}
	return g
}

// TestInsertExtractMinimal is the reference scenario: 10×10 all-black
// image, key "k", text "hi", method all, red channel, LSB only.
func TestInsertExtractMinimal(t *testing.T) {
	cfg, err := NewConfig(MethodAll, []Channel{Red}, []int{7}, false)
	require.NoError(t, err)

	g := NewGrid(10, 10)
	require.NoError(t, Insert(g, "k", "hi", cfg, nil))

	got, err := Extract(g, "k", nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

// TestExtractWrongKey embeds with one key and tries many others. Every
// wrong key must either fail outright or produce different text.
func TestExtractWrongKey(t *testing.T) {
	cfg, err := NewConfig(MethodAll, []Channel{Red}, []int{7}, false)
	require.NoError(t, err)

	g := NewGrid(10, 10)
	require.NoError(t, Insert(g, "k", "hi", cfg, nil))

	recovered := 0
	for i := 0; i < 25; i++ {
		got, err := Extract(g, fmt.Sprintf("wrong-%d", i), nil)
		if err == nil && got == "hi" {
			recovered++
		}
	}
	assert.Zero(t, recovered, "wrong keys recovered the message %d times", recovered)
}

func TestInsertExtractConfigurations(t *testing.T) {
	testCases := []struct {
		name     string
		method   Method
		channels []Channel
		bits     []int
		noise    bool
		text     string
	}{
		{name: "defaults", method: MethodRandom, text: "hello world"},
		{name: "all channels all positions", method: MethodAll,
			channels: []Channel{Red, Green, Blue}, bits: []int{0, 1, 2, 3, 4, 5, 6, 7},
			text: "dense packing"},
		{name: "single green LSB", method: MethodAll,
			channels: []Channel{Green}, bits: []int{7}, text: "thin"},
		{name: "random with noise", method: MethodRandom, noise: true,
			text: "padded with random bits"},
		{name: "all with noise", method: MethodAll,
			channels: []Channel{Red, Blue}, bits: []int{5, 6, 7}, noise: true,
			text: "noise everywhere"},
		{name: "unicode payload", method: MethodRandom, text: "héllo → 世界 🌍"},
		{name: "empty payload", method: MethodRandom, text: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.method, tc.channels, tc.bits, tc.noise)
			require.NoError(t, err)

			g := randomGrid(t, 40, 30, int64(len(tc.name)))
			require.NoError(t, Insert(g, "sixteen tons", tc.text, cfg, nil))

			got, err := Extract(g, "sixteen tons", nil)
			require.NoError(t, err)
			assert.Equal(t, tc.text, got)
		})
	}
}

func TestInsertCapacityExceeded(t *testing.T) {
	cfg, err := NewConfig(MethodAll, []Channel{Red}, []int{7}, false)
	require.NoError(t, err)

	// 10×10 leaves 72 usable pixels → 72 slots, far too few for 100 bytes.
	g := NewGrid(10, 10)
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	err = Insert(g, "k", string(long), cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, stegerrors.ErrCapacityExceeded)

	var capErr *stegerrors.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Greater(t, capErr.Overage, 0)
}

func TestInsertImageTooSmall(t *testing.T) {
	g := NewGrid(5, 5) // 25 pixels < 16 bootstrap + 12 header
	err := Insert(g, "k", "", DefaultConfig(), nil)
	assert.ErrorIs(t, err, stegerrors.ErrCapacityExceeded)
}

func TestInsertInvalidKey(t *testing.T) {
	g := NewGrid(10, 10)
	err := Insert(g, string([]byte{0xff, 0xfe}), "hi", DefaultConfig(), nil)
	assert.ErrorIs(t, err, stegerrors.ErrKeyEncoding)
}

// TestDeriveContextDeterminism: same key and image twice → identical
// coordinate ordering and derived key.
func TestDeriveContextDeterminism(t *testing.T) {
	g := randomGrid(t, 20, 20, 1)

	coords1, key1, err := deriveContext("secret", g)
	require.NoError(t, err)
	coords2, key2, err := deriveContext("secret", g)
	require.NoError(t, err)

	assert.Equal(t, coords1, coords2)
	assert.Zero(t, key1.Cmp(key2))
	assert.Len(t, coords1, g.Pixels()-bootstrapCoords)
}

// TestDeriveContextBindsToImage: the same secret on different pixel
// content must yield a different derived key.
func TestDeriveContextBindsToImage(t *testing.T) {
	a := randomGrid(t, 20, 20, 1)
	b := randomGrid(t, 20, 20, 2)

	_, keyA, err := deriveContext("secret", a)
	require.NoError(t, err)
	_, keyB, err := deriveContext("secret", b)
	require.NoError(t, err)

	assert.NotZero(t, keyA.Cmp(keyB))
}

func TestDeriveContextBindsToKey(t *testing.T) {
	g := randomGrid(t, 20, 20, 1)

	coordsA, keyA, err := deriveContext("alpha", g)
	require.NoError(t, err)
	coordsB, keyB, err := deriveContext("beta", g)
	require.NoError(t, err)

	assert.NotZero(t, keyA.Cmp(keyB))
	assert.NotEqual(t, coordsA, coordsB)
}

// TestInsertDeterministicLayout: two inserts of the same message into
// identical grids must produce identical pixels (noise off).
func TestInsertDeterministicLayout(t *testing.T) {
	cfg := DefaultConfig()

	a := randomGrid(t, 25, 25, 9)
	b := randomGrid(t, 25, 25, 9)
	require.NoError(t, Insert(a, "key", "same message", cfg, nil))
	require.NoError(t, Insert(b, "key", "same message", cfg, nil))

	assert.Equal(t, a.pix, b.pix)
}

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jamal135/image-steganography/pkg/steg"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "steg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAndConfig(t *testing.T) {
	path := writeSettings(t, `
method: all
channels: [red, blue]
bits: [5, 7]
noise: true
`)
	s, err := Load(path)
	require.NoError(t, err)

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, steg.MethodAll, cfg.Method())
	assert.Equal(t, []steg.Channel{steg.Red, steg.Blue}, cfg.Channels())
	assert.Equal(t, []int{5, 7}, cfg.BitPositions())
	assert.True(t, cfg.Noise())
}

func TestEmptySettingsUseDefaults(t *testing.T) {
	s, err := Load(writeSettings(t, "{}"))
	require.NoError(t, err)

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, steg.DefaultConfig(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBadYAML(t *testing.T) {
	_, err := Load(writeSettings(t, "channels: [red\n"))
	assert.Error(t, err)
}

func TestParseChannels(t *testing.T) {
	got, err := ParseChannels([]string{"green", "red"})
	require.NoError(t, err)
	assert.Equal(t, []steg.Channel{steg.Green, steg.Red}, got)

	got, err = ParseChannels(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseChannels([]string{"cyan"})
	assert.Error(t, err)
}

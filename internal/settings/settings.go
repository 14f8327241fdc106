// Package settings reads the optional YAML defaults file for the CLI, so
// a user does not have to repeat channel and bit-position flags on every
// insert.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Jamal135/image-steganography/pkg/steg"
)

// Settings mirrors the YAML defaults file:
//
//	method: all
//	channels: [red, blue]
//	bits: [6, 7]
//	noise: true
type Settings struct {
	Method   string   `yaml:"method"`
	Channels []string `yaml:"channels"`
	Bits     []int    `yaml:"bits"`
	Noise    bool     `yaml:"noise"`
}

// Load parses the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &s, nil
}

// Config turns the settings into a validated embedding configuration.
// Absent fields fall back to the protocol defaults.
func (s *Settings) Config() (steg.Config, error) {
	method, err := steg.ParseMethod(s.Method)
	if err != nil {
		return steg.Config{}, err
	}
	channels, err := ParseChannels(s.Channels)
	if err != nil {
		return steg.Config{}, err
	}
	return steg.NewConfig(method, channels, s.Bits, s.Noise)
}

// ParseChannels maps channel names to their values. A nil or empty list
// returns nil so NewConfig applies its default.
func ParseChannels(names []string) ([]steg.Channel, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]steg.Channel, 0, len(names))
	for _, n := range names {
		switch n {
		case "red":
			out = append(out, steg.Red)
		case "green":
			out = append(out, steg.Green)
		case "blue":
			out = append(out, steg.Blue)
		default:
			return nil, fmt.Errorf("unknown channel %q (want red, green or blue)", n)
		}
	}
	return out, nil
}

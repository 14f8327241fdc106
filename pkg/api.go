// Package pkg is the file-level facade over the embedding protocol: load
// an image, run one insert or extract operation, persist the result.
package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/Jamal135/image-steganography/pkg/imageio"
	"github.com/Jamal135/image-steganography/pkg/steg"
)

// InsertOptions collects everything one insert operation needs.
type InsertOptions struct {
	ImagePath string
	Key       string
	Text      string
	Config    steg.Config
	Logger    hclog.Logger
}

// InsertFile embeds text into the image at opts.ImagePath and writes the
// result next to it, returning the output path. The source image is never
// modified.
func InsertFile(opts InsertOptions) (string, error) {
	grid, err := imageio.Load(opts.ImagePath)
	if err != nil {
		return "", err
	}
	if err := steg.Insert(grid, opts.Key, opts.Text, opts.Config, opts.Logger); err != nil {
		return "", err
	}
	return imageio.Save(opts.ImagePath, grid)
}

// ExtractFile recovers the text embedded in the image at path under key.
func ExtractFile(path, key string, logger hclog.Logger) (string, error) {
	grid, err := imageio.Load(path)
	if err != nil {
		return "", err
	}
	return steg.Extract(grid, key, logger)
}

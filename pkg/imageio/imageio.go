// Package imageio loads raster images into steg.Grid pixel grids and
// writes embedded grids back out. Only lossless formats are supported:
// PNG, and BMP via golang.org/x/image. Output is always PNG, written next
// to the source with a _result suffix so the original is never touched.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/Jamal135/image-steganography/pkg/steg"
	stegerrors "github.com/Jamal135/image-steganography/pkg/steg/errors"
)

// Load decodes the image at path into an RGB pixel grid. Alpha is dropped;
// the embedding protocol only addresses the three colour channels.
func Load(path string) (*steg.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", stegerrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	if format != "png" && format != "bmp" {
		return nil, fmt.Errorf("unsupported format %q: embedding needs a lossless format", format)
	}
	return fromImage(img), nil
}

// Save writes the grid as PNG to the derived output path and returns that
// path. The source file at path is left untouched.
func Save(path string, g *steg.Grid) (string, error) {
	out := OutputPath(path)
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create output image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, toImage(g)); err != nil {
		return "", fmt.Errorf("encode output image: %w", err)
	}
	return out, nil
}

// OutputPath derives the result filename for a source image:
// photo.png → photo_result.png.
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_result.png"
}

func fromImage(img image.Image) *steg.Grid {
	b := img.Bounds()
	g := steg.NewGrid(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, gr, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			g.Set(x, y, steg.Red, uint8(r>>8))
			g.Set(x, y, steg.Green, uint8(gr>>8))
			g.Set(x, y, steg.Blue, uint8(bl>>8))
		}
	}
	return g
}

func toImage(g *steg.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: g.At(x, y, steg.Red),
				G: g.At(x, y, steg.Green),
				B: g.At(x, y, steg.Blue),
				A: 255,
			})
		}
	}
	return img
}

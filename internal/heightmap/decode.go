// Package heightmap is the byte-to-grid adapter for the RTIN preprocessor.
// It treats image decoding as an injected concern: any square greyscale
// image a registered codec can decode becomes a 16-bit sample grid.
package heightmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/tiff"
)

// Sentinel errors distinguishing shape/size validation failures from a
// hard decode failure. The rtin package translates these into its own
// exported error taxonomy.
var (
	ErrInvalidShape = errors.New("heightmap: width and height differ")
	ErrInvalidSize  = errors.New("heightmap: side length minus one must be a power of two, side >= 3")
)

// Decode16 decodes an image blob into a row-major 16-bit greyscale grid.
// grid[y*gridSize+x] holds the sample at (x, y). 8-bit sources are upsampled
// by bit-replication (v<<8 | v) so full-scale white maps to 65535, not 255.
func Decode16(data []byte) (gridSize int, grid []uint16, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("heightmap: decode: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w != h {
		return 0, nil, fmt.Errorf("heightmap: %dx%d: %w", w, h, ErrInvalidShape)
	}
	if w < 3 {
		return 0, nil, fmt.Errorf("heightmap: side %d: %w", w, ErrInvalidSize)
	}
	side := w - 1
	if side&(side-1) != 0 {
		return 0, nil, fmt.Errorf("heightmap: side %d: %w", w, ErrInvalidSize)
	}

	return w, toGrid16(img, b), nil
}

// toGrid16 converts any decoded image to a row-major grid of 16-bit
// luminance samples via the standard greyscale color model.
func toGrid16(src image.Image, b image.Rectangle) []uint16 {
	w, h := b.Dx(), b.Dy()
	grid := make([]uint16, w*h)

	if g16, ok := src.(*image.Gray16); ok {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				grid[y*w+x] = g16.Gray16At(b.Min.X+x, b.Min.Y+y).Y
			}
		}
		return grid
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.Gray16Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			grid[y*w+x] = c.Y
		}
	}
	return grid
}

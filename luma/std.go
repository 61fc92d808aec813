package luma

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Std decodes with the stdlib image registry (extended with the x/image
// bmp, tiff and webp formats) and resizes with nfnt/resize Lanczos3.
// Grids differ slightly from the Imaging backend, so hashes from the
// two are not interchangeable.
type Std struct{}

func (Std) Grid(data []byte, size int) ([][]float64, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	scaled := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)

	grid := make([][]float64, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			c := color.GrayModel.Convert(scaled.At(x, y)).(color.Gray)
			grid[y][x] = float64(c.Y)
		}
	}
	return grid, nil
}

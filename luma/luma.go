// Package luma turns raw image bytes into square grids of luminance
// samples for the hash engine.
//
// Compatibility warning: the grid depends on the decoder and the resize
// filter that produced it. Hashes computed from grids of different
// providers, provider versions or resize filters are NOT comparable —
// always hash and compare with the same provider.
package luma

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrSourceUnavailable marks decode and resize failures of the image
// source. It is a distinct class from the hash engine's configuration
// errors.
var ErrSourceUnavailable = errors.New("image source unavailable")

// Provider decodes raw image bytes into a size×size luminance grid.
type Provider interface {
	Grid(data []byte, size int) ([][]float64, error)
}

// Imaging decodes and resizes with disintegration/imaging (Lanczos
// filter). This is the default backend.
type Imaging struct{}

func (Imaging) Grid(data []byte, size int) ([][]float64, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return FromImage(img, size), nil
}

// FromImage resizes img to size×size and converts it to a luminance grid
// using the imaging backend.
func FromImage(img image.Image, size int) [][]float64 {
	resized := imaging.Resize(img, size, size, imaging.Lanczos)
	gray := imaging.Grayscale(resized)

	grid := make([][]float64, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			c := color.GrayModel.Convert(gray.At(x, y)).(color.Gray)
			grid[y][x] = float64(c.Y)
		}
	}
	return grid
}

// Chain tries each provider in order and returns the first grid
// produced. The error of the last provider is returned when all fail.
type Chain []Provider

func (ch Chain) Grid(data []byte, size int) ([][]float64, error) {
	err := fmt.Errorf("%w: no providers configured", ErrSourceUnavailable)
	for _, p := range ch {
		grid, perr := p.Grid(data, size)
		if perr == nil {
			return grid, nil
		}
		err = perr
	}
	return nil, err
}

// Default returns the standard provider chain: imaging first, the
// stdlib/x-image fallback second.
func Default() Provider {
	return Chain{Imaging{}, Std{}}
}

package luma

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestImagingGridShape(t *testing.T) {
	data := encodePNG(t, solidImage(100, 60, color.RGBA{R: 200, G: 100, B: 50, A: 255}))

	grid, err := Imaging{}.Grid(data, 32)
	require.NoError(t, err)
	require.Len(t, grid, 32)
	for _, row := range grid {
		assert.Len(t, row, 32)
	}
}

func TestImagingGridSolidColorIsConstant(t *testing.T) {
	data := encodePNG(t, solidImage(64, 64, color.Gray{Y: 77}))

	grid, err := Imaging{}.Grid(data, 16)
	require.NoError(t, err)
	for y := range grid {
		for x := range grid[y] {
			assert.Equal(t, grid[0][0], grid[y][x])
		}
	}
	assert.InDelta(t, 77, grid[0][0], 1.5)
}

func TestImagingGridDecodeFailure(t *testing.T) {
	_, err := Imaging{}.Grid([]byte("definitely not an image"), 32)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestStdGridDecodesPNG(t *testing.T) {
	data := encodePNG(t, solidImage(50, 50, color.Gray{Y: 10}))

	grid, err := Std{}.Grid(data, 8)
	require.NoError(t, err)
	require.Len(t, grid, 8)
	assert.InDelta(t, 10, grid[4][4], 1.5)
}

func TestChainFallsThrough(t *testing.T) {
	data := encodePNG(t, solidImage(40, 40, color.Gray{Y: 128}))

	// First provider always fails, second succeeds.
	ch := Chain{failing{}, Imaging{}}
	grid, err := ch.Grid(data, 16)
	require.NoError(t, err)
	assert.Len(t, grid, 16)
}

func TestChainAllFail(t *testing.T) {
	_, err := Chain{failing{}, failing{}}.Grid([]byte("x"), 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestEmptyChain(t *testing.T) {
	_, err := Chain{}.Grid([]byte("x"), 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestDefaultProviderDecodes(t *testing.T) {
	data := encodePNG(t, solidImage(30, 30, color.Gray{Y: 200}))

	grid, err := Default().Grid(data, 32)
	require.NoError(t, err)
	assert.Len(t, grid, 32)
}

type failing struct{}

func (failing) Grid([]byte, int) ([][]float64, error) {
	return nil, ErrSourceUnavailable
}

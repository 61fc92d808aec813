// Package phash computes perceptual image hashes: short bit strings
// whose Hamming distance is small for visually similar images and
// near-random for dissimilar ones.
//
// A Hasher owns one image. Its luminance grid and DCT coefficient
// matrix are computed lazily on the first hash request and reused for
// every further configuration; each distinct configuration's result is
// memoized for the hasher's lifetime. A Hasher is not safe for
// concurrent first-time computation — use one per goroutine, or guard
// it externally. Hashes are only comparable when produced from the same
// luminance provider and grid size (see package luma).
package phash

import (
	"fmt"
	"image"
	"os"

	"github.com/dkechag/Image-PHash/luma"
	"github.com/dkechag/Image-PHash/phash/dct"
)

// DefaultSize is the width and height of the luminance grid images are
// reduced to before the transform.
const DefaultSize = 32

// Result is one computed hash: the ordered bit sequence and its hex
// encoding (most significant bit first, zero-padded). Callers must not
// modify Bits; the value is shared with the hasher's cache.
type Result struct {
	Hex  string
	Bits []uint8
}

func (r Result) String() string { return r.Hex }

// Hasher computes hashes for a single image.
type Hasher struct {
	size     int
	provider luma.Provider

	img  image.Image
	data []byte

	grid    [][]float64
	coefs   [][]float64
	results map[Config]Result
}

// Option adjusts a Hasher at construction time.
type Option func(*Hasher)

// WithSize sets the luminance grid dimension (default 32). Hashes
// produced with different sizes are not comparable.
func WithSize(n int) Option {
	return func(h *Hasher) { h.size = n }
}

// WithProvider sets the luminance grid provider used to decode raw
// bytes (default luma.Default).
func WithProvider(p luma.Provider) Option {
	return func(h *Hasher) { h.provider = p }
}

func newHasher(opts []Option) *Hasher {
	h := &Hasher{
		size:     DefaultSize,
		provider: luma.Default(),
		results:  make(map[Config]Result),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// New returns a Hasher for a decoded image.
func New(img image.Image, opts ...Option) *Hasher {
	h := newHasher(opts)
	h.img = img
	return h
}

// NewFromBytes returns a Hasher for raw image bytes. Decoding is
// deferred to the first hash request; decode failures surface there as
// luma.ErrSourceUnavailable.
func NewFromBytes(data []byte, opts ...Option) *Hasher {
	h := newHasher(opts)
	h.data = data
	return h
}

// NewFromFile reads the file and returns a Hasher for its contents.
func NewFromFile(path string, opts ...Option) (*Hasher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", luma.ErrSourceUnavailable, err)
	}
	return NewFromBytes(data, opts...), nil
}

// NewFromGrid returns a Hasher over an existing square luminance grid,
// bypassing decode and resize entirely.
func NewFromGrid(grid [][]float64) (*Hasher, error) {
	n := len(grid)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty grid", luma.ErrSourceUnavailable)
	}
	for _, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("%w: grid is not square", luma.ErrSourceUnavailable)
		}
	}
	h := newHasher(nil)
	h.size = n
	h.grid = grid
	return h, nil
}

// Size returns the luminance grid dimension.
func (h *Hasher) Size() int { return h.size }

// Coefficients returns a copy of the image's DCT coefficient matrix,
// computing it first if needed. Element (0,0) is the DC term.
func (h *Hasher) Coefficients() ([][]float64, error) {
	coefs, err := h.coefficients()
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(coefs))
	for i, row := range coefs {
		out[i] = append([]float64(nil), row...)
	}
	return out, nil
}

func (h *Hasher) luminance() ([][]float64, error) {
	if h.grid != nil {
		return h.grid, nil
	}
	if h.img != nil {
		h.grid = luma.FromImage(h.img, h.size)
		return h.grid, nil
	}
	grid, err := h.provider.Grid(h.data, h.size)
	if err != nil {
		return nil, err
	}
	h.grid = grid
	return h.grid, nil
}

func (h *Hasher) coefficients() ([][]float64, error) {
	if h.coefs != nil {
		return h.coefs, nil
	}
	grid, err := h.luminance()
	if err != nil {
		return nil, err
	}
	h.coefs = dct.Transform(grid)
	return h.coefs, nil
}

// Hash computes the perceptual hash for cfg, reusing the cached result
// when the same configuration was requested before. Repeated calls with
// an identical configuration always return a value-equal Result.
func (h *Hasher) Hash(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := h.checkBounds(cfg.Geometry); err != nil {
		return Result{}, err
	}
	cfg = cfg.normalize()

	if res, ok := h.results[cfg]; ok {
		return res, nil
	}

	coefs, err := h.coefficients()
	if err != nil {
		return Result{}, err
	}
	m := coefs
	if cfg.Mirror {
		m = mirrorCoefficients(coefs)
	}

	coords := selectionOrder(cfg.Geometry, cfg.Reduce, h.size)
	vals := pick(m, coords)
	if cfg.MirrorProof {
		magnitudes(vals)
	}

	bits := h.bitmask(cfg, m, coords, vals)
	res := Result{Hex: encodeBits(bits), Bits: bits}
	h.results[cfg] = res
	return res, nil
}

// checkBounds rejects geometries that do not fit the grid.
func (h *Hasher) checkBounds(g Geometry) error {
	if g.Square && g.Dim > h.size {
		return fmt.Errorf("%w: %s exceeds %dx%d matrix", ErrInvalidGeometry, g, h.size, h.size)
	}
	if !g.Square && g.Dim > h.size*h.size {
		return fmt.Errorf("%w: %d coefficients exceed %dx%d matrix", ErrInvalidGeometry, g.Dim, h.size, h.size)
	}
	return nil
}

// bitmask applies the configured bit decision rule to the selected
// coefficient values.
func (h *Hasher) bitmask(cfg Config, m [][]float64, coords []coord, vals []float64) []uint8 {
	skipDC := dcLeading(coords)

	switch cfg.Method {
	case Median:
		return thresholdBits(vals, median(vals, skipDC))
	case AverageX:
		ext := h.extendedValues(cfg, m)
		return thresholdBits(vals, mean(ext, true))
	case Log:
		lvals := compressed(vals)
		return thresholdBits(lvals, mean(lvals, skipDC))
	case Diff:
		dc := m[0][0]
		if cfg.MirrorProof {
			// The DC term of natural images is non-negative already;
			// keep the reference in the same domain as the values.
			if dc < 0 {
				dc = -dc
			}
		}
		return diffBits(vals, dc)
	default:
		return thresholdBits(vals, mean(vals, skipDC))
	}
}

// extendedValues returns the coefficient set the AverageX threshold is
// computed over: the full unreduced n×n selection for square
// geometries, or the first 2k diagonal-order coefficients for linear
// ones (clamped to the matrix size). The set always starts at the DC
// term, which the threshold mean excludes.
func (h *Hasher) extendedValues(cfg Config, m [][]float64) []float64 {
	g := cfg.Geometry
	if !g.Square {
		k := 2 * g.Dim
		if limit := h.size * h.size; k > limit {
			k = limit
		}
		g = LinearGeometry(k)
	}
	vals := pick(m, selectionOrder(g, false, h.size))
	if cfg.MirrorProof {
		magnitudes(vals)
	}
	return vals
}

// Package dct implements the two-dimensional type-II discrete cosine
// transform that feeds the hash engine. The transform is orthonormal:
// C(0) = sqrt(1/N) and C(k) = sqrt(2/N) for k > 0, so a constant input
// of value v produces a single DC coefficient of v*N and zero AC terms.
package dct

import "math"

// epsilon flushes cancellation residue to zero: a constant input must
// yield exactly-zero AC terms, not 1e-14 noise that would turn into
// arbitrary hash bits. Real coefficients sit on the 0..255*N luminance
// scale, many orders of magnitude above this cutoff.
const epsilon = 1e-8

// Transform returns the 2D DCT-II of the square grid src. The result has
// the same shape as src; element (0,0) is the DC term. src is not modified.
func Transform(src [][]float64) [][]float64 {
	n := len(src)
	cos, scale := tables(n)

	// 1D DCT along each row.
	tmp := make([][]float64, n)
	for row := 0; row < n; row++ {
		tmp[row] = make([]float64, n)
		for freq := 0; freq < n; freq++ {
			sum := 0.0
			for col := 0; col < n; col++ {
				sum += src[row][col] * cos[col][freq]
			}
			tmp[row][freq] = scale[freq] * sum
		}
	}

	// 1D DCT along each column of the intermediate result.
	dst := make([][]float64, n)
	for rowFreq := 0; rowFreq < n; rowFreq++ {
		dst[rowFreq] = make([]float64, n)
		for colFreq := 0; colFreq < n; colFreq++ {
			sum := 0.0
			for row := 0; row < n; row++ {
				sum += tmp[row][colFreq] * cos[row][rowFreq]
			}
			v := scale[rowFreq] * sum
			if math.Abs(v) < epsilon {
				v = 0
			}
			dst[rowFreq][colFreq] = v
		}
	}

	return dst
}

// tables returns cos[i][j] = cos((2i+1)*j*pi/2n) and the normalization
// factors for an n-point DCT. The transform runs once per image, so the
// tables are rebuilt per call rather than cached.
func tables(n int) ([][]float64, []float64) {
	cos := make([][]float64, n)
	for i := 0; i < n; i++ {
		cos[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			cos[i][j] = math.Cos(float64(2*i+1) * float64(j) * math.Pi / float64(2*n))
		}
	}

	scale := make([]float64, n)
	scale[0] = math.Sqrt(1.0 / float64(n))
	for k := 1; k < n; k++ {
		scale[k] = math.Sqrt(2.0 / float64(n))
	}

	return cos, scale
}

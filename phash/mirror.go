package phash

import "math"

// mirrorCoefficients derives the coefficient matrix of the horizontally
// flipped image from the already-computed matrix: flipping the input
// columns negates every coefficient with an odd column index and leaves
// the rest unchanged. The input matrix is not modified.
func mirrorCoefficients(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			if j%2 == 1 {
				v = -v
			}
			out[i][j] = v
		}
	}
	return out
}

// magnitudes replaces each value by its absolute value, in place.
// Mirroring only flips coefficient signs, so a hash over magnitudes is
// invariant to horizontal flips at the cost of roughly two bits of
// discriminative entropy.
func magnitudes(vals []float64) {
	for i, v := range vals {
		vals[i] = math.Abs(v)
	}
}

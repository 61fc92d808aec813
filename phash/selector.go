package phash

// coord is a (row, col) position in the coefficient matrix.
type coord struct{ row, col int }

// selectionOrder returns the coordinates visited for a geometry, in the
// canonical bit order of the hash. It is a pure function of the
// configuration and the matrix size, independent of image content.
func selectionOrder(g Geometry, reduce bool, size int) []coord {
	if g.Square {
		return squareOrder(g.Dim, reduce)
	}
	return linearOrder(g.Dim, size)
}

// squareOrder visits the top-left n×n submatrix row-major. With reduce,
// coordinates strictly below the anti-diagonal are discarded and so is
// the DC term, leaving (n-1)(n+2)/2 coordinates: the DC term is the
// largest coefficient in virtually all natural images and contributes
// no discriminative bit.
func squareOrder(n int, reduce bool) []coord {
	coords := make([]coord, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if reduce && (row+col > n-1 || (row == 0 && col == 0)) {
				continue
			}
			coords = append(coords, coord{row, col})
		}
	}
	return coords
}

// linearOrder visits coordinates by increasing diagonal d = row+col,
// rows ascending within a diagonal, until k coordinates are collected.
// The DC term is diagonal 0 and always comes first.
func linearOrder(k, size int) []coord {
	coords := make([]coord, 0, k)
	for d := 0; d <= 2*(size-1); d++ {
		lo := d - size + 1
		if lo < 0 {
			lo = 0
		}
		for row := lo; row <= d && row < size; row++ {
			coords = append(coords, coord{row, d - row})
			if len(coords) == k {
				return coords
			}
		}
	}
	return coords
}

// pick extracts the coefficient values at coords, in order.
func pick(m [][]float64, coords []coord) []float64 {
	vals := make([]float64, len(coords))
	for i, c := range coords {
		vals[i] = m[c.row][c.col]
	}
	return vals
}

// dcLeading reports whether the selection starts at the DC term.
func dcLeading(coords []coord) bool {
	return len(coords) > 0 && coords[0] == (coord{})
}

package phash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareOrderRowMajor(t *testing.T) {
	coords := selectionOrder(SquareGeometry(3), false, 32)
	want := []coord{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	assert.Equal(t, want, coords)
	assert.True(t, dcLeading(coords))
}

func TestSquareOrderReduced(t *testing.T) {
	// Keep row+col <= n-1, drop the DC term.
	coords := selectionOrder(SquareGeometry(3), true, 32)
	want := []coord{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 0}}
	assert.Equal(t, want, coords)
	assert.False(t, dcLeading(coords))
}

func TestReducedSelectionSizes(t *testing.T) {
	for _, tc := range []struct{ n, want int }{
		{6, 20},
		{7, 27},
		{8, 35},
	} {
		coords := selectionOrder(SquareGeometry(tc.n), true, 32)
		assert.Len(t, coords, tc.want, "n=%d", tc.n)
		assert.Equal(t, SquareGeometry(tc.n).bits(true), len(coords))
	}
}

func TestLinearOrderByDiagonal(t *testing.T) {
	coords := selectionOrder(LinearGeometry(6), false, 32)
	want := []coord{{0, 0}, {0, 1}, {1, 0}, {0, 2}, {1, 1}, {2, 0}}
	assert.Equal(t, want, coords)
	assert.True(t, dcLeading(coords))
}

func TestLinearOrderClipsToMatrixBounds(t *testing.T) {
	// On a 2x2 matrix the diagonals are (0,0) | (0,1),(1,0) | (1,1).
	coords := selectionOrder(LinearGeometry(4), false, 2)
	want := []coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	assert.Equal(t, want, coords)
}

func TestReducedOrderIsSubsequenceOfFullOrder(t *testing.T) {
	full := selectionOrder(SquareGeometry(8), false, 32)
	reduced := selectionOrder(SquareGeometry(8), true, 32)

	i := 0
	for _, c := range full {
		if i < len(reduced) && reduced[i] == c {
			i++
		}
	}
	require.Equal(t, len(reduced), i, "reduced order must preserve full-order positions")
}

func TestSelectionOrderIsDeterministic(t *testing.T) {
	a := selectionOrder(LinearGeometry(42), false, 32)
	b := selectionOrder(LinearGeometry(42), false, 32)
	assert.Equal(t, a, b)
	assert.Len(t, a, 42)
}

func TestPick(t *testing.T) {
	m := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	vals := pick(m, []coord{{0, 0}, {2, 1}, {1, 2}})
	assert.Equal(t, []float64{1, 8, 6}, vals)
}

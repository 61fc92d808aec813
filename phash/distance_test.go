package phash

import (
	"math/bits"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKnownValues(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want int
	}{
		{"00", "ff", 8},
		{"0f", "00", 4},
		{"0000000000000000", "ffffffffffffffff", 64},
		{"deadbeef", "deadbeef", 0},
		{"", "", 0},
	} {
		got, err := Distance(tc.a, tc.b)
		require.NoError(t, err, "%q vs %q", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "%q vs %q", tc.a, tc.b)
	}
}

func TestDistanceSymmetryAndBounds(t *testing.T) {
	a, b := "a3c1f0", "0f1c3a"
	ab, err := Distance(a, b)
	require.NoError(t, err)
	ba, err := Distance(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.GreaterOrEqual(t, ab, 0)
	assert.LessOrEqual(t, ab, 4*len(a))

	self, err := Distance(a, a)
	require.NoError(t, err)
	assert.Zero(t, self)
}

func TestDistanceCaseInsensitive(t *testing.T) {
	d, err := Distance("DEADBEEF", "deadbeef")
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDistanceLengthMismatch(t *testing.T) {
	_, err := Distance("00", "000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHashLengthMismatch)
}

func TestDistanceRejectsNonHex(t *testing.T) {
	_, err := Distance("zz", "00")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = Distance("00", "g0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHash)
}

// Hashes longer than 64 bits are folded in chunks; the result must match
// the bit-by-bit definition regardless.
func TestDistanceLongHashesMatchNaiveCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	digits := []byte("0123456789abcdef")

	for trial := 0; trial < 20; trial++ {
		n := 17 + rng.Intn(40) // force multi-chunk
		a := make([]byte, n)
		b := make([]byte, n)
		for i := range a {
			a[i] = digits[rng.Intn(16)]
			b[i] = digits[rng.Intn(16)]
		}

		want := 0
		for i := range a {
			da, err := strconv.ParseUint(string(a[i]), 16, 8)
			require.NoError(t, err)
			db, err := strconv.ParseUint(string(b[i]), 16, 8)
			require.NoError(t, err)
			want += bits.OnesCount8(uint8(da ^ db))
		}

		got, err := Distance(string(a), string(b))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEncodeBits(t *testing.T) {
	assert.Equal(t, "", encodeBits(nil))
	assert.Equal(t, "8", encodeBits([]uint8{1, 0, 0, 0}))
	assert.Equal(t, "f0", encodeBits([]uint8{1, 1, 1, 1, 0, 0, 0, 0}))
	// Tail bits are zero-padded to a whole hex digit.
	assert.Equal(t, "c", encodeBits([]uint8{1, 1}))
	assert.Equal(t, "ff8", encodeBits([]uint8{1, 1, 1, 1, 1, 1, 1, 1, 1}))
}

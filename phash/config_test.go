package phash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeometry(t *testing.T) {
	g, err := ParseGeometry("8x8")
	require.NoError(t, err)
	assert.Equal(t, SquareGeometry(8), g)
	assert.Equal(t, "8x8", g.String())

	g, err = ParseGeometry("16X16")
	require.NoError(t, err)
	assert.Equal(t, SquareGeometry(16), g)

	g, err = ParseGeometry("42")
	require.NoError(t, err)
	assert.Equal(t, LinearGeometry(42), g)
	assert.Equal(t, "42", g.String())
}

func TestParseGeometryErrors(t *testing.T) {
	for _, s := range []string{"", "0", "-3", "8x7", "0x0", "axb", "8x", "x8", "8x8x8"} {
		_, err := ParseGeometry(s)
		require.Error(t, err, "geometry %q", s)
		assert.ErrorIs(t, err, ErrInvalidGeometry, "geometry %q", s)
	}
}

func TestParseMethod(t *testing.T) {
	for s, want := range map[string]Method{
		"average":   Average,
		"AVG":       Average,
		"median":    Median,
		"average_x": AverageX,
		"averagex":  AverageX,
		"log":       Log,
		"diff":      Diff,
	} {
		m, err := ParseMethod(s)
		require.NoError(t, err, "method %q", s)
		assert.Equal(t, want, m, "method %q", s)
	}

	_, err := ParseMethod("sha256")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "average", Average.String())
	assert.Equal(t, "average_x", AverageX.String())
	assert.Equal(t, "diff", Diff.String())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Mirror = true
	cfg.MirrorProof = true
	assert.ErrorIs(t, cfg.Validate(), ErrMirrorConflict)

	cfg = DefaultConfig()
	cfg.Geometry = Geometry{}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidGeometry)

	cfg = DefaultConfig()
	cfg.Method = Method(99)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidMethod)
}

func TestGeometryBitCounts(t *testing.T) {
	assert.Equal(t, 64, SquareGeometry(8).bits(false))
	assert.Equal(t, 27, SquareGeometry(7).bits(true))
	assert.Equal(t, 20, SquareGeometry(6).bits(true))
	assert.Equal(t, 42, LinearGeometry(42).bits(false))
}

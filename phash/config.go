package phash

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error definitions
var (
	ErrInvalidGeometry    = errors.New("invalid geometry")
	ErrInvalidMethod      = errors.New("unknown hash method")
	ErrMirrorConflict     = errors.New("mirror and mirrorproof are mutually exclusive")
	ErrHashLengthMismatch = errors.New("hash lengths do not match")
	ErrInvalidHash        = errors.New("hash is not a hex string")
)

// Method selects how coefficients are turned into bits.
type Method int

const (
	// Average thresholds each coefficient against the arithmetic mean of
	// the selection (DC term excluded when present).
	Average Method = iota
	// Median thresholds against the median of the same set.
	Median
	// AverageX thresholds against the mean of an extended coefficient
	// set: the full unreduced square for reduced square geometries, or
	// twice the selected count for linear geometries.
	AverageX
	// Log thresholds in a magnitude-compressed domain so that outlier
	// coefficients influence the threshold less.
	Log
	// Diff compares each coefficient against its predecessor in
	// selection order; no global threshold.
	Diff
)

func (m Method) String() string {
	switch m {
	case Average:
		return "average"
	case Median:
		return "median"
	case AverageX:
		return "average_x"
	case Log:
		return "log"
	case Diff:
		return "diff"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod parses a method name as accepted on the CLI and API.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average", "avg":
		return Average, nil
	case "median", "med":
		return Median, nil
	case "average_x", "averagex", "avg_x":
		return AverageX, nil
	case "log":
		return Log, nil
	case "diff":
		return Diff, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

// Geometry describes which coefficients form the hash: an n×n top-left
// square, or the first k coefficients in diagonal (zigzag row) order.
type Geometry struct {
	Dim    int
	Square bool
}

// SquareGeometry selects the top-left n×n submatrix.
func SquareGeometry(n int) Geometry { return Geometry{Dim: n, Square: true} }

// LinearGeometry selects the first k coefficients by increasing diagonal.
func LinearGeometry(k int) Geometry { return Geometry{Dim: k} }

// ParseGeometry parses "NxN" as a square geometry and a bare positive
// integer as a linear one.
func ParseGeometry(s string) (Geometry, error) {
	s = strings.TrimSpace(s)
	if w, h, ok := strings.Cut(strings.ToLower(s), "x"); ok {
		wn, werr := strconv.Atoi(w)
		hn, herr := strconv.Atoi(h)
		if werr != nil || herr != nil || wn < 1 || wn != hn {
			return Geometry{}, fmt.Errorf("%w: %q (want NxN with equal positive dimensions)", ErrInvalidGeometry, s)
		}
		return SquareGeometry(wn), nil
	}
	k, err := strconv.Atoi(s)
	if err != nil || k < 1 {
		return Geometry{}, fmt.Errorf("%w: %q (want a positive integer)", ErrInvalidGeometry, s)
	}
	return LinearGeometry(k), nil
}

func (g Geometry) String() string {
	if g.Square {
		return fmt.Sprintf("%dx%d", g.Dim, g.Dim)
	}
	return strconv.Itoa(g.Dim)
}

// bits returns the number of hash bits the geometry yields.
func (g Geometry) bits(reduce bool) int {
	if !g.Square {
		return g.Dim
	}
	if reduce {
		return (g.Dim - 1) * (g.Dim + 2) / 2
	}
	return g.Dim * g.Dim
}

// Config is one hash request: geometry, triangular reduction, bit
// decision method and mirror handling. The zero value is not valid;
// start from DefaultConfig.
type Config struct {
	Geometry    Geometry
	Reduce      bool
	Method      Method
	Mirror      bool
	MirrorProof bool
}

// DefaultConfig is an 8x8 square selection thresholded on the average,
// yielding a 64 bit hash.
func DefaultConfig() Config {
	return Config{Geometry: SquareGeometry(8), Method: Average}
}

func (c Config) String() string {
	s := c.Geometry.String() + "/" + c.Method.String()
	if c.Reduce {
		s += "/reduce"
	}
	if c.Mirror {
		s += "/mirror"
	}
	if c.MirrorProof {
		s += "/mirrorproof"
	}
	return s
}

// Validate reports configuration errors that are independent of the
// hasher's grid size.
func (c Config) Validate() error {
	if c.Geometry.Dim < 1 {
		return fmt.Errorf("%w: dimension %d", ErrInvalidGeometry, c.Geometry.Dim)
	}
	if c.Method < Average || c.Method > Diff {
		return fmt.Errorf("%w: %d", ErrInvalidMethod, int(c.Method))
	}
	if c.Mirror && c.MirrorProof {
		return ErrMirrorConflict
	}
	return nil
}

// normalize strips settings that have no effect so that equivalent
// configurations share one cache entry.
func (c Config) normalize() Config {
	if !c.Geometry.Square {
		c.Reduce = false
	}
	return c
}

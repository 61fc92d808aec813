package phash

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// encodeBits packs a bit sequence into a hex string, most significant
// bit first, zero-padding the tail to a whole number of hex digits.
func encodeBits(b []uint8) string {
	var sb strings.Builder
	sb.Grow((len(b) + 3) / 4)
	for i := 0; i < len(b); i += 4 {
		var nib byte
		for j := 0; j < 4; j++ {
			nib <<= 1
			if i+j < len(b) && b[i+j] == 1 {
				nib |= 1
			}
		}
		sb.WriteByte(hexDigits[nib])
	}
	return sb.String()
}

// Distance returns the Hamming distance between two hex encoded hashes
// of equal length. Hashes of up to 64 bits are compared with a single
// word XOR and popcount; longer hashes are folded 16 hex digits at a
// time, which is identical to the bit-by-bit definition.
func Distance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrHashLengthMismatch, len(a), len(b))
	}
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	dist := 0
	for i := 0; i < len(a); i += 16 {
		end := i + 16
		if end > len(a) {
			end = len(a)
		}
		wa, err := strconv.ParseUint(a[i:end], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHash, a[i:end])
		}
		wb, err := strconv.ParseUint(b[i:end], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHash, b[i:end])
		}
		dist += bits.OnesCount64(wa ^ wb)
	}
	return dist, nil
}

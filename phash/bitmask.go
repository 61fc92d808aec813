package phash

import (
	"math"
	"sort"
)

// thresholdBits maps each value to 1 when strictly above thr. Values
// equal to the threshold produce 0.
func thresholdBits(vals []float64, thr float64) []uint8 {
	bits := make([]uint8, len(vals))
	for i, v := range vals {
		if v > thr {
			bits[i] = 1
		}
	}
	return bits
}

// diffBits compares each coefficient against its predecessor in
// selection order. Bit 0 compares the first selected coefficient
// against the DC term; when the first selected coefficient is the DC
// term itself, bit 0 is 0.
func diffBits(vals []float64, dc float64) []uint8 {
	bits := make([]uint8, len(vals))
	prev := dc
	for i, v := range vals {
		if v > prev {
			bits[i] = 1
		}
		prev = v
	}
	return bits
}

// mean returns the arithmetic mean, skipping the leading element when
// skipFirst is set (the DC term carries no discriminative information).
func mean(vals []float64, skipFirst bool) float64 {
	if skipFirst {
		vals = vals[1:]
	}
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median returns the median; for an even count, the midpoint of the two
// central values. The leading element is skipped when skipFirst is set.
func median(vals []float64, skipFirst bool) float64 {
	if skipFirst {
		vals = vals[1:]
	}
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// compress maps a coefficient into the logarithmic domain used by the
// Log method: sign(v) * ln(1+|v|). The map is monotonic and sign
// preserving, so bit decisions stay ordered while outlier magnitudes
// are damped.
func compress(v float64) float64 {
	if v < 0 {
		return -math.Log1p(-v)
	}
	return math.Log1p(v)
}

// compressed returns a new slice with every value compressed.
func compressed(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = compress(v)
	}
	return out
}

package chart

import (
	"math"
	"strconv"
)

// Ticks returns evenly spaced values covering [lo, hi] at a 1, 2 or 5 × 10^k
// step, using at most maxCount+1 values. An empty or inverted range yields
// only lo. The step is returned alongside for label formatting.
func Ticks(lo, hi float64, maxCount int) ([]float64, float64) {
	if !(hi > lo) || maxCount < 1 {
		return []float64{lo}, 0
	}
	return ticksEvery(lo, hi, niceStep((hi-lo)/float64(maxCount)))
}

// ticksEvery returns every multiple of step inside [lo, hi].
func ticksEvery(lo, hi, step float64) ([]float64, float64) {
	const eps = 1e-9
	first := int64(math.Ceil(lo/step - eps))
	last := int64(math.Floor(hi/step + eps))
	if last < first {
		return nil, step
	}
	out := make([]float64, 0, last-first+1)
	for k := first; k <= last; k++ {
		out = append(out, float64(k)*step)
	}
	return out, step
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw*(1-1e-9) {
			return m * mag
		}
	}
	return 10 * mag
}

// FormatTick prints v with just enough decimals to tell ticks of the given
// step apart.
func FormatTick(v, step float64) string {
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

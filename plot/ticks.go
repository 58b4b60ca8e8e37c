package plot

import (
	"math"
	"strconv"
)

// Ticks returns round tick positions covering [lo, hi], about n of them, with
// steps of 1, 2 or 5 times a power of ten.
func Ticks(lo, hi float64, n int) []float64 {
	if n < 1 || !(hi > lo) || math.IsInf(hi-lo, 0) {
		return nil
	}
	raw := (hi - lo) / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, m := range []float64{1, 2, 5, 10} {
		step = m * mag
		if raw <= step {
			break
		}
	}
	var out []float64
	for t := math.Ceil(lo/step) * step; t <= hi+step*1e-9; t += step {
		// Snap accumulated error so labels print cleanly.
		out = append(out, math.Round(t/step)*step)
	}
	return out
}

// FormatTick prints a tick value without trailing noise.
func FormatTick(v float64) string {
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

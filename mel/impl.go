package mel

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

func dumpimage(name string, spec *Spectrogram, reverse bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	mels, stride := spec.Bands(), spec.Frames()
	img := image.NewGray(image.Rect(0, 0, stride, mels))

	lo, hi := spec.Range()
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for y := 0; y < mels; y++ {
		for x := 0; x < stride; x++ {
			val := (spec.Data[y][x] - lo) / span
			col := color.Gray{Y: uint8(math.Round(255 * val))}
			if reverse {
				img.SetGray(x, mels-y-1, col)
			} else {
				img.SetGray(x, y, col)
			}
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return nil
}

func mel_to_hz(value float64) float64 {
	const _MEL_BREAK_FREQUENCY_HERTZ = 700.0
	const _MEL_HIGH_FREQUENCY_Q = 1127.0
	return _MEL_BREAK_FREQUENCY_HERTZ * (math.Exp(value/_MEL_HIGH_FREQUENCY_Q) - 1.0)
}

func hz_to_mel(value float64) float64 {
	const _MEL_BREAK_FREQUENCY_HERTZ = 700.0
	const _MEL_HIGH_FREQUENCY_Q = 1127.0
	return _MEL_HIGH_FREQUENCY_Q * math.Log(1.0+(value/_MEL_BREAK_FREQUENCY_HERTZ))
}

// filterbank returns mels triangular filters over the resolut/2+1 FFT bins,
// each normalized to unit area so bands of different width stay comparable.
func filterbank(mels, resolut, sr int, fmin, fmax float64) [][]float64 {
	bins := resolut/2 + 1

	lo, hi := hz_to_mel(fmin), hz_to_mel(fmax)
	edges := make([]float64, mels+2)
	for i := range edges {
		edges[i] = mel_to_hz(lo + (hi-lo)*float64(i)/float64(mels+1))
	}

	fb := make([][]float64, mels)
	for b := range fb {
		fb[b] = make([]float64, bins)
		left, center, right := edges[b], edges[b+1], edges[b+2]
		norm := 2 / (right - left)
		for k := range fb[b] {
			f := float64(k) * float64(sr) / float64(resolut)
			var w float64
			switch {
			case f > left && f <= center:
				w = (f - left) / (center - left)
			case f > center && f < right:
				w = (right - f) / (right - center)
			}
			fb[b][k] = w * norm
		}
	}
	return fb
}

// power_to_db converts in place to dB relative to the largest value, clamped
// to topdb below it when topdb > 0.
func power_to_db(buf [][]float64, topdb float64) {
	const amin = 1e-10
	var ref float64
	for _, row := range buf {
		for _, v := range row {
			ref = math.Max(ref, v)
		}
	}
	ref = 10 * math.Log10(math.Max(amin, ref))
	floor := math.Inf(-1)
	if topdb > 0 {
		floor = -topdb
	}
	for _, row := range buf {
		for i, v := range row {
			db := 10*math.Log10(math.Max(amin, v)) - ref
			row[i] = math.Max(db, floor)
		}
	}
}

func pad(buf []float64, n int) []float64 {
	out := make([]float64, len(buf)+2*n)
	copy(out[n:], buf)
	return out
}

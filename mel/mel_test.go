package mel

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func sine(rate, n int, freq float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return out
}

func TestToMelShape(t *testing.T) {
	m := NewMel()
	buf := sine(8000, 8000, 440)

	spec, err := m.ToMel(buf, 8000)
	require.NoError(t, err)

	assert.Equal(t, 128, spec.Bands())
	assert.Equal(t, 1+len(buf)/m.Window, spec.Frames())
	assert.Equal(t, 2048.0, spec.Fmax)

	lo, hi := spec.Range()
	assert.InDelta(t, 0, hi, 1e-9)
	assert.GreaterOrEqual(t, lo, -m.TopDB)
}

func TestToMelPeakBand(t *testing.T) {
	m := NewMel()
	spec, err := m.ToMel(sine(8000, 8000, 440), 8000)
	require.NoError(t, err)

	mid := spec.Frames() / 2
	best := 0
	for b := range spec.Data {
		if spec.Data[b][mid] > spec.Data[best][mid] {
			best = b
		}
	}
	assert.InDelta(t, 440, spec.BandHz(best), 40)
}

func TestToMelClampsFmax(t *testing.T) {
	m := NewMel()
	m.MelFmax = 8000
	spec, err := m.ToMel(sine(4000, 4000, 300), 4000)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, spec.Fmax)
}

func TestToMelErrors(t *testing.T) {
	m := NewMel()
	_, err := m.ToMel(nil, 8000)
	assert.ErrorIs(t, err, ErrEmpty)

	bad := NewMel()
	bad.Resolut = 1000
	_, err = bad.ToMel(sine(8000, 100, 440), 8000)
	assert.ErrorIs(t, err, ErrBadConfig)

	bad = NewMel()
	bad.MelFmin = 3000
	_, err = bad.ToMel(sine(8000, 100, 440), 8000)
	assert.ErrorIs(t, err, ErrBadConfig)

	_, err = m.ToMel(sine(8000, 100, 440), 0)
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestFloat16(t *testing.T) {
	spec := &Spectrogram{Data: [][]float64{{0, -1.5}, {-80, -12.25}}}
	bits := spec.Float16()
	require.Len(t, bits, 4)
	want := []float32{0, -1.5, -80, -12.25}
	for i, b := range bits {
		assert.Equal(t, want[i], float16.Frombits(b).Float32())
	}

	var buf bytes.Buffer
	require.NoError(t, spec.WriteFloat16(&buf))
	assert.Equal(t, 8, buf.Len())
}

func TestFilterbankUnitArea(t *testing.T) {
	fb := filterbank(40, 2048, 22050, 0, 2048)
	require.Len(t, fb, 40)
	for b, row := range fb {
		var nonzero int
		for _, w := range row {
			assert.GreaterOrEqual(t, w, 0.0)
			if w > 0 {
				nonzero++
			}
		}
		assert.Positive(t, nonzero, "band %d", b)
	}
}

func TestToMelPng(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tone.wav")
	clip := &audio.Clip{Samples: sine(8000, 4000, 440), SampleRate: 8000}
	require.NoError(t, clip.WriteWAV(in))

	m := NewMel()
	m.NumMels = 32
	out := filepath.Join(dir, "tone.png")
	require.NoError(t, m.ToMelPng(in, out, audio.NativeRate))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dy())
	assert.Equal(t, 1+4000/m.Window, img.Bounds().Dx())
}

func TestToMelPngUsesRate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tone.wav")
	clip := &audio.Clip{Samples: sine(8000, 4000, 440), SampleRate: 8000}
	require.NoError(t, clip.WriteWAV(in))

	m := NewMel()
	m.NumMels = 32
	out := filepath.Join(dir, "tone16k.png")
	require.NoError(t, m.ToMelPng(in, out, 16000))

	spec, err := m.LoadMel(in, 16000)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, spec.Frames(), img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dx(), 1+4000/m.Window)
}

func TestLoadMelMissing(t *testing.T) {
	_, err := NewMel().LoadMel(filepath.Join(t.TempDir(), "gone.wav"), audio.DefaultRate)
	assert.ErrorIs(t, err, audio.ErrNotFound)
}

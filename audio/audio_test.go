package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tone(rate int, seconds, freq, amp float64) []float64 {
	n := int(float64(rate) * seconds)
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return out
}

func writeTone(t *testing.T, rate int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	c := &Clip{Samples: tone(rate, 1, 440, 0.5), SampleRate: rate}
	require.NoError(t, c.WriteWAV(path))
	return path
}

func TestLoadWavNative(t *testing.T) {
	path := writeTone(t, 8000)

	c, err := Load(path, NativeRate)
	require.NoError(t, err)
	assert.Equal(t, 8000, c.SampleRate)
	assert.Len(t, c.Samples, 8000)
	assert.Equal(t, path, c.Path)
	assert.Equal(t, time.Second, c.Duration())

	want := tone(8000, 1, 440, 0.5)
	for i := 0; i < 100; i++ {
		assert.InDelta(t, want[i], c.Samples[i], 1e-3)
	}
}

func TestLoadWavResampled(t *testing.T) {
	path := writeTone(t, 8000)

	c, err := Load(path, 16000)
	require.NoError(t, err)
	assert.Equal(t, 16000, c.SampleRate)
	assert.InDelta(t, 16000, len(c.Samples), 64)
	assert.InDelta(t, 1.0, c.Seconds(), 0.01)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.wav"), DefaultRate)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3"), 0o644))
	_, err := Load(path, DefaultRate)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLoadGarbage(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"empty.wav", "junk.flac"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o644))
		_, err := Load(path, NativeRate)
		assert.ErrorIs(t, err, ErrFileNotLoaded, name)
	}
}

func TestWriteWAVClips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loud.wav")
	c := &Clip{Samples: []float64{2, -2, 0.25}, SampleRate: 8000}
	require.NoError(t, c.WriteWAV(path))

	got, err := Load(path, NativeRate)
	require.NoError(t, err)
	require.Len(t, got.Samples, 3)
	assert.InDelta(t, 1, got.Samples[0], 1e-3)
	assert.InDelta(t, -1, got.Samples[1], 1e-3)
	assert.InDelta(t, 0.25, got.Samples[2], 1e-3)
}

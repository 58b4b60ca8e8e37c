package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/hlscmds/hlsviz/config"
	"github.com/hlscmds/hlsviz/donut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(os.Stderr)
	return root.Execute()
}

func writeClip(t *testing.T, path string) {
	t.Helper()
	samples := make([]float64, 4000)
	for i := range samples {
		samples[i] = 0.02 * math.Sin(2*math.Pi*120*float64(i)/8000)
	}
	require.NoError(t, (&audio.Clip{Samples: samples, SampleRate: 8000}).WriteWAV(path))
}

func TestDonutDefault(t *testing.T) {
	out := filepath.Join(t.TempDir(), "donut.png")
	require.NoError(t, run(t, "donut", "-o", out))
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestDonutRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Chart.Layers[2].Values[0] = -1
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, cfg.Save(path))

	out := filepath.Join(dir, "donut.png")
	err := run(t, "donut", "--config", path, "-o", out)
	var inv *donut.InvalidValueError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "lung", inv.Layer)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWaveformAndMelspec(t *testing.T) {
	dir := t.TempDir()
	clip := filepath.Join(dir, "M_W_RLA.wav")
	writeClip(t, clip)
	missing := filepath.Join(dir, "M_AF_LC.wav")

	wav := filepath.Join(dir, "waves.png")
	require.NoError(t, run(t, "waveform", "-o", wav, clip, missing))
	_, err := os.Stat(wav)
	assert.NoError(t, err)

	spec := filepath.Join(dir, "mel.png")
	dump := filepath.Join(dir, "dump")
	raw := filepath.Join(dir, "raw")
	require.NoError(t, run(t, "melspec", "-o", spec, "--dump", dump, "--raw", raw, clip, missing))
	for _, p := range []string{spec, filepath.Join(dump, "M_W_RLA.f16"), filepath.Join(raw, "M_W_RLA.png")} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
	_, err = os.Stat(filepath.Join(dump, "M_AF_LC.f16"))
	assert.True(t, os.IsNotExist(err))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	writeClip(t, in)
	out := filepath.Join(dir, "out.wav")
	require.NoError(t, run(t, "export", "--rate", "16000", in, out))

	c, err := audio.Load(out, audio.NativeRate)
	require.NoError(t, err)
	assert.Equal(t, 16000, c.SampleRate)

	err = run(t, "export", filepath.Join(dir, "nope.wav"), out)
	assert.ErrorIs(t, err, audio.ErrNotFound)
}

func TestInitConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hlsviz.yaml")
	require.NoError(t, run(t, "init-config", path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSourcesFromArgs(t *testing.T) {
	got := sourcesFromArgs([]string{"/content/M_AF_LC.wav", "x.flac"})
	assert.Equal(t, []audio.Source{
		{Path: "/content/M_AF_LC.wav", Title: "M_AF_LC"},
		{Path: "x.flac", Title: "x"},
	}, got)
}

package mel

import (
	"path/filepath"
	"testing"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "M_W_RLA.wav")
	require.NoError(t, (&audio.Clip{Samples: sine(8000, 8000, 300), SampleRate: 8000}).WriteWAV(in))

	opts := DefaultFigureOptions()
	opts.Rate = audio.NativeRate
	sources := []audio.Source{
		{Path: in, Title: "M_W_RLA"},
		{Path: filepath.Join(dir, "M_AF_LC.wav"), Title: "M_AF_LC"},
	}
	c, err := NewMel().PlotFile(sources, filepath.Join(dir, "mel.png"), opts, nil)
	require.NoError(t, err)

	require.Len(t, c.Skipped, 1)
	assert.Equal(t, 1, c.Skipped[0].Index)
	assert.Equal(t, 2*opts.Layout.PanelHeight+80, c.Image.Bounds().Dy())
}

func TestPlotFileNoSources(t *testing.T) {
	_, err := NewMel().PlotFile(nil, filepath.Join(t.TempDir(), "x.png"), DefaultFigureOptions(), nil)
	assert.Error(t, err)
}

func TestBandPosInvertsBandHz(t *testing.T) {
	spec := &Spectrogram{Data: make([][]float64, 64), Fmin: 0, Fmax: 2048}
	for _, b := range []int{0, 10, 63} {
		assert.InDelta(t, float64(b)+0.5, spec.BandPos(spec.BandHz(b)), 1e-9)
	}
}

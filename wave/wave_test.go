package wave

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/hlscmds/hlsviz/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClip(t *testing.T, dir, name string) string {
	t.Helper()
	const rate = 4000
	samples := make([]float64, rate/2)
	for i := range samples {
		samples[i] = 0.03 * math.Sin(2*math.Pi*50*float64(i)/rate)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, (&audio.Clip{Samples: samples, SampleRate: rate}).WriteWAV(path))
	return path
}

func TestPlotFileSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	sources := []audio.Source{
		{Path: writeClip(t, dir, "M_AF_LC.wav"), Title: "AF_LC"},
		{Path: filepath.Join(dir, "M_S3_C_RUSB.wav"), Title: "S3_C_RUSB"},
		{Path: writeClip(t, dir, "M_W_RLA.wav"), Title: "W_RLA"},
	}
	out := filepath.Join(dir, "combined_plots.png")

	opts := DefaultOptions()
	opts.Rate = audio.NativeRate
	c, err := PlotFile(sources, out, opts, nil)
	require.NoError(t, err)

	require.Len(t, c.Skipped, 1)
	assert.Equal(t, "S3_C_RUSB", c.Skipped[0].Title)
	assert.ErrorIs(t, c.Skipped[0].Err, audio.ErrNotFound)
	assert.Equal(t, image.Rect(0, 0, 1200, 1200), c.Image.Bounds())

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestPanelDrawsInk(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	c, err := Plot([]audio.Source{{Path: writeClip(t, dir, "a.wav"), Title: "a"}}, opts, nil)
	require.NoError(t, err)

	// The plot area's vertical middle is amplitude zero, crossed by the tone
	// fifty times.
	img := c.Image
	lay := plot.DefaultLayout()
	midY := 40 + (lay.PanelHeight-40-60)/2
	var dark int
	for x := 91; x < lay.Width-31; x++ {
		r, g, b, _ := img.At(x, midY).RGBA()
		if r < 0x8000 && g < 0x8000 && b < 0x8000 {
			dark++
		}
	}
	assert.Positive(t, dark)
}

func TestPlotNoSources(t *testing.T) {
	_, err := Plot(nil, DefaultOptions(), nil)
	var be *plot.RenderBackendError
	assert.ErrorAs(t, err, &be)
}

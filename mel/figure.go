package mel

import (
	"errors"
	"fmt"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/hlscmds/hlsviz/plot"
	"go.uber.org/zap"
)

// FigureOptions control spectrogram figures.
type FigureOptions struct {
	// Rate clips are resampled to before analysis.
	Rate   int
	Map    plot.Colormap
	Layout plot.Layout
	// Hz values labelled on the frequency axis when inside the mel range.
	FreqTicks []float64
}

// DefaultFigureOptions returns a vertical figure, 8 by 12 inches at 100 dpi
// for three clips, with a dB colorbar under the last panel.
func DefaultFigureOptions() FigureOptions {
	return FigureOptions{
		Rate: audio.DefaultRate,
		Map:  plot.Magma,
		Layout: plot.Layout{
			Width:       800,
			PanelHeight: 370,
		},
		FreqTicks: []float64{64, 128, 256, 512, 1024, 2048, 4096, 8192},
	}
}

// floor is the lowest dB value shown, -TopDB or -80 when TopDB is unset.
func (m *Mel) floor() float64 {
	if m.TopDB > 0 {
		return -m.TopDB
	}
	return -80
}

// Panel returns the spectrogram panel of src. A missing or unreadable file
// makes the panel a placeholder rather than an error.
func (m *Mel) Panel(src audio.Source, opts FigureOptions) plot.Panel {
	return plot.Panel{
		Title:  src.Title,
		XLabel: "Time (s)",
		YLabel: "Frequency (Hz)",
		Draw: func(ax *plot.Axes) error {
			clip, err := audio.Load(src.Path, opts.Rate)
			if errors.Is(err, audio.ErrNotFound) || errors.Is(err, audio.ErrFileNotLoaded) {
				return fmt.Errorf("%w: %w", plot.ErrSkipPanel, err)
			}
			if err != nil {
				return err
			}
			spec, err := m.ToMel(clip.Samples, clip.SampleRate)
			if err != nil {
				return err
			}

			ax.SetXLim(0, spec.Seconds())
			ax.SetYLim(0, float64(spec.Bands()))
			var pos []float64
			var labels []string
			for _, hz := range opts.FreqTicks {
				if hz < spec.Fmin || hz > spec.Fmax {
					continue
				}
				pos = append(pos, spec.BandPos(hz))
				labels = append(labels, plot.FormatTick(hz))
			}
			ax.SetYTicks(pos, labels)
			ax.Heatmap(spec.Data, m.floor(), 0, opts.Map)
			return nil
		},
	}
}

// Plot draws one spectrogram panel per source above a shared dB colorbar.
func (m *Mel) Plot(sources []audio.Source, opts FigureOptions, log *zap.Logger) (*plot.Composite, error) {
	if opts.Map == nil {
		opts.Map = plot.Magma
	}
	panels := make([]plot.Panel, len(sources))
	for i, src := range sources {
		panels[i] = m.Panel(src, opts)
	}
	layout := opts.Layout
	layout.Colorbar = &plot.Colorbar{
		Min:    m.floor(),
		Max:    0,
		Map:    opts.Map,
		Format: "%+2.0f dB",
	}
	return plot.Compose(panels, layout, log)
}

// PlotFile runs Plot and saves the figure to output.
func (m *Mel) PlotFile(sources []audio.Source, output string, opts FigureOptions, log *zap.Logger) (*plot.Composite, error) {
	c, err := m.Plot(sources, opts, log)
	if err != nil {
		return nil, err
	}
	if err := plot.Save(c.Image, output); err != nil {
		return nil, err
	}
	return c, nil
}

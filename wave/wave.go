package wave

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/hlscmds/hlsviz/plot"
	"go.uber.org/zap"
)

// Options control waveform plotting.
type Options struct {
	// Rate clips are resampled to before plotting, audio.NativeRate keeps
	// the file's own rate.
	Rate int
	// Amplitude limits shared by every panel.
	YLim   [2]float64
	Color  color.Color
	Layout plot.Layout
}

// DefaultOptions returns the settings used for stethoscope recordings, whose
// amplitudes rarely exceed 0.05 full scale.
func DefaultOptions() Options {
	return Options{
		Rate:   audio.DefaultRate,
		YLim:   [2]float64{-0.05, 0.05},
		Color:  color.Black,
		Layout: plot.DefaultLayout(),
	}
}

// Panel returns the waveform panel of src. A missing or unreadable file makes
// the panel a placeholder rather than an error.
func Panel(src audio.Source, opts Options) plot.Panel {
	return plot.Panel{
		Title:  src.Title,
		XLabel: "Time (s)",
		YLabel: "Amplitude",
		Draw: func(ax *plot.Axes) error {
			clip, err := audio.Load(src.Path, opts.Rate)
			if errors.Is(err, audio.ErrNotFound) || errors.Is(err, audio.ErrFileNotLoaded) {
				return fmt.Errorf("%w: %w", plot.ErrSkipPanel, err)
			}
			if err != nil {
				return err
			}
			ax.SetXLim(0, clip.Seconds())
			ax.SetYLim(opts.YLim[0], opts.YLim[1])
			ax.Envelope(0, 1/float64(clip.SampleRate), clip.Samples, opts.Color)
			return nil
		},
	}
}

// Plot draws one waveform panel per source, top to bottom.
func Plot(sources []audio.Source, opts Options, log *zap.Logger) (*plot.Composite, error) {
	panels := make([]plot.Panel, len(sources))
	for i, src := range sources {
		panels[i] = Panel(src, opts)
	}
	layout := opts.Layout
	ylim := opts.YLim
	layout.YLim = &ylim
	return plot.Compose(panels, layout, log)
}

// PlotFile runs Plot and saves the figure to output.
func PlotFile(sources []audio.Source, output string, opts Options, log *zap.Logger) (*plot.Composite, error) {
	c, err := Plot(sources, opts, log)
	if err != nil {
		return nil, err
	}
	if err := plot.Save(c.Image, output); err != nil {
		return nil, err
	}
	return c, nil
}

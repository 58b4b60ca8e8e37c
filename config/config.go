// Package config holds the datasets and settings of every figure, loaded from
// YAML. Default returns the HLS-CMDS dataset.
package config

import (
	"fmt"
	"os"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/hlscmds/hlsviz/donut"
	"github.com/hlscmds/hlsviz/mel"
	"github.com/hlscmds/hlsviz/plot"
	"github.com/hlscmds/hlsviz/wave"
	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML file.
type Config struct {
	Chart       ChartConfig       `yaml:"chart"`
	Waveform    WaveformConfig    `yaml:"waveform"`
	Spectrogram SpectrogramConfig `yaml:"spectrogram"`
}

// CategoryConfig is one registry entry. Total is the legend count.
type CategoryConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Total int    `yaml:"total"`
}

// LayerConfig is one ring, outermost first in ChartConfig.Layers.
type LayerConfig struct {
	Name        string    `yaml:"name"`
	Radius      float64   `yaml:"radius"`
	LabelRadius float64   `yaml:"label_radius"`
	Categories  []string  `yaml:"categories"`
	Values      []float64 `yaml:"values"`
}

// ChartConfig describes the donut chart.
type ChartConfig struct {
	Title      string           `yaml:"title"`
	Output     string           `yaml:"output"`
	StartAngle float64          `yaml:"start_angle"`
	HoleRadius float64          `yaml:"hole_radius"`
	Categories []CategoryConfig `yaml:"categories"`
	Layers     []LayerConfig    `yaml:"layers"`
}

// WaveformConfig describes the waveform figure.
type WaveformConfig struct {
	Output string         `yaml:"output"`
	Rate   int            `yaml:"rate"`
	YLim   [2]float64     `yaml:"ylim"`
	Clips  []audio.Source `yaml:"clips"`
}

// SpectrogramConfig describes the mel spectrogram figure.
type SpectrogramConfig struct {
	Output   string         `yaml:"output"`
	Rate     int            `yaml:"rate"`
	NumMels  int            `yaml:"num_mels"`
	Fmin     float64        `yaml:"fmin"`
	Fmax     float64        `yaml:"fmax"`
	NFFT     int            `yaml:"n_fft"`
	Hop      int            `yaml:"hop"`
	TopDB    float64        `yaml:"top_db"`
	Colormap string         `yaml:"colormap"`
	Clips    []audio.Source `yaml:"clips"`
}

// Load reads path over Default. Keys missing from the file keep their
// default; lists present in the file replace the default list.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Chart converts the chart section into renderer input.
func (c ChartConfig) Chart() (donut.Chart, error) {
	chart := donut.Chart{StartAngle: c.StartAngle}
	for _, cc := range c.Categories {
		col, err := donut.Hex(cc.Color)
		if err != nil {
			return donut.Chart{}, fmt.Errorf("category %q: %w", cc.Name, err)
		}
		chart.Categories = append(chart.Categories, donut.Category{Name: cc.Name, Color: col, Total: cc.Total})
	}
	for _, lc := range c.Layers {
		chart.Layers = append(chart.Layers, donut.Layer{
			Name:        lc.Name,
			Categories:  lc.Categories,
			Values:      lc.Values,
			Radius:      lc.Radius,
			LabelRadius: lc.LabelRadius,
		})
	}
	return chart, nil
}

// Options converts the waveform section.
func (c WaveformConfig) Options() wave.Options {
	opts := wave.DefaultOptions()
	opts.Rate = c.Rate
	opts.YLim = c.YLim
	return opts
}

// Mel converts the spectrogram analysis settings.
func (c SpectrogramConfig) Mel() *mel.Mel {
	m := mel.NewMel()
	m.NumMels = c.NumMels
	m.MelFmin = c.Fmin
	m.MelFmax = c.Fmax
	m.Resolut = c.NFFT
	m.Window = c.Hop
	m.TopDB = c.TopDB
	return m
}

// FigureOptions converts the spectrogram figure settings.
func (c SpectrogramConfig) FigureOptions() (mel.FigureOptions, error) {
	opts := mel.DefaultFigureOptions()
	opts.Rate = c.Rate
	cmap, ok := plot.ColormapByName(c.Colormap)
	if !ok {
		return opts, fmt.Errorf("unknown colormap %q", c.Colormap)
	}
	opts.Map = cmap
	return opts, nil
}

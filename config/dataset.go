package config

import (
	"github.com/hlscmds/hlsviz/audio"
	"github.com/hlscmds/hlsviz/donut"
)

var (
	heartSounds = []string{
		"Normal Heart", "Late Diastolic Murmur", "Mid Systolic Murmur",
		"Late Systolic Murmur", "Atrial Fibrillation", "Fourth Heart Sound",
		"Early Systolic Murmur", "Third Heart Sound", "Tachycardia",
		"Atrioventricular Block",
	}
	lungSounds = []string{
		"Normal Lung", "Wheezing", "Crackles", "Rhonchi",
		"Pleural Rub", "Gurgling",
	}
)

// Default returns the HLS-CMDS sound type chart and the three example clips.
func Default() *Config {
	mixed := append(append([]string{}, heartSounds...), lungSounds...)
	return &Config{
		Chart: ChartConfig{
			Title:      "Sound Types in the Dataset",
			Output:     "sound_types.png",
			StartAngle: donut.DefaultStartAngle,
			HoleRadius: 0.3,
			Categories: []CategoryConfig{
				{"Normal Heart", "#1f77b4", 18},
				{"Late Diastolic Murmur", "#ff7f0e", 16},
				{"Mid Systolic Murmur", "#2ca02c", 17},
				{"Late Systolic Murmur", "#d62728", 21},
				{"Atrial Fibrillation", "#9467bd", 17},
				{"Fourth Heart Sound", "#8c564b", 14},
				{"Early Systolic Murmur", "#e377c2", 14},
				{"Third Heart Sound", "#7f7f7f", 16},
				{"Tachycardia", "#bcbd22", 15},
				{"Atrioventricular Block", "#17becf", 12},
				{"Normal Lung", "#9edae5", 30},
				{"Wheezing", "#ff9896", 23},
				{"Crackles", "#98df8a", 18},
				{"Rhonchi", "#c5b0d5", 29},
				{"Pleural Rub", "#ffbb78", 33},
				{"Gurgling", "#c49c94", 27},
			},
			Layers: []LayerConfig{
				{
					Name: "mixed", Radius: 1, LabelRadius: 0.85,
					Categories: mixed,
					Values:     []float64{9, 10, 10, 16, 13, 12, 8, 11, 12, 9, 18, 16, 13, 21, 24, 18},
				},
				{
					Name: "heart", Radius: 0.75, LabelRadius: 0.6,
					Categories: append([]string{}, heartSounds...),
					Values:     []float64{9, 6, 7, 5, 4, 2, 6, 5, 3, 3},
				},
				{
					Name: "lung", Radius: 0.5, LabelRadius: 0.45,
					Categories: append([]string{}, lungSounds...),
					Values:     []float64{12, 7, 5, 8, 9, 9},
				},
			},
		},
		Waveform: WaveformConfig{
			Output: "combined_plots.png",
			Rate:   audio.DefaultRate,
			YLim:   [2]float64{-0.05, 0.05},
			Clips: []audio.Source{
				{Path: "data/M_AF_LC.wav", Title: "AF_LC"},
				{Path: "data/M_S3_C_RUSB.wav", Title: "S3_C_RUSB"},
				{Path: "data/M_W_RLA.wav", Title: "W_RLA"},
			},
		},
		Spectrogram: SpectrogramConfig{
			Output:   "mel_spectrograms.png",
			Rate:     audio.DefaultRate,
			NumMels:  128,
			Fmin:     0,
			Fmax:     2048,
			NFFT:     2048,
			Hop:      512,
			TopDB:    80,
			Colormap: "magma",
			Clips: []audio.Source{
				{Path: "data/M_AF_LC.wav", Title: "M_AF_LC"},
				{Path: "data/M_S3_C_RUSB.wav", Title: "M_S3_C_RUSB"},
				{Path: "data/M_W_RLA.wav", Title: "M_W_RLA"},
			},
		},
	}
}

// Command hlsviz renders the figures of the HLS-CMDS heart and lung sound
// dataset.
//
// Usage:
//
//	hlsviz donut [--config hlsviz.yaml] [-o sound_types.png]
//	hlsviz waveform [--config hlsviz.yaml] [-o combined_plots.png] [clip.wav ...]
//	hlsviz melspec [--config hlsviz.yaml] [-o mel.png] [--dump dir] [--raw dir] [clip.wav ...]
//	hlsviz export <in.wav|in.flac> <out.wav> [--rate 22050]
//	hlsviz init-config <path>
//
// Without --config the built in dataset is used. Clip paths given as
// arguments replace the configured clip list and are titled by file name.
// The image encoding follows the output extension (.png, .jpg).
package main

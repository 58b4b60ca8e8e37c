// Package plot draws figures on raster surfaces and saves them.
//
// It renders donut.Figure geometry and composes stacks of titled panels that
// share one canvas, such as waveform or spectrogram rows over a common
// colorbar. Output encoding is chosen from the file extension.
package plot

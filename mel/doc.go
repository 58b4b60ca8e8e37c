// Package mel provides mel-frequency power spectrogram generation.
//
// This package turns mono audio into a mel-scale spectrogram in decibels, the
// representation used to inspect heart and lung recordings. It supports:
//   - STFT analysis with a Hann window and configurable FFT size and hop
//   - Triangular mel filterbanks limited to a configurable frequency range
//   - Power to decibel conversion relative to the loudest bin, with a floor
//   - Raw exports as grayscale PNG or half-precision float dumps
package mel

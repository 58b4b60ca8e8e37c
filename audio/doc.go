// Package audio loads mono sample vectors from WAV and FLAC files.
//
// Multi-channel input is mixed down to mono and samples are scaled to
// [-1, 1]. Clips may be resampled on load, DefaultRate matching the rate most
// analysis tooling assumes. A decoded Clip can be written back as 16-bit PCM
// WAV for playback elsewhere.
package audio

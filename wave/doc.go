// Package wave plots time-domain waveforms of recordings, one panel per clip.
package wave

package audio

import (
	"fmt"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// BitDepth of exported WAV files.
const BitDepth = 16

// WriteWAV saves the clip as mono 16-bit PCM. Samples outside [-1, 1] are
// clipped.
func (c *Clip) WriteWAV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := wav.NewEncoder(f, c.SampleRate, BitDepth, 1, 1)

	const full = 1<<(BitDepth-1) - 1
	data := make([]int, len(c.Samples))
	for i, s := range c.Samples {
		data[i] = int(math.Round(math.Max(-1, math.Min(1, s)) * full))
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("audio: write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("audio: write %s: %w", path, err)
	}
	return f.Close()
}

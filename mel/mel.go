package mel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hlscmds/hlsviz/audio"
	"github.com/mjibson/go-dsp/fft"
	"github.com/r9y9/gossp/stft"
	"github.com/x448/float16"
)

// Mel represents the configuration for generating mel spectrograms.
type Mel struct {
	NumMels int
	MelFmin float64
	MelFmax float64
	// hop between frames in samples
	Window int
	// FFT size in samples
	Resolut int
	// dynamic range kept below the peak, 0 keeps everything
	TopDB    float64
	YReverse bool
}

// NewMel creates a new Mel instance with default values.
func NewMel() *Mel {
	return &Mel{
		NumMels:  128,
		MelFmin:  0,
		MelFmax:  2048,
		Window:   512,
		Resolut:  2048,
		TopDB:    80,
		YReverse: true,
	}
}

var (
	ErrEmpty     = errors.New("mel: empty signal")
	ErrBadConfig = errors.New("mel: bad configuration")
)

// Spectrogram is a mel power spectrogram in dB. Data is indexed [band][frame],
// band 0 being the lowest frequency.
type Spectrogram struct {
	Data       [][]float64
	SampleRate int
	Hop        int
	Fmin       float64
	Fmax       float64
}

// Bands is the number of mel bands.
func (s *Spectrogram) Bands() int { return len(s.Data) }

// Frames is the number of STFT frames.
func (s *Spectrogram) Frames() int {
	if len(s.Data) == 0 {
		return 0
	}
	return len(s.Data[0])
}

// Seconds is the time covered by the frames.
func (s *Spectrogram) Seconds() float64 {
	return float64(s.Frames()*s.Hop) / float64(s.SampleRate)
}

// BandHz is the center frequency of band b.
func (s *Spectrogram) BandHz(b int) float64 {
	lo, hi := hz_to_mel(s.Fmin), hz_to_mel(s.Fmax)
	return mel_to_hz(lo + (hi-lo)*float64(b+1)/float64(s.Bands()+1))
}

// BandPos maps a frequency onto the band axis, where band b spans [b, b+1).
func (s *Spectrogram) BandPos(hz float64) float64 {
	lo, hi := hz_to_mel(s.Fmin), hz_to_mel(s.Fmax)
	return (hz_to_mel(hz)-lo)/(hi-lo)*float64(s.Bands()+1) - 0.5
}

// Range returns the smallest and largest dB value.
func (s *Spectrogram) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range s.Data {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return
}

// Float16 packs the spectrogram row by row as IEEE 754 half-precision bits.
func (s *Spectrogram) Float16() []uint16 {
	out := make([]uint16, 0, s.Bands()*s.Frames())
	for _, row := range s.Data {
		for _, v := range row {
			out = append(out, float16.Fromfloat32(float32(v)).Bits())
		}
	}
	return out
}

// WriteFloat16 writes Float16 little endian to w.
func (s *Spectrogram) WriteFloat16(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, s.Float16())
}

func (m *Mel) check(sr int) error {
	switch {
	case m.NumMels <= 0:
		return fmt.Errorf("%w: NumMels %d", ErrBadConfig, m.NumMels)
	case m.Window <= 0 || m.Resolut <= 0:
		return fmt.Errorf("%w: window %d resolution %d", ErrBadConfig, m.Window, m.Resolut)
	case m.Resolut&(m.Resolut-1) != 0:
		return fmt.Errorf("%w: resolution %d is not a power of two", ErrBadConfig, m.Resolut)
	case m.MelFmin < 0 || m.MelFmin >= m.MelFmax:
		return fmt.Errorf("%w: mel range %v..%v", ErrBadConfig, m.MelFmin, m.MelFmax)
	case sr <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrBadConfig, sr)
	}
	return nil
}

// ToMel generates a mel spectrogram from a wave buffer sampled at sr.
func (m *Mel) ToMel(buf []float64, sr int) (*Spectrogram, error) {
	if len(buf) == 0 {
		return nil, ErrEmpty
	}
	if err := m.check(sr); err != nil {
		return nil, err
	}
	fmax := math.Min(m.MelFmax, float64(sr)/2)
	if m.MelFmin >= fmax {
		return nil, fmt.Errorf("%w: mel range %v..%v at %d Hz", ErrBadConfig, m.MelFmin, fmax, sr)
	}

	power := m.powerSpectrum(buf)
	fb := filterbank(m.NumMels, m.Resolut, sr, m.MelFmin, fmax)

	data := make([][]float64, m.NumMels)
	for b := range data {
		data[b] = make([]float64, len(power))
		for t, frame := range power {
			var sum float64
			for k, w := range fb[b] {
				sum += w * frame[k]
			}
			data[b][t] = sum
		}
	}
	power_to_db(data, m.TopDB)

	return &Spectrogram{Data: data, SampleRate: sr, Hop: m.Window, Fmin: m.MelFmin, Fmax: fmax}, nil
}

// powerSpectrum returns |STFT|^2 per frame, bins 0..Resolut/2. Frames are
// centered: the signal is zero padded by half a frame on both sides.
func (m *Mel) powerSpectrum(buf []float64) [][]float64 {
	buf = pad(buf, m.Resolut/2)

	s := stft.New(m.Window, m.Resolut)
	numFrames := 1 + (len(buf)-m.Resolut)/m.Window
	bins := m.Resolut/2 + 1

	power := make([][]float64, numFrames)
	frame := make([]float64, m.Resolut)
	for i := range power {
		off := i * m.Window
		for j := range frame {
			frame[j] = buf[off+j] * s.Window[j]
		}
		spectrum := fft.FFTReal(frame)
		power[i] = make([]float64, bins)
		for j := 0; j < bins; j++ {
			v := spectrum[j]
			power[i][j] = real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return power
}

// LoadMel loads a WAV or FLAC file, resampled to rate unless it is
// audio.NativeRate, and generates its mel spectrogram.
func (m *Mel) LoadMel(inputFile string, rate int) (*Spectrogram, error) {
	clip, err := audio.Load(inputFile, rate)
	if err != nil {
		return nil, err
	}
	return m.ToMel(clip.Samples, clip.SampleRate)
}

// ToMelPng generates a mel spectrogram from an input WAV or FLAC file loaded
// at rate and saves it as a grayscale PNG image, one pixel per bin.
func (m *Mel) ToMelPng(inputFile, outputFile string, rate int) error {
	spec, err := m.LoadMel(inputFile, rate)
	if err != nil {
		return err
	}
	return dumpimage(outputFile, spec, m.YReverse)
}

package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
)

// DefaultRate is the rate clips are resampled to unless the caller asks for
// the native rate.
const DefaultRate = 22050

// NativeRate keeps a file's own sample rate.
const NativeRate = 0

var (
	// ErrNotFound is returned when the audio path does not exist.
	ErrNotFound = errors.New("audio: file not found")
	// ErrFileNotLoaded is returned when a file exists but yields no samples.
	ErrFileNotLoaded = errors.New("audio: file not loaded")
	// ErrUnsupported is returned for extensions other than .wav and .flac.
	ErrUnsupported = errors.New("audio: unsupported format")
)

// Source names a recording for display.
type Source struct {
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

// Clip is a decoded mono recording.
type Clip struct {
	Path       string
	Samples    []float64
	SampleRate int
}

// Duration is the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / float64(c.SampleRate) * float64(time.Second))
}

// Seconds is the playing time of the clip in seconds.
func (c *Clip) Seconds() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Load decodes path into a mono clip. With targetRate other than NativeRate
// the samples are resampled to it.
func Load(path string, targetRate int) (*Clip, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	var (
		samples []float64
		rate    int
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		samples, rate, err = loadwav(path)
	case ".flac":
		samples, rate, err = loadflac(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotLoaded, path, err)
	}
	if len(samples) == 0 || rate == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFileNotLoaded, path)
	}

	if targetRate != NativeRate && targetRate != rate {
		samples, err = resample(samples, rate, targetRate)
		if err != nil {
			return nil, fmt.Errorf("audio: resample %s: %w", path, err)
		}
		rate = targetRate
	}
	return &Clip{Path: path, Samples: samples, SampleRate: rate}, nil
}

// resample runs samples through beep's resampler.
func resample(samples []float64, from, to int) ([]float64, error) {
	var pos int
	src := beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy2(buf, samples[pos:])
		pos += n
		return n, true
	})
	r := beep.Resample(4, beep.SampleRate(from), beep.SampleRate(to), src)

	out := make([]float64, 0, int(float64(len(samples))*float64(to)/float64(from))+1)
	buf := make([][2]float64, 512)
	for {
		n, ok := r.Stream(buf)
		for _, s := range buf[:n] {
			out = append(out, s[0])
		}
		if !ok {
			break
		}
	}
	return out, r.Err()
}

func copy2(dst [][2]float64, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = [2]float64{src[i], src[i]}
	}
	return n
}

package audio

import (
	"os"

	"github.com/faiface/beep/wav"
)

func loadwav(name string) (out []float64, rate int, err error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	// Closes file as well.
	stream, format, err := wav.Decode(file)
	if err != nil {
		file.Close()
		return nil, 0, err
	}
	defer stream.Close()

	out = make([]float64, 0, stream.Len())
	samples := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		for _, s := range samples[:n] {
			out = append(out, (s[0]+s[1])/2)
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, err
	}
	return out, int(format.SampleRate), nil
}

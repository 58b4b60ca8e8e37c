package audio

import (
	"io"

	"github.com/mewkiz/flac"
)

func loadflac(name string) (out []float64, rate int, err error) {
	stream, err := flac.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	scale := 1 / float64(int64(1)<<(stream.Info.BitsPerSample-1))
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		nch := len(frame.Subframes)
		if nch == 0 {
			continue
		}
		for i := range frame.Subframes[0].Samples {
			var sum float64
			for _, sub := range frame.Subframes {
				sum += float64(sub.Samples[i])
			}
			out = append(out, sum/float64(nch)*scale)
		}
	}
	return out, int(stream.Info.SampleRate), nil
}

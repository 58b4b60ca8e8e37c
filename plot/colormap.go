package plot

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps t in [0, 1] to a color.
type Colormap func(t float64) color.Color

// Gradient interpolates evenly spaced stops in Lab space.
func Gradient(stops ...string) Colormap {
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			panic(err)
		}
		cs[i] = c
	}
	return func(t float64) color.Color {
		if math.IsNaN(t) {
			t = 0
		}
		t = math.Max(0, math.Min(1, t))
		if len(cs) == 1 {
			return cs[0].Clamped()
		}
		pos := t * float64(len(cs)-1)
		i := int(pos)
		if i >= len(cs)-1 {
			return cs[len(cs)-1].Clamped()
		}
		return cs[i].BlendLab(cs[i+1], pos-float64(i)).Clamped()
	}
}

var (
	// Magma is the usual colormap for dB spectrograms.
	Magma = Gradient("#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf")
	// Viridis is a perceptually uniform blue to yellow map.
	Viridis = Gradient("#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725")
	// Gray runs from black to white.
	Gray = Gradient("#000000", "#ffffff")
)

// ColormapByName returns a built in colormap, or false.
func ColormapByName(name string) (Colormap, bool) {
	switch name {
	case "magma", "":
		return Magma, true
	case "viridis":
		return Viridis, true
	case "gray", "grey":
		return Gray, true
	}
	return nil, false
}

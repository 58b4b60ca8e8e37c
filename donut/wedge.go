package donut

import (
	"image/color"
	"math"
)

// Wedge is one slice of a ring. Angles are in degrees, counterclockwise from
// the positive x axis, and span [Theta1, Theta2). Theta2 may exceed 360; the
// last wedge of a ring always ends at start angle + 360.
type Wedge struct {
	Index  int
	Theta1 float64
	Theta2 float64
	Radius float64
	Color  color.RGBA
	Value  float64
}

// Span returns the angular sweep of w in degrees.
func (w Wedge) Span() float64 { return w.Theta2 - w.Theta1 }

// Bisector returns the bisecting angle of w normalized to [0, 360).
func (w Wedge) Bisector() float64 {
	return normalize((w.Theta1 + w.Theta2) / 2)
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// RenderLayer slices one ring. Each value's sweep is proportional to its share
// of the ring total and wedges keep input order. A ring whose values sum to
// zero has no wedges.
func RenderLayer(values []float64, colors []color.RGBA, radius, startAngle float64) ([]Wedge, error) {
	return renderLayer("", values, colors, radius, startAngle)
}

func renderLayer(layer string, values []float64, colors []color.RGBA, radius, startAngle float64) ([]Wedge, error) {
	if len(values) != len(colors) {
		return nil, &LayerArityError{Layer: layer, Values: len(values), Colors: len(colors)}
	}
	if err := checkRadius(layer, radius); err != nil {
		return nil, err
	}
	total, err := checkValues(layer, values)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	wedges := make([]Wedge, len(values))
	var cum float64
	theta1 := startAngle
	for i, v := range values {
		cum += v
		// Computed from the running sum so the last edge lands on start+360.
		theta2 := startAngle + 360*cum/total
		wedges[i] = Wedge{
			Index:  i,
			Theta1: theta1,
			Theta2: theta2,
			Radius: radius,
			Color:  colors[i],
			Value:  v,
		}
		theta1 = theta2
	}
	return wedges, nil
}

func checkValues(layer string, values []float64) (total float64, err error) {
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &InvalidValueError{Layer: layer, Index: i, Value: v}
		}
		total += v
	}
	return total, nil
}

func checkRadius(layer string, r float64) error {
	if !(r > 0 && r <= 1) {
		return &RadiusError{Layer: layer, Radius: r, Reason: "must be in (0, 1]"}
	}
	return nil
}

// LabelPosition returns the point on the bisector of w at distance
// labelRadius from the center, in unit chart coordinates (center at the
// origin, outer boundary at radius 1). The result does not depend on the
// wedge's size.
func LabelPosition(w Wedge, labelRadius float64) (x, y float64) {
	angle := (w.Theta1 + w.Theta2) / 2 * math.Pi / 180
	return math.Cos(angle) * labelRadius, math.Sin(angle) * labelRadius
}

package donut

import (
	"fmt"
	"image/color"
	"strconv"
)

// DefaultStartAngle places the first slice of every ring at twelve o'clock.
const DefaultStartAngle = 90

// Layer is one ring. Categories and Values are parallel: slice i shows
// Values[i] in the color of Categories[i]. LabelRadius is where the count
// labels of this ring sit, as a fraction of the outer chart radius.
type Layer struct {
	Name        string
	Categories  []string
	Values      []float64
	Radius      float64
	LabelRadius float64
}

// Chart is the full input of RenderChart. Layers are ordered outermost first
// and all share StartAngle.
type Chart struct {
	Categories []Category
	Layers     []Layer
	StartAngle float64
}

// Label is a count annotation centered at (X, Y).
type Label struct {
	Index int
	Text  string
	X, Y  float64
}

// Ring is a rendered layer.
type Ring struct {
	Name   string
	Radius float64
	Wedges []Wedge
	Labels []Label
}

// LegendEntry is one row of the legend.
type LegendEntry struct {
	Name  string
	Color color.RGBA
	Total int
}

// Text is the legend row as shown, e.g. "Normal Heart (18)".
func (e LegendEntry) Text() string {
	return fmt.Sprintf("%s (%d)", e.Name, e.Total)
}

// Figure is the complete geometry of a donut chart. Rings are ordered
// outermost first; each ring's band reaches in to the next ring's radius, and
// the innermost one to the hole.
type Figure struct {
	Title      string
	Rings      []Ring
	HoleRadius float64
	Legend     []LegendEntry
}

// RenderChart validates chart and computes its geometry. Every check runs
// before any ring is laid out, so an invalid chart yields no partial Figure.
func RenderChart(chart Chart, holeRadius float64, title string) (*Figure, error) {
	cm, err := BuildColorMap(chart.Categories)
	if err != nil {
		return nil, err
	}

	colors := make([][]color.RGBA, len(chart.Layers))
	for i, l := range chart.Layers {
		if err := checkRadius(l.Name, l.Radius); err != nil {
			return nil, err
		}
		if i > 0 && l.Radius >= chart.Layers[i-1].Radius {
			return nil, &RadiusError{Layer: l.Name, Radius: l.Radius,
				Reason: fmt.Sprintf("must be smaller than outer layer %q radius %v", chart.Layers[i-1].Name, chart.Layers[i-1].Radius)}
		}
		if !(l.LabelRadius > 0 && l.LabelRadius <= 1) {
			return nil, &RadiusError{Layer: l.Name, Radius: l.LabelRadius, Reason: "label radius must be in (0, 1]"}
		}
		if len(l.Values) != len(l.Categories) {
			return nil, &LayerArityError{Layer: l.Name, Values: len(l.Values), Colors: len(l.Categories)}
		}
		if colors[i], err = cm.Colors(l.Name, l.Categories); err != nil {
			return nil, err
		}
		if _, err := checkValues(l.Name, l.Values); err != nil {
			return nil, err
		}
	}
	if !(holeRadius >= 0) {
		return nil, &RadiusError{Layer: "hole", Radius: holeRadius, Reason: "must be a non-negative number"}
	}
	if n := len(chart.Layers); n > 0 && holeRadius >= chart.Layers[n-1].Radius {
		return nil, &RadiusError{Layer: "hole", Radius: holeRadius,
			Reason: fmt.Sprintf("must be smaller than innermost layer radius %v", chart.Layers[n-1].Radius)}
	}

	fig := &Figure{
		Title:      title,
		HoleRadius: holeRadius,
		Rings:      make([]Ring, 0, len(chart.Layers)),
	}
	used := make(map[string]bool)
	for i, l := range chart.Layers {
		wedges, err := renderLayer(l.Name, l.Values, colors[i], l.Radius, chart.StartAngle)
		if err != nil {
			return nil, err
		}
		ring := Ring{Name: l.Name, Radius: l.Radius, Wedges: wedges}
		for _, w := range wedges {
			if w.Span() == 0 {
				continue
			}
			x, y := LabelPosition(w, l.LabelRadius)
			ring.Labels = append(ring.Labels, Label{
				Index: w.Index,
				Text:  strconv.FormatFloat(w.Value, 'f', -1, 64),
				X:     x,
				Y:     y,
			})
		}
		fig.Rings = append(fig.Rings, ring)
		for _, name := range l.Categories {
			used[name] = true
		}
	}

	for _, name := range cm.Names() {
		if !used[name] {
			continue
		}
		c, _ := cm.Category(name)
		fig.Legend = append(fig.Legend, LegendEntry{Name: c.Name, Color: c.Color, Total: c.Total})
	}
	return fig, nil
}

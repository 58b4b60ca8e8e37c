package donut

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Category is one named class of the dataset, e.g. "Normal Heart".
//
// Total is the count shown in the legend. It is supplied by the caller and is
// not derived from any ring's values.
type Category struct {
	Name  string
	Color color.RGBA
	Total int
}

// Hex parses a "#rrggbb" color into an opaque RGBA.
func Hex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("donut: bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is like Hex but panics on malformed input. It is meant for
// package-level literals.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexString formats c as "#rrggbb".
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorMap is the authoritative category registry. It preserves registration
// order, which is also the legend order.
type ColorMap struct {
	order []string
	byKey map[string]Category
}

// BuildColorMap registers every category once. Registering a name again with
// the same color is a no-op; with a different color it fails with
// *DuplicateCategoryError. A repeated registration never changes the total
// recorded first.
func BuildColorMap(categories []Category) (*ColorMap, error) {
	m := &ColorMap{byKey: make(map[string]Category, len(categories))}
	for _, c := range categories {
		if prev, ok := m.byKey[c.Name]; ok {
			if prev.Color != c.Color {
				return nil, &DuplicateCategoryError{Name: c.Name, Existing: prev.Color, Conflicting: c.Color}
			}
			continue
		}
		if c.Total < 0 {
			return nil, &InvalidValueError{Layer: "legend", Index: len(m.order), Value: float64(c.Total)}
		}
		m.byKey[c.Name] = c
		m.order = append(m.order, c.Name)
	}
	return m, nil
}

// Color returns the registered color of name.
func (m *ColorMap) Color(name string) (color.RGBA, error) {
	c, ok := m.byKey[name]
	if !ok {
		return color.RGBA{}, &UnknownCategoryError{Name: name}
	}
	return c.Color, nil
}

// Category returns the registered category of name.
func (m *ColorMap) Category(name string) (Category, bool) {
	c, ok := m.byKey[name]
	return c, ok
}

// Colors resolves names in order. The error names layer when one is missing.
func (m *ColorMap) Colors(layer string, names []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(names))
	for i, n := range names {
		c, ok := m.byKey[n]
		if !ok {
			return nil, &UnknownCategoryError{Layer: layer, Name: n}
		}
		out[i] = c.Color
	}
	return out, nil
}

// Len returns the number of registered categories.
func (m *ColorMap) Len() int { return len(m.order) }

// Names returns the category names in registration order.
func (m *ColorMap) Names() []string {
	return append([]string(nil), m.order...)
}

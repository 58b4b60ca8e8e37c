package donut

import (
	"fmt"
	"image/color"
)

// DuplicateCategoryError reports a category name registered with two
// different colors.
type DuplicateCategoryError struct {
	Name        string
	Existing    color.RGBA
	Conflicting color.RGBA
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("donut: category %q registered as %s and %s",
		e.Name, HexString(e.Existing), HexString(e.Conflicting))
}

// UnknownCategoryError reports a layer referencing a category that has no
// registered color.
type UnknownCategoryError struct {
	Layer string
	Name  string
}

func (e *UnknownCategoryError) Error() string {
	if e.Layer == "" {
		return fmt.Sprintf("donut: unknown category %q", e.Name)
	}
	return fmt.Sprintf("donut: layer %q references unknown category %q", e.Layer, e.Name)
}

// LayerArityError reports a layer whose values and colors (or category
// references) differ in length.
type LayerArityError struct {
	Layer  string
	Values int
	Colors int
}

func (e *LayerArityError) Error() string {
	return fmt.Sprintf("donut: layer %q has %d values but %d colors", e.Layer, e.Values, e.Colors)
}

// InvalidValueError reports a negative or non-finite slice value.
type InvalidValueError struct {
	Layer string
	Index int
	Value float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("donut: layer %q value %d is %v, counts must be finite and non-negative",
		e.Layer, e.Index, e.Value)
}

// RadiusError reports a ring or hole radius outside (0, 1] or out of nesting
// order.
type RadiusError struct {
	Layer  string
	Radius float64
	Reason string
}

func (e *RadiusError) Error() string {
	return fmt.Sprintf("donut: layer %q radius %v: %s", e.Layer, e.Radius, e.Reason)
}

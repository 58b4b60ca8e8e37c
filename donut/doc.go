// Package donut lays out layered category donut charts.
//
// A chart is a stack of concentric rings sharing one center and one start
// angle. Every ring slices its own values proportionally, so slices of
// different rings are not radially aligned. Categories are registered once in
// a ColorMap and referenced by name from every ring, which keeps a category's
// color identical wherever it appears. It supports:
//   - Validating category registries, ring radii and slice values up front
//   - Computing wedge spans and count label positions in unit coordinates
//   - Building a legend from the category registry with externally supplied totals
//
// The package only computes geometry. Drawing a Figure on a raster surface is
// done by package plot.
package donut

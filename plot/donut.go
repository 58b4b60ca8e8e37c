package plot

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hlscmds/hlsviz/donut"
)

// DonutStyle holds rendering parameters for donut charts.
type DonutStyle struct {
	Width       int // canvas width in pixels
	Height      int // canvas height in pixels
	LegendWidth int // space reserved right of the chart
	LegendTitle string
	Background  color.Color
	HoleColor   color.Color
	TextColor   color.Color
	LabelSize   float64 // count label font size in pixels
	TitleSize   float64
	LegendSize  float64
}

// DefaultDonutStyle returns the style used for the dataset overview chart.
func DefaultDonutStyle() DonutStyle {
	return DonutStyle{
		Width:       1400,
		Height:      1000,
		LegendWidth: 400,
		LegendTitle: "Sound Types",
		Background:  color.White,
		HoleColor:   color.White,
		TextColor:   color.Black,
		LabelSize:   14,
		TitleSize:   24,
		LegendSize:  15,
	}
}

// DrawDonut paints fig. Each wedge is an annular sector reaching in to the next
// ring's radius, or to the hole for the innermost ring, so a ring without
// wedges stays background. The hole is painted last.
func DrawDonut(fig *donut.Figure, style DonutStyle) (image.Image, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	if style.Width <= style.LegendWidth || style.Height <= 0 {
		return nil, &RenderBackendError{Op: "draw donut", Err: errBadCanvas}
	}

	dc := gg.NewContext(style.Width, style.Height)
	dc.SetColor(style.Background)
	dc.Clear()

	chartW := float64(style.Width - style.LegendWidth)
	h := float64(style.Height)
	titleBand := style.TitleSize * 3
	cx, cy := chartW/2, titleBand+(h-titleBand)/2
	scale := 0.46 * math.Min(chartW, h-titleBand)
	toPx := func(x, y float64) (float64, float64) { return cx + x*scale, cy - y*scale }

	for i, ring := range fig.Rings {
		inner := fig.HoleRadius
		if i+1 < len(fig.Rings) {
			inner = fig.Rings[i+1].Radius
		}
		for _, w := range ring.Wedges {
			if w.Span() == 0 {
				continue
			}
			// Chart angles run counterclockwise with y up; image y runs down.
			a1, a2 := gg.Radians(-w.Theta2), gg.Radians(-w.Theta1)
			dc.NewSubPath()
			dc.DrawArc(cx, cy, w.Radius*scale, a1, a2)
			dc.DrawArc(cx, cy, inner*scale, a2, a1)
			dc.ClosePath()
			dc.SetColor(w.Color)
			dc.Fill()
		}
	}

	dc.SetFontFace(face(style.LabelSize, false))
	dc.SetColor(style.TextColor)
	for _, ring := range fig.Rings {
		for _, l := range ring.Labels {
			x, y := toPx(l.X, l.Y)
			dc.DrawStringAnchored(l.Text, x, y, 0.5, 0.5)
		}
	}

	if fig.HoleRadius > 0 {
		dc.DrawCircle(cx, cy, fig.HoleRadius*scale)
		dc.SetColor(style.HoleColor)
		dc.Fill()
	}

	if fig.Title != "" {
		dc.SetFontFace(face(style.TitleSize, true))
		dc.SetColor(style.TextColor)
		dc.DrawStringAnchored(fig.Title, float64(style.Width)/2, titleBand/2, 0.5, 0.5)
	}

	drawLegend(dc, fig.Legend, style, chartW, cy)
	return dc.Image(), nil
}

// drawLegend places the legend box left aligned at x0, vertically centered on
// cy.
func drawLegend(dc *gg.Context, entries []donut.LegendEntry, style DonutStyle, x0, cy float64) {
	if len(entries) == 0 {
		return
	}
	const pad = 12
	line := style.LegendSize * 1.6
	swatch := style.LegendSize

	dc.SetFontFace(face(style.LegendSize, false))
	textW, _ := dc.MeasureString(style.LegendTitle)
	for _, e := range entries {
		if w, _ := dc.MeasureString(e.Text()); w+swatch+pad > textW {
			textW = w + swatch + pad
		}
	}
	boxW := textW + 2*pad
	boxH := float64(len(entries)+1)*line + 2*pad
	top := cy - boxH/2

	dc.DrawRectangle(x0, top, boxW, boxH)
	dc.SetColor(style.Background)
	dc.FillPreserve()
	dc.SetColor(color.Gray{Y: 0xcc})
	dc.SetLineWidth(1)
	dc.Stroke()

	dc.SetColor(style.TextColor)
	dc.DrawStringAnchored(style.LegendTitle, x0+boxW/2, top+pad+line/2, 0.5, 0.5)
	for i, e := range entries {
		y := top + pad + float64(i+1)*line + line/2
		dc.DrawRectangle(x0+pad, y-swatch/2, swatch, swatch)
		dc.SetColor(e.Color)
		dc.Fill()
		dc.SetColor(style.TextColor)
		dc.DrawStringAnchored(e.Text(), x0+pad+swatch+pad, y, 0, 0.5)
	}
}

// SaveDonut draws fig and saves it to path.
func SaveDonut(fig *donut.Figure, style DonutStyle, path string) error {
	img, err := DrawDonut(fig, style)
	if err != nil {
		return err
	}
	return Save(img, path)
}

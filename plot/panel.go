package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// Margins around each panel's plot area, in pixels.
const (
	marginLeft   = 90
	marginRight  = 30
	marginTop    = 40
	marginBottom = 60
	tickLen      = 5
)

// Layout controls a stack of panels.
type Layout struct {
	Width       int // canvas width in pixels
	PanelHeight int // height of each panel, margins included
	// YLim, when set, fixes the y range of every panel.
	YLim     *[2]float64
	Colorbar *Colorbar
}

// DefaultLayout matches a 12 inch wide figure with 4 inches per panel at
// 100 dpi.
func DefaultLayout() Layout {
	return Layout{Width: 1200, PanelHeight: 400}
}

// Colorbar is a horizontal scale drawn below the last panel.
type Colorbar struct {
	Min, Max float64
	Map      Colormap
	Format   string // fmt verb for tick labels, e.g. "%+2.0f dB"
	Height   int
}

// Panel is one row of a composite figure.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Draw   func(ax *Axes) error
}

// Skipped records a panel replaced by a placeholder.
type Skipped struct {
	Index int
	Title string
	Err   error
}

// Composite is the result of Compose.
type Composite struct {
	Image   image.Image
	Skipped []Skipped
}

// Compose lays out panels top to bottom on one canvas. A Draw callback that
// returns an error wrapping ErrSkipPanel gets a placeholder and is listed in
// Skipped; any other callback error aborts.
func Compose(panels []Panel, layout Layout, log *zap.Logger) (*Composite, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(panels) == 0 {
		return nil, &RenderBackendError{Op: "compose", Err: errors.New("no panels")}
	}
	if err := loadFonts(); err != nil {
		return nil, err
	}
	if layout.Width <= marginLeft+marginRight || layout.PanelHeight <= marginTop+marginBottom {
		return nil, &RenderBackendError{Op: "compose", Err: errBadCanvas}
	}

	height := len(panels) * layout.PanelHeight
	cbHeight := 0
	if cb := layout.Colorbar; cb != nil {
		cbHeight = cb.Height
		if cbHeight <= 0 {
			cbHeight = 80
		}
		height += cbHeight
	}

	dc := gg.NewContext(layout.Width, height)
	dc.SetColor(color.White)
	dc.Clear()

	out := &Composite{}
	for i, p := range panels {
		top := float64(i * layout.PanelHeight)
		ax := &Axes{
			dc:   dc,
			x:    marginLeft,
			y:    top + marginTop,
			w:    float64(layout.Width - marginLeft - marginRight),
			h:    float64(layout.PanelHeight - marginTop - marginBottom),
			xmin: 0, xmax: 1,
			ymin: 0, ymax: 1,
		}
		if layout.YLim != nil {
			ax.ymin, ax.ymax = layout.YLim[0], layout.YLim[1]
			ax.yLocked = true
		}

		var err error
		if p.Draw != nil {
			err = p.Draw(ax)
		}
		switch {
		case err == nil:
			ax.decorate(p)
		case errors.Is(err, ErrSkipPanel):
			log.Warn("panel skipped", zap.Int("panel", i), zap.String("title", p.Title), zap.Error(err))
			out.Skipped = append(out.Skipped, Skipped{Index: i, Title: p.Title, Err: err})
			ax.placeholder(p, err)
		default:
			return nil, fmt.Errorf("plot: panel %d %q: %w", i, p.Title, err)
		}
	}

	if cb := layout.Colorbar; cb != nil {
		drawColorbar(dc, cb, float64(len(panels)*layout.PanelHeight), float64(cbHeight), float64(layout.Width))
	}

	out.Image = dc.Image()
	log.Debug("composed figure", zap.Int("panels", len(panels)), zap.Int("skipped", len(out.Skipped)))
	return out, nil
}

// Axes is the plot area of one panel. Data coordinates map linearly onto it.
type Axes struct {
	dc                     *gg.Context
	x, y, w, h             float64
	xmin, xmax, ymin, ymax float64
	yLocked                bool

	yticks      []float64
	yticklabels []string
}

// SetXLim sets the x range.
func (a *Axes) SetXLim(lo, hi float64) { a.xmin, a.xmax = lo, hi }

// SetYLim sets the y range unless the layout fixed it.
func (a *Axes) SetYLim(lo, hi float64) {
	if a.yLocked {
		return
	}
	a.ymin, a.ymax = lo, hi
}

// XLim returns the x range.
func (a *Axes) XLim() (lo, hi float64) { return a.xmin, a.xmax }

// YLim returns the y range.
func (a *Axes) YLim() (lo, hi float64) { return a.ymin, a.ymax }

// SetYTicks replaces the automatic y ticks.
func (a *Axes) SetYTicks(pos []float64, labels []string) {
	a.yticks, a.yticklabels = pos, labels
}

// Size is the plot area in pixels.
func (a *Axes) Size() (w, h int) { return int(a.w), int(a.h) }

func (a *Axes) px(x, y float64) (float64, float64) {
	return a.x + (x-a.xmin)/(a.xmax-a.xmin)*a.w,
		a.y + a.h - (y-a.ymin)/(a.ymax-a.ymin)*a.h
}

func (a *Axes) clip() {
	a.dc.DrawRectangle(a.x, a.y, a.w, a.h)
	a.dc.Clip()
}

// Line draws a polyline through (xs[i], ys[i]).
func (a *Axes) Line(xs, ys []float64, c color.Color, width float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return
	}
	a.clip()
	defer a.dc.ResetClip()
	for i := 0; i < n; i++ {
		x, y := a.px(xs[i], ys[i])
		if i == 0 {
			a.dc.MoveTo(x, y)
		} else {
			a.dc.LineTo(x, y)
		}
	}
	a.dc.SetColor(c)
	a.dc.SetLineWidth(width)
	a.dc.Stroke()
}

// Envelope draws a uniformly sampled series starting at t0 with step dt as
// one vertical min..max stroke per pixel column.
func (a *Axes) Envelope(t0, dt float64, ys []float64, c color.Color) {
	if len(ys) == 0 || dt <= 0 {
		return
	}
	a.clip()
	defer a.dc.ResetClip()
	a.dc.SetColor(c)
	a.dc.SetLineWidth(1)

	perPx := (a.xmax - a.xmin) / a.w
	for col := 0; col < int(a.w); col++ {
		from := a.xmin + float64(col)*perPx
		i0 := int(math.Floor((from - t0) / dt))
		i1 := int(math.Ceil((from + perPx - t0) / dt))
		if i1 <= 0 || i0 >= len(ys) {
			continue
		}
		if i0 < 0 {
			i0 = 0
		}
		if i1 > len(ys) {
			i1 = len(ys)
		}
		lo, hi := ys[i0], ys[i0]
		for _, v := range ys[i0:i1] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		x := a.x + float64(col) + 0.5
		_, ylo := a.px(0, lo)
		_, yhi := a.px(0, hi)
		if ylo-yhi < 1 {
			yhi = ylo - 1
		}
		a.dc.DrawLine(x, ylo, x, yhi)
		a.dc.Stroke()
	}
}

// Heatmap fills the whole plot area with data[row][col], row 0 at the bottom
// and columns spanning the x range. Values are scaled from [lo, hi].
func (a *Axes) Heatmap(data [][]float64, lo, hi float64, cmap Colormap) {
	rows := len(data)
	if rows == 0 || len(data[0]) == 0 {
		return
	}
	cols := len(data[0])
	w, h := a.Size()
	if w <= 0 || h <= 0 {
		return
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for py := 0; py < h; py++ {
		row := rows - 1 - (py*rows)/h
		for px := 0; px < w; px++ {
			col := (px * cols) / w
			img.Set(px, py, cmap((data[row][col]-lo)/span))
		}
	}
	a.dc.DrawImage(img, int(a.x), int(a.y))
}

func (a *Axes) decorate(p Panel) {
	dc := a.dc
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(a.x, a.y, a.w, a.h)
	dc.Stroke()

	dc.SetFontFace(face(12, false))
	for _, t := range Ticks(a.xmin, a.xmax, 8) {
		x, _ := a.px(t, a.ymin)
		dc.DrawLine(x, a.y+a.h, x, a.y+a.h+tickLen)
		dc.Stroke()
		dc.DrawStringAnchored(FormatTick(t), x, a.y+a.h+tickLen+2, 0.5, 1)
	}

	yticks, ylabels := a.yticks, a.yticklabels
	if yticks == nil {
		yticks = Ticks(a.ymin, a.ymax, 5)
		ylabels = make([]string, len(yticks))
		for i, t := range yticks {
			ylabels[i] = FormatTick(t)
		}
	}
	for i, t := range yticks {
		_, y := a.px(a.xmin, t)
		dc.DrawLine(a.x-tickLen, y, a.x, y)
		dc.Stroke()
		if i < len(ylabels) {
			dc.DrawStringAnchored(ylabels[i], a.x-tickLen-3, y, 1, 0.5)
		}
	}

	dc.SetFontFace(face(13, false))
	if p.XLabel != "" {
		dc.DrawStringAnchored(p.XLabel, a.x+a.w/2, a.y+a.h+marginBottom-12, 0.5, 0)
	}
	if p.YLabel != "" {
		cx, cy := a.x-marginLeft+16, a.y+a.h/2
		dc.Push()
		dc.RotateAbout(gg.Radians(-90), cx, cy)
		dc.DrawStringAnchored(p.YLabel, cx, cy, 0.5, 0.5)
		dc.Pop()
	}
	a.title(p.Title)
}

func (a *Axes) title(s string) {
	if s == "" {
		return
	}
	a.dc.SetColor(color.Black)
	a.dc.SetFontFace(face(15, false))
	a.dc.DrawStringAnchored(s, a.x+a.w/2, a.y-marginTop/2, 0.5, 0.5)
}

func (a *Axes) placeholder(p Panel, err error) {
	dc := a.dc
	dc.DrawRectangle(a.x, a.y, a.w, a.h)
	dc.SetColor(color.Gray{Y: 0xee})
	dc.FillPreserve()
	dc.SetColor(color.Gray{Y: 0x99})
	dc.SetLineWidth(1)
	dc.Stroke()
	dc.SetFontFace(face(13, false))
	dc.DrawStringAnchored(err.Error(), a.x+a.w/2, a.y+a.h/2, 0.5, 0.5)
	a.title(p.Title)
}

func drawColorbar(dc *gg.Context, cb *Colorbar, top, height, width float64) {
	x, w := float64(marginLeft), width-marginLeft-marginRight
	barH := height / 3
	y := top + barH/2

	cmap := cb.Map
	if cmap == nil {
		cmap = Magma
	}
	for i := 0; i < int(w); i++ {
		dc.SetColor(cmap(float64(i) / (w - 1)))
		dc.DrawRectangle(x+float64(i), y, 1, barH)
		dc.Fill()
	}
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, w, barH)
	dc.Stroke()

	format := cb.Format
	if format == "" {
		format = "%g"
	}
	dc.SetFontFace(face(12, false))
	span := cb.Max - cb.Min
	for _, t := range Ticks(cb.Min, cb.Max, 8) {
		var px float64
		if span != 0 {
			px = x + (t-cb.Min)/span*w
		}
		dc.DrawLine(px, y+barH, px, y+barH+tickLen)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf(format, t), px, y+barH+tickLen+2, 0.5, 1)
	}
}

// Package chart draws a single-series strip chart: axes, gridlines, tick
// labels and a polyline through the samples of a series.Window.
package chart

import (
	"errors"
	"fmt"
	"image"

	"github.com/olivier-w/stripchart/internal/raster"
	"github.com/olivier-w/stripchart/internal/series"
)

var ErrPlotTooSmall = errors.New("chart: canvas too small for margins and label areas")

// Renderer draws frames with a fixed Style. It keeps no state between
// frames, so equal inputs always produce equal pixels.
type Renderer struct {
	style Style
}

func New(style Style) *Renderer {
	if style.LabelFace == nil {
		style.LabelFace = raster.DefaultFace
	}
	return &Renderer{style: style}
}

func (r *Renderer) Style() Style { return r.style }

// PlotArea returns the rectangle left for data once margins and label areas
// are removed from bounds.
func (r *Renderer) PlotArea(bounds image.Rectangle) (image.Rectangle, error) {
	inset := r.style.Margin + r.style.LabelArea
	plot := image.Rect(
		bounds.Min.X+inset, bounds.Min.Y+inset,
		bounds.Max.X-inset, bounds.Max.Y-inset,
	)
	if plot.Dx() < 2 || plot.Dy() < 2 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d", ErrPlotTooSmall, bounds.Dx(), bounds.Dy())
	}
	return plot, nil
}

// Mapping returns the data-to-pixel transform for the current contents of w:
// X spans 0..w.LatestEpoch(), Y spans the style's fixed range.
func (r *Renderer) Mapping(bounds image.Rectangle, w *series.Window) (Mapping, error) {
	plot, err := r.PlotArea(bounds)
	if err != nil {
		return Mapping{}, err
	}
	return Mapping{
		Plot: plot,
		MinX: 0,
		MaxX: w.LatestEpoch(),
		MinY: r.style.YMin,
		MaxY: r.style.YMax,
	}, nil
}

// Render clears c and draws the chart for w.
func (r *Renderer) Render(c *raster.Canvas, w *series.Window) error {
	st := r.style
	c.Fill(st.Background)

	m, err := r.Mapping(c.Bounds(), w)
	if err != nil {
		return err
	}

	r.drawMesh(c, m)
	c.FillRect(m.Plot, st.Background)

	for a, b := range w.Pairs() {
		c.Line(m.Map(a.Epoch, a.Value), m.Map(b.Epoch, b.Value), st.Foreground)
	}
	return nil
}

func (r *Renderer) drawMesh(c *raster.Canvas, m Mapping) {
	st := r.style
	plot := m.Plot

	xs, xStep := Ticks(m.MinX, m.MaxX, st.MaxXTicks)
	ys, yStep := Ticks(m.MinY, m.MaxY, st.MaxYTicks)

	r.drawLightGrid(c, m, xStep, yStep)
	for _, x := range xs {
		c.VLine(m.MapX(x), plot.Min.Y, plot.Max.Y-1, st.BoldGrid)
	}
	for _, y := range ys {
		c.HLine(plot.Min.X, plot.Max.X-1, m.MapY(y), st.BoldGrid)
	}

	// Axes sit just outside the plot so clearing the plot keeps them.
	axisX := plot.Min.X - 1
	axisY := plot.Max.Y
	c.VLine(axisX, plot.Min.Y, axisY, st.Foreground)
	c.HLine(axisX, plot.Max.X-1, axisY, st.Foreground)

	const gap = 2
	for _, x := range xs {
		px := m.MapX(x)
		c.VLine(px, axisY, axisY+st.TickLen, st.Foreground)
		half := st.LabelFace.Metrics().Height.Ceil() / 2
		c.Text(image.Pt(px, axisY+st.TickLen+gap+half), FormatTick(x, xStep), st.LabelFace, raster.AlignCenter, st.Foreground)
	}
	for _, y := range ys {
		py := m.MapY(y)
		c.HLine(axisX-st.TickLen, axisX, py, st.Foreground)
		c.Text(image.Pt(axisX-st.TickLen-gap, py), FormatTick(y, yStep), st.LabelFace, raster.AlignRight, st.Foreground)
	}
}

func (r *Renderer) drawLightGrid(c *raster.Canvas, m Mapping, xStep, yStep float64) {
	st := r.style
	if st.LightDiv < 2 {
		return
	}
	plot := m.Plot
	if xStep > 0 {
		xs, _ := ticksEvery(m.MinX, m.MaxX, xStep/float64(st.LightDiv))
		for _, x := range xs {
			c.VLine(m.MapX(x), plot.Min.Y, plot.Max.Y-1, st.LightGrid)
		}
	}
	if yStep > 0 {
		ys, _ := ticksEvery(m.MinY, m.MaxY, yStep/float64(st.LightDiv))
		for _, y := range ys {
			c.HLine(plot.Min.X, plot.Max.X-1, m.MapY(y), st.LightGrid)
		}
	}
}

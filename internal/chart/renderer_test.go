package chart

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"github.com/olivier-w/stripchart/internal/raster"
	"github.com/olivier-w/stripchart/internal/series"
	"github.com/olivier-w/stripchart/internal/surface"
)

var fg = surface.Pack(0, 0xff, 0)

func newTarget(t *testing.T, w, h int) (*raster.Canvas, *surface.Surface) {
	t.Helper()
	s, err := surface.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	c, err := raster.ForSurface(s)
	if err != nil {
		t.Fatal(err)
	}
	return c, s
}

func countInRect(s *surface.Surface, r image.Rectangle, p uint32) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if s.At(x, y) == p {
				n++
			}
		}
	}
	return n
}

func TestRenderEmptyWindowDrawsAxesOnly(t *testing.T) {
	c, s := newTarget(t, 800, 600)
	r := New(DefaultStyle())
	w := series.New(10)

	if err := r.Render(c, w); err != nil {
		t.Fatalf("render: %v", err)
	}

	plot, err := r.PlotArea(c.Bounds())
	if err != nil {
		t.Fatal(err)
	}
	if plot != image.Rect(40, 40, 760, 560) {
		t.Fatalf("unexpected plot area %v", plot)
	}
	if n := countInRect(s, plot, 0); n != plot.Dx()*plot.Dy() {
		t.Fatalf("expected plot area cleared, %d of %d pixels are background", n, plot.Dx()*plot.Dy())
	}
	if s.At(plot.Min.X-1, plot.Min.Y) != fg {
		t.Fatal("expected Y axis left of plot")
	}
	if s.At(plot.Max.X-1, plot.Max.Y) != fg {
		t.Fatal("expected X axis below plot")
	}
}

func TestRenderSingleSampleDrawsNoSegment(t *testing.T) {
	c, s := newTarget(t, 200, 150)
	r := New(DefaultStyle())
	w := series.New(10)
	w.Push(0, 0.5)

	if err := r.Render(c, w); err != nil {
		t.Fatalf("render: %v", err)
	}
	plot, _ := r.PlotArea(c.Bounds())
	if n := countInRect(s, plot, fg); n != 0 {
		t.Fatalf("expected no line pixels, got %d", n)
	}
}

func TestRenderTwoSamplesMapsLinearly(t *testing.T) {
	c, s := newTarget(t, 800, 600)
	r := New(DefaultStyle())
	w := series.New(10)
	w.Push(0, 0.2)
	w.Push(1, 0.8)

	if err := r.Render(c, w); err != nil {
		t.Fatalf("render: %v", err)
	}

	m, err := r.Mapping(c.Bounds(), w)
	if err != nil {
		t.Fatal(err)
	}
	if m.MinX != 0 || m.MaxX != 1 || m.MinY != 0 || m.MaxY != 1 {
		t.Fatalf("unexpected domain %+v", m)
	}

	// margin 10 + label area 30 on each side of 800x600.
	const left, top, plotW, plotH = 40, 40, 720, 520
	wantX := func(v float64) int { return left + int(math.Round(v*(plotW-1))) }
	wantY := func(v float64) int { return top + int(math.Round((1-v)*(plotH-1))) }

	p0 := m.Map(0, 0.2)
	p1 := m.Map(1, 0.8)
	if p0 != image.Pt(wantX(0), wantY(0.2)) {
		t.Fatalf("first sample mapped to %v", p0)
	}
	if p1 != image.Pt(wantX(1), wantY(0.8)) {
		t.Fatalf("second sample mapped to %v", p1)
	}
	if p0 != image.Pt(40, 455) || p1 != image.Pt(759, 144) {
		t.Fatalf("unexpected endpoints %v %v", p0, p1)
	}

	if s.At(p0.X, p0.Y) != fg || s.At(p1.X, p1.Y) != fg {
		t.Fatal("expected both endpoints drawn")
	}
	// A Bresenham segment lights max(|dx|,|dy|)+1 pixels.
	want := max(p1.X-p0.X, p0.Y-p1.Y) + 1
	if n := countInRect(s, m.Plot, fg); n != want {
		t.Fatalf("expected %d segment pixels, got %d", want, n)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := New(DefaultStyle())
	w := series.New(10)
	for i, v := range []float64{0.1, 0.9, 0.4, 0.6, 0.3} {
		w.Push(float64(i), v)
	}

	c1, s1 := newTarget(t, 320, 240)
	c2, s2 := newTarget(t, 320, 240)
	if err := r.Render(c1, w); err != nil {
		t.Fatal(err)
	}
	// Dirty the second target first; Render must clear it.
	c2.Fill(Green)
	if err := r.Render(c2, w); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(s1.Pixels(), s2.Pixels()) {
		t.Fatal("expected identical frames for identical input")
	}
}

func TestRenderRejectsTinyCanvas(t *testing.T) {
	c, _ := newTarget(t, 60, 60)
	err := New(DefaultStyle()).Render(c, series.New(10))
	if !errors.Is(err, ErrPlotTooSmall) {
		t.Fatalf("expected ErrPlotTooSmall, got %v", err)
	}
}

func TestRenderDrawsLabels(t *testing.T) {
	c, s := newTarget(t, 800, 600)
	r := New(DefaultStyle())
	w := series.New(10)
	w.Push(0, 0.5)
	w.Push(1, 0.5)
	if err := r.Render(c, w); err != nil {
		t.Fatal(err)
	}
	// Left label area, right of the margin.
	labels := image.Rect(10, 40, 33, 560)
	if countInRect(s, labels, 0) == labels.Dx()*labels.Dy() {
		t.Fatal("expected Y tick labels in the label area")
	}
}

package chart

import (
	"image"
	"math"
)

// Mapping converts data coordinates to pixels inside Plot. Pixel Y grows
// downwards, so MaxY lands on the top row.
type Mapping struct {
	Plot       image.Rectangle
	MinX, MaxX float64
	MinY, MaxY float64
}

// Map converts one data point.
func (m Mapping) Map(x, y float64) image.Point {
	return image.Pt(m.MapX(x), m.MapY(y))
}

// MapX returns Plot.Min.X + round((x-MinX)/(MaxX-MinX) * (width-1)).
// A zero-width domain maps everything to the left edge.
func (m Mapping) MapX(x float64) int {
	return m.Plot.Min.X + scale(x, m.MinX, m.MaxX, m.Plot.Dx())
}

// MapY mirrors MapX on the vertical axis.
func (m Mapping) MapY(y float64) int {
	return m.Plot.Max.Y - 1 - scale(y, m.MinY, m.MaxY, m.Plot.Dy())
}

func scale(v, lo, hi float64, extent int) int {
	span := hi - lo
	if span <= 0 || extent <= 1 {
		return 0
	}
	return int(math.Round((v - lo) / span * float64(extent-1)))
}

package raster

import (
	"image"
	"image/color"
)

// Line draws a 1px segment from p0 to p1 inclusive using Bresenham's
// algorithm. Pixels outside the canvas are skipped.
func (c *Canvas) Line(p0, p1 image.Point, col color.Color) {
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		c.Blend(x0, y0, col)

		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// HLine draws a horizontal run from x0 to x1 inclusive.
func (c *Canvas) HLine(x0, x1, y int, col color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	c.FillRect(image.Rect(x0, y, x1+1, y+1), col)
}

// VLine draws a vertical run from y0 to y1 inclusive.
func (c *Canvas) VLine(x, y0, y1 int, col color.Color) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	c.FillRect(image.Rect(x, y0, x+1, y1+1), col)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

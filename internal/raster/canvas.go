// Package raster draws into a raw 4-bytes-per-pixel buffer.
//
// A Canvas never owns its memory: it is built over a byte slice handed in by
// the caller (normally surface.Surface.Bytes) together with the dimensions and
// the channel layout the bytes must be written in.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/olivier-w/stripchart/internal/surface"
)

var ErrBufferSize = errors.New("raster: buffer size does not match dimensions")

// Canvas implements draw.Image over a borrowed byte buffer.
type Canvas struct {
	buf    []byte
	width  int
	height int
	format surface.Format
}

// New wraps buf as a width×height canvas using format for channel order.
func New(buf []byte, width, height int, format surface.Format) (*Canvas, error) {
	if width <= 0 || height <= 0 || len(buf) != width*height*surface.BytesPerPixel {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(buf), width, height)
	}
	return &Canvas{buf: buf, width: width, height: height, format: format}, nil
}

// ForSurface wraps the byte view of s.
func ForSurface(s *surface.Surface) (*Canvas, error) {
	return New(s.Bytes(), s.Width(), s.Height(), s.Format())
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) At(x, y int) color.Color {
	if !c.inside(x, y) {
		return color.RGBA{}
	}
	r, g, b := c.rgb(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Set overwrites the pixel at (x, y). Alpha is discarded; use Blend to
// composite translucent colours.
func (c *Canvas) Set(x, y int, col color.Color) {
	if !c.inside(x, y) {
		return
	}
	r, g, b, _ := col.RGBA()
	c.setRGB(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Blend composites col over the pixel at (x, y) using col's alpha.
func (c *Canvas) Blend(x, y int, col color.Color) {
	if !c.inside(x, y) {
		return
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	switch n.A {
	case 0:
		return
	case 0xff:
		c.setRGB(x, y, n.R, n.G, n.B)
		return
	}
	r, g, b := c.rgb(x, y)
	a := uint32(n.A)
	mix := func(src, dst uint8) uint8 {
		return uint8((uint32(src)*a + uint32(dst)*(0xff-a) + 0x7f) / 0xff)
	}
	c.setRGB(x, y, mix(n.R, r), mix(n.G, g), mix(n.B, b))
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.Color) {
	c.FillRect(c.Bounds(), col)
}

// FillRect composites col over r, clipped to the canvas.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.Bounds())
	if r.Empty() {
		return
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	if n.A != 0xff {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c.Blend(x, y, n)
			}
		}
		return
	}
	// Write the first row, then copy it down.
	rowLen := r.Dx() * surface.BytesPerPixel
	first := c.offset(r.Min.X, r.Min.Y)
	for x := r.Min.X; x < r.Max.X; x++ {
		c.setRGB(x, r.Min.Y, n.R, n.G, n.B)
	}
	row := c.buf[first : first+rowLen]
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		off := c.offset(r.Min.X, y)
		copy(c.buf[off:off+rowLen], row)
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) offset(x, y int) int {
	return (y*c.width + x) * surface.BytesPerPixel
}

func (c *Canvas) rgb(x, y int) (r, g, b uint8) {
	cell := c.buf[c.offset(x, y):]
	return cell[c.format.R], cell[c.format.G], cell[c.format.B]
}

func (c *Canvas) setRGB(x, y int, r, g, b uint8) {
	cell := c.buf[c.offset(x, y):]
	cell[c.format.R] = r
	cell[c.format.G] = g
	cell[c.format.B] = b
	cell[c.format.X] = 0
}

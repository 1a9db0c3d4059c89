package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Align positions text horizontally relative to its anchor.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DefaultFace is the bitmap face used for labels.
var DefaultFace font.Face = basicfont.Face7x13

// TextWidth returns the advance of s in face, in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// Text draws s with its vertical centre on anchor.Y. The horizontal position
// of anchor depends on align.
func (c *Canvas) Text(anchor image.Point, s string, face font.Face, align Align, col color.Color) {
	if s == "" {
		return
	}
	if face == nil {
		face = DefaultFace
	}
	m := face.Metrics()
	x := anchor.X
	switch align {
	case AlignCenter:
		x -= TextWidth(face, s) / 2
	case AlignRight:
		x -= TextWidth(face, s)
	}
	baseline := anchor.Y + (m.Ascent.Ceil()-m.Descent.Ceil())/2

	d := font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

package chart

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/olivier-w/stripchart/internal/raster"
)

var (
	Black       = color.RGBA{A: 0xff}
	Green       = color.RGBA{G: 0xff, A: 0xff}
	Transparent = color.NRGBA{}
)

// Style controls the chart layout and colours.
type Style struct {
	Margin    int // blank border on every side
	LabelArea int // room for tick marks and labels on every side

	Background color.Color
	Foreground color.Color
	BoldGrid   color.Color // gridlines at labelled ticks
	LightGrid  color.Color // gridlines between labelled ticks

	LabelFace font.Face
	TickLen   int

	MaxXTicks int
	MaxYTicks int
	LightDiv  int // light gridlines per major interval

	YMin, YMax float64
}

// DefaultStyle is a green-on-black chart with a 0..1 Y axis.
func DefaultStyle() Style {
	return Style{
		Margin:     10,
		LabelArea:  30,
		Background: Black,
		Foreground: Green,
		BoldGrid:   Mix(Green, 0.2),
		LightGrid:  Transparent,
		LabelFace:  raster.DefaultFace,
		TickLen:    5,
		MaxXTicks:  10,
		MaxYTicks:  10,
		LightDiv:   5,
		YMin:       0,
		YMax:       1,
	}
}

// Mix returns c with its opacity scaled by alpha.
func Mix(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*clamp01(alpha) + 0.5)
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

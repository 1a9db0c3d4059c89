package termwin

import (
	"strings"

	"github.com/olivier-w/stripchart/internal/surface"
)

// Renderer converts a packed-pixel frame into a terminal string.
//   - Color (half-block): "▀" with fg = upper pixel row, bg = lower pixel row.
//   - ASCII (no color): one brightness character per cell.
//
// Frames are downscaled by taking the brightest pixel of each source block,
// so one-pixel chart lines survive the reduction.
type Renderer struct {
	mode colorMode
	sb   strings.Builder
}

func NewRenderer() *Renderer {
	return &Renderer{mode: detectColorMode()}
}

// Color reports whether half-block rendering is active.
func (r *Renderer) Color() bool { return r.mode != colorOff }

// Render converts pixels (frameW×frameH, row-major) into outW×outH cells.
func (r *Renderer) Render(pixels []uint32, frameW, frameH, outW, outH int) string {
	if len(pixels) < frameW*frameH || frameW <= 0 || frameH <= 0 || outW <= 0 || outH <= 0 {
		return ""
	}

	r.sb.Reset()
	r.sb.Grow(outW * outH * 24)

	if r.mode == colorOff {
		r.renderASCII(pixels, frameW, frameH, outW, outH)
	} else {
		r.renderHalfBlock(pixels, frameW, frameH, outW, outH)
	}
	return r.sb.String()
}

func (r *Renderer) renderHalfBlock(pixels []uint32, frameW, frameH, outW, outH int) {
	pixelRows := outH * 2
	var lastFg, lastBg string

	for row := 0; row < outH; row++ {
		for col := 0; col < outW; col++ {
			x0, x1 := span(col, outW, frameW)
			ty0, ty1 := span(row*2, pixelRows, frameH)
			by0, by1 := span(row*2+1, pixelRows, frameH)

			tr, tg, tb := brightest(pixels, frameW, x0, x1, ty0, ty1)
			br, bg, bb := brightest(pixels, frameW, x0, x1, by0, by1)

			fg := fgColorSeq(r.mode, tr, tg, tb)
			bgc := bgColorSeq(r.mode, br, bg, bb)
			if fg != lastFg {
				r.sb.WriteString(fg)
				lastFg = fg
			}
			if bgc != lastBg {
				r.sb.WriteString(bgc)
				lastBg = bgc
			}
			r.sb.WriteString("▀")
		}

		r.sb.WriteString(ansiReset)
		lastFg, lastBg = "", ""
		if row < outH-1 {
			r.sb.WriteByte('\n')
		}
	}
}

func (r *Renderer) renderASCII(pixels []uint32, frameW, frameH, outW, outH int) {
	for row := 0; row < outH; row++ {
		for col := 0; col < outW; col++ {
			x0, x1 := span(col, outW, frameW)
			y0, y1 := span(row, outH, frameH)
			pr, pg, pb := brightest(pixels, frameW, x0, x1, y0, y1)
			r.sb.WriteByte(brightnessChar(luminance(pr, pg, pb)))
		}
		if row < outH-1 {
			r.sb.WriteByte('\n')
		}
	}
}

// span returns the source range [lo, hi) covered by output index i of n.
// The range is never empty.
func span(i, n, src int) (lo, hi int) {
	lo = i * src / n
	hi = (i + 1) * src / n
	if hi <= lo {
		hi = lo + 1
	}
	if hi > src {
		hi = src
	}
	if lo >= hi {
		lo = hi - 1
	}
	return lo, hi
}

func brightest(pixels []uint32, stride, x0, x1, y0, y1 int) (uint8, uint8, uint8) {
	var best uint32
	bestLum := -1
	for y := y0; y < y1; y++ {
		row := pixels[y*stride:]
		for x := x0; x < x1; x++ {
			p := row[x]
			r, g, b := surface.Unpack(p)
			if l := int(luminance(r, g, b)); l > bestLum {
				bestLum = l
				best = p
			}
		}
	}
	return surface.Unpack(best)
}

// FitCells returns the largest cell grid within termW×termH that keeps the
// frame's aspect ratio. Terminal cells are about twice as tall as wide, in
// both half-block and ASCII mode.
func FitCells(termW, termH, frameW, frameH int) (outW, outH int) {
	if termW <= 0 || termH <= 0 || frameW <= 0 || frameH <= 0 {
		return 0, 0
	}
	outW, outH = termW, termW*frameH/(2*frameW)
	if outH > termH {
		outH = termH
		outW = termH * 2 * frameW / frameH
	}
	return max(outW, 1), max(outH, 1)
}

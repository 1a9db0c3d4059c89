package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/olivier-w/stripchart/internal/surface"
)

var (
	black = color.RGBA{A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
)

func newCanvas(t *testing.T, w, h int) (*Canvas, *surface.Surface) {
	t.Helper()
	s, err := surface.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	c, err := ForSurface(s)
	if err != nil {
		t.Fatal(err)
	}
	return c, s
}

func TestNewRejectsMismatchedBuffer(t *testing.T) {
	_, err := New(make([]byte, 10), 2, 2, surface.BGRX)
	if !errors.Is(err, ErrBufferSize) {
		t.Fatalf("expected ErrBufferSize, got %v", err)
	}
}

func TestSetWritesThroughToPixelView(t *testing.T) {
	c, s := newCanvas(t, 4, 4)
	c.Set(1, 2, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
	if got := s.At(1, 2); got != 0x00123456 {
		t.Fatalf("expected 0x00123456, got %#08x", got)
	}
}

func TestExplicitLayoutWritesBGRX(t *testing.T) {
	buf := make([]byte, 4)
	c, err := New(buf, 1, 1, surface.BGRX)
	if err != nil {
		t.Fatal(err)
	}
	c.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 0xff})
	if buf[0] != 3 || buf[1] != 2 || buf[2] != 1 || buf[3] != 0 {
		t.Fatalf("expected BGRX bytes 03 02 01 00, got % x", buf)
	}
}

func TestFillCoversEveryPixel(t *testing.T) {
	c, s := newCanvas(t, 7, 5)
	c.Fill(green)
	for i, p := range s.Pixels() {
		if p != surface.Pack(0, 0xff, 0) {
			t.Fatalf("pixel %d not filled: %#08x", i, p)
		}
	}
}

func TestFillRectClipsToBounds(t *testing.T) {
	c, s := newCanvas(t, 4, 4)
	c.FillRect(image.Rect(2, 2, 10, 10), green)
	if s.At(1, 1) != 0 {
		t.Fatal("expected pixel outside rect untouched")
	}
	if s.At(3, 3) != surface.Pack(0, 0xff, 0) {
		t.Fatal("expected clipped corner filled")
	}
}

func TestBlendMixesOverBackground(t *testing.T) {
	c, s := newCanvas(t, 1, 1)
	c.Fill(black)
	c.Blend(0, 0, color.NRGBA{G: 0xff, A: 51})
	_, g, _ := surface.Unpack(s.At(0, 0))
	if g != 51 {
		t.Fatalf("expected green 51 after 20%% blend, got %d", g)
	}
}

func TestTransparentBlendIsNoop(t *testing.T) {
	c, s := newCanvas(t, 2, 2)
	c.Fill(black)
	c.FillRect(c.Bounds(), color.NRGBA{R: 0xff, A: 0})
	for _, p := range s.Pixels() {
		if p != 0 {
			t.Fatalf("expected transparent fill to leave black, got %#08x", p)
		}
	}
}

func TestLineEndpointsInclusive(t *testing.T) {
	c, s := newCanvas(t, 10, 10)
	c.Fill(black)
	c.Line(image.Pt(1, 8), image.Pt(8, 2), green)

	want := surface.Pack(0, 0xff, 0)
	if s.At(1, 8) != want || s.At(8, 2) != want {
		t.Fatal("expected both endpoints set")
	}

	count := 0
	for _, p := range s.Pixels() {
		if p == want {
			count++
		}
	}
	// Bresenham on a 7x6 run touches max(dx,dy)+1 pixels.
	if count != 8 {
		t.Fatalf("expected 8 line pixels, got %d", count)
	}
}

func TestLineClipsOffCanvas(t *testing.T) {
	c, s := newCanvas(t, 4, 4)
	c.Line(image.Pt(-5, 1), image.Pt(10, 1), green)
	for x := range 4 {
		if s.At(x, 1) != surface.Pack(0, 0xff, 0) {
			t.Fatalf("expected (%d,1) set", x)
		}
	}
}

func TestHLineAndVLine(t *testing.T) {
	c, s := newCanvas(t, 5, 5)
	c.HLine(3, 1, 0, green)
	c.VLine(4, 4, 2, green)
	want := surface.Pack(0, 0xff, 0)
	for _, pt := range []image.Point{{1, 0}, {2, 0}, {3, 0}, {4, 2}, {4, 3}, {4, 4}} {
		if s.At(pt.X, pt.Y) != want {
			t.Fatalf("expected %v set", pt)
		}
	}
	if s.At(0, 0) != 0 || s.At(4, 1) != 0 {
		t.Fatal("expected runs to stop at their ends")
	}
}

func TestTextDrawsInsideCanvas(t *testing.T) {
	c, s := newCanvas(t, 40, 20)
	c.Fill(black)
	c.Text(image.Pt(20, 10), "10", nil, AlignCenter, green)

	lit := 0
	for _, p := range s.Pixels() {
		if p != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("expected glyph pixels")
	}
}

func TestTextWidthMatchesFixedAdvance(t *testing.T) {
	if got := TextWidth(DefaultFace, "0.25"); got != 28 {
		t.Fatalf("expected 4*7 px, got %d", got)
	}
}

// Package surface owns the frame buffer shared by the rasterizer and the
// window.
//
// A Surface is a single block of packed 0x00RRGGBB cells. The same memory is
// exposed as []uint32 for windows that take packed pixels and as []byte for
// rasterizers that write individual channels. The byte offsets of each
// channel inside a cell depend on the host byte order and are reported by
// Format; writers of the byte view must honour it or colours come out
// channel-swapped.
package surface

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"
)

// BytesPerPixel is the cell size in both views.
const BytesPerPixel = 4

var ErrInvalidSize = errors.New("surface: invalid size")

// Format gives the byte offset of each channel within a 4-byte cell.
type Format struct {
	B, G, R, X int
}

// BGRX is the in-memory order of 0x00RRGGBB on little-endian hosts.
var BGRX = Format{B: 0, G: 1, R: 2, X: 3}

// XRGB is the in-memory order of 0x00RRGGBB on big-endian hosts.
var XRGB = Format{X: 0, R: 1, G: 2, B: 3}

func (f Format) String() string {
	if f == BGRX {
		return "BGRX"
	}
	if f == XRGB {
		return "XRGB"
	}
	return fmt.Sprintf("Format{B:%d G:%d R:%d X:%d}", f.B, f.G, f.R, f.X)
}

// NativeFormat returns the channel layout of a packed cell as it sits in
// memory on this host.
func NativeFormat() Format {
	var probe [BytesPerPixel]byte
	binary.NativeEndian.PutUint32(probe[:], 0x00010203)
	return Format{
		X: indexOf(probe, 0x00),
		R: indexOf(probe, 0x01),
		G: indexOf(probe, 0x02),
		B: indexOf(probe, 0x03),
	}
}

func indexOf(b [BytesPerPixel]byte, v byte) int {
	for i, x := range b {
		if x == v {
			return i
		}
	}
	return -1
}

// Pack builds a packed cell value.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed cell value into channels. The X byte is ignored.
func Unpack(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Surface is a fixed-size frame buffer. It is created once and mutated in
// place; it is never resized.
type Surface struct {
	width, height int
	cells         []uint32
	bytes         []byte
	format        Format
}

// New allocates a width×height surface cleared to zero.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	cells := make([]uint32, width*height)
	// uint32 alignment satisfies byte alignment and the element sizes are
	// fixed at 4 bytes, so the reinterpretation covers exactly the same
	// memory as cells for as long as cells is alive.
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&cells[0])), len(cells)*BytesPerPixel)
	return &Surface{
		width:  width,
		height: height,
		cells:  cells,
		bytes:  bytes,
		format: NativeFormat(),
	}, nil
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Format returns the channel layout writers of Bytes must use.
func (s *Surface) Format() Format { return s.format }

// Pixels returns the packed view. Row-major, width cells per row.
func (s *Surface) Pixels() []uint32 { return s.cells }

// Bytes returns the byte view of the same memory as Pixels, 4 bytes per
// cell in Format order.
func (s *Surface) Bytes() []byte { return s.bytes }

// At returns the packed cell at (x, y).
func (s *Surface) At(x, y int) uint32 {
	return s.cells[y*s.width+x]
}

// Fill sets every cell to p.
func (s *Surface) Fill(p uint32) {
	for i := range s.cells {
		s.cells[i] = p
	}
}

// Package sdlwin presents frames in a native window through SDL2.
package sdlwin

import (
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is a fixed-size SDL window backed by a streaming texture in the
// packed 0x00RRGGBB layout. All methods must be called from the thread that
// called Open.
type Window struct {
	win      *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int

	open     bool
	exitDown bool
	log      logrus.FieldLogger
}

// Open initialises SDL video and creates a width×height window.
func Open(title string, width, height int, log logrus.FieldLogger) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initialising SDL video: %w", err)
	}

	w := &Window{width: width, height: height, log: log}
	var err error
	w.win, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	w.renderer, err = sdl.CreateRenderer(w.win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	// RGB888 is SDL's name for XRGB8888: one native-endian uint32 per pixel.
	w.texture, err = w.renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	w.open = true
	log.WithFields(logrus.Fields{"title": title, "width": width, "height": height}).Debug("sdl window opened")
	return w, nil
}

// IsOpen drains pending events and reports whether the window is still open.
func (w *Window) IsOpen() bool {
	w.pump()
	return w.open
}

// ExitRequested reports whether Escape has been pressed.
func (w *Window) ExitRequested() bool {
	return w.exitDown
}

// Update uploads pixels to the texture and presents it.
func (w *Window) Update(pixels []uint32, width, height int) error {
	if width != w.width || height != w.height || len(pixels) != width*height {
		return fmt.Errorf("frame is %dx%d (%d pixels), window is %dx%d", width, height, len(pixels), w.width, w.height)
	}
	if err := w.texture.Update(nil, unsafe.Pointer(&pixels[0]), width*4); err != nil {
		return fmt.Errorf("uploading frame: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copying frame: %w", err)
	}
	w.renderer.Present()
	w.pump()
	return nil
}

func (w *Window) pump() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			w.open = false
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				w.open = false
			}
		case *sdl.KeyboardEvent:
			// Latched: a press and release between two polls still counts.
			if e.Keysym.Sym == sdl.K_ESCAPE && e.Type == sdl.KEYDOWN {
				w.exitDown = true
			}
		}
	}
}

// Close releases SDL resources. It is safe to call on a partly opened window.
func (w *Window) Close() {
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.win != nil {
		w.win.Destroy()
	}
	sdl.Quit()
	w.open = false
	w.log.Debug("sdl window closed")
}

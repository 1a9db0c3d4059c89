// Package presenter runs the strip chart frame loop.
//
// Each iteration pulls one sample, records it in the sliding window, renders
// the chart into the surface's byte view, hands the surface's pixel view to
// the window, then sleeps for the frame period. The loop is single-threaded;
// stop conditions are checked once per iteration, never mid-frame.
package presenter

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/olivier-w/stripchart/internal/raster"
	"github.com/olivier-w/stripchart/internal/series"
	"github.com/olivier-w/stripchart/internal/source"
	"github.com/olivier-w/stripchart/internal/surface"
)

// DefaultPeriod is the time between frames.
const DefaultPeriod = 500 * time.Millisecond

// Window is the on-screen surface frames are presented to.
type Window interface {
	// IsOpen reports whether the window is still open.
	IsOpen() bool
	// ExitRequested reports whether the exit key has been pressed.
	ExitRequested() bool
	// Update displays a width×height frame of packed 0x00RRGGBB pixels.
	Update(pixels []uint32, width, height int) error
}

// Renderer draws one frame of w into c.
type Renderer interface {
	Render(c *raster.Canvas, w *series.Window) error
}

type State uint8

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithPeriod sets the frame period.
func WithPeriod(d time.Duration) Option {
	return func(p *Presenter) { p.period = d }
}

// WithSleep replaces time.Sleep, mainly for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Presenter) { p.sleep = sleep }
}

// WithLogger sets the logger used for per-frame diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Presenter) { p.log = l }
}

// Presenter owns the frame loop and all per-frame state.
type Presenter struct {
	win      Window
	src      source.Source
	buf      *series.Window
	surf     *surface.Surface
	canvas   *raster.Canvas
	renderer Renderer

	period time.Duration
	sleep  func(time.Duration)
	log    logrus.FieldLogger

	state State
	epoch float64
}

// New wires the loop together. The canvas is built over surf's byte view
// once and reused for every frame.
func New(win Window, src source.Source, buf *series.Window, surf *surface.Surface, r Renderer, opts ...Option) (*Presenter, error) {
	canvas, err := raster.ForSurface(surf)
	if err != nil {
		return nil, fmt.Errorf("creating canvas: %w", err)
	}
	p := &Presenter{
		win:      win,
		src:      src,
		buf:      buf,
		surf:     surf,
		canvas:   canvas,
		renderer: r,
		period:   DefaultPeriod,
		sleep:    time.Sleep,
		log:      logrus.StandardLogger(),
		state:    Running,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Presenter) State() State { return p.state }

// Epoch returns the tag the next sample will carry.
func (p *Presenter) Epoch() float64 { return p.epoch }

// Run loops until the window closes, the exit key is pressed or ctx is
// cancelled. The first error from a frame stops the loop and is returned.
func (p *Presenter) Run(ctx context.Context) error {
	p.log.WithFields(logrus.Fields{
		"width":    p.surf.Width(),
		"height":   p.surf.Height(),
		"capacity": p.buf.Cap(),
		"period":   p.period,
		"format":   p.surf.Format(),
	}).Info("frame loop started")

	for p.continueRunning(ctx) {
		if err := p.Step(); err != nil {
			p.state = Stopped
			return err
		}
		p.sleep(p.period)
		p.epoch++
	}

	p.log.WithField("frames", int64(p.epoch)).Info("frame loop stopped")
	return nil
}

// Step produces and presents one frame without sleeping or advancing the
// epoch.
func (p *Presenter) Step() error {
	v := p.src.Next()
	p.buf.Push(p.epoch, v)

	if err := p.renderer.Render(p.canvas, p.buf); err != nil {
		return fmt.Errorf("rendering frame %d: %w", int64(p.epoch), err)
	}
	if err := p.win.Update(p.surf.Pixels(), p.surf.Width(), p.surf.Height()); err != nil {
		return fmt.Errorf("presenting frame %d: %w", int64(p.epoch), err)
	}

	p.log.WithFields(logrus.Fields{
		"epoch":   int64(p.epoch),
		"value":   v,
		"samples": p.buf.Len(),
	}).Debug("frame presented")
	return nil
}

func (p *Presenter) continueRunning(ctx context.Context) bool {
	if p.state == Stopped {
		return false
	}
	switch {
	case ctx.Err() != nil:
		p.log.WithError(ctx.Err()).Debug("context done")
	case !p.win.IsOpen():
		p.log.Debug("window closed")
	case p.win.ExitRequested():
		p.log.Debug("exit key pressed")
	default:
		return true
	}
	p.state = Stopped
	return false
}

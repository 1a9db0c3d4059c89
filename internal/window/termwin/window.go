// Package termwin presents frames inside the terminal using a bubbletea
// program. Pixels are converted to half-block cells on the caller's
// goroutine; only the finished string crosses into the program.
package termwin

import (
	"errors"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

var ErrClosed = errors.New("termwin: terminal program exited")

// Default cell grid used until the terminal reports its size.
const (
	defaultCols = 80
	defaultRows = 22
)

type sharedState struct {
	exit atomic.Bool
	cols atomic.Int32
	rows atomic.Int32
}

func (s *sharedState) setSize(cols, rows int) {
	s.cols.Store(int32(cols))
	s.rows.Store(int32(rows))
}

func (s *sharedState) size() (int, int) {
	return int(s.cols.Load()), int(s.rows.Load())
}

// Window runs a bubbletea program for the lifetime of the chart.
type Window struct {
	prog     *tea.Program
	state    *sharedState
	renderer *Renderer
	frames   int

	done chan struct{}
	err  error // set before done is closed
	log  logrus.FieldLogger
}

// Open starts the terminal program. opts are passed to tea.NewProgram after
// the alt-screen option.
func Open(title string, log logrus.FieldLogger, opts ...tea.ProgramOption) (*Window, error) {
	state := &sharedState{}
	state.setSize(defaultCols, defaultRows)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	w := &Window{
		prog:     tea.NewProgram(newModel(title, state), opts...),
		state:    state,
		renderer: NewRenderer(),
		done:     make(chan struct{}),
		log:      log,
	}

	go func() {
		defer close(w.done)
		if _, err := w.prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			w.err = err
		}
	}()

	log.WithField("color", w.renderer.Color()).Debug("terminal window opened")
	return w, nil
}

// IsOpen reports whether the terminal program is still running.
func (w *Window) IsOpen() bool {
	select {
	case <-w.done:
		return false
	default:
		return true
	}
}

// ExitRequested reports whether a quit key was pressed.
func (w *Window) ExitRequested() bool {
	return w.state.exit.Load()
}

// Update renders pixels to cells and hands them to the program.
func (w *Window) Update(pixels []uint32, width, height int) error {
	select {
	case <-w.done:
		if w.err != nil {
			return fmt.Errorf("%w: %w", ErrClosed, w.err)
		}
		return nil
	default:
	}

	cols, rows := w.state.size()
	outW, outH := FitCells(cols, rows, width, height)
	view := w.renderer.Render(pixels, width, height, outW, outH)
	if view == "" {
		return fmt.Errorf("cannot render %dx%d frame into %dx%d cells", width, height, cols, rows)
	}

	w.frames++
	w.prog.Send(frameMsg{view: view, frames: w.frames})
	return nil
}

// Close stops the program and restores the terminal. It returns the error
// the program exited with, if any.
func (w *Window) Close() error {
	w.prog.Quit()
	<-w.done
	return w.err
}

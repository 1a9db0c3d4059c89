package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/olivier-w/stripchart/internal/chart"
	"github.com/olivier-w/stripchart/internal/config"
	"github.com/olivier-w/stripchart/internal/presenter"
	"github.com/olivier-w/stripchart/internal/series"
	"github.com/olivier-w/stripchart/internal/source"
	"github.com/olivier-w/stripchart/internal/surface"
	"github.com/olivier-w/stripchart/internal/window/sdlwin"
	"github.com/olivier-w/stripchart/internal/window/termwin"
)

// SDL must be driven from the main OS thread.
func init() { runtime.LockOSThread() }

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(cfg)
	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("stripchart failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Keep log output off the screen the chart is drawn on.
	if cfg.Terminal {
		if f, err := os.CreateTemp("", "stripchart-*.log"); err == nil {
			log.SetOutput(f)
		} else {
			log.SetLevel(logrus.PanicLevel)
		}
	}
	return log
}

func run(cfg config.Config, log *logrus.Logger) error {
	surf, err := surface.New(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("creating surface: %w", err)
	}

	win, closeWin, err := openWindow(cfg, log)
	if err != nil {
		return err
	}
	defer closeWin()

	p, err := presenter.New(
		win,
		source.NewSeeded(cfg.Seed),
		series.New(cfg.Capacity),
		surf,
		chart.New(chart.DefaultStyle()),
		presenter.WithPeriod(cfg.Period),
		presenter.WithLogger(log),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return p.Run(ctx)
}

func openWindow(cfg config.Config, log *logrus.Logger) (presenter.Window, func(), error) {
	if cfg.Terminal {
		w, err := termwin.Open(cfg.Title, log)
		if err != nil {
			return nil, nil, fmt.Errorf("opening terminal window: %w", err)
		}
		return w, func() {
			if err := w.Close(); err != nil {
				log.WithError(err).Warn("terminal program exited with error")
			}
		}, nil
	}

	w, err := sdlwin.Open(cfg.Title, cfg.Width, cfg.Height, log)
	if err != nil {
		return nil, nil, fmt.Errorf("opening window: %w", err)
	}
	return w, w.Close, nil
}

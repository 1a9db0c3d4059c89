// Package config parses the command line into a validated Config.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/olivier-w/stripchart/internal/presenter"
	"github.com/olivier-w/stripchart/internal/series"
)

// Config holds the process settings. Defaults match an 800x600 chart of
// the last 10 samples, redrawn every 500ms in a native window.
type Config struct {
	Width    int
	Height   int
	Capacity int
	Period   time.Duration
	Seed     int64
	Title    string
	Terminal bool
	LogLevel logrus.Level
}

// Parse reads flags from args. Usage and flag errors are written to stderr.
func Parse(args []string, stderr io.Writer) (Config, error) {
	var (
		cfg   Config
		level string
	)
	fs := flag.NewFlagSet("stripchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Width, "width", 800, "frame width in pixels")
	fs.IntVar(&cfg.Height, "height", 600, "frame height in pixels")
	fs.IntVar(&cfg.Capacity, "capacity", series.DefaultCapacity, "number of samples kept on screen")
	fs.DurationVar(&cfg.Period, "period", presenter.DefaultPeriod, "time between frames")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.StringVar(&cfg.Title, "title", "stripchart", "window title")
	fs.BoolVar(&cfg.Terminal, "term", false, "draw in the terminal instead of a window")
	fs.StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if cfg.LogLevel, err = logrus.ParseLevel(level); err != nil {
		return Config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Capacity < 1 {
		return Config{}, errors.New("capacity must be at least 1")
	}
	if cfg.Period < 0 {
		return Config{}, errors.New("period must not be negative")
	}
	return cfg, nil
}

package app

import (
	"flag"
	"strconv"

	"gridlines/internal/sketch"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed      string
	LineWidth int
	GridSize  int
	Layout    string

	Preview  int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := sketch.DefaultConfig()
	return &Config{
		Seed:      d.Seed,
		LineWidth: d.LineWidth,
		GridSize:  d.GridSize,
		Layout:    string(d.Layout),
		Preview:   2,
		LogLevel:  "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed text for the random line filter")
	fs.IntVar(&c.LineWidth, "line-width", c.LineWidth, "stroke width in pixels (1-50)")
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "grid divisor (2-50)")
	fs.StringVar(&c.Layout, "layout", c.Layout, "grid layout: per-axis or legacy")
	fs.IntVar(&c.Preview, "preview", c.Preview, "canvas reduction factor for the window")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// SketchConfig converts the flags into a sketch configuration, clamping
// numeric values to the HUD ranges.
func (c *Config) SketchConfig() sketch.Config {
	return sketch.FromMap(map[string]string{
		"seed":       c.Seed,
		"line_width": strconv.Itoa(c.LineWidth),
		"grid":       strconv.Itoa(c.GridSize),
		"layout":     c.Layout,
	})
}

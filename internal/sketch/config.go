package sketch

import (
	"strconv"

	"gridlines/internal/core"
)

// Parameter bounds exposed by the HUD.
const (
	CanvasSize = 2048

	MinLineWidth = 1
	MaxLineWidth = 50
	MinGridSize  = 2
	MaxGridSize  = 50
)

// Config holds the inputs of one render cycle.
type Config struct {
	Width  int
	Height int

	Seed      string
	LineWidth int
	GridSize  int

	Layout core.Layout
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     CanvasSize,
		Height:    CanvasSize,
		Seed:      "",
		LineWidth: 1,
		GridSize:  3,
		Layout:    core.LayoutPerAxis,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; numeric values are clamped to the
// HUD ranges.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		c.Seed = v
	}
	if v, ok := cfg["line_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.LineWidth = clampInt(parsed, MinLineWidth, MaxLineWidth)
		}
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.GridSize = clampInt(parsed, MinGridSize, MaxGridSize)
		}
	}
	if v, ok := cfg["layout"]; ok {
		if parsed, err := core.ParseLayout(v); err == nil {
			c.Layout = parsed
		}
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

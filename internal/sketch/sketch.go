package sketch

import (
	"fmt"

	"gridlines/internal/core"
)

// Sketch renders the grid-lines composition for a Config.
type Sketch struct {
	cfg Config

	grid []core.Point
	plan []PlannedPass
}

// New returns a Sketch with the default configuration.
func New() *Sketch {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Sketch configured from the provided options.
func NewWithConfig(cfg Config) *Sketch {
	return &Sketch{cfg: cfg}
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "gridlines" }

// Size reports the canvas dimensions.
func (s *Sketch) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns a copy of the current configuration.
func (s *Sketch) Config() Config { return s.cfg }

// Grid exposes the lattice built by the last Render or Build call.
func (s *Sketch) Grid() []core.Point { return s.grid }

// LastPlan exposes the passes painted by the last Render or Build call.
func (s *Sketch) LastPlan() []PlannedPass { return s.plan }

// Build recomputes the grid and the filtered passes from scratch without
// painting. A fresh generator is seeded from the config on every call.
func (s *Sketch) Build() ([]PlannedPass, error) {
	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	grid, err := core.BuildGrid(w, h, s.cfg.GridSize, s.cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("sketch: %w", err)
	}
	rng := core.NewRNG(s.cfg.Seed)
	s.grid = grid
	s.plan = Plan(rng, grid, Passes(w, h))
	return s.plan, nil
}

// Render clears c to white and paints every pass in order.
func (s *Sketch) Render(c core.Canvas) error {
	plan, err := s.Build()
	if err != nil {
		return err
	}
	c.Clear()
	c.SetLineWidth(float64(s.cfg.LineWidth))
	for _, pass := range plan {
		for _, seg := range pass.Segments {
			if err := c.Stroke(seg, pass.Color); err != nil {
				return fmt.Errorf("sketch: stroke %s pass: %w", pass.Group, err)
			}
		}
	}
	return nil
}

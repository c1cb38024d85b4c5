package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDivisor is returned when a grid divisor cannot produce a
	// positive step.
	ErrInvalidDivisor = errors.New("grid divisor must produce a positive step")
	// ErrInvalidSize is returned for canvases without a positive finite area.
	ErrInvalidSize = errors.New("canvas size must be positive and finite")
)

// Layout selects how the grid builder derives the vertical axis.
type Layout string

const (
	// LayoutPerAxis steps x by W/D and y by H/D, both starting one step in.
	LayoutPerAxis Layout = "per-axis"
	// LayoutLegacy starts the vertical axis at W/D but steps it by H/D. It
	// matches LayoutPerAxis on square canvases.
	LayoutLegacy Layout = "legacy"
)

// ParseLayout converts a flag or config value into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutPerAxis, "":
		return LayoutPerAxis, nil
	case LayoutLegacy:
		return LayoutLegacy, nil
	default:
		return "", fmt.Errorf("unknown grid layout %q", s)
	}
}

// BuildGrid returns the lattice of points strictly inside a w*h canvas,
// spaced by w/divisor horizontally and h/divisor vertically. Points are
// ordered with x in the outer loop. The result is a pure function of its
// inputs.
func BuildGrid(w, h float64, divisor int, layout Layout) ([]Point, error) {
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("build grid %gx%g: %w", w, h, ErrInvalidSize)
	}
	if divisor <= 0 {
		return nil, fmt.Errorf("build grid divisor %d: %w", divisor, ErrInvalidDivisor)
	}
	d := float64(divisor)
	stepX := w / d
	stepY := h / d
	if !(stepX > 0) || !(stepY > 0) {
		return nil, fmt.Errorf("build grid divisor %d: %w", divisor, ErrInvalidDivisor)
	}

	xs := axis(w, divisor, 0)
	shift := 0.0
	if layout == LayoutLegacy {
		shift = stepX - stepY
	}
	ys := axis(h, divisor, shift)

	points := make([]Point, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points, nil
}

// axis lists k*limit/divisor + shift for k = 1, 2, ... while below limit.
// Values are computed from the index so rounding never accumulates onto the
// far edge.
func axis(limit float64, divisor int, shift float64) []float64 {
	d := float64(divisor)
	out := make([]float64, 0, divisor)
	for k := 1; ; k++ {
		v := float64(k)*limit/d + shift
		if v >= limit {
			break
		}
		out = append(out, v)
	}
	return out
}

package sketch

import (
	"image/color"

	"gridlines/internal/core"
)

// Group names a color family of passes.
type Group string

const (
	GroupRed    Group = "red"
	GroupBlue   Group = "blue"
	GroupYellow Group = "yellow"
)

// Stroke colors, matching the CSS named colors.
var (
	Red    = color.RGBA{R: 255, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
)

// Pass draws every surviving grid point toward a single anchor.
type Pass struct {
	Group  Group
	Color  color.RGBA
	Anchor core.Point
}

// Passes returns the fixed pass order for a w*h canvas: red toward the side
// midpoints, blue toward the corners, yellow toward the center. Later passes
// paint over earlier ones.
func Passes(w, h float64) []Pass {
	return []Pass{
		{Group: GroupRed, Color: Red, Anchor: core.Point{X: 0, Y: h / 2}},
		{Group: GroupRed, Color: Red, Anchor: core.Point{X: w, Y: h / 2}},
		{Group: GroupRed, Color: Red, Anchor: core.Point{X: w / 2, Y: 0}},
		{Group: GroupRed, Color: Red, Anchor: core.Point{X: w / 2, Y: h}},

		{Group: GroupBlue, Color: Blue, Anchor: core.Point{X: 0, Y: 0}},
		{Group: GroupBlue, Color: Blue, Anchor: core.Point{X: w, Y: 0}},
		{Group: GroupBlue, Color: Blue, Anchor: core.Point{X: 0, Y: h}},
		{Group: GroupBlue, Color: Blue, Anchor: core.Point{X: w, Y: h}},

		{Group: GroupYellow, Color: Yellow, Anchor: core.Point{X: w / 2, Y: h / 2}},
	}
}

// PlannedPass is a pass together with the segments that survived filtering.
type PlannedPass struct {
	Pass
	Segments []core.Segment
}

// Plan filters grid once per pass, in pass order, drawing from the shared
// rng. Each pass consumes exactly len(grid) draws, so passes see different
// subsets of the same grid.
func Plan(rng *core.RNG, grid []core.Point, passes []Pass) []PlannedPass {
	out := make([]PlannedPass, len(passes))
	for i, pass := range passes {
		kept := core.Filter(rng, grid)
		segs := make([]core.Segment, len(kept))
		for j, p := range kept {
			segs[j] = core.Segment{From: p, To: pass.Anchor}
		}
		out[i] = PlannedPass{Pass: pass, Segments: segs}
	}
	return out
}

// SegmentCount sums the segments across all passes.
func SegmentCount(plan []PlannedPass) int {
	n := 0
	for _, p := range plan {
		n += len(p.Segments)
	}
	return n
}

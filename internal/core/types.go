package core

import "image/color"

// Size describes the dimensions of a canvas in pixels.
type Size struct {
	W int
	H int
}

// Point is a canvas coordinate. The origin is the top-left corner.
type Point struct {
	X float64
	Y float64
}

// Segment is a straight line between two canvas points.
type Segment struct {
	From Point
	To   Point
}

// Sketch defines the contract the interactive shell drives.
type Sketch interface {
	Name() string
	Size() Size
	Render(c Canvas) error
}

// Canvas is the raster surface a sketch paints on.
type Canvas interface {
	Clear()
	SetLineWidth(w float64)
	Stroke(seg Segment, col color.Color) error
}

package render

import (
	"image"
	"image/color"

	"gridlines/internal/core"

	"github.com/gogpu/gg"
)

// Canvas is a software raster target backed by a gg drawing context. It
// satisfies core.Canvas.
type Canvas struct {
	w, h int
	pm   *gg.Pixmap
	dc   *gg.Context
}

var _ core.Canvas = (*Canvas)(nil)

// NewCanvas allocates a w*h canvas cleared to white.
func NewCanvas(w, h int) *Canvas {
	pm := gg.NewPixmap(w, h)
	dc := gg.NewContext(w, h, gg.WithPixmap(pm))
	dc.SetLineCap(gg.LineCapButt)
	c := &Canvas{w: w, h: h, pm: pm, dc: dc}
	c.Clear()
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// Clear fills the canvas with opaque white.
func (c *Canvas) Clear() {
	c.dc.ClearPath()
	c.dc.ClearWithColor(gg.White)
}

// SetLineWidth sets the stroke width used by subsequent strokes.
func (c *Canvas) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

// Stroke draws seg in col using the current line width.
func (c *Canvas) Stroke(seg core.Segment, col color.Color) error {
	c.dc.SetColor(col)
	c.dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
	return c.dc.Stroke()
}

// Pixels exposes the premultiplied RGBA buffer, row-major, 4 bytes per pixel.
// The slice aliases the canvas and changes on the next render.
func (c *Canvas) Pixels() []byte {
	_ = c.dc.FlushGPU()
	return c.pm.Data()
}

// Image returns a copy of the canvas contents.
func (c *Canvas) Image() *image.RGBA {
	_ = c.dc.FlushGPU()
	return c.pm.ToImage()
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

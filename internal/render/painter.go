//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CanvasPainter uploads a Canvas into an ebiten image, reduced by a fixed
// factor, and draws it onto the screen.
type CanvasPainter struct {
	srcW, srcH int
	factor     int
	w, h       int
	img        *ebiten.Image
	buf        []byte
}

// NewCanvasPainter allocates a painter for a srcW*srcH canvas previewed at
// 1/factor resolution.
func NewCanvasPainter(srcW, srcH, factor int) *CanvasPainter {
	if factor < 1 {
		factor = 1
	}
	w, h := PreviewSize(srcW, srcH, factor)
	return &CanvasPainter{
		srcW:   srcW,
		srcH:   srcH,
		factor: factor,
		w:      w,
		h:      h,
		img:    ebiten.NewImage(w, h),
		buf:    make([]byte, 4*w*h),
	}
}

// Upload copies the canvas pixels into the painter image. It is called once
// per redraw, not once per frame.
func (cp *CanvasPainter) Upload(c *Canvas) {
	size := c.Size()
	if size.W != cp.srcW || size.H != cp.srcH {
		return
	}
	fillPreviewRGBA(cp.buf, c.Pixels(), cp.srcW, cp.srcH, cp.factor)
	cp.img.WritePixels(cp.buf)
}

// Draw renders the uploaded preview onto dst.
func (cp *CanvasPainter) Draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the preview image.
func (cp *CanvasPainter) Size() (int, int) { return cp.w, cp.h }

// Factor returns the reduction factor between canvas and preview.
func (cp *CanvasPainter) Factor() int { return cp.factor }

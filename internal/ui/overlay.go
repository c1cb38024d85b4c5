//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"gridlines/internal/core"
	"gridlines/internal/sketch"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type gridProvider interface {
	Grid() []core.Point
}

type planProvider interface {
	LastPlan() []sketch.PlannedPass
}

// Overlay draws optional debugging visuals on top of the canvas preview. It
// never touches the canvas itself.
type Overlay struct {
	sketch      core.Sketch
	scale       float64
	showGrid    bool
	showAnchors bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay. scale maps canvas coordinates onto
// screen coordinates.
func NewOverlay(s core.Sketch, scale float64) *Overlay {
	o := &Overlay{sketch: s, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showAnchors = !o.showAnchors
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showGrid {
		if provider, ok := o.sketch.(gridProvider); ok {
			for _, p := range provider.Grid() {
				o.drawPoint(screen, p.X*scale, p.Y*scale, 5, color.RGBA{R: 40, G: 40, B: 40, A: 200})
			}
		}
	}

	if o.showAnchors {
		if provider, ok := o.sketch.(planProvider); ok {
			for _, pass := range provider.LastPlan() {
				a := pass.Anchor
				col := color.NRGBA{R: pass.Color.R, G: pass.Color.G, B: pass.Color.B, A: 220}
				o.drawCross(screen, a.X*scale, a.Y*scale, 9, col)
				for _, seg := range pass.Segments {
					o.drawLine(screen, seg.From.X*scale, seg.From.Y*scale, a.X*scale, a.Y*scale, 1, color.RGBA{A: 60})
				}
			}
		}
	}
}

func (o *Overlay) drawCross(screen *ebiten.Image, x, y, size float64, col color.Color) {
	half := size / 2
	o.drawLine(screen, x-half, y, x+half, y, 2, col)
	o.drawLine(screen, x, y-half, x, y+half, 2, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.Color) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.Color) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

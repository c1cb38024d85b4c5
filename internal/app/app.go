//go:build ebiten

package app

import (
	"log/slog"
	"strconv"
	"time"

	"gridlines/internal/render"
	"gridlines/internal/sketch"
	"gridlines/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a sketch to the ebiten.Game interface.
type Game struct {
	redraw  *Redrawer
	painter *render.CanvasPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *slog.Logger
}

// New constructs a Game for the provided sketch, previewed at 1/preview of the
// canvas resolution.
func New(s *sketch.Sketch, preview int, logger *slog.Logger) *Game {
	size := s.Size()
	painter := render.NewCanvasPainter(size.W, size.H, preview)
	redraw := NewRedrawer(s, logger)
	painter.Upload(redraw.Canvas())
	return &Game{
		redraw:  redraw,
		painter: painter,
		hud:     ui.NewHUD(s, hudWidth),
		overlay: ui.NewOverlay(s, 1/float64(painter.Factor())),
		logger:  logger,
	}
}

// Update handles input and repaints the canvas when a parameter changed.
func (g *Game) Update() error {
	if !g.hud.Editing() {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.redraw.MarkDirty()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			seed := strconv.FormatInt(time.Now().UnixNano(), 36)
			if g.redraw.Sketch().SetTextParameter(sketch.KeySeed, seed) {
				g.redraw.MarkDirty()
			}
		}
		g.overlay.Update()
	}

	w, _ := g.painter.Size()
	if g.hud.Update(w) {
		g.redraw.MarkDirty()
	}

	// Redraws finish in the background; the last good frame stays up until then.
	if changed, err := g.redraw.Flush(); err == nil && changed {
		g.painter.Upload(g.redraw.Canvas())
	}
	return nil
}

// Draw renders the canvas preview, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + hudWidth, h
}

// Close releases the canvas.
func (g *Game) Close() error {
	return g.redraw.Close()
}

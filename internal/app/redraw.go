package app

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"time"

	"gridlines/internal/core"
	"gridlines/internal/render"
	"gridlines/internal/sketch"
)

// Redrawer repaints the canvas from scratch whenever a parameter has changed.
// Redraws run on a background goroutine into a back canvas so the caller never
// waits on rasterisation; a finished redraw is swapped to the front by the next
// Flush. At most one redraw is in flight and parameter changes made meanwhile
// coalesce into a single follow-up redraw with the latest values.
type Redrawer struct {
	sketch *sketch.Sketch
	logger *slog.Logger

	front *render.Canvas
	back  *render.Canvas

	ctx    context.Context
	cancel context.CancelFunc
	done   chan renderResult

	dirty  bool
	busy   bool
	frames int
}

type renderResult struct {
	cfg      sketch.Config
	points   int
	segments int
	elapsed  time.Duration
	err      error
}

// NewRedrawer allocates front and back canvases sized for s. The first Flush
// always starts a redraw.
func NewRedrawer(s *sketch.Sketch, logger *slog.Logger) *Redrawer {
	if logger == nil {
		logger = slog.Default()
	}
	size := s.Size()
	ctx, cancel := context.WithCancel(context.Background())
	return &Redrawer{
		sketch: s,
		logger: logger,
		front:  render.NewCanvas(size.W, size.H),
		back:   render.NewCanvas(size.W, size.H),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan renderResult, 1),
		dirty:  true,
	}
}

// Canvas exposes the most recently completed frame.
func (r *Redrawer) Canvas() *render.Canvas { return r.front }

// Sketch exposes the sketch being rendered.
func (r *Redrawer) Sketch() *sketch.Sketch { return r.sketch }

// MarkDirty schedules a full redraw.
func (r *Redrawer) MarkDirty() { r.dirty = true }

// Dirty reports whether a redraw is pending but not yet started.
func (r *Redrawer) Dirty() bool { return r.dirty }

// Busy reports whether a redraw is in flight.
func (r *Redrawer) Busy() bool { return r.busy }

// Renders returns the number of completed redraws.
func (r *Redrawer) Renders() int { return r.frames }

// Flush never blocks. It collects a finished redraw, if any, and starts the
// next one when parameters changed and no redraw is running. It reports
// whether Canvas now holds a new frame. A failed redraw is logged and returned,
// leaves the front canvas untouched and is not retried until the next change.
func (r *Redrawer) Flush() (bool, error) {
	var (
		changed bool
		err     error
	)
	select {
	case res := <-r.done:
		changed, err = r.finish(res)
	default:
	}
	if r.dirty && !r.busy {
		r.start()
	}
	return changed, err
}

// Wait blocks until the in-flight redraw, if any, completes and reports its
// outcome the way Flush does.
func (r *Redrawer) Wait() (bool, error) {
	if !r.busy {
		return false, nil
	}
	return r.finish(<-r.done)
}

func (r *Redrawer) start() {
	r.dirty = false
	r.busy = true
	cfg := r.sketch.Config()
	// Keeps Grid and LastPlan current for overlays. Errors resurface from the
	// redraw itself.
	_, _ = r.sketch.Build()

	canvas := r.back
	go func() {
		begin := time.Now()
		s := sketch.NewWithConfig(cfg)
		err := s.Render(cancelCanvas{Canvas: canvas, ctx: r.ctx})
		r.done <- renderResult{
			cfg:      cfg,
			points:   len(s.Grid()),
			segments: sketch.SegmentCount(s.LastPlan()),
			elapsed:  time.Since(begin),
			err:      err,
		}
	}()
}

func (r *Redrawer) finish(res renderResult) (bool, error) {
	r.busy = false
	if res.err != nil {
		r.logger.Error("render failed", "seed", res.cfg.Seed, "grid", res.cfg.GridSize, "err", res.err)
		return false, res.err
	}
	r.front, r.back = r.back, r.front
	r.frames++
	r.logger.Debug("rendered",
		"seed", res.cfg.Seed,
		"grid", res.cfg.GridSize,
		"line_width", res.cfg.LineWidth,
		"points", res.points,
		"segments", res.segments,
		"elapsed", res.elapsed,
	)
	return true, nil
}

// Close abandons any in-flight redraw between strokes and releases both
// canvases.
func (r *Redrawer) Close() error {
	r.cancel()
	if r.busy {
		r.busy = false
		<-r.done
	}
	return errors.Join(r.front.Close(), r.back.Close())
}

// cancelCanvas stops a redraw at the next stroke once ctx is done.
type cancelCanvas struct {
	*render.Canvas
	ctx context.Context
}

func (c cancelCanvas) Stroke(seg core.Segment, col color.Color) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}
	return c.Canvas.Stroke(seg, col)
}

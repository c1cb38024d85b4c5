package render

import (
	"bytes"
	"testing"

	"gridlines/internal/core"
	"gridlines/internal/sketch"
)

func pixelAt(c *Canvas, x, y int) (r, g, b, a uint8) {
	i := (y*c.Size().W + x) * 4
	px := c.Pixels()
	return px[i], px[i+1], px[i+2], px[i+3]
}

func TestCanvasClearIsWhite(t *testing.T) {
	c := NewCanvas(16, 16)
	defer c.Close()
	for i, v := range c.Pixels() {
		if v != 255 {
			t.Fatalf("byte %d = %d after clear, want 255", i, v)
		}
	}
}

func TestCanvasStrokeColorsPixels(t *testing.T) {
	c := NewCanvas(64, 64)
	defer c.Close()
	c.SetLineWidth(6)
	seg := core.Segment{From: core.Point{X: 0, Y: 32}, To: core.Point{X: 64, Y: 32}}
	if err := c.Stroke(seg, sketch.Red); err != nil {
		t.Fatal(err)
	}

	r, g, b, a := pixelAt(c, 32, 32)
	if r < 200 || g > 60 || b > 60 || a != 255 {
		t.Fatalf("center pixel = (%d,%d,%d,%d), want red", r, g, b, a)
	}
	r, g, b, _ = pixelAt(c, 32, 4)
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("pixel away from the line = (%d,%d,%d), want white", r, g, b)
	}

	img := c.Image()
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if px := img.RGBAAt(32, 32); px.R < 200 || px.G > 60 || px.B > 60 {
		t.Fatalf("image center = %+v, want red", px)
	}
	c.Clear()
	if px := img.RGBAAt(32, 32); px.R < 200 || px.G > 60 {
		t.Fatalf("image should be a copy, center became %+v after clear", px)
	}
}

func renderSketch(t *testing.T, seed string) []byte {
	t.Helper()
	cfg := sketch.DefaultConfig()
	cfg.Width = 256
	cfg.Height = 256
	cfg.GridSize = 10
	cfg.LineWidth = 2
	cfg.Seed = seed

	c := NewCanvas(cfg.Width, cfg.Height)
	defer c.Close()
	if err := sketch.NewWithConfig(cfg).Render(c); err != nil {
		t.Fatal(err)
	}
	return bytes.Clone(c.Pixels())
}

func TestRenderPixelIdenticalForSameSeed(t *testing.T) {
	a := renderSketch(t, "abc")
	b := renderSketch(t, "abc")
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different pixels")
	}
	if bytes.Equal(a, renderSketch(t, "abd")) {
		t.Fatal("different seeds produced identical pixels")
	}
}

func TestRenderRepaintsFromScratch(t *testing.T) {
	cfg := sketch.DefaultConfig()
	cfg.Width = 128
	cfg.Height = 128
	cfg.GridSize = 6
	cfg.Seed = "first"
	sk := sketch.NewWithConfig(cfg)

	c := NewCanvas(cfg.Width, cfg.Height)
	defer c.Close()
	if err := sk.Render(c); err != nil {
		t.Fatal(err)
	}
	first := bytes.Clone(c.Pixels())

	sk.SetTextParameter(sketch.KeySeed, "second")
	if err := sk.Render(c); err != nil {
		t.Fatal(err)
	}
	sk.SetTextParameter(sketch.KeySeed, "first")
	if err := sk.Render(c); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, c.Pixels()) {
		t.Fatal("re-rendering the first seed left traces of the previous frame")
	}
}

package core

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestBuildGridDeterministic(t *testing.T) {
	for d := 2; d <= 50; d++ {
		first, err := BuildGrid(2048, 2048, d, LayoutPerAxis)
		if err != nil {
			t.Fatalf("divisor %d: unexpected error %v", d, err)
		}
		second, err := BuildGrid(2048, 2048, d, LayoutPerAxis)
		if err != nil {
			t.Fatalf("divisor %d: unexpected error %v", d, err)
		}
		if !slices.Equal(first, second) {
			t.Fatalf("divisor %d: grid not deterministic", d)
		}
	}
}

func TestBuildGridSquareCountAndBounds(t *testing.T) {
	const size = 2048.0
	for d := 1; d <= 50; d++ {
		grid, err := BuildGrid(size, size, d, LayoutPerAxis)
		if err != nil {
			t.Fatalf("divisor %d: unexpected error %v", d, err)
		}
		if want := (d - 1) * (d - 1); len(grid) != want {
			t.Fatalf("divisor %d: got %d points, want %d", d, len(grid), want)
		}
		for _, p := range grid {
			if p.X <= 0 || p.X >= size || p.Y <= 0 || p.Y >= size {
				t.Fatalf("divisor %d: point %+v not strictly inside the canvas", d, p)
			}
		}
	}
}

func TestBuildGridThirds(t *testing.T) {
	grid, err := BuildGrid(2048, 2048, 3, LayoutPerAxis)
	if err != nil {
		t.Fatal(err)
	}
	third := 2048.0 / 3
	want := []Point{
		{X: third, Y: third},
		{X: third, Y: 2 * third},
		{X: 2 * third, Y: third},
		{X: 2 * third, Y: 2 * third},
	}
	if len(grid) != len(want) {
		t.Fatalf("got %d points, want %d", len(grid), len(want))
	}
	for i := range want {
		if math.Abs(grid[i].X-want[i].X) > 1e-9 || math.Abs(grid[i].Y-want[i].Y) > 1e-9 {
			t.Fatalf("point %d: got %+v, want %+v", i, grid[i], want[i])
		}
	}
}

func TestBuildGridRejectsDegenerateInput(t *testing.T) {
	cases := []struct {
		name    string
		w, h    float64
		divisor int
		want    error
	}{
		{"zero divisor", 2048, 2048, 0, ErrInvalidDivisor},
		{"negative divisor", 2048, 2048, -3, ErrInvalidDivisor},
		{"zero width", 0, 2048, 3, ErrInvalidSize},
		{"negative height", 2048, -1, 3, ErrInvalidSize},
		{"nan width", math.NaN(), 2048, 3, ErrInvalidSize},
		{"infinite height", 2048, math.Inf(1), 3, ErrInvalidSize},
		{"underflowing step", 5e-324, 5e-324, 2, ErrInvalidDivisor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := BuildGrid(tc.w, tc.h, tc.divisor, LayoutPerAxis)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if grid != nil {
				t.Fatalf("expected no points, got %d", len(grid))
			}
		})
	}
}

func TestBuildGridLayouts(t *testing.T) {
	perAxis, err := BuildGrid(200, 100, 4, LayoutPerAxis)
	if err != nil {
		t.Fatal(err)
	}
	wantPerAxis := []Point{
		{50, 25}, {50, 50}, {50, 75},
		{100, 25}, {100, 50}, {100, 75},
		{150, 25}, {150, 50}, {150, 75},
	}
	if !slices.Equal(perAxis, wantPerAxis) {
		t.Fatalf("per-axis grid = %v, want %v", perAxis, wantPerAxis)
	}

	// The legacy layout starts the y axis at the horizontal step.
	legacy, err := BuildGrid(200, 100, 4, LayoutLegacy)
	if err != nil {
		t.Fatal(err)
	}
	wantLegacy := []Point{
		{50, 50}, {50, 75},
		{100, 50}, {100, 75},
		{150, 50}, {150, 75},
	}
	if !slices.Equal(legacy, wantLegacy) {
		t.Fatalf("legacy grid = %v, want %v", legacy, wantLegacy)
	}

	square, _ := BuildGrid(2048, 2048, 7, LayoutPerAxis)
	squareLegacy, _ := BuildGrid(2048, 2048, 7, LayoutLegacy)
	if !slices.Equal(square, squareLegacy) {
		t.Fatal("layouts should agree on square canvases")
	}
}

func TestParseLayout(t *testing.T) {
	if l, err := ParseLayout(""); err != nil || l != LayoutPerAxis {
		t.Fatalf("empty layout: got %q, %v", l, err)
	}
	if l, err := ParseLayout("legacy"); err != nil || l != LayoutLegacy {
		t.Fatalf("legacy layout: got %q, %v", l, err)
	}
	if _, err := ParseLayout("diagonal"); err == nil {
		t.Fatal("expected unknown layout to fail")
	}
}

package core

import (
	"math"
	"testing"
)

func draws(r *RNG, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Gaussian()
	}
	return out
}

func TestRNGReproducible(t *testing.T) {
	for _, seed := range []string{"", "abc", "a much longer seed with spaces"} {
		a := draws(NewRNG(seed), 64)
		b := draws(NewRNG(seed), 64)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %q: draw %d differs (%v vs %v)", seed, i, a[i], b[i])
			}
		}
	}
}

func TestRNGDistinctSeeds(t *testing.T) {
	a := draws(NewRNG("abc"), 16)
	b := draws(NewRNG("abd"), 16)
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Fatal("different seeds produced identical streams")
	}
	if SeedValue("") == SeedValue("abc") {
		t.Fatal("empty seed should hash differently from abc")
	}
}

func TestFilterConsumesOneDrawPerPoint(t *testing.T) {
	points := make([]Point, 25)
	for i := range points {
		points[i] = Point{X: float64(i), Y: float64(i)}
	}

	filtered := NewRNG("stream")
	kept := Filter(filtered, points)

	manual := NewRNG("stream")
	var want []Point
	for _, p := range points {
		if manual.Gaussian() > KeepThreshold {
			want = append(want, p)
		}
	}
	if len(kept) != len(want) {
		t.Fatalf("kept %d points, want %d", len(kept), len(want))
	}
	for i := range want {
		if kept[i] != want[i] {
			t.Fatalf("kept[%d] = %+v, want %+v", i, kept[i], want[i])
		}
	}
	if next, wantNext := filtered.Gaussian(), manual.Gaussian(); next != wantNext {
		t.Fatalf("streams diverged after filtering: %v vs %v", next, wantNext)
	}
}

func TestKeepRetentionRate(t *testing.T) {
	const n = 200000
	r := NewRNG("retention")
	kept := 0
	for i := 0; i < n; i++ {
		if r.Keep() {
			kept++
		}
	}
	got := float64(kept) / n
	want := 0.5 * math.Erfc(KeepThreshold/math.Sqrt2)
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("retention %.4f, want about %.4f", got, want)
	}
}

package core

import "testing"

func TestParameterControlClampInt(t *testing.T) {
	ctrl := ParameterControl{Min: 2, Max: 50, HasMin: true, HasMax: true}
	cases := map[int]int{-4: 2, 0: 2, 2: 2, 17: 17, 50: 50, 51: 50}
	for in, want := range cases {
		if got := ctrl.ClampInt(in); got != want {
			t.Fatalf("ClampInt(%d) = %d, want %d", in, got, want)
		}
	}

	open := ParameterControl{}
	if got := open.ClampInt(-100); got != -100 {
		t.Fatalf("unbounded control clamped to %d", got)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "seed", Value: "x"}}},
		{Name: "b", Params: []Parameter{{Key: "grid", Value: "3"}}},
	}}
	if p, ok := snap.Lookup("grid"); !ok || p.Value != "3" {
		t.Fatalf("lookup grid = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of missing key succeeded")
	}
}

package main

import (
	"slices"
	"testing"
)

func TestSeedNames(t *testing.T) {
	got, err := seedNames("seed-", 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"seed-0", "seed-1", "seed-2"}; !slices.Equal(got, want) {
		t.Fatalf("seedNames = %v, want %v", got, want)
	}
	if got, err := seedNames("x", 0); err != nil || len(got) != 0 {
		t.Fatalf("zero seeds = %v, %v", got, err)
	}
}

func TestSeedNamesRejectsNegativeCount(t *testing.T) {
	if got, err := seedNames("seed-", -1); err == nil || got != nil {
		t.Fatalf("seedNames(-1) = %v, %v; want an error", got, err)
	}
}

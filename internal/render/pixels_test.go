package render

import (
	"slices"
	"testing"
)

func TestPreviewSize(t *testing.T) {
	cases := []struct{ w, h, f, ww, wh int }{
		{2048, 2048, 2, 1024, 1024},
		{2048, 2048, 0, 2048, 2048},
		{3, 3, 4, 1, 1},
		{10, 6, 3, 3, 2},
	}
	for _, tc := range cases {
		w, h := PreviewSize(tc.w, tc.h, tc.f)
		if w != tc.ww || h != tc.wh {
			t.Fatalf("PreviewSize(%d,%d,%d) = %d,%d, want %d,%d", tc.w, tc.h, tc.f, w, h, tc.ww, tc.wh)
		}
	}
}

func TestFillPreviewRGBAAverages(t *testing.T) {
	// 2x2 source: two white, one black, one red.
	src := []byte{
		255, 255, 255, 255, 0, 0, 0, 255,
		255, 0, 0, 255, 255, 255, 255, 255,
	}
	dst := make([]byte, 4)
	fillPreviewRGBA(dst, src, 2, 2, 2)
	want := []byte{191, 128, 128, 255}
	if !slices.Equal(dst, want) {
		t.Fatalf("preview = %v, want %v", dst, want)
	}
}

func TestFillPreviewRGBAIdentity(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, len(src))
	fillPreviewRGBA(dst, src, 2, 1, 1)
	if !slices.Equal(dst, src) {
		t.Fatalf("factor 1 should copy, got %v", dst)
	}
}

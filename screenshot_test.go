package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Screenshots")
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{0xff, 0, 0, 0xff})

	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	fn, err := writeScreenshot(dir, img, now)
	if err != nil {
		t.Fatalf("writeScreenshot: %v", err)
	}
	if got, want := filepath.Base(fn), "threatlabels__2024-05-06-07-08-09.png"; got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
	f, err := os.Open(fn)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", dec.Bounds(), img.Bounds())
	}
	if r, _, _, _ := dec.At(1, 1).RGBA(); r != 0xffff {
		t.Fatalf("pixel not preserved")
	}
}

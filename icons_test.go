package main

import (
	"image"
	"testing"

	"threatlabels/nameplate"
)

func opaquePixels(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}

func TestRankIconsDrawn(t *testing.T) {
	icons := newRankIcons()
	for _, g := range allRankGlyphs() {
		img := icons.RankImage(g)
		if img.Bounds().Dx() != rankIconSize || img.Bounds().Dy() != rankIconSize {
			t.Fatalf("%v bounds = %v", g, img.Bounds())
		}
		if opaquePixels(img) == 0 {
			t.Fatalf("%v is blank", g)
		}
	}
}

func TestRankIconsCached(t *testing.T) {
	icons := newRankIcons()
	precacheRankIcons(icons)
	if got, want := icons.count(), len(allRankGlyphs()); got != want {
		t.Fatalf("cached %d icons, want %d", got, want)
	}
	g := nameplate.RankGlyph{Friends: nameplate.Captain}
	if icons.RankImage(g) != icons.RankImage(g) {
		t.Fatalf("RankImage rebuilt a cached glyph")
	}
}

func TestHSVToNRGBA(t *testing.T) {
	if c := hsvToNRGBA(0, 1, 1); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("hue 0 = %v", c)
	}
	if c := hsvToNRGBA(120, 1, 1); c.R != 0 || c.G != 255 || c.B != 0 {
		t.Fatalf("hue 120 = %v", c)
	}
}

package main

import (
	"bytes"
	"log"
	"math"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"threatlabels/nameplate"
	"threatlabels/overlay"
)

// fontSet holds the faces labels are drawn with and measures text for the
// overlay.
type fontSet struct {
	regular *text.GoTextFace
	bold    *text.GoTextFace
	small   *text.GoTextFace
	hud     *text.GoTextFace
}

func loadFonts(mainSize, smallSize float64) *fontSet {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	return &fontSet{
		regular: &text.GoTextFace{Source: regular, Size: mainSize},
		bold:    &text.GoTextFace{Source: bold, Size: mainSize},
		small:   &text.GoTextFace{Source: regular, Size: smallSize},
		hud:     &text.GoTextFace{Source: regular, Size: 12},
	}
}

func (f *fontSet) face(w overlay.Weight) *text.GoTextFace {
	switch w {
	case overlay.WeightBold:
		return f.bold
	case overlay.WeightSmall:
		return f.small
	}
	return f.regular
}

func (f *fontSet) TextWidth(s string, w overlay.Weight) int {
	return int(math.Ceil(text.Advance(s, f.face(w))))
}

func (f *fontSet) Metrics(w overlay.Weight) nameplate.TextMetrics {
	m := f.face(w).Metrics()
	return nameplate.TextMetrics{
		Height:     int(math.Ceil(m.HAscent + m.HDescent + m.HLineGap)),
		MaxDescent: int(math.Ceil(m.HDescent)),
	}
}

// ascent is the distance from the top of a line to its baseline.
func (f *fontSet) ascent(w overlay.Weight) float64 {
	return f.face(w).Metrics().HAscent
}

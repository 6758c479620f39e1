package main

import (
	"testing"

	"threatlabels/overlay"
)

func TestFontSetMetrics(t *testing.T) {
	f := loadFonts(13, 10)
	if f.TextWidth("", overlay.WeightRegular) != 0 {
		t.Fatalf("empty string has width")
	}
	reg := f.TextWidth("Zezima", overlay.WeightRegular)
	small := f.TextWidth("Zezima", overlay.WeightSmall)
	if reg <= 0 || small <= 0 || small >= reg {
		t.Fatalf("widths regular=%d small=%d", reg, small)
	}
	m := f.Metrics(overlay.WeightRegular)
	if m.Height <= 0 || m.MaxDescent <= 0 || m.MaxDescent >= m.Height {
		t.Fatalf("metrics = %+v", m)
	}
	if sm := f.Metrics(overlay.WeightSmall); sm.Height >= m.Height {
		t.Fatalf("small metrics %+v not smaller than %+v", sm, m)
	}
}

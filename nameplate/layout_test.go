package nameplate

import (
	"image"
	"testing"
)

func icon(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestZOffset(t *testing.T) {
	tests := []struct {
		loc  NameLocation
		want int
	}{
		{Above, 240},
		{ModelCenter, 100},
		{ModelRight, 100},
	}
	for _, tt := range tests {
		if got := ZOffset(tt.loc, 200); got != tt.want {
			t.Fatalf("ZOffset(%v, 200) = %d, want %d", tt.loc, got, tt.want)
		}
	}
}

func TestAnchor(t *testing.T) {
	p := image.Pt(100, 50)
	if got, want := Anchor(Above, p, 40), image.Pt(80, 50); got != want {
		t.Fatalf("Anchor(Above) = %v, want %v", got, want)
	}
	if got, want := Anchor(ModelCenter, p, 41), image.Pt(80, 50); got != want {
		t.Fatalf("Anchor(ModelCenter) = %v, want %v", got, want)
	}
	// Text width is ignored on the right: the label starts beside the model.
	if got, want := Anchor(ModelRight, p, 40), image.Pt(110, 50); got != want {
		t.Fatalf("Anchor(ModelRight) = %v, want %v", got, want)
	}
}

func TestPlaceDisabled(t *testing.T) {
	for _, ic := range []image.Image{nil, icon(10, 10)} {
		if _, ok := Place(image.Pt(5, 5), TextMetrics{Height: 12, MaxDescent: 2}, ic, Disabled); ok {
			t.Fatalf("Place(Disabled) produced a placement")
		}
	}
}

func TestPlaceTextOnly(t *testing.T) {
	for _, loc := range []NameLocation{Above, ModelCenter, ModelRight} {
		p, ok := Place(image.Pt(30, 40), TextMetrics{Height: 12, MaxDescent: 2}, nil, loc)
		if !ok {
			t.Fatalf("Place(%v) not placed", loc)
		}
		if p.HasIcon || p.Text != image.Pt(30, 40) {
			t.Fatalf("Place(%v) = %+v", loc, p)
		}
	}
}

func TestPlaceCentredIcon(t *testing.T) {
	m := TextMetrics{Height: 14, MaxDescent: 4}
	for _, loc := range []NameLocation{Above, ModelCenter} {
		p, ok := Place(image.Pt(100, 200), m, icon(12, 8), loc)
		if !ok || !p.HasIcon {
			t.Fatalf("Place(%v) = %+v, %v", loc, p, ok)
		}
		if want := image.Pt(106, 200); p.Text != want {
			t.Fatalf("Place(%v) text = %v, want %v", loc, p.Text, want)
		}
		// Icon is centred on the text: 10px text height, 8px icon.
		if want := image.Pt(94, 200-5-4); p.Icon != want {
			t.Fatalf("Place(%v) icon = %v, want %v", loc, p.Icon, want)
		}
	}
}

func TestPlaceModelRightIcon(t *testing.T) {
	projected := image.Pt(100, 200)
	anchor := Anchor(ModelRight, projected, 57)
	p, ok := Place(anchor, TextMetrics{Height: 14, MaxDescent: 4}, icon(12, 8), ModelRight)
	if !ok || !p.HasIcon {
		t.Fatalf("Place = %+v, %v", p, ok)
	}
	if want := projected.X + HorizontalMargin + 12; p.Text.X != want {
		t.Fatalf("text x = %d, want %d", p.Text.X, want)
	}
	if want := projected.X + HorizontalMargin; p.Icon.X != want {
		t.Fatalf("icon x = %d, want %d", p.Icon.X, want)
	}
	if p.Text.Y != projected.Y {
		t.Fatalf("text y = %d, want %d", p.Text.Y, projected.Y)
	}
}

func TestPlaceEmptyIcon(t *testing.T) {
	p, ok := Place(image.Pt(1, 2), TextMetrics{Height: 10}, icon(0, 0), Above)
	if !ok || p.HasIcon {
		t.Fatalf("Place with empty icon = %+v, %v", p, ok)
	}
}

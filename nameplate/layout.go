// Package nameplate positions name labels and rank icons around a
// projected avatar anchor.
package nameplate

import "image"

const (
	// OverheadMargin is added to the model height for labels drawn above it.
	OverheadMargin = 40
	// HorizontalMargin separates right-hand labels from the model centre.
	HorizontalMargin = 10
)

// TextMetrics describes the face a label is drawn with.
type TextMetrics struct {
	Height     int
	MaxDescent int
}

// Placement holds the draw positions for one label. Text is the text
// baseline origin; Icon is the top-left of the rank icon when HasIcon.
type Placement struct {
	Text    image.Point
	Icon    image.Point
	HasIcon bool
}

// ZOffset is the height above the model's base at which the anchor is
// projected.
func ZOffset(loc NameLocation, logicalHeight int) int {
	switch loc {
	case ModelCenter, ModelRight:
		return logicalHeight / 2
	}
	return logicalHeight + OverheadMargin
}

// Anchor turns a projected model point into the text origin. Centered
// locations shift left by half the text width; ModelRight starts at the
// projected point and moves right by HorizontalMargin.
func Anchor(loc NameLocation, projected image.Point, textWidth int) image.Point {
	if loc == ModelRight {
		return image.Pt(projected.X+HorizontalMargin, projected.Y)
	}
	return image.Pt(projected.X-textWidth/2, projected.Y)
}

// Place computes the text and icon positions for a label at anchor. The
// icon is optional. Nothing is placed for Disabled.
func Place(anchor image.Point, m TextMetrics, icon image.Image, loc NameLocation) (Placement, bool) {
	if loc == Disabled {
		return Placement{}, false
	}
	p := Placement{Text: anchor}
	if icon == nil {
		return p, true
	}
	size := icon.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return p, true
	}

	textMargin, negMargin := size.X/2, size.X/2
	if loc == ModelRight {
		textMargin, negMargin = size.X, 0
	}
	textHeight := m.Height - m.MaxDescent
	p.Icon = image.Pt(anchor.X-negMargin, anchor.Y-textHeight/2-size.Y/2)
	p.HasIcon = true
	p.Text = image.Pt(anchor.X+textMargin, anchor.Y)
	return p, true
}

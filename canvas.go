package main

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"threatlabels/overlay"
)

var labelShadow = color.NRGBA{0, 0, 0, 0xc0}

// textDrawOptsPool pools DrawOptions to reduce allocations.
var textDrawOptsPool = sync.Pool{New: func() any { return &text.DrawOptions{} }}

func acquireTextDrawOpts() *text.DrawOptions {
	op := textDrawOptsPool.Get().(*text.DrawOptions)
	*op = text.DrawOptions{DrawImageOptions: ebiten.DrawImageOptions{Filter: ebiten.FilterNearest, DisableMipmaps: true}}
	return op
}

func releaseTextDrawOpts(op *text.DrawOptions) {
	textDrawOptsPool.Put(op)
}

// iconImages keeps GPU copies of rank icons; the icon cache hands out the
// same image.Image for a glyph so the pointer is a stable key.
var (
	iconImagesMu sync.Mutex
	iconImages   = map[image.Image]*ebiten.Image{}
)

func ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	iconImagesMu.Lock()
	defer iconImagesMu.Unlock()
	if e, ok := iconImages[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	iconImages[img] = e
	return e
}

// ebitenCanvas draws overlay output onto an ebiten image. text/v2 draws
// from the top of the line box, so baselines are shifted up by the ascent.
type ebitenCanvas struct {
	dst   *ebiten.Image
	fonts *fontSet
}

func (c *ebitenCanvas) DrawText(s string, at image.Point, col color.Color, w overlay.Weight) {
	face := c.fonts.face(w)
	y := float64(at.Y) - c.fonts.ascent(w)

	op := acquireTextDrawOpts()
	op.GeoM.Translate(float64(at.X+1), y+1)
	op.ColorScale.ScaleWithColor(labelShadow)
	text.Draw(c.dst, s, face, op)
	releaseTextDrawOpts(op)

	op = acquireTextDrawOpts()
	op.GeoM.Translate(float64(at.X), y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, face, op)
	releaseTextDrawOpts(op)
}

func (c *ebitenCanvas) DrawImage(img image.Image, at image.Point) {
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	c.dst.DrawImage(ebitenImage(img), op)
}

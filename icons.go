package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"

	"threatlabels/nameplate"
)

const rankIconSize = 11

var (
	chevronColor = color.NRGBA{0xff, 0xd6, 0x00, 0xff}
	starColor    = color.NRGBA{0xff, 0xb3, 0x00, 0xff}
	ownerColor   = color.NRGBA{0xff, 0xe0, 0x66, 0xff}
	jmodColor    = color.NRGBA{0xe0, 0xe0, 0xe0, 0xff}
	friendColor  = color.NRGBA{0x00, 0xc8, 0x53, 0xff}
	iconOutline  = color.NRGBA{0x00, 0x00, 0x00, 0xff}
)

// rankIcons rasterises and caches the small glyphs drawn beside names.
type rankIcons struct {
	mu    sync.Mutex
	cache map[nameplate.RankGlyph]*image.RGBA
}

func newRankIcons() *rankIcons {
	return &rankIcons{cache: make(map[nameplate.RankGlyph]*image.RGBA)}
}

// RankImage returns the glyph image, building it on first use.
func (r *rankIcons) RankImage(g nameplate.RankGlyph) image.Image {
	r.mu.Lock()
	img, ok := r.cache[g]
	r.mu.Unlock()
	if ok {
		return img
	}
	img = buildRankIcon(g)
	r.mu.Lock()
	if prev, ok := r.cache[g]; ok {
		img = prev
	} else {
		r.cache[g] = img
	}
	r.mu.Unlock()
	return img
}

func (r *rankIcons) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func buildRankIcon(g nameplate.RankGlyph) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rankIconSize, rankIconSize))
	if g.Clan {
		fillPath(img, shieldPath(), clanTitleColor(g.Title))
		return img
	}
	switch g.Friends {
	case nameplate.Friend:
		fillPath(img, diamondPath(5.5, 5.5, 4.5), friendColor)
	case nameplate.Recruit, nameplate.Corporal, nameplate.Sergeant:
		n := int(g.Friends-nameplate.Recruit) + 1
		for i := 0; i < n; i++ {
			fillPath(img, chevronPath(float32(1+3*i)), chevronColor)
		}
	case nameplate.Lieutenant, nameplate.Captain, nameplate.General:
		n := int(g.Friends-nameplate.Lieutenant) + 1
		r := float32(5.5) / float32(n)
		for i := 0; i < n; i++ {
			cx := r + 2*r*float32(i)
			fillPath(img, starPath(cx, 5.5, r), starColor)
		}
	case nameplate.Owner:
		fillPath(img, diamondPath(5.5, 5.5, 5.5), iconOutline)
		fillPath(img, diamondPath(5.5, 5.5, 4), ownerColor)
	case nameplate.JMod:
		fillPath(img, diamondPath(5.5, 5.5, 5.5), iconOutline)
		fillPath(img, diamondPath(5.5, 5.5, 4), jmodColor)
	}
	return img
}

// clanTitleColor spreads title IDs around the hue wheel.
func clanTitleColor(t nameplate.ClanTitle) color.NRGBA {
	h := math.Mod(float64(t.ID)*47, 360)
	return hsvToNRGBA(h, 0.7, 0.95)
}

func hsvToNRGBA(h, s, v float64) color.NRGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}

type pathPoint struct{ x, y float32 }

func fillPath(dst *image.RGBA, pts []pathPoint, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func diamondPath(cx, cy, r float32) []pathPoint {
	return []pathPoint{{cx, cy - r}, {cx + r, cy}, {cx, cy + r}, {cx - r, cy}}
}

func chevronPath(top float32) []pathPoint {
	return []pathPoint{
		{0, top + 3}, {5.5, top}, {11, top + 3},
		{11, top + 5}, {5.5, top + 2}, {0, top + 5},
	}
}

func shieldPath() []pathPoint {
	return []pathPoint{{1, 1}, {10, 1}, {10, 6}, {5.5, 10.5}, {1, 6}}
}

func starPath(cx, cy, r float32) []pathPoint {
	pts := make([]pathPoint, 0, 10)
	for i := 0; i < 10; i++ {
		rr := r
		if i%2 == 1 {
			rr = r * 0.45
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		pts = append(pts, pathPoint{cx + rr*float32(math.Cos(a)), cy + rr*float32(math.Sin(a))})
	}
	return pts
}

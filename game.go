package main

import (
	"context"
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	dark "github.com/thiagokokada/dark-mode-go"
)

const initialWindowW, initialWindowH = 1280, 800

var (
	darkBackground  = color.NRGBA{0x1e, 0x21, 0x24, 0xff}
	lightBackground = color.NRGBA{0x9a, 0xa8, 0x8a, 0xff}
	wildernessColor = color.NRGBA{0xdd, 0x2c, 0x00, 0xa0}
	hudBackground   = color.NRGBA{0x00, 0x00, 0x00, 0x90}
	hudText         = color.NRGBA{0xf0, 0xf0, 0xf0, 0xff}
)

// backgroundColor follows the theme setting, or the OS appearance when the
// theme is unset.
func backgroundColor() color.Color {
	switch gs.Theme {
	case "dark":
		return darkBackground
	case "light":
		return lightBackground
	}
	darkMode, err := dark.IsDarkMode()
	if err != nil || darkMode {
		return darkBackground
	}
	return lightBackground
}

type Game struct {
	*session
	ctx   context.Context
	fonts *fontSet
	bg    color.Color
}

func (g *Game) Update() error {
	for _, a := range pressedHotkeys() {
		g.handle(a)
	}
	if !g.tick(g.ctx) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	frame := g.world.Snapshot()
	g.drawWorld(screen, frame)
	g.render(frame, &ebitenCanvas{dst: screen, fonts: g.fonts}, g.fonts)
	if gs.ShowHUD {
		g.drawHUD(screen)
	}
	if g.shotPending {
		g.shotPending = false
		takeScreenshot(screen)
	}
}

// drawWorld paints the wilderness edge and a simple body for each avatar.
func (g *Game) drawWorld(screen *ebiten.Image, frame *worldFrame) {
	if y, ok := frame.wildernessEdgeY(); ok {
		w := float32(screen.Bounds().Dx())
		vector.StrokeLine(screen, 0, float32(y), w, float32(y), 2, wildernessColor, false)
	}
	for _, p := range frame.Players() {
		base, ok := frame.Project(p, 0)
		if !ok {
			continue
		}
		head := frame.headY(p, base)
		col := frame.avatarColor(p)
		x := float32(base.X)
		vector.StrokeLine(screen, x, float32(base.Y), x, float32(head), 4, col, true)
		vector.DrawFilledCircle(screen, x, float32(head), 5, col, true)
		vector.DrawFilledCircle(screen, x, float32(base.Y), 3, color.Black, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := append(hudLines(g.hudInfo(time.Now())), recentConsoleMessages()...)
	face := g.fonts.hud
	lineH := face.Metrics().HAscent + face.Metrics().HDescent + 2
	maxW := 0.0
	for _, l := range lines {
		if w := text.Advance(l, face); w > maxW {
			maxW = w
		}
	}
	vector.DrawFilledRect(screen, 4, 4, float32(maxW+12), float32(lineH*float64(len(lines))+8), hudBackground, false)
	for i, l := range lines {
		op := acquireTextDrawOpts()
		op.GeoM.Translate(10, 8+lineH*float64(i))
		op.ColorScale.ScaleWithColor(hudText)
		text.Draw(screen, l, face, op)
		releaseTextDrawOpts(op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 512 && outsideHeight > 384 {
		if gs.WindowWidth != outsideWidth || gs.WindowHeight != outsideHeight {
			gs.WindowWidth = outsideWidth
			gs.WindowHeight = outsideHeight
			settingsDirty = true
		}
	}
	g.world.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func runGame(ctx context.Context, s *session, fonts *fontSet) {
	ebiten.SetWindowTitle("Threat Labels")
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &Game{session: s, ctx: ctx, fonts: fonts, bg: backgroundColor()}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("ebiten: %v", err)
	}
	saveSettings()
}

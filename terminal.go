package main

import (
	"context"
	"image"
	"image/color"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"threatlabels/nameplate"
	"threatlabels/overlay"
)

// Each terminal cell stands for a block of overlay pixels.
const (
	cellW = 8
	cellH = 16
)

// cellMetrics measures text as one cell per rune.
type cellMetrics struct{}

func (cellMetrics) TextWidth(s string, _ overlay.Weight) int {
	return utf8.RuneCountInString(s) * cellW
}

func (cellMetrics) Metrics(overlay.Weight) nameplate.TextMetrics {
	return nameplate.TextMetrics{Height: cellH, MaxDescent: cellH / 4}
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// termCanvas draws overlay output into a tcell screen.
type termCanvas struct {
	screen tcell.Screen
}

func cellOf(at image.Point) (int, int) {
	return floorDiv(at.X, cellW), floorDiv(at.Y, cellH)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func (c *termCanvas) DrawText(s string, at image.Point, col color.Color, w overlay.Weight) {
	style := tcell.StyleDefault.Foreground(tcellColor(col))
	switch w {
	case overlay.WeightBold:
		style = style.Bold(true)
	case overlay.WeightSmall:
		style = style.Dim(true)
	}
	x, y := cellOf(image.Pt(at.X, at.Y-1))
	width, height := c.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range s {
		if x >= 0 && x < width {
			c.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// DrawImage marks the icon's cell with a glyph in the icon's centre colour.
func (c *termCanvas) DrawImage(img image.Image, at image.Point) {
	b := img.Bounds()
	mid := img.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
	if _, _, _, a := mid.RGBA(); a == 0 {
		mid = color.White
	}
	x, y := cellOf(at.Add(image.Pt(b.Dx()/2, b.Dy()/2)))
	c.screen.SetContent(x, y, '◆', nil, tcell.StyleDefault.Foreground(tcellColor(mid)))
}

func drawTerminalWorld(screen tcell.Screen, frame *worldFrame) {
	width, _ := screen.Size()
	if y, ok := frame.wildernessEdgeY(); ok {
		style := tcell.StyleDefault.Foreground(tcellColor(wildernessColor))
		for x := 0; x < width; x++ {
			screen.SetContent(x, y/cellH, '─', nil, style)
		}
	}
	for _, p := range frame.Players() {
		base, ok := frame.Project(p, 0)
		if !ok {
			continue
		}
		glyph := 'o'
		if p.Local {
			glyph = '@'
		}
		x, y := cellOf(base)
		screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(tcellColor(frame.avatarColor(p))))
	}
}

func drawTerminalHUD(screen tcell.Screen, lines []string) {
	style := tcell.StyleDefault.Reverse(true)
	width, height := screen.Size()
	for row, l := range lines {
		if row >= height {
			return
		}
		x := 0
		for _, r := range l {
			if x >= width {
				break
			}
			screen.SetContent(x, row, r, nil, style)
			x++
		}
	}
}

// terminalAction maps a key event to an action, using the same combos as
// the window.
func terminalAction(ev *tcell.EventKey) hotkeyAction {
	switch ev.Key() {
	case tcell.KeyF1:
		return actionForCombo("F1")
	case tcell.KeyF2:
		return actionForCombo("F2")
	case tcell.KeyF3:
		return actionForCombo("F3")
	case tcell.KeyF4:
		return actionForCombo("F4")
	case tcell.KeyF12:
		return actionForCombo("F12")
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'c', 'C':
			return actionForCombo("C")
		case 'h', 'H':
			return actionForCombo("H")
		case 'q':
			return actionQuit
		}
	}
	return actionNone
}

// drawTerminalFrame renders one frame into screen.
func (s *session) drawTerminalFrame(screen tcell.Screen) {
	width, height := screen.Size()
	s.world.SetViewport(width*cellW, height*cellH)
	frame := s.world.Snapshot()

	screen.Clear()
	drawTerminalWorld(screen, frame)
	s.render(frame, &termCanvas{screen: screen}, cellMetrics{})
	if gs.ShowHUD {
		drawTerminalHUD(screen, append(hudLines(s.hudInfo(time.Now())), recentConsoleMessages()...))
	}
	screen.Show()
}

// runTerminal runs the overlay in the terminal until quit or ctx ends.
func runTerminal(ctx context.Context, s *session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return s.terminalLoop(ctx, screen)
}

func (s *session) terminalLoop(ctx context.Context, screen tcell.Screen) error {
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := terminalAction(ev)
				if a == actionScreenshot {
					consoleMessage("screenshots need the window mode")
					continue
				}
				s.handle(a)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if !s.tick(ctx) {
				return nil
			}
			s.drawTerminalFrame(screen)
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	clipboard "golang.design/x/clipboard"

	"threatlabels/overlay"
)

var (
	doDebug bool
	silent  bool
)

func main() {
	tui := flag.Bool("tui", false, "render in the terminal instead of a window")
	dump := flag.Bool("dump", false, "print one frame's threat list and exit")
	seed := flag.Int64("seed", 0, "world seed (0 uses the saved seed, or the clock)")
	players := flag.Int("players", 0, "number of simulated players (0 uses settings)")
	dataDir := flag.String("data", "", "directory for settings, stats and screenshots")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.Parse()

	if *dataDir != "" {
		dataDirPath = *dataDir
	}
	if *tui {
		logConsole = io.Discard
	}

	loadSettings()
	setupLogging(doDebug)
	defer func() {
		if r := recover(); r != nil {
			logPanic(r)
		}
	}()

	loadStats()
	defer saveStats()

	icons := newRankIcons()
	precacheRankIcons(icons)
	w := newWorld(worldSeed(*seed), playerCount(*players), gs.WorldScale)
	s := newSession(w, icons)

	if *dump {
		dumpFrame(os.Stdout, s)
		return
	}

	initSound()
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	} else {
		clipboardReady = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *tui {
		if err := runTerminal(ctx, s); err != nil {
			log.Fatalf("terminal: %v", err)
		}
		saveSettings()
		return
	}
	runGame(ctx, s, loadFonts(gs.MainFontSize, gs.SmallFontSize))
}

func worldSeed(flagSeed int64) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case gs.Seed != 0:
		return gs.Seed
	}
	return time.Now().UnixNano()
}

func playerCount(flagCount int) int {
	if flagCount > 0 {
		return flagCount
	}
	return gs.PlayerCount
}

// discardCanvas drops draw calls; -dump only needs the frame stats.
type discardCanvas struct{}

func (discardCanvas) DrawText(string, image.Point, color.Color, overlay.Weight) {}
func (discardCanvas) DrawImage(image.Image, image.Point)                      {}

// dumpFrame advances the world one tick and writes the range and the
// labelled players to wr.
func dumpFrame(wr io.Writer, s *session) {
	s.alerts.notify = func(string, string) {}
	s.world.Update()
	frame := s.world.Snapshot()
	st := s.render(frame, discardCanvas{}, cellMetrics{})
	fmt.Fprintln(wr, rangeLine(st, gs.ThreatLabels))
	fmt.Fprint(wr, threatListText(frame.Players(), st.Tiers))
}

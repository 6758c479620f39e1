package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const chimeRate = beep.SampleRate(44100)

var (
	soundMu    sync.Mutex
	soundReady bool
)

// initSound opens the audio device for alert chimes. Failure only disables
// the chime.
func initSound() {
	soundMu.Lock()
	defer soundMu.Unlock()
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		logWarn("audio init: %v", err)
		return
	}
	soundReady = true
}

// chime is a sine tone with a fast attack and exponential decay.
type chime struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newChime(sr beep.SampleRate, freq float64, d time.Duration) *chime {
	return &chime{sr: sr, freq: freq, total: sr.N(d)}
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		t := float64(c.pos) / float64(c.sr)
		env := math.Min(t/0.005, 1) * math.Exp(-6*float64(c.pos)/float64(c.total))
		v := 0.25 * env * math.Sin(2*math.Pi*c.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chime) Err() error {
	return nil
}

// playAlertChime plays a rising two-note chime.
func playAlertChime() {
	soundMu.Lock()
	ready := soundReady
	soundMu.Unlock()
	if !ready || !gs.AlertSound {
		return
	}
	speaker.Play(beep.Seq(
		newChime(chimeRate, 880, 120*time.Millisecond),
		newChime(chimeRate, 1320, 180*time.Millisecond),
	))
}

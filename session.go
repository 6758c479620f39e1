package main

import (
	"context"
	"time"

	"threatlabels/overlay"
)

// session holds the state shared by the window and terminal front ends:
// the simulated host, icon cache, alerts and the last rendered frame.
type session struct {
	world  *world
	icons  *rankIcons
	alerts *threatAlerter
	heap   heapSampler
	start  time.Time

	last      overlay.FrameStats
	lastFrame *worldFrame

	shotPending bool
	quit        bool
}

func newSession(w *world, icons *rankIcons) *session {
	return &session{
		world:  w,
		icons:  icons,
		alerts: newThreatAlerter(alertCooldown()),
		heap:   heapSampler{every: time.Second},
		start:  time.Now(),
	}
}

// handle runs one hotkey action.
func (s *session) handle(a hotkeyAction) {
	if msg, ok := applySettingHotkey(a); ok {
		consoleMessage(msg)
		return
	}
	switch a {
	case actionCopyThreats:
		if s.lastFrame != nil {
			copyThreatList(s.lastFrame.Players(), s.last.Tiers)
		}
	case actionScreenshot:
		s.shotPending = true
	case actionQuit:
		s.quit = true
	}
}

// tick advances the simulation; it reports false once the session should
// end.
func (s *session) tick(ctx context.Context) bool {
	if s.quit || ctx.Err() != nil {
		return false
	}
	s.world.Update()
	s.alerts.setCooldown(alertCooldown())
	maybeSaveSettings()
	return true
}

// render runs the overlay for frame against c.
func (s *session) render(frame *worldFrame, c overlay.Canvas, metrics overlay.TextMetricsProvider) overlay.FrameStats {
	var icons overlay.IconProvider
	if s.icons != nil {
		icons = s.icons
	}
	st := overlay.New(frame, frame, icons, metrics, overlayConfig()).Render(c)
	s.afterFrame(frame, st)
	return st
}

func (s *session) afterFrame(frame *worldFrame, st overlay.FrameStats) {
	if st.RangeErr != nil {
		logWarnLimited(rangeWarnLimiter, "level range: %v", st.RangeErr)
	}
	if gs.ThreatAlerts {
		if fresh := s.alerts.Observe(st.HighThreats); len(fresh) > 0 {
			logDebug("alerted for %v", fresh)
		}
	}
	recordSightings(st.Tiers)
	s.last = st
	s.lastFrame = frame
}

func (s *session) hudInfo(now time.Time) hudInfo {
	icons := 0
	if s.icons != nil {
		icons = s.icons.count()
	}
	return hudInfo{
		Stats:    s.last,
		Config:   overlayConfig(),
		Uptime:   now.Sub(s.start).Truncate(time.Second),
		Seen:     sightingCount(),
		HeapSize: s.heap.sample(now),
		Icons:    icons,
	}
}

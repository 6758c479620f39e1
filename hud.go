package main

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"threatlabels/overlay"
	"threatlabels/threat"
)

var shortUnits durafmt.Units

func init() {
	shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")
}

// hudInfo is the data behind the corner readout.
type hudInfo struct {
	Stats    overlay.FrameStats
	Config   overlay.Config
	Uptime   time.Duration
	Seen     int
	HeapSize uint64
	Icons    int
}

func rangeLine(st overlay.FrameStats, threatLabels bool) string {
	switch {
	case !threatLabels:
		return "Range: off"
	case st.RangeErr != nil && errors.Is(st.RangeErr, threat.ErrMalformed):
		return "Range: unreadable"
	case st.Range == nil:
		return "Range: --"
	case st.Status.HasCurrent:
		return fmt.Sprintf("Range: %v (level %d)", *st.Range, st.Status.Current)
	}
	return fmt.Sprintf("Range: %v", *st.Range)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func hudLines(h hudInfo) []string {
	st := h.Stats
	lines := []string{
		rangeLine(st, h.Config.ThreatLabels),
		fmt.Sprintf("Labels: %d threat, %d named, %d hidden, %d off screen",
			st.Drawn, st.Decorated, st.Suppressed, st.Offscreen),
		fmt.Sprintf("Names: %s  Ranks: friends %s, clan %s",
			h.Config.NameLocation, onOff(h.Config.ShowFriendsRanks), onOff(h.Config.ShowClanRanks)),
		fmt.Sprintf("Seen: %s players this session", humanize.Comma(int64(h.Seen))),
		fmt.Sprintf("Up %s  heap %s  %d icons", durafmt.Parse(h.Uptime).LimitFirstN(2).Format(shortUnits),
			humanize.Bytes(h.HeapSize), h.Icons),
	}
	if n := len(st.HighThreats); n > 0 {
		lines = append(lines, fmt.Sprintf("%d high level %s in range", n, plural(n, "player", "players")))
	}
	return lines
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// heapSampler reads runtime memory stats at most once per interval.
type heapSampler struct {
	every time.Duration
	last  time.Time
	heap  uint64
}

func (s *heapSampler) sample(now time.Time) uint64 {
	if now.Sub(s.last) >= s.every {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		s.heap = m.HeapAlloc
		s.last = now
	}
	return s.heap
}

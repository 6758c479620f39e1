package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
func notifyDesktop(title, body string) {
	if body == "" {
		return
	}
	// Skip on headless Linux without DISPLAY; beeep would error.
	if runtime.GOOS == "linux" && (os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "") {
		return
	}
	if err := beeep.Notify(title, body, ""); err != nil {
		logDebug("notify: %v", err)
	}
}

// threatAlerter raises a notification when high level players come into
// range, at most once per player per cooldown.
type threatAlerter struct {
	mu       sync.Mutex
	cooldown time.Duration
	last     map[string]time.Time

	now    func() time.Time
	notify func(title, body string)
}

func newThreatAlerter(cooldown time.Duration) *threatAlerter {
	return &threatAlerter{
		cooldown: cooldown,
		last:     make(map[string]time.Time),
		now:      time.Now,
		notify:   func(title, body string) {
			playAlertChime()
			go notifyDesktop(title, body)
		},
	}
}

func (a *threatAlerter) setCooldown(d time.Duration) {
	a.mu.Lock()
	a.cooldown = d
	a.mu.Unlock()
}

// Observe is called once per frame with the visible high level players and
// returns the names it alerted for.
func (a *threatAlerter) Observe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	a.mu.Lock()
	now := a.now()
	var fresh []string
	for _, n := range names {
		if t, ok := a.last[n]; ok && now.Sub(t) < a.cooldown {
			continue
		}
		a.last[n] = now
		fresh = append(fresh, n)
	}
	a.mu.Unlock()

	if len(fresh) == 0 {
		return nil
	}
	sort.Strings(fresh)
	title := "High level player in range"
	if len(fresh) > 1 {
		title = fmt.Sprintf("%d high level players in range", len(fresh))
	}
	a.notify(title, strings.Join(fresh, ", "))
	return fresh
}
